package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/linalg/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LINALG_CONFIG", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, config.FormatASCII, cfg.Output.Format)
	require.Equal(t, -1, cfg.Output.Precision)
	require.Equal(t, config.MethodCramer, cfg.Solver.Method)
	require.Equal(t, 0, cfg.Solver.PivotRow)
	require.Equal(t, 10, cfg.Solver.MaxOrder)
	require.False(t, cfg.Solver.AllowSingular)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[output]
format = "latex"
precision = 4

[solver]
method = "lu"
pivot_row = 2
allow_singular = true
`), 0o644))
	t.Setenv("LINALG_CONFIG", path)
	t.Setenv("LINALG_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, config.FormatLaTeX, cfg.Output.Format)
	require.Equal(t, 4, cfg.Output.Precision)
	require.Equal(t, config.MethodLU, cfg.Solver.Method)
	require.Equal(t, 2, cfg.Solver.PivotRow)
	require.True(t, cfg.Solver.AllowSingular)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidValue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[solver]\nmethod = \"gauss\"\n"), 0o644))
	t.Setenv("LINALG_CONFIG", path)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "gauss", cfg.Solver.Method)
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("LINALG_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	_, err := config.Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	ok := config.Config{
		Output: config.OutputConfig{Format: config.FormatASCII, Precision: -1},
		Solver: config.SolverConfig{Method: config.MethodCramer, MaxOrder: 10},
	}
	require.NoError(t, ok.Validate())

	bad := ok
	bad.Solver.PivotRow = -1
	require.ErrorIs(t, bad.Validate(), config.ErrInvalidConfig)

	bad = ok
	bad.Output.Format = "html"
	require.ErrorIs(t, bad.Validate(), config.ErrInvalidConfig)
}
