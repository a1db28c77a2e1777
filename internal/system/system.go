// Package system reads linear systems A·x = b from TOML or YAML documents.
//
// Document schema (both formats):
//
//	name = "three currents"          # optional
//	rows = [[2, 1, -1], [-3, -1, 2], [-2, 1, 2]]
//	b    = [8, -11, -3]              # optional for det/show/latex
package system

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linalg/internal/logging"
	"github.com/katalvlaran/linalg/matrix"
)

// Format names a document encoding.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

var (
	// ErrUnknownFormat is returned for a file extension or format name that
	// is neither TOML nor YAML.
	ErrUnknownFormat = errors.New("system: unknown document format")

	// ErrNoRightHandSide is returned by RequireB when the document has no b.
	ErrNoRightHandSide = errors.New("system: right-hand side b is missing")
)

// document is the on-disk shape.
type document struct {
	Name string      `toml:"name" yaml:"name"`
	Rows [][]float64 `toml:"rows" yaml:"rows"`
	B    []float64   `toml:"b" yaml:"b"`
}

// System is a decoded, shape-checked linear system.
type System struct {
	Name string
	A    *matrix.Matrix[float64]
	B    []float64 // nil when the document has no right-hand side
}

// RequireB returns ErrNoRightHandSide when s has no b vector.
func (s System) RequireB() error {
	if s.B == nil {
		return fmt.Errorf("%s: %w", s.Name, ErrNoRightHandSide)
	}

	return nil
}

// FormatFromPath picks the format from the file extension
// (.toml, .yaml, .yml; case-insensitive).
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}
}

// Load opens path, decodes it by extension and validates the system.
// A document without a name is named after the file.
func Load(path string, log logging.Logger) (System, error) {
	if log == nil {
		log = logging.NoOpLogger{}
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return System{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return System{}, fmt.Errorf("open system: %w", err)
	}
	defer f.Close()

	s, err := Parse(f, format)
	if err != nil {
		return System{}, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	log.Debug("system loaded", "path", path, "format", string(format),
		"name", s.Name, "rows", s.A.Rows(), "cols", s.A.Cols(), "has_b", s.B != nil)

	return s, nil
}

// Parse decodes one document from r in the given format.
//
// Errors:
//   - ErrUnknownFormat; decoder errors;
//   - matrix.ErrInvalidDimensions / ErrDimensionMismatch for empty or ragged rows;
//   - matrix.ErrDimensionMismatch when len(b) != len(rows).
func Parse(r io.Reader, format Format) (System, error) {
	var doc document
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return System{}, fmt.Errorf("decode toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return System{}, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return System{}, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	a, err := matrix.NewFromRows(doc.Rows)
	if err != nil {
		return System{}, fmt.Errorf("rows: %w", err)
	}
	if doc.B != nil {
		if err := matrix.ValidateVecLen(a, len(doc.B)); err != nil {
			return System{}, fmt.Errorf("b: %w", err)
		}
	}

	return System{Name: doc.Name, A: a, B: doc.B}, nil
}
