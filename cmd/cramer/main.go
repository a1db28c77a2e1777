// Command cramer loads a linear system from a TOML or YAML file and solves
// it, prints its determinant, or renders it as an ASCII table or LaTeX.
//
// Usage:
//
//	cramer [flags] solve|det|show|latex <file>
//
// Settings come from the config file (see internal/config), LINALG_*
// environment variables and, last, the flags below.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/linalg/internal/config"
	"github.com/katalvlaran/linalg/internal/logging"
	"github.com/katalvlaran/linalg/internal/system"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/matrix/ops"
	"github.com/spf13/pflag"
)

// errUsage marks command-line misuse (exit status 2).
var errUsage = errors.New("usage: cramer [flags] solve|det|show|latex <file>")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without process globals; it returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}

	fs := pflag.NewFlagSet("cramer", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&cfg.Output.Format, "format", "f", cfg.Output.Format, "output format: ascii or latex")
	fs.IntVar(&cfg.Output.Precision, "precision", cfg.Output.Precision, "digits after the point; -1 prints the shortest exact form")
	fs.StringVarP(&cfg.Solver.Method, "method", "m", cfg.Solver.Method, "solver: cramer or lu")
	fs.IntVar(&cfg.Solver.PivotRow, "pivot", cfg.Solver.PivotRow, "cofactor expansion row")
	fs.BoolVar(&cfg.Solver.AllowSingular, "allow-singular", cfg.Solver.AllowSingular, "divide by a zero determinant instead of failing")
	verbose := fs.BoolP("verbose", "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}

	level, ok := logging.ParseLevel(cfg.Log.Level)
	log := logging.New(&logging.Config{Level: level, Format: cfg.Log.Format, Output: stderr, Component: "cramer"})
	if !ok {
		log.Warn("unknown log level, using info", "level", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid settings", "err", err)
		return 2
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(stderr, errUsage)
		return 2
	}

	if err := execute(fs.Arg(0), fs.Arg(1), cfg, log, stdout); err != nil {
		log.Error("command failed", "command", fs.Arg(0), "err", err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}

	return 0
}

// execute dispatches one command on the system stored at path.
func execute(cmd, path string, cfg config.Config, log logging.Logger, w io.Writer) error {
	switch cmd {
	case "solve", "det", "show", "latex":
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}

	sys, err := system.Load(path, log)
	if err != nil {
		return err
	}
	opts := []matrix.Option{
		matrix.WithPivotRow(cfg.Solver.PivotRow),
		matrix.WithMaxOrder(cfg.Solver.MaxOrder),
		matrix.WithAllowSingular(cfg.Solver.AllowSingular),
	}

	switch cmd {
	case "det":
		d, err := determinant(sys.A, cfg.Solver.Method, opts)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, formatFloat(d, cfg.Output.Precision))
		return err

	case "solve":
		if err := sys.RequireB(); err != nil {
			return err
		}
		x, err := solve(sys.A, sys.B, cfg.Solver.Method, opts)
		if err != nil {
			return err
		}
		log.Info("system solved", "name", sys.Name, "method", cfg.Solver.Method, "unknowns", len(x))
		col, err := matrix.NewColumnVector(x)
		if err != nil {
			return err
		}
		return render(w, formatCells(col, cfg.Output.Precision), cfg.Output.Format)

	case "latex":
		return matrix.FprintLaTeX(w, sys.A)

	default: // show
		if err := render(w, sys.A, cfg.Output.Format); err != nil {
			return err
		}
		if sys.B == nil {
			return nil
		}
		b, err := matrix.NewColumnVector(sys.B)
		if err != nil {
			return err
		}
		return render(w, b, cfg.Output.Format)
	}
}

func determinant(a *matrix.Matrix[float64], method string, opts []matrix.Option) (float64, error) {
	if method == config.MethodLU {
		return ops.Det(a)
	}

	return matrix.Determinant(a, opts...)
}

func solve(a *matrix.Matrix[float64], b []float64, method string, opts []matrix.Option) ([]float64, error) {
	if method == config.MethodLU {
		return ops.Solve(a, b)
	}

	return matrix.SolveCramer(a, b, opts...)
}

// render prints m in the configured format.
func render[T any](w io.Writer, m *matrix.Matrix[T], format string) error {
	if format == config.FormatLaTeX {
		return matrix.FprintLaTeX(w, m)
	}

	return matrix.Fprint(w, m)
}

// formatCells converts m to display strings, so the renderers align the
// formatted text rather than raw float output.
func formatCells(m *matrix.Matrix[float64], precision int) *matrix.Matrix[string] {
	src := m.Elements()
	cells := make([]string, len(src))
	for i, v := range src {
		cells[i] = formatFloat(v, precision)
	}
	out, _ := matrix.NewFromColumnMajor(cells, m.Cols()) // same shape as m

	return out
}

func formatFloat(v float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strconv.FormatFloat(v, 'f', precision, 64)
}
