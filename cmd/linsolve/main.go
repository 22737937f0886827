// SPDX-License-Identifier: MIT

// Command linsolve reads a linear system as JSON, solves it and prints the
// solution followed by the inverse of the coefficient matrix.
//
// Input:
//
//	{"coefficients": [[2, 1], [1, 3]], "constants": [3, 5]}
//
// Output:
//
//	Variable 1: 0.8
//	Variable 2: 1.4
//
//	0.6   -0.2
//	-0.2   0.4
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/linsolve"
	"github.com/katalvlaran/linsolve/matrix"
)

var log = logging.Logger("linsolve/cmd")

// inverseSep joins the entries of one inverse row.
const inverseSep = "   "

var errInvalidTolerance = errors.New("pivot tolerance must be finite and non-negative")

// system is the JSON input document.
type system struct {
	Coefficients [][]float64 `json:"coefficients"`
	Constants    []float64   `json:"constants"`
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "linsolve: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("linsolve", flag.ContinueOnError)
	var (
		input           = fs.String("input", "", "Path to the JSON system (default: stdin)")
		pivotTol        = fs.Float64("pivot-tol", matrix.DefaultPivotTolerance, "Relative pivot tolerance")
		noSingularCheck = fs.Bool("no-singular-check", false, "Divide by zero pivots and print Inf/NaN instead of failing")
		skipInverse     = fs.Bool("skip-inverse", false, "Only print the solution")
		logLevel        = fs.String("log-level", "warn", "Log level (debug, info, warn, error)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level, err := logging.LevelFromString(*logLevel)
	if err != nil {
		return fmt.Errorf("log level %q: %w", *logLevel, err)
	}
	logging.SetAllLoggers(level)

	if math.IsNaN(*pivotTol) || math.IsInf(*pivotTol, 0) || *pivotTol < 0 {
		return fmt.Errorf("%w: %v", errInvalidTolerance, *pivotTol)
	}
	opts := []matrix.Option{matrix.WithPivotTolerance(*pivotTol)}
	if *noSingularCheck {
		opts = append(opts, matrix.WithNoSingularCheck())
	}

	sys, err := readSystem(*input, stdin)
	if err != nil {
		return err
	}
	log.Debugw("system loaded", "rows", len(sys.Coefficients), "constants", len(sys.Constants))

	wantInverse := !*skipInverse
	if wantInverse && !isSquare(sys.Coefficients) {
		log.Warnw("coefficient matrix is not square, inverse omitted", "rows", len(sys.Coefficients))
		wantInverse = false
	}

	var report *linsolve.Report
	if wantInverse {
		report, err = linsolve.SolveAndInvert(context.Background(), sys.Coefficients, sys.Constants, opts...)
	} else {
		var x []float64
		x, err = linsolve.Solve(sys.Coefficients, sys.Constants, opts...)
		report = &linsolve.Report{Solution: x}
	}
	if err != nil {
		return err
	}

	return render(stdout, report)
}

// readSystem decodes the system from path, or from stdin when path is "" or "-".
func readSystem(path string, stdin io.Reader) (*system, error) {
	r := stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var sys system
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sys); err != nil {
		return nil, fmt.Errorf("decode system: %w", err)
	}

	return &sys, nil
}

func isSquare(rows [][]float64) bool {
	for _, row := range rows {
		if len(row) != len(rows) {
			return false
		}
	}

	return true
}

// render writes one "Variable i: value" line per unknown and, when present,
// a blank line followed by the inverse rows.
func render(w io.Writer, r *linsolve.Report) error {
	var b strings.Builder
	for i, v := range r.Solution {
		fmt.Fprintf(&b, "Variable %d: %s\n", i+1, formatNumber(v))
	}
	if r.Inverse != nil {
		b.WriteString("\n")
		cells := make([]string, 0, len(r.Inverse))
		for _, row := range r.Inverse {
			cells = cells[:0]
			for _, v := range row {
				cells = append(cells, formatNumber(v))
			}
			b.WriteString(strings.Join(cells, inverseSep))
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// formatNumber prints the shortest decimal that round-trips, switching to
// exponent form only for very large or very small magnitudes.
func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0" // also folds -0
	}
	if a := math.Abs(v); a >= 1e21 || a < 1e-6 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
