// Package readmatrix loads numeric grids from plain text files. Fields are
// separated by spaces or tabs, lines starting with '#' are comments and a
// leading non-numeric line is taken as a header and skipped.
package readmatrix

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ErrNoData is returned when the input holds no numeric rows.
var ErrNoData = errors.New("readmatrix: no data rows")

func ReadMatrix(filename string) (*mat.Dense, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	m, err := Parse(file)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", filename)
	}
	return m, nil
}

// Parse reads a matrix from r.
func Parse(r io.Reader) (*mat.Dense, error) {
	var rows [][]float64
	scanner := bufio.NewScanner(r)
	headerSeen := false
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		if !headerSeen && len(rows) == 0 && !numeric(fields) {
			headerSeen = true
			continue
		}

		row := make([]float64, len(fields))
		for i, field := range fields {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d, column %d", lineNo, i+1)
			}
			row[i] = val
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, errors.Errorf("line %d: inconsistent number of columns: expected %d, got %d",
				lineNo, len(rows[0]), len(row))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading input")
	}
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	cols := len(rows[0])
	flat := make([]float64, 0, len(rows)*cols)
	for _, row := range rows {
		flat = append(flat, row...)
	}
	return mat.NewDense(len(rows), cols, flat), nil
}

func numeric(fields []string) bool {
	for _, f := range fields {
		if _, err := strconv.ParseFloat(f, 64); err != nil {
			return false
		}
	}
	return true
}
