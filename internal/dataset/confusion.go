package dataset

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ConfusionMatrix is a square grid of predicted-vs-true counts.
// Rows are true classes, columns are predicted classes.
type ConfusionMatrix struct {
	title  string
	labels []string
	counts *mat.Dense
}

// NewConfusionMatrix builds a matrix from row slices. labels may be nil,
// in which case classes are numbered from 0.
func NewConfusionMatrix(title string, labels []string, rows [][]float64) (*ConfusionMatrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, errors.Wrapf(ErrEmptyMatrix, "%q", title)
	}
	data := make([]float64, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, errors.Wrapf(ErrNotSquare, "%q row %d has %d columns, want %d", title, i, len(row), n)
		}
		data = append(data, row...)
	}
	return FromDense(title, labels, mat.NewDense(n, n, data))
}

// FromDense wraps a copy of m after checking it holds valid counts.
func FromDense(title string, labels []string, m *mat.Dense) (*ConfusionMatrix, error) {
	if m == nil || m.IsEmpty() {
		return nil, errors.Wrapf(ErrEmptyMatrix, "%q", title)
	}
	r, c := m.Dims()
	if r != c {
		return nil, errors.Wrapf(ErrNotSquare, "%q is %dx%d", title, r, c)
	}
	if labels != nil && len(labels) != r {
		return nil, errors.Wrapf(ErrLabelMismatch, "%q has %d labels for %d classes", title, len(labels), r)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
				return nil, errors.Wrapf(ErrNonInteger, "%q value %v at (%d,%d)", title, v, i, j)
			}
			if v < 0 {
				return nil, errors.Wrapf(ErrNegativeCount, "%q value %v at (%d,%d)", title, v, i, j)
			}
		}
	}
	return &ConfusionMatrix{
		title:  title,
		labels: append([]string(nil), labels...),
		counts: mat.DenseCopyOf(m),
	}, nil
}

func (c *ConfusionMatrix) Title() string { return c.title }

// Size is the number of classes.
func (c *ConfusionMatrix) Size() int {
	n, _ := c.counts.Dims()
	return n
}

// Labels returns the class labels, numbering classes when none were given.
func (c *ConfusionMatrix) Labels() []string {
	if len(c.labels) > 0 {
		return append([]string(nil), c.labels...)
	}
	out := make([]string, c.Size())
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}

func (c *ConfusionMatrix) At(i, j int) float64 { return c.counts.At(i, j) }

// Dense returns a copy of the underlying counts.
func (c *ConfusionMatrix) Dense() *mat.Dense { return mat.DenseCopyOf(c.counts) }

// RowSums returns the number of samples per true class.
func (c *ConfusionMatrix) RowSums() []float64 {
	n := c.Size()
	sums := make([]float64, n)
	for i := 0; i < n; i++ {
		sums[i] = floats.Sum(c.counts.RawRowView(i))
	}
	return sums
}

func (c *ConfusionMatrix) Total() float64 { return mat.Sum(c.counts) }

// Correct is the number of samples on the diagonal.
func (c *ConfusionMatrix) Correct() float64 { return mat.Trace(c.counts) }

// Accuracy is Correct/Total in percent, or 0 for an all-zero matrix.
func (c *ConfusionMatrix) Accuracy() float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return 100 * c.Correct() / total
}

// Rows returns the counts as row slices.
func (c *ConfusionMatrix) Rows() [][]float64 {
	n := c.Size()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = mat.Row(nil, i, c.counts)
	}
	return rows
}
