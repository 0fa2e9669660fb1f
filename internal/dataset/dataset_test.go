package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestDefault(t *testing.T) {
	cmp := Default()
	require.NoError(t, cmp.Validate())

	assert.Equal(t, []float64{65.69, 68.72, 68.36}, cmp.Centralized.Series[0].Values)
	assert.Equal(t, []float64{0, 0, 0}, cmp.Centralized.Series[1].Values)
	assert.Equal(t, []float64{95.94, 97.35, 94.48, 94.64}, cmp.Federated.Series[0].Values)
	assert.Equal(t, []string{"All Digits", "[1,3,7]", "[2,5,8]", "[4,6,9]"}, cmp.Federated.Labels)

	for _, d := range []AccuracyDataset{cmp.Centralized, cmp.Federated} {
		for _, s := range d.Series {
			assert.Len(t, s.Values, len(d.Labels), s.Name)
		}
	}

	// fresh values on every call
	cmp.Centralized.Series[0].Values[0] = 1
	assert.Equal(t, 65.69, Default().Centralized.Series[0].Values[0])
}

func TestAccuracyDataset_Validate(t *testing.T) {
	base := Default().Federated

	empty := base.Clone()
	empty.Labels = nil
	assert.True(t, errors.Is(empty.Validate(), ErrEmptyDataset))

	noSeries := base.Clone()
	noSeries.Series = nil
	assert.True(t, errors.Is(noSeries.Validate(), ErrNoSeries))

	short := base.Clone()
	short.Series[0].Values = short.Series[0].Values[:2]
	assert.True(t, errors.Is(short.Validate(), ErrLengthMismatch))

	high := base.Clone()
	high.Series[0].Values[1] = 100.5
	assert.True(t, errors.Is(high.Validate(), ErrOutOfRange))

	neg := base.Clone()
	neg.Series[0].Values[0] = -1
	assert.True(t, errors.Is(neg.Validate(), ErrOutOfRange))
}

func TestConfusionMatrix(t *testing.T) {
	cm := Default().CentralizedMatrix

	assert.Equal(t, 3, cm.Size())
	assert.Equal(t, []string{"0", "1", "2"}, cm.Labels())
	assert.Equal(t, []float64{53, 51, 55}, cm.RowSums())
	assert.Equal(t, 159.0, cm.Total())
	assert.Equal(t, 147.0, cm.Correct())
	assert.InDelta(t, 92.45, cm.Accuracy(), 0.01)

	for _, s := range cm.RowSums() {
		assert.GreaterOrEqual(t, s, 0.0)
	}

	d := cm.Dense()
	d.Set(0, 0, 0)
	assert.Equal(t, 50.0, cm.At(0, 0))
}

func TestConfusionMatrix_Invalid(t *testing.T) {
	_, err := NewConfusionMatrix("x", nil, nil)
	assert.True(t, errors.Is(err, ErrEmptyMatrix))

	_, err = NewConfusionMatrix("x", nil, [][]float64{{1, 2}, {3}})
	assert.True(t, errors.Is(err, ErrNotSquare))

	_, err = FromDense("x", nil, mat.NewDense(2, 3, nil))
	assert.True(t, errors.Is(err, ErrNotSquare))

	_, err = NewConfusionMatrix("x", nil, [][]float64{{1, -2}, {3, 4}})
	assert.True(t, errors.Is(err, ErrNegativeCount))

	_, err = NewConfusionMatrix("x", nil, [][]float64{{1, 2.5}, {3, 4}})
	assert.True(t, errors.Is(err, ErrNonInteger))

	_, err = NewConfusionMatrix("x", []string{"a"}, [][]float64{{1, 2}, {3, 4}})
	assert.True(t, errors.Is(err, ErrLabelMismatch))

	zero, err := NewConfusionMatrix("zero", []string{"a", "b"}, [][]float64{{0, 0}, {0, 0}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, zero.Accuracy())
	assert.Equal(t, []string{"a", "b"}, zero.Labels())
}

func TestParse(t *testing.T) {
	doc := `{
  "title": "Digits",
  "centralized": {
    "labels": ["A", "B"],
    "series": [{"name": "Entire Dataset", "color": "blue", "values": [70.5, 71]}]
  },
  "confusion": {
    "federated": {"labels": ["x", "y"], "counts": [[9, 1], [2, 8]]}
  }
}`
	cmp, err := Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "Digits", cmp.Title)
	assert.Equal(t, "Centralized Learning", cmp.Centralized.Title)
	assert.Equal(t, "Accuracy (%)", cmp.Centralized.YLabel)
	assert.Equal(t, []string{"A", "B"}, cmp.Centralized.Labels)
	assert.Equal(t, Default().Federated, cmp.Federated)

	assert.Equal(t, FederatedMatrixTitle, cmp.FederatedMatrix.Title())
	assert.Equal(t, 2, cmp.FederatedMatrix.Size())
	assert.Equal(t, 3, cmp.CentralizedMatrix.Size())
}

func TestParse_Invalid(t *testing.T) {
	for name, doc := range map[string]string{
		"schema": `{"centralized": {"labels": ["A"], "series": [{"name": "s", "values": [120]}]}}`,
		"unknown": `{"colour": "red"}`,
		"negative": `{"confusion": {"centralized": {"counts": [[1, -1], [0, 1]]}}}`,
	} {
		_, err := Parse([]byte(doc))
		assert.True(t, errors.Is(err, ErrInvalidDocument), name)
	}

	_, err := Parse([]byte(`{"federated": {"labels": ["A", "B"], "series": [{"name": "s", "values": [1]}]}}`))
	assert.True(t, errors.Is(err, ErrLengthMismatch))

	_, err = Parse([]byte(`{"federated": {"labels": [], "series": [{"name": "s", "values": []}]}}`))
	assert.True(t, errors.Is(err, ErrEmptyDataset))

	_, err = Parse([]byte(`{"confusion": {"federated": {"counts": [[1, 2]]}}}`))
	assert.True(t, errors.Is(err, ErrNotSquare))
}

func TestLoadMatrixFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cm.txt")
	require.NoError(t, os.WriteFile(path, []byte("58 1 0\n1 57 2\n0 1 59\n"), 0o644))

	cm, err := LoadMatrixFile(path, "Federated Model")
	require.NoError(t, err)
	assert.Equal(t, Default().FederatedMatrix.Rows(), cm.Rows())

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("1 2 3\n4 5 6\n"), 0o644))
	_, err = LoadMatrixFile(bad, "bad")
	assert.True(t, errors.Is(err, ErrNotSquare))
}
