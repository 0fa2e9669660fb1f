package presenter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fedcompare-go/internal/config"
	"fedcompare-go/internal/dataset"
)

func testRenderer(t *testing.T, format string) (*ChartRenderer, string) {
	t.Helper()
	dir := t.TempDir()
	return NewChartRenderer(&config.Config{
		OutputDir:       dir,
		Format:          format,
		AccuracyWidth:   6,
		AccuracyHeight:  3,
		ConfusionWidth:  4,
		ConfusionHeight: 4,
		PaletteSize:     9,
		Annotate:        true,
	}), dir
}

func TestRenderAll(t *testing.T) {
	r, dir := testRenderer(t, "png")

	out, err := r.RenderAll(dataset.Default())
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, filepath.Join(dir, "accuracy_comparison.png"), out[0].Path)
	assert.Equal(t, 2, out[0].Panels)
	assert.Equal(t, filepath.Join(dir, "centralized_model_confusion_matrix.png"), out[1].Path)
	assert.Equal(t, filepath.Join(dir, "federated_model_confusion_matrix.png"), out[2].Path)

	for _, o := range out {
		b, err := os.ReadFile(o.Path)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(b, []byte("\x89PNG")), o.Path)
	}
}

func TestCompareConfusionMatrices(t *testing.T) {
	r, _ := testRenderer(t, "svg")

	out, err := r.CompareConfusionMatrices(dataset.Default())
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, o := range out {
		assert.Equal(t, 1, o.Panels)
		assert.Equal(t, ".svg", filepath.Ext(o.Path))
	}
}

func TestRender_Idempotent(t *testing.T) {
	r, _ := testRenderer(t, "png")
	cmp := dataset.Default()

	first, err := r.RenderAll(cmp)
	require.NoError(t, err)
	var before [][]byte
	for _, o := range first {
		b, err := os.ReadFile(o.Path)
		require.NoError(t, err)
		before = append(before, b)
	}

	second, err := r.RenderAll(cmp)
	require.NoError(t, err)
	for i, o := range second {
		b, err := os.ReadFile(o.Path)
		require.NoError(t, err)
		assert.Equal(t, before[i], b, o.Path)
	}
}

func TestRenderAccuracyComparison_Invalid(t *testing.T) {
	r, dir := testRenderer(t, "png")

	cmp := dataset.Default()
	cmp.Federated.Labels = nil
	_, err := r.RenderAccuracyComparison(cmp)
	assert.True(t, errors.Is(err, dataset.ErrEmptyDataset))

	cmp = dataset.Default()
	cmp.Centralized.Series[1].Values = []float64{0}
	_, err = r.RenderAccuracyComparison(cmp)
	assert.True(t, errors.Is(err, dataset.ErrLengthMismatch))

	cmp = dataset.Default()
	cmp.Centralized.Series[0].Color = "not-a-color"
	_, err = r.RenderAccuracyComparison(cmp)
	assert.Error(t, err)

	_, err = os.Stat(filepath.Join(dir, "accuracy_comparison.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestRenderConfusionMatrix_Nil(t *testing.T) {
	r, _ := testRenderer(t, "png")
	_, err := r.RenderConfusionMatrix(nil, "Missing")
	assert.True(t, errors.Is(err, dataset.ErrEmptyMatrix))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "centralized_model_confusion_matrix", slug("Centralized Model Confusion Matrix"))
	assert.Equal(t, "a_b", slug("  A / b!"))
}

func TestExportCSV(t *testing.T) {
	dir := t.TempDir()
	paths, err := ExportCSV(dir, dataset.Default())
	require.NoError(t, err)
	require.Len(t, paths, 4)

	f, err := os.Open(filepath.Join(dir, "centralized_accuracy.csv"))
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"label", "Entire Dataset", "Unseen Digits"}, records[0])
	assert.Equal(t, []string{"Model 2", "68.72", "0"}, records[2])

	g, err := os.Open(filepath.Join(dir, "federated_confusion.csv"))
	require.NoError(t, err)
	defer g.Close()
	records, err = csv.NewReader(g).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"2", "0", "1", "59"}, records[3])
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, dataset.Default()))

	out := buf.String()
	assert.Contains(t, out, "Centralized Learning")
	assert.Contains(t, out, "65.69")
	assert.Contains(t, out, "97.35")
	assert.Contains(t, out, "92.45")
	assert.Contains(t, out, "Federated Model")

	cmp := dataset.Default()
	cmp.FederatedMatrix = nil
	assert.Error(t, WriteSummary(&buf, cmp))
}
