package presenter

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"fedcompare-go/internal/config"
	"fedcompare-go/internal/dataset"
	"fedcompare-go/pkg/barplotter"
	"fedcompare-go/pkg/heatmapplotter"
)

const AccuracyFile = "accuracy_comparison"

// Output is one written figure.
type Output struct {
	Path   string
	Panels int
}

// ChartRenderer writes comparison figures into a directory. It keeps no
// state between calls.
type ChartRenderer struct {
	outputDir       string
	format          string
	accuracyWidth   vg.Length
	accuracyHeight  vg.Length
	confusionWidth  vg.Length
	confusionHeight vg.Length
	paletteSize     int
	annotate        bool
}

func NewChartRenderer(cfg *config.Config) *ChartRenderer {
	return &ChartRenderer{
		outputDir:       cfg.OutputDir,
		format:          cfg.Format,
		accuracyWidth:   vg.Length(cfg.AccuracyWidth) * vg.Inch,
		accuracyHeight:  vg.Length(cfg.AccuracyHeight) * vg.Inch,
		confusionWidth:  vg.Length(cfg.ConfusionWidth) * vg.Inch,
		confusionHeight: vg.Length(cfg.ConfusionHeight) * vg.Inch,
		paletteSize:     cfg.PaletteSize,
		annotate:        cfg.Annotate,
	}
}

// RenderAll draws the accuracy comparison and then both confusion
// matrices.
func (r *ChartRenderer) RenderAll(cmp *dataset.Comparison) ([]Output, error) {
	acc, err := r.RenderAccuracyComparison(cmp)
	if err != nil {
		return nil, err
	}
	cms, err := r.CompareConfusionMatrices(cmp)
	if err != nil {
		return nil, err
	}
	return append([]Output{acc}, cms...), nil
}

// RenderAccuracyComparison draws the centralized and federated accuracy
// panels side by side in one figure.
func (r *ChartRenderer) RenderAccuracyComparison(cmp *dataset.Comparison) (Output, error) {
	if err := cmp.Centralized.Validate(); err != nil {
		return Output{}, err
	}
	if err := cmp.Federated.Validate(); err != nil {
		return Output{}, err
	}

	panelWidth := r.accuracyWidth / 2
	var plots []*plot.Plot
	for _, d := range []dataset.AccuracyDataset{cmp.Centralized, cmp.Federated} {
		panel, err := toPanel(d, panelWidth)
		if err != nil {
			return Output{}, err
		}
		p, err := barplotter.MakeBarPlot(panel)
		if err != nil {
			return Output{}, errors.Wrapf(err, "panel %q", d.Title)
		}
		plots = append(plots, p)
	}

	c, err := barplotter.Compose(barplotter.Figure{
		Title:  cmp.Title,
		Width:  r.accuracyWidth,
		Height: r.accuracyHeight,
		Format: r.format,
	}, plots...)
	if err != nil {
		return Output{}, err
	}

	path, err := r.write(AccuracyFile, c)
	if err != nil {
		return Output{}, err
	}
	log.Info().Str("path", path).Int("panels", len(plots)).Msg("accuracy comparison written")
	return Output{Path: path, Panels: len(plots)}, nil
}

// RenderConfusionMatrix draws a single heatmap titled "<title> Confusion
// Matrix".
func (r *ChartRenderer) RenderConfusionMatrix(cm *dataset.ConfusionMatrix, title string) (Output, error) {
	if cm == nil {
		return Output{}, errors.Wrapf(dataset.ErrEmptyMatrix, "%q", title)
	}
	full := title + " Confusion Matrix"
	c, err := heatmapplotter.MakeHeatmapPlot(heatmapplotter.Heatmap{
		Title:    full,
		XLabel:   "Predicted",
		YLabel:   "True",
		Labels:   cm.Labels(),
		Data:     cm.Dense(),
		Colors:   r.paletteSize,
		Annotate: r.annotate,
	}, r.confusionWidth, r.confusionHeight, r.format)
	if err != nil {
		return Output{}, errors.Wrapf(err, "heatmap %q", full)
	}

	path, err := r.write(slug(full), c)
	if err != nil {
		return Output{}, err
	}
	log.Info().Str("path", path).Int("classes", cm.Size()).Msg("confusion matrix written")
	return Output{Path: path, Panels: 1}, nil
}

// CompareConfusionMatrices draws the centralized matrix, then the
// federated one.
func (r *ChartRenderer) CompareConfusionMatrices(cmp *dataset.Comparison) ([]Output, error) {
	var out []Output
	for _, m := range []struct {
		cm    *dataset.ConfusionMatrix
		title string
	}{
		{cmp.CentralizedMatrix, dataset.CentralizedMatrixTitle},
		{cmp.FederatedMatrix, dataset.FederatedMatrixTitle},
	} {
		o, err := r.RenderConfusionMatrix(m.cm, m.title)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func toPanel(d dataset.AccuracyDataset, panelWidth vg.Length) (barplotter.Panel, error) {
	panel := barplotter.Panel{
		Title:    d.Title,
		YLabel:   d.YLabel,
		Labels:   d.Labels,
		YMin:     0,
		YMax:     100,
		BarWidth: panelWidth * 0.6 / vg.Length(len(d.Labels)),
	}
	for _, s := range d.Series {
		clr, err := barplotter.ParseColor(s.Color)
		if err != nil {
			return panel, errors.Wrapf(err, "series %q", s.Name)
		}
		panel.Bars = append(panel.Bars, barplotter.Bars{Name: s.Name, Color: clr, Values: s.Values})
	}
	return panel, nil
}

func (r *ChartRenderer) write(name string, c vg.CanvasWriterTo) (string, error) {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", errors.Wrapf(err, "could not create output dir %q", r.outputDir)
	}
	path := filepath.Join(r.outputDir, name+"."+r.format)
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "could not create %q", path)
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return "", errors.Wrapf(err, "could not write %q", path)
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, "could not close %q", path)
	}
	return path, nil
}

var nonWord = regexp.MustCompile(`[^a-z0-9]+`)

func slug(s string) string {
	return strings.Trim(nonWord.ReplaceAllString(strings.ToLower(s), "_"), "_")
}
