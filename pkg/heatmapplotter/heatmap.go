package heatmapplotter

import (
	"fmt"
	"image/color"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Heatmap describes a square count matrix drawn with row 0 at the top.
type Heatmap struct {
	Title    string
	XLabel   string
	YLabel   string
	Labels   []string
	Data     *mat.Dense
	Colors   int
	Annotate bool
}

// MakeHeatmapPlot draws h on a canvas of the given size and format. A
// palette legend next to the plot serves as the color bar.
func MakeHeatmapPlot(h Heatmap, width, height vg.Length, format string) (vg.CanvasWriterTo, error) {
	if h.Data == nil || h.Data.IsEmpty() {
		return nil, errors.New("heatmapplotter: no data")
	}
	rows, cols := h.Data.Dims()
	if len(h.Labels) != 0 && (len(h.Labels) != rows || len(h.Labels) != cols) {
		return nil, errors.Errorf("heatmapplotter: %d labels for %dx%d data", len(h.Labels), rows, cols)
	}

	p := plot.New()
	p.Title.Text = h.Title
	p.Title.Padding = 5 * vg.Millimeter
	p.X.Label.Text = h.XLabel
	p.Y.Label.Text = h.YLabel

	n := h.Colors
	if n < 2 {
		n = 9
	}
	pal, err := Blues(n)
	if err != nil {
		return nil, err
	}

	g := matrixToGrid(h.Data)
	heatmap := plotter.NewHeatMap(g, pal)
	heatmap.Min, heatmap.Max = minMax(h.Data)
	if heatmap.Max == heatmap.Min {
		heatmap.Max = heatmap.Min + 1
	}
	p.Add(heatmap)

	if h.Annotate {
		counts, err := cellLabels(g, heatmap.Min, heatmap.Max)
		if err != nil {
			return nil, err
		}
		p.Add(counts)
	}

	p.X.Tick.Marker = classTicks(h.Labels, cols, false)
	p.Y.Tick.Marker = classTicks(h.Labels, rows, true)
	p.X.Padding = 0
	p.Y.Padding = 0

	// Create a legend.
	l := plot.NewLegend()
	thumbs := plotter.PaletteThumbnailers(pal)
	nthumbs := len(thumbs)
	for i := nthumbs - 1; i >= 0; i-- {
		val := heatmap.Min + (heatmap.Max-heatmap.Min)*float64(i)/float64(nthumbs-1)
		l.Add(fmt.Sprintf("%.0f", val), thumbs[i])
	}

	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return nil, errors.Wrapf(err, "heatmapplotter: canvas %q", format)
	}
	dc := draw.New(c)

	l.Top = true
	// Calculate the width of the legend.
	r := l.Rectangle(dc)
	legendWidth := r.Max.X - r.Min.X
	l.YOffs = -p.Title.TextStyle.FontExtents().Height - p.Title.Padding // Adjust the legend down a little.

	l.Draw(dc)
	dc = draw.Crop(dc, 0, -legendWidth-2*vg.Millimeter, 0, 0) // Make space for the legend.
	p.Draw(dc)
	return c, nil
}

// Blues returns n colors from near white to dark blue.
func Blues(n int) (palette.Palette, error) {
	if n < 2 {
		return nil, errors.Errorf("heatmapplotter: palette needs at least 2 colors, got %d", n)
	}
	cm, err := moreland.NewLuminance([]color.Color{
		color.NRGBA{R: 8, G: 48, B: 107, A: 255},
		color.NRGBA{R: 66, G: 146, B: 198, A: 255},
		color.NRGBA{R: 247, G: 251, B: 255, A: 255},
	})
	if err != nil {
		return nil, errors.Wrap(err, "heatmapplotter: palette")
	}
	cm.SetMin(0)
	cm.SetMax(1)

	out := make(gradient, n)
	for i := 0; i < n; i++ {
		// the color map runs dark to light, the palette light to dark
		c, err := cm.At(1 - float64(i)/float64(n-1))
		if err != nil {
			return nil, errors.Wrap(err, "heatmapplotter: palette")
		}
		out[i] = c
	}
	return out, nil
}

type gradient []color.Color

func (g gradient) Colors() []color.Color { return g }

func minMax(m *mat.Dense) (lo, hi float64) {
	return mat.Min(m), mat.Max(m)
}

func matrixToGrid(matrix *mat.Dense) grid {
	r, c := matrix.Dims()
	return grid{Matrix: matrix, Rows: r, Cols: c}
}

// grid flips rows so that matrix row 0 is drawn at the top.
type grid struct {
	Matrix     *mat.Dense
	Rows, Cols int
}

func (g grid) Dims() (c, r int)   { return g.Cols, g.Rows }
func (g grid) Z(c, r int) float64 { return g.Matrix.At(g.Rows-1-r, c) }
func (g grid) X(c int) float64    { return float64(c) }
func (g grid) Y(r int) float64    { return float64(r) }

func cellLabels(g grid, lo, hi float64) (*plotter.Labels, error) {
	var xyl plotter.XYLabels
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			z := g.Z(c, r)
			xyl.XYs = append(xyl.XYs, plotter.XY{X: g.X(c), Y: g.Y(r)})
			xyl.Labels = append(xyl.Labels, fmt.Sprintf("%.0f", z))
		}
	}
	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, errors.Wrap(err, "heatmapplotter: cell labels")
	}
	mid := lo + (hi-lo)/2
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
		labels.TextStyle[i].Color = color.Black
		if g.Z(i%g.Cols, i/g.Cols) > mid {
			labels.TextStyle[i].Color = color.White
		}
	}
	return labels, nil
}

// classTicks puts one labelled tick at every cell center. On the Y axis
// positions are flipped to match grid.
func classTicks(labels []string, n int, flip bool) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, n)
	for i := 0; i < n; i++ {
		label := fmt.Sprint(i)
		if i < len(labels) {
			label = labels[i]
		}
		pos := float64(i)
		if flip {
			pos = float64(n - 1 - i)
		}
		ticks[i] = plot.Tick{Value: pos, Label: label}
	}
	return ticks
}
