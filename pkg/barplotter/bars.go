// Package barplotter draws categorical bar charts and lays several of them
// out side by side under a common title.
package barplotter

import (
	"image/color"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Bars is one series. All series of a panel share the category positions,
// so later series are drawn over earlier ones.
type Bars struct {
	Name   string
	Color  color.Color
	Values []float64
}

type Panel struct {
	Title      string
	YLabel     string
	Labels     []string
	YMin, YMax float64
	BarWidth   vg.Length
	Bars       []Bars
}

var ErrNoBars = errors.New("barplotter: panel has no bars")

// MakeBarPlot builds a plot for one panel. The legend sits in the upper
// left corner and the Y axis is fixed to [YMin, YMax] when YMax > YMin.
func MakeBarPlot(panel Panel) (*plot.Plot, error) {
	if len(panel.Labels) == 0 || len(panel.Bars) == 0 {
		return nil, ErrNoBars
	}

	p := plot.New()
	p.Title.Text = panel.Title
	p.Y.Label.Text = panel.YLabel
	p.Legend.Top = true
	p.Legend.Left = true

	width := panel.BarWidth
	if width == 0 {
		width = vg.Points(30)
	}

	for _, b := range panel.Bars {
		if len(b.Values) != len(panel.Labels) {
			return nil, errors.Errorf("barplotter: %q has %d values for %d labels",
				b.Name, len(b.Values), len(panel.Labels))
		}
		bars, err := plotter.NewBarChart(plotter.Values(b.Values), width)
		if err != nil {
			return nil, errors.Wrapf(err, "barplotter: %q", b.Name)
		}
		bars.LineStyle.Width = vg.Length(0)
		if b.Color != nil {
			bars.Color = b.Color
		}
		p.Add(bars)
		if b.Name != "" {
			p.Legend.Add(b.Name, bars)
		}
	}
	p.NominalX(panel.Labels...)

	if panel.YMax > panel.YMin {
		p.Y.Min = panel.YMin
		p.Y.Max = panel.YMax
	}
	return p, nil
}

// Figure describes a row of panels drawn on one canvas.
type Figure struct {
	Title         string
	Width, Height vg.Length
	Format        string
}

// Compose draws plots left to right with the figure title on top and
// returns the canvas ready to be written.
func Compose(fig Figure, plots ...*plot.Plot) (vg.CanvasWriterTo, error) {
	if len(plots) == 0 {
		return nil, errors.New("barplotter: nothing to compose")
	}
	c, err := draw.NewFormattedCanvas(fig.Width, fig.Height, fig.Format)
	if err != nil {
		return nil, errors.Wrapf(err, "barplotter: canvas %q", fig.Format)
	}
	dc := draw.New(c)

	if fig.Title != "" {
		sty := plots[0].Title.TextStyle
		sty.Font.Size = vg.Points(16)
		sty.XAlign = draw.XCenter
		sty.YAlign = draw.YTop
		pad := 2 * vg.Millimeter
		dc.FillText(sty, vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y - pad}, fig.Title)
		dc = draw.Crop(dc, 0, 0, 0, -(sty.FontExtents().Height + 2*pad))
	}

	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(plots),
		PadX:      6 * vg.Millimeter,
		PadTop:    2 * vg.Millimeter,
		PadBottom: 2 * vg.Millimeter,
		PadLeft:   2 * vg.Millimeter,
		PadRight:  4 * vg.Millimeter,
	}
	canvases := plot.Align([][]*plot.Plot{plots}, tiles, dc)
	for j, p := range plots {
		p.Draw(canvases[0][j])
	}
	return c, nil
}
