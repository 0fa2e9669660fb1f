package dataset

import (
	"math"

	"github.com/pkg/errors"
)

// Series is one named row of bars. Values are accuracies in percent,
// one per label of the owning dataset.
type Series struct {
	Name   string    `json:"name"`
	Color  string    `json:"color"`
	Values []float64 `json:"values"`
}

// AccuracyDataset holds the accuracy results of one training paradigm.
// Series are drawn in order, later series on top of earlier ones.
type AccuracyDataset struct {
	Title  string   `json:"title"`
	YLabel string   `json:"y_label"`
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
}

// Validate checks that the dataset is non-empty and that every series
// carries one finite percentage per label.
func (d AccuracyDataset) Validate() error {
	if len(d.Labels) == 0 {
		return errors.Wrapf(ErrEmptyDataset, "%q", d.Title)
	}
	if len(d.Series) == 0 {
		return errors.Wrapf(ErrNoSeries, "%q", d.Title)
	}
	for _, s := range d.Series {
		if len(s.Values) != len(d.Labels) {
			return errors.Wrapf(ErrLengthMismatch, "%q series %q has %d values for %d labels",
				d.Title, s.Name, len(s.Values), len(d.Labels))
		}
		for i, v := range s.Values {
			if math.IsNaN(v) || v < 0 || v > 100 {
				return errors.Wrapf(ErrOutOfRange, "%q series %q value %v at %q",
					d.Title, s.Name, v, d.Labels[i])
			}
		}
	}
	return nil
}

// Clone returns a deep copy.
func (d AccuracyDataset) Clone() AccuracyDataset {
	c := AccuracyDataset{
		Title:  d.Title,
		YLabel: d.YLabel,
		Labels: append([]string(nil), d.Labels...),
		Series: make([]Series, len(d.Series)),
	}
	for i, s := range d.Series {
		c.Series[i] = Series{Name: s.Name, Color: s.Color, Values: append([]float64(nil), s.Values...)}
	}
	return c
}
