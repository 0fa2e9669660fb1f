package dataset

import "github.com/pkg/errors"

const (
	DefaultTitle             = "Centralized vs Federated Learning Accuracy Comparison"
	CentralizedMatrixTitle   = "Centralized Model"
	FederatedMatrixTitle     = "Federated Model"
	defaultAccuracyAxisLabel = "Accuracy (%)"
)

// Comparison is everything the charts are drawn from.
type Comparison struct {
	Title             string
	Centralized       AccuracyDataset
	Federated         AccuracyDataset
	CentralizedMatrix *ConfusionMatrix
	FederatedMatrix   *ConfusionMatrix
}

// Default returns the study results the tool ships with. Each call
// builds fresh values.
func Default() *Comparison {
	return &Comparison{
		Title: DefaultTitle,
		Centralized: AccuracyDataset{
			Title:  "Centralized Learning",
			YLabel: defaultAccuracyAxisLabel,
			Labels: []string{"Model 1", "Model 2", "Model 3"},
			Series: []Series{
				// accuracy on the entire test set
				{Name: "Entire Dataset", Color: "blue", Values: []float64{65.69, 68.72, 68.36}},
				// accuracy on unseen digits [1,3,7], [2,5,8], [4,6,9]; never measured
				{Name: "Unseen Digits", Color: "red", Values: []float64{0, 0, 0}},
			},
		},
		Federated: AccuracyDataset{
			Title:  "Federated Learning",
			YLabel: defaultAccuracyAxisLabel,
			Labels: []string{"All Digits", "[1,3,7]", "[2,5,8]", "[4,6,9]"},
			Series: []Series{
				{Name: "Federated Results", Color: "green", Values: []float64{95.94, 97.35, 94.48, 94.64}},
			},
		},
		CentralizedMatrix: mustMatrix(CentralizedMatrixTitle, [][]float64{
			{50, 2, 1},
			{1, 45, 5},
			{0, 3, 52},
		}),
		FederatedMatrix: mustMatrix(FederatedMatrixTitle, [][]float64{
			{58, 1, 0},
			{1, 57, 2},
			{0, 1, 59},
		}),
	}
}

func mustMatrix(title string, rows [][]float64) *ConfusionMatrix {
	m, err := NewConfusionMatrix(title, nil, rows)
	if err != nil {
		panic(err)
	}
	return m
}

// Validate checks both accuracy datasets and that both matrices are set.
func (c *Comparison) Validate() error {
	if err := c.Centralized.Validate(); err != nil {
		return err
	}
	if err := c.Federated.Validate(); err != nil {
		return err
	}
	if c.CentralizedMatrix == nil {
		return errors.Wrap(ErrEmptyMatrix, "centralized")
	}
	if c.FederatedMatrix == nil {
		return errors.Wrap(ErrEmptyMatrix, "federated")
	}
	return nil
}
