package dataset

import (
	_ "embed"
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/xeipuuv/gojsonschema"

	"fedcompare-go/pkg/readmatrix"
)

//go:embed schema.json
var schemaJSON []byte

type matrixDocument struct {
	Title  string      `json:"title"`
	Labels []string    `json:"labels"`
	Counts [][]float64 `json:"counts"`
}

type document struct {
	Title       string           `json:"title"`
	Centralized *AccuracyDataset `json:"centralized"`
	Federated   *AccuracyDataset `json:"federated"`
	Confusion   struct {
		Centralized *matrixDocument `json:"centralized"`
		Federated   *matrixDocument `json:"federated"`
	} `json:"confusion"`
}

// Load reads a comparison document from a JSON file.
func Load(path string) (*Comparison, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read dataset file %q", path)
	}
	cmp, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset file %q", path)
	}
	return cmp, nil
}

// Parse validates data against the dataset schema and decodes it. Sections
// missing from the document keep their default values.
func Parse(data []byte) (*Comparison, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, errors.Wrap(err, "schema validation error")
	}
	if !result.Valid() {
		var msgs []string
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, errors.Wrap(ErrInvalidDocument, strings.Join(msgs, ", "))
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "could not decode dataset")
	}

	cmp := Default()
	if doc.Title != "" {
		cmp.Title = doc.Title
	}
	if doc.Centralized != nil {
		cmp.Centralized = merge(cmp.Centralized, *doc.Centralized)
	}
	if doc.Federated != nil {
		cmp.Federated = merge(cmp.Federated, *doc.Federated)
	}
	if m := doc.Confusion.Centralized; m != nil {
		if cmp.CentralizedMatrix, err = m.build(CentralizedMatrixTitle); err != nil {
			return nil, err
		}
	}
	if m := doc.Confusion.Federated; m != nil {
		if cmp.FederatedMatrix, err = m.build(FederatedMatrixTitle); err != nil {
			return nil, err
		}
	}

	if err := cmp.Validate(); err != nil {
		return nil, err
	}
	log.Debug().
		Str("title", cmp.Title).
		Int("centralized", len(cmp.Centralized.Labels)).
		Int("federated", len(cmp.Federated.Labels)).
		Msg("parsed dataset")
	return cmp, nil
}

// merge keeps the default title and axis label when the document leaves
// them out.
func merge(def, in AccuracyDataset) AccuracyDataset {
	out := in.Clone()
	if out.Title == "" {
		out.Title = def.Title
	}
	if out.YLabel == "" {
		out.YLabel = def.YLabel
	}
	return out
}

func (m *matrixDocument) build(defaultTitle string) (*ConfusionMatrix, error) {
	title := m.Title
	if title == "" {
		title = defaultTitle
	}
	return NewConfusionMatrix(title, m.Labels, m.Counts)
}

// LoadMatrixFile reads a confusion matrix from a whitespace separated text
// file.
func LoadMatrixFile(path, title string) (*ConfusionMatrix, error) {
	m, err := readmatrix.ReadMatrix(path)
	if err != nil {
		return nil, err
	}
	cm, err := FromDense(title, nil, m)
	if err != nil {
		return nil, errors.Wrapf(err, "matrix file %q", path)
	}
	return cm, nil
}
