package presenter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"fedcompare-go/internal/dataset"
)

// ExportCSV writes both accuracy datasets and both confusion matrices as
// CSV files into dir and returns the written paths.
func ExportCSV(dir string, cmp *dataset.Comparison) ([]string, error) {
	if err := cmp.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "could not create output dir %q", dir)
	}

	files := []struct {
		name    string
		records [][]string
	}{
		{"centralized_accuracy.csv", accuracyRecords(cmp.Centralized)},
		{"federated_accuracy.csv", accuracyRecords(cmp.Federated)},
		{"centralized_confusion.csv", confusionRecords(cmp.CentralizedMatrix)},
		{"federated_confusion.csv", confusionRecords(cmp.FederatedMatrix)},
	}

	var paths []string
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := saveRecords(path, f.records); err != nil {
			return nil, err
		}
		log.Debug().Str("path", path).Int("rows", len(f.records)-1).Msg("csv written")
		paths = append(paths, path)
	}
	return paths, nil
}

func accuracyRecords(d dataset.AccuracyDataset) [][]string {
	header := []string{"label"}
	for _, s := range d.Series {
		header = append(header, s.Name)
	}
	records := [][]string{header}
	for i, label := range d.Labels {
		row := []string{label}
		for _, s := range d.Series {
			row = append(row, strconv.FormatFloat(s.Values[i], 'f', -1, 64))
		}
		records = append(records, row)
	}
	return records
}

func confusionRecords(cm *dataset.ConfusionMatrix) [][]string {
	labels := cm.Labels()
	records := [][]string{append([]string{"true\\predicted"}, labels...)}
	for i, row := range cm.Rows() {
		record := make([]string, 0, len(row)+1)
		record = append(record, labels[i])
		for _, v := range row {
			record = append(record, strconv.FormatFloat(v, 'f', -1, 64))
		}
		records = append(records, record)
	}
	return records
}

func saveRecords(filename string, records [][]string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "could not create %q", filename)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(records); err != nil {
		return errors.Wrapf(err, "could not write %q", filename)
	}
	return nil
}
