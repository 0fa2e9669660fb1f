package presenter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"fedcompare-go/internal/dataset"
)

// WriteSummary prints the accuracy datasets and the confusion matrix
// totals as tables.
func WriteSummary(w io.Writer, cmp *dataset.Comparison) error {
	if err := cmp.Validate(); err != nil {
		return err
	}

	for _, d := range []dataset.AccuracyDataset{cmp.Centralized, cmp.Federated} {
		fmt.Fprintln(w, d.Title)
		header := []string{"Label"}
		for _, s := range d.Series {
			header = append(header, s.Name)
		}
		table := tablewriter.NewWriter(w)
		table.SetHeader(header)
		table.SetAlignment(tablewriter.ALIGN_RIGHT)
		for i, label := range d.Labels {
			row := []string{label}
			for _, s := range d.Series {
				row = append(row, fmt.Sprintf("%.2f", s.Values[i]))
			}
			table.Append(row)
		}
		table.Render()
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Confusion matrices")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Model", "Classes", "Total", "Correct", "Accuracy (%)"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, cm := range []*dataset.ConfusionMatrix{cmp.CentralizedMatrix, cmp.FederatedMatrix} {
		table.Append([]string{
			cm.Title(),
			strconv.Itoa(cm.Size()),
			fmt.Sprintf("%.0f", cm.Total()),
			fmt.Sprintf("%.0f", cm.Correct()),
			fmt.Sprintf("%.2f", cm.Accuracy()),
		})
	}
	table.Render()
	return nil
}
