package cli

import (
	"fmt"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fedcompare-go/internal/dataset"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration or dataset",
}

var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		if file := viper.ConfigFileUsed(); file == "" {
			fmt.Fprintln(w, "No config file loaded (using defaults).")
		} else {
			fmt.Fprintf(w, "Config file: %s\n\n", file)
		}
		fmt.Fprintln(w, "Current configuration:")
		fmt.Fprintf(w, "  Output dir:       %s\n", currentConfig.OutputDir)
		fmt.Fprintf(w, "  Format:           %s\n", currentConfig.Format)
		fmt.Fprintf(w, "  Dataset:          %s\n", orBuiltin(currentConfig.Dataset))
		fmt.Fprintf(w, "  Central. matrix:  %s\n", orBuiltin(currentConfig.CentralizedMatrix))
		fmt.Fprintf(w, "  Federated matrix: %s\n", orBuiltin(currentConfig.FederatedMatrix))
		fmt.Fprintf(w, "  Accuracy figure:  %gx%g in\n", currentConfig.AccuracyWidth, currentConfig.AccuracyHeight)
		fmt.Fprintf(w, "  Confusion figure: %gx%g in\n", currentConfig.ConfusionWidth, currentConfig.ConfusionHeight)
		fmt.Fprintf(w, "  Palette size:     %d\n", currentConfig.PaletteSize)
		fmt.Fprintf(w, "  Annotate cells:   %v\n", currentConfig.Annotate)
		fmt.Fprintf(w, "  Debug:            %v\n", currentConfig.Debug)
	},
}

var showDatasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Pretty-print the comparison the charts are drawn from",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmp, err := loadComparison(currentConfig)
		if err != nil {
			return err
		}
		_, err = pp.Fprintln(cmd.OutOrStdout(), datasetView(cmp))
		return err
	},
}

type matrixView struct {
	Title  string
	Labels []string
	Counts [][]float64
}

type comparisonView struct {
	Title       string
	Centralized dataset.AccuracyDataset
	Federated   dataset.AccuracyDataset
	Confusion   []matrixView
}

func datasetView(cmp *dataset.Comparison) comparisonView {
	v := comparisonView{Title: cmp.Title, Centralized: cmp.Centralized, Federated: cmp.Federated}
	for _, m := range []*dataset.ConfusionMatrix{cmp.CentralizedMatrix, cmp.FederatedMatrix} {
		v.Confusion = append(v.Confusion, matrixView{Title: m.Title(), Labels: m.Labels(), Counts: m.Rows()})
	}
	return v
}

func orBuiltin(s string) string {
	if s == "" {
		return "(built-in)"
	}
	return s
}

func init() {
	showCmd.AddCommand(showConfigCmd)
	showCmd.AddCommand(showDatasetCmd)
	rootCmd.AddCommand(showCmd)
}
