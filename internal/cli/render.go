package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fedcompare-go/internal/presenter"
)

var written = color.New(color.FgGreen).SprintFunc()

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the accuracy comparison and both confusion matrices",
	RunE:  runRenderAll,
}

var renderAccuracyCmd = &cobra.Command{
	Use:   "accuracy",
	Short: "Render the side-by-side accuracy bar charts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmp, err := loadComparison(currentConfig)
		if err != nil {
			return err
		}
		out, err := presenter.NewChartRenderer(currentConfig).RenderAccuracyComparison(cmp)
		if err != nil {
			return err
		}
		printOutputs(cmd.OutOrStdout(), out)
		return nil
	},
}

var renderConfusionCmd = &cobra.Command{
	Use:   "confusion",
	Short: "Render the centralized and federated confusion matrix heatmaps",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmp, err := loadComparison(currentConfig)
		if err != nil {
			return err
		}
		out, err := presenter.NewChartRenderer(currentConfig).CompareConfusionMatrices(cmp)
		if err != nil {
			return err
		}
		printOutputs(cmd.OutOrStdout(), out...)
		return nil
	},
}

func runRenderAll(cmd *cobra.Command, args []string) error {
	cmp, err := loadComparison(currentConfig)
	if err != nil {
		return err
	}
	out, err := presenter.NewChartRenderer(currentConfig).RenderAll(cmp)
	if err != nil {
		return err
	}
	printOutputs(cmd.OutOrStdout(), out...)
	return nil
}

func printOutputs(w io.Writer, outputs ...presenter.Output) {
	for _, o := range outputs {
		fmt.Fprintf(w, "%s %s (%d panel(s))\n", written("written"), o.Path, o.Panels)
	}
}

func init() {
	renderCmd.AddCommand(renderAccuracyCmd)
	renderCmd.AddCommand(renderConfusionCmd)
	rootCmd.AddCommand(renderCmd)
}
