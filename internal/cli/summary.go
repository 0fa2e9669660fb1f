package cli

import (
	"github.com/spf13/cobra"

	"fedcompare-go/internal/presenter"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the accuracy results and confusion matrix totals as tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmp, err := loadComparison(currentConfig)
		if err != nil {
			return err
		}
		return presenter.WriteSummary(cmd.OutOrStdout(), cmp)
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
