package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"fedcompare-go/internal/presenter"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the accuracy datasets and confusion matrices as CSV files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmp, err := loadComparison(currentConfig)
		if err != nil {
			return err
		}
		dir := exportDir
		if dir == "" {
			dir = currentConfig.OutputDir
		}
		paths, err := presenter.ExportCSV(dir, cmp)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", written("written"), p)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "directory for the CSV files (defaults to --output-dir)")
	rootCmd.AddCommand(exportCmd)
}
