package main

import (
	"github.com/spf13/cobra"

	"github.com/aristath/jyotish/internal/analysis"
	"github.com/aristath/jyotish/internal/utils"
)

var batchCmd = &cobra.Command{
	Use:   "batch <chart-file>...",
	Short: "Analyse many charts concurrently",
	Long:  "Each file holds one chart or an array of charts. Reports are written in input order.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, service, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer utils.OperationTimer("batch", log)()

		charts, err := readCharts(args)
		if err != nil {
			return err
		}

		workers, _ := cmd.Flags().GetInt("workers")
		if workers <= 0 {
			workers = cfg.WorkerCount()
		}

		reports := analysis.NewBatchAnalyzer(service, workers, log).AnalyzeBatch(charts)
		return emit(cmd, reports)
	},
}

func init() {
	batchCmd.Flags().IntP("workers", "w", 0, "worker goroutines (0 uses ANALYSIS_WORKERS)")
	rootCmd.AddCommand(batchCmd)
}
