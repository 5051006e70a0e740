package main

import (
	"github.com/spf13/cobra"

	"github.com/aristath/jyotish/internal/yoga"
)

var yogasCmd = &cobra.Command{
	Use:   "yogas <chart-file>",
	Short: "Detect yoga combinations in a chart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, service, log, err := setup(cmd)
		if err != nil {
			return err
		}

		chart, err := readChart(args[0])
		if err != nil {
			return err
		}
		if err := chart.Validate(); err != nil {
			log.Warn().Err(err).Msg("Chart is incomplete, results will be partial")
		}

		analysis := service.ComputeYogaAnalysis(chart)
		if category, _ := cmd.Flags().GetString("category"); category != "" {
			id := analysis.ChartID
			analysis = yoga.Aggregate(analysis.InCategory(yoga.Category(category)))
			analysis.ChartID = id
		}
		return emit(cmd, analysis)
	},
}

var listYogasCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered yoga detectors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, service, _, err := setup(cmd)
		if err != nil {
			return err
		}

		type entry struct {
			Name  string     `json:"name" msgpack:"name"`
			Group yoga.Group `json:"group" msgpack:"group"`
		}
		var entries []entry
		for _, d := range service.Engine().Registry().List() {
			entries = append(entries, entry{Name: d.Name(), Group: d.Group()})
		}
		return emit(cmd, entries)
	},
}

func init() {
	yogasCmd.Flags().String("category", "", "only report one category (raja, dhana, dosha, ...)")
	yogasCmd.AddCommand(listYogasCmd)
	rootCmd.AddCommand(yogasCmd)
}
