package main

import (
	"github.com/spf13/cobra"
)

var aspectsCmd = &cobra.Command{
	Use:   "aspects <chart-file>",
	Short: "Compute the aspect matrix of a chart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, service, _, err := setup(cmd)
		if err != nil {
			return err
		}

		chart, err := readChart(args[0])
		if err != nil {
			return err
		}

		return emit(cmd, service.ComputeAspectMatrix(chart))
	},
}

func init() {
	rootCmd.AddCommand(aspectsCmd)
}
