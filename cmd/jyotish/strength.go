package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aristath/jyotish/internal/domain"
	"github.com/aristath/jyotish/internal/drishti"
)

var strengthCmd = &cobra.Command{
	Use:   "strength <chart-file>",
	Short: "Summarise benefic and malefic aspects received by planets",
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

		planets := domain.Grahas
		if name, _ := cmd.Flags().GetString("planet"); name != "" {
			p, err := parsePlanet(name)
			if err != nil {
				return err
			}
			planets = []domain.Planet{p}
		}

		summaries := make([]drishti.PlanetaryStrength, 0, len(planets))
		for _, p := range planets {
			summaries = append(summaries, service.ComputePlanetaryAspectStrength(p, chart))
		}
		return emit(cmd, summaries)
	},
}

func parsePlanet(name string) (domain.Planet, error) {
	p := domain.Planet(strings.ToLower(strings.TrimSpace(name)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown planet %q", name)
	}
	return p, nil
}

func init() {
	strengthCmd.Flags().StringP("planet", "p", "", "limit the summary to one planet")
	rootCmd.AddCommand(strengthCmd)
}
