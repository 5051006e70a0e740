// Package analysis exposes the aspect and yoga engines as one service.
package analysis

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aristath/jyotish/internal/config"
	"github.com/aristath/jyotish/internal/domain"
	"github.com/aristath/jyotish/internal/drishti"
	"github.com/aristath/jyotish/internal/utils"
	"github.com/aristath/jyotish/internal/yoga"
)

// Service runs aspect and yoga computations with a validated configuration.
// It holds no per-chart state and is safe for concurrent use.
type Service struct {
	aspects drishti.Config
	engine  *yoga.Engine
	log     zerolog.Logger
}

// NewService validates cfg and builds the engines it describes.
func NewService(cfg *config.Config, log zerolog.Logger) (*Service, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	aspects, err := cfg.Drishti()
	if err != nil {
		return nil, err
	}

	engine, err := yoga.NewEngine(cfg.Yoga(), cfg.DisabledYogas, log)
	if err != nil {
		return nil, fmt.Errorf("failed to build yoga engine: %w", err)
	}

	return &Service{
		aspects: aspects,
		engine:  engine,
		log:     log.With().Str("component", "analysis").Logger(),
	}, nil
}

// AspectConfig returns the aspect configuration the service was built with.
func (s *Service) AspectConfig() drishti.Config {
	return s.aspects
}

// Engine returns the underlying yoga engine.
func (s *Service) Engine() *yoga.Engine {
	return s.engine
}

// ComputeAspectMatrix builds the aspect matrix with the service configuration.
func (s *Service) ComputeAspectMatrix(chart domain.Chart) drishti.Matrix {
	matrix, _ := s.ComputeAspectMatrixWith(chart, s.aspects)
	return matrix
}

// ComputeAspectMatrixWith builds the aspect matrix with an explicit
// configuration, rejecting it when invalid.
func (s *Service) ComputeAspectMatrixWith(chart domain.Chart, cfg drishti.Config) (drishti.Matrix, error) {
	if err := cfg.Validate(); err != nil {
		return drishti.Matrix{}, err
	}

	timer := utils.NewTimer("aspect_matrix", s.log)
	matrix := drishti.BuildMatrix(chart, cfg)
	timer.StopWithContext(map[string]interface{}{
		"chart_id":  s.chartID(chart),
		"relations": len(matrix.Relations),
		"mutual":    len(matrix.Mutual),
	})
	return matrix, nil
}

// ComputeYogaAnalysis detects every combination in the chart. The result
// carries the chart fingerprint as its ChartID.
func (s *Service) ComputeYogaAnalysis(chart domain.Chart) yoga.Analysis {
	id := s.chartID(chart)

	timer := utils.NewTimer("yoga_analysis", s.log)
	analysis := s.engine.Analyze(chart)
	analysis.ChartID = id
	timer.StopWithContext(map[string]interface{}{
		"chart_id":     id,
		"combinations": len(analysis.Combinations),
		"auspicious":   analysis.AuspiciousCount,
		"negative":     analysis.NegativeCount,
	})

	s.log.Info().
		Str("chart_id", id).
		Int("combinations", len(analysis.Combinations)).
		Str("dominant", string(analysis.DominantCategory)).
		Float64("overall_strength", analysis.OverallStrength).
		Msg("Yoga analysis computed")
	return analysis
}

// ComputePlanetaryAspectStrength summarises the aspects planet receives,
// using the service configuration.
func (s *Service) ComputePlanetaryAspectStrength(planet domain.Planet, chart domain.Chart) drishti.PlanetaryStrength {
	strength, _ := s.ComputePlanetaryAspectStrengthWith(planet, chart, s.aspects)
	return strength
}

// ComputePlanetaryAspectStrengthWith is ComputePlanetaryAspectStrength with
// an explicit configuration.
func (s *Service) ComputePlanetaryAspectStrengthWith(planet domain.Planet, chart domain.Chart, cfg drishti.Config) (drishti.PlanetaryStrength, error) {
	if err := cfg.Validate(); err != nil {
		return drishti.PlanetaryStrength{}, err
	}

	strength := drishti.PlanetaryAspectStrength(planet, chart, cfg)
	s.log.Debug().
		Str("chart_id", s.chartID(chart)).
		Str("planet", string(planet)).
		Float64("net_score", strength.NetScore).
		Str("influence", string(strength.Influence)).
		Msg("Planetary aspect strength computed")
	return strength, nil
}

// chartID returns the fingerprint string, or empty when it cannot be derived.
func (s *Service) chartID(chart domain.Chart) string {
	id, err := chart.Fingerprint()
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to fingerprint chart")
		return ""
	}
	return id.String()
}
