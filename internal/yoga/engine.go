package yoga

import (
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/aristath/jyotish/internal/domain"
)

const (
	defaultOverallStrength = 50.0
	negativePenalty        = 0.1 // per negative combination
)

// Engine runs the registry over charts and aggregates the findings.
type Engine struct {
	registry *Registry
	opts     Options
	disabled map[string]bool
	log      zerolog.Logger
}

// NewEngine creates an engine over the built-in detectors. Unknown names
// in disabled are rejected.
func NewEngine(opts Options, disabled []string, log zerolog.Logger) (*Engine, error) {
	registry := NewPopulatedRegistry(log)
	if err := registry.Validate(disabled); err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(disabled))
	for _, name := range disabled {
		set[name] = true
	}
	return &Engine{
		registry: registry,
		opts:     opts,
		disabled: set,
		log:      log.With().Str("component", "yoga_engine").Logger(),
	}, nil
}

// Registry exposes the detector registry.
func (e *Engine) Registry() *Registry { return e.registry }

// Analyze detects every combination in the chart. It never fails: a sparse
// chart simply yields fewer combinations.
func (e *Engine) Analyze(chart domain.Chart) Analysis {
	c := NewChartContext(chart, e.opts)
	analysis := Aggregate(e.registry.Detect(c, e.disabled))

	e.log.Debug().
		Int("combinations", len(analysis.Combinations)).
		Int("negative", analysis.NegativeCount).
		Str("dominant", string(analysis.DominantCategory)).
		Float64("overall_strength", analysis.OverallStrength).
		Msg("Yoga analysis complete")
	return analysis
}

// Aggregate groups combinations by category, picks the dominant category and
// computes the overall strength.
func Aggregate(combos []Combination) Analysis {
	a := Analysis{Combinations: combos}
	if a.Combinations == nil {
		a.Combinations = []Combination{}
	}

	byCat := make(map[Category][]Combination)
	var auspicious []float64
	for _, c := range combos {
		byCat[c.Category] = append(byCat[c.Category], c)
		if c.Auspicious {
			auspicious = append(auspicious, c.Strength)
			a.AuspiciousCount++
		} else {
			a.NegativeCount++
		}
	}

	for _, cat := range Categories {
		if list := byCat[cat]; len(list) > 0 {
			a.Categories = append(a.Categories, CategorySummary{Category: cat, Count: len(list), Combinations: list})
		}
	}
	if a.Categories == nil {
		a.Categories = []CategorySummary{}
	}

	// Ties go to the earlier category.
	best := 0
	for _, cat := range dominantCandidates {
		if n := len(byCat[cat]); n > best {
			best = n
			a.DominantCategory = cat
		}
	}

	a.OverallStrength = overallStrength(auspicious, a.NegativeCount)
	return a
}

func overallStrength(auspicious []float64, negatives int) float64 {
	if len(auspicious) == 0 {
		return defaultOverallStrength
	}
	penalty := math.Max(0, 1-negativePenalty*float64(negatives))
	return round2(clamp(stat.Mean(auspicious, nil)*penalty, 0, maxStrength))
}
