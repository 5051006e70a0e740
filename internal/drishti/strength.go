package drishti

import (
	"github.com/aristath/jyotish/internal/domain"
)

// Influence classifies the net aspect pressure on a planet.
type Influence string

const (
	InfluenceBenefic Influence = "benefic"
	InfluenceMalefic Influence = "malefic"
	InfluenceMixed   Influence = "mixed"
	InfluenceNone    Influence = "none"
)

// mixedBand is the net score width treated as balanced.
const mixedBand = 0.15

// PlanetaryStrength summarises the aspects one planet receives.
// Remedy suggestions consume this to decide which planet needs support.
type PlanetaryStrength struct {
	Planet         domain.Planet `json:"planet" msgpack:"planet"`
	BeneficScore   float64       `json:"benefic_score" msgpack:"benefic_score"`
	MaleficScore   float64       `json:"malefic_score" msgpack:"malefic_score"`
	NetScore       float64       `json:"net_score" msgpack:"net_score"`
	Influence      Influence     `json:"influence" msgpack:"influence"`
	BeneficAspects []Relation    `json:"benefic_aspects" msgpack:"benefic_aspects"`
	MaleficAspects []Relation    `json:"malefic_aspects" msgpack:"malefic_aspects"`
}

// PlanetaryAspectStrength sums the benefic and malefic aspects received by planet.
// A planet missing from the chart yields an empty summary.
func PlanetaryAspectStrength(planet domain.Planet, chart domain.Chart, cfg Config) PlanetaryStrength {
	summary := PlanetaryStrength{Planet: planet, Influence: InfluenceNone}

	target, ok := chart.Position(planet)
	if !ok {
		return summary
	}

	cfg = cfg.withDefaults()
	waxing := moonIsWaxing(chart)

	for _, caster := range eligible(chart, cfg) {
		if caster.Planet == planet || caster.Planet.IsOuter() {
			continue
		}
		benefic, counted := casterNature(caster.Planet, waxing)
		if !counted {
			continue
		}
		for _, rel := range CalculateAll(caster, target, cfg) {
			if benefic {
				summary.BeneficScore += rel.Strength
				summary.BeneficAspects = append(summary.BeneficAspects, rel)
			} else {
				summary.MaleficScore += rel.Strength
				summary.MaleficAspects = append(summary.MaleficAspects, rel)
			}
		}
	}

	summary.NetScore = summary.BeneficScore - summary.MaleficScore
	summary.Influence = classify(summary)
	return summary
}

// casterNature reports whether the caster acts as a benefic. The Moon is a
// benefic only while waxing.
func casterNature(p domain.Planet, moonWaxing bool) (benefic bool, counted bool) {
	switch p {
	case domain.Jupiter, domain.Venus, domain.Mercury:
		return true, true
	case domain.Moon:
		return moonWaxing, true
	case domain.Sun, domain.Mars, domain.Saturn, domain.Rahu, domain.Ketu:
		return false, true
	}
	return false, false
}

func moonIsWaxing(chart domain.Chart) bool {
	sun, okSun := chart.Position(domain.Sun)
	moon, okMoon := chart.Position(domain.Moon)
	if !okSun || !okMoon {
		return true
	}
	return domain.ForwardAngle(sun.Longitude, moon.Longitude) < 180
}

func classify(s PlanetaryStrength) Influence {
	if s.BeneficScore == 0 && s.MaleficScore == 0 {
		return InfluenceNone
	}
	switch {
	case s.NetScore > mixedBand:
		return InfluenceBenefic
	case s.NetScore < -mixedBand:
		return InfluenceMalefic
	default:
		return InfluenceMixed
	}
}
