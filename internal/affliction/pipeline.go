package affliction

import "github.com/aristath/jyotish/internal/domain"

// Factor is one independent strength modifier.
type Factor struct {
	Name  string
	Apply func(pos domain.PlanetPosition, chart domain.Chart) float64
}

// Pipeline is the ordered factor chain: combustion, hemming, affliction, boost.
var Pipeline = []Factor{
	{Name: "combustion", Apply: CombustionFactor},
	{Name: "papakartari", Apply: hemmingFactor},
	{Name: "malefic_affliction", Apply: MaleficAffliction},
	{Name: "benefic_boost", Apply: BeneficBoost},
}

func hemmingFactor(pos domain.PlanetPosition, chart domain.Chart) float64 {
	if IsHemmed(pos, chart) {
		return HemmedMultiplier
	}
	return 1.0
}

// Factors holds every modifier evaluated for one planet.
type Factors struct {
	Planet     domain.Planet `json:"planet" msgpack:"planet"`
	Combustion float64       `json:"combustion" msgpack:"combustion"`
	Hemmed     bool          `json:"hemmed" msgpack:"hemmed"`
	Affliction float64       `json:"affliction" msgpack:"affliction"`
	Boost      float64       `json:"boost" msgpack:"boost"`
	Multiplier float64       `json:"multiplier" msgpack:"multiplier"`
}

// Evaluate runs the pipeline for one position.
func Evaluate(pos domain.PlanetPosition, chart domain.Chart) Factors {
	f := Factors{Planet: pos.Planet, Multiplier: 1.0}
	for _, step := range Pipeline {
		v := step.Apply(pos, chart)
		f.Multiplier *= v
		switch step.Name {
		case "combustion":
			f.Combustion = v
		case "papakartari":
			f.Hemmed = v < 1.0
		case "malefic_affliction":
			f.Affliction = v
		case "benefic_boost":
			f.Boost = v
		}
	}
	return f
}

// Multiplier is the product of every factor in the pipeline.
func Multiplier(pos domain.PlanetPosition, chart domain.Chart) float64 {
	return Evaluate(pos, chart).Multiplier
}

// Neutral is the result for a planet with no modifiers.
func Neutral(p domain.Planet) Factors {
	return Factors{Planet: p, Combustion: 1, Affliction: 1, Boost: 1, Multiplier: 1}
}

// Descriptions lists human-readable notes for each active modifier.
func (f Factors) Descriptions() []string {
	var out []string
	name := f.Planet.Name()
	if f.Combustion < 1.0 {
		out = append(out, name+" is combust")
	}
	if f.Hemmed {
		out = append(out, name+" is hemmed between malefics")
	}
	if f.Affliction < 1.0 {
		out = append(out, name+" is aspected by malefics")
	}
	if f.Boost > 1.0 {
		out = append(out, name+" is supported by benefic aspects")
	}
	return out
}
