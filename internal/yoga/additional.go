package yoga

import (
	"github.com/aristath/jyotish/internal/dignity"
	"github.com/aristath/jyotish/internal/domain"
)

const gandmoolIntensity = 50.0

// Junction nakshatras where a water sign meets a fire sign.
var gandmoolNakshatras = map[int]string{
	0:  "Ashwini",
	8:  "Ashlesha",
	9:  "Magha",
	17: "Jyeshtha",
	18: "Mula",
	26: "Revati",
}

func additionalDetectors() []Detector {
	return []Detector{
		NewDetector("gandmool_dosha", GroupAdditional, detectGandmool),
		NewDetector("dignity_markers", GroupAdditional, detectDignityMarkers),
	}
}

// detectGandmool finds a Moon in one of the six junction nakshatras.
func detectGandmool(c *ChartContext) []Combination {
	moon, ok := c.Pos(domain.Moon)
	if !ok {
		return nil
	}
	name, ok := gandmoolNakshatras[domain.Nakshatra(moon.Longitude)]
	if !ok {
		return nil
	}
	def := definition{
		name:        "gandmool_dosha",
		title:       "Gandmool Dosha",
		category:    CategoryDosha,
		description: "The Moon sits on a junction nakshatra, asking for care in early life.",
		negative:    true,
	}
	return []Combination{c.combination(def, []domain.Planet{domain.Moon}, doshaStrength(gandmoolIntensity), "Moon in "+name)}
}

// detectDignityMarkers reports each visible planet that is exalted or in its own sign.
func detectDignityMarkers(c *ChartContext) []Combination {
	var out []Combination
	for _, p := range domain.MainPlanets {
		pos, ok := c.Pos(p)
		if !ok {
			continue
		}
		var def definition
		switch {
		case dignity.IsExalted(p, pos.Sign()):
			def = definition{
				name:        "uchcha_" + string(p),
				title:       "Uchcha " + p.Name(),
				description: p.Name() + " is exalted and gives its best results.",
			}
		case dignity.IsInOwnSign(p, pos.Sign()):
			def = definition{
				name:        "swakshetra_" + string(p),
				title:       "Swakshetra " + p.Name(),
				description: p.Name() + " is at home in its own sign.",
			}
		default:
			continue
		}
		def.category = CategorySpecial
		planets := []domain.Planet{p}
		out = append(out, c.combination(def, planets, c.standardStrength(planets)))
	}
	return out
}
