package yoga

import (
	"github.com/aristath/jyotish/internal/dignity"
	"github.com/aristath/jyotish/internal/domain"
)

type mahapurushaRule struct {
	planet      domain.Planet
	name        string
	title       string
	description string
}

var mahapurushaRules = []mahapurushaRule{
	{domain.Mars, "ruchaka", "Ruchaka Yoga", "Mars strong in an angle gives courage, command and physical vigour."},
	{domain.Mercury, "bhadra", "Bhadra Yoga", "Mercury strong in an angle gives intellect, eloquence and skill in trade."},
	{domain.Jupiter, "hamsa", "Hamsa Yoga", "Jupiter strong in an angle gives wisdom, virtue and respect."},
	{domain.Venus, "malavya", "Malavya Yoga", "Venus strong in an angle gives beauty, comfort and artistic refinement."},
	{domain.Saturn, "sasa", "Sasa Yoga", "Saturn strong in an angle gives discipline, endurance and authority over many."},
}

func mahapurushaDetectors() []Detector {
	out := make([]Detector, 0, len(mahapurushaRules))
	for _, rule := range mahapurushaRules {
		rule := rule
		out = append(out, NewDetector(rule.name, GroupMahapurusha, func(c *ChartContext) []Combination {
			return detectMahapurusha(c, rule)
		}))
	}
	return out
}

// detectMahapurusha fires when the planet is exalted or in its own sign
// while occupying a kendra from the ascendant.
func detectMahapurusha(c *ChartContext, rule mahapurushaRule) []Combination {
	pos, ok := c.Pos(rule.planet)
	if !ok || !dignity.IsKendra(pos.House) || !dignity.IsStrong(rule.planet, pos.Sign()) {
		return nil
	}
	def := definition{
		name:        rule.name,
		title:       rule.title,
		category:    CategoryMahapurusha,
		description: rule.description,
	}
	planets := []domain.Planet{rule.planet}
	return []Combination{c.combination(def, planets, c.mahapurushaStrength(rule.planet))}
}
