package yoga

import (
	"fmt"

	"github.com/aristath/jyotish/internal/affliction"
	"github.com/aristath/jyotish/internal/dignity"
	"github.com/aristath/jyotish/internal/domain"
)

var wealthHouses = []int{2, 5, 9, 11}

func dhanaDetectors() []Detector {
	return []Detector{
		NewDetector("dhana_yoga", GroupDhana, detectDhanaLords),
		NewDetector("lakshmi_yoga", GroupDhana, detectLakshmi),
		NewDetector("dhana_second_house", GroupDhana, detectSecondHouseWealth),
		NewDetector("chandra_mangala_yoga", GroupDhana, detectChandraMangala),
		NewDetector("labha_yoga", GroupDhana, detectLabha),
	}
}

// detectDhanaLords finds conjunctions between lords of the wealth houses.
func detectDhanaLords(c *ChartContext) []Combination {
	if !c.HasAscendant() {
		return nil
	}
	def := definition{
		name:        "dhana_yoga",
		title:       "Dhana Yoga",
		category:    CategoryDhana,
		description: "Lords of the wealth houses combine, supporting the accumulation of resources.",
	}

	var out []Combination
	seen := make(map[[2]domain.Planet]bool)
	for i := 0; i < len(wealthHouses); i++ {
		for j := i + 1; j < len(wealthHouses); j++ {
			a, b := c.Lord(wealthHouses[i]), c.Lord(wealthHouses[j])
			if a == b || !c.Conjunct(a, b) {
				continue
			}
			key := [2]domain.Planet{a, b}
			if a.Index() > b.Index() {
				key = [2]domain.Planet{b, a}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			note := fmt.Sprintf("lords of houses %d and %d conjoined", wealthHouses[i], wealthHouses[j])
			out = append(out, c.combination(def, []domain.Planet{a, b}, c.standardStrength([]domain.Planet{a, b}), note))
		}
	}
	return out
}

// detectLakshmi finds a dignified Venus in a kendra or trikona.
func detectLakshmi(c *ChartContext) []Combination {
	pos, ok := c.Pos(domain.Venus)
	if !ok || !dignity.IsStrong(domain.Venus, pos.Sign()) {
		return nil
	}
	if !dignity.IsKendra(pos.House) && !dignity.IsTrikona(pos.House) {
		return nil
	}
	def := definition{
		name:        "lakshmi_yoga",
		title:       "Lakshmi Yoga",
		category:    CategoryDhana,
		description: "A dignified Venus in an angle or trine blesses with prosperity and grace.",
	}
	planets := []domain.Planet{domain.Venus}
	return []Combination{c.combination(def, planets, c.standardStrength(planets))}
}

// detectSecondHouseWealth finds conjoined planets in the house of wealth.
func detectSecondHouseWealth(c *ChartContext) []Combination {
	occupants := c.Occupants(2, domain.Grahas)
	var joined []domain.Planet
	in := make(map[domain.Planet]bool)
	for i := 0; i < len(occupants); i++ {
		for j := i + 1; j < len(occupants); j++ {
			if !c.Conjunct(occupants[i], occupants[j]) {
				continue
			}
			for _, p := range []domain.Planet{occupants[i], occupants[j]} {
				if !in[p] {
					in[p] = true
					joined = append(joined, p)
				}
			}
		}
	}
	if len(joined) < 2 {
		return nil
	}
	def := definition{
		name:        "dhana_second_house",
		title:       "Dhana Yoga (Second House)",
		category:    CategoryDhana,
		description: "Planets conjoined in the second house concentrate on earnings and family wealth.",
	}
	return []Combination{c.combination(def, joined, c.standardStrength(joined))}
}

// detectChandraMangala finds the Moon conjoined with Mars.
func detectChandraMangala(c *ChartContext) []Combination {
	if !c.Conjunct(domain.Moon, domain.Mars) {
		return nil
	}
	def := definition{
		name:        "chandra_mangala_yoga",
		title:       "Chandra Mangala Yoga",
		category:    CategoryDhana,
		description: "The Moon joins Mars, giving enterprise and earning power.",
	}
	planets := []domain.Planet{domain.Moon, domain.Mars}
	return []Combination{c.combination(def, planets, c.standardStrength(planets))}
}

// detectLabha finds an unafflicted 11th lord well placed.
func detectLabha(c *ChartContext) []Combination {
	pos, ok := c.LordPosition(11)
	if !ok {
		return nil
	}
	h := pos.House
	if !dignity.IsKendra(h) && !dignity.IsTrikona(h) && h != 11 {
		return nil
	}
	if dignity.IsDebilitated(pos.Planet, pos.Sign()) || affliction.IsCombust(pos, c.Chart()) {
		return nil
	}
	def := definition{
		name:        "labha_yoga",
		title:       "Labha Yoga",
		category:    CategoryDhana,
		description: "The lord of gains is well placed and free of affliction.",
	}
	planets := []domain.Planet{pos.Planet}
	return []Combination{c.combination(def, planets, c.standardStrength(planets), fmt.Sprintf("lord of the 11th in house %d", h))}
}
