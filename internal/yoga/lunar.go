package yoga

import (
	"github.com/aristath/jyotish/internal/affliction"
	"github.com/aristath/jyotish/internal/dignity"
	"github.com/aristath/jyotish/internal/domain"
)

// Planets that form the lunar flanking yogas. The Sun and the nodes never count.
var lunarFlankers = []domain.Planet{domain.Mars, domain.Mercury, domain.Jupiter, domain.Venus, domain.Saturn}

// Gaja Kesari is weakened when either participant is impaired.
const (
	gajaKesariDebilitatedJupiter = 0.8
	gajaKesariWaningMoon         = 0.9
)

var adhiBenefics = []domain.Planet{domain.Mercury, domain.Jupiter, domain.Venus}

func chandraDetectors() []Detector {
	return []Detector{
		NewDetector("sunapha", GroupChandra, detectSunapha),
		NewDetector("anapha", GroupChandra, detectAnapha),
		NewDetector("durudhara", GroupChandra, detectDurudhara),
		NewDetector("gaja_kesari", GroupChandra, detectGajaKesari),
		NewDetector("adhi_yoga", GroupChandra, detectAdhi),
	}
}

func moonFlanks(c *ChartContext) (second, twelfth []domain.Planet) {
	second = c.InHousesFrom(domain.Moon, []int{2}, lunarFlankers)
	twelfth = c.InHousesFrom(domain.Moon, []int{12}, lunarFlankers)
	return second, twelfth
}

func lunarCombination(c *ChartContext, def definition, flankers []domain.Planet) Combination {
	planets := append([]domain.Planet{domain.Moon}, flankers...)
	return c.combination(def, planets, c.standardStrength(planets))
}

// detectSunapha finds planets in the 2nd from the Moon with the 12th empty.
func detectSunapha(c *ChartContext) []Combination {
	if !c.Has(domain.Moon) {
		return nil
	}
	second, twelfth := moonFlanks(c)
	if len(second) == 0 || len(twelfth) > 0 {
		return nil
	}
	def := definition{
		name:        "sunapha",
		title:       "Sunapha Yoga",
		category:    CategoryChandra,
		description: "Planets in the second from the Moon bring self-earned wealth.",
	}
	return []Combination{lunarCombination(c, def, second)}
}

// detectAnapha finds planets in the 12th from the Moon with the 2nd empty.
func detectAnapha(c *ChartContext) []Combination {
	if !c.Has(domain.Moon) {
		return nil
	}
	second, twelfth := moonFlanks(c)
	if len(twelfth) == 0 || len(second) > 0 {
		return nil
	}
	def := definition{
		name:        "anapha",
		title:       "Anapha Yoga",
		category:    CategoryChandra,
		description: "Planets in the twelfth from the Moon give a well-formed personality and renown.",
	}
	return []Combination{lunarCombination(c, def, twelfth)}
}

// detectDurudhara finds planets on both sides of the Moon.
func detectDurudhara(c *ChartContext) []Combination {
	if !c.Has(domain.Moon) {
		return nil
	}
	second, twelfth := moonFlanks(c)
	if len(second) == 0 || len(twelfth) == 0 {
		return nil
	}
	def := definition{
		name:        "durudhara",
		title:       "Durudhara Yoga",
		category:    CategoryChandra,
		description: "Planets flank the Moon on both sides, giving comfort and generosity.",
	}
	return []Combination{lunarCombination(c, def, append(twelfth, second...))}
}

// detectGajaKesari finds Jupiter in a kendra from the Moon.
func detectGajaKesari(c *ChartContext) []Combination {
	h, ok := c.FromPlanet(domain.Moon, domain.Jupiter)
	if !ok || !dignity.IsKendra(h) {
		return nil
	}
	def := definition{
		name:        "gaja_kesari",
		title:       "Gaja Kesari Yoga",
		category:    CategoryChandra,
		description: "Jupiter in an angle from the Moon grants intelligence, reputation and lasting success.",
	}
	planets := []domain.Planet{domain.Moon, domain.Jupiter}
	s := c.standardStrength(planets)
	jup, _ := c.Pos(domain.Jupiter)
	if dignity.IsDebilitated(domain.Jupiter, jup.Sign()) {
		s = s.scale(gajaKesariDebilitatedJupiter, "weakened by a debilitated Jupiter")
	}
	if moon, _ := c.Pos(domain.Moon); affliction.IsWaningMoon(moon, c.Chart()) {
		s = s.scale(gajaKesariWaningMoon, "weakened by a waning Moon")
	}
	return []Combination{c.combination(def, planets, s)}
}

// detectAdhi finds at least two benefics in the 6th, 7th and 8th from the
// Moon with none of them elsewhere.
func detectAdhi(c *ChartContext) []Combination {
	if !c.Has(domain.Moon) {
		return nil
	}
	var present, placed []domain.Planet
	for _, p := range adhiBenefics {
		if !c.Has(p) {
			continue
		}
		present = append(present, p)
		if h, _ := c.FromPlanet(domain.Moon, p); h >= 6 && h <= 8 {
			placed = append(placed, p)
		}
	}
	if len(placed) < 2 || len(placed) != len(present) {
		return nil
	}
	def := definition{
		name:        "adhi_yoga",
		title:       "Adhi Yoga",
		category:    CategoryChandra,
		description: "Benefics in the sixth, seventh and eighth from the Moon give leadership and a secure life.",
	}
	return []Combination{lunarCombination(c, def, placed)}
}
