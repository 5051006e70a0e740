package yoga

import (
	"fmt"

	"github.com/aristath/jyotish/internal/dignity"
	"github.com/aristath/jyotish/internal/domain"
)

const viparitaFactor = 0.8

var (
	rajaKendras  = []int{1, 4, 7, 10}
	rajaTrikonas = []int{5, 9}
)

func rajaDetectors() []Detector {
	return []Detector{
		NewDetector("raja_yoga", GroupRaja, detectKendraTrikonaRaja),
		NewDetector("yogakaraka", GroupRaja, detectYogakaraka),
		NewDetector("viparita_raja_yoga", GroupRaja, detectViparitaRaja),
		NewDetector("neecha_bhanga_raja_yoga", GroupRaja, detectNeechaBhanga),
		NewDetector("chandra_kendra_raja_yoga", GroupRaja, detectChandraKendraRaja),
	}
}

// detectKendraTrikonaRaja finds every link between a kendra lord and a
// trikona lord. Each planet pair is reported once.
func detectKendraTrikonaRaja(c *ChartContext) []Combination {
	if !c.HasAscendant() {
		return nil
	}
	def := definition{
		name:        "raja_yoga",
		title:       "Raja Yoga",
		category:    CategoryRaja,
		description: "A kendra lord joins a trikona lord, bringing authority and recognition.",
	}

	var out []Combination
	seen := make(map[[2]domain.Planet]bool)
	for _, kh := range rajaKendras {
		for _, th := range rajaTrikonas {
			a, b := c.Lord(kh), c.Lord(th)
			if a == b {
				continue
			}
			key := [2]domain.Planet{a, b}
			if a.Index() > b.Index() {
				key = [2]domain.Planet{b, a}
			}
			if seen[key] {
				continue
			}
			link := c.Connect(a, b)
			if link == ConnectionNone {
				continue
			}
			seen[key] = true
			note := fmt.Sprintf("lords of houses %d and %d in %s", kh, th, link)
			out = append(out, c.combination(def, []domain.Planet{a, b}, c.standardStrength([]domain.Planet{a, b}), note))
		}
	}
	return out
}

// detectYogakaraka finds a single planet ruling both a kendra and a trikona.
func detectYogakaraka(c *ChartContext) []Combination {
	if !c.HasAscendant() {
		return nil
	}
	def := definition{
		name:        "yogakaraka",
		title:       "Yogakaraka",
		category:    CategoryRaja,
		description: "One planet rules both an angle and a trine and acts as a royal significator.",
	}

	var out []Combination
	seen := make(map[domain.Planet]bool)
	for _, kh := range []int{4, 7, 10} {
		for _, th := range rajaTrikonas {
			p := c.Lord(kh)
			if p != c.Lord(th) || seen[p] || !c.Has(p) {
				continue
			}
			seen[p] = true
			note := fmt.Sprintf("%s rules houses %d and %d", p.Name(), kh, th)
			out = append(out, c.combination(def, []domain.Planet{p}, c.standardStrength([]domain.Planet{p}), note))
		}
	}
	return out
}

// detectViparitaRaja finds exchanges between the lords of the dusthanas.
func detectViparitaRaja(c *ChartContext) []Combination {
	if !c.HasAscendant() {
		return nil
	}
	def := definition{
		name:        "viparita_raja_yoga",
		title:       "Viparita Raja Yoga",
		category:    CategoryRaja,
		description: "Lords of difficult houses exchange signs, turning adversity into gain.",
	}

	houses := dignity.Dusthanas
	var out []Combination
	for i := 0; i < len(houses); i++ {
		for j := i + 1; j < len(houses); j++ {
			a, b := c.Lord(houses[i]), c.Lord(houses[j])
			if !c.Exchange(a, b) {
				continue
			}
			s := c.standardStrength([]domain.Planet{a, b}).scale(viparitaFactor, "")
			note := fmt.Sprintf("lords of houses %d and %d exchange signs", houses[i], houses[j])
			out = append(out, c.combination(def, []domain.Planet{a, b}, s, note))
		}
	}
	return out
}

// detectNeechaBhanga finds debilitated planets whose fall is cancelled.
func detectNeechaBhanga(c *ChartContext) []Combination {
	def := definition{
		name:        "neecha_bhanga_raja_yoga",
		title:       "Neecha Bhanga Raja Yoga",
		category:    CategoryRaja,
		description: "A debilitated planet has its fall cancelled and rises to strength.",
	}

	var out []Combination
	for _, p := range domain.MainPlanets {
		pos, ok := c.Pos(p)
		if !ok || !dignity.IsDebilitated(p, pos.Sign()) {
			continue
		}
		conditions := c.neechaBhangaConditions(pos)
		if len(conditions) == 0 {
			continue
		}
		s := c.standardStrength([]domain.Planet{p}).add(float64(len(conditions)-1)*5, "")
		out = append(out, c.combination(def, []domain.Planet{p}, s, conditions...))
	}
	return out
}

func (c *ChartContext) neechaBhangaConditions(pos domain.PlanetPosition) []string {
	var met []string
	debLord := dignity.SignLord(pos.Sign())
	exSign, _ := dignity.ExaltationSign(pos.Planet)
	exLord := dignity.SignLord(exSign)

	if c.HasAscendant() {
		if dignity.IsKendra(c.House(debLord)) && c.Has(debLord) {
			met = append(met, "lord of the debilitation sign is in a kendra")
		}
		if dignity.IsKendra(c.House(exLord)) && c.Has(exLord) {
			met = append(met, "lord of the exaltation sign is in a kendra")
		}
	}
	if h, ok := c.FromPlanet(domain.Moon, debLord); ok && debLord != domain.Moon && dignity.IsKendra(h) {
		met = append(met, "lord of the debilitation sign is in a kendra from the Moon")
	}
	for _, other := range domain.MainPlanets {
		if other == pos.Planet {
			continue
		}
		op, ok := c.Pos(other)
		if ok && op.Sign() == pos.Sign() && dignity.IsExalted(other, op.Sign()) {
			met = append(met, "shares its sign with the exalted "+other.Name())
			break
		}
	}
	return met
}

// detectChandraKendraRaja finds Jupiter, Venus and Mercury all angular from the Moon.
func detectChandraKendraRaja(c *ChartContext) []Combination {
	planets := []domain.Planet{domain.Jupiter, domain.Venus, domain.Mercury}
	if !c.Has(domain.Moon) || !c.Has(planets...) {
		return nil
	}
	for _, p := range planets {
		h, _ := c.FromPlanet(domain.Moon, p)
		if !dignity.IsKendra(h) {
			return nil
		}
	}
	def := definition{
		name:        "chandra_kendra_raja_yoga",
		title:       "Chandra Kendra Raja Yoga",
		category:    CategoryRaja,
		description: "The three benefics occupy angles from the Moon, granting status and comfort.",
	}
	return []Combination{c.combination(def, planets, c.standardStrength(planets), "Jupiter, Venus and Mercury in kendras from the Moon")}
}
