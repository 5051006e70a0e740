package yoga

import (
	"math"

	"github.com/aristath/jyotish/internal/affliction"
	"github.com/aristath/jyotish/internal/dignity"
	"github.com/aristath/jyotish/internal/domain"
)

const (
	// DefaultConjunctionOrb is the distance within which two planets are conjoined.
	DefaultConjunctionOrb = 8.0

	// Planets this far apart, give or take the tolerance, mutually oppose each other.
	mutualAspectAngle     = 180.0
	mutualAspectTolerance = 10.0
)

// Some pairs need a closer meeting to count as conjoined.
var tightPairOrbs = map[[2]domain.Planet]float64{
	{domain.Mercury, domain.Venus}: 5,
	{domain.Mars, domain.Saturn}:   6,
}

// Options tunes detection.
type Options struct {
	ConjunctionOrb float64 `json:"conjunction_orb"`
}

// DefaultOptions returns the standard detection options.
func DefaultOptions() Options {
	return Options{ConjunctionOrb: DefaultConjunctionOrb}
}

// ChartContext is the read-only view every detector works from. Positions
// carry resolved houses and the affliction factors are evaluated once.
type ChartContext struct {
	chart        domain.Chart
	opts         Options
	hasAscendant bool
	ascSign      domain.Sign
	positions    map[domain.Planet]domain.PlanetPosition
	factors      map[domain.Planet]affliction.Factors
}

// NewChartContext prepares a chart for detection. Duplicate and unknown
// planets are ignored; the first occurrence wins.
func NewChartContext(chart domain.Chart, opts Options) *ChartContext {
	if opts.ConjunctionOrb <= 0 {
		opts.ConjunctionOrb = DefaultConjunctionOrb
	}

	asc := chart.Ascendant
	hasAsc := !math.IsNaN(asc) && !math.IsInf(asc, 0) && asc >= 0 && asc < 360

	c := &ChartContext{
		opts:         opts,
		hasAscendant: hasAsc,
		positions:    make(map[domain.Planet]domain.PlanetPosition, len(chart.Positions)),
		factors:      make(map[domain.Planet]affliction.Factors, len(chart.Positions)),
	}
	if hasAsc {
		c.ascSign = domain.SignOf(asc)
	}

	resolved := domain.Chart{Ascendant: asc, Positions: make([]domain.PlanetPosition, 0, len(chart.Positions))}
	for _, pos := range chart.Positions {
		if !pos.Planet.Valid() {
			continue
		}
		if _, seen := c.positions[pos.Planet]; seen {
			continue
		}
		pos.Longitude = domain.Normalize(pos.Longitude)
		switch {
		case hasAsc:
			pos.House = chart.HouseIn(pos)
		case pos.House < 1 || pos.House > 12:
			pos.House = 0
		}
		c.positions[pos.Planet] = pos
		resolved.Positions = append(resolved.Positions, pos)
	}

	// Ketu always sits opposite Rahu.
	if rahu, ok := c.positions[domain.Rahu]; ok {
		if _, ok := c.positions[domain.Ketu]; !ok {
			ketu := domain.PlanetPosition{
				Planet:       domain.Ketu,
				Longitude:    domain.Normalize(rahu.Longitude + 180),
				Speed:        rahu.Speed,
				IsRetrograde: rahu.IsRetrograde,
			}
			if hasAsc {
				ketu.House = domain.HouseOf(ketu.Longitude, asc)
			}
			c.positions[domain.Ketu] = ketu
			resolved.Positions = append(resolved.Positions, ketu)
		}
	}
	c.chart = resolved

	for _, pos := range resolved.Positions {
		c.factors[pos.Planet] = affliction.Evaluate(pos, resolved)
	}
	return c
}

// Chart returns the resolved chart.
func (c *ChartContext) Chart() domain.Chart { return c.chart }

// HasAscendant reports whether house lordships can be derived.
func (c *ChartContext) HasAscendant() bool { return c.hasAscendant }

// Pos returns a planet's position.
func (c *ChartContext) Pos(p domain.Planet) (domain.PlanetPosition, bool) {
	pos, ok := c.positions[p]
	return pos, ok
}

// Has reports whether every planet is present.
func (c *ChartContext) Has(planets ...domain.Planet) bool {
	for _, p := range planets {
		if _, ok := c.positions[p]; !ok {
			return false
		}
	}
	return true
}

// House returns the planet's house from the ascendant, or 0 when unknown.
func (c *ChartContext) House(p domain.Planet) int {
	return c.positions[p].House
}

// Lord returns the ruler of a house. Only meaningful with an ascendant.
func (c *ChartContext) Lord(house int) domain.Planet {
	return dignity.HouseLord(c.ascSign, house)
}

// LordPosition returns the position of a house's ruler.
func (c *ChartContext) LordPosition(house int) (domain.PlanetPosition, bool) {
	if !c.hasAscendant {
		return domain.PlanetPosition{}, false
	}
	return c.Pos(c.Lord(house))
}

// Factors returns the affliction factors of a planet.
func (c *ChartContext) Factors(p domain.Planet) affliction.Factors {
	if f, ok := c.factors[p]; ok {
		return f
	}
	return affliction.Neutral(p)
}

// Occupants lists the grahas in a house, in canonical order.
func (c *ChartContext) Occupants(house int, among []domain.Planet) []domain.Planet {
	var out []domain.Planet
	for _, p := range among {
		if pos, ok := c.positions[p]; ok && pos.House == house {
			out = append(out, p)
		}
	}
	return out
}

// FromPlanet returns the whole-sign house of target counted from ref.
func (c *ChartContext) FromPlanet(ref, target domain.Planet) (int, bool) {
	rp, ok := c.positions[ref]
	if !ok {
		return 0, false
	}
	tp, ok := c.positions[target]
	if !ok {
		return 0, false
	}
	return domain.HouseFrom(rp, tp), true
}

// InHousesFrom lists the candidates occupying any of the houses counted from ref.
func (c *ChartContext) InHousesFrom(ref domain.Planet, houses []int, candidates []domain.Planet) []domain.Planet {
	var out []domain.Planet
	for _, p := range candidates {
		if p == ref {
			continue
		}
		h, ok := c.FromPlanet(ref, p)
		if ok && containsHouse(houses, h) {
			out = append(out, p)
		}
	}
	return out
}

func containsHouse(houses []int, h int) bool {
	for _, x := range houses {
		if x == h {
			return true
		}
	}
	return false
}
