package yoga

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/aristath/jyotish/internal/dignity"
	"github.com/aristath/jyotish/internal/domain"
)

const (
	baseStrength = 50.0
	minStrength  = 10.0
	maxStrength  = 100.0

	bonusExalted     = 15.0
	bonusOwnSign     = 12.0
	bonusFriendSign  = 6.0
	bonusGoodHouse   = 8.0 // kendra or trikona
	bonusWealthHouse = 4.0 // 2nd or 11th
	bonusDigbala     = 7.0

	penaltyDebilitated = 15.0
	penaltyDusthana    = 10.0

	retroBenefic = 5.0
	retroSaturn  = 3.0
	retroMars    = -2.0

	mahapurushaBase    = 70.0
	mahapurushaMin     = 30.0
	mahapurushaExalted = 15.0
	mahapurushaOwnSign = 10.0
	mahapurushaDigbala = 7.0
	moonKendraFactor   = 1.15
	moonTrikonaFactor  = 1.10
	moonDusthanaFactor = 0.90
)

// Mahapurusha house bonuses: the 1st and 10th are strongest.
var mahapurushaHouseBonus = map[int]float64{1: 10, 10: 10, 7: 8, 4: 6}

// score is a strength pair plus the notes explaining it.
type score struct {
	base     float64
	strength float64
	notes    []string
}

// scale multiplies the final strength, keeping it inside the bounds.
func (s score) scale(factor float64, note string) score {
	s.strength = clamp(s.strength*factor, minStrength, maxStrength)
	if note != "" {
		s.notes = append(s.notes, note)
	}
	return s
}

// add raises both strengths by a flat amount.
func (s score) add(amount float64, note string) score {
	s.base = clamp(s.base+amount, minStrength, maxStrength)
	s.strength = clamp(s.strength+amount, minStrength, maxStrength)
	if note != "" {
		s.notes = append(s.notes, note)
	}
	return s
}

// dignityBonus is the additive adjustment for one participant.
func (c *ChartContext) dignityBonus(pos domain.PlanetPosition) (float64, []string) {
	var bonus float64
	var notes []string
	sign := pos.Sign()
	name := pos.Planet.Name()

	switch {
	case dignity.IsExalted(pos.Planet, sign):
		bonus += bonusExalted
		notes = append(notes, name+" is exalted")
	case dignity.IsInOwnSign(pos.Planet, sign):
		bonus += bonusOwnSign
		notes = append(notes, name+" is in its own sign")
	case dignity.IsDebilitated(pos.Planet, sign):
		bonus -= penaltyDebilitated
		notes = append(notes, name+" is debilitated")
	case dignity.IsInFriendSign(pos.Planet, sign):
		bonus += bonusFriendSign
	}

	switch h := pos.House; {
	case h == 0:
	case dignity.IsKendra(h) || dignity.IsTrikona(h):
		bonus += bonusGoodHouse
	case h == 2 || h == 11:
		bonus += bonusWealthHouse
	case dignity.IsDusthana(h):
		bonus -= penaltyDusthana
		notes = append(notes, name+" occupies a dusthana")
	}

	if dignity.HasDirectionalStrength(pos) {
		bonus += bonusDigbala
		notes = append(notes, name+" has directional strength")
	}

	if pos.IsRetrograde {
		switch {
		case pos.Planet == domain.Saturn:
			bonus += retroSaturn
		case pos.Planet == domain.Mars:
			bonus += retroMars
		case dignity.IsNaturalBenefic(pos.Planet) && pos.Planet != domain.Moon:
			bonus += retroBenefic
		}
	}
	return bonus, notes
}

// standardStrength is 50 plus the mean participant bonus, multiplied by the
// product of every participant's affliction multiplier.
func (c *ChartContext) standardStrength(planets []domain.Planet) score {
	return c.strengthWith(planets, nil)
}

// strengthWith scores like standardStrength; override may replace a
// participant's multiplier where a rule tolerates a damaging condition.
func (c *ChartContext) strengthWith(planets []domain.Planet, override func(p domain.Planet, multiplier float64) float64) score {
	var bonuses []float64
	var notes []string
	multiplier := 1.0
	for _, p := range planets {
		pos, ok := c.positions[p]
		if !ok {
			continue
		}
		b, n := c.dignityBonus(pos)
		bonuses = append(bonuses, b)
		notes = append(notes, n...)

		f := c.Factors(p)
		m := f.Multiplier
		if override != nil {
			m = override(p, m)
		}
		multiplier *= m
		notes = append(notes, f.Descriptions()...)
	}

	base := baseStrength
	if len(bonuses) > 0 {
		base += stat.Mean(bonuses, nil)
	}
	base = clamp(base, minStrength, maxStrength)
	return score{base: base, strength: clamp(base*multiplier, minStrength, maxStrength), notes: notes}
}

// patternStrength scores whole-chart shapes. The multipliers are averaged
// rather than multiplied so seven participants do not crush the result.
func (c *ChartContext) patternStrength(planets []domain.Planet) score {
	var bonuses, multipliers []float64
	for _, p := range planets {
		pos, ok := c.positions[p]
		if !ok {
			continue
		}
		b, _ := c.dignityBonus(pos)
		bonuses = append(bonuses, b)
		multipliers = append(multipliers, c.Factors(p).Multiplier)
	}
	if len(bonuses) == 0 {
		return score{base: baseStrength, strength: baseStrength}
	}
	base := clamp(baseStrength+stat.Mean(bonuses, nil), minStrength, maxStrength)
	return score{base: base, strength: clamp(base*stat.Mean(multipliers, nil), minStrength, maxStrength)}
}

// mahapurushaStrength scores the five great-person yogas: a higher base,
// dignity and angular bonuses, the planet's own factors, then the Moon's
// placement relative to it.
func (c *ChartContext) mahapurushaStrength(p domain.Planet) score {
	pos, ok := c.positions[p]
	if !ok {
		return score{base: mahapurushaMin, strength: mahapurushaMin}
	}
	var notes []string
	s := mahapurushaBase
	sign := pos.Sign()
	switch {
	case dignity.IsExalted(p, sign):
		s += mahapurushaExalted
		notes = append(notes, p.Name()+" is exalted")
	case dignity.IsInOwnSign(p, sign):
		s += mahapurushaOwnSign
		notes = append(notes, p.Name()+" is in its own sign")
	}
	s += mahapurushaHouseBonus[pos.House]
	if dignity.HasDirectionalStrength(pos) {
		s += mahapurushaDigbala
		notes = append(notes, p.Name()+" has directional strength")
	}
	base := clamp(s, mahapurushaMin, maxStrength)

	f := c.Factors(p)
	notes = append(notes, f.Descriptions()...)
	final := s * f.Multiplier

	if fromMoon, ok := c.FromPlanet(domain.Moon, p); ok {
		switch {
		case dignity.IsKendra(fromMoon):
			final *= moonKendraFactor
			notes = append(notes, "in a kendra from the Moon")
		case dignity.IsTrikona(fromMoon):
			final *= moonTrikonaFactor
			notes = append(notes, "in a trikona from the Moon")
		case dignity.IsDusthana(fromMoon):
			final *= moonDusthanaFactor
			notes = append(notes, "in a dusthana from the Moon")
		}
	}
	return score{base: base, strength: clamp(final, mahapurushaMin, maxStrength), notes: notes}
}

// mitigation scales a dosha's intensity when a protective condition holds.
type mitigation struct {
	applies bool
	factor  float64
	note    string
}

// doshaStrength is the intensity of a negative combination after mitigations.
func doshaStrength(intensity float64, mitigations ...mitigation) score {
	s := score{base: clamp(intensity, minStrength, maxStrength)}
	s.strength = s.base
	for _, m := range mitigations {
		if m.applies {
			s = s.scale(m.factor, m.note)
		}
	}
	return s
}

// definition is the fixed part of a combination.
type definition struct {
	name        string
	title       string
	category    Category
	description string
	negative    bool
}

// combination assembles a result with participant houses, rounded strengths
// and deduplicated notes.
func (c *ChartContext) combination(def definition, planets []domain.Planet, s score, extra ...string) Combination {
	houseSet := make(map[int]bool)
	for _, p := range planets {
		if h := c.House(p); h > 0 {
			houseSet[h] = true
		}
	}
	houses := make([]int, 0, len(houseSet))
	for h := range houseSet {
		houses = append(houses, h)
	}
	sort.Ints(houses)

	combo := Combination{
		Name:         def.name,
		Title:        def.title,
		Category:     def.category,
		Planets:      append([]domain.Planet(nil), planets...),
		Houses:       houses,
		BaseStrength: round2(s.base),
		Strength:     round2(s.strength),
		Auspicious:   !def.negative,
		Factors:      dedupe(append(extra, s.notes...)),
		Description:  def.description,
	}
	if len(planets) > 0 {
		combo.ActivationPeriod = planets[0].Name() + " mahadasha"
	}
	return combo
}

func dedupe(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
