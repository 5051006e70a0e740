// Package affliction derives the strength modifiers that afflict or support a planet:
// combustion, hemming between malefics (Papakartari), malefic aspects and benefic aspects.
package affliction

import (
	"math"

	"github.com/aristath/jyotish/internal/domain"
)

const (
	// deepCombustion is the distance from the Sun inside which a planet is fully burnt.
	deepCombustion       = 3.0
	deepCombustionFactor = 0.2
	combustionFloor      = 0.4

	// HemmedMultiplier is applied when a planet is hemmed between malefics.
	HemmedMultiplier = 0.85

	aspectOrb         = 5.0
	maxAfflictionLoss = 0.6
	maxBeneficBoost   = 0.3
)

type combustionOrb struct {
	direct     float64
	retrograde float64
}

var combustionOrbs = map[domain.Planet]combustionOrb{
	domain.Mars:    {17, 17},
	domain.Mercury: {14, 12},
	domain.Jupiter: {11, 11},
	domain.Venus:   {10, 8},
	domain.Saturn:  {15, 15},
}

var maleficWeights = []struct {
	planet domain.Planet
	weight float64
}{
	{domain.Saturn, 0.25},
	{domain.Mars, 0.20},
	{domain.Rahu, 0.15},
	{domain.Ketu, 0.12},
	{domain.Sun, 0.08},
}

var beneficWeights = []struct {
	planet domain.Planet
	weight float64
}{
	{domain.Jupiter, 0.15},
	{domain.Venus, 0.10},
	{domain.Mercury, 0.07},
	{domain.Moon, 0.05},
}

var hemmingMalefics = map[domain.Planet]bool{
	domain.Sun: true, domain.Mars: true, domain.Saturn: true, domain.Rahu: true, domain.Ketu: true,
}

// Forward angles of the Vedic aspects. Every planet aspects the 7th; Mars,
// Jupiter and Saturn add two more each.
var vedicAspectAngles = map[domain.Planet][]float64{
	domain.Mars:    {180, 90, 210},
	domain.Jupiter: {180, 120, 240},
	domain.Saturn:  {180, 60, 270},
}

// CombustionOrb returns the planet's combustion orb and whether it can be combust at all.
func CombustionOrb(pos domain.PlanetPosition) (float64, bool) {
	if pos.Planet.IsLuminary() || pos.Planet.IsNode() {
		return 0, false
	}
	orb, ok := combustionOrbs[pos.Planet]
	if !ok {
		return 0, false
	}
	if pos.IsRetrograde {
		return orb.retrograde, true
	}
	return orb.direct, true
}

// CombustionFactor is 1.0 away from the Sun, 0.2 within 3°, and rises
// linearly from 0.4 at 3° to 1.0 at the orb boundary.
func CombustionFactor(pos domain.PlanetPosition, chart domain.Chart) float64 {
	orb, ok := CombustionOrb(pos)
	if !ok {
		return 1.0
	}
	sun, ok := chart.Position(domain.Sun)
	if !ok {
		return 1.0
	}

	dist := domain.AngularDistance(pos.Longitude, sun.Longitude)
	switch {
	case dist >= orb:
		return 1.0
	case dist <= deepCombustion:
		return deepCombustionFactor
	}
	frac := (dist - deepCombustion) / (orb - deepCombustion)
	return combustionFloor + (1.0-combustionFloor)*frac
}

// IsCombust reports whether the planet lies inside its combustion orb.
func IsCombust(pos domain.PlanetPosition, chart domain.Chart) bool {
	return CombustionFactor(pos, chart) < 1.0
}

// IsHemmed reports Papakartari: malefics in both the 12th and 2nd houses from the planet.
func IsHemmed(pos domain.PlanetPosition, chart domain.Chart) bool {
	house := chart.HouseIn(pos)
	before := domain.WrapHouse(house - 1)
	after := domain.WrapHouse(house + 1)

	var hasBefore, hasAfter bool
	for _, other := range chart.Positions {
		if other.Planet == pos.Planet || !hemmingMalefics[other.Planet] {
			continue
		}
		switch chart.HouseIn(other) {
		case before:
			hasBefore = true
		case after:
			hasAfter = true
		}
	}
	return hasBefore && hasAfter
}

// MaleficAffliction subtracts each aspecting malefic's weight from 1.0; the
// total loss is capped so the factor never drops below 0.4.
func MaleficAffliction(pos domain.PlanetPosition, chart domain.Chart) float64 {
	loss := 0.0
	for _, w := range maleficWeights {
		if w.planet == pos.Planet {
			continue
		}
		caster, ok := chart.Position(w.planet)
		if ok && Aspects(caster, pos) {
			loss += w.weight
		}
	}
	return 1.0 - math.Min(loss, maxAfflictionLoss)
}

// BeneficBoost adds each aspecting benefic's weight to 1.0, capped at 1.3.
// A waning Moon and a combust Mercury give no support.
func BeneficBoost(pos domain.PlanetPosition, chart domain.Chart) float64 {
	gain := 0.0
	for _, w := range beneficWeights {
		if w.planet == pos.Planet {
			continue
		}
		caster, ok := chart.Position(w.planet)
		if !ok || disqualifiedBenefic(caster, chart) {
			continue
		}
		if Aspects(caster, pos) {
			gain += w.weight
		}
	}
	return 1.0 + math.Min(gain, maxBeneficBoost)
}

// Aspects applies the Vedic aspect rule with a 5° orb around each exact angle.
func Aspects(caster, target domain.PlanetPosition) bool {
	angles, ok := vedicAspectAngles[caster.Planet]
	if !ok {
		angles = []float64{180}
	}
	forward := domain.ForwardAngle(caster.Longitude, target.Longitude)
	for _, a := range angles {
		d := math.Abs(forward - a)
		if math.Min(d, 360-d) <= aspectOrb {
			return true
		}
	}
	return false
}

// IsWaningMoon reports whether the Moon is past full, i.e. more than 180° ahead of the Sun.
func IsWaningMoon(moon domain.PlanetPosition, chart domain.Chart) bool {
	sun, ok := chart.Position(domain.Sun)
	if !ok {
		return false
	}
	return domain.ForwardAngle(sun.Longitude, moon.Longitude) > 180
}

func disqualifiedBenefic(caster domain.PlanetPosition, chart domain.Chart) bool {
	switch caster.Planet {
	case domain.Moon:
		return IsWaningMoon(caster, chart)
	case domain.Mercury:
		return IsCombust(caster, chart)
	}
	return false
}
