package drishti

import (
	"math"

	"github.com/aristath/jyotish/internal/domain"
)

// Relation is one aspect cast by a planet onto another.
type Relation struct {
	Caster       domain.Planet `json:"caster" msgpack:"caster"`
	Receiver     domain.Planet `json:"receiver" msgpack:"receiver"`
	Kind         Kind          `json:"kind" msgpack:"kind"`
	ForwardAngle float64       `json:"forward_angle" msgpack:"forward_angle"`
	Orb          float64       `json:"orb" msgpack:"orb"`
	Strength     float64       `json:"strength" msgpack:"strength"` // Drishti Bala, 0..1
	Applying     bool          `json:"applying" msgpack:"applying"`
	SignBased    bool          `json:"sign_based" msgpack:"sign_based"`
}

// IsSpecial reports whether the relation is a planet-specific aspect.
func (r Relation) IsSpecial() bool {
	k, ok := kinds[r.Kind]
	return ok && k.Special
}

// Calculate evaluates one aspect kind from caster to receiver.
// The second return value is false when the kind does not hold under cfg.
func Calculate(caster, receiver domain.PlanetPosition, kind AspectKind, cfg Config) (Relation, bool) {
	cfg = cfg.withDefaults()

	from := domain.Normalize(caster.Longitude)
	to := domain.Normalize(receiver.Longitude)

	signDist := domain.SignDistance(domain.SignOf(from), domain.SignOf(to))
	forward := domain.ForwardAngle(from, to)
	orb := orbFrom(forward, kind.Angle)
	limit := orbLimit(kind, cfg)

	signMatch := signDist == kind.HouseDistance
	degreeMatch := orb <= limit

	var factor float64
	switch cfg.Mode {
	case ModeSignBased:
		if !signMatch {
			return Relation{}, false
		}
		factor = 1.0
	case ModeDegreeBased:
		if !degreeMatch {
			return Relation{}, false
		}
		factor = 1.0 - 0.5*(orb/limit)
	default:
		switch {
		case signMatch && degreeMatch:
			factor = 1.0
		case signMatch:
			factor = 0.9
		case degreeMatch && nearNominal(signDist, kind.HouseDistance):
			factor = 0.8 - 0.3*(orb/limit)
		default:
			return Relation{}, false
		}
	}

	return Relation{
		Caster:       caster.Planet,
		Receiver:     receiver.Planet,
		Kind:         kind.Kind,
		ForwardAngle: forward,
		Orb:          orb,
		Strength:     clamp01(kind.BaseStrength * factor),
		Applying:     isApplying(caster, receiver, kind.Angle, orb),
		SignBased:    signMatch,
	}, true
}

// CalculateAll evaluates every kind the caster can cast onto the receiver.
func CalculateAll(caster, receiver domain.PlanetPosition, cfg Config) []Relation {
	var out []Relation
	for _, kind := range KindsFor(caster.Planet, cfg) {
		if rel, ok := Calculate(caster, receiver, kind, cfg); ok {
			out = append(out, rel)
		}
	}
	return out
}

// nearNominal accepts sign distances one sign either side of nominal,
// including the wrap between the 12th and 1st.
func nearNominal(signDist, houseDist int) bool {
	diff := signDist - houseDist
	if diff < 0 {
		diff = -diff
	}
	return diff <= 1 || diff == 11
}

func orbLimit(kind AspectKind, cfg Config) float64 {
	if kind.Kind == Conjunction {
		return cfg.ConjunctionOrb
	}
	return cfg.Orb
}

// orbFrom is the shortest distance between the forward angle and the exact aspect angle.
func orbFrom(forward, angle float64) float64 {
	d := math.Abs(forward - angle)
	return math.Min(d, 360-d)
}

// isApplying projects both bodies one day forward and reports whether the orb shrinks.
func isApplying(caster, receiver domain.PlanetPosition, angle, orb float64) bool {
	next := domain.ForwardAngle(caster.Longitude+caster.Speed, receiver.Longitude+receiver.Speed)
	return orbFrom(next, angle) < orb
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
