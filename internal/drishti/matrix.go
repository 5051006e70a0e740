package drishti

import (
	"sort"

	"github.com/aristath/jyotish/internal/domain"
)

// MutualPair is two planets that each cast an aspect on the other.
type MutualPair struct {
	A       domain.Planet `json:"a" msgpack:"a"`
	B       domain.Planet `json:"b" msgpack:"b"`
	AToB    Relation      `json:"a_to_b" msgpack:"a_to_b"`
	BToA    Relation      `json:"b_to_a" msgpack:"b_to_a"`
	Average float64       `json:"average_strength" msgpack:"average_strength"`
}

// Matrix is a read-only view over every aspect in a chart, strongest first.
type Matrix struct {
	Relations []Relation   `json:"relations" msgpack:"relations"`
	Mutual    []MutualPair `json:"mutual" msgpack:"mutual"`
}

// BuildMatrix evaluates every ordered planet pair in the chart.
// Conjunctions are symmetric and recorded once, cast by the planet that
// comes first in canonical order.
func BuildMatrix(chart domain.Chart, cfg Config) Matrix {
	cfg = cfg.withDefaults()
	positions := eligible(chart, cfg)

	relations := []Relation{}
	for i, caster := range positions {
		for j, receiver := range positions {
			if i == j {
				continue
			}
			for _, kind := range KindsFor(caster.Planet, cfg) {
				if kind.Kind == Conjunction && i > j {
					continue
				}
				if rel, ok := Calculate(caster, receiver, kind, cfg); ok {
					relations = append(relations, rel)
				}
			}
		}
	}

	sort.SliceStable(relations, func(i, j int) bool {
		a, b := relations[i], relations[j]
		if a.Strength != b.Strength {
			return a.Strength > b.Strength
		}
		if a.Caster != b.Caster {
			return a.Caster.Index() < b.Caster.Index()
		}
		if a.Receiver != b.Receiver {
			return a.Receiver.Index() < b.Receiver.Index()
		}
		return kindOrder[a.Kind] < kindOrder[b.Kind]
	})

	return Matrix{
		Relations: relations,
		Mutual:    mutualPairs(relations),
	}
}

// eligible returns the chart positions in canonical order, skipping
// unknown planets, duplicates and (by default) the outer planets.
func eligible(chart domain.Chart, cfg Config) []domain.PlanetPosition {
	seen := make(map[domain.Planet]bool, len(chart.Positions))
	out := make([]domain.PlanetPosition, 0, len(chart.Positions))
	for _, pos := range chart.Positions {
		if !pos.Planet.Valid() || seen[pos.Planet] {
			continue
		}
		if pos.Planet.IsOuter() && !cfg.IncludeOuterPlanets {
			continue
		}
		seen[pos.Planet] = true
		out = append(out, pos)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Planet.Index() < out[j].Planet.Index() })
	return out
}

type pairKey struct{ a, b domain.Planet }

func orderedKey(x, y domain.Planet) pairKey {
	if x.Index() > y.Index() {
		x, y = y, x
	}
	return pairKey{x, y}
}

// mutualPairs relies on relations already being sorted strongest first, so
// the first relation seen in each direction is the strongest one.
func mutualPairs(relations []Relation) []MutualPair {
	strongest := make(map[pairKey]Relation)
	for _, rel := range relations {
		k := pairKey{rel.Caster, rel.Receiver}
		if _, ok := strongest[k]; !ok {
			strongest[k] = rel
		}
	}

	done := make(map[pairKey]bool)
	pairs := []MutualPair{}
	for _, rel := range relations {
		key := orderedKey(rel.Caster, rel.Receiver)
		if done[key] {
			continue
		}

		if rel.Kind == Conjunction {
			done[key] = true
			pairs = append(pairs, MutualPair{
				A: key.a, B: key.b, AToB: rel, BToA: rel, Average: rel.Strength,
			})
			continue
		}

		ab, okAB := strongest[pairKey{key.a, key.b}]
		ba, okBA := strongest[pairKey{key.b, key.a}]
		if !okAB || !okBA {
			continue
		}
		done[key] = true
		pairs = append(pairs, MutualPair{
			A: key.a, B: key.b, AToB: ab, BToA: ba,
			Average: (ab.Strength + ba.Strength) / 2,
		})
	}
	return pairs
}

// ByCaster returns the aspects cast by p.
func (m Matrix) ByCaster(p domain.Planet) []Relation {
	return m.filter(func(r Relation) bool {
		return r.Caster == p || (r.Kind == Conjunction && r.Receiver == p)
	})
}

// ByReceiver returns the aspects received by p.
func (m Matrix) ByReceiver(p domain.Planet) []Relation {
	return m.filter(func(r Relation) bool {
		return r.Receiver == p || (r.Kind == Conjunction && r.Caster == p)
	})
}

// Between returns every relation cast from one planet onto another.
func (m Matrix) Between(caster, receiver domain.Planet) []Relation {
	return m.filter(func(r Relation) bool {
		if r.Kind == Conjunction {
			return orderedKey(r.Caster, r.Receiver) == orderedKey(caster, receiver)
		}
		return r.Caster == caster && r.Receiver == receiver
	})
}

// Conjunctions returns every conjunction.
func (m Matrix) Conjunctions() []Relation {
	return m.filter(func(r Relation) bool { return r.Kind == Conjunction })
}

// Oppositions returns every 7th-house aspect.
func (m Matrix) Oppositions() []Relation {
	return m.filter(func(r Relation) bool { return r.Kind == Opposition })
}

// SpecialAspects returns the planet-specific aspects.
func (m Matrix) SpecialAspects() []Relation {
	return m.filter(Relation.IsSpecial)
}

// Strongest returns the strongest relation, if any.
func (m Matrix) Strongest() (Relation, bool) {
	if len(m.Relations) == 0 {
		return Relation{}, false
	}
	return m.Relations[0], true
}

func (m Matrix) filter(keep func(Relation) bool) []Relation {
	var out []Relation
	for _, r := range m.Relations {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
