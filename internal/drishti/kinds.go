package drishti

import "github.com/aristath/jyotish/internal/domain"

// Kind identifies an aspect type.
type Kind string

const (
	Conjunction  Kind = "conjunction"
	Opposition   Kind = "opposition" // 7th house, cast by every planet
	MarsFourth   Kind = "mars_4th"
	MarsEighth   Kind = "mars_8th"
	JupiterFifth Kind = "jupiter_5th"
	JupiterNinth Kind = "jupiter_9th"
	SaturnThird  Kind = "saturn_3rd"
	SaturnTenth  Kind = "saturn_10th"
	NodeFifth    Kind = "node_5th"
	NodeNinth    Kind = "node_9th"
)

// AspectKind is the geometry and classical weight of an aspect.
type AspectKind struct {
	Kind          Kind
	HouseDistance int     // whole-sign distance, 1 = same sign
	Angle         float64 // exact forward angle in degrees
	BaseStrength  float64
	Special       bool
}

var kinds = map[Kind]AspectKind{
	Conjunction:  {Conjunction, 1, 0, 1.0, false},
	Opposition:   {Opposition, 7, 180, 1.0, false},
	MarsFourth:   {MarsFourth, 4, 90, 0.8, true},
	MarsEighth:   {MarsEighth, 8, 210, 0.8, true},
	JupiterFifth: {JupiterFifth, 5, 120, 0.9, true},
	JupiterNinth: {JupiterNinth, 9, 240, 0.9, true},
	SaturnThird:  {SaturnThird, 3, 60, 0.75, true},
	SaturnTenth:  {SaturnTenth, 10, 270, 0.75, true},
	NodeFifth:    {NodeFifth, 5, 120, 0.5, true},
	NodeNinth:    {NodeNinth, 9, 240, 0.5, true},
}

// kindOrder keeps sorting deterministic when strengths tie.
var kindOrder = map[Kind]int{
	Conjunction: 0, Opposition: 1, MarsFourth: 2, MarsEighth: 3, JupiterFifth: 4,
	JupiterNinth: 5, SaturnThird: 6, SaturnTenth: 7, NodeFifth: 8, NodeNinth: 9,
}

var specialAspects = map[domain.Planet][]Kind{
	domain.Mars:    {MarsFourth, MarsEighth},
	domain.Jupiter: {JupiterFifth, JupiterNinth},
	domain.Saturn:  {SaturnThird, SaturnTenth},
}

var nodeAspects = []Kind{NodeFifth, NodeNinth}

// KindOf returns the definition of a kind.
func KindOf(k Kind) (AspectKind, bool) {
	ak, ok := kinds[k]
	return ak, ok
}

// KindsFor lists the aspect kinds a caster can cast under cfg.
func KindsFor(caster domain.Planet, cfg Config) []AspectKind {
	list := []AspectKind{kinds[Conjunction], kinds[Opposition]}
	for _, k := range specialAspects[caster] {
		list = append(list, kinds[k])
	}
	if cfg.NodeSpecialAspects && caster.IsNode() {
		for _, k := range nodeAspects {
			list = append(list, kinds[k])
		}
	}
	return list
}
