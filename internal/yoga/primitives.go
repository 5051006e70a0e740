package yoga

import (
	"github.com/aristath/jyotish/internal/dignity"
	"github.com/aristath/jyotish/internal/domain"
)

// Connection names how two planets are linked.
type Connection string

const (
	ConnectionNone         Connection = ""
	ConnectionConjunction  Connection = "conjunction"
	ConnectionMutualAspect Connection = "mutual aspect"
	ConnectionExchange     Connection = "sign exchange"
)

func pairOrb(a, b domain.Planet, fallback float64) float64 {
	if orb, ok := tightPairOrbs[[2]domain.Planet{a, b}]; ok {
		return orb
	}
	if orb, ok := tightPairOrbs[[2]domain.Planet{b, a}]; ok {
		return orb
	}
	return fallback
}

// Conjunct reports whether the two planets lie within the conjunction orb.
// The relation is symmetric.
func (c *ChartContext) Conjunct(a, b domain.Planet) bool {
	if a == b {
		return false
	}
	pa, ok := c.positions[a]
	if !ok {
		return false
	}
	pb, ok := c.positions[b]
	if !ok {
		return false
	}
	return domain.AngularDistance(pa.Longitude, pb.Longitude) <= pairOrb(a, b, c.opts.ConjunctionOrb)
}

// MutualAspect reports whether the planets stand roughly opposite each other.
func (c *ChartContext) MutualAspect(a, b domain.Planet) bool {
	if a == b {
		return false
	}
	pa, ok := c.positions[a]
	if !ok {
		return false
	}
	pb, ok := c.positions[b]
	if !ok {
		return false
	}
	d := domain.ForwardAngle(pa.Longitude, pb.Longitude)
	return d >= mutualAspectAngle-mutualAspectTolerance && d <= mutualAspectAngle+mutualAspectTolerance
}

// Exchange reports Parivartana: each planet occupies a sign ruled by the other.
func (c *ChartContext) Exchange(a, b domain.Planet) bool {
	if a == b {
		return false
	}
	pa, ok := c.positions[a]
	if !ok {
		return false
	}
	pb, ok := c.positions[b]
	if !ok {
		return false
	}
	return dignity.SignLord(pa.Sign()) == b && dignity.SignLord(pb.Sign()) == a
}

// Connect returns the first link found between two planets, checking
// conjunction, mutual aspect and exchange in that order.
func (c *ChartContext) Connect(a, b domain.Planet) Connection {
	switch {
	case c.Conjunct(a, b):
		return ConnectionConjunction
	case c.MutualAspect(a, b):
		return ConnectionMutualAspect
	case c.Exchange(a, b):
		return ConnectionExchange
	}
	return ConnectionNone
}

// SameHouse reports whether both planets occupy the same known house.
func (c *ChartContext) SameHouse(a, b domain.Planet) bool {
	pa, ok := c.positions[a]
	if !ok {
		return false
	}
	pb, ok := c.positions[b]
	if !ok {
		return false
	}
	if pa.House == 0 || pb.House == 0 {
		return pa.Sign() == pb.Sign()
	}
	return pa.House == pb.House
}
