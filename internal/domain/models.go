// Package domain provides the chart models shared by every analysis engine.
package domain

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNoAscendant is returned by Chart.Validate when the ascendant is missing or out of range.
	ErrNoAscendant = errors.New("chart has no valid ascendant")
	// ErrDuplicatePlanet is returned by Chart.Validate when a planet appears twice.
	ErrDuplicatePlanet = errors.New("chart lists a planet more than once")
	// ErrEmptyChart is returned by Chart.Validate when no positions are present.
	ErrEmptyChart = errors.New("chart has no planetary positions")
)

// Planet identifies a graha
type Planet string

const (
	Sun     Planet = "sun"
	Moon    Planet = "moon"
	Mars    Planet = "mars"
	Mercury Planet = "mercury"
	Jupiter Planet = "jupiter"
	Venus   Planet = "venus"
	Saturn  Planet = "saturn"
	Rahu    Planet = "rahu" // ascending lunar node
	Ketu    Planet = "ketu" // descending lunar node

	// Outer planets are accepted from the position service but only used
	// by the aspect engine when explicitly requested.
	Uranus  Planet = "uranus"
	Neptune Planet = "neptune"
	Pluto   Planet = "pluto"
)

// Grahas is the fixed nine-member planet set in canonical order.
var Grahas = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}

// MainPlanets are the seven visible planets (nodes excluded).
var MainPlanets = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}

// OuterPlanets are the optional trans-Saturnian bodies.
var OuterPlanets = []Planet{Uranus, Neptune, Pluto}

var planetOrder = map[Planet]int{
	Sun: 0, Moon: 1, Mars: 2, Mercury: 3, Jupiter: 4, Venus: 5, Saturn: 6,
	Rahu: 7, Ketu: 8, Uranus: 9, Neptune: 10, Pluto: 11,
}

var planetNames = map[Planet]string{
	Sun: "Sun", Moon: "Moon", Mars: "Mars", Mercury: "Mercury", Jupiter: "Jupiter",
	Venus: "Venus", Saturn: "Saturn", Rahu: "Rahu", Ketu: "Ketu",
	Uranus: "Uranus", Neptune: "Neptune", Pluto: "Pluto",
}

// Valid reports whether p is a known planet identifier.
func (p Planet) Valid() bool {
	_, ok := planetOrder[p]
	return ok
}

// Index returns the canonical ordering index, or -1 for unknown planets.
func (p Planet) Index() int {
	if idx, ok := planetOrder[p]; ok {
		return idx
	}
	return -1
}

// Name returns the canonical English name.
func (p Planet) Name() string {
	if name, ok := planetNames[p]; ok {
		return name
	}
	return string(p)
}

// IsLuminary reports whether p is the Sun or the Moon.
func (p Planet) IsLuminary() bool {
	return p == Sun || p == Moon
}

// IsNode reports whether p is one of the lunar nodes.
func (p Planet) IsNode() bool {
	return p == Rahu || p == Ketu
}

// IsOuter reports whether p is Uranus, Neptune or Pluto.
func (p Planet) IsOuter() bool {
	return p == Uranus || p == Neptune || p == Pluto
}

// Sign is a zodiac sign index, Aries = 0 through Pisces = 11.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Name returns the English sign name.
func (s Sign) Name() string {
	if s < 0 || s > Pisces {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signNames[s]
}

// Modality is the movable / fixed / dual quality of a sign.
type Modality string

const (
	Movable Modality = "movable"
	Fixed   Modality = "fixed"
	Dual    Modality = "dual"
)

// Modality returns the sign's quality.
func (s Sign) Modality() Modality {
	switch ((int(s) % 12) + 12) % 3 {
	case 0:
		return Movable
	case 1:
		return Fixed
	default:
		return Dual
	}
}

// Add returns the sign n places forward, wrapping at 12.
func (s Sign) Add(n int) Sign {
	return Sign(((int(s)+n)%12 + 12) % 12)
}

// PlanetPosition is a read-only per-planet snapshot supplied by the
// position service.
type PlanetPosition struct {
	Planet       Planet  `json:"planet" msgpack:"planet"`
	Longitude    float64 `json:"longitude" msgpack:"longitude"`
	House        int     `json:"house" msgpack:"house"`
	Speed        float64 `json:"speed" msgpack:"speed"` // degrees per day, negative when retrograde
	IsRetrograde bool    `json:"is_retrograde" msgpack:"is_retrograde"`
}

// Sign returns the zodiac sign of the position.
func (p PlanetPosition) Sign() Sign {
	return SignOf(p.Longitude)
}

// DegreeInSign returns the longitude within the sign, in [0,30).
func (p PlanetPosition) DegreeInSign() float64 {
	return DegreeInSign(p.Longitude)
}

// NewPosition builds a position with a normalized longitude and a
// whole-sign house relative to the ascendant.
func NewPosition(planet Planet, longitude, ascendant, speed float64) PlanetPosition {
	lon := Normalize(longitude)
	return PlanetPosition{
		Planet:       planet,
		Longitude:    lon,
		House:        HouseOf(lon, ascendant),
		Speed:        speed,
		IsRetrograde: speed < 0,
	}
}

// Chart is the ascendant plus one position per tracked planet.
type Chart struct {
	Ascendant float64          `json:"ascendant" msgpack:"ascendant"`
	Positions []PlanetPosition `json:"positions" msgpack:"positions"`
}

// NewChart builds a chart from raw longitudes, deriving houses from the
// ascendant. Speeds default to zero.
func NewChart(ascendant float64, longitudes map[Planet]float64) Chart {
	planets := make([]Planet, 0, len(longitudes))
	for p := range longitudes {
		planets = append(planets, p)
	}
	sort.Slice(planets, func(i, j int) bool { return planets[i].Index() < planets[j].Index() })

	positions := make([]PlanetPosition, 0, len(planets))
	for _, p := range planets {
		positions = append(positions, NewPosition(p, longitudes[p], ascendant, 0))
	}
	return Chart{Ascendant: Normalize(ascendant), Positions: positions}
}

// AscendantSign returns the sign rising at the ascendant.
func (c Chart) AscendantSign() Sign {
	return SignOf(c.Ascendant)
}

// Position returns the position of p and whether it is present.
func (c Chart) Position(p Planet) (PlanetPosition, bool) {
	for _, pos := range c.Positions {
		if pos.Planet == p {
			return pos, true
		}
	}
	return PlanetPosition{}, false
}

// PositionMap indexes the positions by planet.
func (c Chart) PositionMap() map[Planet]PlanetPosition {
	m := make(map[Planet]PlanetPosition, len(c.Positions))
	for _, pos := range c.Positions {
		if _, seen := m[pos.Planet]; !seen {
			m[pos.Planet] = pos
		}
	}
	return m
}

// Validate reports whether the chart can be analysed at all.
func (c Chart) Validate() error {
	if c.Ascendant < 0 || c.Ascendant >= 360 || c.Ascendant != c.Ascendant {
		return fmt.Errorf("ascendant %.4f: %w", c.Ascendant, ErrNoAscendant)
	}
	if len(c.Positions) == 0 {
		return ErrEmptyChart
	}
	seen := make(map[Planet]bool, len(c.Positions))
	for _, pos := range c.Positions {
		if !pos.Planet.Valid() {
			return fmt.Errorf("unknown planet %q", pos.Planet)
		}
		if seen[pos.Planet] {
			return fmt.Errorf("%s: %w", pos.Planet, ErrDuplicatePlanet)
		}
		seen[pos.Planet] = true
	}
	return nil
}
