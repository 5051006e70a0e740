package domain

import "math"

const nakshatraSpan = 360.0 / 27.0

// Normalize maps any angle into [0,360).
func Normalize(angle float64) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0
	}
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	// math.Mod of a tiny negative value can round up to exactly 360
	if a >= 360 {
		a = 0
	}
	return a
}

// SignOf returns the zodiac sign containing the longitude.
func SignOf(longitude float64) Sign {
	return Sign(int(Normalize(longitude)/30) % 12)
}

// DegreeInSign returns the offset of the longitude within its sign.
func DegreeInSign(longitude float64) float64 {
	return math.Mod(Normalize(longitude), 30)
}

// SignDistance counts signs from one sign to another, 1-indexed: a sign
// to itself is 1, the next sign is 2, the opposite sign is 7.
func SignDistance(from, to Sign) int {
	return ((int(to)-int(from))%12+12)%12 + 1
}

// ForwardAngle is the zodiacal arc travelled from one longitude to another.
func ForwardAngle(from, to float64) float64 {
	return Normalize(to - from)
}

// AngularDistance is the shortest arc between two longitudes, in [0,180].
func AngularDistance(a, b float64) float64 {
	d := math.Abs(Normalize(a) - Normalize(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// HouseOf returns the whole-sign house of a longitude for the given ascendant.
func HouseOf(longitude, ascendant float64) int {
	return SignDistance(SignOf(ascendant), SignOf(longitude))
}

// HouseFrom is the whole-sign house of b counted from a.
func HouseFrom(a, b PlanetPosition) int {
	return SignDistance(a.Sign(), b.Sign())
}

// WrapHouse maps any integer onto houses 1..12.
func WrapHouse(h int) int {
	return ((h-1)%12+12)%12 + 1
}

// Nakshatra returns the lunar mansion index (0 = Ashwini .. 26 = Revati).
func Nakshatra(longitude float64) int {
	idx := int(Normalize(longitude) / nakshatraSpan)
	if idx > 26 {
		idx = 26
	}
	return idx
}

// HouseIn returns the position's house, deriving it from the chart's
// ascendant when the supplied value is out of range.
func (c Chart) HouseIn(pos PlanetPosition) int {
	if pos.House >= 1 && pos.House <= 12 {
		return pos.House
	}
	return HouseOf(pos.Longitude, c.Ascendant)
}
