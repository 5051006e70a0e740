package dignity

import (
	"math"

	"github.com/aristath/jyotish/internal/domain"
)

// deepOrb is the tolerance around the exact exaltation/debilitation degree.
const deepOrb = 1.0

// IsExalted reports whether the planet's exaltation sign is the given sign.
func IsExalted(planet domain.Planet, sign domain.Sign) bool {
	ex, ok := exaltation[planet]
	return ok && ex.sign == sign
}

// IsDebilitated reports whether the planet's debilitation sign is the given sign.
func IsDebilitated(planet domain.Planet, sign domain.Sign) bool {
	deb, ok := debilitation[planet]
	return ok && deb.sign == sign
}

// IsDeepExalted requires the longitude to sit within 1° of the exact exaltation degree.
func IsDeepExalted(planet domain.Planet, longitude float64) bool {
	ex, ok := exaltation[planet]
	return ok && withinDegree(ex, longitude)
}

// IsDeepDebilitated requires the longitude to sit within 1° of the exact debilitation degree.
func IsDeepDebilitated(planet domain.Planet, longitude float64) bool {
	deb, ok := debilitation[planet]
	return ok && withinDegree(deb, longitude)
}

func withinDegree(target exactDegree, longitude float64) bool {
	if domain.SignOf(longitude) != target.sign {
		return false
	}
	return math.Abs(domain.DegreeInSign(longitude)-target.degree) <= deepOrb
}

// ExaltationSign returns the planet's exaltation sign.
func ExaltationSign(planet domain.Planet) (domain.Sign, bool) {
	ex, ok := exaltation[planet]
	return ex.sign, ok
}

// DebilitationSign returns the planet's debilitation sign.
func DebilitationSign(planet domain.Planet) (domain.Sign, bool) {
	deb, ok := debilitation[planet]
	return deb.sign, ok
}

// IsInOwnSign reports whether the planet rules the sign.
func IsInOwnSign(planet domain.Planet, sign domain.Sign) bool {
	for _, s := range ownSigns[planet] {
		if s == sign {
			return true
		}
	}
	return false
}

// SignLord returns the classical ruler of a sign.
func SignLord(sign domain.Sign) domain.Planet {
	return signLords[((int(sign)%12)+12)%12]
}

// HouseLord returns the ruler of a whole-sign house for the ascendant sign.
func HouseLord(ascendant domain.Sign, house int) domain.Planet {
	return SignLord(ascendant.Add(house - 1))
}

// RelationshipBetween returns how planet a regards planet b. Unlisted graha
// pairs are neutral; a planet outside the nine grahas is a bitter enemy.
func RelationshipBetween(a, b domain.Planet) Relationship {
	if !isGraha(a) || !isGraha(b) {
		return BitterEnemy
	}
	if a == b {
		return BestFriend
	}
	if rel, ok := naturalRelations[a][b]; ok {
		return rel
	}
	return Neutral
}

// IsInFriendSign reports whether the sign's lord is a natural friend of the planet.
func IsInFriendSign(planet domain.Planet, sign domain.Sign) bool {
	lord := SignLord(sign)
	if lord == planet {
		return false
	}
	return RelationshipBetween(planet, lord) == Friend
}

// IsInEnemySign reports whether the sign's lord is an enemy of the planet.
func IsInEnemySign(planet domain.Planet, sign domain.Sign) bool {
	rel := RelationshipBetween(planet, SignLord(sign))
	return rel == Enemy || rel == BitterEnemy
}

// HasDirectionalStrength reports whether the position occupies its digbala house.
func HasDirectionalStrength(pos domain.PlanetPosition) bool {
	house, ok := directionalHouse[pos.Planet]
	return ok && pos.House == house
}

// IsStrong is exalted or own sign.
func IsStrong(planet domain.Planet, sign domain.Sign) bool {
	return IsExalted(planet, sign) || IsInOwnSign(planet, sign)
}

// IsNaturalBenefic reports membership in the natural benefic set.
func IsNaturalBenefic(p domain.Planet) bool {
	return containsPlanet(NaturalBenefics, p)
}

// IsNaturalMalefic reports membership in the natural malefic set.
func IsNaturalMalefic(p domain.Planet) bool {
	return containsPlanet(NaturalMalefics, p)
}

// IsKendra reports whether h is an angular house.
func IsKendra(h int) bool { return containsInt(Kendras, h) }

// IsTrikona reports whether h is a trine house.
func IsTrikona(h int) bool { return containsInt(Trikonas, h) }

// IsDusthana reports whether h is a difficult house.
func IsDusthana(h int) bool { return containsInt(Dusthanas, h) }

func containsPlanet(list []domain.Planet, p domain.Planet) bool {
	for _, x := range list {
		if x == p {
			return true
		}
	}
	return false
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func isGraha(p domain.Planet) bool {
	_, ok := naturalRelations[p]
	return ok
}
