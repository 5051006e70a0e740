// Package dignity classifies planets by sign placement and natural relationship.
package dignity

import "github.com/aristath/jyotish/internal/domain"

// Relationship is the natural friendship of one planet toward another.
type Relationship int

const (
	BitterEnemy Relationship = iota
	Enemy
	Neutral
	Friend
	BestFriend // a planet toward itself
)

func (r Relationship) String() string {
	switch r {
	case BitterEnemy:
		return "bitter_enemy"
	case Enemy:
		return "enemy"
	case Friend:
		return "friend"
	case BestFriend:
		return "best_friend"
	default:
		return "neutral"
	}
}

// exactDegree is a sign plus the degree within it.
type exactDegree struct {
	sign   domain.Sign
	degree float64
}

var exaltation = map[domain.Planet]exactDegree{
	domain.Sun:     {domain.Aries, 10},
	domain.Moon:    {domain.Taurus, 3},
	domain.Mars:    {domain.Capricorn, 28},
	domain.Mercury: {domain.Virgo, 15},
	domain.Jupiter: {domain.Cancer, 5},
	domain.Venus:   {domain.Pisces, 27},
	domain.Saturn:  {domain.Libra, 20},
	domain.Rahu:    {domain.Taurus, 20},
	domain.Ketu:    {domain.Scorpio, 20},
}

// Debilitation is the sign opposite exaltation at the same degree.
var debilitation = func() map[domain.Planet]exactDegree {
	m := make(map[domain.Planet]exactDegree, len(exaltation))
	for p, ex := range exaltation {
		m[p] = exactDegree{sign: ex.sign.Add(6), degree: ex.degree}
	}
	return m
}()

var ownSigns = map[domain.Planet][]domain.Sign{
	domain.Sun:     {domain.Leo},
	domain.Moon:    {domain.Cancer},
	domain.Mars:    {domain.Aries, domain.Scorpio},
	domain.Mercury: {domain.Gemini, domain.Virgo},
	domain.Jupiter: {domain.Sagittarius, domain.Pisces},
	domain.Venus:   {domain.Taurus, domain.Libra},
	domain.Saturn:  {domain.Capricorn, domain.Aquarius},
	domain.Rahu:    {domain.Aquarius},
	domain.Ketu:    {domain.Scorpio},
}

var signLords = [12]domain.Planet{
	domain.Mars,    // Aries
	domain.Venus,   // Taurus
	domain.Mercury, // Gemini
	domain.Moon,    // Cancer
	domain.Sun,     // Leo
	domain.Mercury, // Virgo
	domain.Venus,   // Libra
	domain.Mars,    // Scorpio
	domain.Jupiter, // Sagittarius
	domain.Saturn,  // Capricorn
	domain.Saturn,  // Aquarius
	domain.Jupiter, // Pisces
}

// Natural friendship keyed by the acting planet. Pairs not listed are neutral.
var naturalRelations = map[domain.Planet]map[domain.Planet]Relationship{
	domain.Sun: {
		domain.Moon: Friend, domain.Mars: Friend, domain.Jupiter: Friend,
		domain.Venus: Enemy, domain.Saturn: Enemy,
		domain.Rahu: BitterEnemy, domain.Ketu: BitterEnemy,
	},
	domain.Moon: {
		domain.Sun: Friend, domain.Mercury: Friend,
		domain.Rahu: BitterEnemy, domain.Ketu: BitterEnemy,
	},
	domain.Mars: {
		domain.Sun: Friend, domain.Moon: Friend, domain.Jupiter: Friend,
		domain.Mercury: Enemy,
	},
	domain.Mercury: {
		domain.Sun: Friend, domain.Venus: Friend,
		domain.Moon: Enemy,
	},
	domain.Jupiter: {
		domain.Sun: Friend, domain.Moon: Friend, domain.Mars: Friend,
		domain.Mercury: Enemy, domain.Venus: Enemy,
	},
	domain.Venus: {
		domain.Mercury: Friend, domain.Saturn: Friend,
		domain.Sun: Enemy, domain.Moon: Enemy,
	},
	domain.Saturn: {
		domain.Mercury: Friend, domain.Venus: Friend,
		domain.Sun: Enemy, domain.Moon: Enemy, domain.Mars: Enemy,
	},
	domain.Rahu: {
		domain.Mercury: Friend, domain.Venus: Friend, domain.Saturn: Friend,
		domain.Mars: Enemy,
		domain.Sun: BitterEnemy, domain.Moon: BitterEnemy,
	},
	domain.Ketu: {
		domain.Mars: Friend, domain.Venus: Friend, domain.Saturn: Friend,
		domain.Sun: BitterEnemy, domain.Moon: BitterEnemy,
	},
}

// Digbala houses: Sun and Mars in the 10th, Moon and Venus in the 4th,
// Mercury and Jupiter in the 1st, Saturn in the 7th.
var directionalHouse = map[domain.Planet]int{
	domain.Sun:     10,
	domain.Mars:    10,
	domain.Moon:    4,
	domain.Venus:   4,
	domain.Mercury: 1,
	domain.Jupiter: 1,
	domain.Saturn:  7,
}

// Natural benefic and malefic sets used by every engine.
var (
	NaturalBenefics = []domain.Planet{domain.Jupiter, domain.Venus, domain.Mercury, domain.Moon}
	NaturalMalefics = []domain.Planet{domain.Saturn, domain.Mars, domain.Rahu, domain.Ketu, domain.Sun}
)

// House groups.
var (
	Kendras   = []int{1, 4, 7, 10}
	Trikonas  = []int{1, 5, 9}
	Dusthanas = []int{6, 8, 12}
	Upachayas = []int{3, 6, 10, 11}
)
