package yoga

import (
	"fmt"

	"github.com/aristath/jyotish/internal/affliction"
	"github.com/aristath/jyotish/internal/dignity"
	"github.com/aristath/jyotish/internal/domain"
	"github.com/aristath/jyotish/internal/drishti"
)

const (
	deepCombustionPenalty = 0.85
	dharmaKarmaBonus      = 10.0
	dharmaKarmaFactor     = 1.1
	pravrajyaMinPlanets   = 4
)

var (
	shubhaPlanets = []domain.Planet{domain.Jupiter, domain.Venus, domain.Mercury}
	papaPlanets   = []domain.Planet{domain.Sun, domain.Mars, domain.Saturn, domain.Rahu, domain.Ketu}
)

func specialDetectors() []Detector {
	return []Detector{
		NewDetector("budhaditya", GroupSpecial, detectBudhaditya),
		NewDetector("amala_yoga", GroupSpecial, detectAmala),
		NewDetector("saraswati_yoga", GroupSpecial, detectSaraswati),
		NewDetector("shubha_kendra_yoga", GroupSpecial, detectShubhaKendra),
		NewDetector("sukha_bhagya_yoga", GroupSpecial, detectSukhaBhagya),
		NewDetector("pravrajya_yoga", GroupSpecial, detectPravrajya),
		NewDetector("lagnesha_guru_drishti", GroupSpecial, detectExaltedLagneshaAspected),
		NewDetector("dharma_karmadhipati_yoga", GroupSpecial, detectDharmaKarmadhipati),
		NewDetector("parvata_yoga", GroupSpecial, detectParvata),
		NewDetector("lagnadhi_yoga", GroupSpecial, detectLagnadhi),
	}
}

// detectBudhaditya finds the Sun conjoined with Mercury. Mercury's
// combustion does not weaken this yoga unless it is deep.
func detectBudhaditya(c *ChartContext) []Combination {
	if !c.Conjunct(domain.Sun, domain.Mercury) {
		return nil
	}
	planets := []domain.Planet{domain.Sun, domain.Mercury}
	s := c.strengthWith(planets, func(p domain.Planet, m float64) float64 {
		if comb := c.Factors(p).Combustion; p == domain.Mercury && comb > 0 {
			return m / comb
		}
		return m
	})

	sun, _ := c.Pos(domain.Sun)
	mer, _ := c.Pos(domain.Mercury)
	switch {
	case domain.AngularDistance(sun.Longitude, mer.Longitude) <= 3:
		s = s.scale(deepCombustionPenalty, "Mercury is deeply combust")
	case affliction.IsCombust(mer, c.Chart()):
		s.notes = append(s.notes, "combustion tolerated")
	}
	def := definition{
		name:        "budhaditya",
		title:       "Budhaditya Yoga",
		category:    CategorySpecial,
		description: "The Sun joins Mercury, sharpening intellect and communication.",
	}
	return []Combination{c.combination(def, planets, s)}
}

// detectAmala finds benefics in the 10th house with no malefic there.
func detectAmala(c *ChartContext) []Combination {
	if !c.HasAscendant() || len(c.Occupants(10, papaPlanets)) > 0 {
		return nil
	}
	planets := c.Occupants(10, shubhaPlanets)
	if len(planets) == 0 {
		return nil
	}
	def := definition{
		name:        "amala_yoga",
		title:       "Amala Yoga",
		category:    CategorySpecial,
		description: "Benefics alone in the tenth house give a spotless reputation.",
	}
	return []Combination{c.combination(def, planets, c.standardStrength(planets))}
}

// detectSaraswati finds the three benefics in kendras, trikonas or the
// 2nd, with Jupiter dignified or in a friendly sign.
func detectSaraswati(c *ChartContext) []Combination {
	if !c.HasAscendant() || !c.Has(shubhaPlanets...) {
		return nil
	}
	for _, p := range shubhaPlanets {
		h := c.House(p)
		if !dignity.IsKendra(h) && !dignity.IsTrikona(h) && h != 2 {
			return nil
		}
	}
	jup, _ := c.Pos(domain.Jupiter)
	if !dignity.IsStrong(domain.Jupiter, jup.Sign()) && !dignity.IsInFriendSign(domain.Jupiter, jup.Sign()) {
		return nil
	}
	def := definition{
		name:        "saraswati_yoga",
		title:       "Saraswati Yoga",
		category:    CategorySpecial,
		description: "The benefics together in good houses bless learning and the arts.",
	}
	return []Combination{c.combination(def, shubhaPlanets, c.standardStrength(shubhaPlanets))}
}

func planetsInKendras(c *ChartContext, among []domain.Planet) []domain.Planet {
	var out []domain.Planet
	for _, h := range dignity.Kendras {
		out = append(out, c.Occupants(h, among)...)
	}
	return out
}

// detectShubhaKendra finds benefics in the angles with no malefic in any angle.
func detectShubhaKendra(c *ChartContext) []Combination {
	if !c.HasAscendant() || len(planetsInKendras(c, papaPlanets)) > 0 {
		return nil
	}
	planets := planetsInKendras(c, shubhaPlanets)
	if len(planets) == 0 {
		return nil
	}
	def := definition{
		name:        "shubha_kendra_yoga",
		title:       "Shubha Kendra Yoga",
		category:    CategorySpecial,
		description: "Only benefics hold the angles, steadying every area of life.",
	}
	return []Combination{c.combination(def, planets, c.standardStrength(planets))}
}

// detectSukhaBhagya finds a link between the lords of the 4th and 9th.
func detectSukhaBhagya(c *ChartContext) []Combination {
	if !c.HasAscendant() {
		return nil
	}
	a, b := c.Lord(4), c.Lord(9)
	if a == b {
		return nil
	}
	link := c.Connect(a, b)
	if link == ConnectionNone {
		return nil
	}
	def := definition{
		name:        "sukha_bhagya_yoga",
		title:       "Sukha Bhagya Yoga",
		category:    CategorySpecial,
		description: "The lords of happiness and fortune are linked, bringing comfort through luck.",
	}
	planets := []domain.Planet{a, b}
	return []Combination{c.combination(def, planets, c.standardStrength(planets), "lords of houses 4 and 9 in "+string(link))}
}

// detectPravrajya finds four or more planets gathered in one house.
func detectPravrajya(c *ChartContext) []Combination {
	if !c.HasAscendant() {
		return nil
	}
	def := definition{
		name:        "pravrajya_yoga",
		title:       "Pravrajya Yoga",
		category:    CategorySpecial,
		description: "Many planets gathered in one house incline toward renunciation and spiritual pursuit.",
	}
	var out []Combination
	for h := 1; h <= 12; h++ {
		planets := c.Occupants(h, domain.MainPlanets)
		if len(planets) < pravrajyaMinPlanets {
			continue
		}
		out = append(out, c.combination(def, planets, c.standardStrength(planets), fmt.Sprintf("%d planets in house %d", len(planets), h)))
	}
	return out
}

// detectExaltedLagneshaAspected finds an exalted ascendant lord receiving Jupiter's aspect.
func detectExaltedLagneshaAspected(c *ChartContext) []Combination {
	lord, ok := c.LordPosition(1)
	if !ok || lord.Planet == domain.Jupiter || !dignity.IsExalted(lord.Planet, lord.Sign()) {
		return nil
	}
	jup, ok := c.Pos(domain.Jupiter)
	if !ok {
		return nil
	}
	relations := drishti.CalculateAll(jup, lord, drishti.DefaultConfig())
	if len(relations) == 0 {
		return nil
	}
	def := definition{
		name:        "lagnesha_guru_drishti",
		title:       "Exalted Lagnesha with Guru Drishti",
		category:    CategorySpecial,
		description: "An exalted ascendant lord blessed by Jupiter's aspect gives health, longevity and standing.",
	}
	planets := []domain.Planet{lord.Planet, domain.Jupiter}
	note := fmt.Sprintf("Jupiter's %s aspect reaches the ascendant lord", relations[0].Kind)
	return []Combination{c.combination(def, planets, c.standardStrength(planets), note)}
}

// detectDharmaKarmadhipati finds a link between the lords of the 9th and
// 10th, or one planet ruling both. It carries extra weight.
func detectDharmaKarmadhipati(c *ChartContext) []Combination {
	if !c.HasAscendant() {
		return nil
	}
	a, b := c.Lord(9), c.Lord(10)
	var planets []domain.Planet
	var note string
	if a == b {
		if !c.Has(a) {
			return nil
		}
		planets = []domain.Planet{a}
		note = a.Name() + " rules both the 9th and the 10th"
	} else {
		link := c.Connect(a, b)
		if link == ConnectionNone {
			return nil
		}
		planets = []domain.Planet{a, b}
		note = "lords of houses 9 and 10 in " + string(link)
	}

	s := c.standardStrength(planets).add(dharmaKarmaBonus, "").scale(dharmaKarmaFactor, "")
	def := definition{
		name:        "dharma_karmadhipati_yoga",
		title:       "Dharma Karmadhipati Yoga",
		category:    CategorySpecial,
		description: "Duty and purpose unite; the most celebrated of the royal combinations.",
	}
	return []Combination{c.combination(def, planets, s, note)}
}

// detectParvata finds benefics in the angles while the 6th and 8th are
// empty or hold only benefics.
func detectParvata(c *ChartContext) []Combination {
	if !c.HasAscendant() {
		return nil
	}
	planets := planetsInKendras(c, shubhaPlanets)
	if len(planets) == 0 {
		return nil
	}
	for _, h := range []int{6, 8} {
		if len(c.Occupants(h, papaPlanets)) > 0 {
			return nil
		}
	}
	def := definition{
		name:        "parvata_yoga",
		title:       "Parvata Yoga",
		category:    CategorySpecial,
		description: "Benefics hold the angles while the houses of disease and loss stay clean, giving prosperity and fame.",
	}
	return []Combination{c.combination(def, planets, c.standardStrength(planets))}
}

// detectLagnadhi finds two or more benefics in the 6th, 7th and 8th from the
// ascendant with no malefic in those houses.
func detectLagnadhi(c *ChartContext) []Combination {
	if !c.HasAscendant() {
		return nil
	}
	houses := []int{6, 7, 8}
	var planets []domain.Planet
	for _, h := range houses {
		if len(c.Occupants(h, papaPlanets)) > 0 {
			return nil
		}
		planets = append(planets, c.Occupants(h, shubhaPlanets)...)
	}
	if len(planets) < 2 {
		return nil
	}
	def := definition{
		name:        "lagnadhi_yoga",
		title:       "Lagnadhi Yoga",
		category:    CategorySpecial,
		description: "Benefics in the sixth, seventh and eighth from the ascendant give a noble and comfortable life.",
	}
	return []Combination{c.combination(def, planets, c.standardStrength(planets))}
}
