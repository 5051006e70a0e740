package yoga

import (
	"fmt"

	"github.com/aristath/jyotish/internal/affliction"
	"github.com/aristath/jyotish/internal/dignity"
	"github.com/aristath/jyotish/internal/domain"
)

const (
	kemadrumaIntensity   = 60.0
	daridraIntensity     = 55.0
	grahanTight          = 3.0 // eclipse degree band for the strongest intensity
	grahanNear           = 10.0
	angarakIntensity     = 60.0
	shrapitIntensity     = 65.0
	guruChandalIntensity = 55.0
	kalaSarpaIntensity   = 70.0
	closeNodeBonus       = 10.0

	jupiterMitigation = 0.7
	dignityMitigation = 0.85
)

// Kala Sarpa variants by Rahu's house.
var kalaSarpaTypes = [13]string{
	"", "Anant", "Kulik", "Vasuki", "Shankhpal", "Padma", "Mahapadma",
	"Takshak", "Karkotak", "Shankhachood", "Ghatak", "Vishdhar", "Sheshnag",
}

var grahanRules = []struct {
	luminary domain.Planet
	node     domain.Planet
	name     string
	title    string
}{
	{domain.Sun, domain.Rahu, "surya_grahan_rahu", "Surya Grahan Dosha (Rahu)"},
	{domain.Sun, domain.Ketu, "surya_grahan_ketu", "Surya Grahan Dosha (Ketu)"},
	{domain.Moon, domain.Rahu, "chandra_grahan_rahu", "Chandra Grahan Dosha (Rahu)"},
	{domain.Moon, domain.Ketu, "chandra_grahan_ketu", "Chandra Grahan Dosha (Ketu)"},
}

func doshaDetectors() []Detector {
	out := []Detector{
		NewDetector("kemadruma", GroupDosha, detectKemadruma),
		NewDetector("daridra_yoga", GroupDosha, detectDaridra),
	}
	for _, rule := range grahanRules {
		rule := rule
		out = append(out, NewDetector(rule.name, GroupDosha, func(c *ChartContext) []Combination {
			return detectGrahan(c, rule.luminary, rule.node, rule.name, rule.title)
		}))
	}
	return append(out,
		NewDetector("angarak_yoga", GroupDosha, detectAngarak),
		NewDetector("shrapit_dosha", GroupDosha, detectShrapit),
		NewDetector("guru_chandal_yoga", GroupDosha, detectGuruChandal),
		NewDetector("kala_sarpa", GroupDosha, detectKalaSarpa),
	)
}

// jupiterAspects reports whether Jupiter casts a Vedic aspect on, or joins, the planet.
func (c *ChartContext) jupiterAspects(target domain.Planet) bool {
	if target == domain.Jupiter {
		return false
	}
	jup, ok := c.Pos(domain.Jupiter)
	if !ok {
		return false
	}
	pos, ok := c.Pos(target)
	if !ok {
		return false
	}
	return affliction.Aspects(jup, pos) || c.Conjunct(domain.Jupiter, target)
}

// detectKemadruma finds a Moon with nothing in the 2nd or 12th from it,
// unless one of three cancellations applies.
func detectKemadruma(c *ChartContext) []Combination {
	moon, ok := c.Pos(domain.Moon)
	if !ok {
		return nil
	}
	second, twelfth := moonFlanks(c)
	if len(second) > 0 || len(twelfth) > 0 {
		return nil
	}
	if len(c.InHousesFrom(domain.Moon, []int{1}, lunarFlankers)) > 0 {
		return nil // a planet conjoins the Moon
	}
	if len(c.InHousesFrom(domain.Moon, []int{4, 7, 10}, lunarFlankers)) > 0 {
		return nil // a planet is angular from the Moon
	}
	if c.HasAscendant() && dignity.IsKendra(moon.House) {
		return nil // the Moon is angular from the ascendant
	}

	intensity := kemadrumaIntensity
	var notes []string
	if affliction.IsWaningMoon(moon, c.Chart()) {
		intensity += 10
		notes = append(notes, "the Moon is waning")
	}
	def := definition{
		name:        "kemadruma",
		title:       "Kemadruma Yoga",
		category:    CategoryDosha,
		description: "An isolated Moon brings loneliness and fluctuating fortunes.",
		negative:    true,
	}
	return []Combination{c.combination(def, []domain.Planet{domain.Moon}, doshaStrength(intensity), notes...)}
}

// detectDaridra finds the lord of gains in a dusthana.
func detectDaridra(c *ChartContext) []Combination {
	pos, ok := c.LordPosition(11)
	if !ok || !dignity.IsDusthana(pos.House) {
		return nil
	}
	intensity := daridraIntensity
	if dignity.IsDebilitated(pos.Planet, pos.Sign()) {
		intensity += 10
	}
	s := doshaStrength(intensity, mitigation{
		applies: c.jupiterAspects(pos.Planet),
		factor:  0.8,
		note:    "Jupiter's aspect mitigates",
	})
	def := definition{
		name:        "daridra_yoga",
		title:       "Daridra Yoga",
		category:    CategoryDosha,
		description: "The lord of gains falls into a difficult house, straining finances.",
		negative:    true,
	}
	return []Combination{c.combination(def, []domain.Planet{pos.Planet}, s, fmt.Sprintf("lord of the 11th in house %d", pos.House))}
}

// detectGrahan finds a luminary sharing a house with a node. Intensity
// rises as the two close in on each other.
func detectGrahan(c *ChartContext, luminary, node domain.Planet, name, title string) []Combination {
	if !c.Has(luminary, node) || !c.SameHouse(luminary, node) {
		return nil
	}
	lum, _ := c.Pos(luminary)
	np, _ := c.Pos(node)
	dist := domain.AngularDistance(lum.Longitude, np.Longitude)

	intensity := 60.0
	switch {
	case dist <= grahanTight:
		intensity = 80
	case dist <= grahanNear:
		intensity = 70
	}

	s := doshaStrength(intensity,
		mitigation{applies: c.jupiterAspects(luminary), factor: jupiterMitigation, note: "Jupiter's aspect mitigates"},
		mitigation{applies: dignity.IsStrong(luminary, lum.Sign()), factor: dignityMitigation, note: luminary.Name() + " is dignified"},
	)
	def := definition{
		name:        name,
		title:       title,
		category:    CategoryDosha,
		description: fmt.Sprintf("%s is eclipsed by %s, clouding what it signifies.", luminary.Name(), node.Name()),
		negative:    true,
	}
	return []Combination{c.combination(def, []domain.Planet{luminary, node}, s, fmt.Sprintf("%.1f° apart", dist))}
}

func nodeConjunction(c *ChartContext, planet domain.Planet, nodes []domain.Planet, intensity float64, def definition, mitigations ...mitigation) []Combination {
	var out []Combination
	for _, node := range nodes {
		if !c.Has(planet, node) || !c.SameHouse(planet, node) {
			continue
		}
		v := intensity
		if c.Conjunct(planet, node) {
			v += closeNodeBonus
		}
		out = append(out, c.combination(def, []domain.Planet{planet, node}, doshaStrength(v, mitigations...)))
	}
	return out
}

// detectAngarak finds Mars with either node.
func detectAngarak(c *ChartContext) []Combination {
	def := definition{
		name:        "angarak_yoga",
		title:       "Angarak Yoga",
		category:    CategoryDosha,
		description: "Mars joined by a node inflames temper and invites accidents.",
		negative:    true,
	}
	return nodeConjunction(c, domain.Mars, []domain.Planet{domain.Rahu, domain.Ketu}, angarakIntensity, def)
}

// detectShrapit finds Saturn with Rahu.
func detectShrapit(c *ChartContext) []Combination {
	def := definition{
		name:        "shrapit_dosha",
		title:       "Shrapit Dosha",
		category:    CategoryDosha,
		description: "Saturn joined by Rahu delays results and brings karmic burdens.",
		negative:    true,
	}
	return nodeConjunction(c, domain.Saturn, []domain.Planet{domain.Rahu}, shrapitIntensity, def,
		mitigation{applies: c.jupiterAspects(domain.Saturn), factor: jupiterMitigation, note: "Jupiter's aspect mitigates"})
}

// detectGuruChandal finds Jupiter with Rahu.
func detectGuruChandal(c *ChartContext) []Combination {
	jup, ok := c.Pos(domain.Jupiter)
	if !ok {
		return nil
	}
	def := definition{
		name:        "guru_chandal_yoga",
		title:       "Guru Chandal Yoga",
		category:    CategoryDosha,
		description: "Jupiter joined by Rahu corrupts judgment and unsettles beliefs.",
		negative:    true,
	}
	return nodeConjunction(c, domain.Jupiter, []domain.Planet{domain.Rahu}, guruChandalIntensity, def,
		mitigation{applies: dignity.IsStrong(domain.Jupiter, jup.Sign()), factor: 0.8, note: "Jupiter is dignified"})
}

// detectKalaSarpa finds all seven planets on one side of the nodal axis.
// A planet exactly on a node counts toward the Rahu to Ketu arc.
func detectKalaSarpa(c *ChartContext) []Combination {
	if !c.Has(domain.MainPlanets...) || !c.Has(domain.Rahu, domain.Ketu) {
		return nil
	}
	rahu, _ := c.Pos(domain.Rahu)
	ketu, _ := c.Pos(domain.Ketu)
	span := domain.ForwardAngle(rahu.Longitude, ketu.Longitude)

	ahead := 0
	for _, p := range domain.MainPlanets {
		pos, _ := c.Pos(p)
		if domain.ForwardAngle(rahu.Longitude, pos.Longitude) <= span {
			ahead++
		}
	}
	var direction string
	switch ahead {
	case len(domain.MainPlanets):
		direction = "planets hemmed from Rahu to Ketu"
	case 0:
		direction = "planets hemmed from Ketu to Rahu"
	default:
		return nil
	}

	title := "Kala Sarpa Dosha"
	notes := []string{direction}
	if rahu.House > 0 {
		kind := kalaSarpaTypes[rahu.House]
		title = kind + " Kala Sarpa Dosha"
		notes = append(notes, fmt.Sprintf("Rahu in house %d (%s)", rahu.House, kind))
	}

	jupiterAngular := false
	if c.HasAscendant() {
		jupiterAngular = dignity.IsKendra(c.House(domain.Jupiter))
	}
	s := doshaStrength(kalaSarpaIntensity, mitigation{
		applies: jupiterAngular,
		factor:  dignityMitigation,
		note:    "Jupiter in a kendra mitigates",
	})
	def := definition{
		name:        "kala_sarpa",
		title:       title,
		category:    CategoryDosha,
		description: "Every planet lies on one side of the nodal axis, binding the chart's promise to karmic cycles.",
		negative:    true,
	}
	return []Combination{c.combination(def, []domain.Planet{domain.Rahu, domain.Ketu}, s, notes...)}
}

// KalaSarpaType names the Kala Sarpa variant for Rahu's house.
func KalaSarpaType(rahuHouse int) string {
	if rahuHouse < 1 || rahuHouse > 12 {
		return ""
	}
	return kalaSarpaTypes[rahuHouse]
}
