package yoga

import (
	"sort"

	"github.com/aristath/jyotish/internal/domain"
)

// Nabhasa families, highest precedence first: shape, support, number.
// Only the best-ranked match is reported.
const (
	nabhasaAkriti = iota
	nabhasaAshraya
	nabhasaSankhya
)

type nabhasaRule struct {
	name        string
	title       string
	family      int
	description string
	match       func(c *ChartContext) bool
}

var nabhasaRules = []nabhasaRule{
	{"shakata", "Shakata Yoga", nabhasaAkriti, "All planets in the 1st and 7th houses; fortunes rise and fall like a cart wheel.", matchHouses([]int{1, 7})},
	{"gada", "Gada Yoga", nabhasaAkriti, "All planets in two successive angles; wealth earned through steady effort.", matchSuccessiveKendras},
	{"rajju", "Rajju Yoga", nabhasaAshraya, "All planets in movable signs; a restless and travelling life.", matchModality(domain.Movable)},
	{"musala", "Musala Yoga", nabhasaAshraya, "All planets in fixed signs; steadfast, proud and wealthy.", matchModality(domain.Fixed)},
	{"nala", "Nala Yoga", nabhasaAshraya, "All planets in dual signs; versatile and skilful.", matchModality(domain.Dual)},
	{"gola", "Gola Yoga", nabhasaSankhya, "All planets in one sign.", matchSignCount(1)},
	{"yuga", "Yuga Yoga", nabhasaSankhya, "All planets in two signs.", matchSignCount(2)},
	{"shoola", "Shoola Yoga", nabhasaSankhya, "All planets in three signs.", matchSignCount(3)},
	{"kedara", "Kedara Yoga", nabhasaSankhya, "All planets in four signs.", matchSignCount(4)},
	{"pasha", "Pasha Yoga", nabhasaSankhya, "All planets in five signs.", matchSignCount(5)},
	{"damini", "Damini Yoga", nabhasaSankhya, "All planets in six signs.", matchSignCount(6)},
	{"veena", "Veena Yoga", nabhasaSankhya, "All planets in seven signs.", matchSignCount(7)},
}

var successiveKendras = [][]int{{1, 4}, {4, 7}, {7, 10}, {1, 10}}

func nabhasaDetectors() []Detector {
	return []Detector{NewDetector("nabhasa", GroupNabhasa, detectNabhasa)}
}

// detectNabhasa evaluates every whole-chart pattern over the seven visible
// planets and keeps the first match of the highest family.
func detectNabhasa(c *ChartContext) []Combination {
	if !c.Has(domain.MainPlanets...) {
		return nil
	}
	best := -1
	for i, rule := range nabhasaRules {
		if !rule.match(c) {
			continue
		}
		if best < 0 || rule.family < nabhasaRules[best].family {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	rule := nabhasaRules[best]
	def := definition{
		name:        rule.name,
		title:       rule.title,
		category:    CategoryNabhasa,
		description: rule.description,
	}
	return []Combination{c.combination(def, domain.MainPlanets, c.patternStrength(domain.MainPlanets))}
}

// NabhasaMatches lists every pattern the chart satisfies before precedence is applied.
func NabhasaMatches(c *ChartContext) []string {
	if !c.Has(domain.MainPlanets...) {
		return nil
	}
	var out []string
	for _, rule := range nabhasaRules {
		if rule.match(c) {
			out = append(out, rule.name)
		}
	}
	return out
}

func occupiedHouses(c *ChartContext) []int {
	set := make(map[int]bool)
	for _, p := range domain.MainPlanets {
		set[c.House(p)] = true
	}
	houses := make([]int, 0, len(set))
	for h := range set {
		houses = append(houses, h)
	}
	sort.Ints(houses)
	return houses
}

func matchHouses(want []int) func(c *ChartContext) bool {
	return func(c *ChartContext) bool {
		if !c.HasAscendant() {
			return false
		}
		got := occupiedHouses(c)
		if len(got) != len(want) {
			return false
		}
		for i := range got {
			if got[i] != want[i] {
				return false
			}
		}
		return true
	}
}

func matchSuccessiveKendras(c *ChartContext) bool {
	for _, pair := range successiveKendras {
		if matchHouses(pair)(c) {
			return true
		}
	}
	return false
}

// matchModality needs at least two occupied signs; a single-sign cluster is Gola.
func matchModality(m domain.Modality) func(c *ChartContext) bool {
	return func(c *ChartContext) bool {
		signs := make(map[domain.Sign]bool)
		for _, p := range domain.MainPlanets {
			pos, _ := c.Pos(p)
			if pos.Sign().Modality() != m {
				return false
			}
			signs[pos.Sign()] = true
		}
		return len(signs) >= 2
	}
}

func matchSignCount(n int) func(c *ChartContext) bool {
	return func(c *ChartContext) bool {
		signs := make(map[domain.Sign]bool)
		for _, p := range domain.MainPlanets {
			pos, _ := c.Pos(p)
			signs[pos.Sign()] = true
		}
		return len(signs) == n
	}
}
