package yoga

import "github.com/aristath/jyotish/internal/domain"

// The Moon and the nodes are excluded from the solar flanking yogas.
var solarFlankers = []domain.Planet{domain.Mars, domain.Mercury, domain.Jupiter, domain.Venus, domain.Saturn}

func suryaDetectors() []Detector {
	return []Detector{
		NewDetector("vesi", GroupSurya, detectVesi),
		NewDetector("vasi", GroupSurya, detectVasi),
		NewDetector("ubhayachari", GroupSurya, detectUbhayachari),
	}
}

func sunFlanks(c *ChartContext) (second, twelfth []domain.Planet) {
	second = c.InHousesFrom(domain.Sun, []int{2}, solarFlankers)
	twelfth = c.InHousesFrom(domain.Sun, []int{12}, solarFlankers)
	return second, twelfth
}

func solarCombination(c *ChartContext, def definition, flankers []domain.Planet) Combination {
	planets := append([]domain.Planet{domain.Sun}, flankers...)
	return c.combination(def, planets, c.standardStrength(planets))
}

func detectVesi(c *ChartContext) []Combination {
	if !c.Has(domain.Sun) {
		return nil
	}
	second, twelfth := sunFlanks(c)
	if len(second) == 0 || len(twelfth) > 0 {
		return nil
	}
	def := definition{
		name:        "vesi",
		title:       "Vesi Yoga",
		category:    CategorySurya,
		description: "A planet in the second from the Sun gives balance and truthfulness.",
	}
	return []Combination{solarCombination(c, def, second)}
}

func detectVasi(c *ChartContext) []Combination {
	if !c.Has(domain.Sun) {
		return nil
	}
	second, twelfth := sunFlanks(c)
	if len(twelfth) == 0 || len(second) > 0 {
		return nil
	}
	def := definition{
		name:        "vasi",
		title:       "Vasi Yoga",
		category:    CategorySurya,
		description: "A planet in the twelfth from the Sun gives skill and charity.",
	}
	return []Combination{solarCombination(c, def, twelfth)}
}

func detectUbhayachari(c *ChartContext) []Combination {
	if !c.Has(domain.Sun) {
		return nil
	}
	second, twelfth := sunFlanks(c)
	if len(second) == 0 || len(twelfth) == 0 {
		return nil
	}
	def := definition{
		name:        "ubhayachari",
		title:       "Ubhayachari Yoga",
		category:    CategorySurya,
		description: "Planets on both sides of the Sun give eloquence and a kingly bearing.",
	}
	return []Combination{solarCombination(c, def, append(twelfth, second...))}
}
