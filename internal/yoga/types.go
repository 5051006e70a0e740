// Package yoga detects classical planetary combinations and scores them.
package yoga

import "github.com/aristath/jyotish/internal/domain"

// Category classifies a combination.
type Category string

const (
	CategoryRaja        Category = "raja"
	CategoryDhana       Category = "dhana"
	CategoryMahapurusha Category = "pancha_mahapurusha"
	CategoryNabhasa     Category = "nabhasa"
	CategoryChandra     Category = "chandra"
	CategorySurya       Category = "surya"
	CategoryDosha       Category = "dosha"
	CategorySpecial     Category = "special"
)

// Categories lists every category in reporting order.
var Categories = []Category{
	CategoryRaja, CategoryDhana, CategoryMahapurusha, CategoryNabhasa,
	CategoryChandra, CategorySurya, CategoryDosha, CategorySpecial,
}

// dominantCandidates are the categories eligible to dominate a chart.
var dominantCandidates = []Category{
	CategoryRaja, CategoryDhana, CategoryMahapurusha, CategoryNabhasa,
	CategoryChandra, CategorySurya, CategorySpecial,
}

// Group is the detector family a rule belongs to. Groups are finer than
// categories: the additional group emits both dosha and special results.
type Group string

const (
	GroupRaja        Group = "raja"
	GroupDhana       Group = "dhana"
	GroupMahapurusha Group = "mahapurusha"
	GroupNabhasa     Group = "nabhasa"
	GroupChandra     Group = "chandra"
	GroupSurya       Group = "surya"
	GroupDosha       Group = "dosha"
	GroupAdditional  Group = "additional"
	GroupSpecial     Group = "special"
)

// Combination is one detected yoga.
type Combination struct {
	Name             string          `json:"name" msgpack:"name"` // stable identifier, e.g. "gaja_kesari"
	Title            string          `json:"title" msgpack:"title"`
	Category         Category        `json:"category" msgpack:"category"`
	Planets          []domain.Planet `json:"planets" msgpack:"planets"`
	Houses           []int           `json:"houses" msgpack:"houses"`
	BaseStrength     float64         `json:"base_strength" msgpack:"base_strength"`
	Strength         float64         `json:"strength" msgpack:"strength"`
	Auspicious       bool            `json:"auspicious" msgpack:"auspicious"`
	Factors          []string        `json:"factors,omitempty" msgpack:"factors,omitempty"`
	ActivationPeriod string          `json:"activation_period,omitempty" msgpack:"activation_period,omitempty"`
	Description      string          `json:"description" msgpack:"description"`
}

// CategorySummary groups the combinations of one category.
type CategorySummary struct {
	Category     Category      `json:"category" msgpack:"category"`
	Count        int           `json:"count" msgpack:"count"`
	Combinations []Combination `json:"combinations" msgpack:"combinations"`
}

// Analysis is the aggregate of every combination detected in one chart.
type Analysis struct {
	ChartID          string            `json:"chart_id,omitempty" msgpack:"chart_id,omitempty"`
	Combinations     []Combination     `json:"combinations" msgpack:"combinations"`
	Categories       []CategorySummary `json:"categories" msgpack:"categories"`
	DominantCategory Category          `json:"dominant_category,omitempty" msgpack:"dominant_category,omitempty"`
	OverallStrength  float64           `json:"overall_strength" msgpack:"overall_strength"`
	AuspiciousCount  int               `json:"auspicious_count" msgpack:"auspicious_count"`
	NegativeCount    int               `json:"negative_count" msgpack:"negative_count"`
}

// InCategory returns the combinations of one category.
func (a Analysis) InCategory(cat Category) []Combination {
	for _, s := range a.Categories {
		if s.Category == cat {
			return s.Combinations
		}
	}
	return nil
}

// Find returns the first combination with the given name.
func (a Analysis) Find(name string) (Combination, bool) {
	for _, c := range a.Combinations {
		if c.Name == name {
			return c, true
		}
	}
	return Combination{}, false
}

// Detector is one pattern rule.
type Detector interface {
	// Name returns the unique identifier used to enable or disable the rule.
	Name() string

	// Group returns the detector family.
	Group() Group

	// Detect returns every combination the rule finds. It never fails:
	// missing planets simply produce no result.
	Detect(c *ChartContext) []Combination
}

type detectorFunc struct {
	name  string
	group Group
	fn    func(c *ChartContext) []Combination
}

func (d detectorFunc) Name() string                        { return d.name }
func (d detectorFunc) Group() Group                        { return d.group }
func (d detectorFunc) Detect(c *ChartContext) []Combination { return d.fn(c) }

// NewDetector wraps a function as a Detector.
func NewDetector(name string, group Group, fn func(c *ChartContext) []Combination) Detector {
	return detectorFunc{name: name, group: group, fn: fn}
}
