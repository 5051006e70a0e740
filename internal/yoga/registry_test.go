package yoga

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/jyotish/internal/domain"
)

func TestPopulatedRegistry(t *testing.T) {
	r := NewPopulatedRegistry(zerolog.Nop())

	names := r.Names()
	assert.GreaterOrEqual(t, len(names), 45)

	seen := make(map[string]bool)
	for _, n := range names {
		assert.False(t, seen[n], "duplicate detector %s", n)
		seen[n] = true
	}

	groups := make(map[Group]int)
	for _, d := range r.List() {
		groups[d.Group()]++
	}
	assert.Len(t, groups, 9)
	assert.Equal(t, 5, groups[GroupRaja])
	assert.Equal(t, 5, groups[GroupDhana])
	assert.Equal(t, 5, groups[GroupMahapurusha])
	assert.Equal(t, 5, groups[GroupChandra])
	assert.Equal(t, 3, groups[GroupSurya])
	assert.Equal(t, 10, groups[GroupDosha])
	assert.Equal(t, 10, groups[GroupSpecial])
	assert.Len(t, nabhasaRules, 12)
}

func TestRegistry_GetAndValidate(t *testing.T) {
	r := NewPopulatedRegistry(zerolog.Nop())

	d, err := r.Get("gaja_kesari")
	require.NoError(t, err)
	assert.Equal(t, GroupChandra, d.Group())

	_, err = r.Get("missing")
	assert.ErrorIs(t, err, ErrDetectorNotFound)

	assert.NoError(t, r.Validate([]string{"kala_sarpa", "hamsa"}))
	assert.ErrorIs(t, r.Validate([]string{"hamsa", "missing"}), ErrDetectorNotFound)
}

func TestRegistry_ReplaceKeepsOrder(t *testing.T) {
	r := NewRegistry(zerolog.Nop())
	marker := func(name string) func(c *ChartContext) []Combination {
		return func(c *ChartContext) []Combination { return []Combination{{Name: name}} }
	}

	r.Register(NewDetector("first", GroupSpecial, marker("first")))
	r.Register(NewDetector("second", GroupSpecial, marker("second")))
	r.Register(NewDetector("first", GroupSpecial, marker("replaced")))

	assert.Equal(t, []string{"first", "second"}, r.Names())

	c := NewChartContext(domain.Chart{}, DefaultOptions())
	assert.Equal(t, []string{"replaced", "second"}, names(r.Detect(c, nil)))
	assert.Equal(t, []string{"second"}, names(r.Detect(c, map[string]bool{"first": true})))
}
