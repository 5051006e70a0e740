package drishti

import (
	"encoding/json"
	"testing"

	"github.com/aristath/jyotish/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleChart() domain.Chart {
	return domain.NewChart(0, map[domain.Planet]float64{
		domain.Sun:     10,  // Aries
		domain.Moon:    190, // Libra, opposite the Sun
		domain.Mars:    13,  // conjunct the Sun
		domain.Jupiter: 130, // Leo, 5th from Aries
		domain.Saturn:  280, // Capricorn
		domain.Uranus:  195,
	})
}

func TestBuildMatrix_SortedAndDeterministic(t *testing.T) {
	chart := sampleChart()

	m1 := BuildMatrix(chart, DefaultConfig())
	m2 := BuildMatrix(chart, DefaultConfig())
	require.NotEmpty(t, m1.Relations)
	assert.Equal(t, m1, m2)

	for i := 1; i < len(m1.Relations); i++ {
		assert.GreaterOrEqual(t, m1.Relations[i-1].Strength, m1.Relations[i].Strength)
	}
}

func TestBuildMatrix_ExcludesOuterPlanetsByDefault(t *testing.T) {
	chart := sampleChart()

	m := BuildMatrix(chart, DefaultConfig())
	assert.Empty(t, m.ByCaster(domain.Uranus))
	assert.Empty(t, m.ByReceiver(domain.Uranus))

	cfg := DefaultConfig()
	cfg.IncludeOuterPlanets = true
	m = BuildMatrix(chart, cfg)
	assert.NotEmpty(t, m.ByReceiver(domain.Uranus))
}

func TestBuildMatrix_ConjunctionRecordedOnce(t *testing.T) {
	m := BuildMatrix(sampleChart(), DefaultConfig())

	var sunMars []Relation
	for _, r := range m.Conjunctions() {
		if orderedKey(r.Caster, r.Receiver) == orderedKey(domain.Sun, domain.Mars) {
			sunMars = append(sunMars, r)
		}
	}
	require.Len(t, sunMars, 1)
	assert.Equal(t, domain.Sun, sunMars[0].Caster)

	assert.Len(t, m.Between(domain.Mars, domain.Sun), 1, "the conjunction is visible from either side")
}

func TestBuildMatrix_Queries(t *testing.T) {
	m := BuildMatrix(sampleChart(), DefaultConfig())

	opps := m.Oppositions()
	require.NotEmpty(t, opps)
	for _, r := range opps {
		assert.Equal(t, Opposition, r.Kind)
	}

	special := m.SpecialAspects()
	require.NotEmpty(t, special)
	for _, r := range special {
		assert.True(t, r.IsSpecial())
	}

	// Jupiter in Leo casts its 9th aspect onto Aries (Sun, Mars)
	found := false
	for _, r := range m.ByCaster(domain.Jupiter) {
		if r.Kind == JupiterNinth && r.Receiver == domain.Sun {
			found = true
		}
	}
	assert.True(t, found)

	strongest, ok := m.Strongest()
	require.True(t, ok)
	assert.Equal(t, m.Relations[0], strongest)
}

func TestBuildMatrix_MutualPairs(t *testing.T) {
	m := BuildMatrix(sampleChart(), DefaultConfig())

	keys := make(map[pairKey]MutualPair)
	for _, mp := range m.Mutual {
		k := orderedKey(mp.A, mp.B)
		_, dup := keys[k]
		assert.False(t, dup, "pair %s/%s listed twice", mp.A, mp.B)
		keys[k] = mp
	}

	sunMoon, ok := keys[orderedKey(domain.Sun, domain.Moon)]
	require.True(t, ok, "Sun and Moon oppose each other")
	assert.Equal(t, Opposition, sunMoon.AToB.Kind)
	assert.Equal(t, Opposition, sunMoon.BToA.Kind)

	_, ok = keys[orderedKey(domain.Sun, domain.Mars)]
	assert.True(t, ok, "conjunctions are mutual")
}

func TestBuildMatrix_EmptyChart(t *testing.T) {
	m := BuildMatrix(domain.Chart{}, DefaultConfig())
	assert.Empty(t, m.Relations)
	assert.Empty(t, m.Mutual)
	_, ok := m.Strongest()
	assert.False(t, ok)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"relations":[],"mutual":[]}`, string(data))
}

func TestPlanetaryAspectStrength(t *testing.T) {
	chart := domain.NewChart(0, map[domain.Planet]float64{
		domain.Sun:     40,  // Taurus
		domain.Moon:    100, // waxing
		domain.Saturn:  10,  // Aries
		domain.Jupiter: 190, // opposite Saturn
		domain.Mars:    280, // Capricorn: 4th from Mars is Aries
	})

	s := PlanetaryAspectStrength(domain.Saturn, chart, DefaultConfig())
	assert.Equal(t, domain.Saturn, s.Planet)
	require.NotEmpty(t, s.BeneficAspects)
	require.NotEmpty(t, s.MaleficAspects)
	assert.Greater(t, s.BeneficScore, 0.0)
	assert.Greater(t, s.MaleficScore, 0.0)
	assert.InDelta(t, s.BeneficScore-s.MaleficScore, s.NetScore, 1e-9)

	for _, r := range s.BeneficAspects {
		assert.Equal(t, domain.Saturn, r.Receiver)
	}
}

func TestPlanetaryAspectStrength_MissingPlanet(t *testing.T) {
	chart := domain.NewChart(0, map[domain.Planet]float64{domain.Sun: 10})

	s := PlanetaryAspectStrength(domain.Venus, chart, DefaultConfig())
	assert.Equal(t, InfluenceNone, s.Influence)
	assert.Zero(t, s.NetScore)
}

func TestPlanetaryAspectStrength_WaningMoonIsMalefic(t *testing.T) {
	chart := domain.NewChart(0, map[domain.Planet]float64{
		domain.Sun:   100,
		domain.Moon:  10, // 270° ahead of the Sun: waning
		domain.Venus: 190,
	})

	s := PlanetaryAspectStrength(domain.Venus, chart, DefaultConfig())
	require.Len(t, s.MaleficAspects, 1)
	assert.Equal(t, domain.Moon, s.MaleficAspects[0].Caster)
	assert.Equal(t, InfluenceMalefic, s.Influence)
}
