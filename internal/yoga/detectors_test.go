package yoga

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/jyotish/internal/domain"
)

func ctxOf(asc float64, lons map[domain.Planet]float64) *ChartContext {
	return NewChartContext(domain.NewChart(asc, lons), DefaultOptions())
}

func names(combos []Combination) []string {
	out := make([]string, 0, len(combos))
	for _, c := range combos {
		out = append(out, c.Name)
	}
	return out
}

func TestConjunct_SymmetricWithTightPairs(t *testing.T) {
	c := ctxOf(0, map[domain.Planet]float64{
		domain.Venus:   40,
		domain.Mercury: 46, // 6° apart: beyond the 5° Mercury-Venus orb
		domain.Jupiter: 47,
		domain.Moon:    355,
	})

	assert.False(t, c.Conjunct(domain.Venus, domain.Mercury))
	assert.False(t, c.Conjunct(domain.Mercury, domain.Venus))
	assert.True(t, c.Conjunct(domain.Venus, domain.Jupiter))
	assert.True(t, c.Conjunct(domain.Jupiter, domain.Venus))
	assert.False(t, c.Conjunct(domain.Moon, domain.Venus))
	assert.False(t, c.Conjunct(domain.Venus, domain.Venus))
	assert.False(t, c.Conjunct(domain.Venus, domain.Saturn), "absent planets never conjoin")
}

func TestMutualAspectAndExchange(t *testing.T) {
	c := ctxOf(0, map[domain.Planet]float64{
		domain.Mercury: 220, // Scorpio, ruled by Mars
		domain.Mars:    160, // Virgo, ruled by Mercury
		domain.Jupiter: 45,
	})

	assert.True(t, c.Exchange(domain.Mercury, domain.Mars))
	assert.True(t, c.Exchange(domain.Mars, domain.Mercury))
	assert.True(t, c.MutualAspect(domain.Jupiter, domain.Mercury))
	assert.True(t, c.MutualAspect(domain.Mercury, domain.Jupiter))
	assert.False(t, c.MutualAspect(domain.Jupiter, domain.Mars))
	assert.Equal(t, ConnectionExchange, c.Connect(domain.Mars, domain.Mercury))
}

func TestNewChartContext_DerivesKetu(t *testing.T) {
	c := ctxOf(0, map[domain.Planet]float64{domain.Rahu: 100})

	ketu, ok := c.Pos(domain.Ketu)
	require.True(t, ok)
	assert.InDelta(t, 280.0, ketu.Longitude, 1e-9)
	assert.Equal(t, 10, ketu.House)
}

func TestRuchaka_MarsExaltedInTenth(t *testing.T) {
	c := ctxOf(0, map[domain.Planet]float64{domain.Mars: 270})

	found := detectMahapurusha(c, mahapurushaRules[0])
	require.Len(t, found, 1)
	r := found[0]
	assert.Equal(t, "ruchaka", r.Name)
	assert.Equal(t, CategoryMahapurusha, r.Category)
	assert.Equal(t, []int{10}, r.Houses)
	assert.True(t, r.Auspicious)
	assert.GreaterOrEqual(t, r.Strength, 85.0)
}

func TestMahapurusha_RequiresKendra(t *testing.T) {
	// Taurus rising puts Capricorn in the 9th
	c := ctxOf(30, map[domain.Planet]float64{domain.Mars: 270})
	assert.Empty(t, detectMahapurusha(c, mahapurushaRules[0]))
}

func TestMahapurusha_MoonPlacement(t *testing.T) {
	// Exalted Jupiter in the 4th; the Moon in Sagittarius puts Jupiter 8th from it
	c := ctxOf(0, map[domain.Planet]float64{domain.Jupiter: 95, domain.Moon: 245})

	found := detectMahapurusha(c, mahapurushaRules[2])
	require.Len(t, found, 1)
	assert.Equal(t, "hamsa", found[0].Name)
	assert.InDelta(t, 91.0, found[0].BaseStrength, 1e-9)
	assert.InDelta(t, 91.0*0.9, found[0].Strength, 1e-9)
	assert.Contains(t, found[0].Factors, "in a dusthana from the Moon")
}

func TestRajaYoga_KendraTrikonaLords(t *testing.T) {
	// Aries rising: Saturn rules the 10th, Jupiter the 9th
	c := ctxOf(0, map[domain.Planet]float64{domain.Saturn: 250, domain.Jupiter: 252})

	raja := detectKendraTrikonaRaja(c)
	require.Len(t, raja, 1)
	assert.ElementsMatch(t, []domain.Planet{domain.Saturn, domain.Jupiter}, raja[0].Planets)
	assert.Contains(t, raja[0].Factors, "lords of houses 10 and 9 in conjunction")

	dk := detectDharmaKarmadhipati(c)
	require.Len(t, dk, 1)
	assert.Greater(t, dk[0].Strength, raja[0].Strength, "dharma karmadhipati carries extra weight")
}

func TestYogakaraka(t *testing.T) {
	// Taurus rising: Saturn rules Capricorn (9th) and Aquarius (10th)
	c := ctxOf(30, map[domain.Planet]float64{domain.Saturn: 300})

	found := detectYogakaraka(c)
	require.Len(t, found, 1)
	assert.Equal(t, []domain.Planet{domain.Saturn}, found[0].Planets)
	assert.Contains(t, found[0].Factors, "Saturn rules houses 10 and 9")

	dk := detectDharmaKarmadhipati(c)
	require.Len(t, dk, 1)
	assert.Contains(t, dk[0].Factors, "Saturn rules both the 9th and the 10th")
}

func TestViparitaRaja_ReducedWeight(t *testing.T) {
	c := ctxOf(0, map[domain.Planet]float64{domain.Mercury: 220, domain.Mars: 160})

	found := detectViparitaRaja(c)
	require.Len(t, found, 1)
	std := c.standardStrength([]domain.Planet{domain.Mercury, domain.Mars})
	assert.InDelta(t, round2(clamp(std.strength*viparitaFactor, minStrength, maxStrength)), found[0].Strength, 1e-9)
}

func TestNeechaBhanga(t *testing.T) {
	// Sun debilitated in Libra; Venus, lord of Libra, in the 1st
	c := ctxOf(0, map[domain.Planet]float64{domain.Sun: 190, domain.Venus: 10})
	found := detectNeechaBhanga(c)
	require.Len(t, found, 1)
	assert.Equal(t, []domain.Planet{domain.Sun}, found[0].Planets)
	assert.Contains(t, found[0].Factors, "lord of the debilitation sign is in a kendra")

	uncancelled := ctxOf(0, map[domain.Planet]float64{domain.Sun: 190, domain.Venus: 40})
	assert.Empty(t, detectNeechaBhanga(uncancelled))
}

func TestChandraKendraRaja(t *testing.T) {
	c := ctxOf(0, map[domain.Planet]float64{
		domain.Moon:    10,
		domain.Jupiter: 100,
		domain.Venus:   190,
		domain.Mercury: 280,
	})
	assert.Len(t, detectChandraKendraRaja(c), 1)

	c = ctxOf(0, map[domain.Planet]float64{domain.Moon: 10, domain.Jupiter: 100, domain.Venus: 190})
	assert.Empty(t, detectChandraKendraRaja(c))
}

func TestDhanaDetectors(t *testing.T) {
	t.Run("wealth lords conjoined", func(t *testing.T) {
		c := ctxOf(0, map[domain.Planet]float64{domain.Sun: 100, domain.Jupiter: 103})
		found := detectDhanaLords(c)
		require.Len(t, found, 1)
		assert.Contains(t, found[0].Factors, "lords of houses 5 and 9 conjoined")
	})

	t.Run("lakshmi", func(t *testing.T) {
		assert.Empty(t, detectLakshmi(ctxOf(0, map[domain.Planet]float64{domain.Venus: 350})))
		assert.Len(t, detectLakshmi(ctxOf(330, map[domain.Planet]float64{domain.Venus: 350})), 1)
	})

	t.Run("second house", func(t *testing.T) {
		c := ctxOf(0, map[domain.Planet]float64{domain.Venus: 40, domain.Mercury: 44})
		found := detectSecondHouseWealth(c)
		require.Len(t, found, 1)
		assert.Equal(t, []int{2}, found[0].Houses)
	})

	t.Run("chandra mangala", func(t *testing.T) {
		assert.Len(t, detectChandraMangala(ctxOf(0, map[domain.Planet]float64{domain.Moon: 100, domain.Mars: 104})), 1)
	})

	t.Run("labha", func(t *testing.T) {
		assert.Len(t, detectLabha(ctxOf(0, map[domain.Planet]float64{domain.Saturn: 280})), 1)
		assert.Empty(t, detectLabha(ctxOf(0, map[domain.Planet]float64{domain.Saturn: 160})))
	})
}

func TestNabhasa_CartIsExclusive(t *testing.T) {
	// Four planets in Aries (1st) and three in Libra (7th)
	c := ctxOf(0, map[domain.Planet]float64{
		domain.Sun:     5,
		domain.Moon:    10,
		domain.Mars:    15,
		domain.Mercury: 20,
		domain.Jupiter: 185,
		domain.Venus:   190,
		domain.Saturn:  195,
	})

	assert.Subset(t, NabhasaMatches(c), []string{"shakata", "rajju", "yuga"})

	found := detectNabhasa(c)
	require.Len(t, found, 1)
	assert.Equal(t, "shakata", found[0].Name)
	assert.Equal(t, []int{1, 7}, found[0].Houses)
}

func TestNabhasa_SingleSignIsGola(t *testing.T) {
	c := ctxOf(0, map[domain.Planet]float64{
		domain.Sun: 2, domain.Moon: 6, domain.Mars: 10, domain.Mercury: 14,
		domain.Jupiter: 18, domain.Venus: 22, domain.Saturn: 26,
	})
	found := detectNabhasa(c)
	require.Len(t, found, 1)
	assert.Equal(t, "gola", found[0].Name)
}

func TestNabhasa_RequiresAllPlanets(t *testing.T) {
	c := ctxOf(0, map[domain.Planet]float64{
		domain.Sun: 5, domain.Moon: 10, domain.Mars: 15, domain.Mercury: 20,
		domain.Jupiter: 185, domain.Venus: 190,
	})
	assert.Empty(t, detectNabhasa(c))
	assert.Empty(t, NabhasaMatches(c))
}

func TestLunarFlanks(t *testing.T) {
	sunapha := ctxOf(0, map[domain.Planet]float64{domain.Moon: 10, domain.Mars: 40})
	assert.Len(t, detectSunapha(sunapha), 1)
	assert.Empty(t, detectAnapha(sunapha))
	assert.Empty(t, detectDurudhara(sunapha))

	both := ctxOf(0, map[domain.Planet]float64{domain.Moon: 10, domain.Mars: 40, domain.Venus: 340})
	assert.Empty(t, detectSunapha(both))
	assert.Empty(t, detectAnapha(both))
	found := detectDurudhara(both)
	require.Len(t, found, 1)
	assert.Equal(t, []domain.Planet{domain.Moon, domain.Venus, domain.Mars}, found[0].Planets)

	// the Sun never counts as a flanker
	sunOnly := ctxOf(0, map[domain.Planet]float64{domain.Moon: 10, domain.Sun: 40})
	assert.Empty(t, detectSunapha(sunOnly))
}

func TestGajaKesari(t *testing.T) {
	assert.Len(t, detectGajaKesari(ctxOf(0, map[domain.Planet]float64{domain.Moon: 10, domain.Jupiter: 100})), 1)
	assert.Empty(t, detectGajaKesari(ctxOf(0, map[domain.Planet]float64{domain.Moon: 10, domain.Jupiter: 130})))
}

func TestGajaKesari_Weakening(t *testing.T) {
	planets := []domain.Planet{domain.Moon, domain.Jupiter}

	// Jupiter debilitated in Capricorn, 7th from the Moon; Moon 300° ahead of the Sun.
	weak := ctxOf(0, map[domain.Planet]float64{domain.Moon: 100, domain.Jupiter: 280, domain.Sun: 160})
	combos := detectGajaKesari(weak)
	require.Len(t, combos, 1)
	expected := weak.standardStrength(planets).strength * gajaKesariDebilitatedJupiter * gajaKesariWaningMoon
	assert.InDelta(t, expected, combos[0].Strength, 0.01)
	assert.Contains(t, combos[0].Factors, "weakened by a debilitated Jupiter")
	assert.Contains(t, combos[0].Factors, "weakened by a waning Moon")

	strong := ctxOf(0, map[domain.Planet]float64{domain.Moon: 100, domain.Jupiter: 190, domain.Sun: 40})
	combos = detectGajaKesari(strong)
	require.Len(t, combos, 1)
	assert.InDelta(t, strong.standardStrength(planets).strength, combos[0].Strength, 0.01)
	assert.NotContains(t, combos[0].Factors, "weakened by a waning Moon")
}

func TestAdhi(t *testing.T) {
	c := ctxOf(0, map[domain.Planet]float64{
		domain.Moon: 10, domain.Mercury: 160, domain.Jupiter: 190, domain.Venus: 220,
	})
	assert.Len(t, detectAdhi(c), 1)

	stray := ctxOf(0, map[domain.Planet]float64{
		domain.Moon: 10, domain.Mercury: 160, domain.Jupiter: 190, domain.Venus: 10,
	})
	assert.Empty(t, detectAdhi(stray))
}

func TestSolarFlanks(t *testing.T) {
	vesi := ctxOf(0, map[domain.Planet]float64{domain.Sun: 10, domain.Mars: 40})
	assert.Len(t, detectVesi(vesi), 1)
	assert.Empty(t, detectVasi(vesi))

	vasi := ctxOf(0, map[domain.Planet]float64{domain.Sun: 10, domain.Saturn: 340})
	assert.Len(t, detectVasi(vasi), 1)

	both := ctxOf(0, map[domain.Planet]float64{domain.Sun: 10, domain.Mars: 40, domain.Saturn: 340})
	assert.Len(t, detectUbhayachari(both), 1)
	assert.Empty(t, detectVesi(both))

	// the Moon is not a solar flanker
	assert.Empty(t, detectVesi(ctxOf(0, map[domain.Planet]float64{domain.Sun: 10, domain.Moon: 40})))
}

func TestGrahan_TightEclipse(t *testing.T) {
	c := ctxOf(0, map[domain.Planet]float64{domain.Sun: 100, domain.Rahu: 102})

	found := detectGrahan(c, domain.Sun, domain.Rahu, "surya_grahan_rahu", "Surya Grahan Dosha (Rahu)")
	require.Len(t, found, 1)
	assert.False(t, found[0].Auspicious)
	assert.Equal(t, CategoryDosha, found[0].Category)
	assert.GreaterOrEqual(t, found[0].Strength, 70.0)

	assert.Empty(t, detectGrahan(c, domain.Sun, domain.Ketu, "surya_grahan_ketu", "Surya Grahan Dosha (Ketu)"))
}

func TestGrahan_JupiterMitigates(t *testing.T) {
	c := ctxOf(0, map[domain.Planet]float64{domain.Sun: 100, domain.Rahu: 102, domain.Jupiter: 280})

	found := detectGrahan(c, domain.Sun, domain.Rahu, "surya_grahan_rahu", "Surya Grahan Dosha (Rahu)")
	require.Len(t, found, 1)
	assert.InDelta(t, 80*jupiterMitigation, found[0].Strength, 1e-9)
	assert.Contains(t, found[0].Factors, "Jupiter's aspect mitigates")
}

func TestNodeConjunctions(t *testing.T) {
	angarak := detectAngarak(ctxOf(0, map[domain.Planet]float64{domain.Mars: 100, domain.Rahu: 105}))
	require.Len(t, angarak, 1)
	assert.InDelta(t, angarakIntensity+closeNodeBonus, angarak[0].Strength, 1e-9)

	shrapit := detectShrapit(ctxOf(0, map[domain.Planet]float64{domain.Saturn: 100, domain.Rahu: 115}))
	require.Len(t, shrapit, 1)
	assert.InDelta(t, shrapitIntensity, shrapit[0].Strength, 1e-9)

	chandal := detectGuruChandal(ctxOf(0, map[domain.Planet]float64{domain.Jupiter: 95, domain.Rahu: 97}))
	require.Len(t, chandal, 1)
	assert.InDelta(t, (guruChandalIntensity+closeNodeBonus)*0.8, chandal[0].Strength, 1e-9)
}

func TestKemadruma(t *testing.T) {
	lons := map[domain.Planet]float64{
		domain.Moon:    130, // Leo, 5th house
		domain.Sun:     135,
		domain.Mars:    190,
		domain.Saturn:  280,
		domain.Jupiter: 250,
		domain.Venus:   70,
		domain.Mercury: 10,
	}
	found := detectKemadruma(ctxOf(0, lons))
	require.Len(t, found, 1)
	assert.InDelta(t, kemadrumaIntensity+10, found[0].Strength, 1e-9)
	assert.Contains(t, found[0].Factors, "the Moon is waning")

	t.Run("planet angular from the Moon", func(t *testing.T) {
		cancelled := copyLons(lons)
		cancelled[domain.Jupiter] = 220
		assert.Empty(t, detectKemadruma(ctxOf(0, cancelled)))
	})

	t.Run("Moon angular from the ascendant", func(t *testing.T) {
		assert.Empty(t, detectKemadruma(ctxOf(30, lons)))
	})
}

func copyLons(in map[domain.Planet]float64) map[domain.Planet]float64 {
	out := make(map[domain.Planet]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func TestDaridra(t *testing.T) {
	found := detectDaridra(ctxOf(0, map[domain.Planet]float64{domain.Saturn: 160}))
	require.Len(t, found, 1)
	assert.InDelta(t, daridraIntensity, found[0].Strength, 1e-9)
	assert.Contains(t, found[0].Factors, "lord of the 11th in house 6")
}

func TestKalaSarpa(t *testing.T) {
	ahead := map[domain.Planet]float64{
		domain.Rahu:    0,
		domain.Sun:     10,
		domain.Moon:    40,
		domain.Mars:    70,
		domain.Mercury: 100,
		domain.Jupiter: 130,
		domain.Venus:   150,
		domain.Saturn:  170,
	}
	found := detectKalaSarpa(ctxOf(0, ahead))
	require.Len(t, found, 1)
	assert.Equal(t, "kala_sarpa", found[0].Name)
	assert.Equal(t, "Anant Kala Sarpa Dosha", found[0].Title)
	assert.InDelta(t, kalaSarpaIntensity, found[0].Strength, 1e-9)
	assert.Contains(t, found[0].Factors, "planets hemmed from Rahu to Ketu")

	t.Run("planet on Ketu counts toward the Rahu side", func(t *testing.T) {
		onKetu := copyLons(ahead)
		onKetu[domain.Saturn] = 180
		assert.Len(t, detectKalaSarpa(ctxOf(0, onKetu)), 1)
	})

	t.Run("one planet across the axis breaks it", func(t *testing.T) {
		broken := copyLons(ahead)
		broken[domain.Saturn] = 200
		assert.Empty(t, detectKalaSarpa(ctxOf(0, broken)))
	})

	behind := map[domain.Planet]float64{
		domain.Rahu:    0,
		domain.Sun:     190,
		domain.Moon:    220,
		domain.Mars:    250,
		domain.Mercury: 280,
		domain.Jupiter: 310,
		domain.Venus:   330,
		domain.Saturn:  350,
	}
	found = detectKalaSarpa(ctxOf(0, behind))
	require.Len(t, found, 1)
	assert.Contains(t, found[0].Factors, "planets hemmed from Ketu to Rahu")

	t.Run("planet on Rahu counts toward the Rahu side", func(t *testing.T) {
		onRahu := copyLons(behind)
		onRahu[domain.Sun] = 0
		assert.Empty(t, detectKalaSarpa(ctxOf(0, onRahu)))
	})
}

func TestKalaSarpaType(t *testing.T) {
	assert.Equal(t, "Anant", KalaSarpaType(1))
	assert.Equal(t, "Takshak", KalaSarpaType(7))
	assert.Equal(t, "Sheshnag", KalaSarpaType(12))
	assert.Empty(t, KalaSarpaType(0))
	assert.Empty(t, KalaSarpaType(13))
}

func TestGandmool(t *testing.T) {
	found := detectGandmool(ctxOf(0, map[domain.Planet]float64{domain.Moon: 5}))
	require.Len(t, found, 1)
	assert.Contains(t, found[0].Factors, "Moon in Ashwini")

	assert.Empty(t, detectGandmool(ctxOf(0, map[domain.Planet]float64{domain.Moon: 20})))
}

func TestDignityMarkers(t *testing.T) {
	found := detectDignityMarkers(ctxOf(0, map[domain.Planet]float64{
		domain.Sun:    10,  // exalted in Aries
		domain.Saturn: 280, // own sign Capricorn
		domain.Moon:   190,
	}))
	assert.Equal(t, []string{"uchcha_sun", "swakshetra_saturn"}, names(found))
	for _, c := range found {
		assert.Equal(t, CategorySpecial, c.Category)
	}
}

func TestBudhaditya_CombustionOverride(t *testing.T) {
	c := ctxOf(0, map[domain.Planet]float64{domain.Sun: 100, domain.Mercury: 106})
	found := detectBudhaditya(c)
	require.Len(t, found, 1)
	assert.Contains(t, found[0].Factors, "combustion tolerated")

	std := c.standardStrength([]domain.Planet{domain.Sun, domain.Mercury})
	assert.Greater(t, found[0].Strength, std.strength)

	deep := detectBudhaditya(ctxOf(0, map[domain.Planet]float64{domain.Sun: 100, domain.Mercury: 102}))
	require.Len(t, deep, 1)
	assert.Contains(t, deep[0].Factors, "Mercury is deeply combust")
}

func TestSpecialDetectors(t *testing.T) {
	t.Run("amala", func(t *testing.T) {
		assert.Len(t, detectAmala(ctxOf(0, map[domain.Planet]float64{domain.Jupiter: 280})), 1)
		assert.Empty(t, detectAmala(ctxOf(0, map[domain.Planet]float64{domain.Jupiter: 280, domain.Saturn: 285})))
	})

	t.Run("saraswati", func(t *testing.T) {
		c := ctxOf(0, map[domain.Planet]float64{domain.Jupiter: 95, domain.Venus: 10, domain.Mercury: 40})
		assert.Len(t, detectSaraswati(c), 1)
	})

	t.Run("shubha kendra and parvata", func(t *testing.T) {
		c := ctxOf(0, map[domain.Planet]float64{domain.Jupiter: 95})
		assert.Len(t, detectShubhaKendra(c), 1)
		assert.Len(t, detectParvata(c), 1)

		spoiled := ctxOf(0, map[domain.Planet]float64{domain.Jupiter: 95, domain.Mars: 160})
		assert.Len(t, detectShubhaKendra(spoiled), 1)
		assert.Empty(t, detectParvata(spoiled), "a malefic in the 6th")
	})

	t.Run("sukha bhagya", func(t *testing.T) {
		assert.Len(t, detectSukhaBhagya(ctxOf(0, map[domain.Planet]float64{domain.Moon: 100, domain.Jupiter: 102})), 1)
	})

	t.Run("pravrajya", func(t *testing.T) {
		c := ctxOf(0, map[domain.Planet]float64{domain.Sun: 10, domain.Moon: 15, domain.Mars: 20, domain.Mercury: 25})
		found := detectPravrajya(c)
		require.Len(t, found, 1)
		assert.Contains(t, found[0].Factors, "4 planets in house 1")
	})

	t.Run("exalted lagnesha aspected by Jupiter", func(t *testing.T) {
		c := ctxOf(0, map[domain.Planet]float64{domain.Mars: 280, domain.Jupiter: 100})
		found := detectExaltedLagneshaAspected(c)
		require.Len(t, found, 1)
		assert.Equal(t, []domain.Planet{domain.Mars, domain.Jupiter}, found[0].Planets)
	})

	t.Run("lagnadhi", func(t *testing.T) {
		assert.Len(t, detectLagnadhi(ctxOf(0, map[domain.Planet]float64{domain.Jupiter: 160, domain.Venus: 190})), 1)
		assert.Empty(t, detectLagnadhi(ctxOf(0, map[domain.Planet]float64{
			domain.Jupiter: 160, domain.Venus: 190, domain.Mars: 220,
		})))
	})
}
