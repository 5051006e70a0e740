package analysis

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/jyotish/internal/config"
	"github.com/aristath/jyotish/internal/domain"
)

func batchCharts(n int) []domain.Chart {
	charts := make([]domain.Chart, n)
	for i := range charts {
		offset := float64(i * 17)
		charts[i] = domain.NewChart(offset, map[domain.Planet]float64{
			domain.Sun:     offset + 10,
			domain.Moon:    offset + 95,
			domain.Mars:    offset + 200,
			domain.Mercury: offset + 20,
			domain.Jupiter: offset + 130,
			domain.Venus:   offset + 40,
			domain.Saturn:  offset + 300,
			domain.Rahu:    offset + 75,
		})
	}
	return charts
}

func TestBatchAnalyzer_PreservesOrder(t *testing.T) {
	s := newTestService(t, nil)
	charts := batchCharts(25)

	reports := NewBatchAnalyzer(s, 3, zerolog.Nop()).AnalyzeBatch(charts)
	require.Len(t, reports, len(charts))

	for i, r := range reports {
		assert.Equal(t, i, r.Index)
		assert.Empty(t, r.Warning)

		id, err := charts[i].Fingerprint()
		require.NoError(t, err)
		assert.Equal(t, id.String(), r.ChartID)
		assert.Equal(t, r.ChartID, r.Yogas.ChartID)

		assert.Equal(t, s.ComputeYogaAnalysis(charts[i]), r.Yogas)
		assert.Equal(t, s.ComputeAspectMatrix(charts[i]), r.Aspects)
	}
}

func TestBatchAnalyzer_Empty(t *testing.T) {
	reports := NewBatchAnalyzer(newTestService(t, nil), 2, zerolog.Nop()).AnalyzeBatch(nil)
	assert.NotNil(t, reports)
	assert.Empty(t, reports)
}

func TestBatchAnalyzer_DefaultWorkers(t *testing.T) {
	b := NewBatchAnalyzer(newTestService(t, nil), 0, zerolog.Nop())
	assert.Equal(t, config.DefaultWorkers, b.Workers())
}

func TestBatchAnalyzer_InvalidChartStillReported(t *testing.T) {
	charts := []domain.Chart{batchCharts(1)[0], {}}

	reports := NewBatchAnalyzer(newTestService(t, nil), 4, zerolog.Nop()).AnalyzeBatch(charts)
	require.Len(t, reports, 2)
	assert.Empty(t, reports[0].Warning)
	assert.Contains(t, reports[1].Warning, domain.ErrEmptyChart.Error())
	assert.Empty(t, reports[1].Yogas.Combinations)
}
