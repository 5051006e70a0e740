package analysis

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/jyotish/internal/config"
	"github.com/aristath/jyotish/internal/domain"
	"github.com/aristath/jyotish/internal/drishti"
	"github.com/aristath/jyotish/internal/utils"
	"github.com/aristath/jyotish/internal/yoga"
)

// Report is the full analysis of one chart in a batch.
type Report struct {
	Index   int            `json:"index" msgpack:"index"`
	ChartID string         `json:"chart_id" msgpack:"chart_id"`
	Aspects drishti.Matrix `json:"aspects" msgpack:"aspects"`
	Yogas   yoga.Analysis  `json:"yogas" msgpack:"yogas"`
	// Warning is set when the chart failed validation; the analysis still
	// runs and degrades to whatever the chart supports.
	Warning string `json:"warning,omitempty" msgpack:"warning,omitempty"`
}

// BatchAnalyzer analyses independent charts on a fixed pool of workers.
type BatchAnalyzer struct {
	service    *Service
	numWorkers int
	log        zerolog.Logger
}

// NewBatchAnalyzer creates a batch analyzer over service.
// A non-positive worker count falls back to config.DefaultWorkers.
func NewBatchAnalyzer(service *Service, numWorkers int, log zerolog.Logger) *BatchAnalyzer {
	if numWorkers <= 0 {
		numWorkers = config.DefaultWorkers
	}
	return &BatchAnalyzer{
		service:    service,
		numWorkers: numWorkers,
		log:        log.With().Str("component", "batch_analyzer").Logger(),
	}
}

// Workers returns the pool size.
func (b *BatchAnalyzer) Workers() int {
	return b.numWorkers
}

// AnalyzeBatch analyses every chart in parallel. Results are returned in
// the same order as the input charts.
func (b *BatchAnalyzer) AnalyzeBatch(charts []domain.Chart) []Report {
	numCharts := len(charts)
	if numCharts == 0 {
		return []Report{}
	}

	jobs := make(chan jobItem, numCharts)
	results := make(chan Report, numCharts)
	metrics := utils.NewPerformanceMetrics("batch_chart")

	var wg sync.WaitGroup
	numActualWorkers := b.numWorkers
	if numCharts < numActualWorkers {
		numActualWorkers = numCharts // Don't spawn more workers than charts
	}

	for i := 0; i < numActualWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.worker(jobs, results, metrics)
		}()
	}

	for idx, chart := range charts {
		jobs <- jobItem{index: idx, chart: chart}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	reports := make([]Report, numCharts)
	for report := range results {
		reports[report.Index] = report
	}

	b.log.Info().
		Int("charts", numCharts).
		Int("workers", numActualWorkers).
		Msg("Batch analysis complete")
	metrics.LogMetrics(b.log)

	return reports
}

// jobItem represents a single chart job
type jobItem struct {
	index int
	chart domain.Chart
}

func (b *BatchAnalyzer) worker(jobs <-chan jobItem, results chan<- Report, metrics *utils.PerformanceMetrics) {
	for job := range jobs {
		start := time.Now()
		report := b.analyze(job)
		metrics.Record(time.Since(start))
		results <- report
	}
}

func (b *BatchAnalyzer) analyze(job jobItem) Report {
	report := Report{
		Index:   job.index,
		Aspects: b.service.ComputeAspectMatrix(job.chart),
		Yogas:   b.service.ComputeYogaAnalysis(job.chart),
	}
	report.ChartID = report.Yogas.ChartID

	if err := job.chart.Validate(); err != nil {
		report.Warning = err.Error()
		b.log.Warn().
			Int("index", job.index).
			Str("chart_id", report.ChartID).
			Err(err).
			Msg("Chart failed validation")
	}
	return report
}
