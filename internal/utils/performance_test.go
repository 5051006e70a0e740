package utils

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestTimer_StopWithContext(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	timer := NewTimer("analyze_chart", log)
	d := timer.StopWithContext(map[string]interface{}{
		"chart_id": "abc",
		"yogas":    3,
	})

	assert.GreaterOrEqual(t, d, time.Duration(0))
	out := buf.String()
	assert.Contains(t, out, `"operation":"analyze_chart"`)
	assert.Contains(t, out, `"chart_id":"abc"`)
	assert.Contains(t, out, `"yogas":3`)
}

func TestTimer_Disabled(t *testing.T) {
	var buf bytes.Buffer
	timer := NewTimer("noop", zerolog.New(&buf))
	timer.Disable()

	assert.Equal(t, time.Duration(0), timer.Stop())
	assert.Empty(t, buf.String())
}

func TestOperationTimer(t *testing.T) {
	var buf bytes.Buffer
	done := OperationTimer("batch", zerolog.New(&buf).Level(zerolog.DebugLevel))
	done()

	assert.Contains(t, buf.String(), "Operation completed")
}

func TestPerformanceMetrics(t *testing.T) {
	pm := NewPerformanceMetrics("chart")
	assert.Equal(t, time.Duration(0), pm.AvgDuration())

	var wg sync.WaitGroup
	for _, d := range []time.Duration{10, 30, 20} {
		wg.Add(1)
		go func(d time.Duration) {
			defer wg.Done()
			pm.Record(d * time.Millisecond)
		}(d)
	}
	wg.Wait()

	assert.Equal(t, int64(3), pm.CallCount)
	assert.Equal(t, 10*time.Millisecond, pm.MinDuration)
	assert.Equal(t, 30*time.Millisecond, pm.MaxDuration)
	assert.Equal(t, 20*time.Millisecond, pm.AvgDuration())

	var buf bytes.Buffer
	pm.LogMetrics(zerolog.New(&buf))
	assert.Contains(t, buf.String(), `"call_count":3`)
}
