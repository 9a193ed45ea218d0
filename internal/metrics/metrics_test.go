package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.PassesTotal.WithLabelValues("ok").Inc()
	m.BucketsEmitted.Add(3)
	m.Registrations.WithLabelValues("auto").Inc()
	m.PassDuration.Observe(0.5)

	families, err := reg.Gather()
	require.NoError(t, err)

	values := make(map[string]float64, len(families))
	for _, f := range families {
		for _, metric := range f.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				values[f.GetName()] += metric.GetCounter().GetValue()
			case metric.GetHistogram() != nil:
				values[f.GetName()] += float64(metric.GetHistogram().GetSampleCount())
			}
		}
	}

	assert.Equal(t, float64(3), values["brewlog_aggregation_buckets_emitted_total"])
	assert.Equal(t, float64(1), values["brewlog_aggregation_passes_total"])
	assert.Equal(t, float64(1), values["brewlog_aggregation_pass_duration_seconds"])
	assert.Equal(t, float64(1), values["brewlog_ingest_registrations_total"])
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
