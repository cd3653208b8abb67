package vparquet_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmentio/vparquet"
	"github.com/segmentio/vparquet/format"
	"github.com/segmentio/vparquet/vector"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	pages, want := int32Pages(int32Range(0, 10), int32Range(10, 25))

	// Two readers sharing the same registerer update the same collectors.
	for i := 0; i < 2; i++ {
		reader := newColumnReader(t, writePages(t, &vparquet.Snappy, pages), format.Snappy, format.Int32, 0,
			vparquet.Registerer(reg),
		)
		v := vector.NewInt32Vector(len(want))
		_, err := reader.ReadValues(v, 0, len(want))
		require.NoError(t, err)
	}

	expected := `
# HELP vparquet_pages_read_total Total number of pages read, by page encoding.
# TYPE vparquet_pages_read_total counter
vparquet_pages_read_total{encoding="PLAIN"} 4
# HELP vparquet_page_bytes_read_total Total number of uncompressed page bytes read, by compression codec.
# TYPE vparquet_page_bytes_read_total counter
vparquet_page_bytes_read_total{codec="SNAPPY"} 200
# HELP vparquet_values_decoded_total Total number of values decoded into vectors, by physical type.
# TYPE vparquet_values_decoded_total counter
vparquet_values_decoded_total{type="INT32"} 50
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"vparquet_pages_read_total",
		"vparquet_page_bytes_read_total",
		"vparquet_values_decoded_total",
	))
}

func TestNewMetricsUnregistered(t *testing.T) {
	assert.NotPanics(t, func() {
		vparquet.NewMetrics(nil)
		vparquet.NewMetrics(nil)
	})
}
