package vparquet

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/segmentio/vparquet/format"
)

// Metrics holds the prometheus collectors updated by page and column readers.
type Metrics struct {
	pagesRead     *prometheus.CounterVec
	valuesDecoded *prometheus.CounterVec
	pageBytesRead *prometheus.CounterVec
}

// NewMetrics constructs a set of reader metrics registered with reg. When reg
// is nil the collectors are not registered.
//
// Collectors that were already registered with reg are reused, which allows
// many readers to be configured with the same registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		pagesRead: registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vparquet",
			Name:      "pages_read_total",
			Help:      "Total number of pages read, by page encoding.",
		}, []string{"encoding"})),
		valuesDecoded: registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vparquet",
			Name:      "values_decoded_total",
			Help:      "Total number of values decoded into vectors, by physical type.",
		}, []string{"type"})),
		pageBytesRead: registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vparquet",
			Name:      "page_bytes_read_total",
			Help:      "Total number of uncompressed page bytes read, by compression codec.",
		}, []string{"codec"})),
	}
}

var defaultMetrics = sync.OnceValue(func() *Metrics { return NewMetrics(nil) })

func metricsOf(config *ReaderConfig) *Metrics {
	if config.Registerer == nil {
		return defaultMetrics()
	}
	return NewMetrics(config.Registerer)
}

func registerCounterVec(reg prometheus.Registerer, c *prometheus.CounterVec) *prometheus.CounterVec {
	if reg == nil {
		return c
	}
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

func (m *Metrics) observePage(encoding format.Encoding, codec format.CompressionCodec, size int) {
	m.pagesRead.WithLabelValues(encoding.String()).Inc()
	m.pageBytesRead.WithLabelValues(codec.String()).Add(float64(size))
}

func (m *Metrics) observeValues(typ format.Type, n int) {
	if n > 0 {
		m.valuesDecoded.WithLabelValues(typ.String()).Add(float64(n))
	}
}
