// Package metrics содержит метрики Prometheus для поиска, кеша и отметок
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Имена метрик
const (
	MetricSearchDuration  = "nearby_search_duration_seconds"
	MetricSearchResults   = "nearby_search_results"
	MetricCacheLookups    = "nearby_search_cache_lookups_total"
	MetricCheckinAttempts = "checkin_attempts_total"
)

// Виды поиска
const (
	KindPlaces = "places"
	KindUsers  = "users"
)

// Результаты обращения к кешу
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheStale = "stale"
	CacheError = "error"
)

// Исходы попытки отметиться
const (
	CheckinAccepted = "accepted"
	CheckinRejected = "rejected"
	CheckinFailed   = "error"
)

// Metrics - коллекторы Prometheus сервиса.
// Нулевой *Metrics допустим и ничего не записывает.
type Metrics struct {
	searchDuration  *prometheus.HistogramVec
	searchResults   *prometheus.HistogramVec
	cacheLookups    *prometheus.CounterVec
	checkinAttempts *prometheus.CounterVec
}

// NewMetrics создает коллекторы; регистрация выполняется отдельно через Register
func NewMetrics() *Metrics {
	return &Metrics{
		searchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricSearchDuration,
				Help:    "Histogram of uncached nearby search duration in seconds by kind",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
			},
			[]string{"kind"},
		),
		searchResults: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricSearchResults,
				Help:    "Number of results returned by nearby search by kind",
				Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
			},
			[]string{"kind"},
		),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricCacheLookups,
				Help: "Total number of nearby search cache lookups by result",
			},
			[]string{"result"},
		),
		checkinAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricCheckinAttempts,
				Help: "Total number of check-in attempts by outcome",
			},
			[]string{"outcome"},
		),
	}
}

// Register регистрирует все метрики в реестре
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.searchDuration,
		m.searchResults,
		m.cacheLookups,
		m.checkinAttempts,
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObserveSearch записывает длительность и число результатов поиска мимо кеша
func (m *Metrics) ObserveSearch(kind string, took time.Duration, results int) {
	if m == nil {
		return
	}
	m.searchDuration.WithLabelValues(kind).Observe(took.Seconds())
	m.searchResults.WithLabelValues(kind).Observe(float64(results))
}

// IncCacheLookup увеличивает счетчик обращений к кешу
func (m *Metrics) IncCacheLookup(result string) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// IncCheckin увеличивает счетчик попыток отметиться
func (m *Metrics) IncCheckin(outcome string) {
	if m == nil {
		return
	}
	m.checkinAttempts.WithLabelValues(outcome).Inc()
}
