package metrics

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "artfriendly"

// Metrics holds all application metrics.
// Every recording method is safe on a nil receiver so services can run without metrics in tests.
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	ExhibitionLikesTotal   *prometheus.CounterVec
	ExhibitionHopesTotal   *prometheus.CounterVec
	ExhibitionViewsTotal   prometheus.Counter
	DambyeolagsTotal       *prometheus.CounterVec
	BookmarksTotal         *prometheus.CounterVec
	OAuthLoginsTotal       *prometheus.CounterVec
	RankingRefreshTotal    *prometheus.CounterVec
	RankingRefreshDuration prometheus.Histogram
}

// New creates and registers all metrics with the default registry
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates and registers all metrics with a custom registry
func NewWithRegistry(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "endpoint"},
		),
		ExhibitionLikesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "exhibition_likes_total",
				Help:      "Total number of exhibition like changes",
			},
			[]string{"action"},
		),
		ExhibitionHopesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "exhibition_hopes_total",
				Help:      "Total number of exhibition hope changes",
			},
			[]string{"action"},
		),
		ExhibitionViewsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "exhibition_views_total",
				Help:      "Total number of first-time exhibition views",
			},
		),
		DambyeolagsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dambyeolags_total",
				Help:      "Total number of wall post changes",
			},
			[]string{"action"},
		),
		BookmarksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dambyeolag_bookmarks_total",
				Help:      "Total number of wall bookmark changes",
			},
			[]string{"action"},
		),
		OAuthLoginsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "oauth_logins_total",
				Help:      "Total number of OAuth login callbacks",
			},
			[]string{"provider", "result"},
		),
		RankingRefreshTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ranking_refresh_total",
				Help:      "Total number of popular ranking refreshes",
			},
			[]string{"status"},
		),
		RankingRefreshDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "ranking_refresh_duration_seconds",
				Help:      "Popular ranking refresh duration in seconds",
				Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5},
			},
		),
	}
}

// safeExecute wraps metric operations with panic recovery
func (m *Metrics) safeExecute(operation string, fn func()) {
	if m == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Panic in metrics operation", "operation", operation, "panic", r)
		}
	}()
	fn()
}

// RecordHTTPRequest records HTTP request metrics
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	m.safeExecute("RecordHTTPRequest", func() {
		m.HTTPRequestsTotal.WithLabelValues(method, endpoint, categorizeStatus(statusCode)).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	})
}

func (m *Metrics) IncExhibitionLike(action string) {
	m.safeExecute("IncExhibitionLike", func() {
		m.ExhibitionLikesTotal.WithLabelValues(action).Inc()
	})
}

func (m *Metrics) IncExhibitionHope(action string) {
	m.safeExecute("IncExhibitionHope", func() {
		m.ExhibitionHopesTotal.WithLabelValues(action).Inc()
	})
}

func (m *Metrics) IncExhibitionView() {
	m.safeExecute("IncExhibitionView", func() {
		m.ExhibitionViewsTotal.Inc()
	})
}

func (m *Metrics) IncDambyeolag(action string) {
	m.safeExecute("IncDambyeolag", func() {
		m.DambyeolagsTotal.WithLabelValues(action).Inc()
	})
}

func (m *Metrics) IncBookmark(action string) {
	m.safeExecute("IncBookmark", func() {
		m.BookmarksTotal.WithLabelValues(action).Inc()
	})
}

func (m *Metrics) IncOAuthLogin(provider, result string) {
	m.safeExecute("IncOAuthLogin", func() {
		m.OAuthLoginsTotal.WithLabelValues(provider, result).Inc()
	})
}

// RecordRankingRefresh records the outcome of one popular ranking refresh
func (m *Metrics) RecordRankingRefresh(err error, duration time.Duration) {
	m.safeExecute("RecordRankingRefresh", func() {
		status := "success"
		if err != nil {
			status = "failure"
		}
		m.RankingRefreshTotal.WithLabelValues(status).Inc()
		m.RankingRefreshDuration.Observe(duration.Seconds())
	})
}

// categorizeStatus converts status code to category (2xx, 3xx, 4xx, 5xx)
func categorizeStatus(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}

// ShouldSkipEndpoint checks if endpoint should be excluded from metrics
func ShouldSkipEndpoint(path string) bool {
	return path == "/metrics" || path == "/health"
}
