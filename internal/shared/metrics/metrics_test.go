package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newTestMetrics() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry())
}

func TestRecordHTTPRequest(t *testing.T) {
	m := newTestMetrics()

	m.RecordHTTPRequest("GET", "/api/v1/exhibitions", 200, 10*time.Millisecond)
	m.RecordHTTPRequest("GET", "/api/v1/exhibitions", 404, 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/exhibitions", "2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/exhibitions", "4xx")))
}

func TestBusinessCounters(t *testing.T) {
	m := newTestMetrics()

	m.IncExhibitionLike("add")
	m.IncExhibitionLike("add")
	m.IncExhibitionHope("update")
	m.IncExhibitionView()
	m.IncDambyeolag("create")
	m.IncBookmark("delete")
	m.IncOAuthLogin("kakao", "success")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ExhibitionLikesTotal.WithLabelValues("add")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExhibitionHopesTotal.WithLabelValues("update")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExhibitionViewsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DambyeolagsTotal.WithLabelValues("create")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookmarksTotal.WithLabelValues("delete")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OAuthLoginsTotal.WithLabelValues("kakao", "success")))
}

func TestRecordRankingRefresh(t *testing.T) {
	m := newTestMetrics()

	m.RecordRankingRefresh(nil, time.Millisecond)
	m.RecordRankingRefresh(errors.New("boom"), time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RankingRefreshTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RankingRefreshTotal.WithLabelValues("failure")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordHTTPRequest("GET", "/", 200, time.Millisecond)
		m.IncExhibitionLike("add")
		m.RecordRankingRefresh(nil, time.Millisecond)
	})
}

func TestCategorizeStatus(t *testing.T) {
	cases := map[int]string{200: "2xx", 302: "3xx", 409: "4xx", 503: "5xx", 100: "unknown"}
	for code, want := range cases {
		assert.Equal(t, want, categorizeStatus(code), code)
	}
}
