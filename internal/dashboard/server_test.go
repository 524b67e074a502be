package dashboard

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/huangsam/treehealth/core"
	"github.com/huangsam/treehealth/internal/observability"
	"github.com/huangsam/treehealth/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer(t *testing.T, ttl time.Duration) *Server {
	t.Helper()
	snap, err := core.NewSnapshot([]schema.RawCandidate{
		schema.NewCandidate("oak", 1, schema.PoorHealth, schema.StewardNone, 10),
		schema.NewCandidate("oak", 1, schema.FairHealth, schema.StewardNone, 20),
		schema.NewCandidate("oak", 1, schema.GoodHealth, schema.StewardNone, 70),
		schema.NewCandidate("american beech", 3, schema.GoodHealth, schema.StewardOneTwo, 8),
		schema.NewCandidate("american beech", 3, schema.PoorHealth, schema.StewardOneTwo, 2),
	}, "test census", time.Now(), schema.DefaultSpecies)
	require.NoError(t, err)

	s, err := NewServer(snap, Options{ChartCacheTTL: ttl, Metrics: observability.NewMetrics()})
	require.NoError(t, err)
	return s
}

func doGet(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeChart(t *testing.T, rec *httptest.ResponseRecorder) schema.ChartSpec {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code)
	var chart schema.ChartSpec
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &chart))
	return chart
}

func TestHandleIndex(t *testing.T) {
	rec := doGet(t, newTestServer(t, time.Minute), "/")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Question 1")
	assert.Contains(t, body, "Question 2")
	assert.Contains(t, body, "Choose a Tree Species")
	assert.Contains(t, body, `<option value="American Beech" selected>American Beech</option>`)
	assert.Contains(t, body, `<option value="Oak">Oak</option>`)
	assert.Contains(t, body, "#3da118")
}

func TestHandleSpecies(t *testing.T) {
	rec := doGet(t, newTestServer(t, time.Minute), "/api/species")
	require.Equal(t, http.StatusOK, rec.Code)

	var list schema.SpeciesList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, []string{"American Beech", "Oak"}, list.Species)
	assert.Equal(t, "American Beech", list.Default)
}

func TestHandleProportionChart(t *testing.T) {
	s := newTestServer(t, time.Minute)

	chart := decodeChart(t, doGet(t, s, "/api/charts/proportions?species=Oak"))
	require.Len(t, chart.Data, 1)
	assert.Equal(t, "Manhattan", chart.Data[0].Name)
	assert.Equal(t, []any{"Poor", "Fair", "Good"}, chart.Data[0].X)
	assert.InDelta(t, 0.7, chart.Data[0].Y[2], 1e-9)
}

func TestHandleStewardChartDefaultSpecies(t *testing.T) {
	s := newTestServer(t, time.Minute)

	chart := decodeChart(t, doGet(t, s, "/api/charts/steward"))
	require.Len(t, chart.Data, 1)
	assert.Equal(t, "Brooklyn", chart.Data[0].Name)
	// (8*3 + 2*1) / 10
	assert.InDelta(t, 2.6, chart.Data[0].Y[0], 1e-9)
}

func TestHandleChartUnknownSpecies(t *testing.T) {
	s := newTestServer(t, time.Minute)

	for _, route := range []string{"/api/charts/proportions", "/api/charts/steward"} {
		chart := decodeChart(t, doGet(t, s, route+"?species=Sweetgum"))
		assert.Empty(t, chart.Data, route)
	}
}

func TestChartCache(t *testing.T) {
	s := newTestServer(t, time.Minute)

	first := decodeChart(t, doGet(t, s, "/api/charts/proportions?species=Oak"))
	second := decodeChart(t, doGet(t, s, "/api/charts/proportions?species=Oak"))
	assert.Equal(t, first, second)
	assert.Equal(t, 1, s.charts.size())

	doGet(t, s, "/api/charts/steward?species=Oak")
	assert.Equal(t, 2, s.charts.size())

	s.charts.flush()
	assert.Equal(t, 0, s.charts.size())
}

func TestChartCacheSkipsUnknownSpecies(t *testing.T) {
	s := newTestServer(t, time.Hour)

	for i := range 100 {
		for _, route := range []string{"/api/charts/proportions", "/api/charts/steward"} {
			chart := decodeChart(t, doGet(t, s, fmt.Sprintf("%s?species=bogus%d", route, i)))
			assert.Empty(t, chart.Data)
		}
	}
	assert.Equal(t, 0, s.charts.size())

	decodeChart(t, doGet(t, s, "/api/charts/steward?species=Oak"))
	assert.Equal(t, 1, s.charts.size())
}

func TestChartCacheDisabled(t *testing.T) {
	s := newTestServer(t, 0)
	decodeChart(t, doGet(t, s, "/api/charts/proportions?species=Oak"))
	assert.Equal(t, 0, s.charts.size())
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "steward:American Beech", cacheKey("steward", "American Beech"))
	assert.Equal(t, "proportions:Oak:1", cacheKey("proportions", "Oak", 1))
	assert.Equal(t, "summary", cacheKey("summary"))
}

func TestHandleSummaryAndHealthz(t *testing.T) {
	s := newTestServer(t, time.Minute)

	rec := doGet(t, s, "/api/summary")
	require.Equal(t, http.StatusOK, rec.Code)
	var summary schema.SnapshotSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, "test census", summary.Source)
	assert.Equal(t, 5, summary.KeptRows)

	rec = doGet(t, s, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","species":2}`, rec.Body.String())
}

func TestHandleMetrics(t *testing.T) {
	s := newTestServer(t, time.Minute)
	doGet(t, s, "/api/charts/proportions?species=Oak")

	rec := doGet(t, s, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `treehealth_http_requests_total{route="/api/charts/proportions",status="200"} 1`)
	assert.Contains(t, body, "treehealth_chart_cache_misses_total 1")
	assert.Contains(t, body, `treehealth_snapshot_rows{kind="kept"} 5`)
}

func TestRequestIDHeader(t *testing.T) {
	s := newTestServer(t, time.Minute)

	rec := doGet(t, s, "/healthz")
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err)

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, id)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))
}

func TestCompressedResponse(t *testing.T) {
	s := newTestServer(t, time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/api/species", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(body), "American Beech")
}
