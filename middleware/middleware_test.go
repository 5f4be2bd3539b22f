package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"k8s-hello/logger"
	"k8s-hello/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(LoggingMiddleware(), MetricsMiddleware(), RecoveryMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"pong": true}) })
	r.GET("/boom", func(c *gin.Context) { panic("boom") })
	return r
}

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	prev := logger.Logger
	logger.Logger = zap.New(core)
	t.Cleanup(func() { logger.Logger = prev })
	return logs
}

func TestLoggingMiddleware(t *testing.T) {
	logs := observeLogs(t)

	w := httptest.NewRecorder()
	newEngine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping?x=1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	entries := logs.FilterMessage("HTTP request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/ping", fields["path"])
	assert.Equal(t, int64(200), fields["status"])
	assert.Equal(t, "x=1", fields["query"])
}

func TestMetricsMiddleware(t *testing.T) {
	observeLogs(t)
	r := newEngine()

	t.Run("matched route", func(t *testing.T) {
		counter := metrics.RequestsTotal.WithLabelValues("/ping", "GET", "200")
		before := testutil.ToFloat64(counter)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, before+1, testutil.ToFloat64(counter))
	})

	t.Run("unmatched route uses fixed label", func(t *testing.T) {
		counter := metrics.RequestsTotal.WithLabelValues(metrics.UnmatchedRoute, "GET", "404")
		before := testutil.ToFloat64(counter)

		for _, p := range []string{"/a", "/b", "/c"} {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, p, nil))
		}

		assert.Equal(t, before+3, testutil.ToFloat64(counter))
	})
}

func TestRecoveryMiddleware(t *testing.T) {
	logs := observeLogs(t)

	counter := metrics.RequestsTotal.WithLabelValues("/boom", "GET", "500")
	before := testutil.ToFloat64(counter)

	w := httptest.NewRecorder()
	newEngine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"Internal Server Error"}`, w.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("handler panic").Len())
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
