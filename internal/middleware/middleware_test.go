package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"chatapp/internal/metrics"
	"chatapp/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	engine.ServeHTTP(rr, req)
	return rr
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Parallel()

	var seen interface{}
	engine := gin.New()
	engine.Use(RequestIDMiddleware())
	engine.GET("/", func(c *gin.Context) {
		seen = c.Request.Context().Value(logger.RequestIdKey)
		c.Status(http.StatusOK)
	})

	rr := serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := rr.Header().Get(RequestIDHeader)
	require.Len(t, generated, 32)
	require.Equal(t, generated, seen)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rr = serve(engine, req)
	require.Equal(t, "abc", rr.Header().Get(RequestIDHeader))
}

func TestCORSMiddleware(t *testing.T) {
	t.Parallel()

	engine := gin.New()
	engine.Use(CORSMiddleware([]string{"http://allowed.test"}))
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://allowed.test")
	rr := serve(engine, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "http://allowed.test", rr.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
	require.Contains(t, rr.Header().Get("Access-Control-Expose-Headers"), RequestIDHeader)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.test")
	rr = serve(engine, req)
	require.Equal(t, http.StatusForbidden, rr.Code)
	require.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))

	// same-host and non-browser requests carry no Origin
	rr = serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://allowed.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr = serve(engine, req)
	require.Equal(t, http.StatusNoContent, rr.Code)
	require.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestCORSMiddleware_AnyOrigin(t *testing.T) {
	t.Parallel()

	engine := gin.New()
	engine.Use(CORSMiddleware([]string{"*"}))
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://anything.test")
	rr := serve(engine, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "http://anything.test", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestOriginAllowed(t *testing.T) {
	t.Parallel()

	require.True(t, OriginAllowed([]string{"*"}, "http://any.test"))
	require.True(t, OriginAllowed([]string{"http://a.test/"}, "http://a.test"))
	require.False(t, OriginAllowed([]string{"http://a.test"}, "http://b.test"))
	require.True(t, OriginAllowed([]string{"http://a.test"}, ""))
}

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	engine := gin.New()
	engine.Use(ErrorHandler(logger.NewNop()))
	engine.GET("/", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})

	rr := serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.JSONEq(t, `{"status":"error","message":"boom","code":"INTERNAL_ERROR"}`, rr.Body.String())
}

func TestMetricsMiddleware(t *testing.T) {
	t.Parallel()

	requests := metrics.NewRequests("test_requests_total", "test")
	engine := gin.New()
	engine.Use(MetricsMiddleware(requests), LoggingMiddleware(logger.NewNop()))
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))
	serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, float64(2), testutil.ToFloat64(requests.Collector()))
}
