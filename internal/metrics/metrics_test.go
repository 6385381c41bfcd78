package metrics

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chatapp/pkg/logger"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRequests_Inc(t *testing.T) {
	r := NewRequests("app_requests_total", "Total HTTP requests")

	require.Equal(t, float64(0), testutil.ToFloat64(r.Collector()))
	r.Inc()
	r.Inc()
	require.Equal(t, float64(2), testutil.ToFloat64(r.Collector()))
}

func TestRequests_Handler(t *testing.T) {
	r := NewRequests("http_requests_total", "Total HTTP Requests")
	r.Inc()

	rr := httptest.NewRecorder()
	r.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "http_requests_total 1")
}

func TestServer_PortInUseIsNotFatal(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	r := NewRequests("x_total", "x")
	s := NewServer(port, r, logger.NewNop())
	s.Start()
	require.NoError(t, s.Shutdown(context.Background()))
	require.True(t, strings.HasSuffix(s.httpServer.Addr, port))
}
