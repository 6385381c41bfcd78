package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"chatapp/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func startRelay(t *testing.T, origins []string) (string, *Hub) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	wsLogger := NewLogger(logger.NewNop())
	hub := NewHub(wsLogger, nil)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	h := NewHandler(hub, origins, wsLogger)
	engine := gin.New()
	engine.GET("/ws", h.Connect)
	engine.GET("/health", h.Health)
	srv := httptest.NewServer(engine)

	t.Cleanup(func() {
		srv.Close()
		cancel()
		<-hub.Done()
	})
	return srv.URL, hub
}

func dial(t *testing.T, baseURL string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(baseURL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	var ev Event
	require.NoError(t, conn.ReadJSON(&ev))
	return ev
}

func readConnect(t *testing.T, conn *websocket.Conn) string {
	t.Helper()
	ev := readEvent(t, conn)
	require.Equal(t, EventConnect, ev.Name)
	return dataString(t, ev)
}

func TestRelay_EndToEnd(t *testing.T) {
	baseURL, hub := startRelay(t, []string{"*"})

	a := dial(t, baseURL)
	sidA := readConnect(t, a)
	require.NotEmpty(t, sidA)

	b := dial(t, baseURL)
	sidB := readConnect(t, b)
	require.NotEqual(t, sidA, sidB)
	require.Equal(t, sidB, readConnect(t, a))
	require.Equal(t, 2, hub.SessionCount())

	// B -> A, sender excluded
	p := `{"text":"hello","user":"b"}`
	require.NoError(t, b.WriteMessage(websocket.TextMessage, []byte(`{"event":"new_message","data":`+p+`}`)))
	ev := readEvent(t, a)
	require.Equal(t, EventNewMessage, ev.Name)
	require.JSONEq(t, p, string(ev.Data))

	// A -> B; the first thing B sees is A's message, not its own echo
	q := `["from","a"]`
	require.NoError(t, a.WriteMessage(websocket.TextMessage, []byte(`{"event":"new_message","data":`+q+`}`)))
	ev = readEvent(t, b)
	require.Equal(t, EventNewMessage, ev.Name)
	require.JSONEq(t, q, string(ev.Data))

	// B leaves; A is told
	require.NoError(t, b.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	ev = readEvent(t, a)
	require.Equal(t, EventDisconnect, ev.Name)
	require.Equal(t, "user "+sidB+" disconnected", dataString(t, ev))

	require.Eventually(t, func() bool { return hub.SessionCount() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestRelay_IgnoresMalformedAndUnknownFrames(t *testing.T) {
	baseURL, _ := startRelay(t, []string{"*"})

	a := dial(t, baseURL)
	readConnect(t, a)
	b := dial(t, baseURL)
	readConnect(t, b)
	readConnect(t, a)

	require.NoError(t, a.WriteMessage(websocket.TextMessage, []byte(`not json`)))
	require.NoError(t, a.WriteMessage(websocket.TextMessage, []byte(`{"event":"typing","data":1}`)))
	require.NoError(t, a.WriteMessage(websocket.TextMessage, []byte(`{"event":"new_message","data":42}`)))

	ev := readEvent(t, b)
	require.Equal(t, EventNewMessage, ev.Name)
	require.Equal(t, "42", string(ev.Data))
}

func TestRelay_RejectsDisallowedOrigin(t *testing.T) {
	baseURL, hub := startRelay(t, []string{"http://allowed.test"})
	url := "ws" + strings.TrimPrefix(baseURL, "http") + "/ws"

	header := http.Header{}
	header.Set("Origin", "http://evil.test")
	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Zero(t, hub.SessionCount())

	header.Set("Origin", "http://allowed.test")
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	defer conn.Close()
	readConnect(t, conn)
}

func TestRelay_Health(t *testing.T) {
	baseURL, _ := startRelay(t, []string{"*"})
	a := dial(t, baseURL)
	readConnect(t, a)

	resp, err := http.Get(baseURL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status string `json:"status"`
		Data   struct {
			Sessions int `json:"sessions"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "ok", body.Status)
	require.Equal(t, 1, body.Data.Sessions)
}
