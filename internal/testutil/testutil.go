// Package testutil provides a fake caption server for tests.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gorilla/websocket"
)

// CaptionServer serves /ws and hands each connection to handler along
// with its 1-based connection number. The connection is closed when
// handler returns.
func CaptionServer(t *testing.T, handler func(n int, conn *websocket.Conn)) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	var count atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ws" {
			http.NotFound(w, r)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Logf("upgrade error: %v", err)
			return
		}
		defer conn.Close()
		handler(int(count.Add(1)), conn)
	}))
	t.Cleanup(server.Close)
	return server
}

// Host returns the server's host:port.
func Host(server *httptest.Server) string {
	return strings.TrimPrefix(server.URL, "http://")
}

// WSURL returns the websocket URL of the server's /ws endpoint.
func WSURL(server *httptest.Server) string {
	return "ws://" + Host(server) + "/ws"
}

// SendFrames writes each frame as a text message and stops at the first
// write error.
func SendFrames(conn *websocket.Conn, frames ...string) error {
	for _, f := range frames {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(f)); err != nil {
			return err
		}
	}
	return nil
}

// CloseNormal sends a close frame so the client sees a clean shutdown.
func CloseNormal(conn *websocket.Conn) {
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// HoldOpen blocks until the client goes away.
func HoldOpen(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
