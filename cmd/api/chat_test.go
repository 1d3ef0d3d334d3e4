package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func dialChat(t *testing.T, ts *httptest.Server, clientID string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/chat/" + clientID
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	return conn
}

func TestChatEchoesTextFrames(t *testing.T) {
	app := newTestApplication(t)
	ts := httptest.NewServer(app.routes())
	defer ts.Close()

	conn := dialChat(t, ts, "abc")
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("hi")))

	messageType, message, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, websocket.TextMessage, messageType)
	require.Equal(t, "Client abc received hi", string(message))

	// Each frame gets exactly one echo; a second exchange works the same way.
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("again")))

	_, message, err = conn.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, "Client abc received again", string(message))
}

func TestChatConnectionsAreIsolated(t *testing.T) {
	app := newTestApplication(t)
	ts := httptest.NewServer(app.routes())
	defer ts.Close()

	first := dialChat(t, ts, "abc")
	defer first.Close()
	second := dialChat(t, ts, "xyz")
	defer second.Close()

	require.NoError(t, second.WriteMessage(websocket.TextMessage, []byte("hello")))

	_, message, err := second.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, "Client xyz received hello", string(message))
}

func TestChatDisconnectLeavesServerHealthy(t *testing.T) {
	app := newTestApplication(t)
	ts := httptest.NewServer(app.routes())
	defer ts.Close()

	conn := dialChat(t, ts, "abc")
	require.NoError(t, conn.Close())

	// The server keeps answering plain HTTP after the peer disconnects.
	status, _ := doRequest(t, ts, http.MethodGet, "/mylib/books/", "")
	require.Equal(t, http.StatusOK, status)
}
