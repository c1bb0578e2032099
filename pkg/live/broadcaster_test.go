package live_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dylanagreen/chrysaora/pkg/live"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcasterPublishesToConnectedSpectator(t *testing.T) {
	b := live.NewBroadcaster()
	srv := httptest.NewServer(b)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	time.Sleep(50 * time.Millisecond) // let the server register the client
	b.Publish(live.Update{FEN: "startpos", Move: "e2e4"})

	var u live.Update
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&u))
	assert.Equal(t, "startpos", u.FEN)
	assert.Equal(t, "e2e4", u.Move)
}

func TestBroadcasterSendsLastSeenOnConnect(t *testing.T) {
	b := live.NewBroadcaster()
	b.Publish(live.Update{FEN: "already-seen"})

	srv := httptest.NewServer(b)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	var u live.Update
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&u))
	assert.Equal(t, "already-seen", u.FEN)
}
