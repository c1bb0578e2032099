// Package live fans out position and move updates to WebSocket spectators.
// It replaces the teacher's physical-board adaptor (see DESIGN.md for why
// that dependency was dropped) with a browser-facing one: the engine keeps
// driving the position, and anyone can watch it over a plain websocket.
package live

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/seekerror/logw"
)

// Update is one broadcast message: the position after a move, in FEN, plus
// the move that produced it, in UCI coordinate form (e.g. "e2e4").
type Update struct {
	FEN  string `json:"fen"`
	Move string `json:"move,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Broadcaster fans out Updates to any number of connected spectators. The
// zero value is not usable; construct with NewBroadcaster.
type Broadcaster struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]chan Update
	lastSeen Update
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{clients: make(map[*websocket.Conn]chan Update)}
}

// Publish sends u to every connected spectator. Non-blocking per client: a
// slow or stuck client is dropped rather than stalling the engine.
func (b *Broadcaster) Publish(u Update) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lastSeen = u
	for conn, ch := range b.clients {
		select {
		case ch <- u:
		default:
			delete(b.clients, conn)
			close(ch)
			_ = conn.Close()
		}
	}
}

// ServeHTTP upgrades the connection to a websocket and streams Updates to
// it until the client disconnects.
func (b *Broadcaster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logw.Errorf(ctx, "Spectator upgrade failed: %v", err)
		return
	}

	ch := make(chan Update, 8)
	b.mu.Lock()
	b.clients[conn] = ch
	initial := b.lastSeen
	b.mu.Unlock()

	if initial.FEN != "" {
		ch <- initial
	}

	go b.writeLoop(conn, ch)
	b.readLoop(conn)
}

// writeLoop drains ch to the client as JSON frames, one Update per frame.
func (b *Broadcaster) writeLoop(conn *websocket.Conn, ch chan Update) {
	for u := range ch {
		if err := conn.WriteJSON(u); err != nil {
			return
		}
	}
}

// readLoop discards anything the client sends (spectators are read-only)
// and exits, which tears down the connection, once the client disconnects.
func (b *Broadcaster) readLoop(conn *websocket.Conn) {
	defer b.remove(conn)
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func (b *Broadcaster) remove(conn *websocket.Conn) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.clients[conn]; ok {
		delete(b.clients, conn)
		close(ch)
	}
	_ = conn.Close()
}
