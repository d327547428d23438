// Package broadcast serves the live density raster over WebSocket to
// any connected viewer, decoupled from grid internals by the
// single-slot frame channel euler.NewFrameChannel produces: the Hub
// only ever sees already-rendered []byte frames, never grid state.
package broadcast

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1 << 20,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub accepts WebSocket clients on one HTTP endpoint and fans out the
// frames pumped into it via Broadcast, rate-limited to MaxFPS and
// capped at MaxClients; a client that can't keep up is dropped rather
// than letting it back-pressure the broadcaster.
type Hub struct {
	maxClients int
	minPeriod  time.Duration
	timeout    time.Duration

	server *http.Server

	mu      sync.Mutex
	clients map[*client]struct{}
	lastAt  time.Time
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Open starts an HTTP server on addr serving a single "/" WebSocket
// endpoint and returns the running Hub. timeout bounds how long a
// client write may block before the client is dropped; maxFPS caps how
// often Broadcast actually forwards a frame to clients (frames arriving
// faster than that are coalesced, matching the single-slot frame
// channel upstream).
func Open(addr string, maxClients int, timeout time.Duration, maxFPS float64) (*Hub, error) {
	h := &Hub{
		maxClients: maxClients,
		timeout:    timeout,
		clients:    make(map[*client]struct{}),
	}
	if maxFPS > 0 {
		h.minPeriod = time.Duration(float64(time.Second) / maxFPS)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", h.serveWS)
	h.server = &http.Server{Addr: addr, Handler: mux}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	go func() {
		if err := h.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Warn("broadcast: server exited")
		}
	}()
	return h, nil
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	full := len(h.clients) >= h.maxClients
	h.mu.Unlock()
	if full {
		logrus.Warn("broadcast: max clients reached, rejecting connection")
		http.Error(w, "too many clients", http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.WithError(err).Warn("broadcast: upgrade failed")
		return
	}

	h.mu.Lock()
	if len(h.clients) >= h.maxClients {
		h.mu.Unlock()
		logrus.Warn("broadcast: max clients reached, rejecting connection")
		conn.Close()
		return
	}
	c := &client{conn: conn, send: make(chan []byte, 1)}
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	go h.pump(c)
}

func (h *Hub) pump(c *client) {
	defer func() {
		h.mu.Lock()
		delete(h.clients, c)
		h.mu.Unlock()
		c.conn.Close()
	}()

	for frame := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(h.timeout))
		if err := c.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
			logrus.WithError(err).Warn("broadcast: dropping slow client")
			return
		}
	}
}

// Broadcast fans frame out to every connected client, subject to the
// MaxFPS rate limit. A client whose send buffer is still full from the
// previous frame has that frame dropped rather than blocking the
// broadcaster.
func (h *Hub) Broadcast(frame []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.minPeriod > 0 {
		now := time.Now()
		if now.Sub(h.lastAt) < h.minPeriod {
			return
		}
		h.lastAt = now
	}

	for c := range h.clients {
		select {
		case c.send <- frame:
		default:
			logrus.Warn("broadcast: client buffer full, dropping frame")
		}
	}
}

// Run drains ch into Broadcast until ctx is cancelled, the pump loop a
// leader goroutine starts once per Simulation.
func (h *Hub) Run(ctx context.Context, ch <-chan []byte) {
	for {
		select {
		case <-ctx.Done():
			return
		case frame, ok := <-ch:
			if !ok {
				return
			}
			h.Broadcast(frame)
		}
	}
}

// Close stops accepting new clients and closes every open connection.
func (h *Hub) Close() error {
	h.mu.Lock()
	for c := range h.clients {
		close(c.send)
	}
	h.clients = make(map[*client]struct{})
	h.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return h.server.Shutdown(ctx)
}
