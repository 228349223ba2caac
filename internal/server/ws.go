package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/ayusman/handrps/internal/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// event is the message pushed to websocket clients.
type event struct {
	View      game.View `json:"view"`
	Timestamp int64     `json:"timestamp"`
}

// EventsHandler pushes the game view to websocket clients whenever it changes.
type EventsHandler struct {
	feed   *Feed
	logger *log.Logger
}

// NewEventsHandler creates a new EventsHandler reading from feed.
func NewEventsHandler(feed *Feed, logger *log.Logger) *EventsHandler {
	return &EventsHandler{feed: feed, logger: logger}
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	views, unsubscribe := h.feed.Subscribe()
	defer unsubscribe()

	// Reads only detect the client going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if v, ok := h.feed.View(); ok {
		if err := send(conn, v); err != nil {
			return
		}
	}

	for {
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case v := <-views:
			if err := send(conn, v); err != nil {
				h.logger.Debug("websocket client dropped", "err", err)
				return
			}
		}
	}
}

func send(conn *websocket.Conn, v game.View) error {
	return conn.WriteJSON(event{View: v, Timestamp: time.Now().UnixMilli()})
}
