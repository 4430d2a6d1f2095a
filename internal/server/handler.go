// internal/server/handler.go
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// Handler upgrades HTTP requests to websocket sessions against the hub.
type Handler struct {
	hub      *Hub
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

func NewHandler(hub *Hub, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade", "error", err)
		return
	}

	sub := h.hub.subscribe(conn)
	defer h.hub.unsubscribe(sub)

	initial, err := h.hub.InitialFrame()
	if err != nil {
		h.logger.Error("marshal initial snapshot", "error", err)
		return
	}
	sub.send <- initial

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var cmd Command
		if err := json.Unmarshal(payload, &cmd); err != nil {
			h.logger.Debug("discarding malformed command", "error", err)
			sub.send <- errorFrame("malformed command")
			continue
		}
		reply := h.hub.Execute(cmd)
		select {
		case sub.send <- reply:
		default:
		}
	}
}
