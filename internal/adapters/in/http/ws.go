package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/order"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	// OrderPlacedEvent is the type of the message sent for a new order.
	OrderPlacedEvent = "order.placed"

	defaultWriteTimeout = 2 * time.Second
)

// OrderEvent is one websocket message of the admin order feed.
type OrderEvent struct {
	Type  string `json:"type"`
	Order Order  `json:"order"`
}

// Hub keeps the connected admin dashboards and pushes order events to
// them. It implements ports.OrderNotifier.
type Hub struct {
	mu           sync.Mutex
	clients      map[*websocket.Conn]struct{}
	upgrader     websocket.Upgrader
	writeTimeout time.Duration
	logger       *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		writeTimeout: defaultWriteTimeout,
		logger:       logger.With("component", "http.Hub"),
	}
}

// ServeWS handles GET /api/v1/admin/ws. The connection stays registered
// until the client goes away.
func (h *Hub) ServeWS(ctx echo.Context) error {
	conn, err := h.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		// Upgrade already wrote the error response.
		return nil
	}

	h.add(conn)
	h.logger.Debug("dashboard connected", "remote", conn.RemoteAddr().String())

	for {
		if _, _, err = conn.ReadMessage(); err != nil {
			h.remove(conn)
			return nil
		}
	}
}

// OrderPlaced broadcasts an order.placed event. Clients that cannot be
// written to within the write timeout are dropped.
func (h *Hub) OrderPlaced(ctx context.Context, placed *order.Order) {
	data, err := json.Marshal(OrderEvent{
		Type:  OrderPlacedEvent,
		Order: orderFromQuery(queries.NewOrderResponse(placed)),
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to encode order event", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
		if err = conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.WarnContext(ctx, "dropping dashboard connection", "error", err)
			delete(h.clients, conn)
			_ = conn.Close()
		}
	}
}

// Clients returns the number of connected dashboards.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every dashboard.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second))
		_ = conn.Close()
		delete(h.clients, conn)
	}
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		_ = conn.Close()
	}
}
