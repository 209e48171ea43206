package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/kingrain94/catalog-api/internal/api/dto"
	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/tenant"
	"github.com/kingrain94/catalog-api/pkg/logger"
)

const (
	websocketReadBufferSize        = 1024
	websocketWriteBufferSize       = 1024
	websocketSendChannelBufferSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  websocketReadBufferSize,
	WriteBufferSize: websocketWriteBufferSize,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

//go:generate mockery --name EventSubscriber --output ../mocks
type EventSubscriber interface {
	Subscribe(ctx context.Context, tenantID string, callback func(*domain.CatalogEvent)) error
	Unsubscribe(tenantID string)
	Close()
}

type Client struct {
	conn     *websocket.Conn
	tenantID string
	send     chan []byte
}

// WebSocketHandler streams catalog change events to storefront clients. One
// pub/sub subscription is held per tenant while it has connected clients.
type WebSocketHandler struct {
	clients       map[*Client]bool
	register      chan *Client
	unregister    chan *Client
	mutex         sync.Mutex
	logger        *logger.Logger
	events        EventSubscriber
	ctx           context.Context
	cancel        context.CancelFunc
	tenantClients map[string]int
}

func NewWebSocketHandler(logger *logger.Logger, events EventSubscriber) *WebSocketHandler {
	ctx, cancel := context.WithCancel(context.Background())
	return &WebSocketHandler{
		clients:       make(map[*Client]bool),
		register:      make(chan *Client),
		unregister:    make(chan *Client),
		logger:        logger,
		events:        events,
		ctx:           ctx,
		cancel:        cancel,
		tenantClients: make(map[string]int),
	}
}

// HandleWebSocket godoc
// @Summary Catalog change stream
// @Description Upgrade to a WebSocket that receives the current tenant's catalog events
// @Tags catalog
// @Param X-Tenant-Slug header string false "Tenant slug"
// @Success 101
// @Failure 400 {object} dto.Error
// @Router /catalog/stream [get]
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	tenantID, err := tenant.IDFromContext(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.Error{Error: "Tenant context is required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("Failed to upgrade connection", zap.String("tenant_id", tenantID), zap.Error(err))
		return
	}

	client := &Client{
		conn:     conn,
		tenantID: tenantID,
		send:     make(chan []byte, websocketSendChannelBufferSize),
	}
	select {
	case h.register <- client:
	case <-h.ctx.Done():
		conn.Close()
		return
	}

	go h.writePump(client)
	go h.readPump(client)
}

func (h *WebSocketHandler) Start() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.tenantClients[client.tenantID]++

			if h.tenantClients[client.tenantID] == 1 {
				if err := h.events.Subscribe(h.ctx, client.tenantID, h.handleEvent); err != nil {
					h.logger.Error("Failed to subscribe to tenant events", err, zap.String("tenant_id", client.tenantID))
					// The next client of this tenant retries the subscription.
					h.dropLocked(client)
				}
			}
			h.mutex.Unlock()

		case client := <-h.unregister:
			h.mutex.Lock()
			h.removeLocked(client)
			h.mutex.Unlock()

		case <-h.ctx.Done():
			return
		}
	}
}

func (h *WebSocketHandler) Stop() {
	h.cancel()
	h.events.Close()
}

// dropLocked forgets a client whose tenant never got a subscription. Closing
// send makes writePump hang up on it.
func (h *WebSocketHandler) dropLocked(client *Client) {
	delete(h.clients, client)
	close(client.send)
	h.tenantClients[client.tenantID]--
	if h.tenantClients[client.tenantID] <= 0 {
		delete(h.tenantClients, client.tenantID)
	}
}

// removeLocked drops a client and releases the tenant subscription once the
// last client of that tenant is gone. Callers hold h.mutex.
func (h *WebSocketHandler) removeLocked(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)

	h.tenantClients[client.tenantID]--
	if h.tenantClients[client.tenantID] <= 0 {
		h.events.Unsubscribe(client.tenantID)
		delete(h.tenantClients, client.tenantID)
	}
}

func (h *WebSocketHandler) handleEvent(event *domain.CatalogEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("Failed to marshal catalog event", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		if client.tenantID != event.TenantID {
			continue
		}
		select {
		case client.send <- message:
		default: // slow consumer
			h.removeLocked(client)
		}
	}
}

func (h *WebSocketHandler) writePump(client *Client) {
	defer client.conn.Close()

	for message := range client.send {
		if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}

	client.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *WebSocketHandler) readPump(client *Client) {
	defer func() {
		select {
		case h.unregister <- client:
		case <-h.ctx.Done():
		}
		client.conn.Close()
	}()

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("Unexpected websocket close", zap.String("tenant_id", client.tenantID), zap.Error(err))
			}
			return
		}
	}
}
