package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"ai-research-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Hub fans research events out to every connected viewer. Connections are
// anonymous; each client is keyed by a connection id minted at upgrade
// time.
type Hub struct {
	clients map[uuid.UUID]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance fan-out. Optional; nil keeps
	// the hub single-instance.
	rdb *redis.Client

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	// Start Redis Subscriber if Redis is available
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.Id] = client
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"client_id": client.Id})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.Id]; ok {
				delete(h.clients, client.Id)
				close(client.Send)
				h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"client_id": client.Id})
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast sends an event to ALL connected clients. The wire shape is
// {"type": event, "data": payload}.
func (h *Hub) Broadcast(event string, payload interface{}) {
	data, err := json.Marshal(map[string]interface{}{
		"type": event,
		"data": payload,
	})
	if err != nil {
		h.logger.Error("Hub", "Failed to serialize event", map[string]interface{}{"event": event, "error": err.Error()})
		return
	}

	// With Redis every instance (this one included) delivers via the
	// subscription, so locals get exactly one copy.
	if h.rdb != nil {
		h.rdb.Publish(context.Background(), "research_events", data)
		return
	}

	h.broadcastLocal(data)
}

// ClientCount reports the number of locally connected viewers.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) broadcastLocal(data []byte) {
	h.mu.RLock()
	for _, client := range h.clients {
		select {
		case client.Send <- data:
		default:
			// Slow consumer; drop the connection rather than block. The
			// hub loop owns the close, so hand it over asynchronously.
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
	h.mu.RUnlock()
}

func (h *Hub) subscribeToRedis() {
	// Every instance subscribes to the same channel and forwards each
	// message to the clients it holds locally.
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "research_events")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		if !json.Valid([]byte(msg.Payload)) {
			log.Printf("Redis msg parse error: invalid payload")
			continue
		}
		h.broadcastLocal([]byte(msg.Payload))
	}
}
