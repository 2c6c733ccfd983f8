package websocket

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
)

const defaultWriteWait = 10 * time.Second

// Subscriber is the part of a websocket connection the hub writes to.
type Subscriber interface {
	SetWriteDeadline(t time.Time) error
	WriteJSON(v interface{}) error
	Close() error
}

type Event struct {
	Type string      `json:"type"`
	ID   uint        `json:"id"`
	Data interface{} `json:"data,omitempty"`
	At   time.Time   `json:"at"`
}

// Hub fans events out to every registered subscriber. Only the Run goroutine
// touches the subscriber set after start-up.
type Hub struct {
	clients    map[Subscriber]bool
	clientsMu  sync.RWMutex
	register   chan Subscriber
	unregister chan Subscriber
	broadcast  chan Event
	done       chan struct{}

	// writeWait bounds each write; a subscriber that misses it is dropped.
	writeWait time.Duration
}

var Events = NewHub(256)

func NewHub(buffer int) *Hub {
	return &Hub{
		clients:    make(map[Subscriber]bool),
		register:   make(chan Subscriber),
		unregister: make(chan Subscriber),
		broadcast:  make(chan Event, buffer),
		done:       make(chan struct{}),
		writeWait:  defaultWriteWait,
	}
}

func (h *Hub) Run(ctx context.Context) {
	defer func() {
		h.clientsMu.Lock()
		for client := range h.clients {
			client.Close()
			delete(h.clients, client)
		}
		h.clientsMu.Unlock()
		close(h.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.clientsMu.Lock()
			h.clients[client] = true
			h.clientsMu.Unlock()
		case client := <-h.unregister:
			h.clientsMu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Close()
			}
			h.clientsMu.Unlock()
		case event := <-h.broadcast:
			h.clientsMu.Lock()
			for client := range h.clients {
				if err := h.write(client, event); err != nil {
					log.Printf("Dropping event subscriber after write error: %v", err)
					client.Close()
					delete(h.clients, client)
				}
			}
			h.clientsMu.Unlock()
		}
	}
}

func (h *Hub) write(client Subscriber, event Event) error {
	if err := client.SetWriteDeadline(time.Now().Add(h.writeWait)); err != nil {
		return err
	}
	return client.WriteJSON(event)
}

func (h *Hub) Register(s Subscriber) {
	select {
	case h.register <- s:
	case <-h.done:
	}
}

func (h *Hub) Unregister(s Subscriber) {
	select {
	case h.unregister <- s:
	case <-h.done:
	}
}

// Publish queues event for delivery and never blocks; it reports false when
// the event was dropped.
func (h *Hub) Publish(event Event) bool {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}
	select {
	case h.broadcast <- event:
		return true
	default:
		log.Printf("⚠️ Event buffer full, dropping %s event for id %d", event.Type, event.ID)
		return false
	}
}

func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

func Publish(eventType string, id uint, data interface{}) {
	Events.Publish(Event{Type: eventType, ID: id, Data: data})
}

// ServeEvents keeps a websocket subscribed to Events until the peer goes
// away. Incoming messages are read and discarded.
func ServeEvents(c *websocket.Conn) {
	Events.Register(c)
	defer Events.Unregister(c)

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
