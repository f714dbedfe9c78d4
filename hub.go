package main

import (
	"encoding/json"
	"log"
	"sync"
)

// pushEvent is the frame sent to every connected chat client.
type pushEvent struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Hub tracks the set of connected push clients and fans emitted events out to
// all of them. There is no replay: clients that connect after an emit never
// see it.
type Hub struct {
	clients    map[*wsClient]bool
	register   chan *wsClient
	unregister chan *wsClient
	emit       chan []byte
	done       chan struct{}
	mu         sync.RWMutex
}

// NewHub creates a hub ready to run. Call Run in its own goroutine before
// serving requests.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*wsClient]bool),
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
		emit:       make(chan []byte, 64),
		done:       make(chan struct{}),
	}
}

// Emit marshals an event frame and queues it for delivery to every currently
// connected client, including the one that triggered it.
func (h *Hub) Emit(name string, data any) {
	frame, err := json.Marshal(pushEvent{Event: name, Data: data})
	if err != nil {
		log.Printf("Error marshaling %q event: %v", name, err)
		return
	}
	h.emit <- frame
}

// ClientCount reports how many clients are currently connected.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Run processes registrations, unregistrations and emitted events until
// Shutdown is called.
func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			h.closeAll()
			return

		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			n := len(h.clients)
			h.mu.Unlock()
			log.Printf("Chat client connected from %s. Connected clients: %d", c.addr, n)

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()

		case frame := <-h.emit:
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.send <- frame:
				default:
					// Client can't keep up; drop it rather than block the fan-out.
					delete(h.clients, c)
					close(c.send)
					log.Printf("Dropping chat client %s with full send buffer", c.addr)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Shutdown stops the run loop, which closes every live connection on its way
// out.
func (h *Hub) Shutdown() {
	close(h.done)
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
		c.conn.Close()
	}
}
