// Package events difunde los eventos de flujo de trabajo a los clientes websocket de la
// consola y guarda los más recientes para el feed de actividad del dashboard.
package events

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"

	"github.com/jhoicas/CentralKitchen-api/internal/application/ports"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/session"
	"github.com/jhoicas/CentralKitchen-api/pkg/logger"
)

// Conn lo que el hub necesita de una conexión; *websocket.Conn lo cumple.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

const broadcastBuffer = 64

// Hub registra conexiones y les reenvía cada evento publicado que su identidad puede ver.
type Hub struct {
	register   chan client
	unregister chan Conn
	broadcast  chan ports.Event
	done       chan struct{}

	mu      sync.Mutex
	clients map[Conn]session.Identity
	recent  *Ring
	log     *logger.Logger
}

type client struct {
	conn Conn
	id   session.Identity
}

var _ ports.EventPublisher = (*Hub)(nil)

// NewHub crea el hub; keep es el tamaño del historial reciente.
func NewHub(keep int, log *logger.Logger) *Hub {
	if log == nil {
		log = logger.Nop()
	}
	return &Hub{
		register:   make(chan client),
		unregister: make(chan Conn),
		broadcast:  make(chan ports.Event, broadcastBuffer),
		done:       make(chan struct{}),
		clients:    make(map[Conn]session.Identity),
		recent:     NewRing(keep),
		log:        log.Named("events"),
	}
}

// Join registra c para id. Devuelve false si el hub ya terminó.
func (h *Hub) Join(c Conn, id session.Identity) bool {
	select {
	case h.register <- client{conn: c, id: id}:
		return true
	case <-h.done:
		return false
	}
}

// Leave retira c; con el hub terminado no hace nada.
func (h *Hub) Leave(c Conn) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Run atiende registros y difusiones hasta que ctx se cancela; al salir cierra los
// clientes y libera a quien espere en Join o Leave. Se llama una sola vez.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for c := range h.clients {
				_ = c.Close()
				delete(h.clients, c)
			}
			h.mu.Unlock()
			return

		case cl := <-h.register:
			h.mu.Lock()
			h.clients[cl.conn] = cl.id
			n := len(h.clients)
			h.mu.Unlock()
			h.log.Debug().Int("clients", n).Str("user", cl.id.Username).Msg("cliente ws conectado")

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				_ = c.Close()
			}
			h.mu.Unlock()

		case e := <-h.broadcast:
			msg, err := json.Marshal(e)
			if err != nil {
				h.log.Error().Err(err).Str("type", e.Type).Msg("serializar evento")
				continue
			}
			h.mu.Lock()
			for c, id := range h.clients {
				if !e.VisibleTo(id) {
					continue
				}
				if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
					_ = c.Close()
					delete(h.clients, c)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish guarda el evento en el historial y lo encola para difusión. Si la cola está
// llena el evento no se difunde, pero queda en el historial.
func (h *Hub) Publish(_ context.Context, e ports.Event) {
	h.recent.Add(e)
	select {
	case h.broadcast <- e:
	default:
		h.log.Warn().Str("type", e.Type).Str("code", e.Code).Msg("cola de difusión llena, evento descartado")
	}
}

// Recent implementa analytics.ActivityFeed.
func (h *Hub) Recent(limit int) []ports.Event {
	return h.recent.Recent(limit)
}

// Clients número de conexiones registradas.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
