package events

import (
	"sync"

	"github.com/jhoicas/CentralKitchen-api/internal/application/ports"
)

// Ring búfer circular de eventos; al llenarse descarta el más antiguo.
type Ring struct {
	mu    sync.Mutex
	buf   []ports.Event
	next  int
	count int
}

// NewRing crea un búfer de capacidad size (mínimo 1).
func NewRing(size int) *Ring {
	if size < 1 {
		size = 1
	}
	return &Ring{buf: make([]ports.Event, size)}
}

// Add agrega e sobrescribiendo el más antiguo si hace falta.
func (r *Ring) Add(e ports.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buf[r.next] = e
	r.next = (r.next + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Recent hasta limit eventos, el más reciente primero. limit <= 0 devuelve todos.
func (r *Ring) Recent(limit int) []ports.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.count
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]ports.Event, 0, n)
	for i := 1; i <= n; i++ {
		idx := (r.next - i + len(r.buf)) % len(r.buf)
		out = append(out, r.buf[idx])
	}
	return out
}
