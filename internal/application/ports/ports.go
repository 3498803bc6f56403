// Package ports define los puertos de salida de la capa de aplicación.
package ports

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/session"
)

// TxRunner ejecuta fn con repositorios atados a una unidad atómica. Si fn devuelve error
// ninguna escritura queda visible (memory, postgres). El back end remoto no puede
// revertir: informa domain.ErrPartialUpdate cuando falla después de una escritura exitosa.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.Repos) error) error
}

// Tipos de evento publicados tras una transición exitosa.
const (
	EventOrderCreated       = "order.created"
	EventOrderProcessed     = "order.processed"
	EventOrderShipped       = "order.shipped"
	EventOrderDelivered     = "order.delivered"
	EventOrderDeleted       = "order.deleted"
	EventShipmentDispatched = "shipment.dispatched"
	EventShipmentDelivered  = "shipment.delivered"
	EventPlanCreated        = "plan.created"
	EventPlanStarted        = "plan.started"
	EventPlanCompleted      = "plan.completed"
	EventPlanDeleted        = "plan.deleted"
	EventBatchCreated       = "batch.created"
	EventBatchQualityCheck  = "batch.quality-check"
	EventBatchCompleted     = "batch.completed"
	EventStockIn            = "stock.in"
	EventStockOut           = "stock.out"
	EventStockSet           = "stock.set"
)

// Event notificación de un cambio de estado.
type Event struct {
	Type     string    `json:"type"`
	EntityID string    `json:"entityId"`
	Code     string    `json:"code"`
	StoreID  string    `json:"storeId,omitempty"`
	Status   string    `json:"status,omitempty"`
	Actor    string    `json:"actor,omitempty"`
	At       time.Time `json:"at"`
}

// VisibleTo el personal de tienda solo recibe eventos de su tienda y los de cocina que no
// pertenecen a ninguna; los pedidos y envíos sin tienda no le llegan.
func (e Event) VisibleTo(id session.Identity) bool {
	if !id.Role.StoreScoped() {
		return true
	}
	if e.StoreID != "" {
		return id.StoreID != "" && e.StoreID == id.StoreID
	}
	return !strings.HasPrefix(e.Type, "order.") && !strings.HasPrefix(e.Type, "shipment.")
}

// EventPublisher difunde eventos. Es best effort: nunca hace fallar la transición.
type EventPublisher interface {
	Publish(ctx context.Context, e Event)
}

// NopPublisher descarta los eventos.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) {}

// Multi reparte cada evento entre varios publicadores.
type Multi []EventPublisher

func (m Multi) Publish(ctx context.Context, e Event) {
	for _, p := range m {
		p.Publish(ctx, e)
	}
}
