// Package workflow contiene las máquinas de estado de pedidos, envíos, producción y stock.
// Las funciones son puras: mutan la entidad recibida solo si la transición es válida.
package workflow

import (
	"fmt"
	"time"

	"github.com/jhoicas/CentralKitchen-api/internal/domain"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
)

// Action acción de usuario que dispara una transición.
type Action string

const (
	ActionProcess         Action = "process"
	ActionShip            Action = "ship"
	ActionDeliver         Action = "deliver"
	ActionDispatch        Action = "dispatch"
	ActionConfirmDelivery Action = "confirm-delivery"
	ActionStartProduction Action = "start-production"
	ActionCompletePlan    Action = "complete-plan"
	ActionQualityCheck    Action = "quality-check"
	ActionComplete        Action = "complete"
)

func invalid(entityName, code string, from interface{}, action Action) error {
	return fmt.Errorf("%w: %s %s en estado %v no admite %s", domain.ErrInvalidTransition, entityName, code, from, action)
}

// AvailableOrderActions acciones ofrecidas para un pedido en el estado dado.
func AvailableOrderActions(s entity.OrderStatus) []Action {
	switch s {
	case entity.OrderPending:
		return []Action{ActionProcess}
	case entity.OrderProcessing:
		return []Action{ActionShip}
	case entity.OrderShipping:
		return []Action{ActionDeliver}
	default:
		return nil
	}
}

// ProcessOrder pending -> processing.
func ProcessOrder(o *entity.Order, now time.Time) error {
	if o.Status != entity.OrderPending {
		return invalid("pedido", o.Code, o.Status, ActionProcess)
	}
	o.Status = entity.OrderProcessing
	o.UpdatedAt = now
	return nil
}

// ShipOrder processing -> shipping. Devuelve el único envío que crea la transición,
// en estado preparing y sin fecha de recepción.
func ShipOrder(o *entity.Order, shipmentID, shipmentCode string, now time.Time) (*entity.Shipment, error) {
	if o.Status != entity.OrderProcessing {
		return nil, invalid("pedido", o.Code, o.Status, ActionShip)
	}
	o.Status = entity.OrderShipping
	o.UpdatedAt = now
	return &entity.Shipment{
		ID:        shipmentID,
		Code:      shipmentCode,
		OrderID:   o.ID,
		OrderCode: o.Code,
		StoreID:   o.StoreID,
		StoreName: o.StoreName,
		Status:    entity.ShipmentPreparing,
		CreatedAt: now,
	}, nil
}

// DeliverOrder shipping -> delivered.
func DeliverOrder(o *entity.Order, now time.Time) error {
	if o.Status != entity.OrderShipping {
		return invalid("pedido", o.Code, o.Status, ActionDeliver)
	}
	o.Status = entity.OrderDelivered
	o.UpdatedAt = now
	return nil
}

// ForceOrderDelivered efecto cruzado de confirmar un envío: el pedido queda delivered
// cualquiera que sea su estado. Devuelve false si ya lo estaba.
func ForceOrderDelivered(o *entity.Order, now time.Time) bool {
	if o.Status == entity.OrderDelivered {
		return false
	}
	o.Status = entity.OrderDelivered
	o.UpdatedAt = now
	return true
}

// AvailableShipmentActions acciones ofrecidas para un envío.
func AvailableShipmentActions(s entity.ShipmentStatus) []Action {
	switch s {
	case entity.ShipmentPreparing:
		return []Action{ActionDispatch, ActionConfirmDelivery}
	case entity.ShipmentInTransit:
		return []Action{ActionConfirmDelivery}
	default:
		return nil
	}
}

// DispatchShipment preparing -> in-transit.
func DispatchShipment(s *entity.Shipment) error {
	if s.Status != entity.ShipmentPreparing {
		return invalid("envío", s.Code, s.Status, ActionDispatch)
	}
	s.Status = entity.ShipmentInTransit
	return nil
}

// ConfirmDelivery preparing|in-transit -> delivered y fija ReceivedAt.
func ConfirmDelivery(s *entity.Shipment, now time.Time) error {
	if s.Status != entity.ShipmentPreparing && s.Status != entity.ShipmentInTransit {
		return invalid("envío", s.Code, s.Status, ActionConfirmDelivery)
	}
	s.Status = entity.ShipmentDelivered
	received := now
	s.ReceivedAt = &received
	return nil
}
