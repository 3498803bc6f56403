// Package workflow orquesta los ciclos de vida de pedidos, envíos, planes y lotes sobre
// los repositorios. Las transiciones puras viven en internal/domain/workflow.
package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/CentralKitchen-api/internal/application/dto"
	"github.com/jhoicas/CentralKitchen-api/internal/application/ports"
	"github.com/jhoicas/CentralKitchen-api/internal/domain"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/session"
	wf "github.com/jhoicas/CentralKitchen-api/internal/domain/workflow"
	"github.com/jhoicas/CentralKitchen-api/pkg/logger"
)

// OrderUseCase pedidos de tienda y sus envíos. Despachar y confirmar entrega escriben
// pedido y envío dentro de la misma unidad atómica del TxRunner.
type OrderUseCase struct {
	repos  repository.Repos
	tx     ports.TxRunner
	events ports.EventPublisher
	log    *logger.Logger
	now    func() time.Time
}

// NewOrderUseCase construye el caso de uso. events y log pueden ser nil.
func NewOrderUseCase(repos repository.Repos, tx ports.TxRunner, events ports.EventPublisher, log *logger.Logger) *OrderUseCase {
	if events == nil {
		events = ports.NopPublisher{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &OrderUseCase{repos: repos, tx: tx, events: events, log: log.Named("orders"), now: time.Now}
}

// Create registra un pedido pending. El personal de tienda solo pide para su tienda; si no
// indica tienda se usa la de la sesión.
func (uc *OrderUseCase) Create(ctx context.Context, actor session.Identity, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	storeID, storeName, err := uc.resolveStore(ctx, actor, in.StoreID)
	if err != nil {
		return nil, err
	}
	items := make([]entity.OrderItem, 0, len(in.Items))
	total := 0
	for _, it := range in.Items {
		name := it.ProductName
		if it.ProductID != "" {
			p, err := uc.repos.Products.GetByID(ctx, it.ProductID)
			if err != nil {
				return nil, err
			}
			if p == nil {
				return nil, notFound("producto", it.ProductID)
			}
			name = p.Name
		}
		items = append(items, entity.OrderItem{ProductID: it.ProductID, ProductName: name, Quantity: it.Quantity})
		total += it.Quantity
	}

	now := uc.now()
	order := &entity.Order{
		ID:            uuid.New().String(),
		StoreID:       storeID,
		StoreName:     storeName,
		OrderDate:     now,
		DeliveryDate:  in.DeliveryDate,
		TotalQuantity: total,
		ItemCount:     len(items),
		Status:        entity.OrderPending,
		Items:         items,
		CreatedBy:     actor.UserID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	err = uc.tx.Run(ctx, func(r repository.Repos) error {
		n, err := r.Orders.Count(ctx)
		if err != nil {
			return err
		}
		order.Code = wf.NextOrderCode(n)
		return r.Orders.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("order", order.Code).Str("store", storeName).Int("quantity", total).Msg("pedido creado")
	uc.publishOrder(ctx, actor, ports.EventOrderCreated, order)
	return ToOrderResponse(order, true), nil
}

// List pedidos más recientes primero. El personal de tienda solo ve los de su tienda.
func (uc *OrderUseCase) List(ctx context.Context, actor session.Identity, status, storeID string) ([]dto.OrderResponse, error) {
	f := repository.OrderFilter{StoreID: storeID}
	if status != "" {
		s, err := parseOrderStatus(status)
		if err != nil {
			return nil, err
		}
		f.Status = s
	}
	if actor.Role.StoreScoped() {
		f.StoreID = actor.StoreID
	}
	list, err := uc.repos.Orders.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		if !canSee(actor, o) {
			continue
		}
		out = append(out, *ToOrderResponse(o, false))
	}
	return out, nil
}

// Get pedido con sus líneas.
func (uc *OrderUseCase) Get(ctx context.Context, actor session.Identity, id string) (*dto.OrderResponse, error) {
	o, err := uc.visibleOrder(ctx, uc.repos, actor, id)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(o, true), nil
}

// Delete elimina un pedido que sigue pending.
func (uc *OrderUseCase) Delete(ctx context.Context, actor session.Identity, id string) error {
	var order *entity.Order
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		o, err := uc.visibleOrder(ctx, r, actor, id)
		if err != nil {
			return err
		}
		if o.Status != entity.OrderPending {
			return fmt.Errorf("%w: pedido %s en estado %s no se puede eliminar", domain.ErrInvalidTransition, o.Code, o.Status)
		}
		order = o
		return r.Orders.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("order", order.Code).Msg("pedido eliminado")
	uc.publishOrder(ctx, actor, ports.EventOrderDeleted, order)
	return nil
}

// Process pending -> processing.
func (uc *OrderUseCase) Process(ctx context.Context, actor session.Identity, id string) (*dto.OrderResponse, error) {
	if err := kitchenSide(actor); err != nil {
		return nil, err
	}
	var order *entity.Order
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		o, err := getOrder(ctx, r, id)
		if err != nil {
			return err
		}
		if err := wf.ProcessOrder(o, uc.now()); err != nil {
			return err
		}
		order = o
		return r.Orders.Transition(ctx, o, repository.OrderProcess)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("order", order.Code).Str("status", string(order.Status)).Msg("pedido en proceso")
	uc.publishOrder(ctx, actor, ports.EventOrderProcessed, order)
	return ToOrderResponse(order, true), nil
}

// Ship processing -> shipping y crea el único envío del pedido, en la misma transacción.
func (uc *OrderUseCase) Ship(ctx context.Context, actor session.Identity, id string) (*dto.ShipResponse, error) {
	if err := kitchenSide(actor); err != nil {
		return nil, err
	}
	var (
		order    *entity.Order
		shipment *entity.Shipment
	)
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		o, err := getOrder(ctx, r, id)
		if err != nil {
			return err
		}
		n, err := r.Shipments.Count(ctx)
		if err != nil {
			return err
		}
		s, err := wf.ShipOrder(o, uuid.New().String(), wf.NextShipmentCode(n), uc.now())
		if err != nil {
			return err
		}
		if err := r.Orders.Transition(ctx, o, repository.OrderShip); err != nil {
			return err
		}
		if err := r.Shipments.Create(ctx, s); err != nil {
			return err
		}
		order, shipment = o, s
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("order", order.Code).Str("shipment", shipment.Code).Msg("pedido despachado")
	uc.publishOrder(ctx, actor, ports.EventOrderShipped, order)
	return &dto.ShipResponse{Order: *ToOrderResponse(order, true), Shipment: *ToShipmentResponse(shipment)}, nil
}

// Deliver shipping -> delivered. El envío pendiente del pedido se confirma en la misma
// transacción para que ambos estados lleguen juntos.
func (uc *OrderUseCase) Deliver(ctx context.Context, actor session.Identity, id string) (*dto.DeliveryResponse, error) {
	var (
		order    *entity.Order
		shipment *entity.Shipment
	)
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		o, err := uc.visibleOrder(ctx, r, actor, id)
		if err != nil {
			return err
		}
		now := uc.now()
		if err := wf.DeliverOrder(o, now); err != nil {
			return err
		}
		if err := r.Orders.Transition(ctx, o, repository.OrderDeliver); err != nil {
			return err
		}
		order = o
		list, err := r.Shipments.List(ctx, repository.ShipmentFilter{OrderID: o.ID})
		if err != nil {
			return err
		}
		for _, s := range list {
			if s.Status == entity.ShipmentDelivered {
				continue
			}
			if err := wf.ConfirmDelivery(s, now); err != nil {
				return err
			}
			if err := r.Shipments.Transition(ctx, s, repository.ShipmentDelivered); err != nil {
				return err
			}
			shipment = s
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("order", order.Code).Msg("pedido entregado")
	uc.publishOrder(ctx, actor, ports.EventOrderDelivered, order)
	out := &dto.DeliveryResponse{Order: *ToOrderResponse(order, true)}
	if shipment != nil {
		uc.publishShipment(ctx, actor, ports.EventShipmentDelivered, shipment)
		out.Shipment = ToShipmentResponse(shipment)
	}
	return out, nil
}

// ListShipments envíos más recientes primero.
func (uc *OrderUseCase) ListShipments(ctx context.Context, actor session.Identity, status string) ([]dto.ShipmentResponse, error) {
	f := repository.ShipmentFilter{}
	if status != "" {
		s, err := parseShipmentStatus(status)
		if err != nil {
			return nil, err
		}
		f.Status = s
	}
	list, err := uc.repos.Shipments.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return uc.shipments(actor, list), nil
}

// ShipmentsByOrder envíos de un pedido.
func (uc *OrderUseCase) ShipmentsByOrder(ctx context.Context, actor session.Identity, orderID string) ([]dto.ShipmentResponse, error) {
	if _, err := uc.visibleOrder(ctx, uc.repos, actor, orderID); err != nil {
		return nil, err
	}
	list, err := uc.repos.Shipments.List(ctx, repository.ShipmentFilter{OrderID: orderID})
	if err != nil {
		return nil, err
	}
	return uc.shipments(actor, list), nil
}

// GetShipment envío por ID.
func (uc *OrderUseCase) GetShipment(ctx context.Context, actor session.Identity, id string) (*dto.ShipmentResponse, error) {
	s, err := getShipment(ctx, uc.repos, id)
	if err != nil {
		return nil, err
	}
	if !canSeeShipment(actor, s) {
		return nil, fmt.Errorf("%w: envío de otra tienda", domain.ErrForbidden)
	}
	return ToShipmentResponse(s), nil
}

// DispatchShipment preparing -> in-transit.
func (uc *OrderUseCase) DispatchShipment(ctx context.Context, actor session.Identity, id string) (*dto.ShipmentResponse, error) {
	if err := kitchenSide(actor); err != nil {
		return nil, err
	}
	var shipment *entity.Shipment
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		s, err := getShipment(ctx, r, id)
		if err != nil {
			return err
		}
		if err := wf.DispatchShipment(s); err != nil {
			return err
		}
		shipment = s
		return r.Shipments.Transition(ctx, s, repository.ShipmentDispatch)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("shipment", shipment.Code).Msg("envío en tránsito")
	uc.publishShipment(ctx, actor, ports.EventShipmentDispatched, shipment)
	return ToShipmentResponse(shipment), nil
}

// ConfirmDelivery marca el envío como delivered, fija la fecha de recepción y fuerza el
// pedido vinculado a delivered. Ambas escrituras son atómicas: si el pedido no existe o
// su actualización falla, el envío tampoco cambia.
func (uc *OrderUseCase) ConfirmDelivery(ctx context.Context, actor session.Identity, id string) (*dto.DeliveryResponse, error) {
	var (
		order     *entity.Order
		shipment  *entity.Shipment
		forwarded bool
	)
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		s, err := getShipment(ctx, r, id)
		if err != nil {
			return err
		}
		if !canSeeShipment(actor, s) {
			return fmt.Errorf("%w: envío de otra tienda", domain.ErrForbidden)
		}
		now := uc.now()
		if err := wf.ConfirmDelivery(s, now); err != nil {
			return err
		}
		o, err := getOrder(ctx, r, s.OrderID)
		if err != nil {
			return err
		}
		if err := r.Shipments.Transition(ctx, s, repository.ShipmentDelivered); err != nil {
			return err
		}
		if forwarded = wf.ForceOrderDelivered(o, now); forwarded {
			if err := r.Orders.Transition(ctx, o, repository.OrderDeliver); err != nil {
				return err
			}
		}
		order, shipment = o, s
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("shipment", shipment.Code).Str("order", order.Code).Msg("entrega confirmada")
	uc.publishShipment(ctx, actor, ports.EventShipmentDelivered, shipment)
	if forwarded {
		uc.publishOrder(ctx, actor, ports.EventOrderDelivered, order)
	}
	return &dto.DeliveryResponse{Order: *ToOrderResponse(order, true), Shipment: ToShipmentResponse(shipment)}, nil
}

func (uc *OrderUseCase) resolveStore(ctx context.Context, actor session.Identity, storeID string) (string, string, error) {
	if actor.Role.StoreScoped() {
		if storeID != "" && storeID != actor.StoreID {
			return "", "", fmt.Errorf("%w: solo puede pedir para su tienda", domain.ErrForbidden)
		}
		if actor.StoreID == "" {
			return "", actor.StoreName, nil
		}
		storeID = actor.StoreID
	}
	if storeID == "" {
		return "", "", fmt.Errorf("%w: storeId requerido", domain.ErrInvalidInput)
	}
	st, err := uc.repos.Stores.GetByID(ctx, storeID)
	if err != nil {
		return "", "", err
	}
	if st == nil {
		return "", "", notFound("tienda", storeID)
	}
	return st.ID, st.Name, nil
}

func (uc *OrderUseCase) visibleOrder(ctx context.Context, r repository.Repos, actor session.Identity, id string) (*entity.Order, error) {
	o, err := getOrder(ctx, r, id)
	if err != nil {
		return nil, err
	}
	if !canSee(actor, o) {
		return nil, fmt.Errorf("%w: pedido de otra tienda", domain.ErrForbidden)
	}
	return o, nil
}

func (uc *OrderUseCase) shipments(actor session.Identity, list []*entity.Shipment) []dto.ShipmentResponse {
	out := make([]dto.ShipmentResponse, 0, len(list))
	for _, s := range list {
		if !canSeeShipment(actor, s) {
			continue
		}
		out = append(out, *ToShipmentResponse(s))
	}
	return out
}

func (uc *OrderUseCase) publishOrder(ctx context.Context, actor session.Identity, typ string, o *entity.Order) {
	uc.events.Publish(ctx, ports.Event{Type: typ, EntityID: o.ID, Code: o.Code, StoreID: o.StoreID,
		Status: string(o.Status), Actor: actor.Username, At: uc.now()})
}

func (uc *OrderUseCase) publishShipment(ctx context.Context, actor session.Identity, typ string, s *entity.Shipment) {
	uc.events.Publish(ctx, ports.Event{Type: typ, EntityID: s.ID, Code: s.Code, StoreID: s.StoreID,
		Status: string(s.Status), Actor: actor.Username, At: uc.now()})
}

// canSee el personal de tienda solo ve su tienda; sin tienda asignada, lo que creó.
func canSee(actor session.Identity, o *entity.Order) bool {
	if !actor.Role.StoreScoped() {
		return true
	}
	if actor.StoreID == "" {
		return o.CreatedBy == actor.UserID
	}
	return o.StoreID == actor.StoreID
}

func canSeeShipment(actor session.Identity, s *entity.Shipment) bool {
	if !actor.Role.StoreScoped() {
		return true
	}
	return actor.StoreID != "" && s.StoreID == actor.StoreID
}

// kitchenSide procesar y despachar son acciones de cocina y coordinación, no de tienda.
func kitchenSide(actor session.Identity) error {
	if actor.Role.StoreScoped() {
		return fmt.Errorf("%w: acción reservada a cocina central y coordinación", domain.ErrForbidden)
	}
	return nil
}

func getOrder(ctx context.Context, r repository.Repos, id string) (*entity.Order, error) {
	o, err := r.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, notFound("pedido", id)
	}
	return o, nil
}

func getShipment(ctx context.Context, r repository.Repos, id string) (*entity.Shipment, error) {
	s, err := r.Shipments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, notFound("envío", id)
	}
	return s, nil
}

func parseOrderStatus(s string) (entity.OrderStatus, error) {
	switch st := entity.OrderStatus(s); st {
	case entity.OrderPending, entity.OrderProcessing, entity.OrderShipping, entity.OrderDelivered:
		return st, nil
	}
	return "", fmt.Errorf("%w: estado de pedido %q", domain.ErrInvalidInput, s)
}

func parseShipmentStatus(s string) (entity.ShipmentStatus, error) {
	switch st := entity.ShipmentStatus(s); st {
	case entity.ShipmentPreparing, entity.ShipmentInTransit, entity.ShipmentDelivered:
		return st, nil
	}
	return "", fmt.Errorf("%w: estado de envío %q", domain.ErrInvalidInput, s)
}

// ToOrderResponse mapea el pedido; withLines incluye las líneas.
func ToOrderResponse(o *entity.Order, withLines bool) *dto.OrderResponse {
	out := &dto.OrderResponse{
		ID:            o.ID,
		Code:          o.Code,
		StoreID:       o.StoreID,
		Store:         o.StoreName,
		OrderDate:     o.OrderDate,
		DeliveryDate:  o.DeliveryDate,
		TotalQuantity: o.TotalQuantity,
		Items:         o.ItemCount,
		Status:        string(o.Status),
		Actions:       actionNames(wf.AvailableOrderActions(o.Status)),
	}
	if withLines {
		for _, it := range o.Items {
			out.Lines = append(out.Lines, dto.OrderItemDTO{ProductID: it.ProductID, ProductName: it.ProductName, Quantity: it.Quantity})
		}
	}
	return out
}

// ToShipmentResponse mapea el envío con sus acciones.
func ToShipmentResponse(s *entity.Shipment) *dto.ShipmentResponse {
	return &dto.ShipmentResponse{
		ID:             s.ID,
		Code:           s.Code,
		OrderID:        s.OrderID,
		OrderCode:      s.OrderCode,
		StoreID:        s.StoreID,
		Store:          s.StoreName,
		DeliveryStatus: string(s.Status),
		CreatedAt:      s.CreatedAt,
		ReceivedDate:   s.ReceivedAt,
		Actions:        actionNames(wf.AvailableShipmentActions(s.Status)),
	}
}

func actionNames(actions []wf.Action) []string {
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		out = append(out, string(a))
	}
	return out
}
