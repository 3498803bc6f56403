package workflow_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/CentralKitchen-api/internal/application/dto"
	"github.com/jhoicas/CentralKitchen-api/internal/application/ports"
	"github.com/jhoicas/CentralKitchen-api/internal/application/workflow"
	"github.com/jhoicas/CentralKitchen-api/internal/domain"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/session"
	"github.com/jhoicas/CentralKitchen-api/internal/infrastructure/memory"
)

var (
	coordinator = session.Identity{UserID: "u-coord", Username: "coordinator", Role: entity.RoleSupplyCoordinator}
	kitchen     = session.Identity{UserID: "u-kitchen", Username: "kitchen", Role: entity.RoleCentralKitchenStaff}
	staffD1     = session.Identity{UserID: "u-staff", Username: "staff_d1", Role: entity.RoleFranchiseStoreStaff, StoreID: "st1", StoreName: "District 1 Store"}
	staffD3     = session.Identity{UserID: "u-staff3", Username: "staff_d3", Role: entity.RoleFranchiseStoreStaff, StoreID: "st3", StoreName: "District 3 Store"}
)

// recorder publicador que guarda los eventos.
type recorder struct {
	mu     sync.Mutex
	events []ports.Event
}

func (r *recorder) Publish(_ context.Context, e ports.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func newStore(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.NewStore()
	ctx := context.Background()
	repos := s.Repos()
	require.NoError(t, repos.Stores.Create(ctx, &entity.FranchiseStore{ID: "st1", Code: "ST-001", Name: "District 1 Store"}))
	require.NoError(t, repos.Stores.Create(ctx, &entity.FranchiseStore{ID: "st3", Code: "ST-002", Name: "District 3 Store"}))
	return s
}

func newOrders(t *testing.T) (*workflow.OrderUseCase, *memory.Store, *recorder) {
	t.Helper()
	s := newStore(t)
	rec := &recorder{}
	return workflow.NewOrderUseCase(s.Repos(), s, rec, nil), s, rec
}

func orderFor(storeID string, qty ...int) dto.CreateOrderRequest {
	in := dto.CreateOrderRequest{StoreID: storeID, DeliveryDate: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)}
	for _, q := range qty {
		in.Items = append(in.Items, dto.OrderItemDTO{ProductName: "Croissant", Quantity: q})
	}
	return in
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateOrder_PendingConTotales(t *testing.T) {
	uc, _, rec := newOrders(t)
	out, err := uc.Create(context.Background(), coordinator, orderFor("st1", 10, 5))
	require.NoError(t, err)

	assert.Equal(t, "SO-2401", out.Code)
	assert.Equal(t, string(entity.OrderPending), out.Status)
	assert.Equal(t, 15, out.TotalQuantity)
	assert.Equal(t, 2, out.Items)
	assert.Equal(t, "District 1 Store", out.Store)
	assert.Equal(t, []string{"process"}, out.Actions)
	assert.Equal(t, []string{ports.EventOrderCreated}, rec.types())
}

func TestCreateOrder_PersonalDeTienda(t *testing.T) {
	uc, _, _ := newOrders(t)
	ctx := context.Background()

	out, err := uc.Create(ctx, staffD1, orderFor("", 3))
	require.NoError(t, err)
	assert.Equal(t, "st1", out.StoreID, "toma la tienda de la sesión")

	_, err = uc.Create(ctx, staffD1, orderFor("st3", 3))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateOrder_Rechazos(t *testing.T) {
	uc, _, _ := newOrders(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, coordinator, orderFor("st1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin líneas")
	_, err = uc.Create(ctx, coordinator, orderFor("st1", 0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")
	_, err = uc.Create(ctx, coordinator, orderFor("", 1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin tienda")
	_, err = uc.Create(ctx, coordinator, orderFor("nope", 1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderLifecycle_ProcessShipConfirm(t *testing.T) {
	uc, s, rec := newOrders(t)
	ctx := context.Background()

	o, err := uc.Create(ctx, coordinator, orderFor("st1", 10))
	require.NoError(t, err)

	p, err := uc.Process(ctx, kitchen, o.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.OrderProcessing), p.Status)

	shipped, err := uc.Ship(ctx, kitchen, o.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.OrderShipping), shipped.Order.Status)
	assert.Equal(t, "SH-1102", shipped.Shipment.Code)
	assert.Equal(t, string(entity.ShipmentPreparing), shipped.Shipment.DeliveryStatus)
	assert.Nil(t, shipped.Shipment.ReceivedDate)

	_, err = uc.DispatchShipment(ctx, kitchen, shipped.Shipment.ID)
	require.NoError(t, err)

	done, err := uc.ConfirmDelivery(ctx, staffD1, shipped.Shipment.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.OrderDelivered), done.Order.Status)
	require.NotNil(t, done.Shipment)
	assert.Equal(t, string(entity.ShipmentDelivered), done.Shipment.DeliveryStatus)
	assert.NotNil(t, done.Shipment.ReceivedDate)

	list, err := s.Repos().Shipments.List(ctx, repository.ShipmentFilter{OrderID: o.ID})
	require.NoError(t, err)
	assert.Len(t, list, 1, "exactamente un envío por pedido")

	assert.Equal(t, []string{
		ports.EventOrderCreated, ports.EventOrderProcessed, ports.EventOrderShipped,
		ports.EventShipmentDispatched, ports.EventShipmentDelivered, ports.EventOrderDelivered,
	}, rec.types())
}

func TestOrderLifecycle_DeliverConfirmaElEnvio(t *testing.T) {
	uc, s, _ := newOrders(t)
	ctx := context.Background()
	o, err := uc.Create(ctx, coordinator, orderFor("st1", 4))
	require.NoError(t, err)
	_, err = uc.Process(ctx, kitchen, o.ID)
	require.NoError(t, err)
	_, err = uc.Ship(ctx, kitchen, o.ID)
	require.NoError(t, err)

	out, err := uc.Deliver(ctx, staffD1, o.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.OrderDelivered), out.Order.Status)
	require.NotNil(t, out.Shipment)

	list, err := s.Repos().Shipments.List(ctx, repository.ShipmentFilter{OrderID: o.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.ShipmentDelivered, list[0].Status)
	assert.NotNil(t, list[0].ReceivedAt)
}

func TestOrderTransitions_FueraDeOrden(t *testing.T) {
	uc, _, _ := newOrders(t)
	ctx := context.Background()
	o, err := uc.Create(ctx, coordinator, orderFor("st1", 1))
	require.NoError(t, err)

	_, err = uc.Ship(ctx, kitchen, o.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "ship desde pending")
	_, err = uc.Deliver(ctx, kitchen, o.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "deliver desde pending")

	_, err = uc.Process(ctx, staffD1, o.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden, "la tienda no procesa")

	_, err = uc.Process(ctx, kitchen, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteOrder_SoloPending(t *testing.T) {
	uc, _, _ := newOrders(t)
	ctx := context.Background()
	a, err := uc.Create(ctx, coordinator, orderFor("st1", 1))
	require.NoError(t, err)
	b, err := uc.Create(ctx, coordinator, orderFor("st1", 1))
	require.NoError(t, err)
	_, err = uc.Process(ctx, kitchen, b.ID)
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, coordinator, a.ID))
	assert.ErrorIs(t, uc.Delete(ctx, coordinator, b.ID), domain.ErrInvalidTransition)
	_, err = uc.Get(ctx, coordinator, a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListOrders_PersonalVeSoloSuTienda(t *testing.T) {
	uc, _, _ := newOrders(t)
	ctx := context.Background()
	_, err := uc.Create(ctx, coordinator, orderFor("st1", 1))
	require.NoError(t, err)
	other, err := uc.Create(ctx, coordinator, orderFor("st3", 1))
	require.NoError(t, err)

	all, err := uc.List(ctx, coordinator, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "SO-2402", all[0].Code, "más recientes primero")

	mine, err := uc.List(ctx, staffD1, "", "st3")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "st1", mine[0].StoreID)

	_, err = uc.Get(ctx, staffD1, other.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.List(ctx, coordinator, "cancelled", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestShipments_FiltradosPorTienda(t *testing.T) {
	uc, _, _ := newOrders(t)
	ctx := context.Background()
	for _, st := range []string{"st1", "st3"} {
		o, err := uc.Create(ctx, coordinator, orderFor(st, 1))
		require.NoError(t, err)
		_, err = uc.Process(ctx, kitchen, o.ID)
		require.NoError(t, err)
		_, err = uc.Ship(ctx, kitchen, o.ID)
		require.NoError(t, err)
	}
	all, err := uc.ListShipments(ctx, kitchen, "preparing")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := uc.ListShipments(ctx, staffD3, "")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "st3", mine[0].StoreID)

	var d1 string
	for _, sh := range all {
		if sh.StoreID == "st1" {
			d1 = sh.ID
		}
	}
	_, err = uc.ConfirmDelivery(ctx, staffD3, d1)
	assert.ErrorIs(t, err, domain.ErrForbidden, "envío de otra tienda")
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidad de la confirmación de entrega
// ──────────────────────────────────────────────────────────────────────────────

var errBoom = errors.New("fallo simulado")

type failingOrders struct{ repository.OrderRepository }

func (failingOrders) Update(context.Context, *entity.Order) error { return errBoom }

func (failingOrders) Transition(context.Context, *entity.Order, repository.Transition) error {
	return errBoom
}

// failingTx ejecuta sobre el store pero con un repositorio de pedidos que falla al actualizar.
type failingTx struct{ store *memory.Store }

func (f failingTx) Run(ctx context.Context, fn func(repository.Repos) error) error {
	return f.store.Run(ctx, func(r repository.Repos) error {
		r.Orders = failingOrders{r.Orders}
		return fn(r)
	})
}

func TestConfirmDelivery_FalloDelPedidoNoDejaEnvioEntregado(t *testing.T) {
	uc, s, _ := newOrders(t)
	ctx := context.Background()
	o, err := uc.Create(ctx, coordinator, orderFor("st1", 2))
	require.NoError(t, err)
	_, err = uc.Process(ctx, kitchen, o.ID)
	require.NoError(t, err)
	shipped, err := uc.Ship(ctx, kitchen, o.ID)
	require.NoError(t, err)

	broken := workflow.NewOrderUseCase(s.Repos(), failingTx{store: s}, nil, nil)
	_, err = broken.ConfirmDelivery(ctx, kitchen, shipped.Shipment.ID)
	assert.ErrorIs(t, err, errBoom)

	sh, err := s.Repos().Shipments.GetByID(ctx, shipped.Shipment.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ShipmentPreparing, sh.Status, "el envío no cambia")
	assert.Nil(t, sh.ReceivedAt)

	ord, err := s.Repos().Orders.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderShipping, ord.Status)
}

func TestShip_FalloNoCreaEnvio(t *testing.T) {
	uc, s, _ := newOrders(t)
	ctx := context.Background()
	o, err := uc.Create(ctx, coordinator, orderFor("st1", 2))
	require.NoError(t, err)
	_, err = uc.Process(ctx, kitchen, o.ID)
	require.NoError(t, err)

	broken := workflow.NewOrderUseCase(s.Repos(), failingTx{store: s}, nil, nil)
	_, err = broken.Ship(ctx, kitchen, o.ID)
	assert.ErrorIs(t, err, errBoom)

	n, err := s.Repos().Shipments.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

// ──────────────────────────────────────────────────────────────────────────────
// Producción
// ──────────────────────────────────────────────────────────────────────────────

func newProduction(t *testing.T) (*workflow.ProductionUseCase, *recorder) {
	t.Helper()
	s := memory.NewStore()
	rec := &recorder{}
	return workflow.NewProductionUseCase(s.Repos(), s, rec, nil), rec
}

func plan(qty int) dto.CreatePlanRequest {
	return dto.CreatePlanRequest{ProductName: "Croissant", PlannedDate: time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC), Quantity: qty}
}

func TestStartPlan_CreaUnLote(t *testing.T) {
	uc, rec := newProduction(t)
	ctx := context.Background()

	p, err := uc.CreatePlan(ctx, kitchen, plan(500))
	require.NoError(t, err)
	assert.Equal(t, "PP-001", p.Code)
	assert.Equal(t, []string{"start-production"}, p.Actions)

	out, err := uc.StartPlan(ctx, kitchen, p.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.PlanInProgress), out.Plan.Status)
	assert.Equal(t, "PB-1046", out.Batch.BatchCode)
	assert.Equal(t, "Croissant", out.Batch.ProductName)
	assert.Equal(t, 500, out.Batch.Quantity)
	assert.Equal(t, string(entity.BatchInProgress), out.Batch.Status)
	assert.Equal(t, p.ID, out.Batch.PlanID)

	_, err = uc.StartPlan(ctx, kitchen, p.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "no se inicia dos veces")

	batches, err := uc.ListBatches(ctx, "", p.ID)
	require.NoError(t, err)
	assert.Len(t, batches, 1)

	done, err := uc.CompletePlan(ctx, kitchen, p.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.PlanCompleted), done.Status)
	assert.Empty(t, done.Actions)

	assert.Equal(t, []string{ports.EventPlanCreated, ports.EventPlanStarted, ports.EventBatchCreated, ports.EventPlanCompleted}, rec.types())
}

func TestCreatePlan_Validacion(t *testing.T) {
	uc, _ := newProduction(t)
	_, err := uc.CreatePlan(context.Background(), kitchen, plan(0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.CreatePlan(context.Background(), kitchen, dto.CreatePlanRequest{Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeletePlan_SoloPlanned(t *testing.T) {
	uc, _ := newProduction(t)
	ctx := context.Background()
	a, err := uc.CreatePlan(ctx, kitchen, plan(10))
	require.NoError(t, err)
	b, err := uc.CreatePlan(ctx, kitchen, plan(10))
	require.NoError(t, err)
	_, err = uc.StartPlan(ctx, kitchen, b.ID)
	require.NoError(t, err)

	require.NoError(t, uc.DeletePlan(ctx, kitchen, a.ID))
	assert.ErrorIs(t, uc.DeletePlan(ctx, kitchen, b.ID), domain.ErrInvalidTransition)
}

func TestDeletePlan_PublicaEvento(t *testing.T) {
	uc, rec := newProduction(t)
	ctx := context.Background()
	p, err := uc.CreatePlan(ctx, kitchen, plan(10))
	require.NoError(t, err)

	require.NoError(t, uc.DeletePlan(ctx, kitchen, p.ID))
	assert.Equal(t, []string{ports.EventPlanCreated, ports.EventPlanDeleted}, rec.types())
	last := rec.events[len(rec.events)-1]
	assert.Equal(t, p.ID, last.EntityID)
	assert.Equal(t, "PP-001", last.Code)
	assert.Equal(t, "kitchen", last.Actor)
}

func TestBatch_QualityCheck(t *testing.T) {
	uc, _ := newProduction(t)
	ctx := context.Background()
	b, err := uc.CreateBatch(ctx, kitchen, dto.CreateBatchRequest{ProductName: "Baguette", Quantity: 200})
	require.NoError(t, err)
	assert.Equal(t, []string{"quality-check", "complete"}, b.Actions)

	qc, err := uc.QualityCheck(ctx, kitchen, b.ID, dto.QualityCheckRequest{Passed: false})
	require.NoError(t, err)
	assert.Equal(t, string(entity.BatchQualityCheck), qc.Status)

	_, err = uc.QualityCheck(ctx, kitchen, b.ID, dto.QualityCheckRequest{Passed: false})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "quality-check no se reingresa")

	done, err := uc.QualityCheck(ctx, kitchen, b.ID, dto.QualityCheckRequest{Passed: true})
	require.NoError(t, err)
	assert.Equal(t, string(entity.BatchCompleted), done.Status)
	assert.NotNil(t, done.CompletedAt)

	_, err = uc.CompleteBatch(ctx, kitchen, b.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "un lote completado no se reabre")
	_, err = uc.SendToQualityCheck(ctx, kitchen, b.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBatch_CompleteDirecto(t *testing.T) {
	uc, _ := newProduction(t)
	ctx := context.Background()
	b, err := uc.CreateBatch(ctx, kitchen, dto.CreateBatchRequest{ProductName: "Muffin", Quantity: 50})
	require.NoError(t, err)

	out, err := uc.CompleteBatch(ctx, kitchen, b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.BatchCompleted), out.Status)

	list, err := uc.ListBatches(ctx, "completed", "")
	require.NoError(t, err)
	assert.Len(t, list, 1)
	_, err = uc.ListBatches(ctx, "cancelled", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones que llegan al repositorio
// ──────────────────────────────────────────────────────────────────────────────

// transitionLog anota cada Transition antes de delegar en memoria.
type transitionLog struct {
	mu  sync.Mutex
	got []repository.Transition
}

func (l *transitionLog) add(t repository.Transition) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.got = append(l.got, t)
}

func (l *transitionLog) list() []repository.Transition {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]repository.Transition(nil), l.got...)
}

type loggedOrders struct {
	repository.OrderRepository
	log *transitionLog
}

func (o loggedOrders) Transition(ctx context.Context, ord *entity.Order, t repository.Transition) error {
	o.log.add(t)
	return o.OrderRepository.Transition(ctx, ord, t)
}

type loggedShipments struct {
	repository.ShipmentRepository
	log *transitionLog
}

func (s loggedShipments) Transition(ctx context.Context, sh *entity.Shipment, t repository.Transition) error {
	s.log.add(t)
	return s.ShipmentRepository.Transition(ctx, sh, t)
}

type loggedPlans struct {
	repository.ProductionPlanRepository
	log *transitionLog
}

func (p loggedPlans) Transition(ctx context.Context, pl *entity.ProductionPlan, t repository.Transition) error {
	p.log.add(t)
	return p.ProductionPlanRepository.Transition(ctx, pl, t)
}

type loggedBatches struct {
	repository.ProductionBatchRepository
	log *transitionLog
}

func (b loggedBatches) Transition(ctx context.Context, batch *entity.ProductionBatch, t repository.Transition) error {
	b.log.add(t)
	return b.ProductionBatchRepository.Transition(ctx, batch, t)
}

type loggingTx struct {
	store *memory.Store
	log   *transitionLog
}

func (l loggingTx) Run(ctx context.Context, fn func(repository.Repos) error) error {
	return l.store.Run(ctx, func(r repository.Repos) error {
		r.Orders = loggedOrders{r.Orders, l.log}
		r.Shipments = loggedShipments{r.Shipments, l.log}
		r.Plans = loggedPlans{r.Plans, l.log}
		r.Batches = loggedBatches{r.Batches, l.log}
		return fn(r)
	})
}

func TestTransiciones_PedidoYEnvio(t *testing.T) {
	s := newStore(t)
	log := &transitionLog{}
	uc := workflow.NewOrderUseCase(s.Repos(), loggingTx{store: s, log: log}, nil, nil)
	ctx := context.Background()

	a, err := uc.Create(ctx, coordinator, orderFor("st1", 2))
	require.NoError(t, err)
	_, err = uc.Process(ctx, kitchen, a.ID)
	require.NoError(t, err)
	_, err = uc.Ship(ctx, kitchen, a.ID)
	require.NoError(t, err)
	_, err = uc.Deliver(ctx, staffD1, a.ID)
	require.NoError(t, err)

	b, err := uc.Create(ctx, coordinator, orderFor("st1", 1))
	require.NoError(t, err)
	_, err = uc.Process(ctx, kitchen, b.ID)
	require.NoError(t, err)
	shipped, err := uc.Ship(ctx, kitchen, b.ID)
	require.NoError(t, err)
	_, err = uc.DispatchShipment(ctx, kitchen, shipped.Shipment.ID)
	require.NoError(t, err)
	_, err = uc.ConfirmDelivery(ctx, staffD1, shipped.Shipment.ID)
	require.NoError(t, err)

	assert.Equal(t, []repository.Transition{
		repository.OrderProcess, repository.OrderShip, repository.OrderDeliver, repository.ShipmentDelivered,
		repository.OrderProcess, repository.OrderShip, repository.ShipmentDispatch, repository.ShipmentDelivered, repository.OrderDeliver,
	}, log.list())
}

func TestTransiciones_Produccion(t *testing.T) {
	s := memory.NewStore()
	log := &transitionLog{}
	uc := workflow.NewProductionUseCase(s.Repos(), loggingTx{store: s, log: log}, nil, nil)
	ctx := context.Background()

	p, err := uc.CreatePlan(ctx, kitchen, plan(20))
	require.NoError(t, err)
	started, err := uc.StartPlan(ctx, kitchen, p.ID)
	require.NoError(t, err)
	_, err = uc.SendToQualityCheck(ctx, kitchen, started.Batch.ID)
	require.NoError(t, err)
	_, err = uc.QualityCheck(ctx, kitchen, started.Batch.ID, dto.QualityCheckRequest{Passed: true})
	require.NoError(t, err)
	_, err = uc.CompletePlan(ctx, kitchen, p.ID)
	require.NoError(t, err)

	manual, err := uc.CreateBatch(ctx, kitchen, dto.CreateBatchRequest{ProductName: "Bagel", Quantity: 40})
	require.NoError(t, err)
	_, err = uc.QualityCheck(ctx, kitchen, manual.ID, dto.QualityCheckRequest{Passed: false})
	require.NoError(t, err)
	_, err = uc.CompleteBatch(ctx, kitchen, manual.ID)
	require.NoError(t, err)

	assert.Equal(t, []repository.Transition{
		repository.PlanStart, repository.BatchSendToQC, repository.BatchQualityPassed, repository.PlanComplete,
		repository.BatchQualityFailed, repository.BatchComplete,
	}, log.list())
}
