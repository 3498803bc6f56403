package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/CentralKitchen-api/internal/application/analytics"
	"github.com/jhoicas/CentralKitchen-api/internal/application/ports"
	"github.com/jhoicas/CentralKitchen-api/internal/domain"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/session"
	"github.com/jhoicas/CentralKitchen-api/internal/infrastructure/memory"
)

var (
	manager = session.Identity{UserID: "u-mgr", Username: "manager", Name: "Sarah Johnson", Role: entity.RoleManager}
	staffD1 = session.Identity{UserID: "u-staff", Username: "staff_d1", Role: entity.RoleFranchiseStoreStaff, StoreID: "st1"}
)

func seeded(t *testing.T) repository.Repos {
	t.Helper()
	ctx := context.Background()
	r := memory.NewStore().Repos()
	require.NoError(t, r.Stores.Create(ctx, &entity.FranchiseStore{ID: "st1", Name: "District 1 Store"}))
	require.NoError(t, r.Stores.Create(ctx, &entity.FranchiseStore{ID: "st3", Name: "District 3 Store"}))
	require.NoError(t, r.Orders.Create(ctx, &entity.Order{ID: "o1", Code: "SO-2401", StoreID: "st1", StoreName: "District 1 Store", Status: entity.OrderPending, TotalQuantity: 10}))
	require.NoError(t, r.Orders.Create(ctx, &entity.Order{ID: "o2", Code: "SO-2402", StoreID: "st3", StoreName: "District 3 Store", Status: entity.OrderDelivered, TotalQuantity: 5}))
	require.NoError(t, r.Batches.Create(ctx, &entity.ProductionBatch{ID: "b1", BatchCode: "PB-1046", ProductName: "Croissant", Quantity: 100, Status: entity.BatchInProgress, StartedAt: time.Now()}))
	require.NoError(t, r.Batches.Create(ctx, &entity.ProductionBatch{ID: "b2", BatchCode: "PB-1047", ProductName: "Bagel", Quantity: 50, Status: entity.BatchCompleted, StartedAt: time.Now()}))
	require.NoError(t, r.Ingredients.Create(ctx, &entity.Ingredient{ID: "i1", Code: "ING-001", Name: "Flour", Quantity: 2, MinStock: 10}))
	require.NoError(t, r.Ingredients.Create(ctx, &entity.Ingredient{ID: "i2", Code: "ING-002", Name: "Salt", Quantity: 20, MinStock: 10}))
	require.NoError(t, r.Products.Create(ctx, &entity.Product{ID: "p1", Code: "PRD-001", Name: "Muffin", Status: entity.ProductStatusActive, Quantity: 0, MinStock: 20}))
	return r
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestGetStats_Manager(t *testing.T) {
	uc := analytics.NewDashboardUseCase(seeded(t), nil)
	out, err := uc.GetStats(context.Background(), manager)
	require.NoError(t, err)

	assert.Equal(t, 2, out.TotalOrders)
	assert.Equal(t, 1, out.PendingOrders)
	assert.Equal(t, 2, out.ActiveStores)
	assert.Equal(t, 1, out.ProductionBatches, "solo lotes no completados")
	assert.Equal(t, 2, out.LowStockItems)
	assert.Len(t, out.RecentOrders, 2)
	assert.Len(t, out.RecentProduction, 2)
}

func TestGetStats_PersonalDeTienda(t *testing.T) {
	uc := analytics.NewDashboardUseCase(seeded(t), nil)
	out, err := uc.GetStats(context.Background(), staffD1)
	require.NoError(t, err)
	assert.Equal(t, 1, out.TotalOrders)
	require.Len(t, out.RecentOrders, 1)
	assert.Equal(t, "SO-2401", out.RecentOrders[0].Code)
}

type staticFeed []ports.Event

func (f staticFeed) Recent(limit int) []ports.Event {
	if limit > 0 && limit < len(f) {
		return f[:limit]
	}
	return f
}

func TestActivity(t *testing.T) {
	feed := staticFeed{
		{Type: ports.EventOrderShipped, Code: "SO-2401"},
		{Type: ports.EventBatchCompleted, Code: "PB-1046"},
	}
	uc := analytics.NewDashboardUseCase(seeded(t), feed)
	acts := uc.Activity(manager, 1)
	require.Len(t, acts, 1)
	assert.Equal(t, "SO-2401", acts[0].Code)

	assert.Empty(t, analytics.NewDashboardUseCase(seeded(t), nil).Activity(manager, 10))
}

func TestActivity_PersonalDeTiendaNoVeOtrasTiendas(t *testing.T) {
	feed := staticFeed{
		{Type: ports.EventOrderShipped, Code: "SO-2402", StoreID: "st3"},
		{Type: ports.EventShipmentDelivered, Code: "SH-1102", StoreID: "st3"},
		{Type: ports.EventOrderDeleted, Code: "SO-2409"},
		{Type: ports.EventOrderCreated, Code: "SO-2401", StoreID: "st1"},
		{Type: ports.EventBatchCompleted, Code: "PB-1046"},
	}
	uc := analytics.NewDashboardUseCase(seeded(t), feed)

	var codes []string
	for _, a := range uc.Activity(staffD1, 10) {
		codes = append(codes, a.Code)
	}
	assert.Equal(t, []string{"SO-2401", "PB-1046"}, codes)

	one := uc.Activity(staffD1, 1)
	require.Len(t, one, 1, "el límite cuenta solo eventos visibles")
	assert.Equal(t, "SO-2401", one[0].Code)

	assert.Len(t, uc.Activity(manager, 0), 5)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes
// ──────────────────────────────────────────────────────────────────────────────

type captureRenderer struct{ last analytics.Report }

func (c *captureRenderer) Render(_ context.Context, r analytics.Report) ([]byte, error) {
	c.last = r
	return []byte("%PDF-fake"), nil
}

func TestGenerateReport_Inventario(t *testing.T) {
	rend := &captureRenderer{}
	uc := analytics.NewReportUseCase(seeded(t), rend)
	doc, name, err := uc.Generate(context.Background(), manager, analytics.ReportInventory)
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
	assert.Contains(t, name, "inventory_")
	assert.Len(t, rend.last.Rows, 3)
	assert.Equal(t, "Sarah Johnson", rend.last.GeneratedBy)
	assert.Equal(t, analytics.SummaryLine{Label: "Below minimum", Value: "2"}, rend.last.Summary[2])
}

func TestGenerateReport_PedidosDeLaTienda(t *testing.T) {
	rend := &captureRenderer{}
	uc := analytics.NewReportUseCase(seeded(t), rend)
	_, _, err := uc.Generate(context.Background(), staffD1, analytics.ReportOrders)
	require.NoError(t, err)
	require.Len(t, rend.last.Rows, 1)
	assert.Equal(t, "SO-2401", rend.last.Rows[0][0])
}

func TestGenerateReport_TipoDesconocido(t *testing.T) {
	uc := analytics.NewReportUseCase(seeded(t), &captureRenderer{})
	_, _, err := uc.Generate(context.Background(), manager, "sales")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
