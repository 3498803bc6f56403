// Package analytics contiene los casos de uso del dashboard: estadísticas, actividad
// reciente y reportes descargables.
package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/CentralKitchen-api/internal/application/dto"
	"github.com/jhoicas/CentralKitchen-api/internal/application/workflow"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/session"
	wf "github.com/jhoicas/CentralKitchen-api/internal/domain/workflow"
)

const dashboardRecent = 5 // filas de pedidos y lotes recientes en el dashboard

// DashboardUseCase genera el resumen de la página dashboard.
//
// Fuente de datos: los repositorios (consultas read-only). El personal de tienda ve
// solo los pedidos de su tienda.
type DashboardUseCase struct {
	repos repository.Repos
	feed  ActivityFeed
}

// NewDashboardUseCase construye el caso de uso. feed puede ser nil.
func NewDashboardUseCase(repos repository.Repos, feed ActivityFeed) *DashboardUseCase {
	return &DashboardUseCase{repos: repos, feed: feed}
}

// GetStats construye el DashboardStatsDTO.
//
// Cuatro consultas en paralelo:
//  1. pedidos      → TotalOrders, PendingOrders, RecentOrders
//  2. tiendas      → ActiveStores
//  3. lotes        → ProductionBatches (no completados), RecentProduction
//  4. stock        → LowStockItems (ingredientes bajos + productos low/out)
func (uc *DashboardUseCase) GetStats(ctx context.Context, actor session.Identity) (*dto.DashboardStatsDTO, error) {
	var (
		orders      []*entity.Order
		storeCount  int
		batches     []*entity.ProductionBatch
		ingredients []*entity.Ingredient
		products    []*entity.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		f := repository.OrderFilter{}
		if actor.Role.StoreScoped() {
			f.StoreID = actor.StoreID
		}
		list, err := uc.repos.Orders.List(gctx, f)
		if err != nil {
			return fmt.Errorf("dashboard: pedidos: %w", err)
		}
		orders = list
		return nil
	})
	g.Go(func() error {
		n, err := uc.repos.Stores.Count(gctx)
		if err != nil {
			return fmt.Errorf("dashboard: tiendas: %w", err)
		}
		storeCount = n
		return nil
	})
	g.Go(func() error {
		list, err := uc.repos.Batches.List(gctx, repository.BatchFilter{})
		if err != nil {
			return fmt.Errorf("dashboard: lotes: %w", err)
		}
		batches = list
		return nil
	})
	g.Go(func() error {
		ings, err := uc.repos.Ingredients.List(gctx)
		if err != nil {
			return fmt.Errorf("dashboard: ingredientes: %w", err)
		}
		prods, err := uc.repos.Products.List(gctx, repository.ProductFilter{Status: entity.ProductStatusActive})
		if err != nil {
			return fmt.Errorf("dashboard: productos: %w", err)
		}
		ingredients, products = ings, prods
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &dto.DashboardStatsDTO{
		ActiveStores:     storeCount,
		RecentOrders:     []dto.OrderResponse{},
		RecentProduction: []dto.BatchResponse{},
		GeneratedAt:      time.Now(),
	}
	for _, o := range orders {
		if actor.Role.StoreScoped() && actor.StoreID == "" && o.CreatedBy != actor.UserID {
			continue
		}
		out.TotalOrders++
		if o.Status == entity.OrderPending {
			out.PendingOrders++
		}
		if len(out.RecentOrders) < dashboardRecent {
			out.RecentOrders = append(out.RecentOrders, *workflow.ToOrderResponse(o, false))
		}
	}
	for _, b := range batches {
		if b.Status != entity.BatchCompleted {
			out.ProductionBatches++
		}
		if len(out.RecentProduction) < dashboardRecent {
			out.RecentProduction = append(out.RecentProduction, *workflow.ToBatchResponse(b))
		}
	}
	for _, ing := range ingredients {
		if wf.IsLow(ing) {
			out.LowStockItems++
		}
	}
	for _, p := range products {
		if wf.ClassifyProduct(p.Quantity, p.MinStock) != entity.StockAvailable {
			out.LowStockItems++
		}
	}
	return out, nil
}

// Activity últimos eventos de flujo de trabajo que actor puede ver. El límite se aplica
// después del filtro.
func (uc *DashboardUseCase) Activity(actor session.Identity, limit int) []dto.ActivityDTO {
	out := []dto.ActivityDTO{}
	if uc.feed == nil {
		return out
	}
	for _, e := range uc.feed.Recent(0) {
		if limit > 0 && len(out) == limit {
			break
		}
		if !e.VisibleTo(actor) {
			continue
		}
		out = append(out, dto.ActivityDTO{Type: e.Type, EntityID: e.EntityID, Code: e.Code, Status: e.Status, Actor: e.Actor, At: e.At})
	}
	return out
}
