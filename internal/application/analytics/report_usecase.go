package analytics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jhoicas/CentralKitchen-api/internal/domain"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/session"
	wf "github.com/jhoicas/CentralKitchen-api/internal/domain/workflow"
)

// Tipos de reporte disponibles.
const (
	ReportOrders     = "orders"
	ReportProduction = "production"
	ReportInventory  = "inventory"
)

// ReportUseCase arma los reportes del dashboard y delega el formato en ReportRenderer.
type ReportUseCase struct {
	repos    repository.Repos
	renderer ReportRenderer
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repos repository.Repos, renderer ReportRenderer) *ReportUseCase {
	return &ReportUseCase{repos: repos, renderer: renderer}
}

// Generate devuelve los bytes del documento y su nombre de archivo.
//
// Retorna domain.ErrInvalidInput si kind no es orders, production o inventory.
func (uc *ReportUseCase) Generate(ctx context.Context, actor session.Identity, kind string) ([]byte, string, error) {
	var (
		rep Report
		err error
	)
	switch kind {
	case ReportOrders:
		rep, err = uc.ordersReport(ctx, actor)
	case ReportProduction:
		rep, err = uc.productionReport(ctx)
	case ReportInventory:
		rep, err = uc.inventoryReport(ctx)
	default:
		return nil, "", fmt.Errorf("%w: tipo de reporte %q", domain.ErrInvalidInput, kind)
	}
	if err != nil {
		return nil, "", fmt.Errorf("reporte %s: %w", kind, err)
	}
	now := time.Now()
	rep.Kind = kind
	rep.GeneratedAt = now
	rep.GeneratedBy = actor.Name
	if rep.GeneratedBy == "" {
		rep.GeneratedBy = actor.Username
	}

	doc, err := uc.renderer.Render(ctx, rep)
	if err != nil {
		return nil, "", fmt.Errorf("reporte %s: generación fallida: %w", kind, err)
	}
	return doc, fmt.Sprintf("%s_%s.pdf", kind, now.Format("20060102")), nil
}

func (uc *ReportUseCase) ordersReport(ctx context.Context, actor session.Identity) (Report, error) {
	f := repository.OrderFilter{}
	if actor.Role.StoreScoped() {
		f.StoreID = actor.StoreID
	}
	orders, err := uc.repos.Orders.List(ctx, f)
	if err != nil {
		return Report{}, err
	}
	rep := Report{
		Title:   "Store Orders",
		Columns: []string{"Order", "Store", "Order Date", "Delivery", "Qty", "Status"},
		Widths:  []int{2, 3, 2, 2, 1, 2},
	}
	byStatus := map[entity.OrderStatus]int{}
	total := 0
	for _, o := range orders {
		rep.Rows = append(rep.Rows, []string{
			o.Code, o.StoreName, o.OrderDate.Format("2006-01-02"), o.DeliveryDate.Format("2006-01-02"),
			strconv.Itoa(o.TotalQuantity), string(o.Status),
		})
		byStatus[o.Status]++
		total += o.TotalQuantity
	}
	rep.Summary = []SummaryLine{{"Orders", strconv.Itoa(len(orders))}, {"Total quantity", strconv.Itoa(total)}}
	for _, s := range []entity.OrderStatus{entity.OrderPending, entity.OrderProcessing, entity.OrderShipping, entity.OrderDelivered} {
		rep.Summary = append(rep.Summary, SummaryLine{string(s), strconv.Itoa(byStatus[s])})
	}
	return rep, nil
}

func (uc *ReportUseCase) productionReport(ctx context.Context) (Report, error) {
	batches, err := uc.repos.Batches.List(ctx, repository.BatchFilter{})
	if err != nil {
		return Report{}, err
	}
	plans, err := uc.repos.Plans.List(ctx, "")
	if err != nil {
		return Report{}, err
	}
	rep := Report{
		Title:   "Production",
		Columns: []string{"Batch", "Product", "Qty", "Started", "Status"},
		Widths:  []int{2, 4, 1, 3, 2},
	}
	produced := 0
	for _, b := range batches {
		rep.Rows = append(rep.Rows, []string{
			b.BatchCode, b.ProductName, strconv.Itoa(b.Quantity), b.StartedAt.Format("2006-01-02 15:04"), string(b.Status),
		})
		if b.Status == entity.BatchCompleted {
			produced += b.Quantity
		}
	}
	planned := 0
	for _, p := range plans {
		if p.Status == entity.PlanPlanned {
			planned++
		}
	}
	rep.Summary = []SummaryLine{
		{"Batches", strconv.Itoa(len(batches))},
		{"Units completed", strconv.Itoa(produced)},
		{"Plans pending start", strconv.Itoa(planned)},
	}
	return rep, nil
}

func (uc *ReportUseCase) inventoryReport(ctx context.Context) (Report, error) {
	ingredients, err := uc.repos.Ingredients.List(ctx)
	if err != nil {
		return Report{}, err
	}
	products, err := uc.repos.Products.List(ctx, repository.ProductFilter{})
	if err != nil {
		return Report{}, err
	}
	rep := Report{
		Title:   "Inventory",
		Columns: []string{"Code", "Item", "Qty", "Min", "Location", "Status"},
		Widths:  []int{2, 3, 1, 1, 3, 2},
	}
	low := 0
	for _, ing := range ingredients {
		status := wf.IngredientStatus(ing)
		if status != entity.StockInStock {
			low++
		}
		rep.Rows = append(rep.Rows, []string{
			ing.Code, ing.Name, fmt.Sprintf("%d %s", ing.Quantity, ing.Unit), strconv.Itoa(ing.MinStock), ing.Location, status,
		})
	}
	for _, p := range products {
		status := wf.ClassifyProduct(p.Quantity, p.MinStock)
		if status != entity.StockAvailable {
			low++
		}
		rep.Rows = append(rep.Rows, []string{
			p.Code, p.Name, fmt.Sprintf("%d %s", p.Quantity, p.Unit), strconv.Itoa(p.MinStock), p.Location, status,
		})
	}
	rep.Summary = []SummaryLine{
		{"Ingredients", strconv.Itoa(len(ingredients))},
		{"Products", strconv.Itoa(len(products))},
		{"Below minimum", strconv.Itoa(low)},
	}
	return rep, nil
}
