package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/CentralKitchen-api/internal/application/auth"
	"github.com/jhoicas/CentralKitchen-api/internal/application/dto"
	"github.com/jhoicas/CentralKitchen-api/internal/application/inventory"
	"github.com/jhoicas/CentralKitchen-api/internal/application/workflow"
	"github.com/jhoicas/CentralKitchen-api/internal/domain"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/session"
	"github.com/jhoicas/CentralKitchen-api/internal/infrastructure/remote"
	"github.com/jhoicas/CentralKitchen-api/pkg/config"
)

func newClient(t *testing.T, h http.HandlerFunc) (*remote.Client, *remote.SessionStore) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	store := remote.NewSessionStore(filepath.Join(t.TempDir(), "session.json"))
	return remote.NewClient(config.BackendConfig{BaseURL: srv.URL + "/"}, store, nil), store
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestSessionStore_SinArchivo(t *testing.T) {
	s := remote.NewSessionStore(filepath.Join(t.TempDir(), "nada.json"))
	_, err := s.Load()
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestSessionStore_ArchivoCorruptoSeDescarta(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{no-json"), 0o600))

	_, err := remote.NewSessionStore(path).Load()
	assert.ErrorIs(t, err, domain.ErrNoSession)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "el archivo corrupto debe eliminarse")
}

func TestSessionStore_GuardarYRecargar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "session.json")
	require.NoError(t, remote.NewSessionStore(path).Save(remote.Session{Token: "t1", UserID: "u1", Role: "Admin"}))

	got, err := remote.NewSessionStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "t1", got.Token)
	assert.Equal(t, "Admin", got.Role)
}

func TestLogin_GuardaTokenYLoEnvia(t *testing.T) {
	var gotAuth atomic.Value
	c, store := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			assert.Empty(t, r.Header.Get("Authorization"))
			writeJSON(w, 200, map[string]any{"success": true, "data": map[string]string{
				"userId": "u1", "username": "admin", "role": "Admin", "token": "abc"}})
		default:
			gotAuth.Store(r.Header.Get("Authorization"))
			writeJSON(w, 200, []any{})
		}
	})
	_, err := c.Login(context.Background(), "admin", "admin")
	require.NoError(t, err)
	cur, err := store.Current()
	require.NoError(t, err)
	assert.Equal(t, "abc", cur.Token)

	_, err = remote.NewRepos(c).Stores.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", gotAuth.Load())
}

func TestRespuesta401_DescartaLaSesion(t *testing.T) {
	c, store := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "token vencido"})
	})
	require.NoError(t, store.Save(remote.Session{Token: "viejo"}))

	_, err := remote.NewRepos(c).Stores.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = store.Current()
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

// ──────────────────────────────────────────────────────────────────────────────
// Decodificación y errores
// ──────────────────────────────────────────────────────────────────────────────

func TestList_SobreYCuerpoCrudo(t *testing.T) {
	stores := []map[string]string{{"storeId": "ST-001", "storeName": "District 1 Store"}}
	for name, body := range map[string]any{
		"envuelto": map[string]any{"success": true, "data": stores},
		"crudo":    stores,
	} {
		t.Run(name, func(t *testing.T) {
			c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) { writeJSON(w, 200, body) })
			got, err := remote.NewRepos(c).Stores.List(context.Background())
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "ST-001", got[0].ID)
			assert.Equal(t, "District 1 Store", got[0].Name)
		})
	}
}

func TestStatus_SeTraduceAErroresDeDominio(t *testing.T) {
	cases := map[int]error{
		400: domain.ErrInvalidInput,
		403: domain.ErrForbidden,
		409: domain.ErrDuplicate,
		422: domain.ErrInvalidInput,
		503: domain.ErrBackendUnavailable,
	}
	for status, want := range cases {
		c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(status) })
		err := remote.NewRepos(c).Stores.Create(context.Background(), &entity.FranchiseStore{ID: "ST-1"})
		assert.ErrorIs(t, err, want, "HTTP %d", status)
	}
}

func TestGetByID_404DevuelveNil(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(404) })
	got, err := remote.NewRepos(c).Products.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBackendCaido_ErrBackendUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := remote.NewClient(config.BackendConfig{BaseURL: srv.URL}, nil, nil)

	_, err := remote.NewRepos(c).Orders.List(context.Background(), repository.OrderFilter{})
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

func TestGetByUsername_IgnoraMayusculas(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ADMIN", r.URL.Query().Get("username"))
		writeJSON(w, 200, []map[string]string{
			{"id": "u2", "userName": "manager", "role": "Manager"},
			{"id": "u1", "userName": "admin", "role": "Admin"},
		})
	})
	u, err := remote.NewRepos(c).Users.GetByUsername(context.Background(), "ADMIN")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, entity.RoleAdmin, u.Role)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escrituras parciales
// ──────────────────────────────────────────────────────────────────────────────

func TestTxRunner_FalloTrasEscrituraEsParcial(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/orders/o1" {
			writeJSON(w, 200, map[string]any{"success": true})
			return
		}
		w.WriteHeader(500)
	})
	err := remote.NewTxRunner(c).Run(context.Background(), func(repos repository.Repos) error {
		if err := repos.Orders.Update(context.Background(), &entity.Order{ID: "o1"}); err != nil {
			return err
		}
		return repos.Shipments.Update(context.Background(), &entity.Shipment{ID: "s1"})
	})
	assert.ErrorIs(t, err, domain.ErrPartialUpdate)
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

func TestTxRunner_FalloSinEscriturasNoEsParcial(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(500) })
	err := remote.NewTxRunner(c).Run(context.Background(), func(repos repository.Repos) error {
		return repos.Orders.Update(context.Background(), &entity.Order{ID: "o1"})
	})
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	assert.False(t, errors.Is(err, domain.ErrPartialUpdate))
}

// ──────────────────────────────────────────────────────────────────────────────
// Directorio
// ──────────────────────────────────────────────────────────────────────────────

func TestDirectory_RolDesconocido(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, map[string]string{"userId": "u9", "username": "chef", "role": "Chef", "token": "x"})
	})
	_, err := remote.NewDirectory(c).Authenticate(context.Background(), "chef", "chef")
	assert.ErrorIs(t, err, domain.ErrUnknownRole)
}

func TestDirectory_Register(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, body["password"], body["confirmPassword"])
		writeJSON(w, 201, map[string]any{"success": true, "data": map[string]string{
			"id": "u10", "userName": body["userName"], "role": body["role"], "storeId": "ST-010"}})
	})
	u, err := remote.NewDirectory(c).Register(context.Background(), auth.Registration{
		Username: "staff_new", Password: "secret1", Role: entity.RoleFranchiseStoreStaff,
	})
	require.NoError(t, err)
	assert.Equal(t, "u10", u.ID)
	assert.Equal(t, entity.RoleFranchiseStoreStaff, u.Role)
	assert.Equal(t, "ST-010", u.StoreID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Paginación
// ──────────────────────────────────────────────────────────────────────────────

// pagedOrders sirve tres pedidos en páginas de dos, ignorando el pageSize pedido.
func pagedOrders(w http.ResponseWriter, r *http.Request) {
	all := []map[string]string{
		{"id": "o1", "storeOrderId": "SO-2401", "status": "pending"},
		{"id": "o2", "storeOrderId": "SO-2402", "status": "pending"},
		{"id": "o3", "storeOrderId": "SO-2403", "status": "delivered"},
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	from, to := (page-1)*2, page*2
	if from > len(all) {
		from = len(all)
	}
	if to > len(all) {
		to = len(all)
	}
	writeJSON(w, 200, map[string]any{
		"success":    true,
		"data":       all[from:to],
		"pagination": map[string]int{"page": page, "pageSize": 2, "total": len(all), "totalPages": 2},
	})
}

func TestList_RecorreTodasLasPaginas(t *testing.T) {
	var pages []string
	var mu sync.Mutex
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		pages = append(pages, r.URL.Query().Get("page"))
		mu.Unlock()
		pagedOrders(w, r)
	})
	got, err := remote.NewRepos(c).Orders.List(context.Background(), repository.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "SO-2403", got[2].Code)
	assert.Equal(t, []string{"1", "2"}, pages)
}

func TestCount_UsaTotalDePaginacion(t *testing.T) {
	c, _ := newClient(t, pagedOrders)
	n, err := remote.NewRepos(c).Orders.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestCount_SinPaginacionCuentaLaColeccion(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, []map[string]string{{"storeId": "ST-001"}, {"storeId": "ST-002"}})
	})
	n, err := remote.NewRepos(c).Stores.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sub-endpoints del backend
// ──────────────────────────────────────────────────────────────────────────────

var kitchenStaff = session.Identity{UserID: "u-kitchen", Username: "kitchen", Role: entity.RoleCentralKitchenStaff}

// backend registra "MÉTODO ruta" y el cuerpo de cada llamada; routes responde por ruta.
type backend struct {
	mu     sync.Mutex
	calls  []string
	bodies map[string]string
	routes map[string]any
}

func newBackend(routes map[string]any) *backend {
	return &backend{bodies: map[string]string{}, routes: routes}
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	key := r.Method + " " + r.URL.Path
	b.mu.Lock()
	b.calls = append(b.calls, key)
	b.bodies[key] = string(raw)
	b.mu.Unlock()
	if body, ok := b.routes[key]; ok {
		writeJSON(w, 200, map[string]any{"success": true, "data": body})
		return
	}
	writeJSON(w, 200, map[string]any{"success": true})
}

func (b *backend) recorded() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

func (b *backend) body(key string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bodies[key]
}

func remoteOrders(t *testing.T, be *backend) *workflow.OrderUseCase {
	t.Helper()
	c, _ := newClient(t, be.ServeHTTP)
	return workflow.NewOrderUseCase(remote.NewRepos(c), remote.NewTxRunner(c), nil, nil)
}

func TestProcess_PostAlSubEndpoint(t *testing.T) {
	be := newBackend(map[string]any{
		"GET /orders/o1": map[string]string{"id": "o1", "storeOrderId": "SO-2401", "storeId": "st1", "status": "pending"},
	})
	out, err := remoteOrders(t, be).Process(context.Background(), kitchenStaff, "o1")
	require.NoError(t, err)
	assert.Equal(t, string(entity.OrderProcessing), out.Status)
	assert.Equal(t, []string{"GET /orders/o1", "POST /orders/o1/process"}, be.recorded())
}

func TestShip_AdoptaElEnvioDelBackend(t *testing.T) {
	be := newBackend(map[string]any{
		"GET /orders/o1": map[string]string{"id": "o1", "storeOrderId": "SO-2401", "storeId": "st1", "status": "processing"},
		"GET /shipments": []any{},
		"GET /orders/o1/shipments": []map[string]string{
			{"id": "sh-remote", "shipmentId": "SH-2000", "orderId": "o1", "deliveryStatus": "preparing"},
		},
	})
	out, err := remoteOrders(t, be).Ship(context.Background(), kitchenStaff, "o1")
	require.NoError(t, err)
	assert.Equal(t, "sh-remote", out.Shipment.ID)
	assert.Equal(t, "SH-2000", out.Shipment.Code)

	calls := be.recorded()
	assert.Contains(t, calls, "POST /orders/o1/ship")
	assert.NotContains(t, calls, "POST /shipments")
	assert.NotContains(t, calls, "PUT /orders/o1")
}

func TestConfirmDelivery_PostDeliveredYDeliverDelPedido(t *testing.T) {
	be := newBackend(map[string]any{
		"GET /shipments/s1": map[string]string{"id": "s1", "shipmentId": "SH-1102", "orderId": "o1", "storeId": "st1", "deliveryStatus": "in-transit"},
		"GET /orders/o1":    map[string]string{"id": "o1", "storeOrderId": "SO-2401", "storeId": "st1", "status": "shipping"},
	})
	_, err := remoteOrders(t, be).ConfirmDelivery(context.Background(), kitchenStaff, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"GET /shipments/s1", "GET /orders/o1", "POST /shipments/s1/delivered", "POST /orders/o1/deliver"}, be.recorded())
}

func TestDispatch_PatchDeEstado(t *testing.T) {
	be := newBackend(map[string]any{
		"GET /shipments/s1": map[string]string{"id": "s1", "shipmentId": "SH-1102", "orderId": "o1", "deliveryStatus": "preparing"},
	})
	_, err := remoteOrders(t, be).DispatchShipment(context.Background(), kitchenStaff, "s1")
	require.NoError(t, err)
	assert.Contains(t, be.recorded(), "PATCH /shipments/s1/status")
	assert.JSONEq(t, `{"status":"in-transit"}`, be.body("PATCH /shipments/s1/status"))
}

func TestQualityCheck_EnviaPassed(t *testing.T) {
	for _, passed := range []bool{true, false} {
		be := newBackend(map[string]any{
			"GET /production/batches/b1": map[string]any{"id": "b1", "batchId": "PB-1046", "productName": "Croissant", "quantity": 10, "status": "in-progress"},
		})
		c, _ := newClient(t, be.ServeHTTP)
		uc := workflow.NewProductionUseCase(remote.NewRepos(c), remote.NewTxRunner(c), nil, nil)

		_, err := uc.QualityCheck(context.Background(), kitchenStaff, "b1", dto.QualityCheckRequest{Passed: passed})
		require.NoError(t, err)
		assert.Equal(t, []string{"GET /production/batches/b1", "POST /production/batches/b1/quality-check"}, be.recorded())
		assert.JSONEq(t, `{"passed":`+strconv.FormatBool(passed)+`}`, be.body("POST /production/batches/b1/quality-check"))
	}
}

func TestCompleteBatchYPlan_SubEndpoints(t *testing.T) {
	be := newBackend(map[string]any{
		"GET /production/batches/b1": map[string]any{"id": "b1", "batchId": "PB-1046", "status": "quality-check"},
		"GET /production/plans/p1":   map[string]any{"id": "p1", "planId": "PP-001", "status": "in-progress"},
	})
	c, _ := newClient(t, be.ServeHTTP)
	uc := workflow.NewProductionUseCase(remote.NewRepos(c), remote.NewTxRunner(c), nil, nil)

	_, err := uc.CompleteBatch(context.Background(), kitchenStaff, "b1")
	require.NoError(t, err)
	_, err = uc.CompletePlan(context.Background(), kitchenStaff, "p1")
	require.NoError(t, err)

	calls := be.recorded()
	assert.Contains(t, calls, "POST /production/batches/b1/complete")
	assert.Contains(t, calls, "PATCH /production/plans/p1/status")
	assert.JSONEq(t, `{"status":"completed"}`, be.body("PATCH /production/plans/p1/status"))
}

func TestStockIn_PatchSinMovimientoRemoto(t *testing.T) {
	be := newBackend(map[string]any{
		"GET /inventory/ingredients/i1": map[string]any{"id": "i1", "ingredientId": "ING-001", "name": "Flour", "quantity": 10, "unitCost": "2"},
	})
	c, _ := newClient(t, be.ServeHTTP)
	uc := inventory.NewStockUseCase(remote.NewRepos(c), remote.NewTxRunner(c), nil, nil)

	out, err := uc.StockIn(context.Background(), kitchenStaff, "i1", dto.StockAdjustRequest{Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, 15, out.Quantity)
	assert.Equal(t, []string{"GET /inventory/ingredients/i1", "PATCH /inventory/ingredients/i1"}, be.recorded())
}

func TestSetProductStock_PatchInventoryStock(t *testing.T) {
	be := newBackend(map[string]any{
		"GET /products/p1": map[string]any{"productId": "p1", "code": "PRD-001", "productName": "Muffin", "quantity": 3, "minStock": 20},
	})
	c, _ := newClient(t, be.ServeHTTP)
	uc := inventory.NewStockUseCase(remote.NewRepos(c), remote.NewTxRunner(c), nil, nil)

	_, err := uc.SetProductStock(context.Background(), kitchenStaff, "p1", dto.SetStockRequest{Quantity: 40})
	require.NoError(t, err)
	assert.Equal(t, []string{"GET /products/p1", "PATCH /inventory/products/p1/stock"}, be.recorded())
	assert.JSONEq(t, `{"quantity":40}`, be.body("PATCH /inventory/products/p1/stock"))
}

func TestTransition_NoSoportadaEsErrInvalidInput(t *testing.T) {
	be := newBackend(nil)
	c, _ := newClient(t, be.ServeHTTP)
	err := remote.NewRepos(c).Orders.Transition(context.Background(), &entity.Order{ID: "o1"}, repository.BatchComplete)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, be.recorded())
}
