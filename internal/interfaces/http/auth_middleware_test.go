package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/CentralKitchen-api/internal/application/usecase"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/rbac"
	apphttp "github.com/jhoicas/CentralKitchen-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/CentralKitchen-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "central-kitchen-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar la identidad
//   - RequirePage para autorizar el acceso a la página
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(page entity.PageID) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	access := usecase.NewAccessService(rbac.Default())
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePage(page, access),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetIdentity(c).Role,
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role entity.Role) string {
	t.Helper()
	sub := pkgjwt.Subject{UserID: testUserID, Username: "tester", Name: "Tester", Role: string(role)}
	if role == entity.RoleFranchiseStoreStaff {
		sub.StoreID, sub.StoreName = "ST-010", "District 10 Store"
	}
	tok, err := pkgjwt.Generate(testJWTSecret, sub, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePage
// ──────────────────────────────────────────────────────────────────────────────

func TestRequirePage_AdminAccedeAUsuarios(t *testing.T) {
	app := buildTestApp(entity.PageUsers)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "Admin", body["role"])
}

func TestRequirePage_KitchenStaffBloqueadoEnUsuarios(t *testing.T) {
	app := buildTestApp(entity.PageUsers)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleCentralKitchenStaff))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequirePage_SupplyCoordinatorSinProduccion(t *testing.T) {
	app := buildTestApp(entity.PageProduction)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleSupplyCoordinator))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequirePage_TablaDeRolesPorPagina(t *testing.T) {
	catalog := rbac.Default()
	for _, page := range entity.AllPages() {
		app := buildTestApp(page)
		for _, role := range entity.AllRoles() {
			resp := doRequest(t, app, tokenForRole(t, role))
			want := http.StatusForbidden
			if catalog.HasPageAccess(role, page) {
				want = http.StatusOK
			}
			assert.Equal(t, want, resp.StatusCode, "%s → %s", role, page)
			resp.Body.Close()
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	resp := doRequest(t, buildTestApp(entity.PageHome), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	resp := doRequest(t, buildTestApp(entity.PageHome), "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_RolDesconocido_Retorna401(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.Subject{UserID: testUserID, Role: "Chef"}, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, buildTestApp(entity.PageHome), "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TiendaEnRolSinTienda_Retorna401(t *testing.T) {
	sub := pkgjwt.Subject{UserID: testUserID, Role: string(entity.RoleManager), StoreID: "ST-001"}
	tok, err := pkgjwt.Generate(testJWTSecret, sub, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, buildTestApp(entity.PageHome), "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ExtraeIdentidad(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		id := apphttp.GetIdentity(c)
		return c.JSON(fiber.Map{"userId": id.UserID, "role": id.Role, "storeId": id.StoreID})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleFranchiseStoreStaff))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["userId"])
	assert.Equal(t, "Franchise Store Staff", body["role"])
	assert.Equal(t, "ST-010", body["storeId"])
}
