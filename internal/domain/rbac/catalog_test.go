package rbac_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/CentralKitchen-api/internal/domain"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/rbac"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de páginas
// ──────────────────────────────────────────────────────────────────────────────

func TestAccessiblePages_TablaFija(t *testing.T) {
	c := rbac.Default()
	cases := map[entity.Role][]entity.PageID{
		entity.RoleAdmin:               {"home", "dashboard", "users", "stores", "recipes", "inventory", "production", "orders"},
		entity.RoleManager:             {"home", "dashboard", "recipes", "inventory", "production", "orders", "stores"},
		entity.RoleFranchiseStoreStaff: {"home", "dashboard", "inventory", "orders", "recipes"},
		entity.RoleCentralKitchenStaff: {"home", "dashboard", "production", "inventory", "orders", "recipes"},
		entity.RoleSupplyCoordinator:   {"home", "dashboard", "orders", "inventory", "stores"},
	}
	for role, want := range cases {
		assert.Equal(t, want, c.AccessiblePages(role), "páginas de %s", role)
	}
}

func TestAccessiblePages_NoVaciasYDentroDeLaEnumeracion(t *testing.T) {
	c := rbac.Default()
	for _, role := range entity.AllRoles() {
		pages := c.AccessiblePages(role)
		assert.NotEmpty(t, pages, "rol %s", role)
		for _, p := range pages {
			_, ok := entity.ParsePage(string(p))
			assert.True(t, ok, "página %s fuera de la enumeración", p)
		}
	}
}

func TestHasPageAccess_CoincideConAccessiblePages(t *testing.T) {
	c := rbac.Default()
	for _, role := range entity.AllRoles() {
		pages := c.AccessiblePages(role)
		for _, p := range entity.AllPages() {
			assert.Equal(t, contains(pages, p), c.HasPageAccess(role, p), "%s/%s", role, p)
		}
	}
}

func TestDesconocidos_SinPanicYVacios(t *testing.T) {
	c := rbac.Default()
	assert.False(t, c.HasPageAccess("Chef", entity.PageHome))
	assert.False(t, c.HasPageAccess(entity.RoleAdmin, "billing"))
	assert.Empty(t, c.AccessiblePages("Chef"))
	assert.Empty(t, c.FunctionsByRole("Chef"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo de funciones
// ──────────────────────────────────────────────────────────────────────────────

func TestFunctionsByRole_FranchiseStaff(t *testing.T) {
	c := rbac.Default()
	fns := c.FunctionsByRole(entity.RoleFranchiseStoreStaff)
	require.Len(t, fns, 10)
	assert.Equal(t, "FS-01", fns[0].ID)
	assert.Equal(t, "FS-10", fns[9].ID)
	assert.Equal(t, entity.LevelComplex, fns[3].Level, "FS-04 Create Store Order es Complex")
}

func TestFunctionsByRole_TamanosPorRol(t *testing.T) {
	c := rbac.Default()
	want := map[entity.Role]int{
		entity.RoleAdmin:               10,
		entity.RoleManager:             13,
		entity.RoleFranchiseStoreStaff: 10,
		entity.RoleCentralKitchenStaff: 11,
		entity.RoleSupplyCoordinator:   11,
	}
	for role, n := range want {
		assert.Len(t, c.FunctionsByRole(role), n, "rol %s", role)
	}
}

func TestFunctionsByRole_Idempotente(t *testing.T) {
	c := rbac.Default()
	for _, role := range entity.AllRoles() {
		first := ids(c.FunctionsByRole(role))
		second := ids(c.FunctionsByRole(role))
		assert.Equal(t, first, second)
	}
}

func TestFunctionsByRole_CopiaNoMutaElCatalogo(t *testing.T) {
	c := rbac.Default()
	fns := c.FunctionsByRole(entity.RoleAdmin)
	fns[0].Title = "cambiado"
	pages := c.AccessiblePages(entity.RoleAdmin)
	pages[0] = entity.PageUsers

	assert.Equal(t, "Login / Logout", c.FunctionsByRole(entity.RoleAdmin)[0].Title)
	assert.Equal(t, entity.PageHome, c.AccessiblePages(entity.RoleAdmin)[0])
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de carga
// ──────────────────────────────────────────────────────────────────────────────

const minimalRoles = `
  - role: Manager
    pages: [home]
  - role: FranchiseStoreStaff
    pages: [home]
  - role: central_kitchen_staff
    pages: [home]
  - role: Supply Coordinator
    pages: [home]
`

func TestLoad_AceptaNombresCompactos(t *testing.T) {
	c, err := rbac.Load([]byte("roles:\n  - role: Admin\n    pages: [home, users]\n" + minimalRoles))
	require.NoError(t, err)
	assert.True(t, c.HasPageAccess(entity.RoleCentralKitchenStaff, entity.PageHome))
	assert.Equal(t, entity.AllRoles(), c.Roles())
}

func TestLoad_Rechazos(t *testing.T) {
	cases := map[string]string{
		"falta rol":        "roles:" + minimalRoles,
		"páginas vacías":   "roles:\n  - role: Admin\n    pages: []\n" + minimalRoles,
		"página inválida":  "roles:\n  - role: Admin\n    pages: [billing]\n" + minimalRoles,
		"página repetida":  "roles:\n  - role: Admin\n    pages: [home, home]\n" + minimalRoles,
		"rol repetido":     "roles:\n  - role: Admin\n    pages: [home]\n  - role: Admin\n    pages: [home]\n" + minimalRoles,
		"rol desconocido":  "roles:\n  - role: Chef\n    pages: [home]\n" + minimalRoles,
		"nivel inválido":   "roles:\n  - role: Admin\n    pages: [home]\n    functions:\n      - {id: AD-01, title: Login, level: Easy}\n" + minimalRoles,
		"función repetida": "roles:\n  - role: Admin\n    pages: [home]\n    functions:\n      - {id: AD-01, title: A, level: Simple}\n      - {id: AD-01, title: B, level: Simple}\n" + minimalRoles,
		"yaml roto":        "roles: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := rbac.Load([]byte(doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidCatalog), err.Error())
		})
	}
}

func TestLoadFile_NoExiste(t *testing.T) {
	_, err := rbac.LoadFile(strings.Repeat("x", 8) + "/catalog.yaml")
	assert.Error(t, err)
}

func contains(pages []entity.PageID, p entity.PageID) bool {
	for _, x := range pages {
		if x == p {
			return true
		}
	}
	return false
}

func ids(fns []entity.FunctionDescriptor) []string {
	out := make([]string, 0, len(fns))
	for _, f := range fns {
		out = append(out, f.ID)
	}
	return out
}
