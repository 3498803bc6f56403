package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/CentralKitchen-api/internal/application/dto"
	"github.com/jhoicas/CentralKitchen-api/internal/application/usecase"
	"github.com/jhoicas/CentralKitchen-api/internal/domain"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/rbac"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/session"
	"github.com/jhoicas/CentralKitchen-api/internal/infrastructure/memory"
)

func newRepos() repository.Repos {
	return memory.NewStore().Repos()
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Acceso
// ──────────────────────────────────────────────────────────────────────────────

func TestAccessService_Me(t *testing.T) {
	svc := usecase.NewAccessService(rbac.Default())
	out := svc.Me(session.Identity{UserID: "u1", Role: entity.RoleFranchiseStoreStaff})
	assert.Equal(t, "Franchise Store Staff", out.Role)
	assert.Len(t, out.Functions, 10)
	assert.NotContains(t, out.Pages, entity.PageUsers)
}

func TestAccessService_CheckPage(t *testing.T) {
	svc := usecase.NewAccessService(rbac.Default())
	coord := session.Identity{UserID: "u1", Role: entity.RoleSupplyCoordinator}

	out, err := svc.CheckPage(coord, "stores")
	require.NoError(t, err)
	assert.True(t, out.Allowed)

	out, err = svc.CheckPage(coord, "production")
	require.NoError(t, err)
	assert.False(t, out.Allowed)

	_, err = svc.CheckPage(coord, "billing")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAccessService_Roles(t *testing.T) {
	roles := usecase.NewAccessService(rbac.Default()).Roles()
	require.Len(t, roles, 5)
	assert.Equal(t, "Admin", roles[0].Role)
	assert.Equal(t, 10, roles[0].FunctionCount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

func newUserUC(t *testing.T) *usecase.UserUseCase {
	t.Helper()
	repos := newRepos()
	require.NoError(t, repos.Stores.Create(context.Background(), &entity.FranchiseStore{ID: "st1", Name: "District 1 Store"}))
	return usecase.NewUserUseCase(repos.Users, repos.Stores)
}

func createUser(name, role string) dto.CreateUserRequest {
	return dto.CreateUserRequest{UserName: name, Email: name + "@kitchen.test", Password: "secret1", Role: role}
}

func TestUserUseCase_CreateYListarPorRol(t *testing.T) {
	uc := newUserUC(t)
	ctx := context.Background()

	in := createUser("staff_d1", "Franchise Store Staff")
	in.StoreID = "st1"
	staff, err := uc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "District 1 Store", staff.StoreName)

	mgr, err := uc.Create(ctx, createUser("manager2", "manager"))
	require.NoError(t, err)
	assert.Empty(t, mgr.StoreID, "solo el personal de tienda lleva tienda")

	list, err := uc.List(ctx, "Manager", "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "manager2", list[0].UserName)

	_, err = uc.List(ctx, "Chef", "")
	assert.ErrorIs(t, err, domain.ErrUnknownRole)
}

func TestUserUseCase_CreateAdminRechazado(t *testing.T) {
	_, err := newUserUC(t).Create(context.Background(), createUser("boss", "Admin"))
	assert.ErrorIs(t, err, domain.ErrAdminRegistration)
}

func TestUserUseCase_RolInmutable(t *testing.T) {
	uc := newUserUC(t)
	ctx := context.Background()
	u, err := uc.Create(ctx, createUser("kitchen1", "Central Kitchen Staff"))
	require.NoError(t, err)

	_, err = uc.Update(ctx, u.ID, dto.UpdateUserRequest{Role: strPtr("Manager")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.Update(ctx, u.ID, dto.UpdateUserRequest{Name: strPtr("Kitchen One"), Role: strPtr("CentralKitchenStaff")})
	require.NoError(t, err)
	assert.Equal(t, "Kitchen One", out.Name)
}

func TestUserUseCase_ToggleYDelete(t *testing.T) {
	uc := newUserUC(t)
	ctx := context.Background()
	u, err := uc.Create(ctx, createUser("coord1", "Supply Coordinator"))
	require.NoError(t, err)

	out, err := uc.ToggleStatus(ctx, "admin-id", u.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusInactive, out.Status)

	out, err = uc.ToggleStatus(ctx, "admin-id", u.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusActive, out.Status)

	_, err = uc.ToggleStatus(ctx, u.ID, u.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.ErrorIs(t, uc.Delete(ctx, u.ID, u.ID), domain.ErrConflict)

	require.NoError(t, uc.Delete(ctx, "admin-id", u.ID))
	_, err = uc.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tiendas y cocinas
// ──────────────────────────────────────────────────────────────────────────────

func TestStoreUseCase_CodigosYCocina(t *testing.T) {
	repos := newRepos()
	uc := usecase.NewStoreUseCase(repos.Stores, repos.Kitchens)
	ctx := context.Background()

	k, err := uc.CreateKitchen(ctx, dto.CreateKitchenRequest{Name: "Main Kitchen"})
	require.NoError(t, err)
	assert.Equal(t, entity.KitchenStatusActive, k.Status)

	s1, err := uc.Create(ctx, dto.CreateStoreRequest{StoreName: "District 1 Store", KitchenID: k.CentralKitchenID})
	require.NoError(t, err)
	s2, err := uc.Create(ctx, dto.CreateStoreRequest{StoreName: "District 3 Store"})
	require.NoError(t, err)
	assert.Equal(t, "ST-001", s1.Code)
	assert.Equal(t, "ST-002", s2.Code)
	assert.Equal(t, "Main Kitchen", s1.KitchenName)

	_, err = uc.Create(ctx, dto.CreateStoreRequest{StoreName: "Ghost", KitchenID: "nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.DeleteKitchen(ctx, k.CentralKitchenID), domain.ErrConflict)
	require.NoError(t, uc.Delete(ctx, s1.StoreID))
	require.NoError(t, uc.DeleteKitchen(ctx, k.CentralKitchenID))
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUseCase_CreateClasificaStock(t *testing.T) {
	repos := newRepos()
	uc := usecase.NewProductUseCase(repos.Products, repos.ProductTypes, 20)
	ctx := context.Background()

	pt, err := uc.CreateType(ctx, dto.CreateProductTypeRequest{TypeName: "Bakery"})
	require.NoError(t, err)

	cases := []struct {
		qty  int
		min  *int
		want string
	}{
		{0, nil, entity.StockOutOfStock},
		{5, nil, entity.StockLow},
		{50, nil, entity.StockAvailable},
		{5, intPtr(5), entity.StockAvailable},
	}
	for i, tc := range cases {
		out, err := uc.Create(ctx, dto.CreateProductRequest{
			ProductTypeID: pt.ProductTypeID, ProductName: "Croissant", Unit: "pcs", Quantity: tc.qty, MinStock: tc.min,
		})
		require.NoError(t, err)
		assert.Equal(t, tc.want, out.StockStatus, "caso %d", i)
		assert.Equal(t, entity.ProductStatusActive, out.Status)
	}

	list, err := uc.List(ctx, pt.ProductTypeID, "")
	require.NoError(t, err)
	assert.Len(t, list, 4)
	assert.Equal(t, "PRD-001", list[0].Code)
	assert.Equal(t, 20, list[0].MinStock, "mínimo por defecto")
}

func TestProductUseCase_TipoEnUsoYEstado(t *testing.T) {
	repos := newRepos()
	uc := usecase.NewProductUseCase(repos.Products, repos.ProductTypes, 10)
	ctx := context.Background()

	pt, err := uc.CreateType(ctx, dto.CreateProductTypeRequest{TypeName: "Beverages"})
	require.NoError(t, err)
	p, err := uc.Create(ctx, dto.CreateProductRequest{ProductTypeID: pt.ProductTypeID, ProductName: "Lemonade", Unit: "L"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateProductRequest{ProductTypeID: "nope", ProductName: "X", Unit: "L"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.DeleteType(ctx, pt.ProductTypeID), domain.ErrConflict)

	out, err := uc.UpdateStatus(ctx, p.ProductID, dto.UpdateStatusRequest{Status: "inactive"})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusInactive, out.Status)

	_, err = uc.UpdateStatus(ctx, p.ProductID, dto.UpdateStatusRequest{Status: "archived"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, uc.Delete(ctx, p.ProductID))
	require.NoError(t, uc.DeleteType(ctx, pt.ProductTypeID))
}

// ──────────────────────────────────────────────────────────────────────────────
// Recetas
// ──────────────────────────────────────────────────────────────────────────────

func TestRecipeUseCase_Costo(t *testing.T) {
	repos := newRepos()
	ctx := context.Background()
	require.NoError(t, repos.Ingredients.Create(ctx, &entity.Ingredient{ID: "flour", Name: "Flour", Unit: "kg", UnitCost: decimal.RequireFromString("1.50")}))
	require.NoError(t, repos.Ingredients.Create(ctx, &entity.Ingredient{ID: "butter", Name: "Butter", Unit: "kg", UnitCost: decimal.RequireFromString("8.00")}))
	uc := usecase.NewRecipeUseCase(repos.Recipes, repos.Ingredients)

	r, err := uc.Create(ctx, dto.CreateRecipeRequest{
		Name: "Croissant", Category: "Bakery", Servings: 4,
		Ingredients: []dto.RecipeIngredientDTO{
			{IngredientID: "flour", Quantity: decimal.RequireFromString("2")},
			{IngredientID: "butter", Quantity: decimal.RequireFromString("0.5")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "RCP-001", r.Code)
	assert.Equal(t, "Flour", r.Ingredients[0].Name)
	assert.Equal(t, "kg", r.Ingredients[0].Unit)

	cost, err := uc.Cost(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("7").Equal(cost.TotalCost), cost.TotalCost.String())
	assert.True(t, decimal.RequireFromString("1.75").Equal(cost.PerServing), cost.PerServing.String())
}

func TestRecipeUseCase_Rechazos(t *testing.T) {
	repos := newRepos()
	ctx := context.Background()
	uc := usecase.NewRecipeUseCase(repos.Recipes, repos.Ingredients)

	_, err := uc.Create(ctx, dto.CreateRecipeRequest{
		Name: "Ghost", Category: "Bakery",
		Ingredients: []dto.RecipeIngredientDTO{{IngredientID: "nope", Quantity: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repos.Ingredients.Create(ctx, &entity.Ingredient{ID: "sugar", Name: "Sugar", Unit: "kg"}))
	_, err = uc.Create(ctx, dto.CreateRecipeRequest{
		Name: "Zero", Category: "Bakery",
		Ingredients: []dto.RecipeIngredientDTO{{IngredientID: "sugar", Quantity: decimal.Zero}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Cost(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecipeUseCase_Categorias(t *testing.T) {
	repos := newRepos()
	ctx := context.Background()
	uc := usecase.NewRecipeUseCase(repos.Recipes, repos.Ingredients)
	for _, c := range []string{"Soups", "Bakery", "bakery", "Desserts"} {
		_, err := uc.Create(ctx, dto.CreateRecipeRequest{Name: "R " + c, Category: c})
		require.NoError(t, err)
	}
	cats, err := uc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bakery", "Desserts", "Soups"}, cats)

	bakery, err := uc.List(ctx, "Bakery")
	require.NoError(t, err)
	assert.NotEmpty(t, bakery)
}
