package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/CentralKitchen-api/internal/application/auth"
	"github.com/jhoicas/CentralKitchen-api/internal/application/dto"
	"github.com/jhoicas/CentralKitchen-api/internal/domain"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/infrastructure/memory"
)

var jwtCfg = auth.JWTConfig{Secret: "test-secret-key-for-unit-tests", ExpMinutes: 60, Issuer: "ck-test"}

func newUseCase(t *testing.T) (*auth.AuthUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	repos := store.Repos()
	require.NoError(t, repos.Stores.Create(context.Background(), &entity.FranchiseStore{ID: "st10", Name: "District 10 Store"}))
	return auth.NewAuthUseCase(auth.NewLocalDirectory(repos.Users, repos.Stores), jwtCfg), store
}

func register(name, role string) dto.RegisterRequest {
	return dto.RegisterRequest{
		UserName: name, Email: name + "@kitchen.test", Password: "secret1", ConfirmPassword: "secret1", Role: role,
	}
}

func TestRegister_RolPorDefectoYTiendaNueva(t *testing.T) {
	uc, _ := newUseCase(t)
	out, err := uc.RegisterUser(context.Background(), register("new_staff", ""))
	require.NoError(t, err)
	assert.Equal(t, string(entity.RoleFranchiseStoreStaff), out.Role)
	assert.Equal(t, auth.DefaultStoreName, out.StoreName)
	assert.Equal(t, entity.UserStatusActive, out.Status)
}

func TestRegister_TiendaExistente(t *testing.T) {
	uc, _ := newUseCase(t)
	in := register("staff_d10", "FranchiseStoreStaff")
	in.StoreID = "st10"
	out, err := uc.RegisterUser(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "District 10 Store", out.StoreName)
}

func TestRegister_Rechazos(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, register("taken", ""))
	require.NoError(t, err)

	mismatch := register("other", "")
	mismatch.ConfirmPassword = "different"

	unknownStore := register("ghost_store", "")
	unknownStore.StoreID = "nope"

	cases := []struct {
		name string
		in   dto.RegisterRequest
		want error
	}{
		{"admin", register("boss", "Admin"), domain.ErrAdminRegistration},
		{"duplicado", register("taken", "Manager"), domain.ErrDuplicate},
		{"passwords distintos", mismatch, domain.ErrPasswordMismatch},
		{"campos vacíos", dto.RegisterRequest{}, domain.ErrInvalidInput},
		{"rol desconocido", register("chef", "Chef"), domain.ErrUnknownRole},
		{"tienda inexistente", unknownStore, domain.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RegisterUser(ctx, tc.in)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestLogin_EmiteTokenConIdentidad(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()
	in := register("kitchen_staff", "Central Kitchen Staff")
	in.StoreID = "st10"
	_, err := uc.RegisterUser(ctx, in)
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Username: "kitchen_staff", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, string(entity.RoleCentralKitchenStaff), out.Role)
	assert.Empty(t, out.StoreID, "la tienda solo aplica al personal de tienda")

	id, err := auth.IdentityFromToken(jwtCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.UserID, id.UserID)
	assert.Equal(t, entity.RoleCentralKitchenStaff, id.Role)
}

func TestLogin_Fallos(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, register("supply_coord", "Supply Coordinator"))
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "supply_coord", Password: "wrong"})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "nobody", Password: "x"})
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))

	u, _ := store.Repos().Users.GetByUsername(ctx, "supply_coord")
	u.Status = entity.UserStatusInactive
	require.NoError(t, store.Repos().Users.Update(ctx, u))
	_, err = uc.Login(ctx, dto.LoginRequest{Username: "supply_coord", Password: "secret1"})
	assert.True(t, errors.Is(err, domain.ErrForbidden), "cuenta inactiva")
}
