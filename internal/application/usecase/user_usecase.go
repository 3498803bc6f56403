package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/CentralKitchen-api/internal/application/auth"
	"github.com/jhoicas/CentralKitchen-api/internal/application/dto"
	"github.com/jhoicas/CentralKitchen-api/internal/domain"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
)

// UserUseCase administración de usuarios (página users).
type UserUseCase struct {
	repo   repository.UserRepository
	stores repository.FranchiseStoreRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, stores repository.FranchiseStoreRepository) *UserUseCase {
	return &UserUseCase{repo: repo, stores: stores}
}

// List lista usuarios con filtros opcionales de rol y estado.
func (uc *UserUseCase) List(ctx context.Context, role, status string) ([]dto.UserResponse, error) {
	f := repository.UserFilter{Status: status}
	if role != "" {
		r, ok := entity.ParseRole(role)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownRole, role)
		}
		f.Role = r
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Create crea un usuario. Admin no se crea desde la consola.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	in.UserName = strings.TrimSpace(in.UserName)
	if err := validate(in); err != nil {
		return nil, err
	}
	role, ok := entity.ParseRole(in.Role)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownRole, in.Role)
	}
	if role == entity.RoleAdmin {
		return nil, domain.ErrAdminRegistration
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.UserName
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.UserName,
		Name:         name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if role.StoreScoped() {
		user.StoreID, user.StoreName, err = auth.ResolveStore(ctx, uc.stores, in.StoreID)
		if err != nil {
			return nil, err
		}
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Update actualiza username, nombre y email. El rol es inmutable: un cambio de rol
// devuelve ErrInvalidInput.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	user, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Role != nil {
		r, ok := entity.ParseRole(*in.Role)
		if !ok || r != user.Role {
			return nil, fmt.Errorf("%w: el rol no se puede cambiar", domain.ErrInvalidInput)
		}
	}
	if in.UserName != nil {
		user.Username = strings.TrimSpace(*in.UserName)
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete elimina un usuario. Nadie se elimina a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return fmt.Errorf("%w: no puede eliminar su propia cuenta", domain.ErrConflict)
	}
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// ToggleStatus alterna active/inactive.
func (uc *UserUseCase) ToggleStatus(ctx context.Context, actorID, id string) (*dto.UserResponse, error) {
	if actorID == id {
		return nil, fmt.Errorf("%w: no puede desactivar su propia cuenta", domain.ErrConflict)
	}
	user, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Active() {
		user.Status = entity.UserStatusInactive
	} else {
		user.Status = entity.UserStatusActive
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

func (uc *UserUseCase) get(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("usuario", id)
	}
	return user, nil
}
