package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/CentralKitchen-api/internal/domain"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
)

// DefaultStoreName nombre asignado al personal de tienda registrado sin tienda.
const DefaultStoreName = "New Store"

var _ Directory = (*LocalDirectory)(nil)

// LocalDirectory credenciales guardadas en el repositorio propio con hash bcrypt.
type LocalDirectory struct {
	users  repository.UserRepository
	stores repository.FranchiseStoreRepository
}

// NewLocalDirectory construye el directorio local.
func NewLocalDirectory(users repository.UserRepository, stores repository.FranchiseStoreRepository) *LocalDirectory {
	return &LocalDirectory{users: users, stores: stores}
}

// Authenticate compara el password con el hash bcrypt.
func (d *LocalDirectory) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := d.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// Register hashea el password y persiste el usuario.
func (d *LocalDirectory) Register(ctx context.Context, in Registration) (*entity.User, error) {
	existing, err := d.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username %s", domain.ErrDuplicate, in.Username)
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.Role.StoreScoped() {
		user.StoreID, user.StoreName, err = ResolveStore(ctx, d.stores, in.StoreID)
		if err != nil {
			return nil, err
		}
	}
	if err := d.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// HashPassword bcrypt con el costo por defecto.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// ResolveStore devuelve id y nombre de la tienda; sin id asigna DefaultStoreName.
func ResolveStore(ctx context.Context, stores repository.FranchiseStoreRepository, storeID string) (string, string, error) {
	if storeID == "" {
		return "", DefaultStoreName, nil
	}
	st, err := stores.GetByID(ctx, storeID)
	if err != nil {
		return "", "", err
	}
	if st == nil {
		return "", "", fmt.Errorf("%w: tienda %s", domain.ErrNotFound, storeID)
	}
	return st.ID, st.Name, nil
}
