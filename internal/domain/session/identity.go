// Package session lleva la identidad autenticada de forma explícita por el contexto.
package session

import (
	"context"
	"fmt"

	"github.com/jhoicas/CentralKitchen-api/internal/domain"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
)

type contextKey string

const identityContextKey contextKey = "identity"

// Identity usuario autenticado que parametriza permisos y transiciones.
type Identity struct {
	UserID    string
	Username  string
	Name      string
	Email     string
	Role      entity.Role
	StoreID   string
	StoreName string
}

// FromUser construye la identidad a partir de la entidad persistida.
func FromUser(u *entity.User) Identity {
	return Identity{
		UserID:    u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		StoreID:   u.StoreID,
		StoreName: u.StoreName,
	}
}

// Validate rechaza un rol desconocido o una tienda asignada a un rol que no es de tienda.
func (i Identity) Validate() error {
	if i.UserID == "" {
		return fmt.Errorf("%w: identidad sin user id", domain.ErrUnauthorized)
	}
	if !i.Role.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownRole, i.Role)
	}
	if i.StoreID != "" && !i.Role.StoreScoped() {
		return fmt.Errorf("%w: el rol %s no admite tienda asignada", domain.ErrInvalidInput, i.Role)
	}
	return nil
}

// Is indica si la identidad tiene alguno de los roles dados.
func (i Identity) Is(roles ...entity.Role) bool {
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}

// WithIdentity guarda la identidad en ctx.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

// FromContext devuelve la identidad guardada por WithIdentity.
func FromContext(ctx context.Context) (Identity, bool) {
	if ctx == nil {
		return Identity{}, false
	}
	id, ok := ctx.Value(identityContextKey).(Identity)
	return id, ok
}
