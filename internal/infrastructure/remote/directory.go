package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jhoicas/CentralKitchen-api/internal/application/auth"
	"github.com/jhoicas/CentralKitchen-api/internal/domain"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
)

var _ auth.Directory = (*Directory)(nil)

// Directory credenciales validadas por el backend (/auth/login, /auth/register).
type Directory struct {
	c     *Client
	users UserRepo
}

// NewDirectory construye el directorio remoto.
func NewDirectory(c *Client) *Directory {
	return &Directory{c: c, users: UserRepo{resource[userWire]{c, "/users"}}}
}

// Authenticate delega en /auth/login y completa el perfil desde /users/:id cuando existe.
func (d *Directory) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	var out loginWire
	err := d.c.do(ctx, request{
		method: http.MethodPost, path: "/auth/login", anon: true,
		body: map[string]string{"username": username, "password": password},
	}, &out)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	role, ok := entity.ParseRole(out.Role)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownRole, out.Role)
	}
	user := &entity.User{ID: out.UserID, Username: out.Username, Email: out.Email, Role: role, Status: entity.UserStatusActive}
	if full, err := d.users.GetByID(ctx, out.UserID); err == nil && full != nil {
		full.Role = role
		return full, nil
	}
	user.Name = out.Username
	return user, nil
}

type registerWire struct {
	UserName        string `json:"userName"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
	StoreID         string `json:"storeId,omitempty"`
}

// Register delega en /auth/register.
func (d *Directory) Register(ctx context.Context, in auth.Registration) (*entity.User, error) {
	var out userWire
	err := d.c.do(ctx, request{
		method: http.MethodPost, path: "/auth/register", anon: true,
		body: registerWire{UserName: in.Username, Name: in.Name, Email: in.Email, Password: in.Password,
			ConfirmPassword: in.Password, Role: string(in.Role), StoreID: in.StoreID},
	}, &out)
	if err != nil {
		return nil, err
	}
	if out.UserName == "" {
		out.UserName = in.Username
		out.Name = in.Name
		out.Email = in.Email
		out.Role = string(in.Role)
	}
	return out.entity(), nil
}
