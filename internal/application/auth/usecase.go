package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/CentralKitchen-api/internal/application/dto"
	"github.com/jhoicas/CentralKitchen-api/internal/domain"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/session"
	"github.com/jhoicas/CentralKitchen-api/pkg/jwt"
	"github.com/jhoicas/CentralKitchen-api/pkg/validator"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Registration datos ya validados para crear una cuenta.
type Registration struct {
	Username string
	Name     string
	Email    string
	Password string
	Role     entity.Role
	StoreID  string
}

// Directory fuente de credenciales: local (bcrypt + repositorio) o el backend remoto.
type Directory interface {
	// Authenticate devuelve ErrUserNotFound o ErrUnauthorized si las credenciales no valen.
	Authenticate(ctx context.Context, username, password string) (*entity.User, error)
	// Register devuelve ErrDuplicate si el username ya existe.
	Register(ctx context.Context, in Registration) (*entity.User, error)
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	dir    Directory
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(dir Directory, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{dir: dir, jwtCfg: jwtCfg}
}

// RegisterUser valida y crea la cuenta. Nunca crea Admin; el rol por defecto es
// Franchise Store Staff.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	in.UserName = strings.TrimSpace(in.UserName)
	in.Email = strings.TrimSpace(in.Email)
	if errs := validator.ValidateStruct(in); errs != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, validator.Message(errs))
	}
	if in.Password != in.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}
	role := entity.RoleFranchiseStoreStaff
	if in.Role != "" {
		r, ok := entity.ParseRole(in.Role)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownRole, in.Role)
		}
		role = r
	}
	if role == entity.RoleAdmin {
		return nil, domain.ErrAdminRegistration
	}
	storeID := in.StoreID
	if !role.StoreScoped() {
		storeID = ""
	}
	name := in.Name
	if name == "" {
		name = in.UserName
	}

	user, err := uc.dir.Register(ctx, Registration{
		Username: in.UserName,
		Name:     name,
		Email:    in.Email,
		Password: in.Password,
		Role:     role,
		StoreID:  storeID,
	})
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica credenciales, genera JWT con la identidad y la retorna.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if errs := validator.ValidateStruct(in); errs != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, validator.Message(errs))
	}
	user, err := uc.dir.Authenticate(ctx, strings.TrimSpace(in.Username), in.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.Active() {
		return nil, domain.ErrForbidden
	}
	id := session.FromUser(user)
	if err := id.Validate(); err != nil {
		return nil, err
	}
	token, err := IssueToken(uc.jwtCfg, id)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		UserID:    user.ID,
		Username:  user.Username,
		Name:      user.Name,
		Role:      string(user.Role),
		Email:     user.Email,
		StoreID:   user.StoreID,
		StoreName: user.StoreName,
		Token:     token,
	}, nil
}

// IssueToken firma un JWT con la identidad.
func IssueToken(cfg JWTConfig, id session.Identity) (string, error) {
	return jwt.Generate(cfg.Secret, jwt.Subject{
		UserID:    id.UserID,
		Username:  id.Username,
		Name:      id.Name,
		Email:     id.Email,
		Role:      string(id.Role),
		StoreID:   id.StoreID,
		StoreName: id.StoreName,
	}, cfg.Issuer, cfg.ExpMinutes)
}

// IdentityFromToken reconstruye la identidad desde un token emitido por IssueToken.
func IdentityFromToken(secret, token string) (session.Identity, error) {
	claims, err := jwt.Parse(secret, token)
	if err != nil {
		return session.Identity{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	role, ok := entity.ParseRole(claims.Role)
	if !ok {
		return session.Identity{}, fmt.Errorf("%w: %q", domain.ErrUnknownRole, claims.Role)
	}
	id := session.Identity{
		UserID:    claims.UserID,
		Username:  claims.Username,
		Name:      claims.Name,
		Email:     claims.Email,
		Role:      role,
		StoreID:   claims.StoreID,
		StoreName: claims.StoreName,
	}
	return id, id.Validate()
}

// ToUserResponse mapea la entidad a la salida HTTP.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		UserName:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Status:    u.Status,
		StoreID:   u.StoreID,
		StoreName: u.StoreName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
