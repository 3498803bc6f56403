package dto

import "time"

// RegisterRequest entrada de auto-registro. Role vacío: Franchise Store Staff.
type RegisterRequest struct {
	UserName        string `json:"userName" validate:"required,min=3,max=50"`
	Name            string `json:"name" validate:"omitempty,max=200"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=4"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	Role            string `json:"role"`
	StoreID         string `json:"storeId"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida del login con el token emitido por esta API.
type LoginResponse struct {
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	StoreID   string `json:"storeId,omitempty"`
	StoreName string `json:"storeName,omitempty"`
	Token     string `json:"token"`
}

// CreateUserRequest alta de usuario desde la pantalla de usuarios.
type CreateUserRequest struct {
	UserName string `json:"userName" validate:"required,min=3,max=50"`
	Name     string `json:"name" validate:"omitempty,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role" validate:"required"`
	StoreID  string `json:"storeId"`
}

// UpdateUserRequest cambios permitidos; el rol no es editable.
type UpdateUserRequest struct {
	UserName *string `json:"userName" validate:"omitempty,min=3,max=50"`
	Name     *string `json:"name" validate:"omitempty,max=200"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     *string `json:"role"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	UserName  string    `json:"userName"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	StoreID   string    `json:"storeId,omitempty"`
	StoreName string    `json:"storeName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
