package entity

import "time"

// Estados de cuenta.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa un usuario de la consola. Role no cambia después de crearse;
// StoreID/StoreName solo aplican a roles atados a tienda.
type User struct {
	ID           string
	Username     string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         Role
	Status       string // active, inactive
	StoreID      string
	StoreName    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Active indica si la cuenta puede iniciar sesión.
func (u *User) Active() bool {
	return u.Status != UserStatusInactive
}
