package entity

import "strings"

// Role categoría fija de identidad que controla páginas y funciones visibles.
// El valor es el nombre que muestra la consola y que devuelve el backend.
type Role string

// Roles válidos. Un usuario tiene exactamente uno y no cambia tras la creación.
const (
	RoleAdmin               Role = "Admin"
	RoleManager             Role = "Manager"
	RoleFranchiseStoreStaff Role = "Franchise Store Staff"
	RoleCentralKitchenStaff Role = "Central Kitchen Staff"
	RoleSupplyCoordinator   Role = "Supply Coordinator"
)

// AllRoles devuelve los cinco roles en el orden de la consola.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleFranchiseStoreStaff, RoleCentralKitchenStaff, RoleSupplyCoordinator}
}

// ParseRole acepta el nombre visible ("Franchise Store Staff") o la forma compacta
// ("FranchiseStoreStaff", "franchise_store_staff"). Devuelve false si no es un rol conocido.
func ParseRole(s string) (Role, bool) {
	key := compactRole(s)
	if key == "" {
		return "", false
	}
	for _, r := range AllRoles() {
		if compactRole(string(r)) == key {
			return r, true
		}
	}
	return "", false
}

func compactRole(s string) string {
	var b strings.Builder
	for _, ch := range strings.ToLower(s) {
		if ch == ' ' || ch == '_' || ch == '-' {
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}

// Valid indica si r es exactamente uno de los cinco roles.
func (r Role) Valid() bool {
	for _, known := range AllRoles() {
		if r == known {
			return true
		}
	}
	return false
}

// StoreScoped indica si el rol trabaja atado a una tienda franquiciada.
func (r Role) StoreScoped() bool {
	return r == RoleFranchiseStoreStaff
}

func (r Role) String() string { return string(r) }
