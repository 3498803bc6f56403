package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvalidTransition  = errors.New("transición de estado no permitida")
	ErrAdminRegistration  = errors.New("no se pueden crear cuentas Admin: solo se permite un Admin")
	ErrPasswordMismatch   = errors.New("las contraseñas no coinciden")
	ErrUnknownRole        = errors.New("rol desconocido")
	ErrBackendUnavailable = errors.New("backend no disponible")
	ErrPartialUpdate      = errors.New("actualización parcial: una de las escrituras falló")
	ErrInvalidCatalog     = errors.New("catálogo de permisos inválido")
	ErrNoSession          = errors.New("no hay sesión activa")
)
