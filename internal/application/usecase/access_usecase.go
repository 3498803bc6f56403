package usecase

import (
	"fmt"

	"github.com/jhoicas/CentralKitchen-api/internal/application/dto"
	"github.com/jhoicas/CentralKitchen-api/internal/domain"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/rbac"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/session"
)

// AccessService responde qué páginas y funciones ve cada rol.
// Es el único punto de la aplicación que consulta el catálogo de permisos.
type AccessService struct {
	catalog *rbac.Catalog
}

// NewAccessService construye el servicio con el catálogo cargado al arrancar.
func NewAccessService(catalog *rbac.Catalog) *AccessService {
	return &AccessService{catalog: catalog}
}

// Catalog catálogo en uso.
func (s *AccessService) Catalog() *rbac.Catalog {
	return s.catalog
}

// Me páginas y funciones del rol que actúa.
func (s *AccessService) Me(actor session.Identity) dto.AccessResponse {
	return dto.AccessResponse{
		Role:      string(actor.Role),
		Pages:     s.catalog.AccessiblePages(actor.Role),
		Functions: s.catalog.FunctionsByRole(actor.Role),
	}
}

// CheckPage informa si el rol ve la página. Página desconocida: ErrInvalidInput.
func (s *AccessService) CheckPage(actor session.Identity, page string) (dto.PageAccessResponse, error) {
	p, ok := entity.ParsePage(page)
	if !ok {
		return dto.PageAccessResponse{}, fmt.Errorf("%w: página %q", domain.ErrInvalidInput, page)
	}
	return dto.PageAccessResponse{Page: string(p), Allowed: s.catalog.HasPageAccess(actor.Role, p)}, nil
}

// Allowed true si el rol ve la página (gate de rutas).
func (s *AccessService) Allowed(role entity.Role, page entity.PageID) bool {
	return s.catalog.HasPageAccess(role, page)
}

// Roles resumen de todos los roles para la pestaña de roles.
func (s *AccessService) Roles() []dto.RoleSummary {
	roles := s.catalog.Roles()
	out := make([]dto.RoleSummary, 0, len(roles))
	for _, r := range roles {
		out = append(out, dto.RoleSummary{
			Role:          string(r),
			Pages:         s.catalog.AccessiblePages(r),
			FunctionCount: len(s.catalog.FunctionsByRole(r)),
		})
	}
	return out
}
