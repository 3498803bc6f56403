// Package rbac evalúa el catálogo de permisos: páginas visibles y funciones por rol.
//
// La visibilidad de páginas y el catálogo de funciones son ejes independientes: un rol
// puede ver una página sin que su acceso rápido anuncie ninguna función relacionada.
package rbac

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/CentralKitchen-api/internal/domain"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Catalog tabla de permisos cargada y validada. Inmutable después de Load; seguro
// para lecturas concurrentes sin sincronización.
type Catalog struct {
	order     []entity.Role
	pages     map[entity.Role][]entity.PageID
	pageSet   map[entity.Role]map[entity.PageID]struct{}
	functions map[entity.Role][]entity.FunctionDescriptor
}

type catalogFile struct {
	Roles []roleEntry `yaml:"roles"`
}

type roleEntry struct {
	Role      string                      `yaml:"role"`
	Pages     []string                    `yaml:"pages"`
	Functions []entity.FunctionDescriptor `yaml:"functions"`
}

var defaultCatalog = mustLoad(embeddedCatalog)

func mustLoad(data []byte) *Catalog {
	c, err := Load(data)
	if err != nil {
		panic(fmt.Sprintf("rbac: catálogo embebido inválido: %v", err))
	}
	return c
}

// Default devuelve el catálogo embebido en el binario.
func Default() *Catalog {
	return defaultCatalog
}

// LoadFile carga un catálogo YAML desde disco (PERMISSIONS_FILE).
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer catálogo %s: %w", path, err)
	}
	return Load(data)
}

// Load parsea y valida un catálogo: los cinco roles presentes, listas de páginas no vacías
// y sin repetidos, funciones con id y título, nivel válido e ids únicos por rol.
func Load(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}

	c := &Catalog{
		pages:     make(map[entity.Role][]entity.PageID),
		pageSet:   make(map[entity.Role]map[entity.PageID]struct{}),
		functions: make(map[entity.Role][]entity.FunctionDescriptor),
	}
	for _, e := range f.Roles {
		role, ok := entity.ParseRole(e.Role)
		if !ok {
			return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidCatalog, e.Role)
		}
		if _, dup := c.pages[role]; dup {
			return nil, fmt.Errorf("%w: rol %q repetido", domain.ErrInvalidCatalog, role)
		}
		if len(e.Pages) == 0 {
			return nil, fmt.Errorf("%w: rol %q sin páginas", domain.ErrInvalidCatalog, role)
		}

		set := make(map[entity.PageID]struct{}, len(e.Pages))
		pages := make([]entity.PageID, 0, len(e.Pages))
		for _, raw := range e.Pages {
			p, ok := entity.ParsePage(raw)
			if !ok {
				return nil, fmt.Errorf("%w: página desconocida %q en %q", domain.ErrInvalidCatalog, raw, role)
			}
			if _, dup := set[p]; dup {
				return nil, fmt.Errorf("%w: página %q repetida en %q", domain.ErrInvalidCatalog, p, role)
			}
			set[p] = struct{}{}
			pages = append(pages, p)
		}

		ids := make(map[string]struct{}, len(e.Functions))
		for _, fn := range e.Functions {
			if fn.ID == "" || fn.Title == "" {
				return nil, fmt.Errorf("%w: función sin id o título en %q", domain.ErrInvalidCatalog, role)
			}
			if !fn.Level.Valid() {
				return nil, fmt.Errorf("%w: nivel %q inválido en %s", domain.ErrInvalidCatalog, fn.Level, fn.ID)
			}
			if _, dup := ids[fn.ID]; dup {
				return nil, fmt.Errorf("%w: función %s repetida en %q", domain.ErrInvalidCatalog, fn.ID, role)
			}
			ids[fn.ID] = struct{}{}
		}

		c.order = append(c.order, role)
		c.pages[role] = pages
		c.pageSet[role] = set
		c.functions[role] = append([]entity.FunctionDescriptor(nil), e.Functions...)
	}

	for _, r := range entity.AllRoles() {
		if _, ok := c.pages[r]; !ok {
			return nil, fmt.Errorf("%w: falta el rol %q", domain.ErrInvalidCatalog, r)
		}
	}
	return c, nil
}

// HasPageAccess true si page pertenece a las páginas del rol. Rol o página desconocidos: false.
func (c *Catalog) HasPageAccess(role entity.Role, page entity.PageID) bool {
	set, ok := c.pageSet[role]
	if !ok {
		return false
	}
	_, ok = set[page]
	return ok
}

// AccessiblePages páginas del rol en el orden declarado; vacío si el rol es desconocido.
func (c *Catalog) AccessiblePages(role entity.Role) []entity.PageID {
	return append([]entity.PageID{}, c.pages[role]...)
}

// FunctionsByRole catálogo de funciones del rol; vacío si el rol es desconocido.
func (c *Catalog) FunctionsByRole(role entity.Role) []entity.FunctionDescriptor {
	return append([]entity.FunctionDescriptor{}, c.functions[role]...)
}

// Roles roles del catálogo en el orden del archivo.
func (c *Catalog) Roles() []entity.Role {
	return append([]entity.Role{}, c.order...)
}
