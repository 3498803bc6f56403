package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/CentralKitchen-api/internal/domain"
)

// pageSize tamaño de página pedido al recorrer un listado.
const pageSize = 100

// resource CRUD genérico sobre una colección REST (path base sin barra final).
type resource[W any] struct {
	c    *Client
	path string
}

func (r resource[W]) item(id string) string {
	return r.path + "/" + url.PathEscape(id)
}

// get devuelve (nil, nil) si el backend responde 404.
func (r resource[W]) get(ctx context.Context, id string) (*W, error) {
	var out W
	if err := r.c.do(ctx, request{method: http.MethodGet, path: r.item(id)}, &out); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

// list recorre todas las páginas que anuncie el backend.
func (r resource[W]) list(ctx context.Context, query url.Values) ([]W, error) {
	var all []W
	for n := 1; ; n++ {
		p, err := r.page(ctx, query, n, pageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, p.items...)
		if p.pagination == nil || len(p.items) == 0 || n >= p.pagination.TotalPages {
			return all, nil
		}
	}
}

// pagination bloque de PaginatedResponse.
type pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// page una página; pagination es nil si el backend devolvió la colección entera.
type page[W any] struct {
	items      []W
	pagination *pagination
}

func (r resource[W]) page(ctx context.Context, query url.Values, n, size int) (page[W], error) {
	q := url.Values{}
	for k, v := range query {
		q[k] = v
	}
	q.Set("page", strconv.Itoa(n))
	q.Set("pageSize", strconv.Itoa(size))
	raw, err := r.c.fetch(ctx, request{method: http.MethodGet, path: r.path, query: q})
	if err != nil {
		return page[W]{}, err
	}
	return decodePage[W](raw)
}

// decodePage acepta un arreglo crudo o {success, data, pagination}.
func decodePage[W any](raw []byte) (page[W], error) {
	var out page[W]
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return out, nil
	}
	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &out.items); err != nil {
			return out, fmt.Errorf("decodificar listado: %w", err)
		}
		return out, nil
	}
	var body struct {
		Success    *bool           `json:"success"`
		Data       json.RawMessage `json:"data"`
		Message    string          `json:"message"`
		Pagination *pagination     `json:"pagination"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return out, fmt.Errorf("decodificar listado: %w", err)
	}
	if body.Success != nil && !*body.Success {
		return out, fmt.Errorf("%w: %s", domain.ErrBackendUnavailable, nonEmpty(body.Message, "respuesta sin éxito"))
	}
	if len(body.Data) > 0 && string(body.Data) != "null" {
		if err := json.Unmarshal(body.Data, &out.items); err != nil {
			return out, fmt.Errorf("decodificar listado: %w", err)
		}
	}
	out.pagination = body.Pagination
	return out, nil
}

func (r resource[W]) create(ctx context.Context, w W) error {
	return r.c.do(ctx, request{method: http.MethodPost, path: r.path, body: w}, nil)
}

func (r resource[W]) update(ctx context.Context, id string, w W) error {
	return r.c.do(ctx, request{method: http.MethodPut, path: r.item(id), body: w}, nil)
}

// patch actualización parcial del ítem.
func (r resource[W]) patch(ctx context.Context, id string, body any) error {
	return r.c.do(ctx, request{method: http.MethodPatch, path: r.item(id), body: body}, nil)
}

// action POST al sub-endpoint de una acción (/orders/:id/ship).
func (r resource[W]) action(ctx context.Context, id, name string, body any) error {
	return r.c.do(ctx, request{method: http.MethodPost, path: r.item(id) + "/" + name, body: body}, nil)
}

// setStatus PATCH /:id/status {status}.
func (r resource[W]) setStatus(ctx context.Context, id, status string) error {
	return r.c.do(ctx, request{method: http.MethodPatch, path: r.item(id) + "/status", body: map[string]string{"status": status}}, nil)
}

func (r resource[W]) remove(ctx context.Context, id string) error {
	return r.c.do(ctx, request{method: http.MethodDelete, path: r.item(id)}, nil)
}

// count usa pagination.total; sin paginación cuenta la colección devuelta.
func (r resource[W]) count(ctx context.Context) (int, error) {
	p, err := r.page(ctx, nil, 1, 1)
	if err != nil {
		return 0, err
	}
	if p.pagination != nil {
		return p.pagination.Total, nil
	}
	return len(p.items), nil
}

// query arma url.Values omitiendo los valores vacíos.
func query(kv ...string) url.Values {
	q := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			q.Set(kv[i], kv[i+1])
		}
	}
	return q
}

// mapAll convierte cada elemento de la lista.
func mapAll[W, E any](ws []W, fn func(W) *E) []*E {
	out := make([]*E, 0, len(ws))
	for _, w := range ws {
		out = append(out, fn(w))
	}
	return out
}
