package memory

import (
	"fmt"

	"github.com/jhoicas/CentralKitchen-api/internal/domain"
)

// Operaciones genéricas sobre una colección en orden de inserción.

func indexOf[T any](rows []T, id string, key func(*T) string) int {
	for i := range rows {
		if key(&rows[i]) == id {
			return i
		}
	}
	return -1
}

func getRow[T any](rows []T, id string, key func(*T) string, clone func(T) T) *T {
	i := indexOf(rows, id, key)
	if i < 0 {
		return nil
	}
	out := clone(rows[i])
	return &out
}

func insertRow[T any](rows *[]T, v *T, key func(*T) string, clone func(T) T) error {
	if indexOf(*rows, key(v), key) >= 0 {
		return fmt.Errorf("%w: id %s", domain.ErrDuplicate, key(v))
	}
	*rows = append(*rows, clone(*v))
	return nil
}

func updateRow[T any](rows []T, v *T, key func(*T) string, clone func(T) T) error {
	i := indexOf(rows, key(v), key)
	if i < 0 {
		return domain.ErrNotFound
	}
	rows[i] = clone(*v)
	return nil
}

func deleteRow[T any](rows *[]T, id string, key func(*T) string) error {
	i := indexOf(*rows, id, key)
	if i < 0 {
		return domain.ErrNotFound
	}
	*rows = append((*rows)[:i:i], (*rows)[i+1:]...)
	return nil
}

func listRows[T any](rows []T, keep func(*T) bool, clone func(T) T) []*T {
	out := make([]*T, 0, len(rows))
	for i := range rows {
		if keep != nil && !keep(&rows[i]) {
			continue
		}
		v := clone(rows[i])
		out = append(out, &v)
	}
	return out
}

// reversed devuelve la lista en orden inverso (más recientes primero).
func reversed[T any](list []*T) []*T {
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
	return list
}
