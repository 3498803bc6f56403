package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/CentralKitchen-api/internal/domain"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
)

var _ repository.UserRepository = UserRepo{}

// UserRepo usuarios en memoria. El username es único sin distinguir mayúsculas.
type UserRepo struct{ view }

func userKey(u *entity.User) string { return u.ID }

func (r UserRepo) Create(_ context.Context, user *entity.User) error {
	return r.write(func(d *dataset) error {
		for i := range d.users {
			if strings.EqualFold(d.users[i].Username, user.Username) {
				return fmt.Errorf("%w: username %s", domain.ErrDuplicate, user.Username)
			}
		}
		return insertRow(&d.users, user, userKey, same[entity.User])
	})
}

func (r UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	var out *entity.User
	err := r.read(func(d *dataset) error {
		out = getRow(d.users, id, userKey, same[entity.User])
		return nil
	})
	return out, err
}

func (r UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	var out *entity.User
	err := r.read(func(d *dataset) error {
		for i := range d.users {
			if strings.EqualFold(d.users[i].Username, username) {
				u := d.users[i]
				out = &u
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r UserRepo) Update(_ context.Context, user *entity.User) error {
	return r.write(func(d *dataset) error {
		for i := range d.users {
			if d.users[i].ID != user.ID && strings.EqualFold(d.users[i].Username, user.Username) {
				return fmt.Errorf("%w: username %s", domain.ErrDuplicate, user.Username)
			}
		}
		return updateRow(d.users, user, userKey, same[entity.User])
	})
}

func (r UserRepo) Delete(_ context.Context, id string) error {
	return r.write(func(d *dataset) error { return deleteRow(&d.users, id, userKey) })
}

func (r UserRepo) List(_ context.Context, f repository.UserFilter) ([]*entity.User, error) {
	var out []*entity.User
	err := r.read(func(d *dataset) error {
		out = listRows(d.users, func(u *entity.User) bool {
			return (f.Role == "" || u.Role == f.Role) && (f.Status == "" || u.Status == f.Status)
		}, same[entity.User])
		return nil
	})
	return out, err
}
