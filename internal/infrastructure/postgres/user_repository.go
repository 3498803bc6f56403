package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
// El username es único sin distinguir mayúsculas (índice sobre lower(username)).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, username, name, email, password_hash, role, status, store_id, store_name, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var storeID *string
	err := row.Scan(&u.ID, &u.Username, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Status,
		&storeID, &u.StoreName, &u.CreatedAt, &u.UpdatedAt)
	u.StoreID = deref(storeID)
	return &u, err
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		user.ID, user.Username, user.Name, user.Email, user.PasswordHash, user.Role, user.Status,
		nullable(user.StoreID), user.StoreName, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return insertErr("user "+user.Username, err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	return noRows(u, err, "get user")
}

// GetByUsername obtiene un usuario por username sin distinguir mayúsculas.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(username) = lower($1)`, username))
	return noRows(u, err, "get user by username")
}

// Update actualiza los datos editables; el rol no se toca.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE users SET username = $2, name = $3, email = $4, password_hash = $5, status = $6,
			store_id = $7, store_name = $8, updated_at = $9
		WHERE id = $1`,
		user.ID, user.Username, user.Name, user.Email, user.PasswordHash, user.Status,
		nullable(user.StoreID), user.StoreName, user.UpdatedAt,
	)
	return affected(cmd, err, "update user")
}

// Delete elimina un usuario.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return affected(cmd, err, "delete user")
}

// List usuarios filtrados por rol y estado, en orden de alta.
func (r *UserRepo) List(ctx context.Context, f repository.UserFilter) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE ($1::text = '' OR role = $1) AND ($2::text = '' OR status = $2)
		ORDER BY created_at, id`, string(f.Role), f.Status)
	return collect(rows, err, "list users", func(rows pgx.Rows) (*entity.User, error) { return scanUser(rows) })
}
