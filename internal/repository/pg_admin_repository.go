package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
)

// PgAdminRepository is the PostgreSQL implementation of AdminRepository.
type PgAdminRepository struct {
	pool *pgxpool.Pool
}

func NewPgAdminRepository(pool *pgxpool.Pool) *PgAdminRepository {
	return &PgAdminRepository{pool: pool}
}

var _ AdminRepository = (*PgAdminRepository)(nil)

const adminSelectCols = `id::text, email, password_hash, name, role, is_active, last_login, created_at, updated_at`

func scanAdmin(scan func(...any) error) (*model.Admin, error) {
	var a model.Admin
	if err := scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.Role, &a.IsActive, &a.LastLogin, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, mapPgError(err)
	}
	return &a, nil
}

const insertAdmin = `INSERT INTO admins (email, password_hash, name, role, is_active)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id::text, created_at, updated_at`

// CreateFirst takes a table lock so that two concurrent bootstrap
// registrations cannot both become superadmin.
func (r *PgAdminRepository) CreateFirst(ctx context.Context, a *model.Admin) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `LOCK TABLE admins IN SHARE ROW EXCLUSIVE MODE`); err != nil {
			return fmt.Errorf("lock admins: %w", err)
		}
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM admins)`).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return ErrAdminsExist
		}
		a.Role = model.RoleSuperAdmin
		a.IsActive = true
		err := tx.QueryRow(ctx, insertAdmin, a.Email, a.PasswordHash, a.Name, a.Role, a.IsActive).
			Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
		return mapPgError(err)
	})
}

func (r *PgAdminRepository) Create(ctx context.Context, a *model.Admin) error {
	err := r.pool.QueryRow(ctx, insertAdmin, a.Email, a.PasswordHash, a.Name, a.Role, a.IsActive).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	return mapPgError(err)
}

func (r *PgAdminRepository) FindByID(ctx context.Context, id string) (*model.Admin, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	return scanAdmin(r.pool.QueryRow(ctx, `SELECT `+adminSelectCols+` FROM admins WHERE id = $1`, id).Scan)
}

func (r *PgAdminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	return scanAdmin(r.pool.QueryRow(ctx, `SELECT `+adminSelectCols+` FROM admins WHERE email = $1`, email).Scan)
}

func (r *PgAdminRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&n)
	return n, err
}

// List returns admins oldest first.
func (r *PgAdminRepository) List(ctx context.Context) ([]*model.Admin, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+adminSelectCols+` FROM admins ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	admins := []*model.Admin{}
	for rows.Next() {
		a, err := scanAdmin(rows.Scan)
		if err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

func (r *PgAdminRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.execOne(ctx, `UPDATE admins SET last_login = $2, updated_at = NOW() WHERE id = $1`, id, at)
}

func (r *PgAdminRepository) UpdatePassword(ctx context.Context, id, hash string) error {
	return r.execOne(ctx, `UPDATE admins SET password_hash = $2, updated_at = NOW() WHERE id = $1`, id, hash)
}

func (r *PgAdminRepository) SetActive(ctx context.Context, id string, active bool) (*model.Admin, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	return scanAdmin(r.pool.QueryRow(ctx,
		`UPDATE admins SET is_active = $2, updated_at = NOW() WHERE id = $1 RETURNING `+adminSelectCols,
		id, active).Scan)
}

// execOne runs an UPDATE keyed by id and reports ErrNotFound when no row matched.
func (r *PgAdminRepository) execOne(ctx context.Context, sql, id string, args ...any) error {
	if !validID(id) {
		return ErrNotFound
	}
	tag, err := r.pool.Exec(ctx, sql, append([]any{id}, args...)...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
