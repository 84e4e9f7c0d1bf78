package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

const contactSelectCols = `id::text, name, email, phone, subject, message, status, created_at`

func scanContact(scan func(...any) error) (*model.Contact, error) {
	var c model.Contact
	if err := scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Message, &c.Status, &c.CreatedAt); err != nil {
		return nil, mapPgError(err)
	}
	return &c, nil
}

// Save inserts a new contacts row and populates c.ID and CreatedAt
// from the database RETURNING clause.
func (r *PgContactRepository) Save(ctx context.Context, c *model.Contact) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contacts (name, email, phone, subject, message, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id::text, created_at`,
		c.Name, c.Email, c.Phone, c.Subject, c.Message, c.Status,
	).Scan(&c.ID, &c.CreatedAt)
}

// List returns contacts newest first, filtered by status when set.
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, int64, error) {
	w := &where{}
	if status := strings.TrimSpace(opts.Status); status != "" {
		w.add("status = ?", status)
	}
	return listPage(ctx, r.pool, "contacts", contactSelectCols, w, "created_at DESC", opts.Page, scanContact)
}

func (r *PgContactRepository) UpdateStatus(ctx context.Context, id, status string) (*model.Contact, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	return scanContact(r.pool.QueryRow(ctx,
		`UPDATE contacts SET status = $2 WHERE id = $1 RETURNING `+contactSelectCols, id, status).Scan)
}
