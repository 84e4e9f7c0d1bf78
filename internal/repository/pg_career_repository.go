package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
)

// PgCareerRepository is the PostgreSQL implementation of CareerRepository.
type PgCareerRepository struct {
	pool *pgxpool.Pool
}

func NewPgCareerRepository(pool *pgxpool.Pool) *PgCareerRepository {
	return &PgCareerRepository{pool: pool}
}

var _ CareerRepository = (*PgCareerRepository)(nil)

const careerSelectCols = `id::text, position, name, email, phone, experience, cover_letter, resume, portfolio, status, created_at`

func scanCareer(scan func(...any) error) (*model.CareerApplication, error) {
	var c model.CareerApplication
	if err := scan(&c.ID, &c.Position, &c.Name, &c.Email, &c.Phone, &c.Experience, &c.CoverLetter,
		&c.Resume, &c.Portfolio, &c.Status, &c.CreatedAt); err != nil {
		return nil, mapPgError(err)
	}
	return &c, nil
}

func (r *PgCareerRepository) Save(ctx context.Context, c *model.CareerApplication) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO career_applications
		   (position, name, email, phone, experience, cover_letter, resume, portfolio, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id::text, created_at`,
		c.Position, c.Name, c.Email, c.Phone, c.Experience, c.CoverLetter, c.Resume, c.Portfolio, c.Status,
	).Scan(&c.ID, &c.CreatedAt)
}

// List filters by exact status and case-insensitive position substring.
func (r *PgCareerRepository) List(ctx context.Context, opts model.CareerListOptions) ([]*model.CareerApplication, int64, error) {
	w := &where{}
	if status := strings.TrimSpace(opts.Status); status != "" {
		w.add("status = ?", status)
	}
	if pos := strings.TrimSpace(opts.Position); pos != "" {
		w.add("position ILIKE ?", "%"+escapeLike(pos)+"%")
	}
	return listPage(ctx, r.pool, "career_applications", careerSelectCols, w, "created_at DESC", opts.Page, scanCareer)
}

func (r *PgCareerRepository) UpdateStatus(ctx context.Context, id, status string) (*model.CareerApplication, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	return scanCareer(r.pool.QueryRow(ctx,
		`UPDATE career_applications SET status = $2 WHERE id = $1 RETURNING `+careerSelectCols, id, status).Scan)
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
