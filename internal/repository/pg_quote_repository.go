package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
)

// PgQuoteRepository is the PostgreSQL implementation of QuoteRepository.
type PgQuoteRepository struct {
	pool *pgxpool.Pool
}

func NewPgQuoteRepository(pool *pgxpool.Pool) *PgQuoteRepository {
	return &PgQuoteRepository{pool: pool}
}

var _ QuoteRepository = (*PgQuoteRepository)(nil)

const quoteSelectCols = `id::text, name, email, phone, website, service_type, company_size, market,
	timeline, budget, notes, quote_amount, currency, quote_display, status, created_at`

func scanQuote(scan func(...any) error) (*model.Quote, error) {
	var q model.Quote
	if err := scan(&q.ID, &q.Name, &q.Email, &q.Phone, &q.Website, &q.ServiceType, &q.CompanySize, &q.Market,
		&q.Timeline, &q.Budget, &q.Notes, &q.QuoteAmount, &q.Currency, &q.QuoteDisplay, &q.Status, &q.CreatedAt); err != nil {
		return nil, mapPgError(err)
	}
	return &q, nil
}

func (r *PgQuoteRepository) Save(ctx context.Context, q *model.Quote) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO quotes
		   (name, email, phone, website, service_type, company_size, market, timeline, budget, notes,
		    quote_amount, currency, quote_display, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING id::text, created_at`,
		q.Name, q.Email, q.Phone, q.Website, q.ServiceType, q.CompanySize, q.Market, q.Timeline, q.Budget, q.Notes,
		q.QuoteAmount, q.Currency, q.QuoteDisplay, q.Status,
	).Scan(&q.ID, &q.CreatedAt)
}

func (r *PgQuoteRepository) List(ctx context.Context, opts model.QuoteListOptions) ([]*model.Quote, int64, error) {
	w := &where{}
	if status := strings.TrimSpace(opts.Status); status != "" {
		w.add("status = ?", status)
	}
	return listPage(ctx, r.pool, "quotes", quoteSelectCols, w, "created_at DESC", opts.Page, scanQuote)
}

// UpdateStatus changes only the status column.
func (r *PgQuoteRepository) UpdateStatus(ctx context.Context, id, status string) (*model.Quote, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	return scanQuote(r.pool.QueryRow(ctx,
		`UPDATE quotes SET status = $2 WHERE id = $1 RETURNING `+quoteSelectCols, id, status).Scan)
}
