package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
)

// NewPool opens a PostgreSQL pool and verifies the connection.
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// NewPgStore wires every Pg*Repository onto pool.
func NewPgStore(pool *pgxpool.Pool) *Store {
	return &Store{
		DB:          pool,
		Admins:      NewPgAdminRepository(pool),
		Contacts:    NewPgContactRepository(pool),
		Careers:     NewPgCareerRepository(pool),
		Quotes:      NewPgQuoteRepository(pool),
		Subscribers: NewPgSubscriberRepository(pool),
		Blogs:       NewPgBlogRepository(pool),
		Dashboard:   NewPgDashboardRepository(pool),
		Close:       pool.Close,
	}
}

// where accumulates AND-ed conditions with positional arguments.
type where struct {
	conds []string
	args  []any
}

// add appends cond, replacing each "?" with the placeholder for arg.
func (w *where) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, strings.ReplaceAll(cond, "?", "$"+strconv.Itoa(len(w.args))))
}

func (w *where) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// queryer is satisfied by *pgxpool.Pool and pgx.Tx.
type queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// listPage runs a COUNT and a paginated SELECT over table with the same filter.
func listPage[T any](ctx context.Context, q queryer, table, cols string, w *where, orderBy string, page model.Page, scan func(func(...any) error) (*T, error)) ([]*T, int64, error) {
	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM `+table+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", table, err)
	}

	args := append(append([]any{}, w.args...), page.Limit, page.Offset())
	n := len(w.args)
	query := `SELECT ` + cols + ` FROM ` + table + w.String() +
		` ORDER BY ` + orderBy +
		` LIMIT $` + strconv.Itoa(n+1) + ` OFFSET $` + strconv.Itoa(n+2)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	items := []*T{}
	for rows.Next() {
		item, err := scan(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	return items, total, rows.Err()
}
