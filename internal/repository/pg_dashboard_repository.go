package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
)

// PgDashboardRepository is the PostgreSQL implementation of DashboardRepository.
type PgDashboardRepository struct {
	pool *pgxpool.Pool
}

func NewPgDashboardRepository(pool *pgxpool.Pool) *PgDashboardRepository {
	return &PgDashboardRepository{pool: pool}
}

var _ DashboardRepository = (*PgDashboardRepository)(nil)

// Dashboard runs every query in one read-only REPEATABLE READ transaction,
// so all counts come from the same snapshot.
func (r *PgDashboardRepository) Dashboard(ctx context.Context, recent int) (*model.Dashboard, error) {
	d := &model.Dashboard{}
	err := pgx.BeginTxFunc(ctx, r.pool, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}, func(tx pgx.Tx) error {
		s := &d.Stats
		err := tx.QueryRow(ctx, `SELECT
			(SELECT COUNT(*) FROM contacts),
			(SELECT COUNT(*) FROM contacts WHERE status = 'new'),
			(SELECT COUNT(*) FROM career_applications),
			(SELECT COUNT(*) FROM career_applications WHERE status = 'new'),
			(SELECT COUNT(*) FROM quotes),
			(SELECT COUNT(*) FROM quotes WHERE status = 'new'),
			(SELECT COUNT(*) FROM subscribers WHERE is_active),
			(SELECT COUNT(*) FROM blog_posts),
			(SELECT COUNT(*) FROM blog_posts WHERE published)`,
		).Scan(&s.Contacts.Total, &s.Contacts.New,
			&s.Applications.Total, &s.Applications.New,
			&s.Quotes.Total, &s.Quotes.New,
			&s.Subscribers,
			&s.Blogs.Total, &s.Blogs.Published)
		if err != nil {
			return fmt.Errorf("dashboard counts: %w", err)
		}

		if d.RecentActivities.Contacts, err = recentContacts(ctx, tx, recent); err != nil {
			return err
		}
		d.RecentActivities.Applications, err = recentApplications(ctx, tx, recent)
		return err
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func recentContacts(ctx context.Context, tx pgx.Tx, limit int) ([]model.RecentContact, error) {
	rows, err := tx.Query(ctx,
		`SELECT id::text, name, email, subject, status, created_at
		 FROM contacts ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent contacts: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.RecentContact, error) {
		var c model.RecentContact
		err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Status, &c.CreatedAt)
		return c, err
	})
}

func recentApplications(ctx context.Context, tx pgx.Tx, limit int) ([]model.RecentApplication, error) {
	rows, err := tx.Query(ctx,
		`SELECT id::text, name, position, email, status, created_at
		 FROM career_applications ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent applications: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.RecentApplication, error) {
		var a model.RecentApplication
		err := row.Scan(&a.ID, &a.Name, &a.Position, &a.Email, &a.Status, &a.CreatedAt)
		return a, err
	})
}
