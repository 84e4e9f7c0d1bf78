package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
)

// PgSubscriberRepository is the PostgreSQL implementation of SubscriberRepository.
type PgSubscriberRepository struct {
	pool *pgxpool.Pool
}

func NewPgSubscriberRepository(pool *pgxpool.Pool) *PgSubscriberRepository {
	return &PgSubscriberRepository{pool: pool}
}

var _ SubscriberRepository = (*PgSubscriberRepository)(nil)

const subscriberSelectCols = `id::text, email, is_active, subscribed_at, unsubscribed_at`

func scanSubscriber(scan func(...any) error) (*model.Subscriber, error) {
	var s model.Subscriber
	if err := scan(&s.ID, &s.Email, &s.IsActive, &s.SubscribedAt, &s.UnsubscribedAt); err != nil {
		return nil, mapPgError(err)
	}
	return &s, nil
}

// Subscribe relies on the conflict branch returning no row when the existing
// subscription is already active.
func (r *PgSubscriberRepository) Subscribe(ctx context.Context, email string, at time.Time) (*model.Subscriber, error) {
	s, err := scanSubscriber(r.pool.QueryRow(ctx,
		`INSERT INTO subscribers (email, is_active, subscribed_at)
		 VALUES ($1, TRUE, $2)
		 ON CONFLICT (email) DO UPDATE
		   SET is_active = TRUE, subscribed_at = EXCLUDED.subscribed_at, unsubscribed_at = NULL
		   WHERE subscribers.is_active = FALSE
		 RETURNING `+subscriberSelectCols,
		email, at).Scan)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrDuplicate
	}
	return s, err
}

// Unsubscribe keeps the first unsubscribed_at when called repeatedly.
func (r *PgSubscriberRepository) Unsubscribe(ctx context.Context, email string, at time.Time) (*model.Subscriber, error) {
	return scanSubscriber(r.pool.QueryRow(ctx,
		`UPDATE subscribers
		 SET is_active = FALSE, unsubscribed_at = COALESCE(unsubscribed_at, $2)
		 WHERE email = $1
		 RETURNING `+subscriberSelectCols,
		email, at).Scan)
}

func (r *PgSubscriberRepository) List(ctx context.Context, opts model.SubscriberListOptions) ([]*model.Subscriber, int64, error) {
	w := &where{}
	w.add("is_active = ?", opts.Active)
	return listPage(ctx, r.pool, "subscribers", subscriberSelectCols, w, "subscribed_at DESC", opts.Page, scanSubscriber)
}
