package repository

import (
	"context"
	"time"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
)

// DB reports whether the backing store is reachable.
type DB interface {
	Ping(ctx context.Context) error
}

// AdminRepository persists dashboard accounts.
type AdminRepository interface {
	// CreateFirst inserts a as superadmin only if no admin exists yet, else ErrAdminsExist.
	CreateFirst(ctx context.Context, a *model.Admin) error
	// Create inserts a with its Role as given. ErrDuplicate on email.
	Create(ctx context.Context, a *model.Admin) error
	FindByID(ctx context.Context, id string) (*model.Admin, error)
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]*model.Admin, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	UpdatePassword(ctx context.Context, id, hash string) error
	SetActive(ctx context.Context, id string, active bool) (*model.Admin, error)
}

type ContactRepository interface {
	Save(ctx context.Context, c *model.Contact) error
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, int64, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.Contact, error)
}

type CareerRepository interface {
	Save(ctx context.Context, c *model.CareerApplication) error
	List(ctx context.Context, opts model.CareerListOptions) ([]*model.CareerApplication, int64, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.CareerApplication, error)
}

// QuoteRepository has no method that touches pricing columns after Save.
type QuoteRepository interface {
	Save(ctx context.Context, q *model.Quote) error
	List(ctx context.Context, opts model.QuoteListOptions) ([]*model.Quote, int64, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.Quote, error)
}

type SubscriberRepository interface {
	// Subscribe inserts email or reactivates an inactive row in place, in one
	// atomic step. ErrDuplicate if the subscription is already active.
	Subscribe(ctx context.Context, email string, at time.Time) (*model.Subscriber, error)
	// Unsubscribe deactivates email. ErrNotFound if the address is unknown.
	Unsubscribe(ctx context.Context, email string, at time.Time) (*model.Subscriber, error)
	List(ctx context.Context, opts model.SubscriberListOptions) ([]*model.Subscriber, int64, error)
}

type BlogRepository interface {
	// Create inserts p. ErrDuplicate on slug.
	Create(ctx context.Context, p *model.BlogPost) error
	FindByID(ctx context.Context, id string) (*model.BlogPost, error)
	// IncrementViews atomically bumps views of a published post and returns it.
	IncrementViews(ctx context.Context, slug string) (*model.BlogPost, error)
	// Update saves every editable field of p. ErrDuplicate on slug.
	Update(ctx context.Context, p *model.BlogPost) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, int64, error)
}

type DashboardRepository interface {
	// Dashboard reads every count and the recent rows from one snapshot.
	Dashboard(ctx context.Context, recent int) (*model.Dashboard, error)
}

// Store bundles the repositories backed by one database.
type Store struct {
	DB          DB
	Admins      AdminRepository
	Contacts    ContactRepository
	Careers     CareerRepository
	Quotes      QuoteRepository
	Subscribers SubscriberRepository
	Blogs       BlogRepository
	Dashboard   DashboardRepository
	Close       func()
}
