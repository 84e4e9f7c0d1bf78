package service

import (
	"context"
	"log/slog"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
)

// Notifier sends the transactional emails triggered by form submissions.
// *mailer.Mailer satisfies it.
type Notifier interface {
	ContactNotification(ctx context.Context, c *model.Contact) error
	ContactAutoReply(ctx context.Context, c *model.Contact) error
	CareerNotification(ctx context.Context, a *model.CareerApplication) error
	QuoteNotification(ctx context.Context, q *model.Quote, serviceLabel string) error
	QuoteAutoReply(ctx context.Context, q *model.Quote, serviceLabel string) error
	NewsletterWelcome(ctx context.Context, email string) error
}

// notify runs each send in order. Failures are logged and never returned:
// the submission is already persisted.
func notify(ctx context.Context, kind, id string, sends ...func(context.Context) error) {
	for _, send := range sends {
		if err := send(ctx); err != nil {
			slog.Error("email dispatch failed", "kind", kind, "id", id, "error", err)
		}
	}
}
