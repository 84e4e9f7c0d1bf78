package handler

import (
	"context"
	"os"
	"path/filepath"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
)

func writeTestFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// nopNotifier satisfies service.Notifier without sending anything.
type nopNotifier struct{}

func (nopNotifier) ContactNotification(context.Context, *model.Contact) error          { return nil }
func (nopNotifier) ContactAutoReply(context.Context, *model.Contact) error             { return nil }
func (nopNotifier) CareerNotification(context.Context, *model.CareerApplication) error { return nil }
func (nopNotifier) QuoteNotification(context.Context, *model.Quote, string) error      { return nil }
func (nopNotifier) QuoteAutoReply(context.Context, *model.Quote, string) error         { return nil }
func (nopNotifier) NewsletterWelcome(context.Context, string) error                    { return nil }
