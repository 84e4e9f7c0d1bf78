package service

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
)

// ---------------------------------------------------------------------------
// mockNotifier records every email the services try to send
// ---------------------------------------------------------------------------

type mockNotifier struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (m *mockNotifier) record(kind string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, kind)
	return m.err
}

func (m *mockNotifier) ContactNotification(ctx context.Context, c *model.Contact) error {
	return m.record("contact")
}

func (m *mockNotifier) ContactAutoReply(ctx context.Context, c *model.Contact) error {
	return m.record("contact_reply")
}

func (m *mockNotifier) CareerNotification(ctx context.Context, a *model.CareerApplication) error {
	return m.record("career")
}

func (m *mockNotifier) QuoteNotification(ctx context.Context, q *model.Quote, label string) error {
	return m.record("quote")
}

func (m *mockNotifier) QuoteAutoReply(ctx context.Context, q *model.Quote, label string) error {
	return m.record("quote_reply")
}

func (m *mockNotifier) NewsletterWelcome(ctx context.Context, email string) error {
	return m.record("newsletter_welcome")
}

// ---------------------------------------------------------------------------
// mockStorage keeps uploaded files in memory
// ---------------------------------------------------------------------------

type mockStorage struct {
	files   map[string][]byte
	saveErr error
	deleted []string
}

func newMockStorage() *mockStorage {
	return &mockStorage{files: map[string][]byte{}}
}

func (m *mockStorage) Save(ctx context.Context, key string, data io.Reader, contentType string) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	b, _ := io.ReadAll(data)
	m.files[key] = b
	return "/uploads/" + key, nil
}

func (m *mockStorage) Delete(ctx context.Context, key string) error {
	delete(m.files, key)
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *mockStorage) KeyFromURL(url string) (string, bool) {
	return strings.CutPrefix(url, "/uploads/")
}

func upload(name string, size int) *Upload {
	return &Upload{Filename: name, Size: int64(size), Body: bytes.NewReader(make([]byte, size))}
}

func fixedClock() func() time.Time {
	t := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}
