package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/wneessen/go-mail"
)

// Message is one outbound HTML email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers a Message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPConfig holds the relay settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// SMTPSender sends through an SMTP relay. The client is built on first use
// and reused afterwards; sends are serialized over it.
type SMTPSender struct {
	cfg SMTPConfig

	once   sync.Once
	client *mail.Client
	err    error

	mu sync.Mutex
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) dial() (*mail.Client, error) {
	s.once.Do(func() {
		opts := []mail.Option{
			mail.WithPort(s.cfg.Port),
			mail.WithTimeout(s.cfg.Timeout),
		}
		if s.cfg.Port == 465 {
			opts = append(opts, mail.WithSSL())
		} else {
			opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
		}
		if s.cfg.Username != "" {
			opts = append(opts,
				mail.WithSMTPAuth(mail.SMTPAuthPlain),
				mail.WithUsername(s.cfg.Username),
				mail.WithPassword(s.cfg.Password),
			)
		}
		s.client, s.err = mail.NewClient(s.cfg.Host, opts...)
	})
	return s.client, s.err
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	client, err := s.dial()
	if err != nil {
		return fmt.Errorf("mailer: build client: %w", err)
	}

	m := mail.NewMsg()
	if err := m.From(s.cfg.From); err != nil {
		return fmt.Errorf("mailer: from: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("mailer: to: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("mailer: send: %w", err)
	}
	return nil
}

// LogSender is used when SMTP is not configured. It records what would
// have been sent and never fails.
type LogSender struct{}

func (LogSender) Send(_ context.Context, msg Message) error {
	slog.Info("email not sent: SMTP not configured", "to", msg.To, "subject", msg.Subject)
	return nil
}
