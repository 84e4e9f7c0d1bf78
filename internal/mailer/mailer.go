// Package mailer renders and sends the notification emails triggered by
// form submissions.
package mailer

import (
	"bytes"
	"context"
	"fmt"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
)

const defaultSiteURL = "https://brandmarksolutions.site"

// Mailer composes messages for the operator inbox and for submitters.
type Mailer struct {
	sender   Sender
	operator string
	siteURL  string
}

// New returns a Mailer. operator receives submission notifications.
func New(sender Sender, operator, siteURL string) *Mailer {
	if siteURL == "" {
		siteURL = defaultSiteURL
	}
	return &Mailer{sender: sender, operator: operator, siteURL: siteURL}
}

func (m *Mailer) send(ctx context.Context, to, subject, tmpl string, data any) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, tmpl, data); err != nil {
		return fmt.Errorf("mailer: render %s: %w", tmpl, err)
	}
	return m.sender.Send(ctx, Message{To: to, Subject: subject, HTML: buf.String()})
}

func (m *Mailer) ContactNotification(ctx context.Context, c *model.Contact) error {
	return m.send(ctx, m.operator, "New Contact Form Submission - "+c.Name, "contact", c)
}

func (m *Mailer) ContactAutoReply(ctx context.Context, c *model.Contact) error {
	data := struct {
		Name    string
		SiteURL string
	}{c.Name, m.siteURL}
	return m.send(ctx, c.Email, "Thank you for contacting BrandMark Solutions", "contact_reply", data)
}

// CareerNotification links to the stored resume instead of attaching it.
func (m *Mailer) CareerNotification(ctx context.Context, a *model.CareerApplication) error {
	data := struct {
		*model.CareerApplication
		ResumeURL    string
		PortfolioURL string
	}{a, m.absolute(a.Resume), m.absolute(a.Portfolio)}
	return m.send(ctx, m.operator, "New Job Application - "+a.Position, "career", data)
}

func (m *Mailer) QuoteNotification(ctx context.Context, q *model.Quote, serviceLabel string) error {
	data := struct {
		*model.Quote
		ServiceLabel string
	}{q, serviceLabel}
	return m.send(ctx, m.operator, fmt.Sprintf("New Quote Request - %s (%s)", serviceLabel, q.QuoteDisplay), "quote", data)
}

func (m *Mailer) QuoteAutoReply(ctx context.Context, q *model.Quote, serviceLabel string) error {
	data := struct {
		Name         string
		ServiceLabel string
		QuoteDisplay string
	}{q.Name, serviceLabel, q.QuoteDisplay}
	return m.send(ctx, q.Email, "Your BrandMark Solutions quote", "quote_reply", data)
}

func (m *Mailer) NewsletterWelcome(ctx context.Context, email string) error {
	return m.send(ctx, email, "Welcome to BrandMark Solutions Newsletter!", "newsletter_welcome", nil)
}

// absolute turns a storage path like "/uploads/x.pdf" into a site URL.
func (m *Mailer) absolute(url string) string {
	if url == "" || url[0] != '/' {
		return url
	}
	return m.siteURL + url
}
