package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
	"github.com/irahulsinghrajput/BrandMark/internal/repository"
	"github.com/irahulsinghrajput/BrandMark/internal/validation"
)

var newsletterRules = []validation.Rule{
	validation.Email("email", "Valid email is required"),
}

type NewsletterService interface {
	// Subscribe adds email or reactivates a previous subscription.
	// ErrAlreadySubscribed if it is already active.
	Subscribe(ctx context.Context, email string) (*model.Subscriber, error)
	// Unsubscribe deactivates email. repository.ErrNotFound if unknown.
	Unsubscribe(ctx context.Context, email string) (*model.Subscriber, error)
	List(ctx context.Context, opts model.SubscriberListOptions) ([]*model.Subscriber, int64, error)
}

type newsletterServiceImpl struct {
	repo     repository.SubscriberRepository
	notifier Notifier
	now      func() time.Time
}

func NewNewsletterService(repo repository.SubscriberRepository, notifier Notifier) NewsletterService {
	return &newsletterServiceImpl{repo: repo, notifier: notifier, now: time.Now}
}

func (s *newsletterServiceImpl) Subscribe(ctx context.Context, email string) (*model.Subscriber, error) {
	if errs := validation.Validate(validation.Fields{"email": email}, newsletterRules...); errs != nil {
		return nil, errs
	}
	email = normalizeEmail(email)
	sub, err := s.repo.Subscribe(ctx, email, s.now().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadySubscribed
		}
		return nil, fmt.Errorf("subscribe: %w", err)
	}
	notify(ctx, "newsletter", sub.ID,
		func(ctx context.Context) error { return s.notifier.NewsletterWelcome(ctx, sub.Email) },
	)
	return sub, nil
}

func (s *newsletterServiceImpl) Unsubscribe(ctx context.Context, email string) (*model.Subscriber, error) {
	return s.repo.Unsubscribe(ctx, normalizeEmail(email), s.now().UTC())
}

func (s *newsletterServiceImpl) List(ctx context.Context, opts model.SubscriberListOptions) ([]*model.Subscriber, int64, error) {
	return s.repo.List(ctx, opts)
}
