package service

import (
	"context"
	"fmt"
	"time"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
	"github.com/irahulsinghrajput/BrandMark/internal/repository"
	"github.com/irahulsinghrajput/BrandMark/internal/validation"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo     repository.ContactRepository
	notifier Notifier
	now      func() time.Time
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository, notifier Notifier) ContactService {
	return &contactServiceImpl{repo: repo, notifier: notifier, now: time.Now}
}

func (s *contactServiceImpl) Submit(ctx context.Context, in ContactInput) (*model.Contact, error) {
	if errs := validation.Validate(in.fields(), contactRules...); errs != nil {
		return nil, errs
	}
	c := &model.Contact{
		Name:      trim(in.Name),
		Email:     normalizeEmail(in.Email),
		Phone:     trim(in.Phone),
		Subject:   trim(in.Subject),
		Message:   trim(in.Message),
		Status:    "new",
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("save contact: %w", err)
	}
	notify(ctx, "contact", c.ID,
		func(ctx context.Context) error { return s.notifier.ContactNotification(ctx, c) },
		func(ctx context.Context) error { return s.notifier.ContactAutoReply(ctx, c) },
	)
	return c, nil
}

func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, int64, error) {
	return s.repo.List(ctx, opts)
}

func (s *contactServiceImpl) UpdateStatus(ctx context.Context, id, status string) (*model.Contact, error) {
	status = trim(status)
	if errs := checkStatus(status, model.ContactStatuses); errs != nil {
		return nil, errs
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// checkStatus validates a workflow status against its closed set.
func checkStatus(status string, allowed []string) validation.Errors {
	return validation.Validate(validation.Fields{"status": status},
		validation.OneOf("status", "Invalid status", allowed...))
}
