package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
	"github.com/irahulsinghrajput/BrandMark/internal/pricing"
	"github.com/irahulsinghrajput/BrandMark/internal/repository"
	"github.com/irahulsinghrajput/BrandMark/internal/validation"
)

type QuoteInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Website     string `json:"website"`
	ServiceType string `json:"serviceType"`
	CompanySize string `json:"companySize"`
	Market      string `json:"market"`
	Timeline    string `json:"timeline"`
	Budget      string `json:"budget"`
	Notes       string `json:"notes"`
}

func (in QuoteInput) fields() validation.Fields {
	return validation.Fields{
		"name": in.Name, "email": in.Email, "serviceType": in.ServiceType,
		"companySize": in.CompanySize, "market": in.Market,
	}
}

var quoteRules = []validation.Rule{
	validation.Required("name", "Name is required"),
	validation.Email("email", "Valid email is required"),
	validation.OneOf("serviceType", "Invalid service type", pricing.ServiceTypes()...),
	validation.OneOf("companySize", "Invalid company size", pricing.CompanySizes()...),
	validation.OneOf("market", "Invalid market", pricing.Markets()...),
}

// QuoteResult is the priced quote plus its human-readable service name.
type QuoteResult struct {
	Quote        *model.Quote
	ServiceLabel string
}

type QuoteService interface {
	// Request validates the form, prices it and stores the quote. The price
	// fields on the stored record are never modified afterwards.
	Request(ctx context.Context, in QuoteInput) (*QuoteResult, error)
	List(ctx context.Context, opts model.QuoteListOptions) ([]*model.Quote, int64, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.Quote, error)
}

type quoteServiceImpl struct {
	repo     repository.QuoteRepository
	notifier Notifier
	now      func() time.Time
}

func NewQuoteService(repo repository.QuoteRepository, notifier Notifier) QuoteService {
	return &quoteServiceImpl{repo: repo, notifier: notifier, now: time.Now}
}

func (s *quoteServiceImpl) Request(ctx context.Context, in QuoteInput) (*QuoteResult, error) {
	if errs := validation.Validate(in.fields(), quoteRules...); errs != nil {
		return nil, errs
	}
	serviceType, market := trim(in.ServiceType), trim(in.Market)
	price, err := pricing.Quote(serviceType, market)
	if err != nil {
		if errors.Is(err, pricing.ErrUnsupportedCombination) {
			return nil, ErrQuoteUnavailable
		}
		return nil, err
	}

	q := &model.Quote{
		Name:         trim(in.Name),
		Email:        normalizeEmail(in.Email),
		Phone:        trim(in.Phone),
		Website:      trim(in.Website),
		ServiceType:  serviceType,
		CompanySize:  trim(in.CompanySize),
		Market:       market,
		Timeline:     trim(in.Timeline),
		Budget:       trim(in.Budget),
		Notes:        trim(in.Notes),
		QuoteAmount:  price.Amount,
		Currency:     price.Currency,
		QuoteDisplay: price.Display,
		Status:       "new",
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Save(ctx, q); err != nil {
		return nil, fmt.Errorf("save quote: %w", err)
	}

	label := pricing.ServiceLabel(serviceType)
	notify(ctx, "quote", q.ID,
		func(ctx context.Context) error { return s.notifier.QuoteNotification(ctx, q, label) },
		func(ctx context.Context) error { return s.notifier.QuoteAutoReply(ctx, q, label) },
	)
	return &QuoteResult{Quote: q, ServiceLabel: label}, nil
}

func (s *quoteServiceImpl) List(ctx context.Context, opts model.QuoteListOptions) ([]*model.Quote, int64, error) {
	return s.repo.List(ctx, opts)
}

func (s *quoteServiceImpl) UpdateStatus(ctx context.Context, id, status string) (*model.Quote, error) {
	status = trim(status)
	if errs := checkStatus(status, model.QuoteStatuses); errs != nil {
		return nil, errs
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
