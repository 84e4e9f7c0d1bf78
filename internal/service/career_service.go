package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
	"github.com/irahulsinghrajput/BrandMark/internal/repository"
	"github.com/irahulsinghrajput/BrandMark/internal/storage"
	"github.com/irahulsinghrajput/BrandMark/internal/validation"
)

var (
	ResumeExtensions    = []string{".pdf", ".doc", ".docx"}
	PortfolioExtensions = []string{".pdf", ".zip", ".rar"}
)

// CareerInput is the multipart job application. Resume is required.
type CareerInput struct {
	Position    string
	Name        string
	Email       string
	Phone       string
	Experience  string
	CoverLetter string
	Resume      *Upload
	Portfolio   *Upload
}

func (in CareerInput) fields() validation.Fields {
	return validation.Fields{
		"position": in.Position, "name": in.Name, "email": in.Email, "phone": in.Phone,
	}
}

var careerRules = []validation.Rule{
	validation.Required("position", "Position is required"),
	validation.Required("name", "Name is required"),
	validation.Email("email", "Valid email is required"),
	validation.Required("phone", "Phone is required"),
}

// CareerService handles job applications and their review workflow.
type CareerService interface {
	Apply(ctx context.Context, in CareerInput) (*model.CareerApplication, error)
	List(ctx context.Context, opts model.CareerListOptions) ([]*model.CareerApplication, int64, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.CareerApplication, error)
}

type careerServiceImpl struct {
	repo        repository.CareerRepository
	files       storage.Storage
	notifier    Notifier
	maxFileSize int64
	now         func() time.Time
}

// NewCareerService creates a CareerService. Uploads larger than maxFileSize
// bytes are rejected.
func NewCareerService(repo repository.CareerRepository, files storage.Storage, notifier Notifier, maxFileSize int64) CareerService {
	return &careerServiceImpl{repo: repo, files: files, notifier: notifier, maxFileSize: maxFileSize, now: time.Now}
}

// checkFile validates one upload's extension and size.
func (s *careerServiceImpl) checkFile(field string, u *Upload, allowed []string, typeMsg string) *validation.FieldError {
	if !model.Contains(allowed, u.Ext()) {
		return &validation.FieldError{Field: field, Message: typeMsg}
	}
	if s.maxFileSize > 0 && u.Size > s.maxFileSize {
		return &validation.FieldError{Field: field, Message: fmt.Sprintf("File too large. Maximum size is %dMB", s.maxFileSize/(1024*1024))}
	}
	return nil
}

func (s *careerServiceImpl) Apply(ctx context.Context, in CareerInput) (*model.CareerApplication, error) {
	errs := validation.Validate(in.fields(), careerRules...)
	if in.Resume != nil {
		if fe := s.checkFile("resume", in.Resume, ResumeExtensions, "Resume must be a PDF, DOC or DOCX file"); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if in.Portfolio != nil {
		if fe := s.checkFile("portfolio", in.Portfolio, PortfolioExtensions, "Portfolio must be a PDF, ZIP or RAR file"); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if errs != nil {
		return nil, errs
	}
	if in.Resume == nil {
		return nil, ErrMissingResume
	}

	app := &model.CareerApplication{
		Position:    trim(in.Position),
		Name:        trim(in.Name),
		Email:       normalizeEmail(in.Email),
		Phone:       trim(in.Phone),
		Experience:  trim(in.Experience),
		CoverLetter: trim(in.CoverLetter),
		Status:      "new",
		CreatedAt:   s.now().UTC(),
	}

	var err error
	if app.Resume, err = s.save(ctx, "resumes", in.Resume); err != nil {
		return nil, err
	}
	if in.Portfolio != nil {
		if app.Portfolio, err = s.save(ctx, "portfolios", in.Portfolio); err != nil {
			s.discard(ctx, app.Resume)
			return nil, err
		}
	}

	if err := s.repo.Save(ctx, app); err != nil {
		s.discard(ctx, app.Resume, app.Portfolio)
		return nil, fmt.Errorf("save application: %w", err)
	}
	notify(ctx, "career", app.ID,
		func(ctx context.Context) error { return s.notifier.CareerNotification(ctx, app) },
	)
	return app, nil
}

func (s *careerServiceImpl) save(ctx context.Context, dir string, u *Upload) (string, error) {
	url, err := s.files.Save(ctx, storage.NewKey(dir, u.Filename), u.Body, u.ContentType)
	if err != nil {
		return "", fmt.Errorf("store %s: %w", dir, err)
	}
	return url, nil
}

// discard removes files stored for an application that was not persisted.
func (s *careerServiceImpl) discard(ctx context.Context, urls ...string) {
	for _, u := range urls {
		if err := storage.DeleteURL(ctx, s.files, u); err != nil {
			slog.Warn("orphaned upload", "url", u, "error", err)
		}
	}
}

func (s *careerServiceImpl) List(ctx context.Context, opts model.CareerListOptions) ([]*model.CareerApplication, int64, error) {
	return s.repo.List(ctx, opts)
}

func (s *careerServiceImpl) UpdateStatus(ctx context.Context, id, status string) (*model.CareerApplication, error) {
	status = trim(status)
	if errs := checkStatus(status, model.CareerStatuses); errs != nil {
		return nil, errs
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
