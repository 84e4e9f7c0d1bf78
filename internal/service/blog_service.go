package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
	"github.com/irahulsinghrajput/BrandMark/internal/repository"
	"github.com/irahulsinghrajput/BrandMark/internal/storage"
	"github.com/irahulsinghrajput/BrandMark/internal/validation"
)

var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

var (
	slugStrip   = regexp.MustCompile(`[^\w\s-]`)
	slugSpaces  = regexp.MustCompile(`\s+`)
	slugHyphens = regexp.MustCompile(`-+`)
)

// Slugify lowercases title, drops everything but letters, digits, '_', '-'
// and whitespace, then joins words with single hyphens.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ParseTags splits a comma-separated list into trimmed, unique, non-empty tags.
func ParseTags(raw string) []string {
	tags := []string{}
	seen := make(map[string]bool)
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	return tags
}

// BlogInput is the create form. Tags is comma-separated and Published is
// true only for the literal "true".
type BlogInput struct {
	Title     string
	Author    string
	Excerpt   string
	Content   string
	Category  string
	Tags      string
	Published string
	Image     *Upload
}

// BlogUpdateInput holds only the fields present in the request.
type BlogUpdateInput struct {
	Title     *string
	Author    *string
	Excerpt   *string
	Content   *string
	Category  *string
	Tags      *string
	Published *string
	Image     *Upload
}

var (
	titleRules = []validation.Rule{
		validation.Required("title", "Title is required"),
		{Field: "title", Message: "Title must contain letters or digits", Check: func(v string) bool { return Slugify(v) != "" }},
	}
	excerptRules = []validation.Rule{
		validation.Required("excerpt", "Excerpt is required"),
		validation.MaxLength("excerpt", model.MaxExcerptLength, "Excerpt must be at most 300 characters"),
	}
	authorRule   = validation.Required("author", "Author is required")
	contentRule  = validation.Required("content", "Content is required")
	categoryRule = validation.Optional(validation.OneOf("category", "Invalid category", model.BlogCategories...))
)

type BlogService interface {
	// ListPublished returns published posts without content.
	ListPublished(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, int64, error)
	// View returns a published post by slug and counts the view.
	View(ctx context.Context, slug string) (*model.BlogPost, error)
	// ListAll returns drafts and published posts for the dashboard.
	ListAll(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, int64, error)
	Create(ctx context.Context, in BlogInput) (*model.BlogPost, error)
	Update(ctx context.Context, id string, in BlogUpdateInput) (*model.BlogPost, error)
	Delete(ctx context.Context, id string) error
}

type blogServiceImpl struct {
	repo        repository.BlogRepository
	files       storage.Storage
	maxFileSize int64
}

func NewBlogService(repo repository.BlogRepository, files storage.Storage, maxFileSize int64) BlogService {
	return &blogServiceImpl{repo: repo, files: files, maxFileSize: maxFileSize}
}

func (s *blogServiceImpl) ListPublished(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, int64, error) {
	opts.PublishedOnly = true
	return s.repo.List(ctx, opts)
}

func (s *blogServiceImpl) View(ctx context.Context, slug string) (*model.BlogPost, error) {
	return s.repo.IncrementViews(ctx, strings.ToLower(strings.TrimSpace(slug)))
}

func (s *blogServiceImpl) ListAll(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, int64, error) {
	opts.PublishedOnly = false
	return s.repo.List(ctx, opts)
}

func (s *blogServiceImpl) checkImage(u *Upload) validation.Errors {
	if u == nil {
		return nil
	}
	if !model.Contains(ImageExtensions, u.Ext()) {
		return validation.Errors{{Field: "featuredImage", Message: "Featured image must be a JPG, PNG, GIF or WEBP file"}}
	}
	if s.maxFileSize > 0 && u.Size > s.maxFileSize {
		return validation.Errors{{Field: "featuredImage", Message: fmt.Sprintf("File too large. Maximum size is %dMB", s.maxFileSize/(1024*1024))}}
	}
	return nil
}

func (s *blogServiceImpl) Create(ctx context.Context, in BlogInput) (*model.BlogPost, error) {
	fields := validation.Fields{
		"title": in.Title, "author": in.Author, "excerpt": in.Excerpt,
		"content": in.Content, "category": in.Category,
	}
	rules := append(append([]validation.Rule{}, titleRules...), authorRule)
	rules = append(rules, excerptRules...)
	rules = append(rules, contentRule, categoryRule)
	errs := validation.Validate(fields, rules...)
	errs = append(errs, s.checkImage(in.Image)...)
	if len(errs) > 0 {
		return nil, errs
	}

	p := &model.BlogPost{
		Title:     trim(in.Title),
		Slug:      Slugify(in.Title),
		Author:    trim(in.Author),
		Excerpt:   trim(in.Excerpt),
		Content:   in.Content,
		Category:  trim(in.Category),
		Tags:      ParseTags(in.Tags),
		Published: trim(in.Published) == "true",
	}
	if p.Category == "" {
		p.Category = model.DefaultBlogCategory
	}
	if in.Image != nil {
		url, err := s.saveImage(ctx, in.Image)
		if err != nil {
			return nil, err
		}
		p.FeaturedImage = url
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.discard(ctx, p.FeaturedImage)
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("create post: %w", err)
	}
	return p, nil
}

func (s *blogServiceImpl) Update(ctx context.Context, id string, in BlogUpdateInput) (*model.BlogPost, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := validation.Fields{}
	var rules []validation.Rule
	set := func(field string, v *string, r ...validation.Rule) {
		if v != nil {
			fields[field] = *v
			rules = append(rules, r...)
		}
	}
	set("title", in.Title, titleRules...)
	set("author", in.Author, authorRule)
	set("excerpt", in.Excerpt, excerptRules...)
	set("content", in.Content, contentRule)
	set("category", in.Category, categoryRule)
	errs := validation.Validate(fields, rules...)
	errs = append(errs, s.checkImage(in.Image)...)
	if len(errs) > 0 {
		return nil, errs
	}

	if in.Title != nil && trim(*in.Title) != p.Title {
		p.Title = trim(*in.Title)
		p.Slug = Slugify(p.Title)
	}
	if in.Author != nil {
		p.Author = trim(*in.Author)
	}
	if in.Excerpt != nil {
		p.Excerpt = trim(*in.Excerpt)
	}
	if in.Content != nil {
		p.Content = *in.Content
	}
	if in.Category != nil {
		if p.Category = trim(*in.Category); p.Category == "" {
			p.Category = model.DefaultBlogCategory
		}
	}
	if in.Tags != nil {
		p.Tags = ParseTags(*in.Tags)
	}
	if in.Published != nil {
		p.Published = trim(*in.Published) == "true"
	}

	oldImage := p.FeaturedImage
	if in.Image != nil {
		url, err := s.saveImage(ctx, in.Image)
		if err != nil {
			return nil, err
		}
		p.FeaturedImage = url
	}

	if err := s.repo.Update(ctx, p); err != nil {
		if p.FeaturedImage != oldImage {
			s.discard(ctx, p.FeaturedImage)
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("update post: %w", err)
	}
	if p.FeaturedImage != oldImage {
		s.discard(ctx, oldImage)
	}
	return p, nil
}

func (s *blogServiceImpl) Delete(ctx context.Context, id string) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.discard(ctx, p.FeaturedImage)
	return nil
}

func (s *blogServiceImpl) saveImage(ctx context.Context, u *Upload) (string, error) {
	url, err := s.files.Save(ctx, storage.NewKey("blog", u.Filename), u.Body, u.ContentType)
	if err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}
	return url, nil
}

func (s *blogServiceImpl) discard(ctx context.Context, url string) {
	if err := storage.DeleteURL(ctx, s.files, url); err != nil {
		slog.Warn("failed to delete blog image", "url", url, "error", err)
	}
}
