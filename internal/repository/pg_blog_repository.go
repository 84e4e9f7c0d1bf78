package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
)

// PgBlogRepository is the PostgreSQL implementation of BlogRepository.
type PgBlogRepository struct {
	pool *pgxpool.Pool
}

func NewPgBlogRepository(pool *pgxpool.Pool) *PgBlogRepository {
	return &PgBlogRepository{pool: pool}
}

var _ BlogRepository = (*PgBlogRepository)(nil)

const blogSelectCols = `id::text, title, slug, author, excerpt, content, featured_image, category, tags,
	published, views, created_at, updated_at`

// blogSummaryCols returns an empty content column for list views.
const blogSummaryCols = `id::text, title, slug, author, excerpt, '' AS content, featured_image, category, tags,
	published, views, created_at, updated_at`

func scanBlog(scan func(...any) error) (*model.BlogPost, error) {
	var p model.BlogPost
	if err := scan(&p.ID, &p.Title, &p.Slug, &p.Author, &p.Excerpt, &p.Content, &p.FeaturedImage, &p.Category,
		&p.Tags, &p.Published, &p.Views, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, mapPgError(err)
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return &p, nil
}

func tagsArg(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func (r *PgBlogRepository) Create(ctx context.Context, p *model.BlogPost) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO blog_posts
		   (title, slug, author, excerpt, content, featured_image, category, tags, published)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id::text, views, created_at, updated_at`,
		p.Title, p.Slug, p.Author, p.Excerpt, p.Content, p.FeaturedImage, p.Category, tagsArg(p.Tags), p.Published,
	).Scan(&p.ID, &p.Views, &p.CreatedAt, &p.UpdatedAt)
	return mapPgError(err)
}

func (r *PgBlogRepository) FindByID(ctx context.Context, id string) (*model.BlogPost, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	return scanBlog(r.pool.QueryRow(ctx, `SELECT `+blogSelectCols+` FROM blog_posts WHERE id = $1`, id).Scan)
}

// IncrementViews is a single UPDATE so concurrent reads never lose a view.
func (r *PgBlogRepository) IncrementViews(ctx context.Context, slug string) (*model.BlogPost, error) {
	return scanBlog(r.pool.QueryRow(ctx,
		`UPDATE blog_posts SET views = views + 1
		 WHERE slug = $1 AND published = TRUE
		 RETURNING `+blogSelectCols, slug).Scan)
}

// Update never writes views, so it cannot clobber concurrent increments.
func (r *PgBlogRepository) Update(ctx context.Context, p *model.BlogPost) error {
	if !validID(p.ID) {
		return ErrNotFound
	}
	err := r.pool.QueryRow(ctx,
		`UPDATE blog_posts
		 SET title = $2, slug = $3, author = $4, excerpt = $5, content = $6, featured_image = $7,
		     category = $8, tags = $9, published = $10, updated_at = NOW()
		 WHERE id = $1
		 RETURNING views, updated_at`,
		p.ID, p.Title, p.Slug, p.Author, p.Excerpt, p.Content, p.FeaturedImage, p.Category, tagsArg(p.Tags), p.Published,
	).Scan(&p.Views, &p.UpdatedAt)
	return mapPgError(err)
}

func (r *PgBlogRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrNotFound
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgBlogRepository) List(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, int64, error) {
	w := &where{}
	cols := blogSelectCols
	if opts.PublishedOnly {
		w.add("published = ?", true)
		cols = blogSummaryCols
	}
	if c := strings.TrimSpace(opts.Category); c != "" {
		w.add("category = ?", c)
	}
	if t := strings.TrimSpace(opts.Tag); t != "" {
		w.add("? = ANY(tags)", t)
	}
	return listPage(ctx, r.pool, "blog_posts", cols, w, "created_at DESC", opts.Page, scanBlog)
}
