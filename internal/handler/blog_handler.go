package handler

import (
	"errors"
	"net/http"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
	"github.com/irahulsinghrajput/BrandMark/internal/repository"
	"github.com/irahulsinghrajput/BrandMark/internal/service"
)

const (
	msgPostNotFound = "Blog post not found"
	msgSlugTaken    = "A post with this title already exists"
)

type BlogHandler struct {
	blogService service.BlogService
	maxBodySize int64
}

func NewBlogHandler(blogService service.BlogService, maxFileSize int64) *BlogHandler {
	return &BlogHandler{blogService: blogService, maxBodySize: maxFileSize + 1<<20}
}

func blogListOptions(r *http.Request) model.BlogListOptions {
	q := r.URL.Query()
	return model.BlogListOptions{
		Category: q.Get("category"),
		Tag:      q.Get("tag"),
		Page:     parsePage(r, model.DefaultPageLimit),
	}
}

// List handles GET /api/blog: published posts without content.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := blogListOptions(r)
	items, total, err := h.blogService.ListPublished(r.Context(), opts)
	if err != nil {
		writeInternal(w, r, err)
		return
	}
	writeList(w, items, total, opts.Page)
}

// ListAll handles GET /api/blog/admin/all (admin): drafts included.
func (h *BlogHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	opts := blogListOptions(r)
	items, total, err := h.blogService.ListAll(r.Context(), opts)
	if err != nil {
		writeInternal(w, r, err)
		return
	}
	writeList(w, items, total, opts.Page)
}

// Get handles GET /api/blog/{slug} and counts the view.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.blogService.View(r.Context(), r.PathValue("slug"))
	switch {
	case err == nil:
		writeData(w, http.StatusOK, "", p)
	case errors.Is(err, repository.ErrNotFound):
		writeMessage(w, http.StatusNotFound, msgPostNotFound)
	default:
		writeInternal(w, r, err)
	}
}

// Create handles POST /api/blog (admin, multipart or urlencoded form).
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r, h.maxBodySize) {
		return
	}
	image, f, err := formFile(r, "featuredImage")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if f != nil {
		defer f.Close()
	}

	p, err := h.blogService.Create(r.Context(), service.BlogInput{
		Title:     r.FormValue("title"),
		Author:    r.FormValue("author"),
		Excerpt:   r.FormValue("excerpt"),
		Content:   r.FormValue("content"),
		Category:  r.FormValue("category"),
		Tags:      r.FormValue("tags"),
		Published: r.FormValue("published"),
		Image:     image,
	})
	switch {
	case err == nil:
		writeData(w, http.StatusCreated, "Blog post created successfully", p)
	case errors.Is(err, service.ErrSlugTaken):
		writeMessage(w, http.StatusBadRequest, msgSlugTaken)
	case writeValidation(w, err):
	default:
		writeInternal(w, r, err)
	}
}

// Update handles PUT /api/blog/{id} (admin). Only supplied fields change.
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r, h.maxBodySize) {
		return
	}
	image, f, err := formFile(r, "featuredImage")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if f != nil {
		defer f.Close()
	}

	p, err := h.blogService.Update(r.Context(), r.PathValue("id"), service.BlogUpdateInput{
		Title:     optionalField(r, "title"),
		Author:    optionalField(r, "author"),
		Excerpt:   optionalField(r, "excerpt"),
		Content:   optionalField(r, "content"),
		Category:  optionalField(r, "category"),
		Tags:      optionalField(r, "tags"),
		Published: optionalField(r, "published"),
		Image:     image,
	})
	switch {
	case err == nil:
		writeData(w, http.StatusOK, "Blog post updated successfully", p)
	case errors.Is(err, repository.ErrNotFound):
		writeMessage(w, http.StatusNotFound, msgPostNotFound)
	case errors.Is(err, service.ErrSlugTaken):
		writeMessage(w, http.StatusBadRequest, msgSlugTaken)
	case writeValidation(w, err):
	default:
		writeInternal(w, r, err)
	}
}

// Delete handles DELETE /api/blog/{id} (admin).
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.blogService.Delete(r.Context(), r.PathValue("id"))
	switch {
	case err == nil:
		writeMessage(w, http.StatusOK, "Blog post deleted successfully")
	case errors.Is(err, repository.ErrNotFound):
		writeMessage(w, http.StatusNotFound, msgPostNotFound)
	default:
		writeInternal(w, r, err)
	}
}
