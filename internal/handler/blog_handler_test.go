package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
	"github.com/irahulsinghrajput/BrandMark/internal/repository"
	"github.com/irahulsinghrajput/BrandMark/internal/service"
)

func TestBlogHandler_List_PassesFilters(t *testing.T) {
	var got model.BlogListOptions
	h := NewBlogHandler(&mockBlogService{
		listPublishedFunc: func(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, int64, error) {
			got = opts
			return []*model.BlogPost{{ID: "p1", Title: "Hi"}}, 21, nil
		},
	}, 1<<20)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/blog?category=news&tag=go&page=2&limit=10", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Category != "news" || got.Tag != "go" || got.Number != 2 || got.Limit != 10 {
		t.Errorf("unexpected options %+v", got)
	}
	body := decodeBody(t, rec)
	if body["totalPages"] != float64(3) || body["currentPage"] != float64(2) || body["total"] != float64(21) {
		t.Errorf("unexpected pagination %v", body)
	}
}

func TestBlogHandler_Get(t *testing.T) {
	h := NewBlogHandler(&mockBlogService{
		viewFunc: func(ctx context.Context, slug string) (*model.BlogPost, error) {
			if slug == "hello-world" {
				return &model.BlogPost{Slug: slug, Views: 1}, nil
			}
			return nil, repository.ErrNotFound
		},
	}, 1<<20)

	get := func(slug string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/blog/"+slug, nil)
		req.SetPathValue("slug", slug)
		rec := httptest.NewRecorder()
		h.Get(rec, req)
		return rec
	}
	if rec := get("hello-world"); rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	rec := get("draft")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if msg := decodeBody(t, rec)["message"]; msg != msgPostNotFound {
		t.Errorf("unexpected message %v", msg)
	}
}

func TestBlogHandler_Create_WithImage(t *testing.T) {
	var got service.BlogInput
	var image string
	h := NewBlogHandler(&mockBlogService{
		createFunc: func(ctx context.Context, in service.BlogInput) (*model.BlogPost, error) {
			got = in
			if in.Image != nil {
				b, _ := io.ReadAll(in.Image.Body)
				image = string(b)
			}
			return &model.BlogPost{ID: "p1", Title: in.Title, Slug: "hello-world"}, nil
		},
	}, 1<<20)

	req := multipartRequest(t, map[string]string{
		"title": "Hello World", "author": "Rahul", "excerpt": "e", "content": "c",
		"category": "news", "tags": "go, web", "published": "true",
	}, formPart{"featuredImage", "cover.png", "PNGDATA"})
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if got.Title != "Hello World" || got.Tags != "go, web" || got.Published != "true" {
		t.Errorf("unexpected input %+v", got)
	}
	if got.Image == nil || got.Image.Filename != "cover.png" || image != "PNGDATA" {
		t.Errorf("image not passed through: %+v %q", got.Image, image)
	}
}

func TestBlogHandler_Create_SlugTaken(t *testing.T) {
	h := NewBlogHandler(&mockBlogService{
		createFunc: func(ctx context.Context, in service.BlogInput) (*model.BlogPost, error) {
			return nil, service.ErrSlugTaken
		},
	}, 1<<20)

	form := url.Values{"title": {"Hello"}}
	req := httptest.NewRequest(http.MethodPost, "/api/blog", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeBody(t, rec)["message"]; msg != msgSlugTaken {
		t.Errorf("unexpected message %v", msg)
	}
}

func TestBlogHandler_Update_OnlySuppliedFields(t *testing.T) {
	var got service.BlogUpdateInput
	var gotID string
	h := NewBlogHandler(&mockBlogService{
		updateFunc: func(ctx context.Context, id string, in service.BlogUpdateInput) (*model.BlogPost, error) {
			gotID, got = id, in
			return &model.BlogPost{ID: id}, nil
		},
	}, 1<<20)

	form := url.Values{"published": {"false"}, "excerpt": {""}}
	req := httptest.NewRequest(http.MethodPut, "/api/blog/p1", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("id", "p1")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != "p1" {
		t.Errorf("expected id p1, got %q", gotID)
	}
	if got.Title != nil || got.Content != nil || got.Image != nil {
		t.Errorf("absent fields must stay nil: %+v", got)
	}
	if got.Published == nil || *got.Published != "false" {
		t.Errorf("expected published=false, got %v", got.Published)
	}
	if got.Excerpt == nil || *got.Excerpt != "" {
		t.Errorf("an empty supplied field must be kept, got %v", got.Excerpt)
	}
}

func TestBlogHandler_Delete(t *testing.T) {
	h := NewBlogHandler(&mockBlogService{
		deleteFunc: func(ctx context.Context, id string) error {
			if id == "p1" {
				return nil
			}
			return repository.ErrNotFound
		},
	}, 1<<20)

	del := func(id string) int {
		req := httptest.NewRequest(http.MethodDelete, "/api/blog/"+id, nil)
		req.SetPathValue("id", id)
		rec := httptest.NewRecorder()
		h.Delete(rec, req)
		return rec.Code
	}
	if code := del("p1"); code != http.StatusOK {
		t.Errorf("expected 200, got %d", code)
	}
	if code := del("p9"); code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
}
