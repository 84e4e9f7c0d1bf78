package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
	"github.com/irahulsinghrajput/BrandMark/internal/repository"
	"github.com/irahulsinghrajput/BrandMark/internal/service"
)

type CareerHandler struct {
	careerService service.CareerService
	maxBodySize   int64
}

// NewCareerHandler creates a CareerHandler. Request bodies are capped at
// room for two files of maxFileSize plus form fields.
func NewCareerHandler(careerService service.CareerService, maxFileSize int64) *CareerHandler {
	return &CareerHandler{careerService: careerService, maxBodySize: 2*maxFileSize + 1<<20}
}

// Apply handles POST /api/careers (multipart: resume required, portfolio optional).
func (h *CareerHandler) Apply(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r, h.maxBodySize) {
		return
	}
	in := service.CareerInput{
		Position:    r.FormValue("position"),
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
		Phone:       r.FormValue("phone"),
		Experience:  r.FormValue("experience"),
		CoverLetter: r.FormValue("coverLetter"),
	}

	var files []multipart.File
	defer func() {
		for _, f := range files {
			_ = f.Close()
		}
	}()
	for field, dst := range map[string]**service.Upload{"resume": &in.Resume, "portfolio": &in.Portfolio} {
		u, f, err := formFile(r, field)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, msgInvalidBody)
			return
		}
		if f != nil {
			files = append(files, f)
		}
		*dst = u
	}

	_, err := h.careerService.Apply(r.Context(), in)
	switch {
	case err == nil:
		writeMessage(w, http.StatusCreated, "Application submitted successfully!")
	case errors.Is(err, service.ErrMissingResume):
		writeMessage(w, http.StatusBadRequest, "Resume is required")
	case writeValidation(w, err):
	default:
		writeInternal(w, r, err)
	}
}

// List handles GET /api/careers (admin). Query params: status, position, page, limit.
func (h *CareerHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := model.CareerListOptions{
		Status:   q.Get("status"),
		Position: q.Get("position"),
		Page:     parsePage(r, model.DefaultPageLimit),
	}
	items, total, err := h.careerService.List(r.Context(), opts)
	if err != nil {
		writeInternal(w, r, err)
		return
	}
	writeList(w, items, total, opts.Page)
}

// UpdateStatus handles PATCH /api/careers/{id}/status (admin).
func (h *CareerHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	a, err := h.careerService.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
	switch {
	case err == nil:
		writeData(w, http.StatusOK, "", a)
	case errors.Is(err, repository.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "Application not found")
	case writeValidation(w, err):
	default:
		writeInternal(w, r, err)
	}
}
