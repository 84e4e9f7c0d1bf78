package handler

import (
	"errors"
	"net/http"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
	"github.com/irahulsinghrajput/BrandMark/internal/repository"
	"github.com/irahulsinghrajput/BrandMark/internal/service"
)

// ContactHandler handles contact form submission and admin listing.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req service.ContactInput
	if !decodeJSON(w, r, &req) {
		return
	}
	if _, err := h.contactService.Submit(r.Context(), req); err != nil {
		if !writeValidation(w, err) {
			writeInternal(w, r, err)
		}
		return
	}
	writeMessage(w, http.StatusCreated, "Thank you for contacting us! We will get back to you soon.")
}

// List handles GET /api/contact (admin). Query params: status, page, limit.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := model.ContactListOptions{
		Status: r.URL.Query().Get("status"),
		Page:   parsePage(r, model.DefaultPageLimit),
	}
	items, total, err := h.contactService.List(r.Context(), opts)
	if err != nil {
		writeInternal(w, r, err)
		return
	}
	writeList(w, items, total, opts.Page)
}

// UpdateStatus handles PATCH /api/contact/{id}/status (admin).
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	c, err := h.contactService.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
	switch {
	case err == nil:
		writeData(w, http.StatusOK, "", c)
	case errors.Is(err, repository.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "Contact not found")
	case writeValidation(w, err):
	default:
		writeInternal(w, r, err)
	}
}
