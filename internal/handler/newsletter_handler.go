package handler

import (
	"errors"
	"net/http"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
	"github.com/irahulsinghrajput/BrandMark/internal/repository"
	"github.com/irahulsinghrajput/BrandMark/internal/service"
)

const newsletterPageLimit = 50

type NewsletterHandler struct {
	newsletterService service.NewsletterService
}

func NewNewsletterHandler(newsletterService service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe handles POST /api/newsletter.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	_, err := h.newsletterService.Subscribe(r.Context(), req.Email)
	switch {
	case err == nil:
		writeMessage(w, http.StatusCreated, "Successfully subscribed to newsletter!")
	case errors.Is(err, service.ErrAlreadySubscribed):
		writeMessage(w, http.StatusBadRequest, "This email is already subscribed")
	case writeValidation(w, err):
	default:
		writeInternal(w, r, err)
	}
}

// Unsubscribe handles DELETE /api/newsletter/{email}.
func (h *NewsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	_, err := h.newsletterService.Unsubscribe(r.Context(), r.PathValue("email"))
	switch {
	case err == nil:
		writeMessage(w, http.StatusOK, "Successfully unsubscribed from newsletter")
	case errors.Is(err, repository.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "Email not found")
	default:
		writeInternal(w, r, err)
	}
}

// List handles GET /api/newsletter (admin). active defaults to true.
func (h *NewsletterHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := model.SubscriberListOptions{
		Active: r.URL.Query().Get("active") != "false",
		Page:   parsePage(r, newsletterPageLimit),
	}
	items, total, err := h.newsletterService.List(r.Context(), opts)
	if err != nil {
		writeInternal(w, r, err)
		return
	}
	writeList(w, items, total, opts.Page)
}
