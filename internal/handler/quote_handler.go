package handler

import (
	"errors"
	"net/http"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
	"github.com/irahulsinghrajput/BrandMark/internal/repository"
	"github.com/irahulsinghrajput/BrandMark/internal/service"
)

type QuoteHandler struct {
	quoteService service.QuoteService
}

func NewQuoteHandler(quoteService service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

type quoteData struct {
	ServiceType  string `json:"serviceType"`
	ServiceLabel string `json:"serviceLabel"`
	Market       string `json:"market"`
	QuoteAmount  int    `json:"quoteAmount"`
	Currency     string `json:"currency"`
	QuoteDisplay string `json:"quoteDisplay"`
}

// Create handles POST /api/quotes.
func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.QuoteInput
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.quoteService.Request(r.Context(), req)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrQuoteUnavailable):
		writeMessage(w, http.StatusBadRequest, "Unable to generate quote for selected options.")
		return
	case writeValidation(w, err):
		return
	default:
		writeInternal(w, r, err)
		return
	}
	q := res.Quote
	writeData(w, http.StatusCreated, "Quote generated successfully.", quoteData{
		ServiceType:  q.ServiceType,
		ServiceLabel: res.ServiceLabel,
		Market:       q.Market,
		QuoteAmount:  q.QuoteAmount,
		Currency:     q.Currency,
		QuoteDisplay: q.QuoteDisplay,
	})
}

// List handles GET /api/quotes (admin).
func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := model.QuoteListOptions{
		Status: r.URL.Query().Get("status"),
		Page:   parsePage(r, model.DefaultPageLimit),
	}
	items, total, err := h.quoteService.List(r.Context(), opts)
	if err != nil {
		writeInternal(w, r, err)
		return
	}
	writeList(w, items, total, opts.Page)
}

// UpdateStatus handles PATCH /api/quotes/{id}/status (admin).
func (h *QuoteHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	q, err := h.quoteService.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
	switch {
	case err == nil:
		writeData(w, http.StatusOK, "", q)
	case errors.Is(err, repository.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "Quote not found")
	case writeValidation(w, err):
	default:
		writeInternal(w, r, err)
	}
}
