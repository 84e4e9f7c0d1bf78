package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
	"github.com/irahulsinghrajput/BrandMark/internal/validation"
)

const (
	msgInternal    = "Internal Server Error"
	msgInvalidBody = "Invalid request body"
	maxJSONBody    = 1 << 20
)

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type validationResponse struct {
	Success bool              `json:"success"`
	Errors  validation.Errors `json:"errors"`
}

type dataResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// listResponse is the paginated envelope shared by admin listings.
type listResponse struct {
	Success     bool  `json:"success"`
	Data        any   `json:"data"`
	TotalPages  int64 `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	Total       int64 `json:"total"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Success: status < 400, Message: message})
}

func writeData(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, dataResponse{Success: true, Message: message, Data: data})
}

func writeList[T any](w http.ResponseWriter, items []T, total int64, page model.Page) {
	if items == nil {
		items = []T{}
	}
	writeJSON(w, http.StatusOK, listResponse{
		Success:     true,
		Data:        items,
		TotalPages:  page.TotalPages(total),
		CurrentPage: page.Number,
		Total:       total,
	})
}

// writeValidation reports err as a field list if it is validation.Errors.
func writeValidation(w http.ResponseWriter, err error) bool {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return false
	}
	writeJSON(w, http.StatusBadRequest, validationResponse{Success: false, Errors: errs})
	return true
}

// writeInternal logs err and writes the generic 500.
func writeInternal(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", RequestIDFromContext(r.Context()),
		"error", err,
	)
	writeMessage(w, http.StatusInternalServerError, msgInternal)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	return true
}

// parsePage reads page and limit query parameters. Invalid values fall
// back to page 1 and defLimit; limit is capped at MaxPageLimit.
func parsePage(r *http.Request, defLimit int) model.Page {
	p := model.Page{Number: 1, Limit: defLimit}
	q := r.URL.Query()
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n > 0 {
		p.Number = n
	}
	if n, err := strconv.Atoi(q.Get("limit")); err == nil && n > 0 {
		p.Limit = min(n, model.MaxPageLimit)
	}
	return p
}

type statusRequest struct {
	Status string `json:"status"`
}
