package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/irahulsinghrajput/BrandMark/internal/service"
)

const multipartMemory = 8 << 20

// parseForm reads a multipart or urlencoded body of at most maxBytes.
// It writes the error response itself and reports whether to continue.
func parseForm(w http.ResponseWriter, r *http.Request, maxBytes int64) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err = r.ParseMultipartForm(multipartMemory)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) || strings.Contains(err.Error(), "request body too large") {
			writeMessage(w, http.StatusBadRequest, "File too large")
			return false
		}
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	return true
}

// formFile returns the upload for field, or nil when none was sent.
// The caller must close the returned file.
func formFile(r *http.Request, field string) (*service.Upload, multipart.File, error) {
	if r.MultipartForm == nil {
		return nil, nil, nil
	}
	f, fh, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return &service.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	}, f, nil
}

// optionalField returns a pointer to the form value when field was sent.
func optionalField(r *http.Request, field string) *string {
	if vs, ok := r.PostForm[field]; ok && len(vs) > 0 {
		v := vs[0]
		return &v
	}
	if r.MultipartForm != nil {
		if vs, ok := r.MultipartForm.Value[field]; ok && len(vs) > 0 {
			v := vs[0]
			return &v
		}
	}
	return nil
}
