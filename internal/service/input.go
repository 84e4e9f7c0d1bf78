package service

import (
	"io"
	"path"
	"strings"
)

// Upload is a file received with a multipart form.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Ext returns the lowercased extension including the dot.
func (u *Upload) Ext() string {
	return strings.ToLower(path.Ext(u.Filename))
}

func trim(s string) string { return strings.TrimSpace(s) }

func normalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
