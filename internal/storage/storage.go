package storage

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// Storage abstracts where uploaded files live: local disk or an S3 bucket.
type Storage interface {
	// Save stores data under key and returns its public URL.
	// key is a slash-separated path such as "resumes/cv-<uuid>.pdf".
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// KeyFromURL maps a URL returned by Save back to its key.
	KeyFromURL(url string) (key string, ok bool)
}

// NewKey builds a unique key under dir that keeps the original base name
// and extension, e.g. "resumes/jane-cv-1f0c...e2.pdf".
func NewKey(dir, originalName string) string {
	base := path.Base(strings.ReplaceAll(originalName, `\`, "/"))
	ext := strings.ToLower(path.Ext(base))
	name := sanitize(strings.TrimSuffix(base, path.Ext(base)))
	if name == "" {
		name = "file"
	}
	return path.Join(dir, name+"-"+uuid.NewString()+ext)
}

// sanitize keeps ASCII letters, digits, '-' and '_' and replaces the rest with '-'.
func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if len(out) > 64 {
		out = out[:64]
	}
	return out
}

// DeleteURL deletes the object behind url if it belongs to s.
func DeleteURL(ctx context.Context, s Storage, url string) error {
	if url == "" {
		return nil
	}
	key, ok := s.KeyFromURL(url)
	if !ok {
		return nil
	}
	return s.Delete(ctx, key)
}
