package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var errInvalidKey = errors.New("storage: invalid key")

// LocalStorage stores files under a directory served at urlPrefix.
type LocalStorage struct {
	baseDir   string // root directory on disk, e.g. "./uploads"
	urlPrefix string // URL prefix the directory is served under, e.g. "/uploads"
}

// NewLocalStorage returns a LocalStorage rooted at baseDir.
func NewLocalStorage(baseDir, urlPrefix string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}
}

// Dir returns the root directory, for mounting a file server.
func (s *LocalStorage) Dir() string {
	return s.baseDir
}

// resolve rejects keys that would escape baseDir.
func (s *LocalStorage) resolve(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" || strings.Contains(key, "..") {
		return "", errInvalidKey
	}
	return filepath.Join(s.baseDir, filepath.FromSlash(clean)), nil
}

func (s *LocalStorage) Save(_ context.Context, key string, data io.Reader, _ string) (string, error) {
	dest, err := s.resolve(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("storage: mkdir: %w", err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("storage: create: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		_ = os.Remove(dest)
		return "", fmt.Errorf("storage: write: %w", err)
	}

	url := s.urlPrefix + "/" + strings.TrimPrefix(path.Clean("/"+key), "/")
	return url, nil
}

func (s *LocalStorage) Delete(_ context.Context, key string) error {
	dest, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(dest); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: remove: %w", err)
	}
	return nil
}

func (s *LocalStorage) KeyFromURL(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, s.urlPrefix+"/")
	if !ok || key == "" {
		return "", false
	}
	return key, true
}
