package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ---------------------------------------------------------------------------
// LocalStorage
// ---------------------------------------------------------------------------

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir, "/uploads/")

	url, err := s.Save(context.Background(), "resumes/cv.pdf", strings.NewReader("pdf"), "application/pdf")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if url != "/uploads/resumes/cv.pdf" {
		t.Errorf("unexpected url %q", url)
	}
	b, err := os.ReadFile(filepath.Join(dir, "resumes", "cv.pdf"))
	if err != nil || string(b) != "pdf" {
		t.Fatalf("file not written: %v %q", err, b)
	}

	key, ok := s.KeyFromURL(url)
	if !ok || key != "resumes/cv.pdf" {
		t.Errorf("KeyFromURL: got %q %v", key, ok)
	}
	if err := DeleteURL(context.Background(), s, url); err != nil {
		t.Fatalf("DeleteURL: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "resumes", "cv.pdf")); !os.IsNotExist(err) {
		t.Error("expected file to be removed")
	}
	if err := s.Delete(context.Background(), "resumes/cv.pdf"); err != nil {
		t.Errorf("deleting a missing file should succeed, got %v", err)
	}
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	s := NewLocalStorage(t.TempDir(), "/uploads")
	if _, err := s.Save(context.Background(), "../escape.txt", strings.NewReader("x"), ""); !errors.Is(err, errInvalidKey) {
		t.Errorf("expected errInvalidKey, got %v", err)
	}
}

func TestLocalStorage_KeyFromForeignURL(t *testing.T) {
	s := NewLocalStorage(t.TempDir(), "/uploads")
	if _, ok := s.KeyFromURL("https://cdn.example.com/a.png"); ok {
		t.Error("expected foreign URL to be rejected")
	}
}

func TestNewKey(t *testing.T) {
	k1 := NewKey("resumes", `C:\Users\jane\My CV (final).PDF`)
	k2 := NewKey("resumes", `C:\Users\jane\My CV (final).PDF`)
	if k1 == k2 {
		t.Error("expected unique keys")
	}
	if !strings.HasPrefix(k1, "resumes/My-CV--final-") || !strings.HasSuffix(k1, ".pdf") {
		t.Errorf("unexpected key %q", k1)
	}
	if k := NewKey("images", ".png"); !strings.HasPrefix(k, "images/file-") {
		t.Errorf("expected fallback base name, got %q", k)
	}
}

// ---------------------------------------------------------------------------
// S3Storage
// ---------------------------------------------------------------------------

type mockS3 struct {
	putFunc    func(ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error)
	deleteFunc func(ctx context.Context, in *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error)
}

func (m *mockS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if m.putFunc != nil {
		return m.putFunc(ctx, in)
	}
	return &s3.PutObjectOutput{}, nil
}

func (m *mockS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, in)
	}
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Storage_Save(t *testing.T) {
	var got *s3.PutObjectInput
	var body string
	mock := &mockS3{putFunc: func(ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		got = in
		b, _ := io.ReadAll(in.Body)
		body = string(b)
		return &s3.PutObjectOutput{}, nil
	}}
	s := NewS3StorageWithClient(mock, "brandmark-uploads", "https://cdn.example.com/")

	url, err := s.Save(context.Background(), "images/a.png", strings.NewReader("png"), "image/png")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if url != "https://cdn.example.com/images/a.png" {
		t.Errorf("unexpected url %q", url)
	}
	if aws.ToString(got.Bucket) != "brandmark-uploads" || aws.ToString(got.Key) != "images/a.png" ||
		aws.ToString(got.ContentType) != "image/png" || body != "png" {
		t.Errorf("unexpected PutObject input %+v body=%q", got, body)
	}
	if key, ok := s.KeyFromURL(url); !ok || key != "images/a.png" {
		t.Errorf("KeyFromURL: got %q %v", key, ok)
	}
}

func TestS3Storage_Errors(t *testing.T) {
	mock := &mockS3{
		putFunc: func(ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
			return nil, errors.New("access denied")
		},
		deleteFunc: func(ctx context.Context, in *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
			return nil, errors.New("access denied")
		},
	}
	s := NewS3StorageWithClient(mock, "b", "https://cdn.example.com")
	if _, err := s.Save(context.Background(), "k", strings.NewReader("x"), ""); err == nil {
		t.Error("expected Save error")
	}
	if err := s.Delete(context.Background(), "k"); err == nil {
		t.Error("expected Delete error")
	}
}
