package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestUploadGeneratesRandomFilename(t *testing.T) {
	store := New(t.TempDir(), "http://localhost:8080")

	name, err := store.Upload(BucketGalleryImages, ".JPG", strings.NewReader("fake image bytes"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if !strings.HasSuffix(name, ".jpg") {
		t.Fatalf("extension should be normalized to lowercase, got %q", name)
	}
	if _, err := uuid.Parse(strings.TrimSuffix(name, ".jpg")); err != nil {
		t.Fatalf("stored name should be uuid-based, got %q", name)
	}

	data, err := os.ReadFile(filepath.Join(store.Root(), BucketGalleryImages, name))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Fatalf("stored bytes mismatch: %q", data)
	}
}

func TestUploadRejectsUnknownBucket(t *testing.T) {
	store := New(t.TempDir(), "http://localhost:8080")

	_, err := store.Upload("secrets", ".png", strings.NewReader("x"))
	if !errors.Is(err, ErrUnknownBucket) {
		t.Fatalf("want ErrUnknownBucket, got %v", err)
	}
}

func TestBucketsAreIsolated(t *testing.T) {
	store := New(t.TempDir(), "http://localhost:8080")

	serviceName, err := store.Upload(BucketServiceImages, ".png", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("upload service image: %v", err)
	}

	if _, err := os.Stat(filepath.Join(store.Root(), BucketGalleryImages, serviceName)); !os.IsNotExist(err) {
		t.Fatal("service upload must not appear in the gallery bucket")
	}
}

func TestPublicURL(t *testing.T) {
	store := New(t.TempDir(), "https://parlor.example.com/")

	got := store.PublicURL(BucketServiceImages, "abc.png")
	want := "https://parlor.example.com/uploads/service-images/abc.png"
	if got != want {
		t.Fatalf("public url: want %q, got %q", want, got)
	}
}
