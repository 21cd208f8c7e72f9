// Package storage is a disk-backed object store for uploaded images.
// Buckets are directories under the root; public URLs are derived from the
// configured base address, no round trip involved.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Bucket namespaces. Each is isolated; a service image can never shadow a
// gallery image.
const (
	BucketServiceImages = "service-images"
	BucketGalleryImages = "gallery-images"
)

var ErrUnknownBucket = errors.New("unknown bucket")

type Store struct {
	root    string
	baseURL string
}

// New creates a store rooted at dir. baseURL is the public address the
// uploads are served from, e.g. "http://localhost:8080".
func New(dir, baseURL string) *Store {
	return &Store{root: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

func ValidBucket(bucket string) bool {
	return bucket == BucketServiceImages || bucket == BucketGalleryImages
}

// Upload writes the binary under a fresh random filename and returns the
// stored object path. Caller-supplied names are never trusted; only the
// extension survives, lowercased.
func (s *Store) Upload(bucket, ext string, r io.Reader) (string, error) {
	if !ValidBucket(bucket) {
		return "", ErrUnknownBucket
	}

	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	dir := filepath.Join(s.root, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create bucket dir: %w", err)
	}

	name := uuid.New().String() + ext
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create object: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write object: %w", err)
	}

	return name, nil
}

// PublicURL derives the durable public address for a stored object.
func (s *Store) PublicURL(bucket, name string) string {
	return fmt.Sprintf("%s/uploads/%s/%s", s.baseURL, bucket, name)
}

// Root is the directory the router serves at /uploads.
func (s *Store) Root() string {
	return s.root
}
