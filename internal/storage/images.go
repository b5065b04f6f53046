package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxImageSize is the upload limit for review images.
const MaxImageSize = 5 * 1024 * 1024

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

var (
	ErrImageTooLarge = errors.New("image exceeds the 5MB size limit")
	ErrImageBadType  = errors.New("only .jpg, .jpeg, .png and .gif images are accepted")
)

// ImageStore writes uploaded images under root and serves them from
// basePath. Validation happens before anything touches the disk.
type ImageStore struct {
	root     string
	basePath string
}

// NewImageStore builds a store rooted at root; basePath is the public
// URL prefix (e.g. "/images/reviews") and also the subdirectory the
// files land in.
func NewImageStore(root, basePath string) *ImageStore {
	return &ImageStore{root: root, basePath: "/" + strings.Trim(basePath, "/")}
}

// Validate checks filename extension and declared size without writing.
func (s *ImageStore) Validate(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" || !allowedExtensions[ext] {
		return ErrImageBadType
	}
	if size > MaxImageSize {
		return ErrImageTooLarge
	}
	return nil
}

// Save validates and writes the image under a fresh unique name,
// returning its public URL.
func (s *ImageStore) Save(filename string, size int64, r io.Reader) (string, error) {
	if err := s.Validate(filename, size); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	name := uuid.New().String() + ext

	dir := filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(s.basePath, "/")))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}

	return s.basePath + "/" + name, nil
}

// Delete removes the file behind a previously returned URL. Missing
// files are fine; deletion is idempotent.
func (s *ImageStore) Delete(url string) error {
	if url == "" {
		return nil
	}
	path := filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(url, "/")))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
