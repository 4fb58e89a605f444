package services

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// ImageStore keeps uploaded property images on local disk under a single
// flat directory, served statically at /uploads. Stored filenames are the
// opaque tokens kept in the image manifest.
type ImageStore struct {
	root string
}

func NewImageStore(root string) *ImageStore {
	return &ImageStore{root: root}
}

// Save writes one multipart upload and returns its stored filename.
func (s *ImageStore) Save(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	ext := filepath.Ext(file.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	filename := fmt.Sprintf("images-%d%s", time.Now().UnixNano(), ext)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.root, filename))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return filename, nil
}

// SaveAll stores every upload in order and returns the stored filenames.
func (s *ImageStore) SaveAll(files []*multipart.FileHeader) ([]string, error) {
	filenames := make([]string, 0, len(files))
	for _, file := range files {
		name, err := s.Save(file)
		if err != nil {
			return nil, err
		}
		filenames = append(filenames, name)
	}
	return filenames, nil
}

// Remove deletes a stored image best-effort. The database manifest is the
// source of truth, so a missing file is not an error.
func (s *ImageStore) Remove(filename string) {
	// Base strips any path components a caller may have smuggled in.
	path := filepath.Join(s.root, filepath.Base(filename))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️  failed to remove image %s: %v", filename, err)
	}
}
