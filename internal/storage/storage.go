// Package storage provides local filesystem storage for uploaded files
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// localStorage implements upload storage on the local filesystem
type localStorage struct {
	basePath string
}

// NewLocalStorage creates a new localStorage instance rooted at basePath.
// The directory is created if it does not exist.
func NewLocalStorage(basePath string) (*localStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &localStorage{
		basePath: basePath,
	}, nil
}

// Save writes the uploaded file under a generated unique name, keeping the
// original extension, and returns the stored filename.
func (s *localStorage) Save(file io.Reader, originalName string) (string, error) {
	filename := generateFileName(filepath.Ext(originalName))
	path := filepath.Join(s.basePath, filename)

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return filename, nil
}

// Delete removes a stored file
func (s *localStorage) Delete(filename string) error {
	return os.Remove(filepath.Join(s.basePath, filename))
}

// generateFileName generates a unique filename with the given extension
func generateFileName(extension string) string {
	newUUID := uuid.New().String()
	if extension != "" && extension[0] != '.' {
		return newUUID + "." + extension
	}
	return newUUID + extension
}
