package storage

import (
	"context"
	"io"
)

// Storage abstracts where uploaded case documents live.
type Storage interface {
	// Save stores a file at the given relative path
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Get retrieves a file by its relative path
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file; missing files are not an error
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns a public URL for the file
	GetURL(ctx context.Context, path string) (string, error)

	// GetSize returns the size of a file in bytes
	GetSize(ctx context.Context, path string) (int64, error)
}

// Config holds storage configuration
type Config struct {
	BasePath string
	BaseURL  string
}
