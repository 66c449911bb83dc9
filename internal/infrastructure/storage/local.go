// Package storage persists uploaded image files on the local
// filesystem, under the directory the HTTP server serves statically.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/bojietech/storefront/internal/domain/shared"
	"github.com/bojietech/storefront/internal/infrastructure/config"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LocalImageStorage writes product and carousel images into the
// uploads directory and hands back their public URLs
type LocalImageStorage struct {
	dir         string
	baseURL     string
	maxSize     int64
	allowedExts map[string]bool
	logger      *zap.Logger
}

// NewLocalImageStorage creates the uploads directory if needed
func NewLocalImageStorage(cfg config.UploadsConfig, logger *zap.Logger) (*LocalImageStorage, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}

	allowed := make(map[string]bool, len(cfg.AllowedExts))
	for _, ext := range cfg.AllowedExts {
		allowed[strings.ToLower(ext)] = true
	}

	return &LocalImageStorage{
		dir:         cfg.Dir,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		maxSize:     cfg.MaxSize,
		allowedExts: allowed,
		logger:      logger,
	}, nil
}

// Save validates and stores one uploaded image under a random name,
// returning the public URL it will be served from. Uploaded names are
// never reused as filenames, so path traversal in the client-supplied
// name cannot reach outside the uploads directory.
func (s *LocalImageStorage) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !s.allowedExts[ext] {
		return "", shared.NewDomainError("INVALID_IMAGE_TYPE",
			fmt.Sprintf("File type %q is not an allowed image format", ext))
	}
	if s.maxSize > 0 && file.Size > s.maxSize {
		return "", shared.NewDomainError("IMAGE_TOO_LARGE", "File exceeds the upload size limit")
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + ext
	path := filepath.Join(s.dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		// A half-written file must not be served
		_ = os.Remove(path)
		return "", fmt.Errorf("write image file: %w", err)
	}

	s.logger.Debug("image stored",
		zap.String("original", file.Filename),
		zap.String("stored", name),
		zap.Int64("size", file.Size),
	)
	return s.baseURL + "/" + name, nil
}

// Remove deletes a previously stored image by its public URL. Unknown
// URLs are a no-op so repeated deletes stay idempotent.
func (s *LocalImageStorage) Remove(publicURL string) error {
	name := filepath.Base(publicURL)
	if name == "." || name == "/" || !strings.HasPrefix(publicURL, s.baseURL+"/") {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image file: %w", err)
	}
	return nil
}
