package storage

import (
	"bytes"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bojietech/storefront/internal/domain/shared"
	"github.com/bojietech/storefront/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (*LocalImageStorage, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewLocalImageStorage(config.UploadsConfig{
		Dir:         dir,
		BaseURL:     "/uploads",
		MaxSize:     1 << 20,
		AllowedExts: []string{".jpg", ".png"},
	}, nil)
	require.NoError(t, err)
	return s, dir
}

// fileHeader builds a real multipart.FileHeader the way gin hands it
// to the handler
func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("files", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	require.Len(t, form.File["files"], 1)
	return form.File["files"][0]
}

func TestLocalImageStorage_Save(t *testing.T) {
	t.Run("stores the file under a fresh name", func(t *testing.T) {
		s, dir := newTestStorage(t)

		url, err := s.Save(fileHeader(t, "lipstick.png", []byte("png-bytes")))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(url, "/uploads/"))
		assert.True(t, strings.HasSuffix(url, ".png"))
		assert.NotContains(t, url, "lipstick", "client filename is not reused")

		data, err := os.ReadFile(filepath.Join(dir, filepath.Base(url)))
		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), data)
	})

	t.Run("rejects a disallowed extension", func(t *testing.T) {
		s, dir := newTestStorage(t)

		_, err := s.Save(fileHeader(t, "payload.exe", []byte("nope")))
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "INVALID_IMAGE_TYPE", domainErr.Code)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("rejects an oversize file", func(t *testing.T) {
		dir := t.TempDir()
		s, err := NewLocalImageStorage(config.UploadsConfig{
			Dir:         dir,
			BaseURL:     "/uploads",
			MaxSize:     8,
			AllowedExts: []string{".png"},
		}, nil)
		require.NoError(t, err)

		_, err = s.Save(fileHeader(t, "big.png", []byte("more than eight bytes")))
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "IMAGE_TOO_LARGE", domainErr.Code)
	})
}

func TestLocalImageStorage_Remove(t *testing.T) {
	s, dir := newTestStorage(t)

	url, err := s.Save(fileHeader(t, "cap.jpg", []byte("jpg")))
	require.NoError(t, err)

	require.NoError(t, s.Remove(url))
	_, err = os.Stat(filepath.Join(dir, filepath.Base(url)))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, s.Remove(url), "removing twice is a no-op")
	assert.NoError(t, s.Remove("https://elsewhere.example/x.png"), "foreign URLs are ignored")
}
