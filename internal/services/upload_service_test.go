package services_test

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mdazmalmallick17-glitch/gamehub/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngBytes is a minimal payload with a valid PNG signature, enough for
// content sniffing.
var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func TestSaveImage_ValidPNG(t *testing.T) {
	dir := t.TempDir()
	svc := services.NewUploadService(dir)

	url, err := svc.SaveImage(fileHeader(t, "screenshot.png", pngBytes), services.MaxImageBytes)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/"), "url should be under /uploads/: %s", url)
	assert.NotContains(t, url, "screenshot", "stored name must not leak the original filename")
	assert.True(t, strings.HasSuffix(url, ".png"))

	// File must actually exist on disk
	stored := filepath.Join(dir, filepath.Base(url))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)
}

func TestSaveImage_RejectsNonImage(t *testing.T) {
	svc := services.NewUploadService(t.TempDir())

	_, err := svc.SaveImage(fileHeader(t, "notes.txt", []byte("just some text")), services.MaxImageBytes)
	assert.ErrorIs(t, err, services.ErrInvalidFileType)
}

func TestSaveImage_RejectsOversize(t *testing.T) {
	svc := services.NewUploadService(t.TempDir())

	_, err := svc.SaveImage(fileHeader(t, "big.png", pngBytes), 8)
	assert.ErrorIs(t, err, services.ErrFileTooLarge)
}

func TestSaveImage_NilHeader(t *testing.T) {
	svc := services.NewUploadService(t.TempDir())

	_, err := svc.SaveImage(nil, services.MaxImageBytes)
	assert.ErrorIs(t, err, services.ErrNoFile)
}

func TestSaveImage_DistinctNamesForSameFile(t *testing.T) {
	svc := services.NewUploadService(t.TempDir())

	first, err := svc.SaveImage(fileHeader(t, "a.png", pngBytes), services.MaxImageBytes)
	require.NoError(t, err)
	second, err := svc.SaveImage(fileHeader(t, "a.png", pngBytes), services.MaxImageBytes)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
