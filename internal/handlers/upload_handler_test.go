package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/handlers"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)

func newUploadApp(t *testing.T) (*fiber.App, string, string) {
	t.Helper()

	dir := t.TempDir()
	fallback := t.TempDir()
	h := handlers.NewUploadHandler(services.NewUploadService(dir), dir, fallback)

	app := fiber.New()
	app.Post("/api/upload/image", h.UploadImage)
	app.Get("/uploads/:filename", h.ServeFile)
	return app, dir, fallback
}

func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUploadImage_ReturnsOpaqueURL(t *testing.T) {
	app, _, _ := newUploadApp(t)

	body, contentType := multipartBody(t, "cover.png", pngBytes)
	req := httptest.NewRequest(http.MethodPost, "/api/upload/image", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, strings.HasPrefix(out.URL, "/uploads/"))
	assert.NotContains(t, out.URL, "cover")
}

func TestUploadImage_RejectsTextFile(t *testing.T) {
	app, _, _ := newUploadApp(t)

	body, contentType := multipartBody(t, "readme.txt", []byte("plain text"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload/image", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadImage_MissingFile(t *testing.T) {
	app, _, _ := newUploadApp(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload/image", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServeFile_FallsBackToSecondaryDir(t *testing.T) {
	app, _, fallback := newUploadApp(t)

	require.NoError(t, os.WriteFile(filepath.Join(fallback, "legacy.png"), pngBytes, 0o644))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/uploads/legacy.png", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)
}

func TestServeFile_MissingReturns404(t *testing.T) {
	app, _, _ := newUploadApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/uploads/nope.png", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
