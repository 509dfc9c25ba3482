package upload_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"studio-backend/internal/config"
	"studio-backend/internal/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{"detail": e.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error"})
		},
	})
	app.Post("/api/upload/image", upload.ImageHandler(cfg))
	return app
}

func postImage(t *testing.T, app *fiber.App, filename string, content []byte) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/upload/image", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return body
}

func TestImageUploadSavesAndReturnsURL(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{UploadDir: dir, PublicBaseURL: "http://localhost:8080/"}
	app := newTestApp(cfg)

	content := []byte("\x89PNG\r\n\x1a\nfake image bytes")
	resp := postImage(t, app, "cover.png", content)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.Unmarshal(readBody(t, resp), &body))
	assert.Contains(t, body["url"], "http://localhost:8080/uploads/")
	assert.True(t, filepath.Ext(body["filename"]) == ".png")

	saved, err := os.ReadFile(filepath.Join(dir, body["filename"]))
	require.NoError(t, err)
	assert.Equal(t, content, saved)
}

func TestImageUploadRejectsUnsupportedType(t *testing.T) {
	cfg := &config.Config{UploadDir: t.TempDir(), PublicBaseURL: "http://localhost:8080"}
	app := newTestApp(cfg)

	resp := postImage(t, app, "script.exe", []byte("MZ"))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.Unmarshal(readBody(t, resp), &body))
	assert.Equal(t, "Unsupported image type", body["detail"])
}

func TestImageUploadRequiresFile(t *testing.T) {
	cfg := &config.Config{UploadDir: t.TempDir(), PublicBaseURL: "http://localhost:8080"}
	app := newTestApp(cfg)

	req := httptest.NewRequest("POST", "/api/upload/image", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	readBody(t, resp)
}
