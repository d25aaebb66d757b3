package api

import (
	"bytes"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/EdwardCranko/PDF-Squeeze/internal/config"
	"github.com/EdwardCranko/PDF-Squeeze/internal/container"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})),
	}
	return SetupRouter(container.New(cfg, nil))
}

func TestHandleHealth(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
}

func TestHandleCompress_NoFile(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/compress", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 without an upload, got %d", w.Code)
	}
}

func TestHandleCompress_InvalidQuality(t *testing.T) {
	router := testRouter()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("pdf", "input.pdf")
	if err != nil {
		t.Fatalf("Failed to build multipart body: %v", err)
	}
	part.Write([]byte("%PDF-fake"))
	writer.WriteField("quality", "not-a-number")
	writer.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/compress", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for invalid quality, got %d", w.Code)
	}
}

func TestHandlePreferences_NoDatabase(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/preferences", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 without preferences storage, got %d", w.Code)
	}
}
