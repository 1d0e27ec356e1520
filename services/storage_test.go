package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"trace_app_go/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLocalStorage(t *testing.T) {
	tempDir := t.TempDir()
	storage := NewLocalStorage(tempDir)
	ctx := context.Background()
	content := "hello storage"
	key := "exports/file.txt"

	t.Run("UploadReader creates file", func(t *testing.T) {
		result, err := storage.UploadReader(ctx, strings.NewReader(content), key, "text/plain", int64(len(content)))
		require.NoError(t, err)
		assert.Equal(t, key, result.Key)
		assert.Equal(t, "file.txt", result.FileName)
		assert.Equal(t, int64(len(content)), result.FileSize)

		_, err = os.Stat(filepath.Join(tempDir, key))
		assert.NoError(t, err)
	})

	t.Run("Get retrieves file content", func(t *testing.T) {
		reader, contentType, err := storage.Get(ctx, key)
		require.NoError(t, err)
		defer reader.Close()

		got, _ := io.ReadAll(reader)
		assert.Equal(t, content, string(got))
		assert.Equal(t, "text/plain; charset=utf-8", contentType)
	})

	t.Run("Get missing file", func(t *testing.T) {
		_, _, err := storage.Get(ctx, "exports/missing.xlsx")
		assert.Error(t, err)
	})

}

func TestR2Storage(t *testing.T) {
	var (
		mu       sync.Mutex
		gotPath  string
		gotBody  string
		gotCType string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			mu.Lock()
			body := gotBody
			mu.Unlock()
			w.Header().Set("Content-Type", XLSXContentType)
			io.WriteString(w, body)
			return
		}
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusNotImplemented)
			return
		}
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		gotPath = r.URL.Path
		gotBody = string(body)
		gotCType = r.Header.Get("Content-Type")
		mu.Unlock()
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	storage, err := newS3Storage(srv.URL, "key", "secret", "trace-bucket", "https://files.example.com/")
	require.NoError(t, err)

	payload := "workbook-bytes"
	result, err := storage.UploadReader(context.Background(), strings.NewReader(payload), "exports/a.xlsx", XLSXContentType, int64(len(payload)))
	require.NoError(t, err)

	mu.Lock()
	assert.Equal(t, "/trace-bucket/exports/a.xlsx", gotPath)
	assert.Contains(t, gotBody, payload)
	assert.Equal(t, XLSXContentType, gotCType)
	mu.Unlock()
	assert.Equal(t, "https://files.example.com/exports/a.xlsx", result.URL)

	reader, contentType, err := storage.Get(context.Background(), "exports/a.xlsx")
	require.NoError(t, err)
	defer reader.Close()
	got, _ := io.ReadAll(reader)
	assert.Contains(t, string(got), payload)
	assert.Equal(t, XLSXContentType, contentType)
}

func TestNewStorageFallsBackToLocal(t *testing.T) {
	cfg := &config.Config{UploadDir: t.TempDir()}
	storage := NewStorage(cfg, zap.NewNop())

	_, ok := storage.(*LocalStorage)
	assert.True(t, ok)
}

func TestGenerateExportKey(t *testing.T) {
	at := time.Date(2024, 5, 2, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, "exports/2024/05/complaints_20240502_020000.xlsx", GenerateExportKey(at))
}
