package webnav

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDownload_WhenServerResponds_ShouldWriteBodyToFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("payload"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "out.bin")
	d := NewDownloader(srv.Client(), 10, 1)

	err := d.Download(context.Background(), srv.URL, dest)

	assert.NoError(t, err)
	data, err := os.ReadFile(dest)
	assert.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestDownload_WhenStatusIsNotOK_ShouldFailWithoutRetry(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "out.bin")
	d := NewDownloader(srv.Client(), 10, 1)

	err := d.Download(context.Background(), srv.URL, dest)

	assert.Error(t, err)
	assert.Equal(t, 1, hits)
}

func TestDownload_WhenContextCancelledBeforeToken_ShouldFailFast(t *testing.T) {
	d := NewDownloader(nil, 0.0001, 1)
	// burn the single burst token so the next call has to wait
	_ = d.limiter.Allow()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Download(ctx, "http://example.invalid", filepath.Join(t.TempDir(), "x"))

	assert.Error(t, err)
}
