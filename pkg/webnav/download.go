package webnav

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"golang.org/x/time/rate"

	"github.com/Chandra179/web-utils/configs"
)

// Downloader fetches a URL and saves the body to a local file. Downloads
// are throttled by a token-bucket limiter and attempted exactly once, no
// retries.
type Downloader struct {
	client  *http.Client
	limiter *rate.Limiter
}

// NewDownloader creates a Downloader with the given client and request
// rate. A nil client falls back to http.DefaultClient.
func NewDownloader(client *http.Client, rps float64, burst int) *Downloader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Downloader{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// NewDownloaderFromConfig creates a Downloader tuned by the loaded
// application config.
func NewDownloaderFromConfig(cfg *configs.Config) *Downloader {
	client := &http.Client{Timeout: cfg.HTTPTimeout}
	return NewDownloader(client, cfg.DownloadRPS, cfg.DownloadBurst)
}

// Download fetches rawURL and writes the response body to dest. It waits
// for a limiter token first, so bursts of calls are spread out.
func (d *Downloader) Download(ctx context.Context, rawURL, dest string) error {
	if err := d.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: unexpected status %d", rawURL, resp.StatusCode)
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return nil
}
