package ingest

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jlaffaye/ftp"

	"github.com/kennethtran77/ClimateEducationVisualizer/internal/httputil"
	"github.com/kennethtran77/ClimateEducationVisualizer/internal/metrics"
)

// Fetcher downloads source dataset CSVs. Barro-Lee publishes over HTTP;
// some Berkeley Earth mirrors are plain FTP, so both schemes are supported.
type Fetcher struct {
	client *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{client: httputil.NewClient()}
}

// Download fetches rawURL into dest, creating parent directories as needed.
// HTTP fetches retry transient failures with exponential backoff; client
// errors are permanent and fail immediately.
func (f *Fetcher) Download(rawURL, dest string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create dataset dir: %w", err)
	}

	switch u.Scheme {
	case "http", "https":
		err = f.downloadHTTP(rawURL, dest)
	case "ftp":
		err = f.downloadFTP(u, dest)
	default:
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.DatasetFetches.WithLabelValues(u.Scheme, status).Inc()
	return err
}

func (f *Fetcher) downloadHTTP(rawURL, dest string) error {
	var body []byte
	operation := func() error {
		resp, err := f.client.Get(rawURL)
		if err != nil {
			return fmt.Errorf("fetch dataset: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return backoff.Permanent(fmt.Errorf("fetch dataset: status %d", resp.StatusCode))
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("fetch dataset: status %d", resp.StatusCode)
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 2 * time.Minute
	if err := backoff.Retry(operation, bo); err != nil {
		return err
	}

	return writeDataset(dest, body)
}

func (f *Fetcher) downloadFTP(u *url.URL, dest string) error {
	addr := u.Host
	if u.Port() == "" {
		addr += ":21"
	}

	conn, err := ftp.Dial(addr, ftp.DialWithTimeout(30*time.Second))
	if err != nil {
		return fmt.Errorf("ftp dial: %w", err)
	}
	defer conn.Quit()

	if err := conn.Login("anonymous", "anonymous"); err != nil {
		return fmt.Errorf("ftp login: %w", err)
	}

	resp, err := conn.Retr(u.Path)
	if err != nil {
		return fmt.Errorf("ftp retr: %w", err)
	}
	defer resp.Close()

	body, err := io.ReadAll(resp)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	return writeDataset(dest, body)
}

// writeDataset writes via a temp file so a partial download never replaces
// an existing dataset.
func writeDataset(dest string, body []byte) error {
	tmp := dest + ".tmp"
	if err := os.WriteFile(tmp, body, 0o644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		return fmt.Errorf("rename dataset: %w", err)
	}
	return nil
}
