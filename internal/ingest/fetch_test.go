package ingest

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFetcherDownload(t *testing.T) {
	const payload = climateHeaderLine + "\n1950-01-01,10.5,0.2,Canada\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "datasets", "climate.csv")
	if err := NewFetcher().Download(srv.URL, dest); err != nil {
		t.Fatalf("Download() error = %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != payload {
		t.Errorf("downloaded content = %q, want %q", got, payload)
	}

	// No stray temp file left behind.
	if _, err := os.Stat(dest + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file still present after download")
	}
}

func TestFetcherDownload_ClientErrorIsPermanent(t *testing.T) {
	var attempts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "climate.csv")
	err := NewFetcher().Download(srv.URL, dest)
	if err == nil {
		t.Fatal("Download() error = nil, want failure on 404")
	}
	if attempts != 1 {
		t.Errorf("server saw %d attempts, want 1 (no retries on client error)", attempts)
	}
	if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
		t.Errorf("destination file written despite failed download")
	}
}

func TestFetcherDownload_UnsupportedScheme(t *testing.T) {
	err := NewFetcher().Download("gopher://example.com/data.csv", filepath.Join(t.TempDir(), "data.csv"))
	if err == nil || !strings.Contains(err.Error(), "unsupported scheme") {
		t.Fatalf("Download() error = %v, want unsupported scheme error", err)
	}
}
