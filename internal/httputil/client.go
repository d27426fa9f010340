package httputil

import (
	"net/http"
	"time"
)

// DefaultTimeout allows for multi-megabyte dataset CSV downloads.
const DefaultTimeout = 60 * time.Second

// NewClient returns an HTTP client with standard timeout configuration.
func NewClient() *http.Client {
	return &http.Client{
		Timeout: DefaultTimeout,
	}
}
