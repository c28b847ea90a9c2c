package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with its own resty.Client.
// Resty's built-in retries stay disabled: retry policy belongs to the
// sync layer, which counts attempts and applies its own backoff.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New().SetRetryCount(0)}
}
