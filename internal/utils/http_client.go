// Package utils holds small helpers shared by the transport packages: the
// outbound HTTP client wrapper and the trace id generator.
package utils

import (
	"github.com/go-resty/resty/v2"
)

// userAgent identifies this server to the upstream API.
const userAgent = "go-web-sdk-demo"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with its own connection pool.
//
// Retries are disabled: every request made through the client is sent
// exactly once.
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().
//	    SetAuthToken(secretKey).
//	    Post("https://api.example.com/access-tokens")
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetRetryCount(0).
		SetHeader("User-Agent", userAgent)

	return &HTTPClient{Client: client}
}
