package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// ClientName is sent as Bitwarden-Client-Name on every provider request.
const ClientName = "gopass"

// HTTPClient is a resty client preset for one API root of the sync
// provider. It embeds *resty.Client, so requests are built with R().
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client for baseURL whose requests time out after
// timeout and accept JSON. Each call returns an independent connection pool.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Bitwarden-Client-Name", ClientName)

	return &HTTPClient{Client: client}
}
