package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultRequestTimeout bounds a single outbound request when the caller
// does not configure a timeout.
const DefaultRequestTimeout = 10 * time.Second

// HTTPClient embeds *resty.Client so adapters get the full resty API plus
// the defaults configured by NewHTTPClient.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent HTTPClient pointed at baseURL.
//
// A non-positive timeout falls back to [DefaultRequestTimeout]. Requests
// advertise JSON in the Accept header; automatic retries stay disabled
// because callers treat every failure as final.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)

	return &HTTPClient{Client: client}
}
