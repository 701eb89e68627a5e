package interfaces

import (
	"context"
	"io"
)

// HTTPClient fetches static pages. Implementations send a fixed
// User-Agent and report transport failures as errors; non-2xx responses
// are returned as responses, not errors.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	Get(ctx context.Context, url string) (Response, error)
}

// Response defines the interface for HTTP responses.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body. The caller closes it.
	Body() io.ReadCloser

	// Header returns the value of the specified header, case-insensitively.
	Header(key string) string
}
