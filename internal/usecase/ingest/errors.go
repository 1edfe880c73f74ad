package ingest

import "errors"

// Errors returned by news sources and content enhancers. They allow
// callers to distinguish security rejections from transient failures.
var (
	// ErrInvalidURL indicates the URL is malformed or uses a forbidden scheme.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrPrivateIP indicates the URL resolves to a private or loopback address.
	ErrPrivateIP = errors.New("URL resolves to private IP")

	// ErrTimeout indicates the fetch exceeded its deadline.
	ErrTimeout = errors.New("fetch timed out")

	// ErrBodyTooLarge indicates the response body exceeded the size limit.
	ErrBodyTooLarge = errors.New("response body too large")

	// ErrTooManyRedirects indicates the redirect limit was exceeded.
	ErrTooManyRedirects = errors.New("too many redirects")

	// ErrExtractionFailed indicates readable content could not be extracted.
	ErrExtractionFailed = errors.New("content extraction failed")
)
