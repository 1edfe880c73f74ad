package respond

import (
	"regexp"
)

var (
	// Some NewsAPI-compatible upstreams echo the apiKey query parameter
	// back in error responses.
	newsAPIKeyPattern = regexp.MustCompile(`(?i)apiKey=[a-zA-Z0-9]+`)

	// Database password inside a DSN.
	dbPasswordPattern = regexp.MustCompile(`://([^:/]+):([^@]+)@`)
)

// SanitizeError returns the error message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = newsAPIKeyPattern.ReplaceAllString(msg, "apiKey=****")
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	return msg
}
