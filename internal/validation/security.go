// Package validation turns untrusted request input into the bounded values
// the rest of the service expects. Numeric query parameters are clamped
// rather than rejected; hosts and origins are checked against shell and
// header injection.
package validation

import (
	"fmt"
	"net/url"
	"strings"
)

var dangerousChars = []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'", "\\", "\n", "\r"}

// ValidateHost rejects bind hosts containing shell metacharacters or
// whitespace. An empty host is valid and means all interfaces.
func ValidateHost(host string) error {
	for _, char := range dangerousChars {
		if strings.Contains(host, char) {
			return fmt.Errorf("host contains dangerous character: %q", char)
		}
	}
	if strings.ContainsAny(host, " \t") {
		return fmt.Errorf("host contains whitespace")
	}
	return nil
}

// ValidateOrigin checks a request Origin against allowedOrigins. Entries
// match either the full origin or its host; "*" matches any well-formed
// http(s) origin.
func ValidateOrigin(origin string, allowedOrigins []string) error {
	if origin == "" {
		return fmt.Errorf("origin header is required")
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("invalid origin format: %w", err)
	}

	if originURL.Scheme != "http" && originURL.Scheme != "https" {
		return fmt.Errorf("invalid origin scheme '%s': only http and https are allowed", originURL.Scheme)
	}

	for _, allowed := range allowedOrigins {
		if allowed == "*" || origin == allowed || originURL.Host == allowed {
			return nil
		}
	}

	return fmt.Errorf("origin '%s' is not in allowed origins list", origin)
}
