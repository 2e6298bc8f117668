package errors

import (
	"fmt"
	"strings"
)

// ErrorSuggestion represents a suggestion for fixing an error
type ErrorSuggestion struct {
	Title       string
	Description string
	Command     string
	Example     string
}

// ServerStartError generates suggestions for a server that failed to bind
func ServerStartError(err error, port int) []ErrorSuggestion {
	suggestions := []ErrorSuggestion{}

	errStr := err.Error()

	if strings.Contains(errStr, "address already in use") || strings.Contains(errStr, "bind") {
		suggestions = append(suggestions, ErrorSuggestion{
			Title:       "Port already in use",
			Description: fmt.Sprintf("Port %d is already being used by another process", port),
			Command:     fmt.Sprintf("lsof -i :%d", port),
		})

		suggestions = append(suggestions, ErrorSuggestion{
			Title:       "Use a different port",
			Description: "Start the server on a different port",
			Command:     fmt.Sprintf("vlistdata serve --port %d", port+1000),
		})
	}

	if strings.Contains(errStr, "permission denied") && port < 1024 {
		suggestions = append(suggestions, ErrorSuggestion{
			Title:       "Use unprivileged port",
			Description: "Ports below 1024 require root privileges",
			Command:     "vlistdata serve --port 8080",
		})
	}

	return suggestions
}

// ConfigurationError generates suggestions for configuration issues
func ConfigurationError(configError string, configPath string) []ErrorSuggestion {
	suggestions := []ErrorSuggestion{
		{
			Title:       "Check configuration file",
			Description: fmt.Sprintf("Verify %s exists and has valid syntax", configPath),
			Command:     "cat " + configPath,
		},
	}

	if strings.Contains(configError, "yaml") || strings.Contains(configError, "unmarshal") {
		suggestions = append(suggestions, ErrorSuggestion{
			Title:       "Fix YAML syntax",
			Description: "There's a syntax error in your YAML configuration",
			Example:     "Use proper indentation and avoid tabs",
		})
	}

	if strings.Contains(configError, "limit") || strings.Contains(configError, "total") {
		suggestions = append(suggestions, ErrorSuggestion{
			Title:       "Check data limits",
			Description: "Defaults must be positive and not exceed their maximums",
			Example:     "data:\n  default_limit: 50\n  max_limit: 200",
		})
	}

	return suggestions
}

// FormatSuggestions formats suggestions into a user-friendly string
func FormatSuggestions(title string, suggestions []ErrorSuggestion) string {
	if len(suggestions) == 0 {
		return title
	}

	var output strings.Builder
	output.WriteString(title + "\n\n")
	output.WriteString("Suggestions:\n")

	for i, suggestion := range suggestions {
		output.WriteString(fmt.Sprintf("  %d. %s\n", i+1, suggestion.Title))
		if suggestion.Description != "" {
			output.WriteString(fmt.Sprintf("     %s\n", suggestion.Description))
		}
		if suggestion.Command != "" {
			output.WriteString(fmt.Sprintf("     Run: %s\n", suggestion.Command))
		}
		if suggestion.Example != "" {
			output.WriteString(fmt.Sprintf("     Example: %s\n", suggestion.Example))
		}
		output.WriteString("\n")
	}

	return output.String()
}

// EnhancedError wraps an error with suggestions
type EnhancedError struct {
	OriginalError error
	Title         string
	Suggestions   []ErrorSuggestion
}

// Error implements the error interface
func (e *EnhancedError) Error() string {
	return FormatSuggestions(e.Title, e.Suggestions)
}

// Unwrap returns the original error
func (e *EnhancedError) Unwrap() error {
	return e.OriginalError
}

// NewEnhancedError creates a new enhanced error with suggestions
func NewEnhancedError(title string, originalError error, suggestions []ErrorSuggestion) *EnhancedError {
	return &EnhancedError{
		OriginalError: originalError,
		Title:         title,
		Suggestions:   suggestions,
	}
}
