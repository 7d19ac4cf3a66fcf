package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateContentTypeID validates a content type id used as a file name
func ValidateContentTypeID(id string) error {
	if id == "" {
		return fmt.Errorf("content type id cannot be empty")
	}

	invalidChars := []string{"/", "\\", "..", "~", "$", "`", " "}
	for _, char := range invalidChars {
		if strings.Contains(id, char) {
			return fmt.Errorf("content type id contains invalid character: %q", char)
		}
	}

	return nil
}

const maxGroupNameLength = 100

// ValidateGroupName validates a field group name. Empty names are allowed.
// Length is counted in user-perceived characters.
func ValidateGroupName(name string) error {
	if uniseg.GraphemeClusterCount(name) > maxGroupNameLength {
		return fmt.Errorf("group name cannot exceed %d characters", maxGroupNameLength)
	}
	if strings.ContainsAny(name, "\n\r\t") {
		return fmt.Errorf("group name cannot contain line breaks or tabs")
	}
	return nil
}

// ParseIndex parses a zero-based position argument
func ParseIndex(arg string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: must be a number", arg)
	}
	if i < 0 {
		return 0, fmt.Errorf("invalid index %d: must not be negative", i)
	}
	return i, nil
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
