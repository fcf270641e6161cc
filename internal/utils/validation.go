package utils

import (
	"errors"
	"regexp"
)

// Compiled regular expressions for validation
var (
	// Formula identifiers are lowercase words joined by hyphens
	validIDPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

	// Detect potentially dangerous characters in free-text input values
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)
)

// ValidateID validates that a formula ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateInputValue validates a raw user-typed field value before it is
// handed to the evaluator
func ValidateInputValue(value string) error {
	if len(value) > 100 {
		return errors.New("value too long (max 100 characters)")
	}

	if dangerousPattern.MatchString(value) {
		return errors.New("value contains invalid characters")
	}

	return nil
}
