package validation

import (
	"strings"
	"unicode/utf8"

	"todolist/internal/config"
)

const (
	defaultNameMaxLength        = 255
	defaultDescriptionMaxLength = 4096
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string's length in characters is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(s)
	return length >= min && length <= max
}

// IsValidUTF8 reports whether s is well-formed UTF-8 without NUL bytes
func (v *Validator) IsValidUTF8(s string) bool {
	return utf8.ValidString(s) && !strings.ContainsRune(s, 0)
}

// NameMaxLength returns the configured maximum task name length or default
func (v *Validator) NameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.NameMaxLength
	}
	return defaultNameMaxLength
}

// DescriptionMaxLength returns the configured maximum description length or default
func (v *Validator) DescriptionMaxLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMaxLength
	}
	return defaultDescriptionMaxLength
}
