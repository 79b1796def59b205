// Package validator provides ordered, short-circuiting checks over string
// attributes and the ValidationError they produce.
package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ValidationError reports that a supplied value violates a field-level rule.
type ValidationError struct {
	Attribute string // Name of the offending attribute, e.g. "bookTitle"
	Message   string // Human-readable description of the violated rule
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError reports whether err, or any error it wraps, is a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Rule checks a single constraint against the trimmed value of attribute.
// It returns the failure message, or an empty string when the value passes.
type Rule func(attribute, value string) string

// Check runs rules in order against the trimmed value and returns the first
// failure as a *ValidationError. Later rules are not evaluated once one fails.
//
//	err := validator.Check("bookTitle", title, validator.NotEmpty(), validator.MaxLength(30))
func Check(attribute, value string, rules ...Rule) error {
	trimmed := strings.TrimSpace(value)
	for _, rule := range rules {
		if msg := rule(attribute, trimmed); msg != "" {
			return &ValidationError{Attribute: attribute, Message: msg}
		}
	}
	return nil
}

// NotEmpty fails when the trimmed value is empty.
func NotEmpty() Rule {
	return func(attribute, value string) string {
		if value == "" {
			return attribute + " must not be empty"
		}
		return ""
	}
}

// MaxLength fails when the trimmed value has more than n characters.
// An empty value always passes.
func MaxLength(n int) Rule {
	return func(attribute, value string) string {
		if value != "" && utf8.RuneCountInString(value) > n {
			return fmt.Sprintf("max length of %s is %d", attribute, n)
		}
		return ""
	}
}

// Matches fails when the trimmed value does not match rx.
// An empty value always passes.
func Matches(rx *regexp.Regexp) Rule {
	return func(attribute, value string) string {
		if value != "" && !rx.MatchString(value) {
			return fmt.Sprintf("%s does not match %s", attribute, rx.String())
		}
		return ""
	}
}
