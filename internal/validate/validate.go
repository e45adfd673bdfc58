// Package validate collects field-level constraint violations for a
// request shape and joins them into a single error message.
package validate

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rwidjaja/contactbook/internal/apperr"
)

type FieldError struct {
	Field   string
	Message string
}

// Checker accumulates violations in the order checks were run.
type Checker struct {
	errs []FieldError
}

func (c *Checker) add(field, message string) {
	c.errs = append(c.errs, FieldError{Field: field, Message: message})
}

// Required fails when the value is empty or blank.
func (c *Checker) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		c.add(field, "must not be blank")
	}
}

// Length enforces min..max runes on a non-empty value. Empty values pass;
// pair with Required for mandatory fields.
func (c *Checker) Length(field, value string, min, max int) {
	if value == "" {
		return
	}
	n := utf8.RuneCountInString(value)
	if n < min || n > max {
		c.add(field, fmt.Sprintf("length must be between %d and %d", min, max))
	}
}

// MinLength enforces a lower bound only, for fields with no cap.
func (c *Checker) MinLength(field, value string, min int) {
	if value == "" {
		return
	}
	if utf8.RuneCountInString(value) < min {
		c.add(field, fmt.Sprintf("length must be at least %d", min))
	}
}

// NotNil fails when a required non-string field is absent from the body.
func (c *Checker) NotNil(field string, present bool) {
	if !present {
		c.add(field, "is required")
	}
}

// Email checks address shape on a non-empty value.
func (c *Checker) Email(field, value string) {
	if value == "" {
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		c.add(field, "must be a valid email address")
	}
}

// Match checks a non-empty value against the pattern.
func (c *Checker) Match(field, value string, re *regexp.Regexp, message string) {
	if value == "" {
		return
	}
	if !re.MatchString(value) {
		c.add(field, message)
	}
}

// Err returns nil when every check passed, otherwise an apperr.Invalid
// whose message joins "field: message" pairs with "; ".
func (c *Checker) Err() error {
	if len(c.errs) == 0 {
		return nil
	}
	parts := make([]string, len(c.errs))
	for i, fe := range c.errs {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return apperr.Invalidf(strings.Join(parts, "; "))
}
