package service

import (
	"fmt"
	"strings"
)

// ValidationError reports a rejected caller-supplied field. Handlers
// map it to 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// requireField rejects blank required form fields
func requireField(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Reason: "must not be empty"}
	}
	return nil
}

// requireEmail rejects values that cannot possibly be an address.
// Deliberately shallow: the forms are lead capture, not account signup.
func requireEmail(field, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return &ValidationError{Field: field, Reason: "must not be empty"}
	}
	at := strings.Index(value, "@")
	if at < 1 || at == len(value)-1 || strings.ContainsAny(value, " \t") {
		return &ValidationError{Field: field, Reason: "must be an email address"}
	}
	return nil
}
