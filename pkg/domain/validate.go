package domain

import (
	"fmt"
	"net/mail"
	"strings"

	"stays/pkg/serrors"
)

// invalid builds a validation error that names the offending field.
func invalid(field, msgFmt string, args ...any) error {
	return serrors.With(serrors.ErrValidation, "%s", field+": "+fmt.Sprintf(msgFmt, args...))
}

// requireLength checks that value is non-empty and at most max characters long.
func requireLength(field, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return invalid(field, "must not be empty")
	}
	if len(value) > max {
		return invalid(field, "must be at most %d characters", max)
	}

	return nil
}

// NormalizeEmail lower-cases and trims an email address. Emails are compared
// and stored in this normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateEmail checks the address against RFC 5322 via net/mail. Addresses
// with a display name ("Jane <jane@x.com>") are rejected.
func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return invalid("email", "invalid email address")
	}

	return nil
}
