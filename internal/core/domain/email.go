package domain

import (
	"strings"

	"github.com/keizo-yamashita/user-service/internal/apperr"
)

const (
	maxLocalPartLength = 64
	maxDomainLength    = 253
)

// EmailAddress is a syntactically valid email address. Validation covers the
// RFC 5322-style structural rules only; deliverability is never checked.
type EmailAddress struct {
	value string
}

// NewEmailAddress validates and wraps an email address.
func NewEmailAddress(value string) (EmailAddress, error) {
	if err := validateEmail(value); err != nil {
		return EmailAddress{}, err
	}
	return EmailAddress{value: value}, nil
}

// String returns the address value.
func (e EmailAddress) String() string { return e.value }

func validateEmail(value string) error {
	if value == "" {
		return apperr.Validation("email address is empty")
	}
	if strings.ContainsAny(value, " \t\r\n") {
		return apperr.Validation("email address contains whitespace: %s", value)
	}

	at := strings.LastIndex(value, "@")
	if at < 0 {
		return apperr.Validation("email address is missing @: %s", value)
	}

	local, domain := value[:at], value[at+1:]
	if local == "" {
		return apperr.Validation("email address has empty local part: %s", value)
	}
	if strings.Contains(local, "@") {
		return apperr.Validation("email address has more than one @: %s", value)
	}
	if domain == "" {
		return apperr.Validation("email address has empty domain: %s", value)
	}
	if len(local) > maxLocalPartLength {
		return apperr.Validation("email local part exceeds %d characters", maxLocalPartLength)
	}
	if len(domain) > maxDomainLength {
		return apperr.Validation("email domain exceeds %d characters", maxDomainLength)
	}

	if err := checkDots(local); err != nil {
		return err
	}
	if err := checkDots(domain); err != nil {
		return err
	}

	// A top-level domain must be present: at least two labels, the last one
	// alphabetic and two or more characters long.
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return apperr.Validation("email domain is missing a top-level domain: %s", value)
	}
	tld := labels[len(labels)-1]
	if len(tld) < 2 || !isAlpha(tld) {
		return apperr.Validation("email domain has an invalid top-level domain: %s", value)
	}

	return nil
}

func checkDots(part string) error {
	if strings.HasPrefix(part, ".") || strings.HasSuffix(part, ".") {
		return apperr.Validation("email part has a leading or trailing dot: %s", part)
	}
	if strings.Contains(part, "..") {
		return apperr.Validation("email part has consecutive dots: %s", part)
	}
	return nil
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
