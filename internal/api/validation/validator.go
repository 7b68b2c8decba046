package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"contactrelay/internal/api/sanitization"
)

var (
	// emailRegex is a simplified RFC 5322 shape: local@domain.tld with no
	// whitespace or extra @ signs.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// nameRegex allows letters, whitespace, hyphens and apostrophes.
	nameRegex = regexp.MustCompile(`^[a-zA-Z\s\-']+$`)

	// phoneRegex allows digits plus common formatting characters.
	phoneRegex = regexp.MustCompile(`^[\d\s\-()+]+$`)

	digitRegex = regexp.MustCompile(`\d`)
)

// Field length constraints (RFC 5321 for the email limits).
const (
	nameMinLength       = 2
	nameMaxLength       = 100
	emailMaxLength      = 254
	emailLocalMaxLength = 64
	phoneMinDigits      = 7
	phoneMaxDigits      = 15
	messageMinLength    = 5
	messageMaxLength    = 5000
)

// IsValidName reports whether name is an acceptable sender name.
// It expects already-sanitized input.
func IsValidName(name string) bool {
	cleaned := strings.TrimSpace(name)
	if cleaned == "" {
		return false
	}

	length := utf8.RuneCountInString(cleaned)
	if length < nameMinLength || length > nameMaxLength {
		return false
	}

	return nameRegex.MatchString(cleaned)
}

// IsValidEmail reports whether email is a deliverable-looking address.
//
// The value is sanitized, trimmed and lowercased before matching. Addresses
// carrying encoded angle brackets are rejected outright since they indicate
// an injection attempt that survived encoding.
func IsValidEmail(email string) bool {
	cleaned := strings.ToLower(strings.TrimSpace(sanitization.SanitizeInput(email)))

	if !emailRegex.MatchString(cleaned) {
		return false
	}

	if len(cleaned) > emailMaxLength {
		return false
	}

	local := strings.SplitN(cleaned, "@", 2)[0]
	if len(local) > emailLocalMaxLength {
		return false
	}

	if strings.Contains(cleaned, "&lt;") || strings.Contains(cleaned, "&gt;") {
		return false
	}

	return true
}

// IsValidPhone reports whether phone is an acceptable phone number.
// The field is optional: empty input is valid.
func IsValidPhone(phone string) bool {
	if strings.TrimSpace(phone) == "" {
		return true
	}

	cleaned := strings.TrimSpace(sanitization.SanitizeInput(phone))

	if !phoneRegex.MatchString(cleaned) {
		return false
	}

	// E.164 allows up to 15 digits; require at least 7 to filter junk.
	digits := len(digitRegex.FindAllString(cleaned, -1))
	return digits >= phoneMinDigits && digits <= phoneMaxDigits
}

// IsValidMessage reports whether message has an acceptable length.
func IsValidMessage(message string) bool {
	cleaned := strings.TrimSpace(sanitization.SanitizeInput(message))

	length := utf8.RuneCountInString(cleaned)
	return length >= messageMinLength && length <= messageMaxLength
}
