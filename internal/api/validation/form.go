package validation

import (
	"contactrelay/internal/api/dto/v1/contact"
	"contactrelay/internal/api/sanitization"
)

// Validation error messages returned to the client.
const (
	MsgInvalidName    = "Invalid name"
	MsgInvalidEmail   = "Invalid email"
	MsgInvalidPhone   = "Invalid phone number"
	MsgInvalidMessage = "Invalid message (5-5000 characters)"
)

// ValidateForm sanitizes a contact form submission and validates each field.
//
// Fields are checked in a fixed order (name, email, phone, message) and the
// first failure wins. On success the sanitized field set is returned;
// otherwise the returned string is the client-facing error message.
func ValidateForm(req *contact.ContactRequest) (*contact.Submission, string) {
	name := sanitization.SanitizeInput(req.Name)
	email := sanitization.SanitizeInput(req.Email)
	phone := sanitization.SanitizeInput(req.Phone)
	message := sanitization.SanitizeInput(req.Message)

	if name == "" || !IsValidName(name) {
		return nil, MsgInvalidName
	}

	if email == "" || !IsValidEmail(email) {
		return nil, MsgInvalidEmail
	}

	if phone != "" && !IsValidPhone(phone) {
		return nil, MsgInvalidPhone
	}

	if message == "" || !IsValidMessage(message) {
		return nil, MsgInvalidMessage
	}

	return &contact.Submission{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Message: message,
	}, ""
}
