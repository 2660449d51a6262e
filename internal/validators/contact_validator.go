package validators

import (
	"regexp"
	"strings"
	"unicode/utf8"

	apperrors "prestige-properties/internal/errors"
	"prestige-properties/internal/models"
)

// Message catalog keys for field errors.
const (
	FieldRequired = "errors.field.required"
	FieldEmail    = "errors.field.email"
	FieldPhone    = "errors.field.phone"
	FieldTooLong  = "errors.field.tooLong"
)

const (
	maxNameLength    = 100
	maxEmailLength   = 254
	maxMessageLength = 5000
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{5,22}[0-9]$`)
)

type contactValidator struct{}

func NewContactValidator() ContactValidator {
	return &contactValidator{}
}

func (v *contactValidator) ValidateContact(s *models.ContactSubmission) error {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Message = strings.TrimSpace(s.Message)

	fields := make(map[string]string)

	switch {
	case s.Name == "":
		fields["name"] = FieldRequired
	case utf8.RuneCountInString(s.Name) > maxNameLength:
		fields["name"] = FieldTooLong
	}

	switch {
	case s.Email == "":
		fields["email"] = FieldRequired
	case len(s.Email) > maxEmailLength:
		fields["email"] = FieldTooLong
	case !isValidEmail(s.Email):
		fields["email"] = FieldEmail
	}

	if s.Phone != "" && !isValidPhone(s.Phone) {
		fields["phone"] = FieldPhone
	}

	switch {
	case s.Message == "":
		fields["message"] = FieldRequired
	case utf8.RuneCountInString(s.Message) > maxMessageLength:
		fields["message"] = FieldTooLong
	}

	if len(fields) > 0 {
		return &apperrors.ValidationError{Fields: fields}
	}
	return nil
}

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func isValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}
