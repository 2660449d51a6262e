package validators

import (
	"prestige-properties/internal/models"
)

type ContactValidator interface {
	// ValidateContact trims the submission in place and returns an
	// *errors.ValidationError naming each rejected field.
	ValidateContact(submission *models.ContactSubmission) error
}
