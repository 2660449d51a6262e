package models

// ContactSubmission is the contact form as posted by the visitor.
type ContactSubmission struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Phone   string `form:"phone" json:"phone"`
	Message string `form:"message" json:"message"`
}

// ContactStatus is the banner shown after a submission.
type ContactStatus struct {
	Outcome    string `json:"status"`
	Message    string `json:"message"`
	ClearAfter int    `json:"clearAfterMs,omitempty"`
}

const (
	ContactOutcomeSuccess = "success"
	ContactOutcomeError   = "error"
)
