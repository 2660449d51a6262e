package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	apperrors "prestige-properties/internal/errors"
	"prestige-properties/internal/models"
	"prestige-properties/internal/validators"
	"prestige-properties/pkg/logger"
	"prestige-properties/pkg/metrics"
)

// SuccessBannerTimeout is how long the success banner stays before clearing itself.
const SuccessBannerTimeout = 5 * time.Second

// Relay delivers a form-encoded submission; *formrelay.Client implements it.
type Relay interface {
	Submit(ctx context.Context, fields url.Values) error
}

type ContactService struct {
	relay     Relay
	validator validators.ContactValidator
}

func NewContactService(relay Relay, validator validators.ContactValidator) *ContactService {
	return &ContactService{relay: relay, validator: validator}
}

// Submit validates and relays a submission. Validation failures come back as
// *errors.ValidationError, relay failures wrap errors.ErrRelayFailed.
func (s *ContactService) Submit(ctx context.Context, submission *models.ContactSubmission, subject string) error {
	if err := s.validator.ValidateContact(submission); err != nil {
		metrics.FormRelaySubmissionsTotal.WithLabelValues("invalid").Inc()
		return err
	}

	fields := url.Values{
		"name":    {submission.Name},
		"email":   {submission.Email},
		"message": {submission.Message},
	}
	if submission.Phone != "" {
		fields.Set("phone", submission.Phone)
	}
	if subject != "" {
		fields.Set("_subject", subject)
	}

	start := time.Now()
	err := s.relay.Submit(ctx, fields)
	metrics.FormRelayDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.FormRelaySubmissionsTotal.WithLabelValues(models.ContactOutcomeError).Inc()
		logger.GlobalLogger.Errorf("contact relay failed: email=%s, error=%v", submission.Email, err)
		return fmt.Errorf("%w: %v", apperrors.ErrRelayFailed, err)
	}

	metrics.FormRelaySubmissionsTotal.WithLabelValues(models.ContactOutcomeSuccess).Inc()
	return nil
}
