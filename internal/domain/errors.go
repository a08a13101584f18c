package domain

import (
	"errors"
	"fmt"
)

// Validation errors are surfaced synchronously to whoever requested the computation.
var (
	ErrInvalidTimezone   = errors.New("invalid timezone")
	ErrInvalidSchedule   = errors.New("invalid schedule")
	ErrInvalidTimeOfDay  = errors.New("invalid time of day, use HH:MM (24-hour format)")
	ErrInvalidWeekday    = errors.New("invalid weekday, use 1-7 (1=Mon ... 7=Sun)")
	ErrInvalidWebhookURL = errors.New("invalid webhook url")
	ErrInvalidContent    = errors.New("invalid content")
	ErrInvalidCandidate  = errors.New("invalid pool candidate")
)

// Runtime errors
var (
	ErrDeliveryFailed         = errors.New("delivery failed")
	ErrPersistenceUnavailable = errors.New("persistence unavailable")
	ErrNotFound               = errors.New("not found")
)

// DeliveryError carries the transport response of a rejected webhook call.
type DeliveryError struct {
	StatusCode int
	Body       string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", ErrDeliveryFailed, e.StatusCode, e.Body)
}

func (e *DeliveryError) Is(target error) bool {
	return target == ErrDeliveryFailed
}

// IsValidationError reports whether err should be answered with a 400-class response.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrInvalidTimezone,
		ErrInvalidSchedule,
		ErrInvalidTimeOfDay,
		ErrInvalidWeekday,
		ErrInvalidWebhookURL,
		ErrInvalidContent,
		ErrInvalidCandidate,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
