// Package error defines domain-specific errors for the DuoBudget application.
package error

import "errors"

// Harmonization domain errors.
var (
	// ErrInvalidRatio is returned when a shared transaction carries a ratio outside [0,1].
	// The balance computation refuses to run rather than silently clamp,
	// since clamping would misstate who owes what.
	ErrInvalidRatio = errors.New("sharing ratio outside [0,1]")

	// ErrMissingCouple is returned when a balance is requested without a couple context.
	ErrMissingCouple = errors.New("couple is required")

	// ErrNoCoupleForUser is returned when the user has no linked partner.
	ErrNoCoupleForUser = errors.New("user has no couple")
)

// HarmonizationErrorCode defines error codes for harmonization errors.
// Format: HRM-XXYYYY where XX is category and YYYY is specific error.
type HarmonizationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRatio    HarmonizationErrorCode = "HRM-010001"
	ErrCodeMissingCouple   HarmonizationErrorCode = "HRM-010002"
	ErrCodeNoCoupleForUser HarmonizationErrorCode = "HRM-010003"

	// Data-quality warnings (02XXXX) — not raised as errors, surfaced
	// alongside the computed balance.
	WarnCodeAmbiguousPayer HarmonizationErrorCode = "HRM-020001"
)

// HarmonizationError represents a harmonization error with code and message.
type HarmonizationError struct {
	Code    HarmonizationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HarmonizationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HarmonizationError) Unwrap() error {
	return e.Err
}

// NewHarmonizationError creates a new HarmonizationError with the given code and message.
func NewHarmonizationError(code HarmonizationErrorCode, message string, err error) *HarmonizationError {
	return &HarmonizationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
