package error

import "errors"

// Subscription domain errors.
var (
	// ErrInvalidFrequency is returned when a frequency override is not a supported period.
	ErrInvalidFrequency = errors.New("invalid billing frequency")

	// ErrInvalidTargetMonth is returned when a projection month is outside 1-12.
	ErrInvalidTargetMonth = errors.New("target month must be between 1 and 12")

	// ErrSubscriptionSettingNotFound is returned when no override exists for a (label, amount) key.
	ErrSubscriptionSettingNotFound = errors.New("subscription setting not found")

	// ErrPayerNotInCouple is returned when a setting designates a payer outside the couple.
	ErrPayerNotInCouple = errors.New("payer is not a member of the couple")

	// ErrPartnerChargeNotEditable is returned when a setting tries to change
	// the attribution of a charge imported through the partner's account.
	ErrPartnerChargeNotEditable = errors.New("partner-sourced charge attribution is not editable")
)

// SubscriptionErrorCode defines error codes for subscription errors.
type SubscriptionErrorCode string

const (
	ErrCodeInvalidFrequency         SubscriptionErrorCode = "SUB-010001"
	ErrCodeInvalidTargetMonth       SubscriptionErrorCode = "SUB-010002"
	ErrCodeSettingNotFound          SubscriptionErrorCode = "SUB-010003"
	ErrCodePayerNotInCouple         SubscriptionErrorCode = "SUB-010004"
	ErrCodePartnerChargeNotEditable SubscriptionErrorCode = "SUB-010005"
)

// SubscriptionError represents a subscription error with code and message.
type SubscriptionError struct {
	Code    SubscriptionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SubscriptionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SubscriptionError) Unwrap() error {
	return e.Err
}

// NewSubscriptionError creates a new SubscriptionError with the given code and message.
func NewSubscriptionError(code SubscriptionErrorCode, message string, err error) *SubscriptionError {
	return &SubscriptionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
