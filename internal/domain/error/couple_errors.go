package error

import "errors"

// Couple domain errors.
var (
	// ErrCoupleNotFound is returned when no couple exists for the user.
	ErrCoupleNotFound = errors.New("couple not found")

	// ErrPartnerNotFound is returned when the invited partner email is unknown.
	ErrPartnerNotFound = errors.New("partner not found")

	// ErrAlreadyInCouple is returned when either partner already belongs to a couple.
	ErrAlreadyInCouple = errors.New("user already belongs to a couple")

	// ErrSelfPartner is returned when a user tries to form a couple with themselves.
	ErrSelfPartner = errors.New("cannot form a couple with yourself")

	// ErrNotACoupleMember is returned when the user is not part of the addressed couple.
	ErrNotACoupleMember = errors.New("user is not a member of this couple")
)

// CoupleErrorCode defines error codes for couple errors.
type CoupleErrorCode string

const (
	ErrCodeCoupleNotFound  CoupleErrorCode = "CPL-010001"
	ErrCodePartnerNotFound CoupleErrorCode = "CPL-010002"
	ErrCodeAlreadyInCouple CoupleErrorCode = "CPL-010003"
	ErrCodeSelfPartner     CoupleErrorCode = "CPL-010004"
	ErrCodeNotACoupleMember CoupleErrorCode = "CPL-010005"
)

// CoupleError represents a couple error with code and message.
type CoupleError struct {
	Code    CoupleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CoupleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CoupleError) Unwrap() error {
	return e.Err
}

// NewCoupleError creates a new CoupleError with the given code and message.
func NewCoupleError(code CoupleErrorCode, message string, err error) *CoupleError {
	return &CoupleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
