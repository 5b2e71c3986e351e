package error

import "errors"

// Settlement domain errors.
var (
	// ErrSettlementNotFound is returned when voiding a settlement id that doesn't exist.
	ErrSettlementNotFound = errors.New("settlement not found")

	// ErrInvalidSettlementAmount is returned when a settlement amount is zero or negative.
	ErrInvalidSettlementAmount = errors.New("settlement amount must be positive")

	// ErrNotAuthorizedToVoidSettlement is returned when the settlement belongs to another couple.
	ErrNotAuthorizedToVoidSettlement = errors.New("not authorized to void settlement")
)

// SettlementErrorCode defines error codes for settlement errors.
type SettlementErrorCode string

const (
	ErrCodeSettlementNotFound       SettlementErrorCode = "STL-010001"
	ErrCodeInvalidSettlementAmount  SettlementErrorCode = "STL-010002"
	ErrCodeNotAuthorizedSettlement  SettlementErrorCode = "STL-010003"
)

// SettlementError represents a settlement error with code and message.
type SettlementError struct {
	Code    SettlementErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettlementError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettlementError) Unwrap() error {
	return e.Err
}

// NewSettlementError creates a new SettlementError with the given code and message.
func NewSettlementError(code SettlementErrorCode, message string, err error) *SettlementError {
	return &SettlementError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
