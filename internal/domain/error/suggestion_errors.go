package error

import "errors"

// Category suggestion domain errors.
var (
	// ErrSuggestionNotFound is returned when a suggestion lookup fails.
	ErrSuggestionNotFound = errors.New("suggestion not found")

	// ErrSuggestionAlreadyResolved is returned when approving or rejecting a non-pending suggestion.
	ErrSuggestionAlreadyResolved = errors.New("suggestion already resolved")

	// ErrAIServiceUnavailable is returned when the classification service is not configured.
	ErrAIServiceUnavailable = errors.New("AI classification service unavailable")

	// ErrNoUncategorizedTransactions is returned when there is nothing to categorize.
	ErrNoUncategorizedTransactions = errors.New("no uncategorized transactions")
)

// SuggestionErrorCode defines error codes for suggestion errors.
type SuggestionErrorCode string

const (
	ErrCodeSuggestionNotFound        SuggestionErrorCode = "SGT-010001"
	ErrCodeSuggestionAlreadyResolved SuggestionErrorCode = "SGT-010002"
	ErrCodeAIServiceUnavailable      SuggestionErrorCode = "SGT-010003"
	ErrCodeNoUncategorized           SuggestionErrorCode = "SGT-010004"
)

// SuggestionError represents a suggestion error with code and message.
type SuggestionError struct {
	Code    SuggestionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SuggestionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SuggestionError) Unwrap() error {
	return e.Err
}

// NewSuggestionError creates a new SuggestionError with the given code and message.
func NewSuggestionError(code SuggestionErrorCode, message string, err error) *SuggestionError {
	return &SuggestionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
