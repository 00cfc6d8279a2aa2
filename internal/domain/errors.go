package domain

import "errors"

// Domain errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUsageLimitReached  = errors.New("monthly usage limit reached")
	ErrUsageUnavailable   = errors.New("usage could not be checked")
	ErrInvalidActionKind  = errors.New("invalid action kind")
	ErrMediaKitNotFound   = errors.New("media kit not found")
	ErrInvalidSignature   = errors.New("invalid webhook signature")
	ErrInvalidHistoryKind = errors.New("invalid history kind")
	ErrAIKeyNotConfigured = errors.New(ProxyErrorAPIKeyNotConfigured)
	ErrAIQuotaExceeded    = errors.New(ProxyErrorQuotaExceeded)
	ErrUnknownProxyAction = errors.New("Unknown action")
)

// Error codes returned by the AI proxy in the {"error": ...} body.
const (
	ProxyErrorAPIKeyNotConfigured = "API_KEY_NOT_CONFIGURED"
	ProxyErrorQuotaExceeded       = "OPENROUTER_API_402_ERROR"
)

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

// NewValidationError builds a *ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
