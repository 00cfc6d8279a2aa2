package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"creatoros/internal/domain"
	apperrors "creatoros/pkg/errors"
)

type contextKey string

const (
	userContextKey      contextKey = "user"
	tokenContextKey     contextKey = "token"
	requestIDContextKey contextKey = "request_id"
)

// GetUserFromContext extracts the authenticated user from request context
func GetUserFromContext(r *http.Request) (*domain.SupabaseUser, bool) {
	user, ok := r.Context().Value(userContextKey).(*domain.SupabaseUser)
	return user, ok
}

// GetTokenFromContext extracts the authentication token from request context
func GetTokenFromContext(r *http.Request) (string, bool) {
	token, ok := r.Context().Value(tokenContextKey).(string)
	return token, ok
}

// GetRequestID returns the id assigned by RequestLogger, or "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}

func withUser(r *http.Request, user *domain.SupabaseUser, token string) *http.Request {
	ctx := context.WithValue(r.Context(), userContextKey, user)
	ctx = context.WithValue(ctx, tokenContextKey, token)
	return r.WithContext(ctx)
}

// writeJSON writes v as a JSON response body.
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeAppError maps err onto an AppError and writes it.
func writeAppError(w http.ResponseWriter, err error) {
	appErr := toAppError(err)
	writeError(w, apperrors.GetStatusCode(appErr), appErr.Message)
}

// isServerError reports whether the failure is on our side; handlers log those.
func isServerError(appErr *apperrors.AppError) bool {
	return apperrors.IsType(appErr, apperrors.ErrorTypeInternal) || apperrors.IsType(appErr, apperrors.ErrorTypeNetwork)
}

// toAppError classifies service errors for the HTTP layer. Anything not
// recognised is an internal error whose message is not leaked.
func toAppError(err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return apperrors.NewValidationError(validationErr.Error(), validationErr.Field)
	}

	switch {
	case errors.Is(err, domain.ErrUsageLimitReached):
		return apperrors.NewPaymentRequiredError("Monthly usage limit reached. Upgrade to Pro for unlimited access.", err)
	case errors.Is(err, domain.ErrUsageUnavailable):
		return apperrors.NewNetworkError("Usage is temporarily unavailable. Please try again.", err)
	case errors.Is(err, domain.ErrInvalidActionKind):
		return apperrors.NewValidationError("Invalid action")
	case errors.Is(err, domain.ErrInvalidHistoryKind):
		return apperrors.NewValidationError("Invalid history type")
	case errors.Is(err, domain.ErrMediaKitNotFound):
		return apperrors.NewNotFoundError("Media kit not found")
	case errors.Is(err, domain.ErrUserNotFound):
		return apperrors.NewNotFoundError("Profile not found")
	case errors.Is(err, domain.ErrInvalidToken):
		return apperrors.NewUnauthorizedError("Invalid token")
	case errors.Is(err, domain.ErrInvalidSignature):
		return apperrors.NewUnauthorizedError("Invalid signature")
	}
	return apperrors.NewInternalError("Internal server error", err)
}

// decodeJSON reads a JSON request body into v.
func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return apperrors.NewValidationError("Invalid request body")
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.NewValidationError("Invalid request body", err.Error())
	}
	return nil
}
