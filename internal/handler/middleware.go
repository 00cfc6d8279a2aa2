package handler

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"creatoros/internal/domain"
)

const requestIDHeader = "X-Request-ID"

// AuthMiddleware validates Supabase JWT tokens
type AuthMiddleware struct {
	authService domain.AuthService
	logger      domain.Logger
}

func NewAuthMiddleware(authService domain.AuthService, logger domain.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		logger:      logger,
	}
}

// Middleware rejects requests without a valid bearer token and stores the
// user and token in the request context.
func (m *AuthMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		// Extract token from "Bearer <token>" format
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			writeError(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		token := parts[1]
		if token == "" {
			writeError(w, http.StatusUnauthorized, "Token required")
			return
		}

		user, err := m.authService.ValidateToken(token)
		if err != nil {
			m.logger.Error("Token validation failed", err, "token", tokenPrefix(token), "request_id", GetRequestID(r.Context()))
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		next.ServeHTTP(w, withUser(r, user, token))
	})
}

// ProjectKeyMiddleware guards the AI proxy. A caller must present the
// project's anon or service key, as a bearer token or in the apikey header,
// or a valid user token.
type ProjectKeyMiddleware struct {
	keys        []string
	authService domain.AuthService
	logger      domain.Logger
}

// NewProjectKeyMiddleware ignores empty keys, so an unset service key never
// matches a missing header.
func NewProjectKeyMiddleware(keys []string, authService domain.AuthService, logger domain.Logger) *ProjectKeyMiddleware {
	accepted := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			accepted = append(accepted, k)
		}
	}
	return &ProjectKeyMiddleware{
		keys:        accepted,
		authService: authService,
		logger:      logger,
	}
}

func (m *ProjectKeyMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bearer := bearerToken(r.Header.Get("Authorization"))
		if m.isProjectKey(r.Header.Get("apikey")) || m.isProjectKey(bearer) {
			next.ServeHTTP(w, r)
			return
		}

		if bearer != "" {
			user, err := m.authService.ValidateToken(bearer)
			if err == nil && user != nil {
				next.ServeHTTP(w, withUser(r, user, bearer))
				return
			}
		}

		m.logger.Warn("Rejected AI proxy call without a valid key", "request_id", GetRequestID(r.Context()))
		writeError(w, http.StatusUnauthorized, "Missing or invalid API key")
	})
}

func (m *ProjectKeyMiddleware) isProjectKey(candidate string) bool {
	if candidate == "" {
		return false
	}
	for _, k := range m.keys {
		if subtle.ConstantTimeCompare([]byte(candidate), []byte(k)) == 1 {
			return true
		}
	}
	return false
}

// bearerToken returns the token of a "Bearer <token>" header, or "".
func bearerToken(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func tokenPrefix(token string) string {
	if len(token) <= 10 {
		return "..."
	}
	return token[:10] + "..."
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogger tags every request with an X-Request-ID (generated when the
// caller did not send one) and logs method, path, status and duration.
func RequestLogger(logger domain.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(requestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, requestID)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			ctx := context.WithValue(r.Context(), requestIDContextKey, requestID)
			next.ServeHTTP(rec, r.WithContext(ctx))

			fields := []interface{}{
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", requestID,
			}
			if rec.status >= http.StatusInternalServerError {
				logger.Warn("HTTP request failed", fields...)
				return
			}
			logger.Info("HTTP request", fields...)
		})
	}
}
