package service

import (
	"fmt"
	"strings"

	"creatoros/internal/domain"
)

type authService struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

func NewAuthService(
	supabaseClient domain.SupabaseClient,
	logger domain.Logger,
) domain.AuthService {
	return &authService{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

// ValidateToken validates a Supabase access token and returns the auth user.
func (s *authService) ValidateToken(token string) (*domain.SupabaseUser, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("invalid token: %w", domain.ErrInvalidToken)
	}

	user, err := s.supabaseClient.ValidateToken(token)
	if err != nil {
		s.logger.Error("Failed to validate token with Supabase", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	return user, nil
}
