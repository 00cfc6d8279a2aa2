package supabase

import (
	"fmt"

	"creatoros/internal/domain"

	"github.com/supabase-community/supabase-go"
)

// SupabaseClient implements the domain.SupabaseClient interface.
// Token validation uses the anon key; table access uses the service role key
// so server-side writes (usage counters, webhook upgrades) bypass RLS.
type SupabaseClient struct {
	authClient *supabase.Client
	dbClient   *supabase.Client
	config     domain.Config
	logger     domain.Logger
}

// NewSupabaseClient creates a new Supabase client instance
func NewSupabaseClient(config domain.Config, logger domain.Logger) *SupabaseClient {
	return &SupabaseClient{
		config: config,
		logger: logger,
	}
}

// DB returns the service-role client used by repositories.
func (s *SupabaseClient) DB() *supabase.Client {
	return s.dbClient
}

// Initialize establishes a connection to Supabase
func (s *SupabaseClient) Initialize() error {
	supabaseURL := s.config.GetSupabaseURL()
	anonKey := s.config.GetSupabaseKey()
	serviceKey := s.config.GetSupabaseServiceKey()

	if supabaseURL == "" || anonKey == "" {
		return fmt.Errorf("supabase URL and key must be provided")
	}

	authClient, err := supabase.NewClient(supabaseURL, anonKey, &supabase.ClientOptions{})
	if err != nil {
		return fmt.Errorf("failed to create Supabase client: %w", err)
	}

	dbClient := authClient
	if serviceKey != "" && serviceKey != anonKey {
		dbClient, err = supabase.NewClient(supabaseURL, serviceKey, &supabase.ClientOptions{})
		if err != nil {
			return fmt.Errorf("failed to create Supabase service client: %w", err)
		}
	} else {
		s.logger.Warn("SUPABASE_SERVICE_ROLE_KEY not set, using anon key for table access")
	}

	s.authClient = authClient
	s.dbClient = dbClient
	s.logger.Info("Supabase client initialized successfully", "url", supabaseURL)
	return nil
}

// ValidateToken validates a Supabase JWT token and returns user info
func (s *SupabaseClient) ValidateToken(token string) (*domain.SupabaseUser, error) {
	if s.authClient == nil {
		return nil, fmt.Errorf("Supabase client not initialized")
	}

	// Passing "Authorization" via client headers does not affect GoTrue requests.
	user, err := s.authClient.Auth.WithToken(token).GetUser()
	if err != nil {
		s.logger.Error("Failed to validate token with Supabase", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	return &domain.SupabaseUser{
		ID:           user.ID.String(),
		Email:        user.Email,
		UserMetadata: user.UserMetadata,
		CreatedAt:    user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    user.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}
