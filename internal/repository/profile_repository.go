package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"creatoros/internal/domain"
)

const profilesTable = "user_profiles"

// ProfileRepository implements domain.ProfileRepository on user_profiles.
type ProfileRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

// NewProfileRepository creates a new Supabase profile repository
func NewProfileRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) *ProfileRepository {
	return &ProfileRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

// GetByID returns the profile or domain.ErrUserNotFound.
func (r *ProfileRepository) GetByID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	return r.getOne("id", userID)
}

// GetByEmail looks a profile up by exact email match.
func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	return r.getOne("email", email)
}

// UpdateProUntil sets (or clears, with nil) the Pro expiry.
func (r *ProfileRepository) UpdateProUntil(ctx context.Context, userID string, proUntil *time.Time, updatedAt time.Time) error {
	client, err := dbClient(r.supabaseClient)
	if err != nil {
		return err
	}

	data := map[string]interface{}{
		"pro_until":  nil,
		"updated_at": updatedAt.UTC().Format(time.RFC3339),
	}
	if proUntil != nil {
		data["pro_until"] = proUntil.UTC().Format(time.RFC3339)
	}

	resp, _, err := client.From(profilesTable).
		Update(data, "representation", "").
		Eq("id", userID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to update pro_until: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(resp, &rows); err == nil && len(rows) == 0 {
		return domain.ErrUserNotFound
	}

	r.logger.Info("Profile entitlement updated", "user_id", userID, "pro_until", data["pro_until"])
	return nil
}

func (r *ProfileRepository) getOne(column, value string) (*domain.UserProfile, error) {
	client, err := dbClient(r.supabaseClient)
	if err != nil {
		return nil, err
	}

	resp, _, err := client.From(profilesTable).
		Select("*", "", false).
		Eq(column, value).
		Limit(1, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var rows []domain.UserProfile
	if err := json.Unmarshal(resp, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return &rows[0], nil
}
