package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"creatoros/internal/domain"

	"github.com/supabase-community/postgrest-go"
)

const activityTable = "user_activity_log"

// ActivityRepository implements domain.ActivityRepository using Supabase.
type ActivityRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

func NewActivityRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) *ActivityRepository {
	return &ActivityRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

// Log appends an entry. The log is append-only.
func (r *ActivityRepository) Log(ctx context.Context, entry *domain.ActivityLogEntry) error {
	client, err := dbClient(r.supabaseClient)
	if err != nil {
		return err
	}

	details := entry.ActivityDetails
	if details == nil {
		details = map[string]interface{}{}
	}
	row := map[string]interface{}{
		"user_id":          entry.UserID,
		"activity_type":    entry.ActivityType,
		"activity_details": details,
	}

	_, _, err = client.From(activityTable).
		Insert(row, false, "", "minimal", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}
	return nil
}

// ListRecent returns the newest entries first.
func (r *ActivityRepository) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.ActivityLogEntry, error) {
	client, err := dbClient(r.supabaseClient)
	if err != nil {
		return nil, err
	}

	data, _, err := client.From(activityTable).
		Select("*", "", false).
		Eq("user_id", userID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(clampLimit(limit), "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	out := make([]*domain.ActivityLogEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapToActivity(row))
	}
	return out, nil
}

func mapToActivity(data map[string]interface{}) *domain.ActivityLogEntry {
	entry := &domain.ActivityLogEntry{
		ID:           getString(data, "id"),
		UserID:       getString(data, "user_id"),
		ActivityType: domain.ActivityType(getString(data, "activity_type")),
		CreatedAt:    getTime(data, "created_at"),
	}
	if details, ok := data["activity_details"].(map[string]interface{}); ok {
		entry.ActivityDetails = details
	}
	return entry
}
