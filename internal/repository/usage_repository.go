package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"creatoros/internal/domain"
)

const usageTable = "user_usage"

// UsageRepository implements domain.UsageRepository on the user_usage table.
type UsageRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

func NewUsageRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) *UsageRepository {
	return &UsageRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

// GetUsage returns the usage row for the month, creating a zeroed one on first access.
// When a concurrent request wins the insert, the unique violation is treated as
// "already created" and the winner's row is re-read.
func (r *UsageRepository) GetUsage(ctx context.Context, userID, monthYear string) (*domain.UserUsage, error) {
	usage, err := r.find(userID, monthYear)
	if err != nil {
		return nil, err
	}
	if usage != nil {
		return usage, nil
	}

	created, err := r.create(userID, monthYear)
	if err == nil {
		return created, nil
	}
	if !isUniqueViolation(err) {
		return nil, fmt.Errorf("failed to create usage row: %w", err)
	}

	r.logger.Debug("Usage row created concurrently, re-reading", "user_id", userID, "month_year", monthYear)
	usage, err = r.find(userID, monthYear)
	if err != nil {
		return nil, err
	}
	if usage == nil {
		return nil, fmt.Errorf("usage row for %s/%s missing after unique violation", userID, monthYear)
	}
	return usage, nil
}

// SetCounter writes value into the kind's column for (userID, monthYear).
func (r *UsageRepository) SetCounter(ctx context.Context, userID, monthYear string, kind domain.ActionKind, value int, updatedAt time.Time) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidActionKind, kind)
	}
	client, err := dbClient(r.supabaseClient)
	if err != nil {
		return err
	}

	data := map[string]interface{}{
		kind.Column(): value,
		"updated_at":  updatedAt.UTC(),
	}
	_, _, err = client.From(usageTable).
		Update(data, "minimal", "").
		Eq("user_id", userID).
		Eq("month_year", monthYear).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to update usage: %w", err)
	}
	return nil
}

func (r *UsageRepository) find(userID, monthYear string) (*domain.UserUsage, error) {
	client, err := dbClient(r.supabaseClient)
	if err != nil {
		return nil, err
	}

	resp, _, err := client.From(usageTable).
		Select("*", "", false).
		Eq("user_id", userID).
		Eq("month_year", monthYear).
		Limit(1, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get usage: %w", err)
	}

	var rows []domain.UserUsage
	if err := json.Unmarshal(resp, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *UsageRepository) create(userID, monthYear string) (*domain.UserUsage, error) {
	client, err := dbClient(r.supabaseClient)
	if err != nil {
		return nil, err
	}

	row := map[string]interface{}{
		"user_id":               userID,
		"month_year":            monthYear,
		"dm_generations":        0,
		"pricing_calculations":  0,
		"media_kit_generations": 0,
	}
	resp, _, err := client.From(usageTable).
		Insert(row, false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, err
	}

	var rows []domain.UserUsage
	if err := json.Unmarshal(resp, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return &domain.UserUsage{UserID: userID, MonthYear: monthYear}, nil
	}
	r.logger.Info("Usage row created", "user_id", userID, "month_year", monthYear)
	return &rows[0], nil
}
