package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"creatoros/internal/domain"

	"github.com/supabase-community/postgrest-go"
)

const (
	dmTable       = "user_dm_generations"
	pricingTable  = "user_pricing_calculations"
	mediaKitTable = "user_media_kits"
)

var newestFirst = &postgrest.OrderOpts{Ascending: false}

// GenerationRepository implements domain.GenerationRepository. Records are append-only.
type GenerationRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

func NewGenerationRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) *GenerationRepository {
	return &GenerationRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

func (r *GenerationRepository) SaveDMGeneration(ctx context.Context, record *domain.DMGeneration) error {
	row := map[string]interface{}{
		"user_id":           record.UserID,
		"platform":          record.Platform,
		"message_type":      record.MessageType,
		"tone":              record.Tone,
		"follower_count":    record.FollowerCount,
		"engagement_rate":   record.EngagementRate,
		"brand_type":        record.BrandType,
		"generated_content": sanitizeText(record.GeneratedContent),
	}
	id, err := r.insert(dmTable, row)
	if err != nil {
		return fmt.Errorf("failed to save DM generation: %w", err)
	}
	record.ID = id
	return nil
}

func (r *GenerationRepository) SavePricingCalculation(ctx context.Context, record *domain.PricingCalculation) error {
	row := map[string]interface{}{
		"user_id":               record.UserID,
		"platform":              record.Platform,
		"follower_count":        record.FollowerCount,
		"engagement_rate":       record.EngagementRate,
		"niche":                 record.Niche,
		"deal_type":             record.DealType,
		"suggested_min":         record.SuggestedMin,
		"suggested_max":         record.SuggestedMax,
		"suggested_recommended": record.SuggestedRecommended,
	}
	id, err := r.insert(pricingTable, row)
	if err != nil {
		return fmt.Errorf("failed to save pricing calculation: %w", err)
	}
	record.ID = id
	return nil
}

func (r *GenerationRepository) SaveMediaKit(ctx context.Context, record *domain.MediaKitRecord) error {
	platforms := record.Platforms
	if platforms == nil {
		platforms = []domain.MediaKitPlatform{}
	}
	row := map[string]interface{}{
		"user_id":           record.UserID,
		"creator_name":      record.CreatorName,
		"niche":             record.Niche,
		"kit_style":         record.KitStyle,
		"email_tone":        record.EmailTone,
		"platforms":         platforms,
		"generated_content": sanitizeText(record.GeneratedContent),
	}
	id, err := r.insert(mediaKitTable, row)
	if err != nil {
		return fmt.Errorf("failed to save media kit: %w", err)
	}
	record.ID = id
	return nil
}

func (r *GenerationRepository) ListDMGenerations(ctx context.Context, userID string, limit int) ([]*domain.DMGeneration, error) {
	var out []*domain.DMGeneration
	if err := r.listInto(dmTable, userID, limit, &out); err != nil {
		return nil, fmt.Errorf("failed to list DM generations: %w", err)
	}
	return out, nil
}

func (r *GenerationRepository) ListPricingCalculations(ctx context.Context, userID string, limit int) ([]*domain.PricingCalculation, error) {
	var out []*domain.PricingCalculation
	if err := r.listInto(pricingTable, userID, limit, &out); err != nil {
		return nil, fmt.Errorf("failed to list pricing calculations: %w", err)
	}
	return out, nil
}

func (r *GenerationRepository) ListMediaKits(ctx context.Context, userID string, limit int) ([]*domain.MediaKitRecord, error) {
	var out []*domain.MediaKitRecord
	if err := r.listInto(mediaKitTable, userID, limit, &out); err != nil {
		return nil, fmt.Errorf("failed to list media kits: %w", err)
	}
	return out, nil
}

// GetMediaKit returns the kit only if it belongs to userID.
func (r *GenerationRepository) GetMediaKit(ctx context.Context, userID, id string) (*domain.MediaKitRecord, error) {
	client, err := dbClient(r.supabaseClient)
	if err != nil {
		return nil, err
	}

	data, _, err := client.From(mediaKitTable).
		Select("*", "", false).
		Eq("id", id).
		Eq("user_id", userID).
		Limit(1, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get media kit: %w", err)
	}

	var rows []*domain.MediaKitRecord
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrMediaKitNotFound
	}
	return rows[0], nil
}

func (r *GenerationRepository) CountDMGenerations(ctx context.Context, userID string) (int, error) {
	return r.count(dmTable, userID)
}

func (r *GenerationRepository) CountMediaKits(ctx context.Context, userID string) (int, error) {
	return r.count(mediaKitTable, userID)
}

// ListRecommendedPrices returns suggested_recommended for every pricing calculation of the user.
func (r *GenerationRepository) ListRecommendedPrices(ctx context.Context, userID string) ([]int, error) {
	client, err := dbClient(r.supabaseClient)
	if err != nil {
		return nil, err
	}

	data, _, err := client.From(pricingTable).
		Select("suggested_recommended", "", false).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	prices := make([]int, 0, len(rows))
	for _, row := range rows {
		prices = append(prices, getInt(row, "suggested_recommended"))
	}
	return prices, nil
}

func (r *GenerationRepository) insert(table string, row map[string]interface{}) (string, error) {
	client, err := dbClient(r.supabaseClient)
	if err != nil {
		return "", err
	}

	// Request "representation" so PostgREST returns the inserted row.
	data, _, err := client.From(table).
		Insert(row, false, "", "representation", "").
		Execute()
	if err != nil {
		return "", err
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil || len(rows) == 0 {
		return "", nil
	}
	return getString(rows[0], "id"), nil
}

func (r *GenerationRepository) listInto(table, userID string, limit int, out interface{}) error {
	client, err := dbClient(r.supabaseClient)
	if err != nil {
		return err
	}

	data, _, err := client.From(table).
		Select("*", "", false).
		Eq("user_id", userID).
		Order("created_at", newestFirst).
		Limit(clampLimit(limit), "").
		Execute()
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

func (r *GenerationRepository) count(table, userID string) (int, error) {
	client, err := dbClient(r.supabaseClient)
	if err != nil {
		return 0, err
	}

	_, count, err := client.From(table).
		Select("id", "exact", true).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return int(count), nil
}
