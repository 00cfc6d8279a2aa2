package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"creatoros/internal/domain"
)

const influencerTable = "influencer_data"

// InfluencerRepository reads the influencer_data reference rows.
type InfluencerRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

func NewInfluencerRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) *InfluencerRepository {
	return &InfluencerRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

func (r *InfluencerRepository) ListAll(ctx context.Context) ([]domain.InfluencerData, error) {
	client, err := dbClient(r.supabaseClient)
	if err != nil {
		return nil, err
	}

	data, _, err := client.From(influencerTable).
		Select("*", "", false).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to load influencer data: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	// follower_count and engagement_rate are text in some deployments and
	// numeric in others; getString normalizes both.
	out := make([]domain.InfluencerData, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.InfluencerData{
			ID:               getString(row, "id"),
			Platform:         getString(row, "platform"),
			FollowerCount:    getString(row, "follower_count"),
			EngagementRate:   getString(row, "engagement_rate"),
			Niche:            getString(row, "niche"),
			Region:           getString(row, "region"),
			DMReplyExample:   getString(row, "dm_reply_example"),
			PricingExample:   getString(row, "pricing_example"),
			MediaKitSections: getString(row, "media_kit_sections"),
		})
	}
	return out, nil
}
