package domain

import "time"

// DMGeneration is a row in user_dm_generations.
type DMGeneration struct {
	ID               string    `json:"id,omitempty"`
	UserID           string    `json:"user_id"`
	Platform         string    `json:"platform"`
	MessageType      string    `json:"message_type"`
	Tone             string    `json:"tone"`
	FollowerCount    string    `json:"follower_count"`
	EngagementRate   string    `json:"engagement_rate"`
	BrandType        string    `json:"brand_type,omitempty"`
	GeneratedContent string    `json:"generated_content"`
	CreatedAt        time.Time `json:"created_at"`
}

// PricingCalculation is a row in user_pricing_calculations.
type PricingCalculation struct {
	ID                   string    `json:"id,omitempty"`
	UserID               string    `json:"user_id"`
	Platform             string    `json:"platform"`
	FollowerCount        string    `json:"follower_count"`
	EngagementRate       string    `json:"engagement_rate"`
	Niche                string    `json:"niche"`
	DealType             string    `json:"deal_type"`
	SuggestedMin         int       `json:"suggested_min"`
	SuggestedMax         int       `json:"suggested_max"`
	SuggestedRecommended int       `json:"suggested_recommended"`
	CreatedAt            time.Time `json:"created_at"`
}

// MediaKitRecord is a row in user_media_kits.
type MediaKitRecord struct {
	ID               string             `json:"id,omitempty"`
	UserID           string             `json:"user_id"`
	CreatorName      string             `json:"creator_name"`
	Niche            string             `json:"niche"`
	KitStyle         string             `json:"kit_style"`
	EmailTone        string             `json:"email_tone,omitempty"`
	Platforms        []MediaKitPlatform `json:"platforms"`
	GeneratedContent string             `json:"generated_content"`
	CreatedAt        time.Time          `json:"created_at"`
}

// ActivityLogEntry is a row in user_activity_log.
type ActivityLogEntry struct {
	ID              string                 `json:"id,omitempty"`
	UserID          string                 `json:"user_id"`
	ActivityType    ActivityType           `json:"activity_type"`
	ActivityDetails map[string]interface{} `json:"activity_details"`
	CreatedAt       time.Time              `json:"created_at"`
}

// History kinds accepted by GET /api/v1/history/{kind}.
const (
	HistoryDM        = "dm"
	HistoryPricing   = "pricing"
	HistoryMediaKits = "media-kits"
)

// Default and maximum page size for history listings.
const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 50
)

// DashboardStats is the payload of GET /api/v1/dashboard.
type DashboardStats struct {
	TotalDMs         int                 `json:"total_dms"`
	AvgPricing       int                 `json:"avg_pricing"`
	MediaKitsCreated int                 `json:"media_kits_created"`
	RecentActivity   []*ActivityLogEntry `json:"recent_activity"`
}
