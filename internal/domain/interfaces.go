package domain

import (
	"context"
	"time"
)

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetEnvironment() string
	IsProduction() bool

	GetSupabaseURL() string
	GetSupabaseKey() string
	GetSupabaseServiceKey() string

	GetOpenRouterAPIKey() string
	GetOpenRouterBaseURL() string
	GetOpenRouterModel() string
	GetAIProxyURL() string
	GetAITimeout() time.Duration

	GetGumroadWebhookSecret() string
	GetRedisURL() string
	GetPricingNicheMultiplier() float64
	GetCORSAllowedOrigins() []string
}

// ProfileRepository reads and writes user_profiles.
type ProfileRepository interface {
	GetByID(ctx context.Context, userID string) (*UserProfile, error)
	GetByEmail(ctx context.Context, email string) (*UserProfile, error)
	UpdateProUntil(ctx context.Context, userID string, proUntil *time.Time, updatedAt time.Time) error
}

// UsageRepository reads and writes user_usage.
type UsageRepository interface {
	// GetUsage returns the row for (userID, monthYear), creating a zeroed row if absent.
	GetUsage(ctx context.Context, userID, monthYear string) (*UserUsage, error)
	SetCounter(ctx context.Context, userID, monthYear string, kind ActionKind, value int, updatedAt time.Time) error
}

// GenerationRepository stores and lists generation records.
type GenerationRepository interface {
	SaveDMGeneration(ctx context.Context, record *DMGeneration) error
	SavePricingCalculation(ctx context.Context, record *PricingCalculation) error
	SaveMediaKit(ctx context.Context, record *MediaKitRecord) error

	ListDMGenerations(ctx context.Context, userID string, limit int) ([]*DMGeneration, error)
	ListPricingCalculations(ctx context.Context, userID string, limit int) ([]*PricingCalculation, error)
	ListMediaKits(ctx context.Context, userID string, limit int) ([]*MediaKitRecord, error)
	GetMediaKit(ctx context.Context, userID, id string) (*MediaKitRecord, error)

	CountDMGenerations(ctx context.Context, userID string) (int, error)
	CountMediaKits(ctx context.Context, userID string) (int, error)
	ListRecommendedPrices(ctx context.Context, userID string) ([]int, error)
}

// ActivityRepository appends to and reads user_activity_log.
type ActivityRepository interface {
	Log(ctx context.Context, entry *ActivityLogEntry) error
	ListRecent(ctx context.Context, userID string, limit int) ([]*ActivityLogEntry, error)
}

// InfluencerRepository reads influencer_data reference rows.
type InfluencerRepository interface {
	ListAll(ctx context.Context) ([]InfluencerData, error)
}

// TipCache stores generated daily tips.
type TipCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// AIClient produces generated content, falling back to deterministic output
// when the AI proxy cannot be used. Methods never fail.
type AIClient interface {
	DailyOutreachTip(ctx context.Context, platform string) TextResult
	DailyPricingTip(ctx context.Context) TextResult
	BrandMatchEnhancer(ctx context.Context, niche string) *BrandMatchEnhancer
	EnhanceBio(ctx context.Context, bio, niche string, influencers []InfluencerData) TextResult
	GenerateDM(ctx context.Context, req DMRequest, influencers []InfluencerData) *DMResponse
	GeneratePricing(ctx context.Context, req PricingRequest, influencers []InfluencerData) *PricingResponse
	GenerateMediaKit(ctx context.Context, req MediaKitRequest, influencers []InfluencerData) *MediaKitResponse
}

// UsageService is the entitlement and metering gate.
type UsageService interface {
	GetProfile(ctx context.Context, userID string) (*ProfileView, error)
	CanPerformAction(ctx context.Context, userID string, kind ActionKind) (bool, error)
	IncrementUsage(ctx context.Context, userID string, kind ActionKind) bool
	GetRemainingUsage(ctx context.Context, userID string) (RemainingUsage, error)
	GetUsageSummary(ctx context.Context, userID string) (*UsageSummary, error)
}

// GenerationService runs the gated feature flows.
type GenerationService interface {
	GenerateDM(ctx context.Context, userID string, req DMRequest) (*DMResponse, error)
	GeneratePricing(ctx context.Context, userID string, req PricingRequest) (*PricingResponse, error)
	GenerateMediaKit(ctx context.Context, userID string, req MediaKitRequest) (*MediaKitResponse, error)
	EnhanceBio(ctx context.Context, bio, niche string) (TextResult, error)
	BrandMatchEnhancer(ctx context.Context, niche string) *BrandMatchEnhancer
}

// TipsService serves the daily tips.
type TipsService interface {
	DailyOutreachTip(ctx context.Context, platform string) TextResult
	DailyPricingTip(ctx context.Context) TextResult
}

// WebhookService applies payment pings.
type WebhookService interface {
	VerifySignature(body []byte, signature string) bool
	ProcessGumroadPayment(ctx context.Context, payload *GumroadPayload) (*WebhookResult, error)
}

// DashboardService aggregates stats and history.
type DashboardService interface {
	GetStats(ctx context.Context, userID string) (*DashboardStats, error)
	GetHistory(ctx context.Context, userID, kind string, limit int) (interface{}, error)
	GetMediaKit(ctx context.Context, userID, id string) (*MediaKitRecord, error)
}

// PDFService renders exports.
type PDFService interface {
	RenderMediaKit(record *MediaKitRecord) ([]byte, error)
	FileName(record *MediaKitRecord) string
}
