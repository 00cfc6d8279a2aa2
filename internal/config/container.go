package config

import (
	"context"
	"fmt"

	"creatoros/internal/aiclient"
	"creatoros/internal/domain"
	"creatoros/internal/fallback"
	"creatoros/internal/infra/redis"
	"creatoros/internal/infra/supabase"
	"creatoros/internal/openrouter"
	"creatoros/internal/proxy"
	"creatoros/internal/repository"
	"creatoros/internal/service"
	"creatoros/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config         domain.Config
	Logger         *logger.AppLogger
	SupabaseClient domain.SupabaseClient
	Redis          *redis.Client

	ProfileRepository    domain.ProfileRepository
	UsageRepository      domain.UsageRepository
	GenerationRepository domain.GenerationRepository
	ActivityRepository   domain.ActivityRepository
	InfluencerRepository domain.InfluencerRepository
	TipCache             domain.TipCache

	Proxy    *proxy.Service
	AIClient domain.AIClient

	AuthService       domain.AuthService
	UsageService      domain.UsageService
	GenerationService domain.GenerationService
	TipsService       domain.TipsService
	WebhookService    domain.WebhookService
	DashboardService  domain.DashboardService
	PDFService        domain.PDFService
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context) (*Container, error) {
	cfg := NewConfig()
	appLogger := logger.NewLogger(cfg.GetLogLevel(), cfg.GetEnvironment())

	// Initialize Supabase client
	supabaseClient := supabase.NewSupabaseClient(cfg, appLogger)
	if err := supabaseClient.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize supabase: %w", err)
	}

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(supabaseClient, appLogger)
	usageRepo := repository.NewUsageRepository(supabaseClient, appLogger)
	generationRepo := repository.NewGenerationRepository(supabaseClient, appLogger)
	activityRepo := repository.NewActivityRepository(supabaseClient, appLogger)
	influencerRepo := repository.NewInfluencerRepository(supabaseClient, appLogger)

	c := &Container{
		Config:               cfg,
		Logger:               appLogger,
		SupabaseClient:       supabaseClient,
		ProfileRepository:    profileRepo,
		UsageRepository:      usageRepo,
		GenerationRepository: generationRepo,
		ActivityRepository:   activityRepo,
		InfluencerRepository: influencerRepo,
	}

	if url := cfg.GetRedisURL(); url != "" {
		rdb, err := redis.NewClient(ctx, url)
		if err != nil {
			appLogger.Warn("Redis unavailable, daily tips will not be cached", "error", err.Error())
		} else {
			c.Redis = rdb
			c.TipCache = repository.NewRedisTipCache(rdb)
		}
	}

	// AI: the proxy always runs in-process so /api/v1/ai/proxy can serve it;
	// the client goes through AI_PROXY_URL when one is configured.
	pricing := fallback.NewPricingCalculator(cfg.GetPricingNicheMultiplier())
	llm := openrouter.NewClient(cfg.GetOpenRouterAPIKey(), cfg.GetOpenRouterBaseURL(), cfg.GetOpenRouterModel(), cfg.GetAITimeout())
	c.Proxy = proxy.NewService(llm, pricing, appLogger)

	var transport aiclient.Transport
	if proxyURL := cfg.GetAIProxyURL(); proxyURL != "" {
		transport = aiclient.NewHTTPTransport(proxyURL, cfg.GetSupabaseKey(), cfg.GetAITimeout())
		appLogger.Info("AI client using remote proxy", "url", proxyURL)
	} else {
		transport = aiclient.NewLocalTransport(c.Proxy)
	}
	c.AIClient = aiclient.NewClient(transport, pricing, appLogger)

	// Services
	c.AuthService = service.NewAuthService(supabaseClient, appLogger)
	c.UsageService = service.NewUsageService(profileRepo, usageRepo, appLogger)
	c.GenerationService = service.NewGenerationService(c.UsageService, c.AIClient, generationRepo, activityRepo, influencerRepo, appLogger)
	c.TipsService = service.NewTipsService(c.AIClient, c.TipCache, appLogger)
	c.WebhookService = service.NewWebhookService(profileRepo, activityRepo, cfg.GetGumroadWebhookSecret(), cfg.IsProduction(), appLogger)
	c.DashboardService = service.NewDashboardService(generationRepo, activityRepo, appLogger)
	c.PDFService = service.NewPDFService(appLogger)

	return c, nil
}

// Close releases connections held by the container.
func (c *Container) Close() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("Failed to close redis", "error", err.Error())
		}
	}
	_ = c.Logger.Sync()
}
