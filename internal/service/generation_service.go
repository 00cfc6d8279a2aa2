package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"creatoros/internal/domain"
)

type generationService struct {
	usage       domain.UsageService
	ai          domain.AIClient
	generations domain.GenerationRepository
	activities  domain.ActivityRepository
	influencers domain.InfluencerRepository
	logger      domain.Logger
	now         func() time.Time
}

func NewGenerationService(
	usage domain.UsageService,
	ai domain.AIClient,
	generations domain.GenerationRepository,
	activities domain.ActivityRepository,
	influencers domain.InfluencerRepository,
	logger domain.Logger,
) domain.GenerationService {
	return &generationService{
		usage:       usage,
		ai:          ai,
		generations: generations,
		activities:  activities,
		influencers: influencers,
		logger:      logger,
		now:         time.Now,
	}
}

// authorize runs the action gate. A usage read failure is already logged by
// the usage service; it still denies, but as ErrUsageUnavailable rather than
// a limit.
func (s *generationService) authorize(ctx context.Context, userID string, kind domain.ActionKind) error {
	allowed, err := s.usage.CanPerformAction(ctx, userID, kind)
	if errors.Is(err, domain.ErrInvalidActionKind) {
		return err
	}
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUsageUnavailable, err)
	}
	if !allowed {
		s.logger.Info("Usage limit reached", "user_id", userID, "action", kind)
		return domain.ErrUsageLimitReached
	}
	return nil
}

func (s *generationService) loadInfluencers(ctx context.Context) []domain.InfluencerData {
	rows, err := s.influencers.ListAll(ctx)
	if err != nil {
		s.logger.Warn("Failed to load influencer data", "error", err.Error())
		return []domain.InfluencerData{}
	}
	return rows
}

// finish appends the activity entry and increments the counter. Neither
// failure is surfaced to the caller.
func (s *generationService) finish(ctx context.Context, userID string, kind domain.ActionKind, details map[string]interface{}) {
	entry := &domain.ActivityLogEntry{
		UserID:          userID,
		ActivityType:    kind.ActivityType(),
		ActivityDetails: details,
		CreatedAt:       s.now(),
	}
	if err := s.activities.Log(ctx, entry); err != nil {
		s.logger.Error("Failed to log activity", err, "user_id", userID, "activity", entry.ActivityType)
	}

	if !s.usage.IncrementUsage(ctx, userID, kind) {
		s.logger.Warn("Usage was not incremented", "user_id", userID, "action", kind)
	}
}

func (s *generationService) GenerateDM(ctx context.Context, userID string, req domain.DMRequest) (*domain.DMResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, userID, domain.ActionDMGeneration); err != nil {
		return nil, err
	}

	resp := s.ai.GenerateDM(ctx, req, s.loadInfluencers(ctx))

	record := &domain.DMGeneration{
		UserID:           userID,
		Platform:         req.Platform,
		MessageType:      req.MessageType,
		Tone:             req.Tone,
		FollowerCount:    req.FollowerCount,
		EngagementRate:   req.EngagementRate,
		BrandType:        req.BrandType,
		GeneratedContent: resp.Primary,
		CreatedAt:        s.now(),
	}
	if err := s.generations.SaveDMGeneration(ctx, record); err != nil {
		s.logger.Error("Failed to save DM generation", err, "user_id", userID)
	}

	s.finish(ctx, userID, domain.ActionDMGeneration, map[string]interface{}{
		"platform":     req.Platform,
		"message_type": req.MessageType,
		"tone":         req.Tone,
	})
	return resp, nil
}

func (s *generationService) GeneratePricing(ctx context.Context, userID string, req domain.PricingRequest) (*domain.PricingResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, userID, domain.ActionPricingCalculation); err != nil {
		return nil, err
	}

	resp := s.ai.GeneratePricing(ctx, req, s.loadInfluencers(ctx))

	record := &domain.PricingCalculation{
		UserID:               userID,
		Platform:             req.Platform,
		FollowerCount:        req.FollowerCount,
		EngagementRate:       req.EngagementRate,
		Niche:                req.Niche,
		DealType:             req.DealType,
		SuggestedMin:         resp.SuggestedRange.Min,
		SuggestedMax:         resp.SuggestedRange.Max,
		SuggestedRecommended: resp.SuggestedRange.Recommended,
		CreatedAt:            s.now(),
	}
	if err := s.generations.SavePricingCalculation(ctx, record); err != nil {
		s.logger.Error("Failed to save pricing calculation", err, "user_id", userID)
	}

	s.finish(ctx, userID, domain.ActionPricingCalculation, map[string]interface{}{
		"platform":          req.Platform,
		"niche":             req.Niche,
		"recommended_price": resp.SuggestedRange.Recommended,
	})
	return resp, nil
}

func (s *generationService) GenerateMediaKit(ctx context.Context, userID string, req domain.MediaKitRequest) (*domain.MediaKitResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, userID, domain.ActionMediaKitGeneration); err != nil {
		return nil, err
	}

	resp := s.ai.GenerateMediaKit(ctx, req, s.loadInfluencers(ctx))

	record := &domain.MediaKitRecord{
		UserID:           userID,
		CreatorName:      req.CreatorName,
		Niche:            req.Niche,
		KitStyle:         req.Style(),
		EmailTone:        req.EmailTone,
		Platforms:        req.Platforms,
		GeneratedContent: resp.HTMLContent,
		CreatedAt:        s.now(),
	}
	if err := s.generations.SaveMediaKit(ctx, record); err != nil {
		s.logger.Error("Failed to save media kit", err, "user_id", userID)
	}

	s.finish(ctx, userID, domain.ActionMediaKitGeneration, map[string]interface{}{
		"creator_name": req.CreatorName,
		"niche":        req.Niche,
		"kit_style":    req.Style(),
	})
	return resp, nil
}

// EnhanceBio is not metered.
func (s *generationService) EnhanceBio(ctx context.Context, bio, niche string) (domain.TextResult, error) {
	if strings.TrimSpace(bio) == "" {
		return domain.TextResult{}, domain.NewValidationError("bio", "bio is required")
	}
	return s.ai.EnhanceBio(ctx, bio, niche, s.loadInfluencers(ctx)), nil
}

func (s *generationService) BrandMatchEnhancer(ctx context.Context, niche string) *domain.BrandMatchEnhancer {
	return s.ai.BrandMatchEnhancer(ctx, niche)
}
