package service

import (
	"context"
	"strings"
	"time"

	"creatoros/internal/domain"
)

const tipDayLayout = "2006-01-02"

type tipsService struct {
	ai     domain.AIClient
	cache  domain.TipCache
	logger domain.Logger
	now    func() time.Time
}

// NewTipsService returns the daily tips service. cache may be nil, in which
// case every call goes to the AI client.
func NewTipsService(ai domain.AIClient, cache domain.TipCache, logger domain.Logger) domain.TipsService {
	return &tipsService{
		ai:     ai,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

func (s *tipsService) DailyOutreachTip(ctx context.Context, platform string) domain.TextResult {
	platform = strings.TrimSpace(platform)
	if platform == "" {
		platform = "Instagram"
	}
	key := "outreach:" + strings.ToLower(platform) + ":" + s.day()
	return s.cached(ctx, key, func() domain.TextResult {
		return s.ai.DailyOutreachTip(ctx, platform)
	})
}

func (s *tipsService) DailyPricingTip(ctx context.Context) domain.TextResult {
	return s.cached(ctx, "pricing:"+s.day(), func() domain.TextResult {
		return s.ai.DailyPricingTip(ctx)
	})
}

func (s *tipsService) day() string {
	return s.now().UTC().Format(tipDayLayout)
}

// untilMidnight is the TTL that expires an entry at the end of the UTC day.
func (s *tipsService) untilMidnight() time.Duration {
	now := s.now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
	return midnight.Sub(now)
}

// cached serves key from the cache or generates and stores it. Fallback
// results are never stored so the next call retries the AI.
func (s *tipsService) cached(ctx context.Context, key string, generate func() domain.TextResult) domain.TextResult {
	if s.cache == nil {
		return generate()
	}

	tip, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Tip cache read failed", "key", key, "error", err.Error())
	} else if ok {
		return domain.TextResult{Text: tip, Source: domain.SourceAI}
	}

	result := generate()
	if result.Source != domain.SourceAI {
		return result
	}
	if err := s.cache.Set(ctx, key, result.Text, s.untilMidnight()); err != nil {
		s.logger.Warn("Tip cache write failed", "key", key, "error", err.Error())
	}
	return result
}
