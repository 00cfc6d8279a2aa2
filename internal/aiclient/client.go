package aiclient

import (
	"context"
	"errors"
	"time"

	"creatoros/internal/domain"
	"creatoros/internal/fallback"
)

// Client implements domain.AIClient on top of a Transport. Every method
// returns a usable result: transport failures switch to the deterministic
// generators in the fallback package.
type Client struct {
	transport Transport
	pricing   *fallback.PricingCalculator
	logger    domain.Logger
	now       func() time.Time
}

func NewClient(transport Transport, pricing *fallback.PricingCalculator, logger domain.Logger) *Client {
	return &Client{
		transport: transport,
		pricing:   pricing,
		logger:    logger,
		now:       time.Now,
	}
}

// notice returns the user-facing prefix for known failure reasons.
func notice(err error) string {
	switch {
	case errors.Is(err, domain.ErrAIKeyNotConfigured):
		return domain.NoticeAPIKeyNotConfigured
	case errors.Is(err, domain.ErrAIQuotaExceeded):
		return domain.NoticeQuotaExceeded
	default:
		return ""
	}
}

func (c *Client) fallingBack(action string, err error) string {
	c.logger.Warn("AI proxy unavailable, using fallback", "action", action, "error", err.Error())
	return notice(err)
}

func (c *Client) DailyOutreachTip(ctx context.Context, platform string) domain.TextResult {
	var tip string
	err := c.transport.Call(ctx, domain.ProxyActionOutreachTip, domain.TipPayload{Platform: platform}, &tip)
	if err == nil {
		return domain.TextResult{Text: tip, Source: domain.SourceAI}
	}

	n := c.fallingBack(domain.ProxyActionOutreachTip, err)
	return domain.TextResult{Text: n + fallback.OutreachTip(platform), Source: domain.SourceFallback, Notice: n}
}

func (c *Client) DailyPricingTip(ctx context.Context) domain.TextResult {
	var tip string
	err := c.transport.Call(ctx, domain.ProxyActionPricingTip, domain.TipPayload{}, &tip)
	if err == nil {
		return domain.TextResult{Text: tip, Source: domain.SourceAI}
	}

	n := c.fallingBack(domain.ProxyActionPricingTip, err)
	return domain.TextResult{Text: n + fallback.PricingTip(c.now()), Source: domain.SourceFallback, Notice: n}
}

func (c *Client) BrandMatchEnhancer(ctx context.Context, niche string) *domain.BrandMatchEnhancer {
	var result domain.BrandMatchEnhancer
	err := c.transport.Call(ctx, domain.ProxyActionBrandMatchEnhancer, domain.BrandMatchPayload{Niche: niche}, &result)
	if err == nil {
		result.Source = domain.SourceAI
		return &result
	}

	c.fallingBack(domain.ProxyActionBrandMatchEnhancer, err)
	enhancer := fallback.BrandEnhancers(niche)
	enhancer.Source = domain.SourceFallback
	return enhancer
}

func (c *Client) EnhanceBio(ctx context.Context, bio, niche string, influencers []domain.InfluencerData) domain.TextResult {
	var enhanced string
	payload := domain.BioPayload{Bio: bio, Niche: niche, InfluencerData: influencers}
	err := c.transport.Call(ctx, domain.ProxyActionEnhanceBio, payload, &enhanced)
	if err == nil {
		return domain.TextResult{Text: enhanced, Source: domain.SourceAI}
	}

	n := c.fallingBack(domain.ProxyActionEnhanceBio, err)
	return domain.TextResult{Text: fallback.EnhanceBio(bio), Source: domain.SourceFallback, Notice: n}
}

func (c *Client) GenerateDM(ctx context.Context, req domain.DMRequest, influencers []domain.InfluencerData) *domain.DMResponse {
	var resp domain.DMResponse
	payload := domain.DMPayload{Request: req, InfluencerData: influencers}
	err := c.transport.Call(ctx, domain.ProxyActionGenerateDM, payload, &resp)
	if err == nil {
		resp.Source = domain.SourceAI
		return &resp
	}

	n := c.fallingBack(domain.ProxyActionGenerateDM, err)
	fb := fallback.DM(req, influencers)
	fb.Source, fb.Notice = domain.SourceFallback, n
	return fb
}

func (c *Client) GeneratePricing(ctx context.Context, req domain.PricingRequest, influencers []domain.InfluencerData) *domain.PricingResponse {
	var resp domain.PricingResponse
	payload := domain.PricingPayload{Request: req, InfluencerData: influencers}
	err := c.transport.Call(ctx, domain.ProxyActionGeneratePricing, payload, &resp)
	if err == nil {
		resp.Source = domain.SourceAI
		return &resp
	}

	n := c.fallingBack(domain.ProxyActionGeneratePricing, err)
	fb := c.pricing.Pricing(req, influencers)
	fb.Source, fb.Notice = domain.SourceFallback, n
	return fb
}

func (c *Client) GenerateMediaKit(ctx context.Context, req domain.MediaKitRequest, influencers []domain.InfluencerData) *domain.MediaKitResponse {
	var resp domain.MediaKitResponse
	payload := domain.MediaKitPayload{Request: req, InfluencerData: influencers}
	err := c.transport.Call(ctx, domain.ProxyActionGenerateMediaKit, payload, &resp)
	if err == nil {
		resp.Source = domain.SourceAI
		return &resp
	}

	n := c.fallingBack(domain.ProxyActionGenerateMediaKit, err)
	fb, renderErr := fallback.MediaKit(req)
	if renderErr != nil {
		c.logger.Error("Failed to render fallback media kit", renderErr)
		fb = &domain.MediaKitResponse{
			Sections:    append([]string(nil), fallback.MediaKitSections...),
			DesignTips:  append([]string(nil), fallback.MediaKitDesignTips...),
			MatchedData: []domain.InfluencerData{},
		}
	}
	fb.Source, fb.Notice = domain.SourceFallback, n
	return fb
}
