package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"creatoros/internal/domain"
	"creatoros/internal/fallback"

	"golang.org/x/sync/errgroup"
)

const (
	longBioRunes      = 300
	truncatedBioRunes = 200
	matchedDataLimit  = 3
)

var listNumber = regexp.MustCompile(`^\d+\.\s*`)

var (
	emailKitSections = []string{
		"Subject Line", "Introduction", "Creator Metrics",
		"Value Proposition", "Collaboration Ideas", "Call to Action",
	}
	emailKitDesignTips = []string{
		"Personalize the subject line with your niche",
		"Include specific metrics and engagement rates",
		"Mention relevant past collaborations",
		"Keep it concise but informative",
		"Include a clear call-to-action",
		"Attach your media kit for more details",
	}
	notionKitDesignTips = []string{
		"Optimized for single-page layout",
		"Professional color scheme and typography",
		"All essential information included",
		"Print-friendly design",
		"Modern, clean aesthetic",
	}
)

// Completer produces a single chat completion for a prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Configured() bool
}

// Service executes the AI proxy actions against the LLM.
type Service struct {
	llm     Completer
	pricing *fallback.PricingCalculator
	logger  domain.Logger
}

func NewService(llm Completer, pricing *fallback.PricingCalculator, logger domain.Logger) *Service {
	return &Service{
		llm:     llm,
		pricing: pricing,
		logger:  logger,
	}
}

// IsQuotaError reports whether an upstream failure is a rate-limit or billing error.
func IsQuotaError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "402")
}

// Dispatch runs action with its JSON data. Errors are classified as
// domain.ErrAIKeyNotConfigured, domain.ErrAIQuotaExceeded,
// domain.ErrUnknownProxyAction, or returned as is.
func (s *Service) Dispatch(ctx context.Context, action string, data json.RawMessage) (interface{}, error) {
	if !s.llm.Configured() {
		return nil, domain.ErrAIKeyNotConfigured
	}

	s.logger.Debug("Dispatching proxy action", "action", action)

	result, err := s.dispatch(ctx, action, data)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownProxyAction) {
			return nil, err
		}
		if IsQuotaError(err) {
			s.logger.Warn("OpenRouter quota exceeded", "action", action, "error", err)
			return nil, fmt.Errorf("%w: %v", domain.ErrAIQuotaExceeded, err)
		}
		s.logger.Error("Proxy action failed", err, "action", action)
		return nil, err
	}
	return result, nil
}

func (s *Service) dispatch(ctx context.Context, action string, data json.RawMessage) (interface{}, error) {
	switch action {
	case domain.ProxyActionOutreachTip:
		var p domain.TipPayload
		if err := decode(data, &p); err != nil {
			return nil, err
		}
		return s.llm.Complete(ctx, outreachTipPrompt(orDefault(p.Platform, "Instagram")))

	case domain.ProxyActionPricingTip:
		return s.llm.Complete(ctx, pricingTipPrompt)

	case domain.ProxyActionBrandMatchEnhancer:
		var p domain.BrandMatchPayload
		if err := decode(data, &p); err != nil {
			return nil, err
		}
		return s.brandMatchEnhancer(ctx, p.Niche)

	case domain.ProxyActionEnhanceBio:
		var p domain.BioPayload
		if err := decode(data, &p); err != nil {
			return nil, err
		}
		return s.llm.Complete(ctx, enhanceBioPrompt(p.Bio, p.Niche))

	case domain.ProxyActionGenerateDM:
		var p domain.DMPayload
		if err := decode(data, &p); err != nil {
			return nil, err
		}
		return s.generateDM(ctx, p.Request, p.InfluencerData)

	case domain.ProxyActionGeneratePricing:
		var p domain.PricingPayload
		if err := decode(data, &p); err != nil {
			return nil, err
		}
		return s.generatePricing(ctx, p.Request, p.InfluencerData)

	case domain.ProxyActionGenerateMediaKit:
		var p domain.MediaKitPayload
		if err := decode(data, &p); err != nil {
			return nil, err
		}
		return s.generateMediaKit(ctx, p.Request, p.InfluencerData)

	default:
		return nil, domain.ErrUnknownProxyAction
	}
}

func decode(data json.RawMessage, v interface{}) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid action data: %w", err)
	}
	return nil
}

func (s *Service) brandMatchEnhancer(ctx context.Context, niche string) (*domain.BrandMatchEnhancer, error) {
	text, err := s.llm.Complete(ctx, brandEnhancerPrompt(niche))
	if err != nil {
		return nil, err
	}

	var suggestions []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		suggestions = append(suggestions, strings.TrimSpace(listNumber.ReplaceAllString(line, "")))
		if len(suggestions) == 3 {
			break
		}
	}
	if len(suggestions) < 3 {
		suggestions = append([]string(nil), fallback.GenericEnhancers...)
	}

	return &domain.BrandMatchEnhancer{Suggestions: suggestions, Niche: niche}, nil
}

func (s *Service) generateDM(ctx context.Context, req domain.DMRequest, influencers []domain.InfluencerData) (*domain.DMResponse, error) {
	prompt := dmPrompt(req)
	primary, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	alternatives := make([]string, 2)
	g, gctx := errgroup.WithContext(ctx)
	for i, altPrompt := range dmAlternativePrompts(prompt, req.Tone) {
		i, altPrompt := i, altPrompt
		g.Go(func() error {
			text, err := s.llm.Complete(gctx, altPrompt)
			if err != nil {
				return err
			}
			alternatives[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.DMResponse{
		Primary:      primary,
		Alternatives: alternatives,
		MatchedData:  firstN(influencers, matchedDataLimit),
	}, nil
}

func (s *Service) generatePricing(ctx context.Context, req domain.PricingRequest, influencers []domain.InfluencerData) (*domain.PricingResponse, error) {
	reasoning, err := s.llm.Complete(ctx, pricingPrompt(req))
	if err != nil {
		return nil, err
	}

	resp := s.pricing.Pricing(req, influencers)
	resp.Reasoning = reasoning
	return resp, nil
}

func (s *Service) generateMediaKit(ctx context.Context, req domain.MediaKitRequest, influencers []domain.InfluencerData) (*domain.MediaKitResponse, error) {
	if req.Style() == domain.KitStyleEmail {
		email, err := s.llm.Complete(ctx, mediaKitEmailPrompt(req))
		if err != nil {
			return nil, err
		}
		return &domain.MediaKitResponse{
			HTMLContent: email,
			Sections:    append([]string(nil), emailKitSections...),
			DesignTips:  append([]string(nil), emailKitDesignTips...),
			MatchedData: firstN(influencers, matchedDataLimit),
		}, nil
	}

	if utf8.RuneCountInString(req.Bio) > longBioRunes {
		short, err := s.llm.Complete(ctx, shortenBioPrompt(req.Bio))
		if err != nil {
			s.logger.Warn("Bio shortening failed, truncating", "error", err)
			short = string([]rune(req.Bio)[:truncatedBioRunes]) + "..."
		}
		req.Bio = short
	}

	html, err := fallback.RenderMediaKitHTML(req)
	if err != nil {
		return nil, fmt.Errorf("failed to render media kit: %w", err)
	}

	return &domain.MediaKitResponse{
		HTMLContent: html,
		Sections:    append([]string(nil), fallback.MediaKitSections...),
		DesignTips:  append([]string(nil), notionKitDesignTips...),
		MatchedData: firstN(influencers, matchedDataLimit),
	}, nil
}

func firstN(rows []domain.InfluencerData, n int) []domain.InfluencerData {
	if len(rows) < n {
		n = len(rows)
	}
	out := make([]domain.InfluencerData, n)
	copy(out, rows[:n])
	return out
}
