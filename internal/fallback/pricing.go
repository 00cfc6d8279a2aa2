package fallback

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"creatoros/internal/domain"
)

var (
	premiumNiches     = []string{"finance", "investing", "b2b", "saas", "luxury", "health", "medical"}
	highValueRegions  = []string{"US", "UK", "Australia"}
	nonDigits         = regexp.MustCompile(`[^0-9]`)
	leadingFloat      = regexp.MustCompile(`^\s*[-+]?(\d+\.?\d*|\.\d+)`)
	exampleDealsLimit = 3
)

// PricingCalculator is the single rate table used both by the proxy and by the
// client-side fallback.
type PricingCalculator struct {
	nicheMultiplier float64
}

// NewPricingCalculator returns a calculator applying nicheMultiplier to premium
// niches. A multiplier of 1 (or less) disables the niche premium.
func NewPricingCalculator(nicheMultiplier float64) *PricingCalculator {
	if nicheMultiplier < 1 {
		nicheMultiplier = 1
	}
	return &PricingCalculator{nicheMultiplier: nicheMultiplier}
}

// ParseFollowers strips every non-digit and parses the rest; "12,500" is 12500.
func ParseFollowers(s string) int {
	n, err := strconv.Atoi(nonDigits.ReplaceAllString(s, ""))
	if err != nil {
		return 0
	}
	return n
}

// ParseEngagement parses the leading number of s; "4.5%" is 4.5, garbage is 0.
func ParseEngagement(s string) float64 {
	m := leadingFloat.FindString(s)
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(m), 64)
	if err != nil {
		return 0
	}
	return f
}

// rateTiers holds base rates for the follower tiers <10k, <50k, <100k,
// <500k and above, keyed by lower-case platform.
var rateTiers = map[string][5]float64{
	"instagram": {75, 200, 500, 1500, 5000},
	"tiktok":    {100, 300, 700, 2000, 6000},
	"youtube":   {200, 600, 1500, 5000, 15000},
}

// basePrice looks up the platform's tier; unknown platforms use Instagram rates.
func basePrice(platform string, followers int) float64 {
	tiers, ok := rateTiers[strings.ToLower(strings.TrimSpace(platform))]
	if !ok {
		tiers = rateTiers["instagram"]
	}
	switch {
	case followers < 10_000:
		return tiers[0]
	case followers < 50_000:
		return tiers[1]
	case followers < 100_000:
		return tiers[2]
	case followers < 500_000:
		return tiers[3]
	default:
		return tiers[4]
	}
}

func isPremiumNiche(niche string) bool {
	lower := strings.ToLower(niche)
	for _, p := range premiumNiches {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// Range computes the suggested price range for a single deliverable.
func (c *PricingCalculator) Range(req domain.PricingRequest) domain.SuggestedRange {
	followers := ParseFollowers(req.FollowerCount)
	engagement := ParseEngagement(req.EngagementRate)

	multiplier := 1.0
	if engagement > 4 {
		multiplier = 1.3
	}
	if isPremiumNiche(req.Niche) {
		multiplier *= c.nicheMultiplier
	}

	recommended := int(math.Round(basePrice(req.Platform, followers) * multiplier))
	return domain.SuggestedRange{
		Min:         int(math.Round(float64(recommended) * 0.7)),
		Max:         int(math.Round(float64(recommended) * 1.4)),
		Recommended: recommended,
	}
}

// PremiumFactors lists the reasons the rate can be pushed up.
func (c *PricingCalculator) PremiumFactors(req domain.PricingRequest) []string {
	factors := []string{}
	if ParseEngagement(req.EngagementRate) > 4 {
		factors = append(factors, "High engagement rate")
	}
	if isPremiumNiche(req.Niche) {
		factors = append(factors, "Premium niche")
	}
	if strings.Contains(strings.ToLower(req.DealType), "campaign") {
		factors = append(factors, "Multi-post campaign value")
	}
	if req.Region != "" {
		for _, r := range highValueRegions {
			if strings.Contains(req.Region, r) {
				factors = append(factors, "High-value region")
				break
			}
		}
	}
	return factors
}

// ExampleDeals turns the first reference rows into comparable deals.
func ExampleDeals(influencers []domain.InfluencerData) []domain.ExampleDeal {
	deals := []domain.ExampleDeal{}
	for i, row := range influencers {
		if i == exampleDealsLimit {
			break
		}
		deals = append(deals, domain.ExampleDeal{
			Platform:  row.Platform,
			Followers: row.FollowerCount,
			Rate:      row.PricingExample,
			Context:   fmt.Sprintf("%s creator with %s engagement", row.Niche, row.EngagementRate),
		})
	}
	return deals
}

// Pricing builds a complete pricing response without the LLM.
func (c *PricingCalculator) Pricing(req domain.PricingRequest, influencers []domain.InfluencerData) *domain.PricingResponse {
	matched := influencers
	if matched == nil {
		matched = []domain.InfluencerData{}
	}
	return &domain.PricingResponse{
		SuggestedRange: c.Range(req),
		Reasoning:      pricingReasoning(req),
		ExampleDeals:   ExampleDeals(influencers),
		PremiumFactors: c.PremiumFactors(req),
		MatchedData:    matched,
	}
}

func pricingReasoning(req domain.PricingRequest) string {
	engagement := ParseEngagement(req.EngagementRate)
	standing, effect := "could be improved", "affects"
	if engagement > 3 {
		standing, effect = "is above average", "positively impacts"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Based on market analysis for %s creators with %s followers and %s%% engagement rate on %s. ",
		req.Niche, req.FollowerCount, req.EngagementRate, req.Platform)
	fmt.Fprintf(&b, "Your engagement rate %s for your follower count, which %s your pricing power.", standing, effect)
	if req.DealType != "" {
		fmt.Fprintf(&b, " For %s content, we recommend staying within this range for optimal brand-creator fit.", req.DealType)
	}
	return b.String()
}
