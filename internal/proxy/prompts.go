package proxy

import (
	"fmt"
	"strings"

	"creatoros/internal/domain"
)

func outreachTipPrompt(platform string) string {
	return fmt.Sprintf("Generate a practical, actionable outreach tip specifically for %s creators who want to improve their brand partnership response rates. "+
		"Focus on platform-specific strategies that actually work. Keep it concise, specific, and include a concrete example or statistic if possible. "+
		"Make it feel like insider advice from a successful creator.", platform)
}

const pricingTipPrompt = "Generate a practical pricing strategy tip for content creators that helps them maximize their revenue and negotiate better deals with brands. " +
	"Focus on actionable advice they can implement immediately. Include specific tactics, percentage increases, or negotiation strategies. " +
	"Make it feel like insider knowledge from a successful creator business coach."

func brandEnhancerPrompt(niche string) string {
	return fmt.Sprintf("Generate 3 compelling, results-focused value propositions for %s content creators to use when pitching to brands. "+
		"Each should highlight specific benefits, include metrics or results when possible, and be formatted as short, impactful statements that brands would find irresistible. "+
		"Focus on ROI, engagement, and conversion potential.", niche)
}

func enhanceBioPrompt(bio, niche string) string {
	return fmt.Sprintf(`Enhance this %s creator bio to be more compelling for brand partnerships: "%s". 

Make it:
- Professional yet authentic
- Highlight value for brands
- Include results-oriented language
- Keep the creator's unique voice
- Focus on what makes them different
- Emphasize audience connection and engagement

Return only the enhanced bio, nothing else.`, niche, bio)
}

func dmPrompt(req domain.DMRequest) string {
	if req.MessageType == domain.MessageTypeReply && req.BrandReply != "" {
		return fmt.Sprintf(`Create a %s reply to this brand message: "%s"

Creator details:
- Platform: %s
- Followers: %s
- Engagement: %s%%
- Brand type: %s

Write a professional response that:
- Shows genuine excitement and interest
- Highlights relevant metrics naturally
- Suggests specific next steps
- Maintains authenticity
- Includes a clear call-to-action

Keep it concise but compelling. Return only the message content.`,
			req.Tone, req.BrandReply, req.Platform, req.FollowerCount, req.EngagementRate, orDefault(req.BrandType, "general"))
	}

	return fmt.Sprintf(`Create a %s outreach message for a %s creator reaching out to %s for collaboration.

Creator details:
- Followers: %s
- Engagement: %s%%

Write a compelling pitch that:
- Shows genuine interest in the brand
- Highlights relevant metrics and value
- Suggests specific collaboration ideas
- Feels authentic, not templated
- Includes a clear next step

Keep it professional but personable. Return only the message content.`,
		req.Tone, req.Platform, orDefault(req.BrandType, "a brand"), req.FollowerCount, req.EngagementRate)
}

// dmAlternativePrompts returns the tone-shifted and deliverables-focused variants.
func dmAlternativePrompts(base, tone string) [2]string {
	shift := "professional and business-oriented"
	switch tone {
	case domain.ToneProfessional:
		shift = "friendly and approachable"
	case domain.ToneFriendly:
		shift = "confident and results-focused"
	}
	return [2]string{
		base + "\n\nMake this version more " + shift + ".",
		base + "\n\nMake this version focus more on specific collaboration ideas and deliverables.",
	}
}

func pricingPrompt(req domain.PricingRequest) string {
	region := ""
	if req.Region != "" {
		region = " in " + req.Region
	}
	return fmt.Sprintf(`Analyze pricing for a %s creator with %s followers and %s%% engagement in the %s niche for %s%s.

Based on current market rates and creator metrics, provide:
1. A realistic price range (minimum, maximum, recommended)
2. Brief reasoning for the pricing
3. Premium factors that could increase rates
4. Market context

Consider:
- Platform-specific rates
- Engagement quality vs quantity
- Niche premium/discount
- Regional market differences
- Current market trends

Format your response to include specific dollar amounts and clear reasoning.`,
		req.Platform, req.FollowerCount, req.EngagementRate, req.Niche, req.DealType, region)
}

func mediaKitEmailPrompt(req domain.MediaKitRequest) string {
	platforms := make([]string, 0, len(req.Platforms))
	for _, p := range req.Platforms {
		platforms = append(platforms, fmt.Sprintf("%s (%s followers)", p.Name, p.Followers))
	}
	audience := strings.TrimSpace(strings.Join([]string{req.Audience.Gender, req.Audience.Age, req.Audience.Countries}, " "))

	return fmt.Sprintf(`Create a professional email template for %s, a %s creator, reaching out to %s for collaboration.

Creator details:
- Name: %s
- Bio: %s
- Location: %s
- Email: %s
- Platforms: %s
- Audience: %s
- Services: %s
- Past collaborations: %s
- Email tone: %s

Create a complete email template with:
- Compelling subject line
- Professional greeting
- Brief, engaging introduction
- Key metrics and audience insights
- Clear value proposition
- Specific collaboration suggestions
- Strong call-to-action
- Professional signature

Make it %s in tone and ensure it's compelling for brands.`,
		req.CreatorName, req.Niche, orDefault(req.BrandName, "[Brand Name]"),
		req.CreatorName, req.Bio, orDefault(req.Location, "Not specified"), req.Email,
		strings.Join(platforms, ", "), audience,
		orDefault(req.Services, "Content creation and brand partnerships"),
		orDefault(req.PastCollabs, "Various brand partnerships"),
		req.EmailTone, req.EmailTone)
}

func shortenBioPrompt(bio string) string {
	return fmt.Sprintf(`Shorten this creator bio to under 200 characters while keeping the key value propositions for brands: "%s"`, bio)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
