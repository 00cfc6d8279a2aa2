package fallback

import (
	"strings"
	"time"
)

var outreachTips = map[string]string{
	"instagram": "💡 Personalize your DMs by mentioning specific posts or stories from the brand. This shows genuine interest and increases response rates by 40%.",
	"tiktok":    "🎯 Reference trending sounds or challenges in your outreach. Brands love creators who stay current with platform trends.",
	"youtube":   "📹 Mention specific videos from their channel and how your content style would complement their brand message.",
	"twitter":   "🐦 Engage with their tweets first, then send a thoughtful DM referencing your interaction. Build rapport before pitching.",
}

var pricingTips = []string{
	"💰 Bundle multiple deliverables (post + story + reel) for 15-25% higher rates than individual posts.",
	"📈 Track your engagement rates monthly. High-performing content justifies 20-30% rate increases.",
	"🎯 Charge premium rates (1.5-2x) for exclusive partnerships or first-to-market product launches.",
	"⏰ Offer early bird discounts for brands booking 30+ days in advance to secure consistent work.",
	"🔄 Create tiered packages: Basic (post), Standard (post + story), Premium (post + story + reel + usage rights).",
}

// OutreachTip returns the platform's tip, or Instagram's for unknown platforms.
func OutreachTip(platform string) string {
	if tip, ok := outreachTips[strings.ToLower(strings.TrimSpace(platform))]; ok {
		return tip
	}
	return outreachTips["instagram"]
}

// PricingTip rotates through the fixed list by UTC day of year.
func PricingTip(now time.Time) string {
	return pricingTips[now.UTC().YearDay()%len(pricingTips)]
}

const bioSuffix = " I specialize in creating authentic, engaging content that resonates with my audience and drives real results for brand partners."

// EnhanceBio appends a generic value proposition to the bio.
func EnhanceBio(bio string) string {
	return bio + bioSuffix
}
