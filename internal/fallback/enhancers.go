package fallback

import (
	"strings"

	"creatoros/internal/domain"
)

var nicheEnhancers = map[string][]string{
	"fashion": {
		`✨ "I turn fashion into stories that sell - 35% higher click-through rates"`,
		`🛍️ "My followers ask "where to buy" on 80% of my outfit posts"`,
		`📸 "Professional styling + authentic reviews = brand loyalty that lasts"`,
	},
	"beauty": {
		`💄 "Before/after content that drives 3x more engagement than standard posts"`,
		`✨ "My tutorials generate 50% more saves than industry average"`,
		`🌟 "Honest reviews that build trust - 90% follower retention rate"`,
	},
	"fitness": {
		`💪 "Transformation content that motivates real lifestyle changes"`,
		`🏃‍♀️ "My workout videos get 60% more shares than fitness industry average"`,
		`⚡ "Results-driven content that turns followers into customers"`,
	},
	"food": {
		`🍽️ "Recipe videos that get saved 4x more than standard food content"`,
		`👨‍🍳 "My restaurant reviews drive 25% increase in foot traffic"`,
		`📱 "Food styling that makes followers hungry for your brand"`,
	},
	"tech": {
		`📱 "Tech reviews that simplify complex products for everyday users"`,
		`⚡ "My unboxing videos generate 40% more purchase intent"`,
		`🔧 "Honest tech advice that builds long-term brand credibility"`,
	},
}

// GenericEnhancers is used for niches without a dedicated set.
var GenericEnhancers = []string{
	`🎯 "Content that converts viewers into loyal customers"`,
	`📈 "Authentic storytelling that drives real business results"`,
	`✨ "Creative campaigns that make your brand unforgettable"`,
}

// BrandEnhancers returns three value propositions for the niche.
func BrandEnhancers(niche string) *domain.BrandMatchEnhancer {
	suggestions, ok := nicheEnhancers[strings.ToLower(strings.TrimSpace(niche))]
	if !ok {
		suggestions = GenericEnhancers
	}
	return &domain.BrandMatchEnhancer{
		Suggestions: append([]string(nil), suggestions...),
		Niche:       niche,
	}
}
