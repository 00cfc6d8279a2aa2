package domain

import "time"

// UnlimitedUsage is reported as the remaining count for Pro users.
const UnlimitedUsage = -1

// UserUsage is the per-user, per-calendar-month counter row in user_usage.
type UserUsage struct {
	ID                  string    `json:"id,omitempty"`
	UserID              string    `json:"user_id"`
	MonthYear           string    `json:"month_year"`
	DMGenerations       int       `json:"dm_generations"`
	PricingCalculations int       `json:"pricing_calculations"`
	MediaKitGenerations int       `json:"media_kit_generations"`
	CreatedAt           time.Time `json:"created_at,omitempty"`
	UpdatedAt           time.Time `json:"updated_at,omitempty"`
}

// Count returns the counter for kind.
func (u *UserUsage) Count(kind ActionKind) int {
	if u == nil {
		return 0
	}
	switch kind {
	case ActionDMGeneration:
		return u.DMGenerations
	case ActionPricingCalculation:
		return u.PricingCalculations
	case ActionMediaKitGeneration:
		return u.MediaKitGenerations
	}
	return 0
}

// CurrentMonth returns the YYYY-MM key of the UTC month containing now.
func CurrentMonth(now time.Time) string {
	return now.UTC().Format("2006-01")
}

// RemainingUsage holds what is left this month per kind; UnlimitedUsage for Pro.
type RemainingUsage struct {
	DMGenerations       int `json:"dm_generations"`
	PricingCalculations int `json:"pricing_calculations"`
	MediaKitGenerations int `json:"media_kit_generations"`
}

// RemainingFor computes the remaining free-tier allowance from a usage row.
func RemainingFor(usage *UserUsage) RemainingUsage {
	left := func(kind ActionKind) int {
		n := kind.FreeLimit() - usage.Count(kind)
		if n < 0 {
			return 0
		}
		return n
	}
	return RemainingUsage{
		DMGenerations:       left(ActionDMGeneration),
		PricingCalculations: left(ActionPricingCalculation),
		MediaKitGenerations: left(ActionMediaKitGeneration),
	}
}

// UnlimitedRemaining is the RemainingUsage reported for Pro users.
func UnlimitedRemaining() RemainingUsage {
	return RemainingUsage{
		DMGenerations:       UnlimitedUsage,
		PricingCalculations: UnlimitedUsage,
		MediaKitGenerations: UnlimitedUsage,
	}
}

// UsageSummary is the payload of GET /api/v1/usage.
type UsageSummary struct {
	Plan      string         `json:"plan"`
	IsPro     bool           `json:"is_pro"`
	Usage     *UserUsage     `json:"usage"`
	Remaining RemainingUsage `json:"remaining"`
}
