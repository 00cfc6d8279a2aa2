package domain

import (
	"time"
)

// Plan names derived from the profile's pro_until timestamp.
const (
	PlanFree = "free"
	PlanPro  = "pro"
)

// UserProfile is the row in user_profiles. The plan tier is never stored;
// it is derived from ProUntil at read time.
type UserProfile struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name,omitempty"`
	ProUntil  *time.Time `json:"pro_until"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// SupabaseUser represents a user from Supabase Auth
type SupabaseUser struct {
	ID           string
	Email        string
	UserMetadata map[string]interface{}
	CreatedAt    string
	UpdatedAt    string
}

// IsPro reports whether the profile has an active Pro entitlement at now.
// A nil profile, a nil pro_until, or pro_until equal to now are all free tier.
func IsPro(profile *UserProfile, now time.Time) bool {
	if profile == nil || profile.ProUntil == nil {
		return false
	}
	return profile.ProUntil.After(now)
}

// PlanFor returns the display plan name for the profile at now.
func PlanFor(profile *UserProfile, now time.Time) string {
	if IsPro(profile, now) {
		return PlanPro
	}
	return PlanFree
}

// ProfileView is the profile as returned by GET /api/v1/profile.
type ProfileView struct {
	Profile *UserProfile `json:"profile"`
	Plan    string       `json:"plan"`
	IsPro   bool         `json:"is_pro"`
}
