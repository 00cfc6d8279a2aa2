package domain

import (
	"testing"
	"time"
)

func TestIsPro(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)
	past := now.Add(-time.Second)
	exact := now

	tests := []struct {
		name    string
		profile *UserProfile
		want    bool
	}{
		{name: "nil profile", profile: nil, want: false},
		{name: "no pro_until", profile: &UserProfile{ID: "u1"}, want: false},
		{name: "pro_until in the future", profile: &UserProfile{ID: "u1", ProUntil: &future}, want: true},
		{name: "pro_until in the past", profile: &UserProfile{ID: "u1", ProUntil: &past}, want: false},
		{name: "pro_until equal to now", profile: &UserProfile{ID: "u1", ProUntil: &exact}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPro(tt.profile, now); got != tt.want {
				t.Errorf("IsPro() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlanFor(t *testing.T) {
	now := time.Now()
	until := now.AddDate(0, 1, 0)

	if got := PlanFor(&UserProfile{ProUntil: &until}, now); got != PlanPro {
		t.Fatalf("expected %q, got %q", PlanPro, got)
	}
	if got := PlanFor(&UserProfile{}, now); got != PlanFree {
		t.Fatalf("expected %q, got %q", PlanFree, got)
	}
}

func TestCurrentMonth(t *testing.T) {
	// 23:30 on Jan 31 in UTC-5 is already February in UTC.
	loc := time.FixedZone("EST", -5*3600)
	now := time.Date(2026, 1, 31, 23, 30, 0, 0, loc)

	if got := CurrentMonth(now); got != "2026-02" {
		t.Fatalf("expected 2026-02, got %s", got)
	}
}
