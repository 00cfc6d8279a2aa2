package service

import (
	"context"
	"errors"
	"testing"

	"creatoros/internal/domain"
)

type generationFixture struct {
	svc         *generationService
	usage       *mockUsageRepo
	ai          *stubAIClient
	generations *mockGenerationRepo
	activities  *mockActivityRepo
	influencers *mockInfluencerRepo
	logger      *MockLogger
}

func newGenerationFixture(profiles *mockProfileRepo) *generationFixture {
	usageRepo := newMockUsageRepo()
	usageSvc, logger := newTestUsageService(profiles, usageRepo)
	f := &generationFixture{
		usage:       usageRepo,
		ai:          newStubAIClient(),
		generations: &mockGenerationRepo{},
		activities:  &mockActivityRepo{},
		influencers: &mockInfluencerRepo{rows: []domain.InfluencerData{{Platform: "Instagram", Niche: "Food"}}},
		logger:      logger,
	}
	f.svc = &generationService{
		usage:       usageSvc,
		ai:          f.ai,
		generations: f.generations,
		activities:  f.activities,
		influencers: f.influencers,
		logger:      logger,
		now:         fixedClock,
	}
	return f
}

var validDM = domain.DMRequest{
	Platform:       "Instagram",
	FollowerCount:  "12K",
	EngagementRate: "4.2",
	MessageType:    domain.MessageTypeOutreach,
	Tone:           domain.ToneFriendly,
	BrandType:      "Glossier",
}

func TestGenerationService_GenerateDM(t *testing.T) {
	f := newGenerationFixture(newMockProfileRepo(&domain.UserProfile{ID: "u1"}))

	resp, err := f.svc.GenerateDM(context.Background(), "u1", validDM)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Primary != "Hello brand" {
		t.Errorf("expected AI primary message, got %q", resp.Primary)
	}

	if len(f.generations.dms) != 1 {
		t.Fatalf("expected 1 saved DM, got %d", len(f.generations.dms))
	}
	saved := f.generations.dms[0]
	if saved.UserID != "u1" || saved.GeneratedContent != "Hello brand" || saved.BrandType != "Glossier" {
		t.Errorf("unexpected saved record %+v", saved)
	}

	if len(f.activities.entries) != 1 || f.activities.entries[0].ActivityType != domain.ActivityDMGeneration {
		t.Fatalf("expected one dm_generation activity, got %+v", f.activities.entries)
	}
	if f.activities.entries[0].ActivityDetails["tone"] != domain.ToneFriendly {
		t.Errorf("expected tone in activity details, got %v", f.activities.entries[0].ActivityDetails)
	}

	if got := f.usage.rows["u1/"+testMonth].DMGenerations; got != 1 {
		t.Errorf("expected DM counter 1, got %d", got)
	}
	if len(f.ai.lastInf) != 1 {
		t.Errorf("expected influencer rows passed to the AI client, got %d", len(f.ai.lastInf))
	}
}

func TestGenerationService_GenerateDM_LimitReached(t *testing.T) {
	f := newGenerationFixture(newMockProfileRepo(&domain.UserProfile{ID: "u1"}))
	f.usage.set("u1", testMonth, 3, 0, 0)

	_, err := f.svc.GenerateDM(context.Background(), "u1", validDM)
	if !errors.Is(err, domain.ErrUsageLimitReached) {
		t.Fatalf("expected ErrUsageLimitReached, got %v", err)
	}
	if f.ai.calls["dm"] != 0 || len(f.generations.dms) != 0 || len(f.activities.entries) != 0 {
		t.Error("expected no generation, persistence or activity after denial")
	}
	if got := f.usage.rows["u1/"+testMonth].DMGenerations; got != 3 {
		t.Errorf("expected counter unchanged at 3, got %d", got)
	}
}

func TestGenerationService_GenerateDM_UsageErrorDenies(t *testing.T) {
	f := newGenerationFixture(newMockProfileRepo())
	f.usage.getErr = errors.New("db down")

	_, err := f.svc.GenerateDM(context.Background(), "u1", validDM)
	if !errors.Is(err, domain.ErrUsageUnavailable) {
		t.Fatalf("expected ErrUsageUnavailable, got %v", err)
	}
	if errors.Is(err, domain.ErrUsageLimitReached) {
		t.Errorf("a usage read failure must not look like a reached limit: %v", err)
	}
	if f.ai.calls["dm"] != 0 || len(f.generations.dms) != 0 {
		t.Error("expected no generation after a failed usage check")
	}
}

func TestGenerationService_GenerateDM_Validation(t *testing.T) {
	f := newGenerationFixture(newMockProfileRepo())

	req := validDM
	req.MessageType = domain.MessageTypeReply
	_, err := f.svc.GenerateDM(context.Background(), "u1", req)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Field != "brandReply" {
		t.Fatalf("expected brandReply validation error, got %v", err)
	}
	if f.ai.calls["dm"] != 0 {
		t.Error("expected no AI call for invalid input")
	}
}

func TestGenerationService_SideEffectFailuresAreNotFatal(t *testing.T) {
	f := newGenerationFixture(newMockProfileRepo(&domain.UserProfile{ID: "u1"}))
	f.generations.saveErr = errors.New("insert failed")
	f.activities.logErr = errors.New("insert failed")
	f.influencers.err = errors.New("select failed")
	f.usage.setErr = errors.New("update failed")

	resp, err := f.svc.GeneratePricing(context.Background(), "u1", domain.PricingRequest{
		Platform: "Instagram", FollowerCount: "5000", EngagementRate: "2", Niche: "Food",
	})
	if err != nil {
		t.Fatalf("expected success despite side-effect failures, got %v", err)
	}
	if resp.SuggestedRange.Recommended != 75 {
		t.Errorf("expected recommended 75, got %d", resp.SuggestedRange.Recommended)
	}
	if f.ai.lastInf == nil || len(f.ai.lastInf) != 0 {
		t.Errorf("expected an empty influencer slice, got %v", f.ai.lastInf)
	}
	for _, want := range []string{"ERROR: Failed to save pricing calculation", "ERROR: Failed to log activity", "WARN: Usage was not incremented", "WARN: Failed to load influencer data"} {
		if !f.logger.has(want) {
			t.Errorf("expected log %q, got %v", want, f.logger.messages)
		}
	}
}

func TestGenerationService_GeneratePricing_Persists(t *testing.T) {
	f := newGenerationFixture(newMockProfileRepo(&domain.UserProfile{ID: "u1"}))

	_, err := f.svc.GeneratePricing(context.Background(), "u1", domain.PricingRequest{
		Platform: "TikTok", FollowerCount: "5000", EngagementRate: "2", Niche: "Food", DealType: "Reel",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	saved := f.generations.prices[0]
	if saved.SuggestedMin != 53 || saved.SuggestedMax != 105 || saved.SuggestedRecommended != 75 {
		t.Errorf("unexpected saved range %+v", saved)
	}
	if f.activities.entries[0].ActivityDetails["recommended_price"] != 75 {
		t.Errorf("expected recommended_price in details, got %v", f.activities.entries[0].ActivityDetails)
	}
	if got := f.usage.rows["u1/"+testMonth].PricingCalculations; got != 1 {
		t.Errorf("expected pricing counter 1, got %d", got)
	}
}

func TestGenerationService_GenerateMediaKit(t *testing.T) {
	f := newGenerationFixture(newMockProfileRepo(&domain.UserProfile{ID: "u1"}))
	req := domain.MediaKitRequest{
		CreatorName: "Ava",
		Niche:       "Food",
		Platforms:   []domain.MediaKitPlatform{{Name: "Instagram", Handle: "@ava", Followers: "48K"}},
	}

	if _, err := f.svc.GenerateMediaKit(context.Background(), "u1", req); err != nil {
		t.Fatalf("expected first kit to succeed, got %v", err)
	}
	if _, err := f.svc.GenerateMediaKit(context.Background(), "u1", req); !errors.Is(err, domain.ErrUsageLimitReached) {
		t.Fatalf("expected second kit to be denied, got %v", err)
	}

	if len(f.generations.kits) != 1 {
		t.Fatalf("expected 1 saved kit, got %d", len(f.generations.kits))
	}
	kit := f.generations.kits[0]
	if kit.KitStyle != domain.KitStyleNotion || kit.GeneratedContent != "<h1>Ava</h1>" {
		t.Errorf("unexpected saved kit %+v", kit)
	}
	if f.activities.entries[0].ActivityType != domain.ActivityMediaKitCreation {
		t.Errorf("expected media_kit_creation activity, got %s", f.activities.entries[0].ActivityType)
	}
}

func TestGenerationService_EnhanceBioIsNotMetered(t *testing.T) {
	f := newGenerationFixture(newMockProfileRepo())

	result, err := f.svc.EnhanceBio(context.Background(), "Home cook", "Food")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Text != "Home cook (enhanced)" {
		t.Errorf("unexpected bio %q", result.Text)
	}
	if len(f.usage.rows) != 0 || len(f.activities.entries) != 0 {
		t.Error("expected no usage or activity for bio enhancement")
	}

	if _, err := f.svc.EnhanceBio(context.Background(), " ", "Food"); err == nil {
		t.Error("expected validation error for empty bio")
	}
}
