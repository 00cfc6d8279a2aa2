package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"creatoros/internal/domain"

	"github.com/supabase-community/supabase-go"
)

var fixedNow = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type MockLogger struct {
	mu       sync.Mutex
	messages []string
}

func NewMockLogger() *MockLogger {
	return &MockLogger{
		messages: []string{},
	}
}

func (m *MockLogger) add(line string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, line)
}

func (m *MockLogger) Info(msg string, args ...interface{}) {
	m.add("INFO: " + msg)
}

func (m *MockLogger) Error(msg string, err error, args ...interface{}) {
	m.add("ERROR: " + msg + " - " + err.Error())
}

func (m *MockLogger) Debug(msg string, args ...interface{}) {
	m.add("DEBUG: " + msg)
}

func (m *MockLogger) Warn(msg string, args ...interface{}) {
	m.add("WARN: " + msg)
}

func (m *MockLogger) has(prefix string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, msg := range m.messages {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}

// MockSupabaseClient accepts only "valid-token".
type MockSupabaseClient struct{}

func NewMockSupabaseClient() *MockSupabaseClient {
	return &MockSupabaseClient{}
}

func (m *MockSupabaseClient) Initialize() error {
	return nil
}

func (m *MockSupabaseClient) ValidateToken(token string) (*domain.SupabaseUser, error) {
	if token == "valid-token" {
		return &domain.SupabaseUser{
			ID:    "user-123",
			Email: "test@example.com",
		}, nil
	}
	if token == "invalid-token" {
		return nil, errors.New("invalid token")
	}
	return nil, errors.New("token validation failed")
}

func (m *MockSupabaseClient) DB() *supabase.Client {
	return nil
}

type mockProfileRepo struct {
	profiles  map[string]*domain.UserProfile
	getErr    error
	updateErr error

	updatedID       string
	updatedProUntil *time.Time
	updatedAt       time.Time
}

func newMockProfileRepo(profiles ...*domain.UserProfile) *mockProfileRepo {
	m := &mockProfileRepo{profiles: make(map[string]*domain.UserProfile)}
	for _, p := range profiles {
		m.profiles[p.ID] = p
	}
	return m
}

func (m *mockProfileRepo) GetByID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	p, ok := m.profiles[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return p, nil
}

func (m *mockProfileRepo) GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, p := range m.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockProfileRepo) UpdateProUntil(ctx context.Context, userID string, proUntil *time.Time, updatedAt time.Time) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updatedID = userID
	m.updatedProUntil = proUntil
	m.updatedAt = updatedAt
	return nil
}

type mockUsageRepo struct {
	mu     sync.Mutex
	rows   map[string]*domain.UserUsage
	getErr error
	setErr error
}

func newMockUsageRepo() *mockUsageRepo {
	return &mockUsageRepo{rows: make(map[string]*domain.UserUsage)}
}

func (m *mockUsageRepo) GetUsage(ctx context.Context, userID, monthYear string) (*domain.UserUsage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	key := userID + "/" + monthYear
	row, ok := m.rows[key]
	if !ok {
		row = &domain.UserUsage{UserID: userID, MonthYear: monthYear}
		m.rows[key] = row
	}
	copied := *row
	return &copied, nil
}

func (m *mockUsageRepo) SetCounter(ctx context.Context, userID, monthYear string, kind domain.ActionKind, value int, updatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	row := m.rows[userID+"/"+monthYear]
	switch kind {
	case domain.ActionDMGeneration:
		row.DMGenerations = value
	case domain.ActionPricingCalculation:
		row.PricingCalculations = value
	case domain.ActionMediaKitGeneration:
		row.MediaKitGenerations = value
	}
	row.UpdatedAt = updatedAt
	return nil
}

func (m *mockUsageRepo) set(userID, monthYear string, dm, pricing, kits int) {
	m.rows[userID+"/"+monthYear] = &domain.UserUsage{
		UserID: userID, MonthYear: monthYear,
		DMGenerations: dm, PricingCalculations: pricing, MediaKitGenerations: kits,
	}
}

type mockGenerationRepo struct {
	dms     []*domain.DMGeneration
	prices  []*domain.PricingCalculation
	kits    []*domain.MediaKitRecord
	saveErr error
	readErr error

	lastLimit int
}

func (m *mockGenerationRepo) SaveDMGeneration(ctx context.Context, record *domain.DMGeneration) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.dms = append(m.dms, record)
	return nil
}

func (m *mockGenerationRepo) SavePricingCalculation(ctx context.Context, record *domain.PricingCalculation) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.prices = append(m.prices, record)
	return nil
}

func (m *mockGenerationRepo) SaveMediaKit(ctx context.Context, record *domain.MediaKitRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.kits = append(m.kits, record)
	return nil
}

func (m *mockGenerationRepo) ListDMGenerations(ctx context.Context, userID string, limit int) ([]*domain.DMGeneration, error) {
	m.lastLimit = limit
	return m.dms, m.readErr
}

func (m *mockGenerationRepo) ListPricingCalculations(ctx context.Context, userID string, limit int) ([]*domain.PricingCalculation, error) {
	m.lastLimit = limit
	return m.prices, m.readErr
}

func (m *mockGenerationRepo) ListMediaKits(ctx context.Context, userID string, limit int) ([]*domain.MediaKitRecord, error) {
	m.lastLimit = limit
	return m.kits, m.readErr
}

func (m *mockGenerationRepo) GetMediaKit(ctx context.Context, userID, id string) (*domain.MediaKitRecord, error) {
	for _, k := range m.kits {
		if k.ID == id && k.UserID == userID {
			return k, nil
		}
	}
	return nil, domain.ErrMediaKitNotFound
}

func (m *mockGenerationRepo) CountDMGenerations(ctx context.Context, userID string) (int, error) {
	return len(m.dms), m.readErr
}

func (m *mockGenerationRepo) CountMediaKits(ctx context.Context, userID string) (int, error) {
	return len(m.kits), m.readErr
}

func (m *mockGenerationRepo) ListRecommendedPrices(ctx context.Context, userID string) ([]int, error) {
	out := make([]int, 0, len(m.prices))
	for _, p := range m.prices {
		out = append(out, p.SuggestedRecommended)
	}
	return out, m.readErr
}

type mockActivityRepo struct {
	entries []*domain.ActivityLogEntry
	logErr  error
}

func (m *mockActivityRepo) Log(ctx context.Context, entry *domain.ActivityLogEntry) error {
	if m.logErr != nil {
		return m.logErr
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockActivityRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.ActivityLogEntry, error) {
	if len(m.entries) > limit {
		return m.entries[:limit], nil
	}
	return m.entries, nil
}

type mockInfluencerRepo struct {
	rows []domain.InfluencerData
	err  error
}

func (m *mockInfluencerRepo) ListAll(ctx context.Context) ([]domain.InfluencerData, error) {
	return m.rows, m.err
}

// stubAIClient returns canned results and counts calls per method.
type stubAIClient struct {
	tipSource string
	calls     map[string]int
	lastInf   []domain.InfluencerData
}

func newStubAIClient() *stubAIClient {
	return &stubAIClient{tipSource: domain.SourceAI, calls: make(map[string]int)}
}

func (s *stubAIClient) DailyOutreachTip(ctx context.Context, platform string) domain.TextResult {
	s.calls["outreach"]++
	return domain.TextResult{Text: "tip for " + platform, Source: s.tipSource}
}

func (s *stubAIClient) DailyPricingTip(ctx context.Context) domain.TextResult {
	s.calls["pricing-tip"]++
	return domain.TextResult{Text: "pricing tip", Source: s.tipSource}
}

func (s *stubAIClient) BrandMatchEnhancer(ctx context.Context, niche string) *domain.BrandMatchEnhancer {
	s.calls["enhancer"]++
	return &domain.BrandMatchEnhancer{Suggestions: []string{"a", "b", "c"}, Niche: niche, Source: domain.SourceAI}
}

func (s *stubAIClient) EnhanceBio(ctx context.Context, bio, niche string, influencers []domain.InfluencerData) domain.TextResult {
	s.calls["bio"]++
	s.lastInf = influencers
	return domain.TextResult{Text: bio + " (enhanced)", Source: domain.SourceAI}
}

func (s *stubAIClient) GenerateDM(ctx context.Context, req domain.DMRequest, influencers []domain.InfluencerData) *domain.DMResponse {
	s.calls["dm"]++
	s.lastInf = influencers
	return &domain.DMResponse{Primary: "Hello brand", Alternatives: []string{"alt1", "alt2"}, Source: domain.SourceAI}
}

func (s *stubAIClient) GeneratePricing(ctx context.Context, req domain.PricingRequest, influencers []domain.InfluencerData) *domain.PricingResponse {
	s.calls["pricing"]++
	s.lastInf = influencers
	return &domain.PricingResponse{SuggestedRange: domain.SuggestedRange{Min: 53, Max: 105, Recommended: 75}, Source: domain.SourceFallback}
}

func (s *stubAIClient) GenerateMediaKit(ctx context.Context, req domain.MediaKitRequest, influencers []domain.InfluencerData) *domain.MediaKitResponse {
	s.calls["mediakit"]++
	s.lastInf = influencers
	return &domain.MediaKitResponse{HTMLContent: "<h1>" + req.CreatorName + "</h1>", Source: domain.SourceAI}
}

type mockTipCache struct {
	values map[string]string
	getErr error
	setErr error
	ttls   map[string]time.Duration
}

func newMockTipCache() *mockTipCache {
	return &mockTipCache{values: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (m *mockTipCache) Get(ctx context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mockTipCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	m.ttls[key] = ttl
	return nil
}
