package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"creatoros/internal/domain"
)

type MockHandlerLogger struct {
	mu       sync.Mutex
	messages []string
}

func NewMockHandlerLogger() *MockHandlerLogger {
	return &MockHandlerLogger{}
}

func (m *MockHandlerLogger) record(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

func (m *MockHandlerLogger) Info(msg string, fields ...interface{})             { m.record(msg) }
func (m *MockHandlerLogger) Error(msg string, err error, fields ...interface{}) { m.record(msg) }
func (m *MockHandlerLogger) Debug(msg string, fields ...interface{})            { m.record(msg) }
func (m *MockHandlerLogger) Warn(msg string, fields ...interface{})             { m.record(msg) }

func (m *MockHandlerLogger) has(prefix string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, msg := range m.messages {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}

// authed returns r carrying user-1 as the authenticated user.
func authed(r *http.Request) *http.Request {
	return withUser(r, &domain.SupabaseUser{ID: "user-1", Email: "ava@example.com"}, "token")
}

type mockUsageService struct {
	profile   *domain.ProfileView
	summary   *domain.UsageSummary
	remaining domain.RemainingUsage
	allowed   bool
	err       error
	lastKind  domain.ActionKind
}

func (m *mockUsageService) GetProfile(ctx context.Context, userID string) (*domain.ProfileView, error) {
	return m.profile, m.err
}

func (m *mockUsageService) CanPerformAction(ctx context.Context, userID string, kind domain.ActionKind) (bool, error) {
	m.lastKind = kind
	return m.allowed, m.err
}

func (m *mockUsageService) IncrementUsage(ctx context.Context, userID string, kind domain.ActionKind) bool {
	return true
}

func (m *mockUsageService) GetRemainingUsage(ctx context.Context, userID string) (domain.RemainingUsage, error) {
	return m.remaining, m.err
}

func (m *mockUsageService) GetUsageSummary(ctx context.Context, userID string) (*domain.UsageSummary, error) {
	return m.summary, m.err
}

type mockGenerationService struct {
	err        error
	dmReq      domain.DMRequest
	bio, niche string
}

func (m *mockGenerationService) GenerateDM(ctx context.Context, userID string, req domain.DMRequest) (*domain.DMResponse, error) {
	m.dmReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &domain.DMResponse{Primary: "Hi [Brand Name]", Alternatives: []string{"a", "b"}, Source: domain.SourceAI}, nil
}

func (m *mockGenerationService) GeneratePricing(ctx context.Context, userID string, req domain.PricingRequest) (*domain.PricingResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.PricingResponse{SuggestedRange: domain.SuggestedRange{Min: 53, Max: 105, Recommended: 75}}, nil
}

func (m *mockGenerationService) GenerateMediaKit(ctx context.Context, userID string, req domain.MediaKitRequest) (*domain.MediaKitResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.MediaKitResponse{HTMLContent: "<h1>" + req.CreatorName + "</h1>"}, nil
}

func (m *mockGenerationService) EnhanceBio(ctx context.Context, bio, niche string) (domain.TextResult, error) {
	m.bio, m.niche = bio, niche
	if bio == "" {
		return domain.TextResult{}, domain.NewValidationError("bio", "bio is required")
	}
	return domain.TextResult{Text: bio + "!", Source: domain.SourceAI}, nil
}

func (m *mockGenerationService) BrandMatchEnhancer(ctx context.Context, niche string) *domain.BrandMatchEnhancer {
	return &domain.BrandMatchEnhancer{Niche: niche, Suggestions: []string{"one", "two", "three"}}
}

type mockTipsService struct {
	lastPlatform string
}

func (m *mockTipsService) DailyOutreachTip(ctx context.Context, platform string) domain.TextResult {
	m.lastPlatform = platform
	return domain.TextResult{Text: "outreach tip", Source: domain.SourceAI}
}

func (m *mockTipsService) DailyPricingTip(ctx context.Context) domain.TextResult {
	return domain.TextResult{Text: "pricing tip", Source: domain.SourceFallback, Notice: domain.NoticeQuotaExceeded}
}

type mockDashboardService struct {
	stats     *domain.DashboardStats
	history   interface{}
	kit       *domain.MediaKitRecord
	err       error
	lastLimit int
}

func (m *mockDashboardService) GetStats(ctx context.Context, userID string) (*domain.DashboardStats, error) {
	return m.stats, m.err
}

func (m *mockDashboardService) GetHistory(ctx context.Context, userID, kind string, limit int) (interface{}, error) {
	m.lastLimit = limit
	return m.history, m.err
}

func (m *mockDashboardService) GetMediaKit(ctx context.Context, userID, id string) (*domain.MediaKitRecord, error) {
	return m.kit, m.err
}

type mockPDFService struct {
	err error
}

func (m *mockPDFService) RenderMediaKit(record *domain.MediaKitRecord) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []byte("%PDF-1.3 test"), nil
}

func (m *mockPDFService) FileName(record *domain.MediaKitRecord) string {
	return "ava-media-kit.pdf"
}

type mockWebhookService struct {
	validSignature bool
	result         *domain.WebhookResult
	err            error
	panicMsg       string
	lastPayload    *domain.GumroadPayload
	lastSignature  string
}

func (m *mockWebhookService) VerifySignature(body []byte, signature string) bool {
	m.lastSignature = signature
	return m.validSignature
}

func (m *mockWebhookService) ProcessGumroadPayment(ctx context.Context, payload *domain.GumroadPayload) (*domain.WebhookResult, error) {
	if m.panicMsg != "" {
		panic(m.panicMsg)
	}
	m.lastPayload = payload
	return m.result, m.err
}

type mockDispatcher struct {
	result     interface{}
	err        error
	lastAction string
	lastData   json.RawMessage
}

func (m *mockDispatcher) Dispatch(ctx context.Context, action string, data json.RawMessage) (interface{}, error) {
	m.lastAction, m.lastData = action, data
	return m.result, m.err
}
