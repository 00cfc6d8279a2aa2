package domain

import "encoding/json"

// Proxy action names of the AI action protocol.
const (
	ProxyActionOutreachTip        = "generateDailyOutreachTip"
	ProxyActionPricingTip         = "generateDailyPricingTip"
	ProxyActionBrandMatchEnhancer = "generateBrandMatchEnhancer"
	ProxyActionEnhanceBio         = "enhanceBioWithAI"
	ProxyActionGenerateDM         = "generateDMWithAI"
	ProxyActionGeneratePricing    = "generatePricingWithAI"
	ProxyActionGenerateMediaKit   = "generateMediaKitWithAI"
)

// Result sources.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// Notices shown to the user when a fallback was produced for a known reason.
const (
	NoticeAPIKeyNotConfigured = "⚠️ AI features require API key setup. "
	NoticeQuotaExceeded       = "💳 AI quota exceeded - check OpenRouter billing. "
)

// ProxyRequest is the body of a proxy call: {"action": ..., "data": ...}.
type ProxyRequest struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

// InfluencerData is a read-only reference row from influencer_data fed into prompts.
type InfluencerData struct {
	ID               string `json:"id,omitempty"`
	Platform         string `json:"platform"`
	FollowerCount    string `json:"follower_count"`
	EngagementRate   string `json:"engagement_rate"`
	Niche            string `json:"niche"`
	Region           string `json:"region"`
	DMReplyExample   string `json:"dm_reply_example"`
	PricingExample   string `json:"pricing_example"`
	MediaKitSections string `json:"media_kit_sections"`
}

type TipPayload struct {
	Platform string `json:"platform,omitempty"`
}

type BrandMatchPayload struct {
	Niche string `json:"niche"`
}

type BioPayload struct {
	Bio            string           `json:"bio"`
	Niche          string           `json:"niche"`
	InfluencerData []InfluencerData `json:"influencerData"`
}

type DMPayload struct {
	Request        DMRequest        `json:"request"`
	InfluencerData []InfluencerData `json:"influencerData"`
}

type PricingPayload struct {
	Request        PricingRequest   `json:"request"`
	InfluencerData []InfluencerData `json:"influencerData"`
}

type MediaKitPayload struct {
	Request        MediaKitRequest  `json:"request"`
	InfluencerData []InfluencerData `json:"influencerData"`
}

// TextResult is a single generated text plus where it came from.
type TextResult struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Notice string `json:"notice,omitempty"`
}

// BrandMatchEnhancer holds three value propositions for a niche.
type BrandMatchEnhancer struct {
	Suggestions []string `json:"suggestions"`
	Niche       string   `json:"niche"`
	Source      string   `json:"source,omitempty"`
}

// DM message types and tones.
const (
	MessageTypeReply    = "reply"
	MessageTypeOutreach = "outreach"

	ToneProfessional = "professional"
	ToneFriendly     = "friendly"
	ToneConfident    = "confident"
)

type DMRequest struct {
	Platform       string `json:"platform"`
	FollowerCount  string `json:"followerCount"`
	EngagementRate string `json:"engagementRate"`
	MessageType    string `json:"messageType"`
	Tone           string `json:"tone"`
	BrandType      string `json:"brandType,omitempty"`
	BrandReply     string `json:"brandReply,omitempty"`
}

// Validate checks the fields a DM generation needs.
func (r *DMRequest) Validate() error {
	if r.FollowerCount == "" {
		return NewValidationError("followerCount", "follower count is required")
	}
	if r.EngagementRate == "" {
		return NewValidationError("engagementRate", "engagement rate is required")
	}
	if r.MessageType == MessageTypeReply && r.BrandReply == "" {
		return NewValidationError("brandReply", "brand message is required for replies")
	}
	return nil
}

type DMResponse struct {
	Primary      string           `json:"primary"`
	Alternatives []string         `json:"alternatives"`
	MatchedData  []InfluencerData `json:"matchedData"`
	Source       string           `json:"source,omitempty"`
	Notice       string           `json:"notice,omitempty"`
}

type PricingRequest struct {
	Platform       string `json:"platform"`
	FollowerCount  string `json:"followerCount"`
	EngagementRate string `json:"engagementRate"`
	Niche          string `json:"niche"`
	Region         string `json:"region,omitempty"`
	DealType       string `json:"dealType"`
}

func (r *PricingRequest) Validate() error {
	if r.FollowerCount == "" {
		return NewValidationError("followerCount", "follower count is required")
	}
	if r.EngagementRate == "" {
		return NewValidationError("engagementRate", "engagement rate is required")
	}
	if r.Platform == "" {
		return NewValidationError("platform", "platform is required")
	}
	return nil
}

type SuggestedRange struct {
	Min         int `json:"min"`
	Max         int `json:"max"`
	Recommended int `json:"recommended"`
}

type ExampleDeal struct {
	Platform  string `json:"platform"`
	Followers string `json:"followers"`
	Rate      string `json:"rate"`
	Context   string `json:"context"`
}

type PricingResponse struct {
	SuggestedRange SuggestedRange   `json:"suggestedRange"`
	Reasoning      string           `json:"reasoning,omitempty"`
	ExampleDeals   []ExampleDeal    `json:"exampleDeals"`
	PremiumFactors []string         `json:"premiumFactors"`
	MatchedData    []InfluencerData `json:"matchedData"`
	Source         string           `json:"source,omitempty"`
	Notice         string           `json:"notice,omitempty"`
}

// Media kit styles.
const (
	KitStyleEmail  = "email"
	KitStyleNotion = "notion"
)

type MediaKitPlatform struct {
	Name      string `json:"name"`
	Handle    string `json:"handle"`
	Followers string `json:"followers"`
}

type Audience struct {
	Gender    string `json:"gender"`
	Age       string `json:"age"`
	Countries string `json:"countries"`
}

type MediaKitRequest struct {
	CreatorName     string             `json:"creatorName"`
	Bio             string             `json:"bio"`
	Niche           string             `json:"niche"`
	Platforms       []MediaKitPlatform `json:"platforms"`
	Audience        Audience           `json:"audience"`
	PastCollabs     string             `json:"pastCollabs,omitempty"`
	Theme           string             `json:"theme,omitempty"`
	KitStyle        string             `json:"kitStyle,omitempty"`
	EmailTone       string             `json:"emailTone,omitempty"`
	Services        string             `json:"services,omitempty"`
	Location        string             `json:"location,omitempty"`
	Email           string             `json:"email,omitempty"`
	BrandName       string             `json:"brandName,omitempty"`
	ProfileImageURL string             `json:"profileImageUrl,omitempty"`
	BrandLogoURL    string             `json:"brandLogoUrl,omitempty"`
	BrandColor      string             `json:"brandColor,omitempty"`
}

func (r *MediaKitRequest) Validate() error {
	if r.CreatorName == "" {
		return NewValidationError("creatorName", "creator name is required")
	}
	if r.Niche == "" {
		return NewValidationError("niche", "niche is required")
	}
	if len(r.Platforms) == 0 {
		return NewValidationError("platforms", "at least one platform is required")
	}
	return nil
}

// Style returns the kit style, defaulting to notion.
func (r *MediaKitRequest) Style() string {
	if r.KitStyle == KitStyleEmail {
		return KitStyleEmail
	}
	return KitStyleNotion
}

type MediaKitResponse struct {
	HTMLContent string           `json:"htmlContent"`
	Sections    []string         `json:"sections"`
	DesignTips  []string         `json:"designTips"`
	MatchedData []InfluencerData `json:"matchedData"`
	Source      string           `json:"source,omitempty"`
	Notice      string           `json:"notice,omitempty"`
}
