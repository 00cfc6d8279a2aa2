package fallback

import (
	"fmt"

	"creatoros/internal/domain"
)

// DM builds the three-message response from fixed templates. All three
// messages are identical since the templates are deterministic.
func DM(req domain.DMRequest, influencers []domain.InfluencerData) *domain.DMResponse {
	msg := DMMessage(req)
	return &domain.DMResponse{
		Primary:      msg,
		Alternatives: []string{msg, msg},
		MatchedData:  firstN(influencers, 3),
	}
}

// DMMessage picks the template by message type and tone. Replies need the
// brand's message; without it the outreach template is used. Unknown tones
// get the confident template.
func DMMessage(req domain.DMRequest) string {
	if req.MessageType == domain.MessageTypeReply && req.BrandReply != "" {
		return replyTemplate(req)
	}
	return outreachTemplate(req)
}

func replyTemplate(req domain.DMRequest) string {
	switch req.Tone {
	case domain.ToneProfessional:
		return fmt.Sprintf("Thank you for reaching out regarding the collaboration opportunity.\n\n"+
			"I'm very interested in working with %s. Based on my %s followers and %s%% engagement rate on %s, I believe we can create impactful content together.\n\n"+
			"I'd love to discuss the campaign details, deliverables, and timeline. Could we schedule a brief call to align on the partnership specifics?\n\n"+
			"I look forward to creating exceptional content for your brand.\n\nBest regards,",
			orDefault(req.BrandType, "your brand"), req.FollowerCount, req.EngagementRate, req.Platform)
	case domain.ToneFriendly:
		return fmt.Sprintf("Hi! Thanks so much for reaching out! 😊\n\n"+
			"I'm super excited about the possibility of working together! Your brand aligns perfectly with my content style and I know my %s followers would love it.\n\n"+
			"I'd love to learn more about your campaign goals and discuss how we can create something amazing together. My %s%% engagement rate shows how connected I am with my audience.\n\n"+
			"When would be a good time to chat more about this opportunity?\n\nCan't wait to hear from you! 💫",
			req.FollowerCount, req.EngagementRate)
	default:
		return fmt.Sprintf("Thank you for considering me for this campaign!\n\n"+
			"I'm confident we can create exceptional results together. With %s followers and a %s%% engagement rate on %s, I consistently deliver high-performing content that drives real business outcomes.\n\n"+
			"I'd like to understand your specific goals and KPIs so I can propose the most effective content strategy. My approach focuses on authentic storytelling that converts.\n\n"+
			"Let's discuss how I can help exceed your campaign objectives.\n\nBest,",
			req.FollowerCount, req.EngagementRate, req.Platform)
	}
}

func outreachTemplate(req domain.DMRequest) string {
	brand := orDefault(req.BrandType, "[Brand Name]")
	switch req.Tone {
	case domain.ToneProfessional:
		return fmt.Sprintf("Hello %s team,\n\n"+
			"I hope this message finds you well. I'm a %s creator with %s engaged followers and a %s%% engagement rate.\n\n"+
			"I've been following your brand and believe there's excellent synergy between your products and my audience. I specialize in creating authentic content that drives real engagement and conversions.\n\n"+
			"I'd love to discuss potential collaboration opportunities that could benefit both of us. I can provide my media kit and previous campaign results upon request.\n\n"+
			"Would you be open to exploring a partnership?\n\nBest regards,",
			brand, req.Platform, req.FollowerCount, req.EngagementRate)
	case domain.ToneFriendly:
		return fmt.Sprintf("Hi there! 👋\n\n"+
			"I absolutely love what %s is doing! Your recent campaigns caught my attention and I think my %s community (%s followers with %s%% engagement) would be genuinely excited about your products.\n\n"+
			"I create authentic content that my audience trusts, and I'd love to showcase your brand in a way that feels natural and engaging.\n\n"+
			"Would you be interested in chatting about a potential collaboration? I'd be happy to share my media kit and some ideas!\n\n"+
			"Looking forward to hearing from you! ✨",
			brand, req.Platform, req.FollowerCount, req.EngagementRate)
	default:
		return fmt.Sprintf("Hello %s!\n\n"+
			"I'm reaching out because I believe we could create something amazing together. With %s highly engaged followers on %s (%s%% engagement rate), I consistently deliver results for brand partners.\n\n"+
			"I specialize in creating authentic, conversion-focused content that resonates with my audience. My previous collaborations have generated impressive ROI for brands in similar spaces.\n\n"+
			"I'd love to discuss how we can achieve your marketing goals together. My content drives real business outcomes, not just vanity metrics.\n\n"+
			"Shall we schedule a brief call to explore partnership opportunities?\n\nBest,",
			brand, req.FollowerCount, req.Platform, req.EngagementRate)
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func firstN(rows []domain.InfluencerData, n int) []domain.InfluencerData {
	if len(rows) < n {
		n = len(rows)
	}
	out := make([]domain.InfluencerData, n)
	copy(out, rows[:n])
	return out
}
