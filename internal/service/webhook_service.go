package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"creatoros/internal/domain"
)

// JavaScript Date.toDateString layout, kept for the confirmation message.
const upgradeDateLayout = "Mon Jan 02 2006"

type webhookService struct {
	profiles   domain.ProfileRepository
	activities domain.ActivityRepository
	secret     string
	production bool
	logger     domain.Logger
	now        func() time.Time
}

func NewWebhookService(
	profiles domain.ProfileRepository,
	activities domain.ActivityRepository,
	secret string,
	production bool,
	logger domain.Logger,
) domain.WebhookService {
	return &webhookService{
		profiles:   profiles,
		activities: activities,
		secret:     secret,
		production: production,
		logger:     logger,
		now:        time.Now,
	}
}

// VerifySignature checks the hex HMAC-SHA256 of body. Without a configured
// secret every signature is accepted.
func (s *webhookService) VerifySignature(body []byte, signature string) bool {
	if s.secret == "" {
		s.logger.Warn("GUMROAD_WEBHOOK_SECRET not set, skipping signature verification")
		return true
	}

	mac := hmac.New(sha256.New, []byte(s.secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(signature), []byte(expected))
}

// ProcessGumroadPayment extends the buyer's Pro entitlement by one calendar
// month from now. A returned error means the lookup itself failed; an
// unsuccessful result means the profile update failed.
func (s *webhookService) ProcessGumroadPayment(ctx context.Context, payload *domain.GumroadPayload) (*domain.WebhookResult, error) {
	if payload.Test && s.production {
		s.logger.Info("Skipping test transaction in production", "sale_id", payload.SaleID)
		return &domain.WebhookResult{Success: true, Message: "Test transaction skipped"}, nil
	}

	profile, err := s.profiles.GetByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Info("No user found for payment", "email", payload.Email, "sale_id", payload.SaleID)
			return &domain.WebhookResult{
				Success: true,
				Message: fmt.Sprintf("Payment received but no user account found for %s. User can contact support to link their account.", payload.Email),
			}, nil
		}
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}

	now := s.now().UTC()
	proUntil := now.AddDate(0, 1, 0)
	fromPlan := domain.PlanFor(profile, now)

	if err := s.profiles.UpdateProUntil(ctx, profile.ID, &proUntil, now); err != nil {
		s.logger.Error("Error updating user pro status", err, "user_id", profile.ID)
		return &domain.WebhookResult{Success: false, Message: "Failed to upgrade user to Pro plan"}, nil
	}

	entry := &domain.ActivityLogEntry{
		UserID:       profile.ID,
		ActivityType: domain.ActivitySubscriptionUpgrade,
		ActivityDetails: map[string]interface{}{
			"from_plan":       fromPlan,
			"to_plan":         domain.PlanPro,
			"gumroad_sale_id": payload.SaleID,
			"amount":          payload.Price,
			"pro_until":       proUntil.Format(time.RFC3339),
		},
		CreatedAt: now,
	}
	if err := s.activities.Log(ctx, entry); err != nil {
		s.logger.Error("Failed to log upgrade activity", err, "user_id", profile.ID)
	}

	s.logger.Info("User upgraded to Pro", "user_id", profile.ID, "pro_until", proUntil)
	return &domain.WebhookResult{
		Success: true,
		Message: fmt.Sprintf("User %s successfully upgraded to Pro plan until %s", payload.Email, proUntil.Format(upgradeDateLayout)),
	}, nil
}
