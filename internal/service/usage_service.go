package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"creatoros/internal/domain"
)

type usageService struct {
	profileRepo domain.ProfileRepository
	usageRepo   domain.UsageRepository
	logger      domain.Logger
	now         func() time.Time
}

func NewUsageService(
	profileRepo domain.ProfileRepository,
	usageRepo domain.UsageRepository,
	logger domain.Logger,
) domain.UsageService {
	return &usageService{
		profileRepo: profileRepo,
		usageRepo:   usageRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// GetProfile returns the profile with its derived plan.
func (s *usageService) GetProfile(ctx context.Context, userID string) (*domain.ProfileView, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	return &domain.ProfileView{
		Profile: profile,
		Plan:    domain.PlanFor(profile, now),
		IsPro:   domain.IsPro(profile, now),
	}, nil
}

// isPro loads the profile and checks the entitlement. A failed load counts as free tier.
func (s *usageService) isPro(ctx context.Context, userID string) bool {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Warn("Failed to load profile, treating as free tier", "user_id", userID, "error", err.Error())
		}
		return false
	}
	return domain.IsPro(profile, s.now())
}

// CanPerformAction allows Pro users unconditionally and free users while the
// month's counter for kind is under its limit. Any usage read failure denies.
func (s *usageService) CanPerformAction(ctx context.Context, userID string, kind domain.ActionKind) (bool, error) {
	if !kind.Valid() {
		return false, fmt.Errorf("%w: %q", domain.ErrInvalidActionKind, string(kind))
	}

	if s.isPro(ctx, userID) {
		return true, nil
	}

	usage, err := s.usageRepo.GetUsage(ctx, userID, domain.CurrentMonth(s.now()))
	if err != nil {
		s.logger.Error("Failed to load usage, denying action", err, "user_id", userID, "action", kind)
		return false, err
	}

	return usage.Count(kind) < kind.FreeLimit(), nil
}

// IncrementUsage adds one to the month's counter for kind. It reports false
// instead of failing; callers only log it.
func (s *usageService) IncrementUsage(ctx context.Context, userID string, kind domain.ActionKind) bool {
	if !kind.Valid() {
		return false
	}

	now := s.now()
	monthYear := domain.CurrentMonth(now)
	usage, err := s.usageRepo.GetUsage(ctx, userID, monthYear)
	if err != nil {
		s.logger.Error("Failed to load usage for increment", err, "user_id", userID, "action", kind)
		return false
	}

	if err := s.usageRepo.SetCounter(ctx, userID, monthYear, kind, usage.Count(kind)+1, now); err != nil {
		s.logger.Error("Failed to increment usage", err, "user_id", userID, "action", kind)
		return false
	}
	return true
}

func (s *usageService) GetRemainingUsage(ctx context.Context, userID string) (domain.RemainingUsage, error) {
	if s.isPro(ctx, userID) {
		return domain.UnlimitedRemaining(), nil
	}

	usage, err := s.usageRepo.GetUsage(ctx, userID, domain.CurrentMonth(s.now()))
	if err != nil {
		return domain.RemainingUsage{}, err
	}
	return domain.RemainingFor(usage), nil
}

func (s *usageService) GetUsageSummary(ctx context.Context, userID string) (*domain.UsageSummary, error) {
	now := s.now()
	pro := s.isPro(ctx, userID)

	usage, err := s.usageRepo.GetUsage(ctx, userID, domain.CurrentMonth(now))
	if err != nil {
		return nil, err
	}

	summary := &domain.UsageSummary{
		Plan:      domain.PlanFree,
		IsPro:     pro,
		Usage:     usage,
		Remaining: domain.RemainingFor(usage),
	}
	if pro {
		summary.Plan = domain.PlanPro
		summary.Remaining = domain.UnlimitedRemaining()
	}
	return summary, nil
}
