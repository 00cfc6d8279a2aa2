package service

import (
	"context"
	"fmt"
	"math"

	"creatoros/internal/domain"
)

const recentActivityLimit = 5

type dashboardService struct {
	generations domain.GenerationRepository
	activities  domain.ActivityRepository
	logger      domain.Logger
}

func NewDashboardService(
	generations domain.GenerationRepository,
	activities domain.ActivityRepository,
	logger domain.Logger,
) domain.DashboardService {
	return &dashboardService{
		generations: generations,
		activities:  activities,
		logger:      logger,
	}
}

func (s *dashboardService) GetStats(ctx context.Context, userID string) (*domain.DashboardStats, error) {
	dmCount, err := s.generations.CountDMGenerations(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count DM generations: %w", err)
	}

	prices, err := s.generations.ListRecommendedPrices(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pricing calculations: %w", err)
	}

	kitCount, err := s.generations.CountMediaKits(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count media kits: %w", err)
	}

	recent, err := s.activities.ListRecent(ctx, userID, recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent activity: %w", err)
	}

	return &domain.DashboardStats{
		TotalDMs:         dmCount,
		AvgPricing:       average(prices),
		MediaKitsCreated: kitCount,
		RecentActivity:   recent,
	}, nil
}

func average(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return int(math.Round(float64(sum) / float64(len(values))))
}

// GetHistory lists the newest records of kind. limit is clamped to
// [1, MaxHistoryLimit]; zero or negative means DefaultHistoryLimit.
func (s *dashboardService) GetHistory(ctx context.Context, userID, kind string, limit int) (interface{}, error) {
	switch {
	case limit <= 0:
		limit = domain.DefaultHistoryLimit
	case limit > domain.MaxHistoryLimit:
		limit = domain.MaxHistoryLimit
	}

	switch kind {
	case domain.HistoryDM:
		return s.generations.ListDMGenerations(ctx, userID, limit)
	case domain.HistoryPricing:
		return s.generations.ListPricingCalculations(ctx, userID, limit)
	case domain.HistoryMediaKits:
		return s.generations.ListMediaKits(ctx, userID, limit)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidHistoryKind, kind)
	}
}

func (s *dashboardService) GetMediaKit(ctx context.Context, userID, id string) (*domain.MediaKitRecord, error) {
	return s.generations.GetMediaKit(ctx, userID, id)
}
