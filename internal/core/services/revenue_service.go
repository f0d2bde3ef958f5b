package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/subtrack/subtrack_backend/internal/apperrors"
	"github.com/subtrack/subtrack_backend/internal/core/domain"
	portsrepo "github.com/subtrack/subtrack_backend/internal/core/ports/repositories"
	portssvc "github.com/subtrack/subtrack_backend/internal/core/ports/services"
	"github.com/subtrack/subtrack_backend/internal/dto"
)

// revenueService implements the RevenueSvcFacade interface. The revenue
// ledger is append-only: entries are recorded and listed, never updated.
type revenueService struct {
	BaseService
	revenueRepo portsrepo.RevenueRepositoryFacade
}

// NewRevenueService creates a new revenue service
func NewRevenueService(repo portsrepo.RevenueRepositoryFacade) portssvc.RevenueSvcFacade {
	return &revenueService{revenueRepo: repo}
}

// Ensure revenueService implements the RevenueSvcFacade interface
var _ portssvc.RevenueSvcFacade = (*revenueService)(nil)

func (s *revenueService) RecordRevenue(ctx context.Context, req dto.CreateRevenueRequest) (*domain.Revenue, error) {
	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	revenue := domain.Revenue{
		RevenueID:      uuid.NewString(),
		ProductID:      req.ProductID,
		SubscriptionID: req.SubscriptionID,
		Amount:         req.Amount,
		Currency:       currency,
		Description:    req.Description,
		Type:           req.Type,
		Date:           req.Date,
		CreatedAt:      time.Now(),
	}

	if err := s.revenueRepo.SaveRevenue(ctx, revenue); err != nil {
		s.LogError(ctx, err, "Failed to save revenue in repository",
			slog.String("revenue_id", revenue.RevenueID))
		return nil, err
	}

	s.LogInfo(ctx, "Revenue recorded successfully",
		slog.String("revenue_id", revenue.RevenueID),
		slog.String("type", revenue.Type))
	return &revenue, nil
}

func (s *revenueService) ListRevenues(ctx context.Context, filter portsrepo.RevenueFilter) ([]domain.Revenue, error) {
	revenues, err := s.revenueRepo.ListRevenues(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list revenues from repository")
		return nil, err
	}
	if revenues == nil {
		return []domain.Revenue{}, nil
	}
	return revenues, nil
}

func (s *revenueService) DeleteRevenue(ctx context.Context, revenueID string) error {
	if err := s.revenueRepo.DeleteRevenue(ctx, revenueID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete revenue in repository",
				slog.String("revenue_id", revenueID))
		}
		return err
	}

	s.LogInfo(ctx, "Revenue deleted successfully", slog.String("revenue_id", revenueID))
	return nil
}
