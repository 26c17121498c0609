package services

import (
	"context"
	"fmt"

	"github.com/finwise-app/finwise_backend/internal/core/domain"
	portsrepo "github.com/finwise-app/finwise_backend/internal/core/ports/repositories"
	portssvc "github.com/finwise-app/finwise_backend/internal/core/ports/services"
)

// ReportingService produces read-only rollups of a user's records.
type ReportingService struct {
	reportingRepo portsrepo.ReportingRepository
	userRepo      portsrepo.UserRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, userRepo portsrepo.UserRepositoryFacade) *ReportingService {
	return &ReportingService{reportingRepo: reportingRepo, userRepo: userRepo}
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

// GetMonthlySummary aggregates one month of the user's records in their
// default currency. Records in other currencies are excluded from the sums.
func (s *ReportingService) GetMonthlySummary(ctx context.Context, userID string, month string) (*domain.MonthlySummary, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary, err := s.reportingRepo.GetMonthlySummary(ctx, userID, month, user.DefaultCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly summary in service: %w", err)
	}
	return summary, nil
}
