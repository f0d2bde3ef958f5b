package services

import (
	"context"
	"strings"
	"time"

	"github.com/subtrack/subtrack_backend/internal/core/domain"
	portsrepo "github.com/subtrack/subtrack_backend/internal/core/ports/repositories"
	portssvc "github.com/subtrack/subtrack_backend/internal/core/ports/services"
	"github.com/subtrack/subtrack_backend/internal/dto"
)

// reportingService implements the ReportingSvcFacade interface
type reportingService struct {
	BaseService
	reportingRepo    portsrepo.ReportingRepositoryFacade
	productRepo      portsrepo.ProductReader
	subscriptionRepo portsrepo.SubscriptionReader
	accountRepo      portsrepo.MasterAccountReader
	invoiceRepo      portsrepo.InvoiceRepositoryFacade
}

// NewReportingService creates a new reporting service
func NewReportingService(
	reportingRepo portsrepo.ReportingRepositoryFacade,
	productRepo portsrepo.ProductReader,
	subscriptionRepo portsrepo.SubscriptionReader,
	accountRepo portsrepo.MasterAccountReader,
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo:    reportingRepo,
		productRepo:      productRepo,
		subscriptionRepo: subscriptionRepo,
		accountRepo:      accountRepo,
		invoiceRepo:      invoiceRepo,
	}
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) Summary(ctx context.Context) (*dto.SummaryReport, error) {
	revenueTotals, err := s.reportingRepo.RevenueTotalsByCurrency(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to total revenues")
		return nil, err
	}

	expenseTotals, err := s.reportingRepo.ExpenseTotalsByCurrency(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to total expenses")
		return nil, err
	}

	subscriptions, err := s.subscriptionRepo.ListSubscriptions(ctx, portsrepo.SubscriptionFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to list subscriptions for summary")
		return nil, err
	}

	// Counts use the derived status, never the stored hint.
	now := time.Now()
	statusCounts := map[string]int{
		string(domain.SubscriptionActive):       0,
		string(domain.SubscriptionExpiringSoon): 0,
		string(domain.SubscriptionExpired):      0,
	}
	for _, sub := range subscriptions {
		statusCounts[string(domain.SubscriptionStatusAt(sub.EndDate, now))]++
	}

	accounts, err := s.accountRepo.ListMasterAccounts(ctx, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to list master accounts for summary")
		return nil, err
	}

	utilization := make([]dto.AccountUtilization, len(accounts))
	for i, account := range accounts {
		utilization[i] = dto.AccountUtilization{
			AccountID:          account.AccountID,
			AccountName:        account.AccountName,
			MaxCapacity:        account.MaxCapacity,
			CurrentUsage:       account.CurrentUsage,
			UtilizationPercent: account.UtilizationPercent(),
		}
	}

	return &dto.SummaryReport{
		RevenueByCurrency:     revenueTotals,
		ExpenseByCurrency:     expenseTotals,
		SubscriptionsByStatus: statusCounts,
		Accounts:              utilization,
	}, nil
}

func (s *reportingService) Search(ctx context.Context, query string) (*dto.SearchResults, error) {
	query = strings.TrimSpace(query)
	results := &dto.SearchResults{
		Products:      []dto.ProductResponse{},
		Subscriptions: []dto.SubscriptionResponse{},
		Invoices:      []dto.InvoiceResponse{},
	}
	if query == "" {
		return results, nil
	}

	products, err := s.productRepo.SearchProducts(ctx, query)
	if err != nil {
		s.LogError(ctx, err, "Product search failed")
		return nil, err
	}
	results.Products = dto.ToProductResponses(products)

	subscriptions, err := s.subscriptionRepo.SearchSubscriptions(ctx, query)
	if err != nil {
		s.LogError(ctx, err, "Subscription search failed")
		return nil, err
	}
	now := time.Now()
	for i := range subscriptions {
		subscriptions[i] = subscriptions[i].WithDerivedStatus(now)
	}
	results.Subscriptions = dto.ToSubscriptionResponses(subscriptions)

	invoices, err := s.invoiceRepo.SearchInvoices(ctx, query)
	if err != nil {
		s.LogError(ctx, err, "Invoice search failed")
		return nil, err
	}
	results.Invoices = dto.ToInvoiceResponses(invoices)

	return results, nil
}
