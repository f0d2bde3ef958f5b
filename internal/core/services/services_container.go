package services

import (
	portsrepo "github.com/subtrack/subtrack_backend/internal/core/ports/repositories"
	portssvc "github.com/subtrack/subtrack_backend/internal/core/ports/services"
	"github.com/subtrack/subtrack_backend/internal/platform/config"
	"github.com/subtrack/subtrack_backend/internal/platform/llm"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Product = NewProductService(repos.ProductRepo)
	container.Notification = NewNotificationService(repos.NotificationRepo)

	// The master account service doubles as the capacity ledger, so it is
	// built before the subscription service that depends on it.
	container.MasterAccount = NewMasterAccountService(
		repos.MasterAccountRepo,
		WithProductReader(repos.ProductRepo),
		WithSubscriptionRepository(repos.SubscriptionRepo),
	)

	container.Subscription = NewSubscriptionService(
		repos.SubscriptionRepo,
		WithCapacityLedger(container.MasterAccount),
		WithRevenueRepository(repos.RevenueRepo),
		WithNotificationService(container.Notification),
		WithCapacityAlertThreshold(cfg.CapacityAlertThreshold),
	)

	container.Revenue = NewRevenueService(repos.RevenueRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo)
	container.Invoice = NewInvoiceService(
		repos.InvoiceRepo,
		WithInvoiceRevenueRepository(repos.RevenueRepo),
	)

	container.Reporting = NewReportingService(
		repos.ReportingRepo,
		repos.ProductRepo,
		repos.SubscriptionRepo,
		repos.MasterAccountRepo,
		repos.InvoiceRepo,
	)

	llmClient := llm.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.OpenAITimeout)
	container.Assistant = NewAssistantService(
		llmClient,
		repos.ProductRepo,
		repos.SubscriptionRepo,
		repos.MasterAccountRepo,
		repos.RevenueRepo,
		repos.ExpenseRepo,
	)

	return container
}
