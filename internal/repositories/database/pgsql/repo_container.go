package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/subtrack/subtrack_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProductRepo:       newPgxProductRepository(dbPool),
		MasterAccountRepo: newPgxMasterAccountRepository(dbPool),
		SubscriptionRepo:  newPgxSubscriptionRepository(dbPool),
		RevenueRepo:       newPgxRevenueRepository(dbPool),
		ExpenseRepo:       newPgxExpenseRepository(dbPool),
		InvoiceRepo:       newPgxInvoiceRepository(dbPool),
		NotificationRepo:  newPgxNotificationRepository(dbPool),
		ReportingRepo:     newPgxReportingRepository(dbPool),
	}
}
