package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/subtrack/subtrack_backend/internal/core/domain"
	portsrepo "github.com/subtrack/subtrack_backend/internal/core/ports/repositories"
)

// Shared mocks for the repository and ledger interfaces used across the
// service test suites.

// MockSubscriptionRepository is a mock type for the SubscriptionRepositoryFacade interface
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) FindSubscriptionByID(ctx context.Context, subscriptionID string) (*domain.Subscription, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscriptions(ctx context.Context, filter portsrepo.SubscriptionFilter) ([]domain.Subscription, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscriptionsEndingOnOrBefore(ctx context.Context, cutoff time.Time) ([]domain.Subscription, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) SearchSubscriptions(ctx context.Context, query string) ([]domain.Subscription, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) SaveSubscription(ctx context.Context, subscription domain.Subscription) error {
	args := m.Called(ctx, subscription)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) UpdateSubscription(ctx context.Context, subscription domain.Subscription) error {
	args := m.Called(ctx, subscription)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) UpdateSubscriptionStatus(ctx context.Context, subscriptionID string, status domain.SubscriptionStatus, now time.Time) error {
	args := m.Called(ctx, subscriptionID, status, now)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) DeleteSubscription(ctx context.Context, subscriptionID string) error {
	args := m.Called(ctx, subscriptionID)
	return args.Error(0)
}

// MockMasterAccountRepository is a mock type for the MasterAccountRepositoryFacade interface
type MockMasterAccountRepository struct {
	mock.Mock
}

func (m *MockMasterAccountRepository) FindMasterAccountByID(ctx context.Context, accountID string) (*domain.MasterAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MasterAccount), args.Error(1)
}

func (m *MockMasterAccountRepository) ListMasterAccounts(ctx context.Context, productID string) ([]domain.MasterAccount, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MasterAccount), args.Error(1)
}

func (m *MockMasterAccountRepository) SaveMasterAccount(ctx context.Context, account domain.MasterAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockMasterAccountRepository) UpdateMasterAccount(ctx context.Context, account domain.MasterAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockMasterAccountRepository) DeleteMasterAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockMasterAccountRepository) AdjustUsage(ctx context.Context, accountID string, delta int) error {
	args := m.Called(ctx, accountID, delta)
	return args.Error(0)
}

// MockProductRepository is a mock type for the ProductRepositoryFacade interface
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// MockRevenueRepository is a mock type for the RevenueRepositoryFacade interface
type MockRevenueRepository struct {
	mock.Mock
}

func (m *MockRevenueRepository) ListRevenues(ctx context.Context, filter portsrepo.RevenueFilter) ([]domain.Revenue, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Revenue), args.Error(1)
}

func (m *MockRevenueRepository) SaveRevenue(ctx context.Context, revenue domain.Revenue) error {
	args := m.Called(ctx, revenue)
	return args.Error(0)
}

func (m *MockRevenueRepository) DeleteRevenue(ctx context.Context, revenueID string) error {
	args := m.Called(ctx, revenueID)
	return args.Error(0)
}

// MockInvoiceRepository is a mock type for the InvoiceRepositoryFacade interface
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, status domain.InvoiceStatus) ([]domain.Invoice, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

func (m *MockInvoiceRepository) SearchInvoices(ctx context.Context, query string) ([]domain.Invoice, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

// MockNotificationRepository is a mock type for the NotificationRepositoryFacade interface
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) ListNotifications(ctx context.Context, isRead *bool) ([]domain.Notification, error) {
	args := m.Called(ctx, isRead)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) HasNotification(ctx context.Context, notifType domain.NotificationType, relatedID string) (bool, error) {
	args := m.Called(ctx, notifType, relatedID)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID string) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllNotificationsRead(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteNotification(ctx context.Context, notificationID string) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}

// MockCapacityLedger is a mock type for the CapacityLedgerSvc interface
type MockCapacityLedger struct {
	mock.Mock
}

func (m *MockCapacityLedger) ReserveSeat(ctx context.Context, accountID string) (*domain.MasterAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MasterAccount), args.Error(1)
}

func (m *MockCapacityLedger) ReleaseSeat(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// MockNotificationService is a mock type for the NotificationSvcFacade interface
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) ListNotifications(ctx context.Context, unreadOnly bool) ([]domain.Notification, error) {
	args := m.Called(ctx, unreadOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationService) EmitIfAbsent(ctx context.Context, notifType domain.NotificationType, relatedID, title, message string) (bool, error) {
	args := m.Called(ctx, notifType, relatedID, title, message)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationService) EmitCapacityAlert(ctx context.Context, account *domain.MasterAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockNotificationService) MarkNotificationRead(ctx context.Context, notificationID string) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}

func (m *MockNotificationService) MarkAllNotificationsRead(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationService) DeleteNotification(ctx context.Context, notificationID string) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}
