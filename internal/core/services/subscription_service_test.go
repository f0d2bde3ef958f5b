package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/subtrack/subtrack_backend/internal/apperrors"
	"github.com/subtrack/subtrack_backend/internal/core/domain"
	portsrepo "github.com/subtrack/subtrack_backend/internal/core/ports/repositories"
	portssvc "github.com/subtrack/subtrack_backend/internal/core/ports/services"
	"github.com/subtrack/subtrack_backend/internal/core/services"
	"github.com/subtrack/subtrack_backend/internal/dto"
)

type SubscriptionServiceTestSuite struct {
	suite.Suite
	mockRepo            *MockSubscriptionRepository
	mockLedger          *MockCapacityLedger
	mockRevenueRepo     *MockRevenueRepository
	mockNotificationSvc *MockNotificationService
	service             portssvc.SubscriptionSvcFacade
}

func (suite *SubscriptionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSubscriptionRepository)
	suite.mockLedger = new(MockCapacityLedger)
	suite.mockRevenueRepo = new(MockRevenueRepository)
	suite.mockNotificationSvc = new(MockNotificationService)
	suite.service = services.NewSubscriptionService(suite.mockRepo,
		services.WithCapacityLedger(suite.mockLedger),
		services.WithRevenueRepository(suite.mockRevenueRepo),
		services.WithNotificationService(suite.mockNotificationSvc),
		services.WithCapacityAlertThreshold(80),
	)
}

func (suite *SubscriptionServiceTestSuite) validCreateRequest() dto.CreateSubscriptionRequest {
	return dto.CreateSubscriptionRequest{
		ProductID:       uuid.NewString(),
		MasterAccountID: uuid.NewString(),
		CustomerName:    "Ada Lovelace",
		CustomerEmail:   "ada@example.com",
		StartDate:       time.Now(),
		EndDate:         time.Now().AddDate(0, 1, 0),
		Price:           decimal.NewFromInt(30),
		Currency:        "USD",
	}
}

func (suite *SubscriptionServiceTestSuite) TestCreateSubscription_Success() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	account := &domain.MasterAccount{
		AccountID:    req.MasterAccountID,
		AccountName:  "Pool A",
		MaxCapacity:  10,
		CurrentUsage: 5,
	}

	suite.mockRepo.On("SaveSubscription", ctx, mock.AnythingOfType("domain.Subscription")).Return(nil).Once()
	suite.mockLedger.On("ReserveSeat", ctx, req.MasterAccountID).Return(account, nil).Once()
	suite.mockRevenueRepo.On("SaveRevenue", ctx, mock.MatchedBy(func(r domain.Revenue) bool {
		return r.SubscriptionID != "" &&
			r.ProductID == req.ProductID &&
			r.Amount.Equal(req.Price) &&
			r.Type == domain.RevenueTypeSubscription
	})).Return(nil).Once()

	created, err := suite.service.CreateSubscription(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.SubscriptionID)
	suite.Equal(req.MasterAccountID, created.MasterAccountID)
	suite.Equal(domain.SubscriptionActive, created.Status)
	suite.WithinDuration(time.Now(), created.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockLedger.AssertExpectations(suite.T())
	suite.mockRevenueRepo.AssertExpectations(suite.T())
	// 5/10 seats is below the threshold; no capacity alert.
	suite.mockNotificationSvc.AssertNotCalled(suite.T(), "EmitCapacityAlert", mock.Anything, mock.Anything)
}

func (suite *SubscriptionServiceTestSuite) TestCreateSubscription_CapacityAlertAtThreshold() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	account := &domain.MasterAccount{
		AccountID:    req.MasterAccountID,
		AccountName:  "Pool B",
		MaxCapacity:  10,
		CurrentUsage: 8, // exactly 80%
	}

	suite.mockRepo.On("SaveSubscription", ctx, mock.AnythingOfType("domain.Subscription")).Return(nil).Once()
	suite.mockLedger.On("ReserveSeat", ctx, req.MasterAccountID).Return(account, nil).Once()
	suite.mockRevenueRepo.On("SaveRevenue", ctx, mock.AnythingOfType("domain.Revenue")).Return(nil).Once()
	suite.mockNotificationSvc.On("EmitCapacityAlert", ctx, account).Return(nil).Once()

	created, err := suite.service.CreateSubscription(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.mockNotificationSvc.AssertExpectations(suite.T())
}

func (suite *SubscriptionServiceTestSuite) TestCreateSubscription_EndDateNotAfterStartDate() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.EndDate = req.StartDate

	created, err := suite.service.CreateSubscription(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSubscription", mock.Anything, mock.Anything)
	suite.mockLedger.AssertNotCalled(suite.T(), "ReserveSeat", mock.Anything, mock.Anything)
}

func (suite *SubscriptionServiceTestSuite) TestCreateSubscription_DefaultsCurrency() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.Currency = ""
	account := &domain.MasterAccount{AccountID: req.MasterAccountID, MaxCapacity: 100}

	suite.mockRepo.On("SaveSubscription", ctx, mock.MatchedBy(func(s domain.Subscription) bool {
		return s.Currency == "USD"
	})).Return(nil).Once()
	suite.mockLedger.On("ReserveSeat", ctx, req.MasterAccountID).Return(account, nil).Once()
	suite.mockRevenueRepo.On("SaveRevenue", ctx, mock.AnythingOfType("domain.Revenue")).Return(nil).Once()

	created, err := suite.service.CreateSubscription(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("USD", created.Currency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SubscriptionServiceTestSuite) TestCreateSubscription_ReserveSeatError() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveSubscription", ctx, mock.AnythingOfType("domain.Subscription")).Return(nil).Once()
	suite.mockLedger.On("ReserveSeat", ctx, req.MasterAccountID).Return(nil, expectedErr).Once()

	created, err := suite.service.CreateSubscription(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, expectedErr)
	suite.mockRevenueRepo.AssertNotCalled(suite.T(), "SaveRevenue", mock.Anything, mock.Anything)
}

func (suite *SubscriptionServiceTestSuite) TestGetSubscriptionByID_DerivesStatus() {
	ctx := context.Background()
	testID := uuid.NewString()
	stored := &domain.Subscription{
		SubscriptionID: testID,
		EndDate:        time.Now().AddDate(0, 0, -3),
		Status:         domain.SubscriptionActive, // stale hint
	}

	suite.mockRepo.On("FindSubscriptionByID", ctx, testID).Return(stored, nil).Once()

	sub, err := suite.service.GetSubscriptionByID(ctx, testID)

	suite.Require().NoError(err)
	suite.Equal(domain.SubscriptionExpired, sub.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SubscriptionServiceTestSuite) TestListSubscriptions_FiltersByDerivedStatus() {
	ctx := context.Background()
	subs := []domain.Subscription{
		{SubscriptionID: "a", EndDate: time.Now().AddDate(0, 1, 0), Status: domain.SubscriptionExpired},
		{SubscriptionID: "b", EndDate: time.Now().AddDate(0, 0, -5), Status: domain.SubscriptionActive},
	}

	suite.mockRepo.On("ListSubscriptions", ctx, mock.AnythingOfType("repositories.SubscriptionFilter")).Return(subs, nil).Once()

	result, err := suite.service.ListSubscriptions(ctx, dto.ListSubscriptionsParams{Status: "active"})

	suite.Require().NoError(err)
	// Subscription "a" has a stale expired hint but a future end date; only it
	// passes the active filter.
	suite.Require().Len(result, 1)
	suite.Equal("a", result[0].SubscriptionID)
	suite.Equal(domain.SubscriptionActive, result[0].Status)
}

func (suite *SubscriptionServiceTestSuite) TestUpdateSubscription_ReassignmentMovesSeat() {
	ctx := context.Background()
	testID := uuid.NewString()
	oldAccount := uuid.NewString()
	newAccount := uuid.NewString()
	stored := &domain.Subscription{
		SubscriptionID:  testID,
		MasterAccountID: oldAccount,
		StartDate:       time.Now(),
		EndDate:         time.Now().AddDate(0, 1, 0),
	}

	suite.mockRepo.On("FindSubscriptionByID", ctx, testID).Return(stored, nil).Once()
	suite.mockLedger.On("ReleaseSeat", ctx, oldAccount).Return(nil).Once()
	suite.mockLedger.On("ReserveSeat", ctx, newAccount).Return(&domain.MasterAccount{AccountID: newAccount, MaxCapacity: 10, CurrentUsage: 1}, nil).Once()
	suite.mockRepo.On("UpdateSubscription", ctx, mock.MatchedBy(func(s domain.Subscription) bool {
		return s.MasterAccountID == newAccount
	})).Return(nil).Once()

	updated, err := suite.service.UpdateSubscription(ctx, testID, dto.UpdateSubscriptionRequest{
		MasterAccountID: &newAccount,
	})

	suite.Require().NoError(err)
	suite.Equal(newAccount, updated.MasterAccountID)
	suite.mockLedger.AssertExpectations(suite.T())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SubscriptionServiceTestSuite) TestUpdateSubscription_SameAccountDoesNotTouchLedger() {
	ctx := context.Background()
	testID := uuid.NewString()
	accountID := uuid.NewString()
	stored := &domain.Subscription{
		SubscriptionID:  testID,
		MasterAccountID: accountID,
		StartDate:       time.Now(),
		EndDate:         time.Now().AddDate(0, 1, 0),
	}
	newName := "Renamed Customer"

	suite.mockRepo.On("FindSubscriptionByID", ctx, testID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateSubscription", ctx, mock.AnythingOfType("domain.Subscription")).Return(nil).Once()

	updated, err := suite.service.UpdateSubscription(ctx, testID, dto.UpdateSubscriptionRequest{
		CustomerName:    &newName,
		MasterAccountID: &accountID, // unchanged
	})

	suite.Require().NoError(err)
	suite.Equal(newName, updated.CustomerName)
	suite.mockLedger.AssertNotCalled(suite.T(), "ReleaseSeat", mock.Anything, mock.Anything)
	suite.mockLedger.AssertNotCalled(suite.T(), "ReserveSeat", mock.Anything, mock.Anything)
}

func (suite *SubscriptionServiceTestSuite) TestUpdateSubscription_EndDateNotAfterStartDate() {
	ctx := context.Background()
	testID := uuid.NewString()
	stored := &domain.Subscription{
		SubscriptionID:  testID,
		MasterAccountID: uuid.NewString(),
		StartDate:       time.Now(),
		EndDate:         time.Now().AddDate(0, 1, 0),
	}
	badEnd := stored.StartDate.AddDate(0, 0, -1)

	suite.mockRepo.On("FindSubscriptionByID", ctx, testID).Return(stored, nil).Once()

	updated, err := suite.service.UpdateSubscription(ctx, testID, dto.UpdateSubscriptionRequest{
		EndDate: &badEnd,
	})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateSubscription", mock.Anything, mock.Anything)
}

func (suite *SubscriptionServiceTestSuite) TestUpdateSubscription_RejectedReassignmentDoesNotMoveSeat() {
	ctx := context.Background()
	testID := uuid.NewString()
	oldAccount := uuid.NewString()
	newAccount := uuid.NewString()
	stored := &domain.Subscription{
		SubscriptionID:  testID,
		MasterAccountID: oldAccount,
		StartDate:       time.Now(),
		EndDate:         time.Now().AddDate(0, 1, 0),
	}
	badEnd := stored.StartDate.AddDate(0, 0, -1)

	suite.mockRepo.On("FindSubscriptionByID", ctx, testID).Return(stored, nil).Once()

	// One request carrying both a reassignment and an invalid date pair must
	// fail without moving either counter.
	updated, err := suite.service.UpdateSubscription(ctx, testID, dto.UpdateSubscriptionRequest{
		MasterAccountID: &newAccount,
		EndDate:         &badEnd,
	})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedger.AssertNotCalled(suite.T(), "ReleaseSeat", mock.Anything, mock.Anything)
	suite.mockLedger.AssertNotCalled(suite.T(), "ReserveSeat", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateSubscription", mock.Anything, mock.Anything)
}

func (suite *SubscriptionServiceTestSuite) TestDeleteSubscription_ReleasesSeat() {
	ctx := context.Background()
	testID := uuid.NewString()
	accountID := uuid.NewString()
	stored := &domain.Subscription{SubscriptionID: testID, MasterAccountID: accountID}

	suite.mockRepo.On("FindSubscriptionByID", ctx, testID).Return(stored, nil).Once()
	suite.mockRepo.On("DeleteSubscription", ctx, testID).Return(nil).Once()
	suite.mockLedger.On("ReleaseSeat", ctx, accountID).Return(nil).Once()

	err := suite.service.DeleteSubscription(ctx, testID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *SubscriptionServiceTestSuite) TestDeleteSubscription_NotFoundHasNoSideEffects() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("FindSubscriptionByID", ctx, testID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteSubscription(ctx, testID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteSubscription", mock.Anything, mock.Anything)
	suite.mockLedger.AssertNotCalled(suite.T(), "ReleaseSeat", mock.Anything, mock.Anything)
}

func (suite *SubscriptionServiceTestSuite) TestBulkDeleteSubscriptions_BestEffort() {
	ctx := context.Background()
	okID1, badID, okID2 := uuid.NewString(), uuid.NewString(), uuid.NewString()
	accountID := uuid.NewString()

	for _, id := range []string{okID1, okID2} {
		suite.mockRepo.On("FindSubscriptionByID", ctx, id).Return(&domain.Subscription{SubscriptionID: id, MasterAccountID: accountID}, nil).Once()
		suite.mockRepo.On("DeleteSubscription", ctx, id).Return(nil).Once()
	}
	suite.mockRepo.On("FindSubscriptionByID", ctx, badID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockLedger.On("ReleaseSeat", ctx, accountID).Return(nil).Twice()

	deleted, err := suite.service.BulkDeleteSubscriptions(ctx, []string{okID1, badID, okID2})

	suite.Require().NoError(err)
	suite.Equal(2, deleted)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *SubscriptionServiceTestSuite) TestBulkUpdateStatus_InvalidStatus() {
	ctx := context.Background()

	updated, err := suite.service.BulkUpdateStatus(ctx, []string{uuid.NewString()}, "cancelled")

	suite.Require().Error(err)
	suite.Zero(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateSubscriptionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SubscriptionServiceTestSuite) TestBulkUpdateStatus_BestEffort() {
	ctx := context.Background()
	okID, badID := uuid.NewString(), uuid.NewString()

	suite.mockRepo.On("UpdateSubscriptionStatus", ctx, okID, domain.SubscriptionExpired, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockRepo.On("UpdateSubscriptionStatus", ctx, badID, domain.SubscriptionExpired, mock.AnythingOfType("time.Time")).Return(apperrors.ErrNotFound).Once()

	updated, err := suite.service.BulkUpdateStatus(ctx, []string{okID, badID}, domain.SubscriptionExpired)

	suite.Require().NoError(err)
	suite.Equal(1, updated)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SubscriptionServiceTestSuite) TestCleanupExpired_RemovesAndReleases() {
	ctx := context.Background()
	accountID := uuid.NewString()
	subs := []domain.Subscription{
		{SubscriptionID: uuid.NewString(), MasterAccountID: accountID},
		{SubscriptionID: uuid.NewString(), MasterAccountID: accountID},
	}
	expectedCutoff := domain.StartOfDay(time.Now()).AddDate(0, 0, -30)

	suite.mockRepo.On("ListSubscriptionsEndingOnOrBefore", ctx, mock.MatchedBy(func(cutoff time.Time) bool {
		// Midnight-normalized; the exact moment the service reads the clock
		// does not shift the cutoff within a day.
		return cutoff.Equal(expectedCutoff)
	})).Return(subs, nil).Once()
	for _, sub := range subs {
		suite.mockRepo.On("DeleteSubscription", ctx, sub.SubscriptionID).Return(nil).Once()
	}
	suite.mockLedger.On("ReleaseSeat", ctx, accountID).Return(nil).Twice()

	removed, err := suite.service.CleanupExpired(ctx, 30)

	suite.Require().NoError(err)
	suite.Equal(2, removed)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *SubscriptionServiceTestSuite) TestCleanupExpired_NegativeDays() {
	ctx := context.Background()

	removed, err := suite.service.CleanupExpired(ctx, -1)

	suite.Require().Error(err)
	suite.Zero(removed)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListSubscriptionsEndingOnOrBefore", mock.Anything, mock.Anything)
}

func (suite *SubscriptionServiceTestSuite) TestCleanupExpired_DeleteFailureSkipsRelease() {
	ctx := context.Background()
	accountID := uuid.NewString()
	subs := []domain.Subscription{
		{SubscriptionID: uuid.NewString(), MasterAccountID: accountID},
	}

	suite.mockRepo.On("ListSubscriptionsEndingOnOrBefore", ctx, mock.AnythingOfType("time.Time")).Return(subs, nil).Once()
	suite.mockRepo.On("DeleteSubscription", ctx, subs[0].SubscriptionID).Return(assert.AnError).Once()

	removed, err := suite.service.CleanupExpired(ctx, 0)

	suite.Require().NoError(err)
	suite.Zero(removed)
	suite.mockLedger.AssertNotCalled(suite.T(), "ReleaseSeat", mock.Anything, mock.Anything)
}

// subscriptionMemStore is a map-backed store with real cutoff filtering, used
// where date comparisons matter and a canned mock would hide them.
type subscriptionMemStore struct {
	subs map[string]domain.Subscription
}

func newSubscriptionMemStore(subs ...domain.Subscription) *subscriptionMemStore {
	store := &subscriptionMemStore{subs: make(map[string]domain.Subscription, len(subs))}
	for _, sub := range subs {
		store.subs[sub.SubscriptionID] = sub
	}
	return store
}

func (s *subscriptionMemStore) FindSubscriptionByID(_ context.Context, subscriptionID string) (*domain.Subscription, error) {
	sub, ok := s.subs[subscriptionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &sub, nil
}

func (s *subscriptionMemStore) ListSubscriptions(_ context.Context, _ portsrepo.SubscriptionFilter) ([]domain.Subscription, error) {
	result := make([]domain.Subscription, 0, len(s.subs))
	for _, sub := range s.subs {
		result = append(result, sub)
	}
	return result, nil
}

func (s *subscriptionMemStore) ListSubscriptionsEndingOnOrBefore(_ context.Context, cutoff time.Time) ([]domain.Subscription, error) {
	var result []domain.Subscription
	for _, sub := range s.subs {
		if !sub.EndDate.After(cutoff) {
			result = append(result, sub)
		}
	}
	return result, nil
}

func (s *subscriptionMemStore) SearchSubscriptions(_ context.Context, _ string) ([]domain.Subscription, error) {
	return nil, nil
}

func (s *subscriptionMemStore) SaveSubscription(_ context.Context, sub domain.Subscription) error {
	s.subs[sub.SubscriptionID] = sub
	return nil
}

func (s *subscriptionMemStore) UpdateSubscription(_ context.Context, sub domain.Subscription) error {
	if _, ok := s.subs[sub.SubscriptionID]; !ok {
		return apperrors.ErrNotFound
	}
	s.subs[sub.SubscriptionID] = sub
	return nil
}

func (s *subscriptionMemStore) UpdateSubscriptionStatus(_ context.Context, subscriptionID string, status domain.SubscriptionStatus, now time.Time) error {
	sub, ok := s.subs[subscriptionID]
	if !ok {
		return apperrors.ErrNotFound
	}
	sub.Status = status
	sub.UpdatedAt = now
	s.subs[subscriptionID] = sub
	return nil
}

func (s *subscriptionMemStore) DeleteSubscription(_ context.Context, subscriptionID string) error {
	if _, ok := s.subs[subscriptionID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.subs, subscriptionID)
	return nil
}

var _ portsrepo.SubscriptionRepositoryFacade = (*subscriptionMemStore)(nil)

// TestCleanupExpired_CutoffBoundary drives the real end-date comparison: the
// cutoff is inclusive, so a subscription ending exactly daysOld days ago is
// removed while one ending a day later survives.
func TestCleanupExpired_CutoffBoundary(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.NewString()
	cutoff := domain.StartOfDay(time.Now()).AddDate(0, 0, -7)

	onCutoff := domain.Subscription{SubscriptionID: "on-cutoff", MasterAccountID: accountID, EndDate: cutoff}
	dayOlder := domain.Subscription{SubscriptionID: "day-older", MasterAccountID: accountID, EndDate: cutoff.AddDate(0, 0, -1)}
	dayNewer := domain.Subscription{SubscriptionID: "day-newer", MasterAccountID: accountID, EndDate: cutoff.AddDate(0, 0, 1)}

	store := newSubscriptionMemStore(onCutoff, dayOlder, dayNewer)
	ledger := new(MockCapacityLedger)
	ledger.On("ReleaseSeat", ctx, accountID).Return(nil).Twice()

	svc := services.NewSubscriptionService(store, services.WithCapacityLedger(ledger))

	removed, err := svc.CleanupExpired(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.NotContains(t, store.subs, "on-cutoff")
	assert.NotContains(t, store.subs, "day-older")
	assert.Contains(t, store.subs, "day-newer")
	ledger.AssertExpectations(t)
}

func TestSubscriptionService(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceTestSuite))
}
