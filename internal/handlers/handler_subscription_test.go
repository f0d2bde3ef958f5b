package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/subtrack/subtrack_backend/internal/apperrors"
	"github.com/subtrack/subtrack_backend/internal/core/domain"
	portssvc "github.com/subtrack/subtrack_backend/internal/core/ports/services"
	"github.com/subtrack/subtrack_backend/internal/dto"
	"github.com/subtrack/subtrack_backend/internal/handlers"
	"github.com/subtrack/subtrack_backend/internal/platform/config"
)

// --- Mock SubscriptionService ---
type MockSubscriptionService struct {
	mock.Mock
}

func (m *MockSubscriptionService) CreateSubscription(ctx context.Context, req dto.CreateSubscriptionRequest) (*domain.Subscription, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) GetSubscriptionByID(ctx context.Context, subscriptionID string) (*domain.Subscription, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) ListSubscriptions(ctx context.Context, params dto.ListSubscriptionsParams) ([]domain.Subscription, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) UpdateSubscription(ctx context.Context, subscriptionID string, req dto.UpdateSubscriptionRequest) (*domain.Subscription, error) {
	args := m.Called(ctx, subscriptionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) DeleteSubscription(ctx context.Context, subscriptionID string) error {
	args := m.Called(ctx, subscriptionID)
	return args.Error(0)
}

func (m *MockSubscriptionService) BulkDeleteSubscriptions(ctx context.Context, ids []string) (int, error) {
	args := m.Called(ctx, ids)
	return args.Int(0), args.Error(1)
}

func (m *MockSubscriptionService) BulkUpdateStatus(ctx context.Context, ids []string, status domain.SubscriptionStatus) (int, error) {
	args := m.Called(ctx, ids, status)
	return args.Int(0), args.Error(1)
}

func (m *MockSubscriptionService) CleanupExpired(ctx context.Context, daysOld int) (int, error) {
	args := m.Called(ctx, daysOld)
	return args.Int(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.SubscriptionSvcFacade = (*MockSubscriptionService)(nil)

// --- Test Suite ---
type SubscriptionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockSubscriptionService
}

func (suite *SubscriptionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockService = new(MockSubscriptionService)

	handlers.RegisterRoutes(suite.router, &config.Config{}, &portssvc.ServiceContainer{
		Subscription: suite.mockService,
	})
}

func (suite *SubscriptionHandlerTestSuite) TestCreateSubscription_Success() {
	reqBody := dto.CreateSubscriptionRequest{
		ProductID:       uuid.NewString(),
		MasterAccountID: uuid.NewString(),
		CustomerName:    "Ada Lovelace",
		CustomerEmail:   "ada@example.com",
		StartDate:       time.Now().UTC().Truncate(time.Second),
		EndDate:         time.Now().UTC().AddDate(0, 1, 0).Truncate(time.Second),
		Price:           decimal.NewFromInt(30),
	}
	created := &domain.Subscription{
		SubscriptionID:  uuid.NewString(),
		ProductID:       reqBody.ProductID,
		MasterAccountID: reqBody.MasterAccountID,
		CustomerName:    reqBody.CustomerName,
		Status:          domain.SubscriptionActive,
	}

	suite.mockService.On("CreateSubscription", mock.Anything, mock.AnythingOfType("dto.CreateSubscriptionRequest")).Return(created, nil).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/subscriptions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var responseBody dto.SubscriptionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Equal(created.SubscriptionID, responseBody.ID)
	suite.Equal("active", responseBody.Status)

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *SubscriptionHandlerTestSuite) TestCreateSubscription_MissingFields() {
	req, _ := http.NewRequest(http.MethodPost, "/api/subscriptions", bytes.NewReader([]byte(`{"customerName":"Ada"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateSubscription", mock.Anything, mock.Anything)
}

func (suite *SubscriptionHandlerTestSuite) TestGetSubscriptionByID_NotFound() {
	testID := uuid.NewString()

	suite.mockService.On("GetSubscriptionByID", mock.Anything, testID).Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/subscriptions/"+testID, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *SubscriptionHandlerTestSuite) TestListSubscriptions_PassesStatusFilter() {
	subs := []domain.Subscription{
		{SubscriptionID: uuid.NewString(), Status: domain.SubscriptionExpired},
	}

	suite.mockService.On("ListSubscriptions", mock.Anything, mock.MatchedBy(func(p dto.ListSubscriptionsParams) bool {
		return p.Status == "expired"
	})).Return(subs, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/subscriptions?status=expired", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody []dto.SubscriptionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Len(responseBody, 1)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *SubscriptionHandlerTestSuite) TestListSubscriptions_RejectsUnknownStatus() {
	req, _ := http.NewRequest(http.MethodGet, "/api/subscriptions?status=cancelled", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListSubscriptions", mock.Anything, mock.Anything)
}

func (suite *SubscriptionHandlerTestSuite) TestCleanupExpired_Success() {
	suite.mockService.On("CleanupExpired", mock.Anything, 30).Return(4, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/subscriptions/cleanup/expired", bytes.NewReader([]byte(`{"daysOld":30}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody map[string]any
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Equal(true, responseBody["success"])
	suite.Equal(float64(4), responseBody["deletedCount"])
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *SubscriptionHandlerTestSuite) TestCleanupExpired_MissingDaysOld() {
	req, _ := http.NewRequest(http.MethodPost, "/api/subscriptions/cleanup/expired", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CleanupExpired", mock.Anything, mock.Anything)
}

func (suite *SubscriptionHandlerTestSuite) TestBulkUpdateStatus_Success() {
	ids := []string{uuid.NewString(), uuid.NewString()}

	suite.mockService.On("BulkUpdateStatus", mock.Anything, ids, domain.SubscriptionExpired).Return(2, nil).Once()

	body, _ := json.Marshal(dto.BulkUpdateStatusRequest{IDs: ids, Status: "expired"})
	req, _ := http.NewRequest(http.MethodPost, "/api/subscriptions/bulk-update-status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody map[string]any
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Equal(float64(2), responseBody["updatedCount"])
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *SubscriptionHandlerTestSuite) TestDeleteSubscription_Success() {
	testID := uuid.NewString()

	suite.mockService.On("DeleteSubscription", mock.Anything, testID).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, fmt.Sprintf("/api/subscriptions/%s", testID), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func TestSubscriptionHandler(t *testing.T) {
	suite.Run(t, new(SubscriptionHandlerTestSuite))
}
