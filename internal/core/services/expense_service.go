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

// expenseService implements the ExpenseSvcFacade interface
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new expense service
func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: repo}
}

// Ensure expenseService implements the ExpenseSvcFacade interface
var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	frequency := domain.ExpenseFrequency(req.Frequency)
	if req.Frequency == "" {
		frequency = domain.ExpenseOneTime
	}
	isPaid := false
	if req.IsPaid != nil {
		isPaid = *req.IsPaid
	}

	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		ProductID:   req.ProductID,
		Amount:      req.Amount,
		Currency:    currency,
		Category:    req.Category,
		Description: req.Description,
		Frequency:   frequency,
		DueDate:     req.DueDate,
		IsPaid:      isPaid,
		Date:        req.Date,
		CreatedAt:   time.Now(),
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense in repository",
			slog.String("expense_id", expense.ExpenseID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense created successfully",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("category", expense.Category))
	return &expense, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find expense by ID in repository",
				slog.String("expense_id", expenseID))
		}
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, filter portsrepo.ExpenseFilter) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses from repository")
		return nil, err
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find expense for update",
				slog.String("expense_id", expenseID))
		}
		return nil, err
	}

	if req.ProductID != nil {
		expense.ProductID = *req.ProductID
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Currency != nil {
		expense.Currency = *req.Currency
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Frequency != nil {
		expense.Frequency = domain.ExpenseFrequency(*req.Frequency)
	}
	if req.DueDate != nil {
		expense.DueDate = req.DueDate
	}
	if req.IsPaid != nil {
		expense.IsPaid = *req.IsPaid
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense in repository",
			slog.String("expense_id", expenseID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense updated successfully", slog.String("expense_id", expenseID))
	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete expense in repository",
				slog.String("expense_id", expenseID))
		}
		return err
	}

	s.LogInfo(ctx, "Expense deleted successfully", slog.String("expense_id", expenseID))
	return nil
}
