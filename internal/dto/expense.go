package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/subtrack/subtrack_backend/internal/core/domain"
)

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	ProductID   string          `json:"productId"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Currency    string          `json:"currency"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Frequency   string          `json:"frequency" binding:"omitempty,oneof=one_time monthly yearly"`
	DueDate     *time.Time      `json:"dueDate"`
	IsPaid      *bool           `json:"isPaid"`
	Date        time.Time       `json:"date" binding:"required"`
}

// UpdateExpenseRequest defines the data allowed for updating an expense.
type UpdateExpenseRequest struct {
	ProductID   *string          `json:"productId"`
	Amount      *decimal.Decimal `json:"amount"`
	Currency    *string          `json:"currency"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Frequency   *string          `json:"frequency" binding:"omitempty,oneof=one_time monthly yearly"`
	DueDate     *time.Time       `json:"dueDate"`
	IsPaid      *bool            `json:"isPaid"`
	Date        *time.Time       `json:"date"`
}

// ListExpensesParams defines query parameters for listing expenses.
type ListExpensesParams struct {
	ProductID string     `form:"productId"`
	StartDate *time.Time `form:"startDate"`
	EndDate   *time.Time `form:"endDate"`
	IsPaid    *bool      `form:"isPaid"`
}

// ExpenseResponse defines the data returned for an expense record.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Frequency   string          `json:"frequency"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`
	IsPaid      bool            `json:"isPaid"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ExpenseID,
		ProductID:   e.ProductID,
		Amount:      e.Amount,
		Currency:    e.Currency,
		Category:    e.Category,
		Description: e.Description,
		Frequency:   string(e.Frequency),
		DueDate:     e.DueDate,
		IsPaid:      e.IsPaid,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
	}
}

// ToExpenseResponses converts a slice of domain.Expense.
func ToExpenseResponses(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToExpenseResponse(&expenses[i])
	}
	return res
}
