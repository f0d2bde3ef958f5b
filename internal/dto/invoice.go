package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/subtrack/subtrack_backend/internal/core/domain"
)

// CreateInvoiceRequest defines the data needed to create an invoice.
type CreateInvoiceRequest struct {
	SubscriptionID string          `json:"subscriptionId"`
	InvoiceNumber  string          `json:"invoiceNumber" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Currency       string          `json:"currency"`
	Status         string          `json:"status" binding:"omitempty,oneof=unpaid paid overdue"`
	DueDate        time.Time       `json:"dueDate" binding:"required"`
	PaidDate       *time.Time      `json:"paidDate"`
	CustomerName   string          `json:"customerName" binding:"required"`
	CustomerEmail  string          `json:"customerEmail" binding:"required,email"`
	Notes          string          `json:"notes"`
}

// UpdateInvoiceRequest defines the data allowed for updating an invoice.
type UpdateInvoiceRequest struct {
	SubscriptionID *string          `json:"subscriptionId"`
	InvoiceNumber  *string          `json:"invoiceNumber"`
	Amount         *decimal.Decimal `json:"amount"`
	Currency       *string          `json:"currency"`
	Status         *string          `json:"status" binding:"omitempty,oneof=unpaid paid overdue"`
	DueDate        *time.Time       `json:"dueDate"`
	PaidDate       *time.Time       `json:"paidDate"`
	CustomerName   *string          `json:"customerName"`
	CustomerEmail  *string          `json:"customerEmail" binding:"omitempty,email"`
	Notes          *string          `json:"notes"`
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	Status string `form:"status" binding:"omitempty,oneof=unpaid paid overdue"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	ID             string          `json:"id"`
	SubscriptionID string          `json:"subscriptionId,omitempty"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Status         string          `json:"status"`
	DueDate        time.Time       `json:"dueDate"`
	PaidDate       *time.Time      `json:"paidDate,omitempty"`
	CustomerName   string          `json:"customerName"`
	CustomerEmail  string          `json:"customerEmail"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:             inv.InvoiceID,
		SubscriptionID: inv.SubscriptionID,
		InvoiceNumber:  inv.InvoiceNumber,
		Amount:         inv.Amount,
		Currency:       inv.Currency,
		Status:         string(inv.Status),
		DueDate:        inv.DueDate,
		PaidDate:       inv.PaidDate,
		CustomerName:   inv.CustomerName,
		CustomerEmail:  inv.CustomerEmail,
		Notes:          inv.Notes,
		CreatedAt:      inv.CreatedAt,
	}
}

// ToInvoiceResponses converts a slice of domain.Invoice.
func ToInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i])
	}
	return res
}
