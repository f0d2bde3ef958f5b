package dto

import (
	"time"

	"github.com/subtrack/subtrack_backend/internal/core/domain"
)

// CreateMasterAccountRequest defines the data needed to create a master account.
type CreateMasterAccountRequest struct {
	ProductID   string `json:"productId" binding:"required"`
	AccountName string `json:"accountName" binding:"required"`
	MaxCapacity int    `json:"maxCapacity" binding:"required,gt=0"`
	IsActive    *bool  `json:"isActive"`
}

// UpdateMasterAccountRequest defines the data allowed for updating a master
// account. CurrentUsage is deliberately absent: the usage counter is owned by
// the capacity ledger and cannot be set to an arbitrary value.
type UpdateMasterAccountRequest struct {
	AccountName *string `json:"accountName"`
	MaxCapacity *int    `json:"maxCapacity" binding:"omitempty,gt=0"`
	IsActive    *bool   `json:"isActive"`
}

// MasterAccountResponse defines the data returned for a master account.
type MasterAccountResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"productId"`
	AccountName  string    `json:"accountName"`
	MaxCapacity  int       `json:"maxCapacity"`
	CurrentUsage int       `json:"currentUsage"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToMasterAccountResponse converts a domain.MasterAccount to MasterAccountResponse.
func ToMasterAccountResponse(a *domain.MasterAccount) MasterAccountResponse {
	return MasterAccountResponse{
		ID:           a.AccountID,
		ProductID:    a.ProductID,
		AccountName:  a.AccountName,
		MaxCapacity:  a.MaxCapacity,
		CurrentUsage: a.CurrentUsage,
		IsActive:     a.IsActive,
		CreatedAt:    a.CreatedAt,
	}
}

// ToMasterAccountResponses converts a slice of domain.MasterAccount.
func ToMasterAccountResponses(accounts []domain.MasterAccount) []MasterAccountResponse {
	res := make([]MasterAccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToMasterAccountResponse(&accounts[i])
	}
	return res
}

// ListMasterAccountsParams defines query parameters for listing master accounts.
type ListMasterAccountsParams struct {
	ProductID string `form:"productId"`
}
