package dto

import "github.com/shopspring/decimal"

// SearchResults groups cross-entity search matches.
type SearchResults struct {
	Products      []ProductResponse      `json:"products"`
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
	Invoices      []InvoiceResponse      `json:"invoices"`
}

// AccountUtilization is one master account's capacity snapshot in the
// summary report.
type AccountUtilization struct {
	AccountID          string  `json:"accountId"`
	AccountName        string  `json:"accountName"`
	MaxCapacity        int     `json:"maxCapacity"`
	CurrentUsage       int     `json:"currentUsage"`
	UtilizationPercent float64 `json:"utilizationPercent"`
}

// SummaryReport aggregates the dashboard numbers: money totals per currency,
// subscription counts per derived status, and per-account utilization.
type SummaryReport struct {
	RevenueByCurrency     map[string]decimal.Decimal `json:"revenueByCurrency"`
	ExpenseByCurrency     map[string]decimal.Decimal `json:"expenseByCurrency"`
	SubscriptionsByStatus map[string]int             `json:"subscriptionsByStatus"`
	Accounts              []AccountUtilization       `json:"accounts"`
}

// ChatRequest is the assistant input.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse is the assistant output.
type ChatResponse struct {
	Response string `json:"response"`
}
