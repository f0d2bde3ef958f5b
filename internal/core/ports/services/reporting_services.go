package services

import (
	"context"

	"github.com/subtrack/subtrack_backend/internal/dto"
)

// ReportingSvcFacade aggregates cross-entity views for the dashboard.
type ReportingSvcFacade interface {
	// Summary computes counts, per-currency revenue and expense totals, and
	// per-account utilization.
	Summary(ctx context.Context) (*dto.SummaryReport, error)

	// Search runs a case-insensitive substring search across products,
	// subscriptions, and invoices.
	Search(ctx context.Context, query string) (*dto.SearchResults, error)
}
