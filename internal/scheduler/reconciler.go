// Package scheduler runs the periodic reconciliation sweep that keeps stored
// subscription status hints honest and emits due alerts.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/subtrack/subtrack_backend/internal/core/domain"
	portsrepo "github.com/subtrack/subtrack_backend/internal/core/ports/repositories"
)

// SubscriptionStore defines the subscription operations needed by the sweep.
type SubscriptionStore interface {
	ListSubscriptions(ctx context.Context, filter portsrepo.SubscriptionFilter) ([]domain.Subscription, error)
	UpdateSubscriptionStatus(ctx context.Context, subscriptionID string, status domain.SubscriptionStatus, now time.Time) error
}

// ExpenseStore defines the expense operations needed by the sweep.
type ExpenseStore interface {
	ListExpenses(ctx context.Context, filter portsrepo.ExpenseFilter) ([]domain.Expense, error)
}

// InvoiceStore defines the invoice operations needed by the sweep.
type InvoiceStore interface {
	ListInvoices(ctx context.Context, status domain.InvoiceStatus) ([]domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error
}

// AlertEmitter emits idempotent notifications keyed by (type, relatedID).
type AlertEmitter interface {
	EmitIfAbsent(ctx context.Context, notifType domain.NotificationType, relatedID, title, message string) (bool, error)
}

// Reconciler contains the logic for the reconciliation sweep.
type Reconciler struct {
	subscriptions SubscriptionStore
	expenses      ExpenseStore
	invoices      InvoiceStore
	alerts        AlertEmitter
	logger        *slog.Logger
}

// NewReconciler creates a new sweep runner.
func NewReconciler(subscriptions SubscriptionStore, expenses ExpenseStore, invoices InvoiceStore, alerts AlertEmitter, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		subscriptions: subscriptions,
		expenses:      expenses,
		invoices:      invoices,
		alerts:        alerts,
		logger:        logger,
	}
}

// Run executes one full sweep. Every step is best effort: failures are
// logged and the remaining work continues, the next tick retries.
func (r *Reconciler) Run() {
	ctx := context.Background()
	now := time.Now()
	r.logger.Info("starting reconciliation sweep")

	r.reconcileSubscriptions(ctx, now)
	r.reconcileExpenses(ctx, now)
	r.reconcileInvoices(ctx, now)

	r.logger.Info("reconciliation sweep finished")
}

// reconcileSubscriptions corrects stale status hints and emits lifecycle
// alerts. Hint corrections write the status column directly and never touch
// the capacity counter, which only moves on create and delete.
func (r *Reconciler) reconcileSubscriptions(ctx context.Context, now time.Time) {
	subs, err := r.subscriptions.ListSubscriptions(ctx, portsrepo.SubscriptionFilter{})
	if err != nil {
		r.logger.Error("failed to list subscriptions for sweep", "error", err)
		return
	}

	corrected := 0
	for _, sub := range subs {
		derived := domain.SubscriptionStatusAt(sub.EndDate, now)

		if derived != sub.Status {
			if err := r.subscriptions.UpdateSubscriptionStatus(ctx, sub.SubscriptionID, derived, now); err != nil {
				r.logger.Error("failed to correct subscription status hint",
					"error", err, "subscription_id", sub.SubscriptionID)
			} else {
				corrected++
			}
		}

		switch derived {
		case domain.SubscriptionExpiringSoon:
			r.emit(ctx, domain.NotificationSubscriptionExpiring, sub.SubscriptionID,
				"Subscription expiring soon",
				fmt.Sprintf("Subscription for %s ends on %s", sub.CustomerName, sub.EndDate.Format(time.DateOnly)))
		case domain.SubscriptionExpired:
			r.emit(ctx, domain.NotificationSubscriptionExpired, sub.SubscriptionID,
				"Subscription expired",
				fmt.Sprintf("Subscription for %s ended on %s", sub.CustomerName, sub.EndDate.Format(time.DateOnly)))
		}
	}

	if corrected > 0 {
		r.logger.Info("corrected stale subscription status hints", "count", corrected)
	}
}

// reconcileExpenses alerts on unpaid expenses due today or tomorrow.
func (r *Reconciler) reconcileExpenses(ctx context.Context, now time.Time) {
	unpaid := false
	expenses, err := r.expenses.ListExpenses(ctx, portsrepo.ExpenseFilter{IsPaid: &unpaid})
	if err != nil {
		r.logger.Error("failed to list expenses for sweep", "error", err)
		return
	}

	for _, expense := range expenses {
		if expense.DueDate == nil {
			continue
		}
		days := domain.DaysUntil(*expense.DueDate, now)
		if days < 0 || days > 1 {
			continue
		}
		r.emit(ctx, domain.NotificationExpenseDue, expense.ExpenseID,
			"Expense due",
			fmt.Sprintf("%s (%s %s) is due on %s",
				expense.Description, expense.Amount.String(), expense.Currency, expense.DueDate.Format(time.DateOnly)))
	}
}

// reconcileInvoices marks unpaid invoices past their due date as overdue and
// alerts on them.
func (r *Reconciler) reconcileInvoices(ctx context.Context, now time.Time) {
	unpaid, err := r.invoices.ListInvoices(ctx, domain.InvoiceUnpaid)
	if err != nil {
		r.logger.Error("failed to list unpaid invoices for sweep", "error", err)
		return
	}
	overdue, err := r.invoices.ListInvoices(ctx, domain.InvoiceOverdue)
	if err != nil {
		r.logger.Error("failed to list overdue invoices for sweep", "error", err)
		return
	}

	for _, invoice := range append(unpaid, overdue...) {
		if domain.DaysUntil(invoice.DueDate, now) >= 0 {
			continue
		}

		if invoice.Status != domain.InvoiceOverdue {
			invoice.Status = domain.InvoiceOverdue
			if err := r.invoices.UpdateInvoice(ctx, invoice); err != nil {
				r.logger.Error("failed to mark invoice overdue",
					"error", err, "invoice_id", invoice.InvoiceID)
			}
		}

		r.emit(ctx, domain.NotificationInvoiceUnpaid, invoice.InvoiceID,
			"Invoice unpaid",
			fmt.Sprintf("Invoice %s for %s was due on %s",
				invoice.InvoiceNumber, invoice.CustomerName, invoice.DueDate.Format(time.DateOnly)))
	}
}

func (r *Reconciler) emit(ctx context.Context, notifType domain.NotificationType, relatedID, title, message string) {
	created, err := r.alerts.EmitIfAbsent(ctx, notifType, relatedID, title, message)
	if err != nil {
		r.logger.Error("failed to emit alert",
			"error", err, "type", string(notifType), "related_id", relatedID)
		return
	}
	if created {
		r.logger.Info("alert emitted", "type", string(notifType), "related_id", relatedID)
	}
}
