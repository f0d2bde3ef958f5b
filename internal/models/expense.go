package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense mirrors the expenses table.
type Expense struct {
	ExpenseID   string          `db:"expense_id"`
	ProductID   string          `db:"product_id"`
	Amount      decimal.Decimal `db:"amount"`
	Currency    string          `db:"currency"`
	Category    string          `db:"category"`
	Description string          `db:"description"`
	Frequency   string          `db:"frequency"`
	DueDate     *time.Time      `db:"due_date"`
	IsPaid      bool            `db:"is_paid"`
	Date        time.Time       `db:"date"`
	CreatedAt   time.Time       `db:"created_at"`
}
