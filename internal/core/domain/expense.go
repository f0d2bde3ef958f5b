package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseFrequency describes how often an expense recurs.
type ExpenseFrequency string

const (
	ExpenseOneTime ExpenseFrequency = "one_time"
	ExpenseMonthly ExpenseFrequency = "monthly"
	ExpenseYearly  ExpenseFrequency = "yearly"
)

// Expense is a cost record.
type Expense struct {
	ExpenseID   string
	ProductID   string
	Amount      decimal.Decimal
	Currency    string
	Category    string
	Description string
	Frequency   ExpenseFrequency
	DueDate     *time.Time
	IsPaid      bool
	Date        time.Time
	CreatedAt   time.Time
}
