package models

import "time"

// MasterAccount mirrors the master_accounts table.
// current_usage is only ever mutated through relative adjustments
// (current_usage = current_usage + delta), never set to an absolute value by
// subscription operations.
type MasterAccount struct {
	AccountID    string    `db:"account_id"`
	ProductID    string    `db:"product_id"`
	AccountName  string    `db:"account_name"`
	MaxCapacity  int       `db:"max_capacity"`
	CurrentUsage int       `db:"current_usage"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
}
