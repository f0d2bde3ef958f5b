package domain

import "time"

// MasterAccount is a shared capacity pool backing many subscriptions for one
// product, e.g. seats on a third-party service.
//
// CurrentUsage is a running counter maintained incrementally by the capacity
// ledger: in steady state it equals the number of subscriptions referencing
// this account. It is never recomputed from scratch.
type MasterAccount struct {
	AccountID    string
	ProductID    string
	AccountName  string
	MaxCapacity  int
	CurrentUsage int
	IsActive     bool
	CreatedAt    time.Time
}

// UtilizationPercent returns CurrentUsage/MaxCapacity expressed as a
// percentage. A zero MaxCapacity yields 0.
func (a MasterAccount) UtilizationPercent() float64 {
	if a.MaxCapacity <= 0 {
		return 0
	}
	return float64(a.CurrentUsage) / float64(a.MaxCapacity) * 100
}
