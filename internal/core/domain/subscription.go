package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// SubscriptionStatus is a subscription's lifecycle state. It is derived from
// EndDate and the current date; the persisted value is a last-known hint and
// is never trusted for business decisions on its own.
type SubscriptionStatus string

const (
	SubscriptionActive       SubscriptionStatus = "active"
	SubscriptionExpiringSoon SubscriptionStatus = "expiring_soon"
	SubscriptionExpired      SubscriptionStatus = "expired"
)

// ValidSubscriptionStatus reports whether s is one of the known status values.
func ValidSubscriptionStatus(s SubscriptionStatus) bool {
	switch s {
	case SubscriptionActive, SubscriptionExpiringSoon, SubscriptionExpired:
		return true
	}
	return false
}

// Subscription is one customer's claim against a master account.
type Subscription struct {
	SubscriptionID   string
	ProductID        string
	MasterAccountID  string
	CustomerName     string
	CustomerEmail    string
	CustomerWhatsapp string
	StartDate        time.Time
	EndDate          time.Time
	Status           SubscriptionStatus
	Price            decimal.Decimal
	Currency         string
	CouponCode       string
	Referrer         string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// StartOfDay normalizes t to midnight in its own location. Status decisions
// are made at calendar-day granularity; time-of-day never matters.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysUntil returns the whole calendar days from now's day to endDate's day.
// Negative when endDate's day is in the past.
func DaysUntil(endDate, now time.Time) int {
	diff := StartOfDay(endDate).Sub(StartOfDay(now))
	// Round absorbs the odd-length days around DST transitions.
	return int(math.Round(diff.Hours() / 24))
}

// SubscriptionStatusAt derives the status for a subscription ending on
// endDate, evaluated at now:
//
//	ends before today           -> expired
//	ends today or tomorrow      -> expiring_soon
//	ends two or more days out   -> active
func SubscriptionStatusAt(endDate, now time.Time) SubscriptionStatus {
	days := DaysUntil(endDate, now)
	switch {
	case days < 0:
		return SubscriptionExpired
	case days <= 1:
		return SubscriptionExpiringSoon
	default:
		return SubscriptionActive
	}
}

// WithDerivedStatus returns a copy of s with Status recomputed from EndDate.
func (s Subscription) WithDerivedStatus(now time.Time) Subscription {
	s.Status = SubscriptionStatusAt(s.EndDate, now)
	return s
}
