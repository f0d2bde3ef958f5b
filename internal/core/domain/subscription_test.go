package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/subtrack/subtrack_backend/internal/core/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestSubscriptionStatusAt(t *testing.T) {
	now := date(2024, time.January, 5)

	tests := []struct {
		name     string
		endDate  time.Time
		now      time.Time
		expected domain.SubscriptionStatus
	}{
		{
			name:     "ended days ago is expired",
			endDate:  date(2024, time.January, 1),
			now:      now,
			expected: domain.SubscriptionExpired,
		},
		{
			name:     "ended a few days ago is expired",
			endDate:  date(2024, time.January, 2),
			now:      now,
			expected: domain.SubscriptionExpired,
		},
		{
			name:     "ended yesterday is expired",
			endDate:  date(2024, time.January, 4),
			now:      now,
			expected: domain.SubscriptionExpired,
		},
		{
			name:     "ends today is expiring soon",
			endDate:  date(2024, time.January, 5),
			now:      now,
			expected: domain.SubscriptionExpiringSoon,
		},
		{
			name:     "ends tomorrow is expiring soon",
			endDate:  date(2024, time.January, 6),
			now:      now,
			expected: domain.SubscriptionExpiringSoon,
		},
		{
			name:     "ends in two days is active",
			endDate:  date(2024, time.January, 7),
			now:      now,
			expected: domain.SubscriptionActive,
		},
		{
			name:     "ends in a month is active",
			endDate:  date(2024, time.February, 5),
			now:      now,
			expected: domain.SubscriptionActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.SubscriptionStatusAt(tt.endDate, tt.now))
		})
	}
}

func TestSubscriptionStatusAt_TimeOfDayDoesNotMatter(t *testing.T) {
	// Late evening vs early morning on the same pair of calendar days must
	// derive the same status.
	lateNow := time.Date(2024, time.March, 10, 23, 59, 0, 0, time.UTC)
	earlyNow := time.Date(2024, time.March, 10, 0, 1, 0, 0, time.UTC)
	endTomorrowEarly := time.Date(2024, time.March, 11, 0, 1, 0, 0, time.UTC)
	endTomorrowLate := time.Date(2024, time.March, 11, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, domain.SubscriptionExpiringSoon, domain.SubscriptionStatusAt(endTomorrowEarly, lateNow))
	assert.Equal(t, domain.SubscriptionExpiringSoon, domain.SubscriptionStatusAt(endTomorrowLate, earlyNow))

	endYesterdayLate := time.Date(2024, time.March, 9, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, domain.SubscriptionExpired, domain.SubscriptionStatusAt(endYesterdayLate, earlyNow))
}

func TestDaysUntil(t *testing.T) {
	now := date(2024, time.June, 15)

	assert.Equal(t, 0, domain.DaysUntil(date(2024, time.June, 15), now))
	assert.Equal(t, 1, domain.DaysUntil(date(2024, time.June, 16), now))
	assert.Equal(t, -1, domain.DaysUntil(date(2024, time.June, 14), now))
	assert.Equal(t, 30, domain.DaysUntil(date(2024, time.July, 15), now))

	// Partial days collapse to calendar-day granularity.
	assert.Equal(t, 1, domain.DaysUntil(
		time.Date(2024, time.June, 16, 0, 30, 0, 0, time.UTC),
		time.Date(2024, time.June, 15, 23, 30, 0, 0, time.UTC),
	))
}

func TestWithDerivedStatus(t *testing.T) {
	now := date(2024, time.January, 5)
	sub := domain.Subscription{
		SubscriptionID: "sub-1",
		EndDate:        date(2024, time.January, 2),
		Status:         domain.SubscriptionActive, // stale hint
	}

	derived := sub.WithDerivedStatus(now)

	assert.Equal(t, domain.SubscriptionExpired, derived.Status)
	// The receiver is untouched.
	assert.Equal(t, domain.SubscriptionActive, sub.Status)
}

func TestValidSubscriptionStatus(t *testing.T) {
	assert.True(t, domain.ValidSubscriptionStatus(domain.SubscriptionActive))
	assert.True(t, domain.ValidSubscriptionStatus(domain.SubscriptionExpiringSoon))
	assert.True(t, domain.ValidSubscriptionStatus(domain.SubscriptionExpired))
	assert.False(t, domain.ValidSubscriptionStatus("cancelled"))
	assert.False(t, domain.ValidSubscriptionStatus(""))
}
