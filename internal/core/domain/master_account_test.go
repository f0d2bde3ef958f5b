package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/subtrack/subtrack_backend/internal/core/domain"
)

func TestUtilizationPercent(t *testing.T) {
	tests := []struct {
		name     string
		usage    int
		capacity int
		expected float64
	}{
		{"empty account", 0, 10, 0},
		{"half full", 5, 10, 50},
		{"at threshold", 8, 10, 80},
		{"full", 10, 10, 100},
		{"over capacity", 12, 10, 120},
		{"zero capacity", 3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := domain.MasterAccount{CurrentUsage: tt.usage, MaxCapacity: tt.capacity}
			assert.InDelta(t, tt.expected, account.UtilizationPercent(), 0.0001)
		})
	}
}
