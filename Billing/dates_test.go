package Billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateOnly(t *testing.T) {
	assert.Equal(t, "2024-03-15", DateOnly("2024-03-15"))
	assert.Equal(t, "2024-03-15", DateOnly("2024-03-15T10:30:00Z"))
	assert.Equal(t, "2024-03-15", DateOnly("2024-03-15 10:30:00"))
	assert.Equal(t, "", DateOnly(""))
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-03", MonthKey("2024-03-15"))
	assert.Equal(t, "2024-03", MonthKey("2024-03-15T10:30:00Z"))
	assert.Equal(t, "", MonthKey("2024"))
	assert.Equal(t, "", MonthKey(""))
}

func TestInRange(t *testing.T) {
	// No constraints
	assert.True(t, InRange("2024-03-15", "", "", ""))

	// From/to bounds are inclusive
	assert.True(t, InRange("2024-03-15", "2024-03-15", "2024-03-15", ""))
	assert.False(t, InRange("2024-03-14", "2024-03-15", "", ""))
	assert.False(t, InRange("2024-03-16", "", "2024-03-15", ""))

	// Month must match exactly: 2024-03-15 is in 2024-03 and nothing else
	assert.True(t, InRange("2024-03-15", "", "", "2024-03"))
	assert.False(t, InRange("2024-03-15", "", "", "2024-04"))
	assert.False(t, InRange("2024-04-01", "", "", "2024-03"))

	// Undated records are never filtered out
	assert.True(t, InRange("", "2024-01-01", "2024-12-31", "2024-03"))
}
