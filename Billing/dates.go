package Billing

import (
	"strings"
)

// DateOnly truncates an ISO date or timestamp to its YYYY-MM-DD part.
func DateOnly(date string) string {
	if i := strings.IndexAny(date, "T "); i >= 0 {
		return date[:i]
	}
	return date
}

// MonthKey returns the YYYY-MM prefix of a date, used to bucket
// monthly aggregates.
func MonthKey(date string) string {
	d := DateOnly(date)
	if len(d) < 7 {
		return ""
	}
	return d[:7]
}

// InRange reports whether a date passes the from/to/month constraints.
// Empty constraints always pass; an empty date is never filtered out so
// partially filled records still show up in reports.
func InRange(date, from, to, month string) bool {
	if date == "" {
		return true
	}
	d := DateOnly(date)
	if from != "" && d < from {
		return false
	}
	if to != "" && d > to {
		return false
	}
	if month != "" && MonthKey(d) != month {
		return false
	}
	return true
}
