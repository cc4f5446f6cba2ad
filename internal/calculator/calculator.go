// Package calculator implements the pure ledger engine: per-friend balance
// accumulation, aggregate rollups, category breakdowns, activity recency and
// the settlement gray-out replay. Every function is a stateless read of its
// inputs; malformed input degrades to zero values instead of errors.
package calculator

import (
	"math"
	"time"
)

// Me is the sentinel identifier for the current user. Every well-formed
// transaction has Me on exactly one side.
const Me = "me"

// Epsilon is the shared tolerance for treating a balance as zero. All
// "is settled" checks in the system go through IsSettled so the tolerance
// stays consistent.
const Epsilon = 0.01

// Transaction carries the minimal fields the engine needs. The service layer
// converts from the full domain model.
type Transaction struct {
	ID           string
	Amount       float64
	Date         string // ISO-8601
	Type         string
	PayerID      string // Me or a friend ID
	FriendID     string // the other party
	IsSettlement bool
}

// IsSettled reports whether a balance is close enough to zero to count as
// settled.
func IsSettled(balance float64) bool {
	return math.Abs(balance) < Epsilon
}

// dateLayouts are tried in order when parsing transaction dates. Dates that
// match none of them are treated as invalid and excluded from any
// time-ordered computation.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// relevant reports whether tx is a two-party transaction between Me and the
// given friend, in either direction.
func relevant(tx Transaction, friendID string) bool {
	if friendID == "" || friendID == Me {
		return false
	}
	return (tx.PayerID == Me && tx.FriendID == friendID) ||
		(tx.PayerID == friendID && tx.FriendID == Me)
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// calendarDaysBetween returns the whole calendar days from a to b
// (midnight to midnight), negative when b precedes a.
func calendarDaysBetween(a, b time.Time) int {
	return int(startOfDay(b).Sub(startOfDay(a)).Hours() / 24)
}
