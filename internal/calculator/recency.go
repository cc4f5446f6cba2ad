package calculator

import (
	"fmt"
	"time"
)

// LastActivity returns a human-readable age for the friend's most recent
// transaction: "Today", "Yesterday", "N days ago" (under a week),
// "N week(s) ago" (under a month), or a short absolute date. Settlements
// count as activity. Returns "Never" when the friend has no transactions
// with a parseable date.
func LastActivity(friendID string, txs []Transaction) string {
	return lastActivityAt(friendID, txs, time.Now())
}

func lastActivityAt(friendID string, txs []Transaction, now time.Time) string {
	var latest time.Time
	found := false

	for _, tx := range txs {
		if !relevant(tx, friendID) {
			continue
		}
		t, ok := parseDate(tx.Date)
		if !ok {
			continue
		}
		if !found || t.After(latest) {
			latest = t
			found = true
		}
	}
	if !found {
		return "Never"
	}

	// Calendar-day difference, not elapsed hours: a transaction at 23:00
	// is "Yesterday" at 01:00 the next day.
	days := calendarDaysBetween(latest, now)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		weeks := days / 7
		if weeks == 1 {
			return "1 week ago"
		}
		return fmt.Sprintf("%d weeks ago", weeks)
	default:
		return latest.Format("Jan 2")
	}
}
