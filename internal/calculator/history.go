package calculator

import (
	"sort"
	"time"
)

// HistoryGroup is a labeled bucket of transactions for the history view,
// newest first within the bucket.
type HistoryGroup struct {
	Label        string        `json:"label"`
	Transactions []Transaction `json:"transactions"`
}

// GroupByDate buckets transactions for display: Today, Yesterday, This Week
// (under 7 days), This Month (under 30 days), then one group per calendar
// month ("October 2023"). Groups are ordered most recent first and
// transactions with unparseable dates are skipped.
func GroupByDate(txs []Transaction) []HistoryGroup {
	return groupByDateAt(txs, time.Now())
}

func groupByDateAt(txs []Transaction, now time.Time) []HistoryGroup {
	type bucket struct {
		label  string
		newest int64
		txs    []Transaction
		dates  map[string]int64 // tx ID -> timestamp, for intra-group sort
	}
	buckets := make(map[string]*bucket)

	for _, tx := range txs {
		t, ok := parseDate(tx.Date)
		if !ok {
			continue
		}

		days := calendarDaysBetween(t, now)
		var label string
		switch {
		case days <= 0:
			label = "Today"
		case days == 1:
			label = "Yesterday"
		case days < 7:
			label = "This Week"
		case days < 30:
			label = "This Month"
		default:
			label = t.Format("January 2006")
		}

		b := buckets[label]
		if b == nil {
			b = &bucket{label: label, dates: make(map[string]int64)}
			buckets[label] = b
		}
		at := t.UnixNano()
		b.txs = append(b.txs, tx)
		b.dates[tx.ID] = at
		if at > b.newest {
			b.newest = at
		}
	}

	ordered := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	// Newest bucket first; this puts Today before Yesterday before the
	// month groups without special-casing the labels.
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].newest > ordered[j].newest
	})

	groups := make([]HistoryGroup, 0, len(ordered))
	for _, b := range ordered {
		sort.SliceStable(b.txs, func(i, j int) bool {
			return b.dates[b.txs[i].ID] > b.dates[b.txs[j].ID]
		})
		groups = append(groups, HistoryGroup{Label: b.label, Transactions: b.txs})
	}
	return groups
}
