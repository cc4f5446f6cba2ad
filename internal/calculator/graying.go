package calculator

import "sort"

// ShouldGray decides whether a historical transaction displays as already
// reconciled with the given friend.
//
// Algorithm:
//  1. If the friend's current balance is settled, every transaction with
//     that friend is grayed.
//  2. Otherwise replay the friend's transactions in chronological order,
//     maintaining a running balance with the same sign rule as BalanceMap,
//     and record the last index at which the running balance returned to
//     (within Epsilon of) zero.
//  3. The queried transaction is grayed iff it sits at or before that index
//     in the chronological ordering.
//
// The "settled as of" point is always recomputed from the current full
// history; nothing is persisted on the transactions themselves. Transactions
// with unparseable dates are excluded from the replay.
func ShouldGray(tx Transaction, friendID string, txs []Transaction) bool {
	if friendID == "" {
		return false
	}
	if IsSettled(FriendBalance(friendID, txs)) {
		return true
	}

	history := chronological(friendID, txs)

	lastZero := -1
	running := 0.0
	for i, t := range history {
		if t.PayerID == Me {
			running += t.Amount
		} else {
			running -= t.Amount
		}
		if IsSettled(running) {
			lastZero = i
		}
	}
	if lastZero < 0 {
		return false
	}

	for i, t := range history {
		if t.ID == tx.ID {
			return i <= lastZero
		}
	}
	return false
}

// chronological returns the friend's two-party transactions with valid
// dates, sorted ascending by date. The sort is stable so same-timestamp
// entries keep their input order.
func chronological(friendID string, txs []Transaction) []Transaction {
	type dated struct {
		tx   Transaction
		at   int64
	}
	var entries []dated
	for _, tx := range txs {
		if !relevant(tx, friendID) {
			continue
		}
		t, ok := parseDate(tx.Date)
		if !ok {
			continue
		}
		entries = append(entries, dated{tx: tx, at: t.UnixNano()})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].at < entries[j].at
	})

	history := make([]Transaction, len(entries))
	for i, e := range entries {
		history[i] = e.tx
	}
	return history
}
