package calculator

import "slices"

// BalanceMap folds the full transaction list into a signed balance per
// friend in a single pass. Positive means the friend owes the user, negative
// means the user owes the friend.
//
// Sign rule (shared by expenses and settlements): money moving from Me
// raises the counterparty's balance, money moving from the friend lowers it.
// An expense paid by Me means the friend owes more; a settlement paid by Me
// means the user's own debt shrinks. Both are +amount on the friend's side.
//
// Transactions where Me is on neither side, or on both, are skipped.
func BalanceMap(txs []Transaction) map[string]float64 {
	balances := make(map[string]float64)
	for _, tx := range txs {
		switch {
		case tx.PayerID == Me && tx.FriendID != Me:
			balances[tx.FriendID] += tx.Amount
		case tx.PayerID != Me && tx.FriendID == Me:
			balances[tx.PayerID] -= tx.Amount
		}
	}
	return balances
}

// FriendBalance returns the signed balance with a single friend, derived
// from the full transaction list. Unknown friends and empty IDs yield 0.
func FriendBalance(friendID string, txs []Transaction) float64 {
	if friendID == "" {
		return 0
	}
	return BalanceMap(txs)[friendID]
}

// TotalOwed returns the sum of all positive per-friend balances: the total
// amount others owe the user.
func TotalOwed(txs []Transaction) float64 {
	owed, _ := rollups(BalanceMap(txs))
	return owed
}

// TotalOwing returns the absolute sum of all negative per-friend balances:
// the total amount the user owes others.
func TotalOwing(txs []Transaction) float64 {
	_, owing := rollups(BalanceMap(txs))
	return owing
}

// NetBalance is TotalOwed minus TotalOwing, computed from one balance pass.
func NetBalance(txs []Transaction) float64 {
	owed, owing := rollups(BalanceMap(txs))
	return owed - owing
}

// rollups derives both aggregate totals from an already computed balance
// map, so callers that need more than one avoid rescanning the transaction
// list. Keys are summed in sorted order to keep float accumulation
// deterministic across calls.
func rollups(balances map[string]float64) (owed, owing float64) {
	ids := make([]string, 0, len(balances))
	for id := range balances {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		if b := balances[id]; b > 0 {
			owed += b
		} else {
			owing -= b
		}
	}
	return owed, owing
}
