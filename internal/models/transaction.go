package models

// Me is the sentinel payer/friend identifier for the account owner.
const Me = "me"

// Transaction represents a single shared expense or settlement between the
// account owner and one friend. Exactly one of PayerID/FriendID is Me in a
// well-formed transaction.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string `json:"id"`

	// OwnerID is the account this transaction belongs to. Never exposed on
	// the wire; every query is already scoped to the authenticated user.
	OwnerID string `json:"-"`

	// Title is the human-readable name for the transaction.
	Title string `json:"title"`

	// Amount is the positive monetary value. Currency-agnostic; the whole
	// ledger is assumed to be in one currency.
	Amount float64 `json:"amount"`

	// Date is the ISO-8601 timestamp used for ordering and recency.
	Date string `json:"date"`

	// Type is the category label ("Meal", "Poker", ...) or a free-form
	// user-defined string. Ignored for balance math on settlements but
	// still stored.
	Type string `json:"type"`

	// PayerID is who paid: Me or a friend ID.
	PayerID string `json:"payerId"`

	// FriendID is the other party: Me or a friend ID.
	FriendID string `json:"friendId"`

	// IsSettlement marks a balance-clearing payment rather than a new
	// shared expense.
	IsSettlement bool `json:"isSettlement"`

	// Note is optional free text, not used in any computation.
	Note string `json:"note,omitempty"`

	// CreatedAt is the Unix timestamp when the record was created.
	CreatedAt int64 `json:"createdAt"`
}
