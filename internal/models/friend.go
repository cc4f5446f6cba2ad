package models

// Friend status values for the derived view.
const (
	StatusSettled = "settled"
	StatusActive  = "active"
)

// Friend is a stored friend record. Balances are deliberately absent: they
// are derived from the transaction list, never persisted.
type Friend struct {
	// ID is the unique identifier for the friend (UUID format).
	ID string `json:"id"`

	// OwnerID is the account this friend belongs to.
	OwnerID string `json:"-"`

	// Name is the friend's display name.
	Name string `json:"name"`

	// Handle is the friend's short handle (e.g. "@sarahj").
	Handle string `json:"handle,omitempty"`

	// Avatar is an optional avatar URL.
	Avatar string `json:"avatar,omitempty"`

	// CreatedAt is the Unix timestamp when the record was created.
	CreatedAt int64 `json:"createdAt"`
}

// FriendView is a Friend plus the fields derived from the transaction list.
// It is recomputed on every read and never stored, so the invariant
// Balance == FriendBalance(ID, allTransactions) always holds.
type FriendView struct {
	Friend

	// Balance is signed: positive means the friend owes the user, negative
	// means the user owes the friend.
	Balance float64 `json:"balance"`

	// LastActivity is the human-readable recency string ("Today", "Never").
	LastActivity string `json:"lastActivity"`

	// Status is StatusSettled when Balance is within tolerance of zero,
	// else StatusActive.
	Status string `json:"status"`
}
