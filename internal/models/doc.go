// Package models defines the core domain models for SquareOne.
//
// # Models
//
//   - Transaction: an immutable shared expense or settlement between the
//     account owner ("me") and one friend
//   - Friend: a stored friend record; FriendView adds the derived balance
//   - User: a registered account
//
// # Design Principles
//
// 1. **Transactions are facts**: they are created and deleted, never
// mutated. Edits are modeled as delete + recreate by the caller.
//
// 2. **Balances are views**: Friend never stores a balance. FriendView is
// recomputed from the full transaction list on every read, so a stale
// cached balance cannot exist.
//
// 3. **Avoid circular references**: relationships use ID strings instead of
// pointers.
package models
