// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/squareone-app/backend/internal/models"
)

// Store defines the interface for ledger storage operations. This
// abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
//
// Note what is absent: there is no way to write a balance. Balances are
// derived from ListTransactions by the service layer on every read.
type Store interface {
	// CreateTransaction persists a new transaction. ID and CreatedAt are
	// populated by the store when unset.
	CreateTransaction(ctx context.Context, tx *models.Transaction) error

	// ListTransactions returns the owner's full transaction list, newest
	// first.
	ListTransactions(ctx context.Context, ownerID string) ([]models.Transaction, error)

	// DeleteTransaction removes a transaction by ID. Returns an error when
	// the transaction does not exist or belongs to another owner.
	DeleteTransaction(ctx context.Context, ownerID, txID string) error

	// CreateFriend persists a new friend record.
	CreateFriend(ctx context.Context, friend *models.Friend) error

	// GetFriend retrieves one of the owner's friends by ID.
	GetFriend(ctx context.Context, ownerID, friendID string) (*models.Friend, error)

	// ListFriends returns the owner's friends ordered by name.
	ListFriends(ctx context.Context, ownerID string) ([]models.Friend, error)

	// UpdateFriend updates a friend's display fields.
	UpdateFriend(ctx context.Context, friend *models.Friend) error

	// DeleteFriend removes a friend and all transactions involving them.
	DeleteFriend(ctx context.Context, ownerID, friendID string) error

	// User operations, used by the auth layer.
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Close releases any resources held by the store.
	Close() error
}
