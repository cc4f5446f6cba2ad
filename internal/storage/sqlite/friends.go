package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/squareone-app/backend/internal/models"
)

// CreateFriend persists a new friend record.
func (s *SQLiteStore) CreateFriend(ctx context.Context, friend *models.Friend) error {
	if friend.ID == "" {
		friend.ID = uuid.New().String()
	}
	if friend.CreatedAt == 0 {
		friend.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO friends (id, owner_id, name, handle, avatar, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		friend.ID, friend.OwnerID, friend.Name, friend.Handle, friend.Avatar, friend.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert friend: %w", err)
	}

	return nil
}

// GetFriend retrieves one of the owner's friends by ID.
func (s *SQLiteStore) GetFriend(ctx context.Context, ownerID, friendID string) (*models.Friend, error) {
	friend := &models.Friend{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, owner_id, name, handle, avatar, created_at
		 FROM friends WHERE id = ? AND owner_id = ?`,
		friendID, ownerID,
	).Scan(&friend.ID, &friend.OwnerID, &friend.Name, &friend.Handle, &friend.Avatar, &friend.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("friend not found: %s", friendID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get friend: %w", err)
	}

	return friend, nil
}

// ListFriends returns the owner's friends ordered by name.
func (s *SQLiteStore) ListFriends(ctx context.Context, ownerID string) ([]models.Friend, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, owner_id, name, handle, avatar, created_at
		 FROM friends WHERE owner_id = ? ORDER BY name`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	defer rows.Close()

	var friends []models.Friend
	for rows.Next() {
		var friend models.Friend
		if err := rows.Scan(&friend.ID, &friend.OwnerID, &friend.Name, &friend.Handle,
			&friend.Avatar, &friend.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan friend: %w", err)
		}
		friends = append(friends, friend)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate friends: %w", err)
	}

	return friends, nil
}

// UpdateFriend updates a friend's display fields.
func (s *SQLiteStore) UpdateFriend(ctx context.Context, friend *models.Friend) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE friends SET name = ?, handle = ?, avatar = ? WHERE id = ? AND owner_id = ?`,
		friend.Name, friend.Handle, friend.Avatar, friend.ID, friend.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update friend: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("friend not found: %s", friend.ID)
	}

	return nil
}

// DeleteFriend removes a friend and every transaction involving them, in one
// transaction so the ledger never references a missing friend.
func (s *SQLiteStore) DeleteFriend(ctx context.Context, ownerID, friendID string) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	res, err := dbTx.ExecContext(ctx,
		"DELETE FROM friends WHERE id = ? AND owner_id = ?",
		friendID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete friend: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("friend not found: %s", friendID)
	}

	_, err = dbTx.ExecContext(ctx,
		"DELETE FROM transactions WHERE owner_id = ? AND (payer_id = ? OR friend_id = ?)",
		ownerID, friendID, friendID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete friend's transactions: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
