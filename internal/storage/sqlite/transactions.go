package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/squareone-app/backend/internal/models"
)

// CreateTransaction persists a new transaction to the database.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	// Generate ID if not set
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if tx.CreatedAt == 0 {
		tx.CreatedAt = time.Now().Unix()
	}

	var note interface{}
	if tx.Note != "" {
		note = tx.Note
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (id, owner_id, title, amount, date, type, payer_id, friend_id, is_settlement, note, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.ID, tx.OwnerID, tx.Title, tx.Amount, tx.Date, tx.Type,
		tx.PayerID, tx.FriendID, boolToInt(tx.IsSettlement), note, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// ListTransactions returns the owner's full transaction list, newest first.
func (s *SQLiteStore) ListTransactions(ctx context.Context, ownerID string) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, owner_id, title, amount, date, type, payer_id, friend_id, is_settlement, note, created_at
		 FROM transactions WHERE owner_id = ? ORDER BY date DESC, created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txs []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		var isSettlement int
		var note sql.NullString

		if err := rows.Scan(&tx.ID, &tx.OwnerID, &tx.Title, &tx.Amount, &tx.Date, &tx.Type,
			&tx.PayerID, &tx.FriendID, &isSettlement, &note, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		tx.IsSettlement = isSettlement != 0
		if note.Valid {
			tx.Note = note.String
		}
		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return txs, nil
}

// DeleteTransaction removes a transaction by ID, scoped to the owner.
func (s *SQLiteStore) DeleteTransaction(ctx context.Context, ownerID, txID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM transactions WHERE id = ? AND owner_id = ?",
		txID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("transaction not found: %s", txID)
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
