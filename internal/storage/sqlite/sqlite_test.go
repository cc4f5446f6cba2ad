package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/squareone-app/backend/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "squareone-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestSQLiteStore_Transactions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateTransaction generates ID and timestamp", func(t *testing.T) {
		tx := &models.Transaction{
			OwnerID: "u1",
			Title:   "Pizza Night",
			Amount:  45.00,
			Date:    "2023-10-24T19:30:00Z",
			Type:    "Meal",
			PayerID: models.Me,
			FriendID: "f1",
			Note:    "large pepperoni",
		}

		if err := store.CreateTransaction(ctx, tx); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}

		if tx.ID == "" {
			t.Error("Expected transaction ID to be generated")
		}
		if tx.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("ListTransactions returns newest first and round-trips fields", func(t *testing.T) {
		settle := &models.Transaction{
			OwnerID:      "u1",
			Title:        "Settle up",
			Amount:       32.50,
			Date:         "2023-10-25T09:00:00Z",
			Type:         "Settlement",
			PayerID:      "f1",
			FriendID:     models.Me,
			IsSettlement: true,
		}
		if err := store.CreateTransaction(ctx, settle); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}

		txs, err := store.ListTransactions(ctx, "u1")
		if err != nil {
			t.Fatalf("ListTransactions failed: %v", err)
		}
		if len(txs) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(txs))
		}

		if txs[0].ID != settle.ID {
			t.Errorf("expected newest transaction first, got %s", txs[0].ID)
		}
		if !txs[0].IsSettlement {
			t.Error("IsSettlement flag lost in round trip")
		}
		if txs[1].Note != "large pepperoni" {
			t.Errorf("Note mismatch: got %q", txs[1].Note)
		}
	})

	t.Run("ListTransactions scopes by owner", func(t *testing.T) {
		txs, err := store.ListTransactions(ctx, "someone-else")
		if err != nil {
			t.Fatalf("ListTransactions failed: %v", err)
		}
		if len(txs) != 0 {
			t.Errorf("expected no transactions for other owner, got %d", len(txs))
		}
	})

	t.Run("DeleteTransaction", func(t *testing.T) {
		tx := &models.Transaction{
			OwnerID: "u1", Title: "Taco Bell", Amount: 12.50,
			Date: "2023-10-24T12:00:00Z", Type: "Meal", PayerID: "f1", FriendID: models.Me,
		}
		if err := store.CreateTransaction(ctx, tx); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}

		if err := store.DeleteTransaction(ctx, "u1", tx.ID); err != nil {
			t.Fatalf("DeleteTransaction failed: %v", err)
		}
		if err := store.DeleteTransaction(ctx, "u1", tx.ID); err == nil {
			t.Error("expected error deleting missing transaction")
		}
		if err := store.DeleteTransaction(ctx, "other", "whatever"); err == nil {
			t.Error("expected error deleting with wrong owner")
		}
	})
}

func TestSQLiteStore_Friends(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	friend := &models.Friend{
		OwnerID: "u1",
		Name:    "Sarah Jenkins",
		Handle:  "@sarahj",
	}

	t.Run("CreateFriend and GetFriend", func(t *testing.T) {
		if err := store.CreateFriend(ctx, friend); err != nil {
			t.Fatalf("CreateFriend failed: %v", err)
		}
		if friend.ID == "" {
			t.Fatal("Expected friend ID to be generated")
		}

		got, err := store.GetFriend(ctx, "u1", friend.ID)
		if err != nil {
			t.Fatalf("GetFriend failed: %v", err)
		}
		if got.Name != "Sarah Jenkins" || got.Handle != "@sarahj" {
			t.Errorf("friend mismatch: %+v", got)
		}

		if _, err := store.GetFriend(ctx, "other", friend.ID); err == nil {
			t.Error("expected error fetching friend with wrong owner")
		}
	})

	t.Run("ListFriends orders by name", func(t *testing.T) {
		second := &models.Friend{OwnerID: "u1", Name: "Mike Ross"}
		if err := store.CreateFriend(ctx, second); err != nil {
			t.Fatalf("CreateFriend failed: %v", err)
		}

		friends, err := store.ListFriends(ctx, "u1")
		if err != nil {
			t.Fatalf("ListFriends failed: %v", err)
		}
		if len(friends) != 2 {
			t.Fatalf("expected 2 friends, got %d", len(friends))
		}
		if friends[0].Name != "Mike Ross" || friends[1].Name != "Sarah Jenkins" {
			t.Errorf("friends out of order: %s, %s", friends[0].Name, friends[1].Name)
		}
	})

	t.Run("UpdateFriend", func(t *testing.T) {
		friend.Name = "Sarah J."
		if err := store.UpdateFriend(ctx, friend); err != nil {
			t.Fatalf("UpdateFriend failed: %v", err)
		}

		got, err := store.GetFriend(ctx, "u1", friend.ID)
		if err != nil {
			t.Fatalf("GetFriend failed: %v", err)
		}
		if got.Name != "Sarah J." {
			t.Errorf("Name = %q, want %q", got.Name, "Sarah J.")
		}
	})

	t.Run("DeleteFriend removes their transactions too", func(t *testing.T) {
		tx := &models.Transaction{
			OwnerID: "u1", Title: "Lunch", Amount: 10,
			Date: "2023-10-24T12:00:00Z", Type: "Meal", PayerID: models.Me, FriendID: friend.ID,
		}
		if err := store.CreateTransaction(ctx, tx); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}

		if err := store.DeleteFriend(ctx, "u1", friend.ID); err != nil {
			t.Fatalf("DeleteFriend failed: %v", err)
		}

		if _, err := store.GetFriend(ctx, "u1", friend.ID); err == nil {
			t.Error("expected friend to be gone")
		}
		txs, err := store.ListTransactions(ctx, "u1")
		if err != nil {
			t.Fatalf("ListTransactions failed: %v", err)
		}
		for _, tx := range txs {
			if tx.PayerID == friend.ID || tx.FriendID == friend.ID {
				t.Errorf("transaction %s still references deleted friend", tx.ID)
			}
		}
	})
}

func TestSQLiteStore_Users(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewUser("alex@squareone.app", "Alex", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	byEmail, err := store.GetUserByEmail(ctx, "alex@squareone.app")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if byEmail == nil || byEmail.ID != user.ID {
		t.Errorf("GetUserByEmail = %+v, want user %s", byEmail, user.ID)
	}

	byID, err := store.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if byID == nil || byID.Email != "alex@squareone.app" {
		t.Errorf("GetUserByID = %+v", byID)
	}

	missing, err := store.GetUserByEmail(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing user, got %+v", missing)
	}

	if err := store.CreateUser(ctx, models.NewUser("alex@squareone.app", "Dup", "hash")); err == nil {
		t.Error("expected unique email constraint violation")
	}
}
