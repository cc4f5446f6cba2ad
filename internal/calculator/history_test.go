package calculator

import (
	"testing"
	"time"
)

func TestGroupByDate(t *testing.T) {
	now := time.Date(2023, time.October, 26, 15, 0, 0, 0, time.UTC)

	tx := func(id, date string) Transaction {
		return Transaction{ID: id, Amount: 10, Date: date, Type: "Meal", PayerID: Me, FriendID: "f1"}
	}

	txs := []Transaction{
		tx("old", "2023-08-15T12:00:00"),
		tx("today-am", "2023-10-26T08:00:00"),
		tx("month", "2023-10-05T12:00:00"),
		tx("yesterday", "2023-10-25T19:00:00"),
		tx("week", "2023-10-22T12:00:00"),
		tx("today-pm", "2023-10-26T13:00:00"),
		tx("broken", "not-a-date"),
	}

	groups := groupByDateAt(txs, now)

	wantLabels := []string{"Today", "Yesterday", "This Week", "This Month", "August 2023"}
	if len(groups) != len(wantLabels) {
		t.Fatalf("got %d groups, want %d: %+v", len(groups), len(wantLabels), groups)
	}
	for i, want := range wantLabels {
		if groups[i].Label != want {
			t.Errorf("group %d label = %q, want %q", i, groups[i].Label, want)
		}
	}

	// Newest first within a group.
	today := groups[0].Transactions
	if len(today) != 2 || today[0].ID != "today-pm" || today[1].ID != "today-am" {
		t.Errorf("Today group out of order: %+v", today)
	}

	// The invalid date is dropped entirely.
	for _, g := range groups {
		for _, tx := range g.Transactions {
			if tx.ID == "broken" {
				t.Error("transaction with invalid date should be skipped")
			}
		}
	}
}

func TestGroupByDate_Empty(t *testing.T) {
	if groups := GroupByDate(nil); len(groups) != 0 {
		t.Errorf("GroupByDate(nil) = %+v, want empty", groups)
	}
}
