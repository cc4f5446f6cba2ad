package calculator

import "testing"

func TestDebtOrigins(t *testing.T) {
	tests := []struct {
		name string
		txs  []Transaction
		want []ChartSlice
	}{
		{
			name: "even split between two types",
			txs: []Transaction{
				{ID: "t1", Amount: 100, Type: "Meal", PayerID: Me, FriendID: "f1"},
				{ID: "t2", Amount: 100, Type: "Loan", PayerID: Me, FriendID: "f2"},
			},
			want: []ChartSlice{
				{Name: "Meal", Value: 50, Color: "#FF4D4D"},
				{Name: "Loan", Value: 50, Color: "#FFA552"},
			},
		},
		{
			name: "sorted descending by percentage",
			txs: []Transaction{
				{ID: "t1", Amount: 25, Type: "Transport", PayerID: Me, FriendID: "f1"},
				{ID: "t2", Amount: 75, Type: "Meal", PayerID: Me, FriendID: "f1"},
			},
			want: []ChartSlice{
				{Name: "Meal", Value: 75, Color: "#FF4D4D"},
				{Name: "Transport", Value: 25, Color: "#FFDE59"},
			},
		},
		{
			name: "settlements are excluded",
			txs: []Transaction{
				{ID: "t1", Amount: 40, Type: "Poker", PayerID: Me, FriendID: "f1"},
				{ID: "t2", Amount: 40, Type: "Settlement", PayerID: "f1", FriendID: Me, IsSettlement: true},
			},
			want: []ChartSlice{
				{Name: "Poker", Value: 100, Color: "#C3F53C"},
			},
		},
		{
			name: "custom type falls back to the General color",
			txs: []Transaction{
				{ID: "t1", Amount: 10, Type: "Karaoke", PayerID: Me, FriendID: "f1"},
			},
			want: []ChartSlice{
				{Name: "Karaoke", Value: 100, Color: "#A6A6A6"},
			},
		},
		{
			name: "tiny share rounds to zero and is dropped",
			txs: []Transaction{
				{ID: "t1", Amount: 1000, Type: "Loan", PayerID: Me, FriendID: "f1"},
				{ID: "t2", Amount: 1, Type: "Meal", PayerID: Me, FriendID: "f1"},
			},
			want: []ChartSlice{
				{Name: "Loan", Value: 100, Color: "#FFA552"},
			},
		},
		{
			name: "only settlements means no chart data",
			txs: []Transaction{
				{ID: "t1", Amount: 40, Type: "Settlement", PayerID: "f1", FriendID: Me, IsSettlement: true},
			},
			want: []ChartSlice{},
		},
		{
			name: "no transactions",
			txs:  nil,
			want: []ChartSlice{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DebtOrigins(tt.txs)
			if len(got) != len(tt.want) {
				t.Fatalf("DebtOrigins() returned %d slices, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("slice %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDebtOrigins_TieKeepsInsertionOrder(t *testing.T) {
	txs := []Transaction{
		{ID: "t1", Amount: 50, Type: "Shopping", PayerID: Me, FriendID: "f1"},
		{ID: "t2", Amount: 50, Type: "Meal", PayerID: Me, FriendID: "f1"},
	}

	got := DebtOrigins(txs)
	if len(got) != 2 {
		t.Fatalf("expected 2 slices, got %d", len(got))
	}
	// Equal percentages: Shopping appeared first, so it stays first.
	if got[0].Name != "Shopping" || got[1].Name != "Meal" {
		t.Errorf("tie order = [%s, %s], want [Shopping, Meal]", got[0].Name, got[1].Name)
	}
}

func TestDebtOrigins_RoundingMayNotSumTo100(t *testing.T) {
	// Three equal thirds each round to 33; the total being 99 is accepted
	// behavior, not a bug.
	txs := []Transaction{
		{ID: "t1", Amount: 10, Type: "Meal", PayerID: Me, FriendID: "f1"},
		{ID: "t2", Amount: 10, Type: "Transport", PayerID: Me, FriendID: "f1"},
		{ID: "t3", Amount: 10, Type: "Poker", PayerID: Me, FriendID: "f1"},
	}

	got := DebtOrigins(txs)
	sum := 0
	for _, s := range got {
		if s.Value != 33 {
			t.Errorf("%s = %d%%, want 33%%", s.Name, s.Value)
		}
		sum += s.Value
	}
	if sum != 99 {
		t.Errorf("percentage sum = %d, want 99", sum)
	}
}
