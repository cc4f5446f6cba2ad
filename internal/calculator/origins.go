package calculator

import (
	"math"
	"sort"
)

// ChartSlice is one wedge of the debt-origins chart.
type ChartSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"` // integer percentage of the grand total
	Color string `json:"color"`
}

// typeColors maps transaction types to their display colors. Custom types
// fall back to the General color. Every type is its own category; nothing is
// merged into umbrella buckets.
var typeColors = map[string]string{
	"Meal":      "#FF4D4D",
	"Transport": "#FFDE59",
	"Groceries": "#5CE1E6",
	"Poker":     "#C3F53C",
	"Movies":    "#B28DFF",
	"Loan":      "#FFA552",
	"Shopping":  "#FF90E8",
	"General":   "#A6A6A6",
}

// defaultType supplies the fallback color for unknown types.
const defaultType = "General"

func colorFor(txType string) string {
	if c, ok := typeColors[txType]; ok {
		return c
	}
	return typeColors[defaultType]
}

// DebtOrigins groups non-settlement transactions by type and converts each
// group's total into an integer percentage of the grand total. Zero-percent
// groups are dropped and the result is sorted by descending percentage, ties
// keeping first-seen order. Because each percentage rounds independently the
// values may not sum to exactly 100.
//
// Returns an empty slice when there are no non-settlement transactions;
// callers treat that as "no chart data".
func DebtOrigins(txs []Transaction) []ChartSlice {
	totals := make(map[string]float64)
	var order []string // first-seen type order, for stable ties

	for _, tx := range txs {
		if tx.IsSettlement {
			continue
		}
		if _, seen := totals[tx.Type]; !seen {
			order = append(order, tx.Type)
		}
		totals[tx.Type] += tx.Amount
	}

	var grand float64
	for _, amount := range totals {
		grand += amount
	}

	slices := make([]ChartSlice, 0, len(order))
	if grand == 0 {
		return slices
	}

	for _, txType := range order {
		value := int(math.Round(totals[txType] / grand * 100))
		if value <= 0 {
			continue
		}
		slices = append(slices, ChartSlice{
			Name:  txType,
			Value: value,
			Color: colorFor(txType),
		})
	}

	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Value > slices[j].Value
	})
	return slices
}
