package core

import "sort"

// Summary aggregates a user's full transaction set into headline totals.
// It is derived on demand and never stored.
type Summary struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	Balance       float64 `json:"balance"`
}

// CategoryShare is one row of an expense breakdown: the summed amount for a
// category and its share of total expenses.
type CategoryShare struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// Summarize computes income/expense totals and the signed balance.
// Amounts are added as plain floats; rounding is a presentation concern.
func Summarize(transactions []Transaction) Summary {
	var s Summary
	for _, t := range transactions {
		switch t.Kind {
		case Income:
			s.TotalIncome += t.Amount
		case Expense:
			s.TotalExpenses += t.Amount
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpenses
	return s
}

// BreakdownByCategory groups expense transactions by exact category string
// and reports per-category sums with their percentage of total expenses.
// Rows are sorted by amount descending; ties keep first-encountered order.
// With no expenses it returns an empty list, so the percentage division
// never sees a zero total.
func BreakdownByCategory(transactions []Transaction) []CategoryShare {
	totals := make(map[string]float64)
	var order []string
	var totalExpenses float64

	for _, t := range transactions {
		if t.Kind != Expense {
			continue
		}
		if _, seen := totals[t.Category]; !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] += t.Amount
		totalExpenses += t.Amount
	}
	if len(order) == 0 {
		return []CategoryShare{}
	}

	shares := make([]CategoryShare, 0, len(order))
	for _, category := range order {
		amount := totals[category]
		shares = append(shares, CategoryShare{
			Category:   category,
			Amount:     amount,
			Percentage: 100 * amount / totalExpenses,
		})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Amount > shares[j].Amount
	})
	return shares
}
