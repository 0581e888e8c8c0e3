package core

import (
	"math"
	"testing"
)

func tx(kind Kind, category string, amount float64) Transaction {
	return Transaction{Kind: kind, Category: category, Amount: amount}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalIncome != 0 || s.TotalExpenses != 0 || s.Balance != 0 {
		t.Fatalf("expected zero summary, got %+v", s)
	}
}

func TestSummarize(t *testing.T) {
	set := []Transaction{
		tx(Income, "Salary", 1000),
		tx(Expense, "Food & Dining", 12.50),
		tx(Expense, "Transport", 30),
		tx(Income, "Freelance", 250.25),
	}
	s := Summarize(set)
	if s.TotalIncome != 1250.25 {
		t.Fatalf("income = %v", s.TotalIncome)
	}
	if s.TotalExpenses != 42.50 {
		t.Fatalf("expenses = %v", s.TotalExpenses)
	}
	if s.Balance != s.TotalIncome-s.TotalExpenses {
		t.Fatalf("balance %v != income-expenses %v", s.Balance, s.TotalIncome-s.TotalExpenses)
	}
}

func TestSummarizeNegativeBalance(t *testing.T) {
	s := Summarize([]Transaction{
		tx(Income, "Salary", 10),
		tx(Expense, "Rent", 100),
	})
	if s.Balance != -90 {
		t.Fatalf("balance = %v, want -90", s.Balance)
	}
}

func TestBreakdownNoExpenses(t *testing.T) {
	shares := BreakdownByCategory([]Transaction{tx(Income, "Salary", 100)})
	if len(shares) != 0 {
		t.Fatalf("expected empty breakdown, got %v", shares)
	}
}

func TestBreakdownSingleExpense(t *testing.T) {
	shares := BreakdownByCategory([]Transaction{tx(Expense, "Food & Dining", 12.50)})
	if len(shares) != 1 {
		t.Fatalf("expected 1 row, got %d", len(shares))
	}
	row := shares[0]
	if row.Category != "Food & Dining" || row.Amount != 12.50 || row.Percentage != 100 {
		t.Fatalf("unexpected row: %+v", row)
	}
}

func TestBreakdownGroupingAndOrder(t *testing.T) {
	set := []Transaction{
		tx(Expense, "Food", 10),
		tx(Expense, "Transport", 50),
		tx(Expense, "Food", 15),
		tx(Income, "Salary", 9999),
		tx(Expense, "Fun", 25),
	}
	shares := BreakdownByCategory(set)
	if len(shares) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(shares))
	}
	want := []string{"Transport", "Fun", "Food"}
	for i, c := range want {
		if shares[i].Category != c {
			t.Fatalf("row %d = %s, want %s", i, shares[i].Category, c)
		}
	}

	// Every expense must be accounted for and percentages sum to ~100.
	var sumAmount, sumPct float64
	for _, s := range shares {
		sumAmount += s.Amount
		sumPct += s.Percentage
	}
	if sumAmount != Summarize(set).TotalExpenses {
		t.Fatalf("breakdown sum %v != total expenses %v", sumAmount, Summarize(set).TotalExpenses)
	}
	if math.Abs(sumPct-100) > 1e-9 {
		t.Fatalf("percentages sum to %v", sumPct)
	}
}

func TestBreakdownTieKeepsFirstEncountered(t *testing.T) {
	shares := BreakdownByCategory([]Transaction{
		tx(Expense, "B", 20),
		tx(Expense, "A", 20),
	})
	if shares[0].Category != "B" || shares[1].Category != "A" {
		t.Fatalf("tie order broken: %+v", shares)
	}
}

func TestBreakdownCategoriesAreCaseSensitive(t *testing.T) {
	shares := BreakdownByCategory([]Transaction{
		tx(Expense, "food", 10),
		tx(Expense, "Food", 10),
	})
	if len(shares) != 2 {
		t.Fatalf("expected case-sensitive grouping, got %+v", shares)
	}
}
