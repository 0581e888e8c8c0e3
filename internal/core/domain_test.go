package core

import "testing"

func TestKindValidate(t *testing.T) {
	if err := Income.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := Expense.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := Kind("transfer").Validate(); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestDraftValidate(t *testing.T) {
	good := Draft{
		Kind:        Expense,
		Description: "Lunch",
		Amount:      12.50,
		Category:    "Food & Dining",
		OccurredOn:  "2024-05-01",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Draft{
		{Kind: "wire", Description: "a", Amount: 1, Category: "c", OccurredOn: "2024-05-01"},
		{Kind: Expense, Description: "", Amount: 1, Category: "c", OccurredOn: "2024-05-01"},
		{Kind: Expense, Description: "   ", Amount: 1, Category: "c", OccurredOn: "2024-05-01"},
		{Kind: Expense, Description: "a", Amount: 0, Category: "c", OccurredOn: "2024-05-01"},
		{Kind: Expense, Description: "a", Amount: -5, Category: "c", OccurredOn: "2024-05-01"},
		{Kind: Expense, Description: "a", Amount: 1, Category: "", OccurredOn: "2024-05-01"},
		{Kind: Expense, Description: "a", Amount: 1, Category: "c", OccurredOn: "01/05/2024"},
		{Kind: Expense, Description: "a", Amount: 1, Category: "c", OccurredOn: ""},
	}
	for i, d := range bads {
		if err := d.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestDraftNormalize(t *testing.T) {
	d := Draft{
		Kind:        Income,
		Description: "  Salary  ",
		Amount:      100,
		Category:    " Work ",
		OccurredOn:  " 2024-01-01 ",
	}
	d.Normalize()
	if d.Description != "Salary" || d.Category != "Work" || d.OccurredOn != "2024-01-01" {
		t.Fatalf("normalize left whitespace: %+v", d)
	}
}
