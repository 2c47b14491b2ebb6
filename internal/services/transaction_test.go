package services

import (
	"context"
	"testing"
	"time"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/internal/models"
	"github.com/GregMSThompson/expense-tracker/pkg/helpers"
)

func TestCreateTransaction(t *testing.T) {
	store := &fakeTxStore{}
	svc := NewTransactionService(store)

	view, err := svc.Create(context.Background(), "uid1", dto.CreateTransactionRequest{
		Amount:      250,
		Date:        "2024-03-05",
		Type:        "expense",
		Payee:       "Swiggy",
		ExpenseType: "Food",
		NeedsWants:  "Wants",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if len(store.created) != 1 {
		t.Fatalf("expected one stored transaction, got %d", len(store.created))
	}
	stored := store.created[0]
	if stored.TransactionID == "" {
		t.Fatal("expected a generated transaction id")
	}
	if stored.User != "uid1" {
		t.Fatalf("owner mismatch: %q", stored.User)
	}
	want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)
	if !stored.Date.Equal(want) {
		t.Fatalf("date mismatch: %v", stored.Date)
	}
	if view.CategoryLabel != "Food" || view.NeedsWantsLabel != "Wants" {
		t.Fatalf("view labels mismatch: %q/%q", view.CategoryLabel, view.NeedsWantsLabel)
	}
}

func TestCreateTransactionDateDefaultsToNow(t *testing.T) {
	now := time.Date(2024, 3, 20, 9, 30, 0, 0, time.Local)
	store := &fakeTxStore{}
	svc := NewTransactionService(store)
	svc.clockNow = func() time.Time { return now }

	_, err := svc.Create(context.Background(), "uid1", dto.CreateTransactionRequest{
		Amount: 10,
		Type:   "expense",
		Payee:  "Chai",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !store.created[0].Date.Equal(now) {
		t.Fatalf("expected current time fallback, got %v", store.created[0].Date)
	}
}

func TestCreateTransactionValidation(t *testing.T) {
	svc := NewTransactionService(&fakeTxStore{})

	cases := []dto.CreateTransactionRequest{
		{Amount: 0, Type: "expense", Payee: "x"},
		{Amount: -5, Type: "expense", Payee: "x"},
		{Amount: 10, Type: "refund", Payee: "x"},
		{Amount: 10, Type: "expense"},
	}
	for i, req := range cases {
		_, err := svc.Create(context.Background(), "uid1", req)
		if _, ok := err.(*errs.ValidationError); !ok {
			t.Fatalf("case %d: expected ValidationError, got %T", i, err)
		}
	}
}

func TestUpdateTransactionPatchesOnlyProvidedFields(t *testing.T) {
	store := &fakeTxStore{
		txs: []*models.Transaction{{
			TransactionID: "t1",
			Amount:        100,
			Type:          models.TypeExpense,
			Payee:         "Swiggy",
			ExpenseType:   "Food",
			Remarks:       "lunch",
			User:          "uid1",
			Date:          marchDate(1),
		}},
	}
	svc := NewTransactionService(store)

	view, err := svc.Update(context.Background(), "uid1", "t1", dto.UpdateTransactionRequest{
		Amount:  helpers.Ptr(150.0),
		Remarks: helpers.Ptr(""),
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if view.Amount != 150 {
		t.Fatalf("amount not patched: %v", view.Amount)
	}
	if view.Remarks != "" {
		t.Fatalf("remarks should be cleared: %q", view.Remarks)
	}
	if view.Payee != "Swiggy" || view.ExpenseType != "Food" {
		t.Fatalf("untouched fields changed: %+v", view.Transaction)
	}
	if len(store.updated) != 1 {
		t.Fatalf("expected one update, got %d", len(store.updated))
	}
}

func TestUpdateTransactionNotFound(t *testing.T) {
	svc := NewTransactionService(&fakeTxStore{})

	_, err := svc.Update(context.Background(), "uid1", "missing", dto.UpdateTransactionRequest{})
	if _, ok := err.(*errs.NotFoundError); !ok {
		t.Fatalf("expected NotFoundError, got %T", err)
	}
}

func TestUpdateTransactionRejectsBadPatch(t *testing.T) {
	store := &fakeTxStore{
		txs: []*models.Transaction{{TransactionID: "t1", Amount: 100, Type: models.TypeExpense, Payee: "x", Date: marchDate(1)}},
	}
	svc := NewTransactionService(store)

	cases := []dto.UpdateTransactionRequest{
		{Amount: helpers.Ptr(0.0)},
		{Type: helpers.Ptr("refund")},
		{Date: helpers.Ptr("bogus")},
	}
	for i, req := range cases {
		_, err := svc.Update(context.Background(), "uid1", "t1", req)
		if _, ok := err.(*errs.ValidationError); !ok {
			t.Fatalf("case %d: expected ValidationError, got %T", i, err)
		}
	}
	if len(store.updated) != 0 {
		t.Fatal("rejected patches must not reach the store")
	}
}

func TestDeleteTransaction(t *testing.T) {
	store := &fakeTxStore{
		txs: []*models.Transaction{{TransactionID: "t1", Date: marchDate(1)}},
	}
	svc := NewTransactionService(store)

	if err := svc.Delete(context.Background(), "uid1", "t1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "t1" {
		t.Fatalf("delete not forwarded: %v", store.deleted)
	}

	err := svc.Delete(context.Background(), "uid1", "missing")
	if _, ok := err.(*errs.NotFoundError); !ok {
		t.Fatalf("expected NotFoundError, got %T", err)
	}
}

func TestListByUserMostRecentFirst(t *testing.T) {
	store := &fakeTxStore{
		txs: []*models.Transaction{
			{TransactionID: "old", Type: models.TypeExpense, Date: marchDate(1)},
			{TransactionID: "new", Type: models.TypeExpense, Date: marchDate(10)},
		},
	}
	svc := NewTransactionService(store)

	got, err := svc.ListByUser(context.Background(), "uid1", 0)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 2 || got[0].TransactionID != "new" {
		t.Fatalf("ordering mismatch: %+v", got)
	}
}

func TestSuggestionsRankedByFrequency(t *testing.T) {
	store := &fakeTxStore{
		txs: []*models.Transaction{
			{TransactionID: "1", Payee: "Swiggy", ExpenseType: "Food", Mode: "UPI", Date: marchDate(1)},
			{TransactionID: "2", Payee: "Swiggy", ExpenseType: "Food", Mode: "UPI", Date: marchDate(2)},
			{TransactionID: "3", Payee: "Uber", ExpenseType: "Travel", Mode: "Card A", Date: marchDate(3)},
			{TransactionID: "4", Payee: "Swiggy", Date: marchDate(4)},
		},
	}
	svc := NewTransactionService(store)

	got, err := svc.Suggestions(context.Background(), "uid1")
	if err != nil {
		t.Fatalf("Suggestions error: %v", err)
	}

	if len(got.Payees) != 2 || got.Payees[0] != "Swiggy" {
		t.Fatalf("payees mismatch: %v", got.Payees)
	}
	if len(got.ExpenseTypes) != 2 || got.ExpenseTypes[0] != "Food" {
		t.Fatalf("expenseTypes mismatch: %v", got.ExpenseTypes)
	}
	if len(got.Modes) != 2 || got.Modes[0] != "UPI" {
		t.Fatalf("modes mismatch: %v", got.Modes)
	}
}

func TestTrendsGroupsByMonthAndType(t *testing.T) {
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.Local)
	store := &fakeTxStore{
		txs: []*models.Transaction{
			{TransactionID: "1", Type: models.TypeExpense, Amount: 100, ExpenseType: "Food", Date: marchDate(1)},
			{TransactionID: "2", Type: models.TypeExpense, Amount: 50, ExpenseType: "Food", Date: marchDate(2)},
			{TransactionID: "3", Type: models.TypeIncome, Amount: 1000, Date: marchDate(3)},
			{TransactionID: "4", Type: models.TypeExpense, Amount: 75, ExpenseType: "Travel", Date: time.Date(2024, 2, 10, 0, 0, 0, 0, time.Local)},
			// too old, outside the six-month window
			{TransactionID: "5", Type: models.TypeExpense, Amount: 999, Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.Local)},
		},
	}
	svc := NewTransactionService(store)
	svc.clockNow = func() time.Time { return now }

	got, err := svc.Trends(context.Background(), "uid1")
	if err != nil {
		t.Fatalf("Trends error: %v", err)
	}

	if got.Period != "Last 6 months" {
		t.Fatalf("period mismatch: %q", got.Period)
	}

	// feb/expense, mar/expense, mar/income
	if len(got.Trends) != 3 {
		t.Fatalf("trend points mismatch: %+v", got.Trends)
	}
	first := got.Trends[0]
	if first.Year != 2024 || first.Month != 2 || first.Type != "expense" || first.TotalAmount != 75 {
		t.Fatalf("first point mismatch: %+v", first)
	}
	for _, point := range got.Trends {
		if point.Year == 2024 && point.Month == 3 && point.Type == "expense" {
			if point.TotalAmount != 150 || point.Count != 2 {
				t.Fatalf("march expense point mismatch: %+v", point)
			}
		}
	}

	if len(got.CategorySpending) != 2 {
		t.Fatalf("category spending mismatch: %+v", got.CategorySpending)
	}
	if got.CategorySpending[0].ExpenseType != "Food" || got.CategorySpending[0].TotalAmount != 150 {
		t.Fatalf("top category mismatch: %+v", got.CategorySpending[0])
	}
}

func TestTransactionServiceRejectsInvalidUser(t *testing.T) {
	svc := NewTransactionService(&fakeTxStore{})

	if _, err := svc.Create(context.Background(), "bad/uid", dto.CreateTransactionRequest{Amount: 1, Type: "expense", Payee: "x"}); err == nil {
		t.Fatal("expected error")
	}
	if _, err := svc.ListByUser(context.Background(), "bad/uid", 0); err == nil {
		t.Fatal("expected error")
	}
	if err := svc.Delete(context.Background(), "bad/uid", "t1"); err == nil {
		t.Fatal("expected error")
	}
}
