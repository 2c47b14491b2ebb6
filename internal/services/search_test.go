package services

import (
	"context"
	"testing"
	"time"

	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/internal/models"
	"github.com/GregMSThompson/expense-tracker/internal/query"
)

func TestSearchTotalsAndBreakdowns(t *testing.T) {
	store := &fakeTxStore{
		txs: []*models.Transaction{
			{TransactionID: "t1", Type: models.TypeIncome, Amount: 1000, Date: marchDate(1)},
			{TransactionID: "t2", Type: models.TypeExpense, Amount: 300, Date: marchDate(2), ExpenseType: "Food"},
			{TransactionID: "t3", Type: models.TypeSaved, Amount: 200, Date: marchDate(3), ExpenseType: "RD"},
			{TransactionID: "t4", Type: models.TypeCreditCardPayment, Amount: 100, Date: marchDate(4)},
		},
	}
	svc := NewSearchService(store)

	got, err := svc.Search(context.Background(), "uid1", query.Criteria{}, 0)
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}

	if got.Count != 4 {
		t.Fatalf("count mismatch: got %d", got.Count)
	}
	// savings and card payments count as money going out
	if got.TotalExpenses != 600 || got.TotalIncome != 1000 || got.NetAmount != 400 {
		t.Fatalf("totals mismatch: expenses=%v income=%v net=%v", got.TotalExpenses, got.TotalIncome, got.NetAmount)
	}
	// category breakdown spans all returned types, not just expenses
	if got.CategoryBreakdown["Food"] != 300 || got.CategoryBreakdown["RD"] != 200 {
		t.Fatalf("categoryBreakdown mismatch: %v", got.CategoryBreakdown)
	}
	if got.TypeBreakdown["income"] != 1000 || got.TypeBreakdown["credit_card_payment"] != 100 {
		t.Fatalf("typeBreakdown mismatch: %v", got.TypeBreakdown)
	}

	if !store.lastDesc {
		t.Fatal("search should read date-descending")
	}
	if store.lastLimit != defaultSearchLimit {
		t.Fatalf("default limit mismatch: got %d", store.lastLimit)
	}
}

func TestSearchDateRangeFollowsDescendingOrder(t *testing.T) {
	store := &fakeTxStore{
		txs: []*models.Transaction{
			{TransactionID: "t1", Type: models.TypeExpense, Amount: 1, Date: marchDate(1)},
			{TransactionID: "t2", Type: models.TypeExpense, Amount: 2, Date: marchDate(20)},
		},
	}
	svc := NewSearchService(store)

	got, err := svc.Search(context.Background(), "uid1", query.Criteria{}, 0)
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}

	if got.DateRange.Latest == nil || !got.DateRange.Latest.Equal(marchDate(20)) {
		t.Fatalf("latest mismatch: %v", got.DateRange.Latest)
	}
	if got.DateRange.Earliest == nil || !got.DateRange.Earliest.Equal(marchDate(1)) {
		t.Fatalf("earliest mismatch: %v", got.DateRange.Earliest)
	}
}

func TestSearchLimitKeepsMostRecent(t *testing.T) {
	store := &fakeTxStore{
		txs: []*models.Transaction{
			{TransactionID: "old", Type: models.TypeExpense, Amount: 1, Date: marchDate(1)},
			{TransactionID: "mid", Type: models.TypeExpense, Amount: 2, Date: marchDate(10)},
			{TransactionID: "new", Type: models.TypeExpense, Amount: 3, Date: marchDate(20)},
		},
	}
	svc := NewSearchService(store)

	got, err := svc.Search(context.Background(), "uid1", query.Criteria{}, 2)
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}

	if got.Count != 2 {
		t.Fatalf("count mismatch: got %d", got.Count)
	}
	if got.Transactions[0].TransactionID != "new" || got.Transactions[1].TransactionID != "mid" {
		t.Fatalf("expected the two most recent, got %s/%s", got.Transactions[0].TransactionID, got.Transactions[1].TransactionID)
	}
}

func TestSearchEmptyResult(t *testing.T) {
	svc := NewSearchService(&fakeTxStore{})

	got, err := svc.Search(context.Background(), "uid1", query.Criteria{Search: "nothing"}, 0)
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}

	if got.Count != 0 || len(got.Transactions) != 0 {
		t.Fatalf("expected empty result: %+v", got)
	}
	if got.DateRange.Earliest != nil || got.DateRange.Latest != nil {
		t.Fatalf("empty result should have null date range: %+v", got.DateRange)
	}
	if got.Transactions == nil {
		t.Fatal("transactions should be an empty slice, not nil")
	}
}

func TestSearchRejectsBadCriteria(t *testing.T) {
	svc := NewSearchService(&fakeTxStore{})

	_, err := svc.Search(context.Background(), "uid1", query.Criteria{MinAmount: "abc"}, 0)
	if _, ok := err.(*errs.ValidationError); !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
}

func TestSearchEchoesCriteria(t *testing.T) {
	svc := NewSearchService(&fakeTxStore{})

	criteria := query.Criteria{Search: "uber", Type: "expense"}
	got, err := svc.Search(context.Background(), "uid1", criteria, 0)
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if got.SearchQuery != criteria {
		t.Fatalf("criteria echo mismatch: %+v", got.SearchQuery)
	}
}

func TestSearchByCategory(t *testing.T) {
	store := &fakeTxStore{
		txs: []*models.Transaction{
			{TransactionID: "t1", Type: models.TypeExpense, Amount: 100, Date: marchDate(1), ExpenseType: "Food"},
			{TransactionID: "t2", Type: models.TypeExpense, Amount: 50, Date: marchDate(2), ExpenseType: "Travel"},
			{TransactionID: "t3", Type: models.TypeExpense, Amount: 25, Date: marchDate(3), Category: "Food"},
		},
	}
	svc := NewSearchService(store)

	got, err := svc.SearchByCategory(context.Background(), "uid1", "Food", 0)
	if err != nil {
		t.Fatalf("SearchByCategory error: %v", err)
	}

	if got.Count != 2 || got.TotalAmount != 125 {
		t.Fatalf("result mismatch: count=%d total=%v", got.Count, got.TotalAmount)
	}
	if got.Category != "Food" {
		t.Fatalf("category echo mismatch: %q", got.Category)
	}
	if store.lastLimit != defaultCategoryLimit {
		t.Fatalf("default limit mismatch: got %d", store.lastLimit)
	}
}

func TestRecent(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.Local)
	store := &fakeTxStore{
		txs: []*models.Transaction{
			{TransactionID: "in", Type: models.TypeExpense, Amount: 100, Date: now.AddDate(0, 0, -2)},
			{TransactionID: "inc", Type: models.TypeIncome, Amount: 500, Date: now.AddDate(0, 0, -1)},
			{TransactionID: "out", Type: models.TypeExpense, Amount: 999, Date: now.AddDate(0, 0, -40)},
		},
	}
	svc := NewSearchService(store)
	svc.clockNow = func() time.Time { return now }

	got, err := svc.Recent(context.Background(), "uid1", 0)
	if err != nil {
		t.Fatalf("Recent error: %v", err)
	}

	if got.Period != "Last 30 days" {
		t.Fatalf("period mismatch: %q", got.Period)
	}
	if got.Count != 2 || got.TotalExpenses != 100 || got.TotalIncome != 500 {
		t.Fatalf("result mismatch: count=%d expenses=%v income=%v", got.Count, got.TotalExpenses, got.TotalIncome)
	}
	if store.lastLimit != recentLimit {
		t.Fatalf("recent cap mismatch: got %d", store.lastLimit)
	}
}

func TestRecentCustomDays(t *testing.T) {
	svc := NewSearchService(&fakeTxStore{})

	got, err := svc.Recent(context.Background(), "uid1", 7)
	if err != nil {
		t.Fatalf("Recent error: %v", err)
	}
	if got.Period != "Last 7 days" {
		t.Fatalf("period mismatch: %q", got.Period)
	}
}
