package services

import (
	"context"
	"fmt"
	"time"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/internal/models"
	"github.com/GregMSThompson/expense-tracker/internal/query"
)

const (
	defaultSearchLimit   = 100
	defaultCategoryLimit = 50
	recentLimit          = 50
	defaultRecentDays    = 30
)

type transactionSearchStore interface {
	IsValidUserID(uid string) bool
	Find(ctx context.Context, uid string, p *query.Predicate, desc bool, limit int, handle func(*models.Transaction) error) error
}

type searchService struct {
	txs      transactionSearchStore
	clockNow func() time.Time
}

func NewSearchService(txs transactionSearchStore) *searchService {
	return &searchService{txs: txs, clockNow: time.Now}
}

// Search fetches the most recent transactions matching the criteria, capped
// at limit, and derives result totals and breakdowns from the returned set.
func (s *searchService) Search(ctx context.Context, uid string, c query.Criteria, limit int) (dto.SearchResult, error) {
	result := dto.SearchResult{
		Transactions:      []dto.TransactionView{},
		CategoryBreakdown: map[string]float64{},
		TypeBreakdown:     map[string]float64{},
		SearchQuery:       c,
	}

	if !s.txs.IsValidUserID(uid) {
		return result, errs.NewInvalidUserError()
	}
	p, err := query.Build(c)
	if err != nil {
		return result, err
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	var matches []*models.Transaction
	err = s.txs.Find(ctx, uid, p, true, limit, func(tx *models.Transaction) error {
		matches = append(matches, tx)
		return nil
	})
	if err != nil {
		return result, err
	}

	for _, tx := range matches {
		result.Transactions = append(result.Transactions, NewTransactionView(tx))

		// Expense-side totals cover everything that represents money going
		// out: expenses, savings allocations and credit-card payments.
		switch tx.Type {
		case models.TypeExpense, models.TypeSaved, models.TypeCreditCardPayment:
			result.TotalExpenses += tx.Amount
		case models.TypeIncome:
			result.TotalIncome += tx.Amount
		}

		// Unlike the monthly summary, the category breakdown here spans all
		// returned types, since a search result may mix them.
		if tx.ExpenseType != "" {
			result.CategoryBreakdown[tx.ExpenseType] += tx.Amount
		}
		result.TypeBreakdown[string(tx.Type)] += tx.Amount
	}

	// Count reflects the returned (limited) set, not the total match count.
	result.Count = len(matches)
	result.NetAmount = result.TotalIncome - result.TotalExpenses

	// Results are date-descending: latest first, earliest last.
	if len(matches) > 0 {
		result.DateRange.Latest = &matches[0].Date
		result.DateRange.Earliest = &matches[len(matches)-1].Date
	}

	return result, nil
}

// SearchByCategory matches transactions whose category, expenseType or
// needsWants equals the given value and reports a plain sum.
func (s *searchService) SearchByCategory(ctx context.Context, uid, category string, limit int) (dto.CategorySearchResult, error) {
	result := dto.CategorySearchResult{
		Transactions: []dto.TransactionView{},
		Category:     category,
	}

	if !s.txs.IsValidUserID(uid) {
		return result, errs.NewInvalidUserError()
	}
	if limit <= 0 {
		limit = defaultCategoryLimit
	}

	err := s.txs.Find(ctx, uid, query.ForCategory(category), true, limit, func(tx *models.Transaction) error {
		result.Transactions = append(result.Transactions, NewTransactionView(tx))
		result.TotalAmount += tx.Amount
		return nil
	})
	if err != nil {
		return result, err
	}

	result.Count = len(result.Transactions)
	return result, nil
}

// Recent returns the newest transactions from the last N days with the
// search engine's income/expense split.
func (s *searchService) Recent(ctx context.Context, uid string, days int) (dto.RecentResult, error) {
	result := dto.RecentResult{Transactions: []dto.TransactionView{}}

	if !s.txs.IsValidUserID(uid) {
		return result, errs.NewInvalidUserError()
	}
	if days <= 0 {
		days = defaultRecentDays
	}
	result.Period = fmt.Sprintf("Last %d days", days)

	from := s.clockNow().AddDate(0, 0, -days)
	err := s.txs.Find(ctx, uid, query.ForWindow(from, time.Time{}), true, recentLimit, func(tx *models.Transaction) error {
		result.Transactions = append(result.Transactions, NewTransactionView(tx))
		switch tx.Type {
		case models.TypeExpense, models.TypeSaved, models.TypeCreditCardPayment:
			result.TotalExpenses += tx.Amount
		case models.TypeIncome:
			result.TotalIncome += tx.Amount
		}
		return nil
	})
	if err != nil {
		return result, err
	}

	result.Count = len(result.Transactions)
	return result, nil
}
