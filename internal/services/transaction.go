package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/internal/models"
	"github.com/GregMSThompson/expense-tracker/internal/query"
)

const (
	payeeSuggestions       = 20
	expenseTypeSuggestions = 15
	modeSuggestions        = 15
	trendsMonths           = 6
	topCategories          = 10
)

type transactionCRUDStore interface {
	IsValidUserID(uid string) bool
	Find(ctx context.Context, uid string, p *query.Predicate, desc bool, limit int, handle func(*models.Transaction) error) error
	Create(ctx context.Context, uid string, tx *models.Transaction) error
	Get(ctx context.Context, uid, transactionID string) (*models.Transaction, error)
	Update(ctx context.Context, uid string, tx *models.Transaction) error
	Delete(ctx context.Context, uid, transactionID string) error
}

type transactionService struct {
	txs      transactionCRUDStore
	clockNow func() time.Time
}

func NewTransactionService(txs transactionCRUDStore) *transactionService {
	return &transactionService{txs: txs, clockNow: time.Now}
}

// Create records a new transaction for the user. A missing or unparseable
// date falls back to the current time.
func (s *transactionService) Create(ctx context.Context, uid string, req dto.CreateTransactionRequest) (dto.TransactionView, error) {
	if !s.txs.IsValidUserID(uid) {
		return dto.TransactionView{}, errs.NewInvalidUserError()
	}
	if req.Amount <= 0 {
		return dto.TransactionView{}, errs.NewValidationError("amount must be greater than zero")
	}
	txType := models.TransactionType(req.Type)
	if !txType.IsValid() {
		return dto.TransactionView{}, errs.NewValidationError("invalid transaction type: " + req.Type)
	}
	if req.Payee == "" {
		return dto.TransactionView{}, errs.NewValidationError("payee is required")
	}

	date, ok := parseFlexibleDate(req.Date)
	if !ok {
		date = s.clockNow()
	}

	tx := &models.Transaction{
		TransactionID: uuid.NewString(),
		Amount:        req.Amount,
		Date:          date,
		Type:          txType,
		Payee:         req.Payee,
		Mode:          req.Mode,
		PaymentMethod: req.PaymentMethod,
		PaymentApp:    req.PaymentApp,
		ExpenseType:   req.ExpenseType,
		NeedsWants:    models.NeedsWantsBucket(req.NeedsWants),
		Category:      req.Category,
		Remarks:       req.Remarks,
		User:          uid,
	}
	if err := s.txs.Create(ctx, uid, tx); err != nil {
		return dto.TransactionView{}, err
	}
	return NewTransactionView(tx), nil
}

// Update patches an existing transaction. Only non-nil fields change; the
// owner is never touched.
func (s *transactionService) Update(ctx context.Context, uid, transactionID string, req dto.UpdateTransactionRequest) (dto.TransactionView, error) {
	if !s.txs.IsValidUserID(uid) {
		return dto.TransactionView{}, errs.NewInvalidUserError()
	}

	tx, err := s.txs.Get(ctx, uid, transactionID)
	if err != nil {
		return dto.TransactionView{}, err
	}

	if req.Amount != nil {
		if *req.Amount <= 0 {
			return dto.TransactionView{}, errs.NewValidationError("amount must be greater than zero")
		}
		tx.Amount = *req.Amount
	}
	if req.Date != nil {
		date, ok := parseFlexibleDate(*req.Date)
		if !ok {
			return dto.TransactionView{}, errs.NewValidationError("invalid date: " + *req.Date)
		}
		tx.Date = date
	}
	if req.Type != nil {
		txType := models.TransactionType(*req.Type)
		if !txType.IsValid() {
			return dto.TransactionView{}, errs.NewValidationError("invalid transaction type: " + *req.Type)
		}
		tx.Type = txType
	}
	if req.Payee != nil {
		tx.Payee = *req.Payee
	}
	if req.Mode != nil {
		tx.Mode = *req.Mode
	}
	if req.PaymentMethod != nil {
		tx.PaymentMethod = *req.PaymentMethod
	}
	if req.PaymentApp != nil {
		tx.PaymentApp = *req.PaymentApp
	}
	if req.ExpenseType != nil {
		tx.ExpenseType = *req.ExpenseType
	}
	if req.NeedsWants != nil {
		tx.NeedsWants = models.NeedsWantsBucket(*req.NeedsWants)
	}
	if req.Category != nil {
		tx.Category = *req.Category
	}
	if req.Remarks != nil {
		tx.Remarks = *req.Remarks
	}

	if err := s.txs.Update(ctx, uid, tx); err != nil {
		return dto.TransactionView{}, err
	}
	return NewTransactionView(tx), nil
}

// Delete removes a transaction, surfacing not-found when it never existed.
func (s *transactionService) Delete(ctx context.Context, uid, transactionID string) error {
	if !s.txs.IsValidUserID(uid) {
		return errs.NewInvalidUserError()
	}
	if _, err := s.txs.Get(ctx, uid, transactionID); err != nil {
		return err
	}
	return s.txs.Delete(ctx, uid, transactionID)
}

// ListByUser returns the user's transactions, most recent first. A zero
// limit means no cap.
func (s *transactionService) ListByUser(ctx context.Context, uid string, limit int) ([]dto.TransactionView, error) {
	if !s.txs.IsValidUserID(uid) {
		return nil, errs.NewInvalidUserError()
	}

	views := []dto.TransactionView{}
	err := s.txs.Find(ctx, uid, query.ForWindow(time.Time{}, time.Time{}), true, limit, func(tx *models.Transaction) error {
		views = append(views, NewTransactionView(tx))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

// Suggestions counts how often the user fills each field with each value and
// returns the most frequent ones for autocomplete.
func (s *transactionService) Suggestions(ctx context.Context, uid string) (dto.Suggestions, error) {
	if !s.txs.IsValidUserID(uid) {
		return dto.Suggestions{}, errs.NewInvalidUserError()
	}

	payees := map[string]int{}
	expenseTypes := map[string]int{}
	modes := map[string]int{}

	err := s.txs.Find(ctx, uid, query.ForWindow(time.Time{}, time.Time{}), true, 0, func(tx *models.Transaction) error {
		if tx.Payee != "" {
			payees[tx.Payee]++
		}
		if tx.ExpenseType != "" {
			expenseTypes[tx.ExpenseType]++
		}
		if tx.Mode != "" {
			modes[tx.Mode]++
		}
		return nil
	})
	if err != nil {
		return dto.Suggestions{}, err
	}

	return dto.Suggestions{
		Payees:       topValues(payees, payeeSuggestions),
		ExpenseTypes: topValues(expenseTypes, expenseTypeSuggestions),
		Modes:        topValues(modes, modeSuggestions),
	}, nil
}

// Trends reports per-month per-type totals over the last six months plus
// the top spending categories across expenses, savings and card payments.
func (s *transactionService) Trends(ctx context.Context, uid string) (dto.TrendsResult, error) {
	result := dto.TrendsResult{
		Trends:           []dto.TrendPoint{},
		CategorySpending: []dto.CategorySpend{},
		Period:           fmt.Sprintf("Last %d months", trendsMonths),
	}

	if !s.txs.IsValidUserID(uid) {
		return result, errs.NewInvalidUserError()
	}

	from := s.clockNow().AddDate(0, -trendsMonths, 0)

	type monthTypeKey struct {
		year  int
		month int
		typ   models.TransactionType
	}
	points := map[monthTypeKey]*dto.TrendPoint{}
	categories := map[string]*dto.CategorySpend{}

	err := s.txs.Find(ctx, uid, query.ForWindow(from, time.Time{}), false, 0, func(tx *models.Transaction) error {
		key := monthTypeKey{year: tx.Date.Year(), month: int(tx.Date.Month()), typ: tx.Type}
		point, ok := points[key]
		if !ok {
			point = &dto.TrendPoint{Year: key.year, Month: key.month, Type: string(tx.Type)}
			points[key] = point
		}
		point.TotalAmount += tx.Amount
		point.Count++

		switch tx.Type {
		case models.TypeExpense, models.TypeSaved, models.TypeCreditCardPayment:
			if tx.ExpenseType != "" {
				spend, ok := categories[tx.ExpenseType]
				if !ok {
					spend = &dto.CategorySpend{ExpenseType: tx.ExpenseType}
					categories[tx.ExpenseType] = spend
				}
				spend.TotalAmount += tx.Amount
				spend.Count++
			}
		}
		return nil
	})
	if err != nil {
		return result, err
	}

	for _, point := range points {
		result.Trends = append(result.Trends, *point)
	}
	sort.Slice(result.Trends, func(i, j int) bool {
		a, b := result.Trends[i], result.Trends[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		return a.Type < b.Type
	})

	for _, spend := range categories {
		result.CategorySpending = append(result.CategorySpending, *spend)
	}
	sort.Slice(result.CategorySpending, func(i, j int) bool {
		a, b := result.CategorySpending[i], result.CategorySpending[j]
		if a.TotalAmount != b.TotalAmount {
			return a.TotalAmount > b.TotalAmount
		}
		return a.ExpenseType < b.ExpenseType
	})
	if len(result.CategorySpending) > topCategories {
		result.CategorySpending = result.CategorySpending[:topCategories]
	}

	return result, nil
}

// topValues ranks by count descending, then name, and returns at most n values.
func topValues(counts map[string]int, n int) []string {
	type entry struct {
		value string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for v, c := range counts {
		entries = append(entries, entry{value: v, count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].value < entries[j].value
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.value)
	}
	return out
}

// parseFlexibleDate accepts a bare calendar date or an RFC 3339 timestamp.
func parseFlexibleDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
