package services

import (
	"context"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/internal/models"
	"github.com/GregMSThompson/expense-tracker/internal/query"
)

// Income percentages behind the monthly budget goals (the 40/20/40 rule).
const (
	needsTargetShare   = 0.40
	wantsTargetShare   = 0.20
	savingsTargetShare = 0.40
)

// transactionSummaryStore is the storage surface the summary engine needs.
type transactionSummaryStore interface {
	IsValidUserID(uid string) bool
	Find(ctx context.Context, uid string, p *query.Predicate, desc bool, limit int, handle func(*models.Transaction) error) error
}

type summaryService struct {
	txs transactionSummaryStore
}

func NewSummaryService(txs transactionSummaryStore) *summaryService {
	return &summaryService{txs: txs}
}

// SummarizeMonth derives the month's totals, breakdowns and goal progress
// from the user's transactions in that calendar month.
func (s *summaryService) SummarizeMonth(ctx context.Context, uid string, month, year int) (dto.MonthlySummary, error) {
	result := emptySummary()

	if !s.txs.IsValidUserID(uid) {
		return result, errs.NewInvalidUserError()
	}
	start, end, err := monthWindow(month, year)
	if err != nil {
		return result, err
	}

	// Ascending order keeps the per-type lists deterministic; the totals
	// don't depend on it.
	var all []*models.Transaction
	err = s.txs.Find(ctx, uid, query.ForWindow(start, end), false, 0, func(tx *models.Transaction) error {
		all = append(all, tx)
		return nil
	})
	if err != nil {
		return result, err
	}

	// Partition by type. The four buckets are mutually exclusive; a
	// transaction with an unrecognized type contributes to none of them.
	for _, tx := range all {
		view := NewTransactionView(tx)
		switch tx.Type {
		case models.TypeIncome:
			result.Income = append(result.Income, view)
			result.TotalIncome += tx.Amount
		case models.TypeExpense:
			result.Expenses = append(result.Expenses, view)
			result.TotalExpenses += tx.Amount
		case models.TypeSaved:
			result.Savings = append(result.Savings, view)
			result.TotalSavings += tx.Amount
		case models.TypeCreditCardPayment:
			result.CCPayments = append(result.CCPayments, view)
			result.CreditCardPayments += tx.Amount
		}
	}

	// Savings and CC payments are allocations of already-counted money in
	// this model, so net flow is income minus expenses only.
	result.NetFlow = result.TotalIncome - result.TotalExpenses

	// Category and goal-bucket breakdowns come strictly from the expense
	// partition to avoid double counting, with one exception below.
	for _, view := range result.Expenses {
		if view.ExpenseType != "" {
			result.ExpensesByType[view.ExpenseType] += view.Amount
		}
		if bucket, ok := GoalBucket(&view.Transaction); ok {
			result.ExpensesByNeedsWants[string(bucket)] += view.Amount
		}
	}
	// Saved-type transactions carry no tag but still count toward the
	// Savings goal.
	result.ExpensesByNeedsWants[string(models.BucketSavings)] += result.TotalSavings

	// Reported for record keeping even though goal progress folds it into
	// the savings goal.
	result.TotalInvestments = result.ExpensesByNeedsWants[string(models.BucketInvested)]

	result.GoalProgress = dto.GoalProgress{
		Needs: dto.GoalStat{
			Amount: result.ExpensesByNeedsWants[string(models.BucketNeeds)],
			Target: result.TotalIncome * needsTargetShare,
		},
		Wants: dto.GoalStat{
			Amount: result.ExpensesByNeedsWants[string(models.BucketWants)],
			Target: result.TotalIncome * wantsTargetShare,
		},
		// Invested is merged into the savings goal; the invested entry
		// stays zeroed so consumers that expect the key keep working.
		Savings: dto.GoalStat{
			Amount: result.ExpensesByNeedsWants[string(models.BucketSavings)] + result.ExpensesByNeedsWants[string(models.BucketInvested)],
			Target: result.TotalIncome * savingsTargetShare,
		},
		Invested: dto.GoalStat{},
	}

	return result, nil
}

// emptySummary pre-seeds the breakdown maps so an empty month serializes
// with zeros for every goal bucket instead of a missing object.
func emptySummary() dto.MonthlySummary {
	return dto.MonthlySummary{
		Income:         []dto.TransactionView{},
		Expenses:       []dto.TransactionView{},
		Savings:        []dto.TransactionView{},
		CCPayments:     []dto.TransactionView{},
		ExpensesByType: map[string]float64{},
		ExpensesByNeedsWants: map[string]float64{
			string(models.BucketNeeds):    0,
			string(models.BucketWants):    0,
			string(models.BucketSavings):  0,
			string(models.BucketInvested): 0,
		},
	}
}
