package services

import (
	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/models"
)

// Classification is pure and stateless. Summary and search both format
// transactions through NewTransactionView, so the labels cannot drift apart
// between the two paths.

// ExpenseCategoryLabel names the spending category for display: the explicit
// expenseType when present, otherwise a label derived from the type.
func ExpenseCategoryLabel(t *models.Transaction) string {
	if t.ExpenseType != "" {
		return t.ExpenseType
	}
	switch t.Type {
	case models.TypeSaved:
		return "Saved"
	case models.TypeCreditCardPayment:
		return "CC Payment"
	}
	return "Expense"
}

// NeedsWantsLabel names the budget tag for display. Untagged income and
// expense records get no label.
func NeedsWantsLabel(t *models.Transaction) string {
	if t.NeedsWants != models.BucketNone {
		return string(t.NeedsWants)
	}
	switch t.Type {
	case models.TypeSaved:
		return "Savings"
	case models.TypeCreditCardPayment:
		return "CC Bill"
	}
	return ""
}

// GoalBucket resolves which of the four goal buckets a transaction accrues
// to: an expense with a recognized tag accrues to that bucket, a saved
// transaction accrues to Savings even though it carries no tag, and
// everything else accrues to none. Each transaction lands in at most one
// bucket, which is what keeps goal sums free of double counting.
func GoalBucket(t *models.Transaction) (models.NeedsWantsBucket, bool) {
	switch t.Type {
	case models.TypeExpense:
		if t.NeedsWants.IsGoalBucket() {
			return t.NeedsWants, true
		}
	case models.TypeSaved:
		return models.BucketSavings, true
	}
	return models.BucketNone, false
}

// NewTransactionView attaches the display labels to a transaction.
func NewTransactionView(t *models.Transaction) dto.TransactionView {
	return dto.TransactionView{
		Transaction:     *t,
		CategoryLabel:   ExpenseCategoryLabel(t),
		NeedsWantsLabel: NeedsWantsLabel(t),
	}
}
