package models

import (
	"time"
)

// TransactionType is the cash-movement kind of a record. A transaction's
// amount counts toward at most one of the monthly totals based on this type.
type TransactionType string

const (
	TypeExpense           TransactionType = "expense"
	TypeIncome            TransactionType = "income"
	TypeTransfer          TransactionType = "transfer"
	TypeCreditCardPayment TransactionType = "credit_card_payment"
	TypeSaved             TransactionType = "saved"
)

// IsValid reports whether t is one of the recognized transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case TypeExpense, TypeIncome, TypeTransfer, TypeCreditCardPayment, TypeSaved:
		return true
	}
	return false
}

// NeedsWantsBucket tags a transaction with its budget classification.
// Only meaningful on expense-typed records but tolerated anywhere.
type NeedsWantsBucket string

const (
	BucketNeeds        NeedsWantsBucket = "Needs"
	BucketWants        NeedsWantsBucket = "Wants"
	BucketSavings      NeedsWantsBucket = "Savings"
	BucketInvested     NeedsWantsBucket = "Invested"
	BucketFundTransfer NeedsWantsBucket = "Fund Transfer"
	BucketNone         NeedsWantsBucket = ""
)

// IsGoalBucket reports whether b is one of the four buckets tracked by
// monthly goal progress. "Fund Transfer" and the empty tag are excluded.
func (b NeedsWantsBucket) IsGoalBucket() bool {
	switch b {
	case BucketNeeds, BucketWants, BucketSavings, BucketInvested:
		return true
	}
	return false
}

type Transaction struct {
	TransactionID string           `firestore:"transactionId" json:"id"`
	Amount        float64          `firestore:"amount" json:"amount"`
	Date          time.Time        `firestore:"date" json:"date"`
	Type          TransactionType  `firestore:"type" json:"type"`
	Payee         string           `firestore:"payee" json:"payee"`                       // "from" for income, "to" for everything else
	Mode          string           `firestore:"mode,omitempty" json:"mode,omitempty"`     // payment rail, e.g. a credit-card name
	PaymentMethod string           `firestore:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	PaymentApp    string           `firestore:"paymentApp,omitempty" json:"paymentApp,omitempty"`
	ExpenseType   string           `firestore:"expenseType,omitempty" json:"expenseType,omitempty"` // Food, Travel, ...
	NeedsWants    NeedsWantsBucket `firestore:"needsWants,omitempty" json:"needsWants,omitempty"`
	Category      string           `firestore:"category,omitempty" json:"category,omitempty"` // legacy alias, kept for compatibility
	Remarks       string           `firestore:"remarks,omitempty" json:"remarks,omitempty"`
	User          string           `firestore:"user" json:"user"`
	CreatedAt     time.Time        `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time        `firestore:"updatedAt" json:"updatedAt"`
}
