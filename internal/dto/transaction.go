package dto

import (
	"github.com/GregMSThompson/expense-tracker/internal/models"
)

// CreateTransactionRequest is the POST /transactions payload. Date is free
// text; when absent or unparseable the service stamps the current time.
type CreateTransactionRequest struct {
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
	Type          string  `json:"type"`
	Payee         string  `json:"payee"`
	Mode          string  `json:"mode"`
	PaymentMethod string  `json:"paymentMethod"`
	PaymentApp    string  `json:"paymentApp"`
	ExpenseType   string  `json:"expenseType"`
	NeedsWants    string  `json:"needsWants"`
	Category      string  `json:"category"`
	Remarks       string  `json:"remarks"`
}

// UpdateTransactionRequest patches a transaction. Nil fields are left alone;
// the owner can never be changed through an update.
type UpdateTransactionRequest struct {
	Amount        *float64 `json:"amount"`
	Date          *string  `json:"date"`
	Type          *string  `json:"type"`
	Payee         *string  `json:"payee"`
	Mode          *string  `json:"mode"`
	PaymentMethod *string  `json:"paymentMethod"`
	PaymentApp    *string  `json:"paymentApp"`
	ExpenseType   *string  `json:"expenseType"`
	NeedsWants    *string  `json:"needsWants"`
	Category      *string  `json:"category"`
	Remarks       *string  `json:"remarks"`
}

// TransactionView is a transaction enriched with the display labels the
// classifier derives from type and tags. Summary and search both return
// transactions in this shape.
type TransactionView struct {
	models.Transaction
	CategoryLabel   string `json:"categoryLabel"`
	NeedsWantsLabel string `json:"needsWantsLabel,omitempty"`
}
