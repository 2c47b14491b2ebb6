package handlers

import (
	"log/slog"

	"firebase.google.com/go/v4/auth"

	"github.com/GregMSThompson/expense-tracker/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	TransactionSvc  TransactionService
	SearchSvc       SearchService
	SummarySvc      SummaryService
	CreditCardSvc   CreditCardService
	InsightSvc      InsightService
	UserSvc         UserService
	Firebase        *auth.Client
}
