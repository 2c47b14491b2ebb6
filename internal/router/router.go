package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/expense-tracker/internal/handlers"
	"github.com/GregMSThompson/expense-tracker/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)
	r.Use(middleware.NewMiddleware(deps.Firebase).FirebaseAuth)

	txh := handlers.NewTransactionHandlers(deps)
	cch := handlers.NewCreditCardHandlers(deps)
	ish := handlers.NewInsightHandlers(deps)
	ush := handlers.NewUserHandlers(deps)

	r.Mount("/transactions", txh.TransactionRoutes())
	r.Mount("/creditcards", cch.CreditCardRoutes())
	r.Mount("/insights", ish.InsightRoutes())
	r.Mount("/users", ush.UserRoutes())
	return r
}
