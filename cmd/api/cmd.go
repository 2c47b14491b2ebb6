package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/GregMSThompson/expense-tracker/internal/bootstrap"
	"github.com/GregMSThompson/expense-tracker/internal/config"
	"github.com/GregMSThompson/expense-tracker/internal/handlers"
	"github.com/GregMSThompson/expense-tracker/internal/response"
	"github.com/GregMSThompson/expense-tracker/internal/router"
	"github.com/GregMSThompson/expense-tracker/internal/services"
	"github.com/GregMSThompson/expense-tracker/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	ustore := store.NewUserStore(bs.Firestore)
	tstore := store.NewTransactionStore(bs.Firestore)

	// services
	userv := services.NewUserService(ustore)
	txserv := services.NewTransactionService(tstore)
	seserv := services.NewSearchService(tstore)
	suserv := services.NewSummaryService(tstore)
	ccserv := services.NewCreditCardService(tstore, cfg.CreditCards)
	inserv := services.NewInsightService(suserv, bs.VertexAdapter)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.UserSvc = userv
	deps.TransactionSvc = txserv
	deps.SearchSvc = seserv
	deps.SummarySvc = suserv
	deps.CreditCardSvc = ccserv
	deps.InsightSvc = inserv

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":8080", r)
	exitOnError("server start failed", err, bs.Log)
}
