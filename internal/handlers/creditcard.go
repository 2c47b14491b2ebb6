package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/middleware"
	"github.com/GregMSThompson/expense-tracker/internal/response"
)

type CreditCardService interface {
	Summarize(ctx context.Context, uid string, month, year int) (dto.CreditCardSummary, error)
}

type creditCardHandlers struct {
	ResponseHandler response.ResponseHandler
	CreditCardSvc   CreditCardService
}

func NewCreditCardHandlers(deps *Deps) *creditCardHandlers {
	return &creditCardHandlers{
		ResponseHandler: deps.ResponseHandler,
		CreditCardSvc:   deps.CreditCardSvc,
	}
}

func (h *creditCardHandlers) CreditCardRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/summary", h.Summary)
	return r
}

func (h *creditCardHandlers) Summary(w http.ResponseWriter, r *http.Request) {
	month, year, err := monthYearParams(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	summary, err := h.CreditCardSvc.Summarize(r.Context(), uid, month, year)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, summary)
}
