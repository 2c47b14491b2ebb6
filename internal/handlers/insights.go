package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/middleware"
	"github.com/GregMSThompson/expense-tracker/internal/response"
)

type InsightService interface {
	MonthlyInsight(ctx context.Context, uid string, month, year int) (dto.MonthlyInsight, error)
}

type insightHandlers struct {
	ResponseHandler response.ResponseHandler
	InsightSvc      InsightService
}

func NewInsightHandlers(deps *Deps) *insightHandlers {
	return &insightHandlers{
		ResponseHandler: deps.ResponseHandler,
		InsightSvc:      deps.InsightSvc,
	}
}

func (h *insightHandlers) InsightRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/monthly", h.Monthly)
	return r
}

func (h *insightHandlers) Monthly(w http.ResponseWriter, r *http.Request) {
	month, year, err := monthYearParams(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	insight, err := h.InsightSvc.MonthlyInsight(r.Context(), uid, month, year)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, insight)
}
