package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/internal/middleware"
	"github.com/GregMSThompson/expense-tracker/internal/query"
	"github.com/GregMSThompson/expense-tracker/internal/response"
)

type TransactionService interface {
	Create(ctx context.Context, uid string, req dto.CreateTransactionRequest) (dto.TransactionView, error)
	Update(ctx context.Context, uid, transactionID string, req dto.UpdateTransactionRequest) (dto.TransactionView, error)
	Delete(ctx context.Context, uid, transactionID string) error
	ListByUser(ctx context.Context, uid string, limit int) ([]dto.TransactionView, error)
	Suggestions(ctx context.Context, uid string) (dto.Suggestions, error)
	Trends(ctx context.Context, uid string) (dto.TrendsResult, error)
}

type SearchService interface {
	Search(ctx context.Context, uid string, c query.Criteria, limit int) (dto.SearchResult, error)
	SearchByCategory(ctx context.Context, uid, category string, limit int) (dto.CategorySearchResult, error)
	Recent(ctx context.Context, uid string, days int) (dto.RecentResult, error)
}

type SummaryService interface {
	SummarizeMonth(ctx context.Context, uid string, month, year int) (dto.MonthlySummary, error)
}

type transactionHandlers struct {
	ResponseHandler response.ResponseHandler
	TransactionSvc  TransactionService
	SearchSvc       SearchService
	SummarySvc      SummaryService
}

func NewTransactionHandlers(deps *Deps) *transactionHandlers {
	return &transactionHandlers{
		ResponseHandler: deps.ResponseHandler,
		TransactionSvc:  deps.TransactionSvc,
		SearchSvc:       deps.SearchSvc,
		SummarySvc:      deps.SummarySvc,
	}
}

func (h *transactionHandlers) TransactionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/search", h.Search)
	r.Get("/recent", h.Recent)
	r.Get("/suggestions", h.Suggestions)
	r.Get("/analytics", h.Trends)
	r.Get("/summary", h.Summary)
	r.Get("/category/{category}", h.SearchByCategory)
	r.Put("/{transactionId}", h.Update)
	r.Delete("/{transactionId}", h.Delete)
	return r
}

func (h *transactionHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	tx, err := h.TransactionSvc.Create(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, tx)
}

func (h *transactionHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	txs, err := h.TransactionSvc.ListByUser(r.Context(), uid, limit)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, txs)
}

func (h *transactionHandlers) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := query.Criteria{
		Search:        q.Get("search"),
		Category:      q.Get("category"),
		ExpenseType:   q.Get("expenseType"),
		Type:          q.Get("type"),
		Mode:          q.Get("mode"),
		Payee:         q.Get("payee"),
		PaymentMethod: q.Get("paymentMethod"),
		PaymentApp:    q.Get("paymentApp"),
		NeedsWants:    q.Get("needsWants"),
		StartDate:     q.Get("startDate"),
		EndDate:       q.Get("endDate"),
		MinAmount:     q.Get("minAmount"),
		MaxAmount:     q.Get("maxAmount"),
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	uid := middleware.UID(r.Context())
	result, err := h.SearchSvc.Search(r.Context(), uid, criteria, limit)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *transactionHandlers) SearchByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	result, err := h.SearchSvc.SearchByCategory(r.Context(), uid, category, limit)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *transactionHandlers) Recent(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", 0)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	result, err := h.SearchSvc.Recent(r.Context(), uid, days)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *transactionHandlers) Suggestions(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	result, err := h.TransactionSvc.Suggestions(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *transactionHandlers) Trends(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	result, err := h.TransactionSvc.Trends(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *transactionHandlers) Summary(w http.ResponseWriter, r *http.Request) {
	month, year, err := monthYearParams(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	summary, err := h.SummarySvc.SummarizeMonth(r.Context(), uid, month, year)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, summary)
}

func (h *transactionHandlers) Update(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionId")
	var req dto.UpdateTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	tx, err := h.TransactionSvc.Update(r.Context(), uid, transactionID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, tx)
}

func (h *transactionHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionId")
	uid := middleware.UID(r.Context())
	if err := h.TransactionSvc.Delete(r.Context(), uid, transactionID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

// queryInt reads an optional integer query parameter, returning fallback
// when absent.
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValidationError(name + " must be an integer")
	}
	return v, nil
}

// monthYearParams reads the required month and year query parameters.
func monthYearParams(r *http.Request) (int, int, error) {
	q := r.URL.Query()
	month, err := strconv.Atoi(q.Get("month"))
	if err != nil {
		return 0, 0, errs.NewInvalidTimeWindowError("month must be a number")
	}
	year, err := strconv.Atoi(q.Get("year"))
	if err != nil {
		return 0, 0, errs.NewInvalidTimeWindowError("year must be a number")
	}
	return month, year, nil
}
