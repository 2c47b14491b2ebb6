package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/errs"
)

type stubInsightService struct {
	insight dto.MonthlyInsight
	err     error
}

func (s *stubInsightService) MonthlyInsight(_ context.Context, _ string, month, year int) (dto.MonthlyInsight, error) {
	if s.err != nil {
		return dto.MonthlyInsight{}, s.err
	}
	out := s.insight
	out.Month = month
	out.Year = year
	return out, nil
}

func TestMonthlyInsight_OK(t *testing.T) {
	svc := &stubInsightService{insight: dto.MonthlyInsight{Insight: "Spending held steady."}}
	resp := &stubResponseHandler{}
	h := NewInsightHandlers(&Deps{ResponseHandler: resp, InsightSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/insights/monthly?month=3&year=2024", nil)
	req = withUID(req, "uid1")
	rr := httptest.NewRecorder()
	h.Monthly(rr, req)

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("expected WriteSuccess with 200, got %d", resp.writeSuccessStatus)
	}
	got, ok := resp.writeSuccessData.(dto.MonthlyInsight)
	if !ok {
		t.Fatalf("unexpected payload type %T", resp.writeSuccessData)
	}
	if got.Month != 3 || got.Year != 2024 || got.Insight == "" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestMonthlyInsight_MissingYear(t *testing.T) {
	resp := &stubResponseHandler{}
	h := NewInsightHandlers(&Deps{ResponseHandler: resp, InsightSvc: &stubInsightService{}})

	req := httptest.NewRequest(http.MethodGet, "/insights/monthly?month=3", nil)
	req = withUID(req, "uid1")
	rr := httptest.NewRecorder()
	h.Monthly(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("expected HandleError to be called")
	}
	if _, ok := resp.handleError.(*errs.InvalidTimeWindowError); !ok {
		t.Fatalf("expected InvalidTimeWindowError, got %T", resp.handleError)
	}
}

func TestMonthlyInsight_GeneratorDown(t *testing.T) {
	svc := &stubInsightService{err: errs.NewExternalServiceError("vertex", "generation failed", true, nil)}
	resp := &stubResponseHandler{}
	h := NewInsightHandlers(&Deps{ResponseHandler: resp, InsightSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/insights/monthly?month=3&year=2024", nil)
	req = withUID(req, "uid1")
	rr := httptest.NewRecorder()
	h.Monthly(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("expected HandleError to be called")
	}
	if _, ok := resp.handleError.(*errs.ExternalServiceError); !ok {
		t.Fatalf("expected ExternalServiceError, got %T", resp.handleError)
	}
}
