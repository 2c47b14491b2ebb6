package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/pkg/helpers"
)

type fakeSummarizer struct {
	summary dto.MonthlySummary
	err     error
}

func (f *fakeSummarizer) SummarizeMonth(_ context.Context, _ string, _, _ int) (dto.MonthlySummary, error) {
	return f.summary, f.err
}

type fakeGenerator struct {
	resp    dto.VertexGenerateResponse
	err     error
	lastReq dto.VertexGenerateRequest
}

func (f *fakeGenerator) GenerateContent(_ context.Context, req dto.VertexGenerateRequest) (dto.VertexGenerateResponse, error) {
	f.lastReq = req
	return f.resp, f.err
}

func TestMonthlyInsight(t *testing.T) {
	summarizer := &fakeSummarizer{
		summary: dto.MonthlySummary{
			TotalIncome:    50000,
			TotalExpenses:  12000,
			ExpensesByType: map[string]float64{"Food": 8000, "Travel": 4000},
			GoalProgress: dto.GoalProgress{
				Needs: dto.GoalStat{Amount: 12000, Target: 20000},
			},
		},
	}
	generator := &fakeGenerator{
		resp: dto.VertexGenerateResponse{Text: "  A solid month.\n"},
	}
	svc := NewInsightService(summarizer, generator)

	got, err := svc.MonthlyInsight(helpers.TestCtx(), "uid1", 3, 2024)
	if err != nil {
		t.Fatalf("MonthlyInsight error: %v", err)
	}

	if got.Month != 3 || got.Year != 2024 {
		t.Fatalf("month/year mismatch: %+v", got)
	}
	if got.Insight != "A solid month." {
		t.Fatalf("insight should be trimmed: %q", got.Insight)
	}

	// the prompt carries aggregates, never raw transactions
	prompt := generator.lastReq.UserMessage
	for _, want := range []string{"March 2024", "Income: 50000.00", "Food: 8000.00", "Needs: 12000.00 / 20000.00"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if generator.lastReq.System == "" {
		t.Fatal("expected a system prompt")
	}
}

func TestMonthlyInsightPropagatesSummaryError(t *testing.T) {
	summarizer := &fakeSummarizer{err: errs.NewInvalidUserError()}
	svc := NewInsightService(summarizer, &fakeGenerator{})

	_, err := svc.MonthlyInsight(helpers.TestCtx(), "uid1", 3, 2024)
	if _, ok := err.(*errs.InvalidUserError); !ok {
		t.Fatalf("expected InvalidUserError, got %T", err)
	}
}

func TestMonthlyInsightClassifiesGeneratorFailures(t *testing.T) {
	summarizer := &fakeSummarizer{summary: dto.MonthlySummary{ExpensesByType: map[string]float64{}}}

	transient := &fakeGenerator{err: status.Error(codes.Unavailable, "backend")}
	svc := NewInsightService(summarizer, transient)
	_, err := svc.MonthlyInsight(helpers.TestCtx(), "uid1", 3, 2024)
	var extErr *errs.ExternalServiceError
	if !errors.As(err, &extErr) || !extErr.Transient {
		t.Fatalf("expected transient ExternalServiceError, got %v", err)
	}

	permanent := &fakeGenerator{err: errors.New("bad model")}
	svc = NewInsightService(summarizer, permanent)
	_, err = svc.MonthlyInsight(helpers.TestCtx(), "uid1", 3, 2024)
	if !errors.As(err, &extErr) || extErr.Transient {
		t.Fatalf("expected permanent ExternalServiceError, got %v", err)
	}
}
