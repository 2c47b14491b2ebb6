package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/pkg/helpers"
	"github.com/GregMSThompson/expense-tracker/pkg/logger"
)

type insightGenerator interface {
	GenerateContent(ctx context.Context, req dto.VertexGenerateRequest) (dto.VertexGenerateResponse, error)
}

type monthlySummarizer interface {
	SummarizeMonth(ctx context.Context, uid string, month, year int) (dto.MonthlySummary, error)
}

type insightService struct {
	summaries monthlySummarizer
	generator insightGenerator
}

func NewInsightService(summaries monthlySummarizer, generator insightGenerator) *insightService {
	return &insightService{summaries: summaries, generator: generator}
}

// MonthlyInsight asks the model for a short narrative over the month's
// aggregated figures. Raw transactions never leave the service, only totals.
func (s *insightService) MonthlyInsight(ctx context.Context, uid string, month, year int) (dto.MonthlyInsight, error) {
	log := logger.FromContext(ctx)

	summary, err := s.summaries.SummarizeMonth(ctx, uid, month, year)
	if err != nil {
		return dto.MonthlyInsight{}, err
	}

	resp, err := s.generator.GenerateContent(ctx, dto.VertexGenerateRequest{
		System:          insightSystemPrompt,
		UserMessage:     insightPrompt(month, year, summary),
		Temperature:     helpers.Ptr(float32(0.4)),
		MaxOutputTokens: helpers.Ptr(int32(512)),
	})
	if err != nil {
		return dto.MonthlyInsight{}, mapGeneratorErr(err)
	}

	log.Info("monthly insight generated", "month", month, "year", year)
	return dto.MonthlyInsight{
		Month:   month,
		Year:    year,
		Insight: strings.TrimSpace(resp.Text),
	}, nil
}

const insightSystemPrompt = "You are a personal finance coach. Given one month's " +
	"aggregated figures, write a short, practical review of the month: call out " +
	"the savings rate, the biggest spending categories, and how actual spending " +
	"compares to the budget targets. Keep it under 150 words, plain text, no lists."

func insightPrompt(month, year int, s dto.MonthlySummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Month: %s %d\n", time.Month(month), year)
	fmt.Fprintf(&b, "Income: %.2f\n", s.TotalIncome)
	fmt.Fprintf(&b, "Expenses: %.2f\n", s.TotalExpenses)
	fmt.Fprintf(&b, "Saved: %.2f\n", s.TotalSavings)
	fmt.Fprintf(&b, "Invested: %.2f\n", s.TotalInvestments)
	fmt.Fprintf(&b, "Credit card payments: %.2f\n", s.CreditCardPayments)
	fmt.Fprintf(&b, "Net flow: %.2f\n", s.NetFlow)

	if len(s.ExpensesByType) > 0 {
		b.WriteString("Spending by category:\n")
		for _, category := range sortedKeys(s.ExpensesByType) {
			fmt.Fprintf(&b, "  %s: %.2f\n", category, s.ExpensesByType[category])
		}
	}

	b.WriteString("Budget targets (amount / target):\n")
	fmt.Fprintf(&b, "  Needs: %.2f / %.2f\n", s.GoalProgress.Needs.Amount, s.GoalProgress.Needs.Target)
	fmt.Fprintf(&b, "  Wants: %.2f / %.2f\n", s.GoalProgress.Wants.Amount, s.GoalProgress.Wants.Target)
	fmt.Fprintf(&b, "  Savings: %.2f / %.2f\n", s.GoalProgress.Savings.Amount, s.GoalProgress.Savings.Target)

	return b.String()
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// mapGeneratorErr classifies model-call failures so the transport layer can
// pick between retryable and permanent upstream errors.
func mapGeneratorErr(err error) error {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return errs.NewExternalServiceError("vertex", "insight generation temporarily unavailable", true, err)
	}
	return errs.NewExternalServiceError("vertex", "insight generation failed", false, err)
}
