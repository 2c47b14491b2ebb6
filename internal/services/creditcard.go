package services

import (
	"context"
	"time"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/errs"
)

type creditCardStore interface {
	IsValidUserID(uid string) bool
	AggregateCardActivity(ctx context.Context, uid string, from, to time.Time, cards []string) (map[string]dto.CardActivity, error)
}

type creditCardService struct {
	txs   creditCardStore
	cards []string
}

// NewCreditCardService builds a per-card spend/repayment reporter over the
// configured card roster.
func NewCreditCardService(txs creditCardStore, cards []string) *creditCardService {
	return &creditCardService{txs: txs, cards: cards}
}

// Summarize reports spend, repayments and the outstanding balance for every
// configured card in the given month. Cards with no activity still appear
// with zeroed figures, in roster order.
func (s *creditCardService) Summarize(ctx context.Context, uid string, month, year int) (dto.CreditCardSummary, error) {
	summary := dto.CreditCardSummary{
		Cards: []dto.CreditCardEntry{},
		Query: dto.CreditCardQuery{Month: month, Year: year},
	}

	if !s.txs.IsValidUserID(uid) {
		return summary, errs.NewInvalidUserError()
	}
	from, to, err := monthWindow(month, year)
	if err != nil {
		return summary, err
	}

	activity, err := s.txs.AggregateCardActivity(ctx, uid, from, to, s.cards)
	if err != nil {
		return summary, err
	}

	for _, card := range s.cards {
		a := activity[card]
		summary.Cards = append(summary.Cards, dto.CreditCardEntry{
			Card:        card,
			TotalSpent:  a.Spent,
			TotalRepaid: a.Repaid,
			Balance:     a.Spent - a.Repaid,
		})
	}

	return summary, nil
}
