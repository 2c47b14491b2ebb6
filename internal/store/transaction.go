package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/internal/models"
	"github.com/GregMSThompson/expense-tracker/internal/query"
)

type transactionStore struct {
	client *firestore.Client
}

func NewTransactionStore(client *firestore.Client) *transactionStore {
	return &transactionStore{client: client}
}

func (s *transactionStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("transactions")
}

// IsValidUserID reports whether uid is a well-formed user identifier
// (Firebase uid / Firestore doc ID). Callers must reject invalid IDs before
// building a query so a malformed value can never match across users.
func (s *transactionStore) IsValidUserID(uid string) bool {
	if uid == "" || len(uid) > 128 {
		return false
	}
	if uid == "." || uid == ".." {
		return false
	}
	return !strings.ContainsAny(uid, "/")
}

// Find streams the user's transactions matching p, ordered by date.
// The date window and ordering are pushed down to Firestore; the residual
// predicate runs in-process while streaming, and limit counts matches, so a
// descending limited find means "most recent N matches".
func (s *transactionStore) Find(ctx context.Context, uid string, p *query.Predicate, desc bool, limit int, handle func(*models.Transaction) error) error {
	q := s.collection(uid).Query
	if p.DateFrom != nil {
		q = q.Where("date", ">=", *p.DateFrom)
	}
	if p.DateTo != nil {
		q = q.Where("date", "<=", *p.DateTo)
	}
	dir := firestore.Asc
	if desc {
		dir = firestore.Desc
	}
	q = q.OrderBy("date", dir)

	it := q.Documents(ctx)
	defer it.Stop()

	matched := 0
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return mapStoreErr("find", "failed to stream transactions", err)
		}

		var tx models.Transaction
		if err := doc.DataTo(&tx); err != nil {
			return errs.NewDatabaseError("find", "failed to parse transaction data", err)
		}
		if !p.Matches(&tx) {
			continue
		}
		if err := handle(&tx); err != nil {
			return err
		}
		matched++
		if limit > 0 && matched >= limit {
			return nil
		}
	}
}

// AggregateCardActivity groups the window's card transactions by mode,
// summing expense amounts into Spent and credit_card_payment amounts into
// Repaid. Firestore has no conditional aggregation, so this is a group-by-sum
// over the fetched window; only modes in cards contribute.
func (s *transactionStore) AggregateCardActivity(ctx context.Context, uid string, from, to time.Time, cards []string) (map[string]dto.CardActivity, error) {
	if len(cards) == 0 {
		return map[string]dto.CardActivity{}, nil
	}

	q := s.collection(uid).Query.
		Where("date", ">=", from).
		Where("date", "<=", to).
		Where("mode", "in", cards)

	it := q.Documents(ctx)
	defer it.Stop()

	out := make(map[string]dto.CardActivity, len(cards))
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, mapStoreErr("aggregate", "failed to aggregate card activity", err)
		}

		var tx models.Transaction
		if err := doc.DataTo(&tx); err != nil {
			return nil, errs.NewDatabaseError("aggregate", "failed to parse transaction data", err)
		}

		activity := out[tx.Mode]
		switch tx.Type {
		case models.TypeExpense:
			activity.Spent += tx.Amount
		case models.TypeCreditCardPayment:
			activity.Repaid += tx.Amount
		default:
			continue
		}
		out[tx.Mode] = activity
	}
}

func (s *transactionStore) Create(ctx context.Context, uid string, tx *models.Transaction) error {
	now := time.Now()
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = now
	}
	tx.UpdatedAt = now
	_, err := s.collection(uid).Doc(tx.TransactionID).Create(ctx, tx)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errs.NewAlreadyExistsError("transaction already exists")
		}
		return mapStoreErr("create", "failed to create transaction", err)
	}
	return nil
}

func (s *transactionStore) Get(ctx context.Context, uid, transactionID string) (*models.Transaction, error) {
	doc, err := s.collection(uid).Doc(transactionID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("transaction not found")
		}
		return nil, mapStoreErr("read", "failed to get transaction", err)
	}
	var tx models.Transaction
	if err := doc.DataTo(&tx); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse transaction data", err)
	}
	return &tx, nil
}

func (s *transactionStore) Update(ctx context.Context, uid string, tx *models.Transaction) error {
	tx.UpdatedAt = time.Now()
	_, err := s.collection(uid).Doc(tx.TransactionID).Set(ctx, tx)
	if err != nil {
		return mapStoreErr("update", "failed to update transaction", err)
	}
	return nil
}

func (s *transactionStore) Delete(ctx context.Context, uid, transactionID string) error {
	_, err := s.collection(uid).Doc(transactionID).Delete(ctx)
	if err != nil {
		return mapStoreErr("delete", "failed to delete transaction", err)
	}
	return nil
}

// mapStoreErr distinguishes transient store outages (retryable by the
// caller) from everything else.
func mapStoreErr(operation, message string, err error) error {
	code := status.Code(err)
	if code == codes.Unavailable || code == codes.DeadlineExceeded ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errs.NewStoreUnavailableError(operation, message, err)
	}
	return errs.NewDatabaseError(operation, message, err)
}
