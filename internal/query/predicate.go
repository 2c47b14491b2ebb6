// Package query builds store-agnostic predicates from search criteria.
// Building a predicate never touches the store; the store pushes the date
// window and ordering down to Firestore and applies Matches to the rest.
package query

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/internal/models"
)

const dateLayout = "2006-01-02"

// Criteria is the raw, optional search input as supplied by the caller.
// Empty fields mean "no constraint".
type Criteria struct {
	Search        string `json:"search,omitempty"`
	Category      string `json:"category,omitempty"`
	ExpenseType   string `json:"expenseType,omitempty"`
	Type          string `json:"type,omitempty"`
	Mode          string `json:"mode,omitempty"`
	Payee         string `json:"payee,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
	PaymentApp    string `json:"paymentApp,omitempty"`
	NeedsWants    string `json:"needsWants,omitempty"`
	StartDate     string `json:"startDate,omitempty"`
	EndDate       string `json:"endDate,omitempty"`
	MinAmount     string `json:"minAmount,omitempty"`
	MaxAmount     string `json:"maxAmount,omitempty"`
}

// Predicate is a compiled description of match criteria. DateFrom/DateTo are
// exported so the store can push the window down to its own query engine;
// everything else is evaluated in Matches.
type Predicate struct {
	DateFrom *time.Time
	DateTo   *time.Time

	minAmount *float64
	maxAmount *float64

	category      string
	expenseType   string
	txType        string
	paymentMethod string
	paymentApp    string
	needsWants    string

	search *regexp.Regexp
	mode   *regexp.Regexp
	payee  *regexp.Regexp

	// anyCategory matches when category, expenseType or needsWants equals it.
	anyCategory string
}

// Build compiles criteria into a predicate. Free text is escaped with
// regexp.QuoteMeta so pattern metacharacters match literally. Malformed
// amounts or dates yield a ValidationError.
func Build(c Criteria) (*Predicate, error) {
	p := &Predicate{
		category:      c.Category,
		expenseType:   c.ExpenseType,
		txType:        c.Type,
		paymentMethod: c.PaymentMethod,
		paymentApp:    c.PaymentApp,
		needsWants:    c.NeedsWants,
	}

	if s := strings.TrimSpace(c.Search); s != "" {
		p.search = substringPattern(s)
	}
	if c.Mode != "" {
		p.mode = substringPattern(c.Mode)
	}
	// An explicit payee filter is redundant when free-text search is present,
	// since search already covers the payee field.
	if c.Payee != "" && p.search == nil {
		p.payee = substringPattern(c.Payee)
	}

	if c.StartDate != "" {
		t, err := parseDate(c.StartDate)
		if err != nil {
			return nil, errs.NewValidationError("invalid startDate: " + c.StartDate)
		}
		p.DateFrom = &t
	}
	if c.EndDate != "" {
		t, err := parseDate(c.EndDate)
		if err != nil {
			return nil, errs.NewValidationError("invalid endDate: " + c.EndDate)
		}
		eod := endOfDay(t)
		p.DateTo = &eod
	}

	if c.MinAmount != "" {
		v, err := strconv.ParseFloat(c.MinAmount, 64)
		if err != nil {
			return nil, errs.NewValidationError("invalid minAmount: " + c.MinAmount)
		}
		p.minAmount = &v
	}
	if c.MaxAmount != "" {
		v, err := strconv.ParseFloat(c.MaxAmount, 64)
		if err != nil {
			return nil, errs.NewValidationError("invalid maxAmount: " + c.MaxAmount)
		}
		p.maxAmount = &v
	}

	return p, nil
}

// ForWindow builds a predicate constrained only by an inclusive time range.
func ForWindow(from, to time.Time) *Predicate {
	p := &Predicate{}
	if !from.IsZero() {
		p.DateFrom = &from
	}
	if !to.IsZero() {
		p.DateTo = &to
	}
	return p
}

// ForCategory builds a predicate matching transactions whose category,
// expenseType or needsWants equals the given value.
func ForCategory(category string) *Predicate {
	return &Predicate{anyCategory: category}
}

// Matches evaluates all compiled constraints against a transaction.
// The date window is included so in-memory execution stays correct even
// when a store has already pushed it down.
func (p *Predicate) Matches(t *models.Transaction) bool {
	if p.DateFrom != nil && t.Date.Before(*p.DateFrom) {
		return false
	}
	if p.DateTo != nil && t.Date.After(*p.DateTo) {
		return false
	}
	if p.minAmount != nil && t.Amount < *p.minAmount {
		return false
	}
	if p.maxAmount != nil && t.Amount > *p.maxAmount {
		return false
	}
	if p.category != "" && t.Category != p.category {
		return false
	}
	if p.expenseType != "" && t.ExpenseType != p.expenseType {
		return false
	}
	if p.txType != "" && string(t.Type) != p.txType {
		return false
	}
	if p.paymentMethod != "" && t.PaymentMethod != p.paymentMethod {
		return false
	}
	if p.paymentApp != "" && t.PaymentApp != p.paymentApp {
		return false
	}
	if p.needsWants != "" && string(t.NeedsWants) != p.needsWants {
		return false
	}
	if p.mode != nil && !p.mode.MatchString(t.Mode) {
		return false
	}
	if p.payee != nil && !p.payee.MatchString(t.Payee) {
		return false
	}
	if p.search != nil && !matchesSearch(p.search, t) {
		return false
	}
	if p.anyCategory != "" &&
		t.Category != p.anyCategory &&
		t.ExpenseType != p.anyCategory &&
		string(t.NeedsWants) != p.anyCategory {
		return false
	}
	return true
}

// matchesSearch OR-matches the free-text pattern across the searchable fields.
func matchesSearch(re *regexp.Regexp, t *models.Transaction) bool {
	return re.MatchString(t.Payee) ||
		re.MatchString(t.Remarks) ||
		re.MatchString(t.ExpenseType) ||
		re.MatchString(t.PaymentMethod) ||
		re.MatchString(t.PaymentApp)
}

// substringPattern compiles a case-insensitive, literal substring matcher.
// QuoteMeta is what keeps user input from being interpreted as pattern syntax.
func substringPattern(s string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(s))
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(dateLayout, s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// endOfDay promotes a date to the last instant of that calendar day,
// making endDate inclusive.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
}
