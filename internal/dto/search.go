package dto

import (
	"time"

	"github.com/GregMSThompson/expense-tracker/internal/query"
)

// DateRange reports the observed dates of a (already limited) result set.
// Both ends are null when nothing matched.
type DateRange struct {
	Earliest *time.Time `json:"earliest"`
	Latest   *time.Time `json:"latest"`
}

type SearchResult struct {
	Transactions      []TransactionView  `json:"transactions"`
	Count             int                `json:"count"`
	TotalExpenses     float64            `json:"totalExpenses"`
	TotalIncome       float64            `json:"totalIncome"`
	NetAmount         float64            `json:"netAmount"`
	CategoryBreakdown map[string]float64 `json:"categoryBreakdown"`
	TypeBreakdown     map[string]float64 `json:"typeBreakdown"`
	SearchQuery       query.Criteria     `json:"searchQuery"`
	DateRange         DateRange          `json:"dateRange"`
}

// CategorySearchResult is the lighter shape returned by the category
// convenience lookup: no income/expense split, just a plain sum.
type CategorySearchResult struct {
	Transactions []TransactionView `json:"transactions"`
	Count        int               `json:"count"`
	TotalAmount  float64           `json:"totalAmount"`
	Category     string            `json:"category"`
}

type RecentResult struct {
	Transactions  []TransactionView `json:"transactions"`
	Count         int               `json:"count"`
	TotalExpenses float64           `json:"totalExpenses"`
	TotalIncome   float64           `json:"totalIncome"`
	Period        string            `json:"period"`
}

// TrendPoint is one (year, month, type) group in the spending-trend series.
type TrendPoint struct {
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	Type        string  `json:"type"`
	TotalAmount float64 `json:"totalAmount"`
	Count       int     `json:"count"`
}

type CategorySpend struct {
	ExpenseType string  `json:"expenseType"`
	TotalAmount float64 `json:"totalAmount"`
	Count       int     `json:"count"`
}

type TrendsResult struct {
	Trends           []TrendPoint    `json:"trends"`
	CategorySpending []CategorySpend `json:"categorySpending"`
	Period           string          `json:"period"`
}
