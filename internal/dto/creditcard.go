package dto

// CreditCardEntry is the month's activity for one roster card. Cards with no
// matching transactions still appear with zeros; the roster, not the data,
// determines the output shape.
type CreditCardEntry struct {
	Card        string  `json:"card"`
	TotalSpent  float64 `json:"totalSpent"`
	TotalRepaid float64 `json:"totalRepaid"`
	Balance     float64 `json:"balance"`
}

// CardActivity is the store-level aggregate for one mode value.
type CardActivity struct {
	Spent  float64
	Repaid float64
}

type CreditCardQuery struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

type CreditCardSummary struct {
	Cards []CreditCardEntry `json:"cards"`
	Query CreditCardQuery   `json:"query"`
}
