package dto

// MonthlyInsight is a model-written commentary on a month's summary.
type MonthlyInsight struct {
	Month   int    `json:"month"`
	Year    int    `json:"year"`
	Insight string `json:"insight"`
}
