package dto

// Suggestions feeds form autocomplete: the user's most frequently used
// values per field, most frequent first.
type Suggestions struct {
	Payees       []string `json:"payees"`
	ExpenseTypes []string `json:"expenseTypes"`
	Modes        []string `json:"modes"`
}
