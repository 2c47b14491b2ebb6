package dto

// GoalStat is the spent amount against a percentage-of-income target for one
// budget bucket. Targets are income multiples, so a zero-income month yields
// zero targets rather than a division fault.
type GoalStat struct {
	Amount float64 `json:"amount"`
	Target float64 `json:"target"`
}

type GoalProgress struct {
	Needs   GoalStat `json:"needs"`
	Wants   GoalStat `json:"wants"`
	Savings GoalStat `json:"savings"`
	// Invested is folded into Savings and kept as a zeroed placeholder so
	// existing consumers that expect the key keep working.
	Invested GoalStat `json:"invested"`
}

type MonthlySummary struct {
	TotalIncome        float64 `json:"totalIncome"`
	TotalExpenses      float64 `json:"totalExpenses"`
	TotalSavings       float64 `json:"totalSavings"`
	TotalInvestments   float64 `json:"totalInvestments"`
	CreditCardPayments float64 `json:"creditCardPayments"`
	NetFlow            float64 `json:"netFlow"`

	Income     []TransactionView `json:"income"`
	Expenses   []TransactionView `json:"expenses"`
	Savings    []TransactionView `json:"savings"`
	CCPayments []TransactionView `json:"ccPayments"`

	ExpensesByType       map[string]float64 `json:"expensesByType"`
	ExpensesByNeedsWants map[string]float64 `json:"expensesByNeedsWants"`

	GoalProgress GoalProgress `json:"goalProgress"`
}
