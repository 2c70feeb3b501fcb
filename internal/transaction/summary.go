package transaction

import "math"

// Summary holds aggregate totals over a transaction set. Expenses are
// reported as a positive magnitude, so Balance == TotalIncome - TotalExpenses
// and also equals the raw signed sum.
type Summary struct {
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpenses    float64 `json:"totalExpenses"`
	Balance          float64 `json:"balance"`
	TransactionCount int     `json:"transactionCount"`
}

// CategoryStat is the per-category income/expense breakdown.
type CategoryStat struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Count    int     `json:"count"`
}

// Summarize computes global totals in one pass. The fold is commutative, so
// the result does not depend on input order.
func Summarize(transactions []Transaction) Summary {
	s := Summary{TransactionCount: len(transactions)}

	for i := range transactions {
		amount := transactions[i].Amount
		if amount > 0 {
			s.TotalIncome += amount
		} else {
			s.TotalExpenses += math.Abs(amount)
		}
	}

	s.Balance = s.TotalIncome - s.TotalExpenses
	return s
}

// Aggregate computes global totals and the per-category breakdown in a single
// pass. Category buckets are created lazily on first encounter.
func Aggregate(transactions []Transaction) (Summary, map[string]CategoryStat) {
	summary := Summary{TransactionCount: len(transactions)}
	categoryStats := make(map[string]CategoryStat)

	for i := range transactions {
		tx := &transactions[i]

		stat := categoryStats[tx.Category]
		stat.Count++

		if tx.Amount > 0 {
			stat.Income += tx.Amount
			summary.TotalIncome += tx.Amount
		} else {
			stat.Expenses += math.Abs(tx.Amount)
			summary.TotalExpenses += math.Abs(tx.Amount)
		}

		categoryStats[tx.Category] = stat
	}

	summary.Balance = summary.TotalIncome - summary.TotalExpenses
	return summary, categoryStats
}
