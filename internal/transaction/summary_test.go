package transaction_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"fintrack/internal/transaction"
)

var _ = Describe("Summarize", func() {
	It("should return zero totals for an empty set", func() {
		summary := transaction.Summarize(nil)

		Expect(summary.TotalIncome).To(BeZero())
		Expect(summary.TotalExpenses).To(BeZero())
		Expect(summary.Balance).To(BeZero())
		Expect(summary.TransactionCount).To(Equal(0))
	})

	It("should report expenses as a positive magnitude", func() {
		txs := []transaction.Transaction{
			{Amount: 5000, Category: "income"},
			{Amount: -120.50, Category: "food"},
			{Amount: -40, Category: "food"},
		}

		summary := transaction.Summarize(txs)

		Expect(summary.TotalIncome).To(Equal(5000.0))
		Expect(summary.TotalExpenses).To(Equal(160.50))
		Expect(summary.Balance).To(Equal(4839.50))
		Expect(summary.TransactionCount).To(Equal(3))
	})

	It("should satisfy the balance identities", func() {
		txs := []transaction.Transaction{
			{Amount: 1200, Category: "income"},
			{Amount: -300.25, Category: "bills"},
			{Amount: 75.50, Category: "other"},
			{Amount: -19.99, Category: "entertainment"},
		}

		summary := transaction.Summarize(txs)

		Expect(summary.Balance).To(BeNumerically("~", summary.TotalIncome-summary.TotalExpenses, 1e-9))

		signedSum := 0.0
		for _, tx := range txs {
			signedSum += tx.Amount
		}
		Expect(summary.Balance).To(BeNumerically("~", signedSum, 1e-9))
	})

	It("should count every transaction in the set", func() {
		txs := make([]transaction.Transaction, 17)
		for i := range txs {
			txs[i] = transaction.Transaction{Amount: float64(i + 1), Category: "other"}
		}

		Expect(transaction.Summarize(txs).TransactionCount).To(Equal(len(txs)))
	})

	It("should be invariant under permutation of the input", func() {
		txs := []transaction.Transaction{
			{Amount: 5000, Category: "income"},
			{Amount: -120.50, Category: "food"},
			{Amount: -40, Category: "food"},
			{Amount: 850, Category: "income"},
			{Amount: -15.99, Category: "entertainment"},
		}

		base := transaction.Summarize(txs)

		reversed := make([]transaction.Transaction, len(txs))
		for i := range txs {
			reversed[i] = txs[len(txs)-1-i]
		}
		Expect(transaction.Summarize(reversed)).To(Equal(base))

		rotated := append(txs[2:], txs[:2]...)
		Expect(transaction.Summarize(rotated)).To(Equal(base))
	})
})

var _ = Describe("Aggregate", func() {
	It("should compute the per-category breakdown from the worked example", func() {
		txs := []transaction.Transaction{
			{Amount: 5000, Category: "income"},
			{Amount: -120.50, Category: "food"},
			{Amount: -40, Category: "food"},
		}

		summary, categoryStats := transaction.Aggregate(txs)

		Expect(summary.TotalIncome).To(Equal(5000.0))
		Expect(summary.TotalExpenses).To(Equal(160.50))
		Expect(summary.Balance).To(Equal(4839.50))
		Expect(summary.TransactionCount).To(Equal(3))

		Expect(categoryStats).To(HaveLen(2))
		Expect(categoryStats["food"]).To(Equal(transaction.CategoryStat{Income: 0, Expenses: 160.50, Count: 2}))
		Expect(categoryStats["income"]).To(Equal(transaction.CategoryStat{Income: 5000, Expenses: 0, Count: 1}))
	})

	It("should create category buckets lazily", func() {
		_, categoryStats := transaction.Aggregate([]transaction.Transaction{
			{Amount: -10, Category: "food"},
		})

		Expect(categoryStats).To(HaveKey("food"))
		Expect(categoryStats).NotTo(HaveKey("bills"))
	})

	It("should split income and expenses within one category", func() {
		_, categoryStats := transaction.Aggregate([]transaction.Transaction{
			{Amount: 200, Category: "other"},
			{Amount: -50, Category: "other"},
		})

		Expect(categoryStats["other"]).To(Equal(transaction.CategoryStat{Income: 200, Expenses: 50, Count: 2}))
	})

	It("should agree with Summarize on the global totals", func() {
		txs := []transaction.Transaction{
			{Amount: 310.10, Category: "income"},
			{Amount: -42, Category: "shopping"},
			{Amount: -7.25, Category: "food"},
		}

		summary, _ := transaction.Aggregate(txs)
		Expect(summary).To(Equal(transaction.Summarize(txs)))
	})

	It("should be invariant under permutation of the input", func() {
		txs := []transaction.Transaction{
			{Amount: 100, Category: "income"},
			{Amount: -25, Category: "food"},
			{Amount: -30, Category: "food"},
			{Amount: 60, Category: "other"},
		}

		baseSummary, baseStats := transaction.Aggregate(txs)

		reversed := make([]transaction.Transaction, len(txs))
		for i := range txs {
			reversed[i] = txs[len(txs)-1-i]
		}

		summary, stats := transaction.Aggregate(reversed)
		Expect(summary).To(Equal(baseSummary))
		Expect(stats).To(Equal(baseStats))
	})
})
