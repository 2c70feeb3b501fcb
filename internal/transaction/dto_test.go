package transaction_test

import (
	"encoding/json"
	"net/url"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internal "fintrack/internal"
	"fintrack/internal/transaction"
)

var _ = Describe("Date payloads", func() {
	It("should unmarshal a bare calendar date", func() {
		var dto transaction.CreateTransactionDTO
		err := json.Unmarshal([]byte(`{"title":"Lunch","amount":-10,"category":"food","date":"2026-01-15"}`), &dto)

		Expect(err).NotTo(HaveOccurred())
		Expect(dto.Date.Time).To(Equal(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)))
	})

	It("should unmarshal an RFC 3339 timestamp", func() {
		var dto transaction.UpdateTransactionDTO
		err := json.Unmarshal([]byte(`{"date":"2026-01-15T09:30:00Z"}`), &dto)

		Expect(err).NotTo(HaveOccurred())
		Expect(dto.Date.Hour()).To(Equal(9))
	})

	It("should reject a string that is not a date", func() {
		var dto transaction.CreateTransactionDTO
		err := json.Unmarshal([]byte(`{"date":"someday"}`), &dto)

		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("ParseListQuery", func() {
	It("should default to sorting by date descending", func() {
		query, appErr := transaction.ParseListQuery(url.Values{})

		Expect(appErr).To(BeNil())
		Expect(query.SortBy).To(Equal(transaction.DefaultSortField))
		Expect(query.SortOrder).To(Equal(transaction.SortOrderDesc))
		Expect(query.StartDate).To(BeNil())
		Expect(query.EndDate).To(BeNil())
	})

	It("should carry explicit sort parameters through", func() {
		values := url.Values{}
		values.Set("sortBy", "amount")
		values.Set("sortOrder", "asc")

		query, appErr := transaction.ParseListQuery(values)

		Expect(appErr).To(BeNil())
		Expect(query.SortBy).To(Equal("amount"))
		Expect(query.SortOrder).To(Equal(transaction.SortOrderAsc))
	})

	It("should accept bare calendar dates", func() {
		values := url.Values{}
		values.Set("startDate", "2026-01-01")
		values.Set("endDate", "2026-01-31")

		query, appErr := transaction.ParseListQuery(values)

		Expect(appErr).To(BeNil())
		Expect(*query.StartDate).To(Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
		Expect(*query.EndDate).To(Equal(time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)))
	})

	It("should accept RFC 3339 timestamps", func() {
		values := url.Values{}
		values.Set("startDate", "2026-01-01T12:30:00Z")

		query, appErr := transaction.ParseListQuery(values)

		Expect(appErr).To(BeNil())
		Expect(query.StartDate.Hour()).To(Equal(12))
	})

	It("should reject a malformed date as a validation error", func() {
		values := url.Values{}
		values.Set("startDate", "not-a-date")

		_, appErr := transaction.ParseListQuery(values)

		Expect(appErr).NotTo(BeNil())
		Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		Expect(appErr.StatusCode).To(Equal(400))
	})
})

var _ = Describe("UpdateTransactionDTO", func() {
	It("should report an empty payload", func() {
		Expect(transaction.UpdateTransactionDTO{}.IsEmpty()).To(BeTrue())

		title := "Lunch"
		Expect(transaction.UpdateTransactionDTO{Title: &title}.IsEmpty()).To(BeFalse())
	})

	It("should not validate fields that were not supplied", func() {
		Expect(transaction.UpdateTransactionDTO{}.Validate()).To(BeNil())
	})
})
