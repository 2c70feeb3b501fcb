package transaction

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	errors "fintrack/internal"
	"fintrack/internal/category"
	"fintrack/internal/core/common/validation"
)

// Date is a time.Time that also unmarshals from a bare calendar date, the
// shape browser clients send for date pickers.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t, err := parseDate(raw)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d *Date) timePtr() *time.Time {
	if d == nil {
		return nil
	}
	return &d.Time
}

// CreateTransactionDTO is the request payload for creating a transaction.
// Amount is a pointer so a missing field is distinguishable from zero, and
// Date is optional with creation time as the default.
type CreateTransactionDTO struct {
	Title       string   `json:"title"`
	Amount      *float64 `json:"amount"`
	Date        *Date    `json:"date"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
}

func (dto CreateTransactionDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("title", dto.Title).Required().MaxLength(TitleMaxLength)
	v.Field("amount", dto.Amount).Required().NonZero()
	v.Field("date", dto.Date.timePtr()).NotFuture()
	v.Field("category", dto.Category).Required().OneOf(category.Names())
	v.Field("description", dto.Description).MaxLength(DescriptionMaxLength)
	return v.Validate()
}

// UpdateTransactionDTO carries a partial update: nil fields are left
// untouched, supplied fields are validated and merged.
type UpdateTransactionDTO struct {
	Title       *string  `json:"title"`
	Amount      *float64 `json:"amount"`
	Date        *Date    `json:"date"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
}

func (dto UpdateTransactionDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	if dto.Title != nil {
		v.Field("title", dto.Title).Required().MaxLength(TitleMaxLength)
	}
	if dto.Amount != nil {
		v.Field("amount", dto.Amount).NonZero()
	}
	if dto.Date != nil {
		v.Field("date", dto.Date.timePtr()).NotFuture()
	}
	if dto.Category != nil {
		v.Field("category", dto.Category).Required().OneOf(category.Names())
	}
	if dto.Description != nil {
		v.Field("description", dto.Description).MaxLength(DescriptionMaxLength)
	}
	return v.Validate()
}

// IsEmpty reports whether no field was supplied at all. An empty update is
// accepted and returns the record unchanged.
func (dto UpdateTransactionDTO) IsEmpty() bool {
	return dto.Title == nil && dto.Amount == nil && dto.Date == nil &&
		dto.Category == nil && dto.Description == nil
}

// ListQuery is the filter and sort specification for listing transactions.
// The category sentinel "all" and an empty category both mean no constraint.
// Date bounds are inclusive.
type ListQuery struct {
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
	SortBy    string
	SortOrder string
}

const (
	DefaultSortField = "date"
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
)

// ParseListQuery reads filter and sort parameters from the request query
// string. Malformed dates are rejected as a validation error.
func ParseListQuery(values url.Values) (ListQuery, *errors.AppError) {
	q := ListQuery{
		Category:  values.Get("category"),
		SortBy:    values.Get("sortBy"),
		SortOrder: values.Get("sortOrder"),
	}

	if q.SortBy == "" {
		q.SortBy = DefaultSortField
	}
	if q.SortOrder == "" {
		q.SortOrder = SortOrderDesc
	}

	var appErr *errors.AppError
	if q.StartDate, appErr = parseDateParam(values, "startDate"); appErr != nil {
		return q, appErr
	}
	if q.EndDate, appErr = parseDateParam(values, "endDate"); appErr != nil {
		return q, appErr
	}

	return q, nil
}

func parseDateParam(values url.Values, name string) (*time.Time, *errors.AppError) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}

	t, err := parseDate(raw)
	if err != nil {
		return nil, errors.NewValidationFieldError(name,
			fmt.Sprintf("%s must be a valid ISO 8601 date", name),
			errors.ErrCodeInvalidDateRange)
	}
	return &t, nil
}

// parseDate accepts full RFC 3339 timestamps and bare calendar dates.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
