package mongodb

import (
	"fintrack/internal/transaction"

	"go.mongodb.org/mongo-driver/bson"
)

// categoryAll is the sentinel meaning no category constraint.
const categoryAll = "all"

// buildFilter translates a list query into a store filter. Both date bounds
// are inclusive; when both are present the range is their conjunction.
func buildFilter(query transaction.ListQuery) bson.M {
	filter := bson.M{}

	if query.Category != "" && query.Category != categoryAll {
		filter["category"] = query.Category
	}

	if query.StartDate != nil || query.EndDate != nil {
		dateRange := bson.M{}
		if query.StartDate != nil {
			dateRange["$gte"] = *query.StartDate
		}
		if query.EndDate != nil {
			dateRange["$lte"] = *query.EndDate
		}
		filter["date"] = dateRange
	}

	return filter
}

// buildSort produces a single-field sort directive. Anything other than an
// explicit "desc" sorts ascending; ties resolve in store order.
func buildSort(sortBy, sortOrder string) bson.D {
	if sortBy == "" {
		sortBy = transaction.DefaultSortField
	}

	direction := 1
	if sortOrder == transaction.SortOrderDesc {
		direction = -1
	}

	return bson.D{{Key: sortBy, Value: direction}}
}
