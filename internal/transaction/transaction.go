package transaction

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction is a single signed monetary record. The sign of Amount decides
// the type: positive is income, negative is expense. There is no separate
// type field in storage.
type Transaction struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Amount      float64            `json:"amount" bson:"amount"`
	Date        time.Time          `json:"date" bson:"date"`
	Category    string             `json:"category" bson:"category"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

const (
	TypeIncome  = "income"
	TypeExpense = "expense"

	// MaxListResults caps the listing endpoint. Statistics intentionally scan
	// without this cap; both behaviors match the observed system.
	MaxListResults = 100

	TitleMaxLength       = 100
	DescriptionMaxLength = 500
)

func (t *Transaction) IsIncome() bool {
	return t.Amount > 0
}

// Type derives the transaction type from the amount's sign.
func (t *Transaction) Type() string {
	if t.IsIncome() {
		return TypeIncome
	}
	return TypeExpense
}

// Response is the wire shape of a transaction. It carries the derived type
// alongside the stored fields.
type Response struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (t *Transaction) ToResponse() Response {
	return Response{
		ID:          t.ID.Hex(),
		Title:       t.Title,
		Amount:      t.Amount,
		Type:        t.Type(),
		Date:        t.Date,
		Category:    t.Category,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func ToResponseSlice(transactions []Transaction) []Response {
	result := make([]Response, len(transactions))
	for i := range transactions {
		result[i] = transactions[i].ToResponse()
	}
	return result
}
