package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	internal "fintrack/internal"
	"fintrack/internal/transaction"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TransactionRepository implements transaction.RepositoryAPI on a MongoDB
// collection. Identifier parsing happens here: a string that is not a valid
// ObjectID hex never reaches the store.
type TransactionRepository struct {
	collection   *mongo.Collection
	queryTimeout time.Duration
}

func NewTransactionRepository(db *mongo.Database, collectionName string, queryTimeout time.Duration) *TransactionRepository {
	return &TransactionRepository{
		collection:   db.Collection(collectionName),
		queryTimeout: queryTimeout,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *transaction.Transaction) error {
	ctx, cancel := internal.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	now := time.Now()
	tx.CreatedAt = now
	tx.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, tx)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	tx.ID = oid

	return nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*transaction.Transaction, error) {
	oid, appErr := parseObjectID(id)
	if appErr != nil {
		return nil, appErr
	}

	ctx, cancel := internal.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	var tx transaction.Transaction
	err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&tx)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, internal.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", id, err)
	}

	return &tx, nil
}

// Find returns transactions matching the query, sorted store-side. A limit
// of zero means the scan is unbounded.
func (r *TransactionRepository) Find(ctx context.Context, query transaction.ListQuery, limit int64) ([]transaction.Transaction, error) {
	ctx, cancel := internal.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(buildSort(query.SortBy, query.SortOrder))
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, buildFilter(query), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer cursor.Close(ctx)

	transactions := make([]transaction.Transaction, 0)
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}

	return transactions, nil
}

// Update applies a partial $set of the supplied fields and returns the
// document after the merge.
func (r *TransactionRepository) Update(ctx context.Context, id string, fields transaction.UpdateTransactionDTO) (*transaction.Transaction, error) {
	oid, appErr := parseObjectID(id)
	if appErr != nil {
		return nil, appErr
	}

	ctx, cancel := internal.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	if fields.Title != nil {
		set["title"] = *fields.Title
	}
	if fields.Amount != nil {
		set["amount"] = *fields.Amount
	}
	if fields.Date != nil {
		set["date"] = fields.Date.Time
	}
	if fields.Category != nil {
		set["category"] = *fields.Category
	}
	if fields.Description != nil {
		set["description"] = *fields.Description
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var tx transaction.Transaction
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&tx)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, internal.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to update transaction %s: %w", id, err)
	}

	return &tx, nil
}

// Delete removes the document and returns its prior state.
func (r *TransactionRepository) Delete(ctx context.Context, id string) (*transaction.Transaction, error) {
	oid, appErr := parseObjectID(id)
	if appErr != nil {
		return nil, appErr
	}

	ctx, cancel := internal.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	var tx transaction.Transaction
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&tx)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, internal.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to delete transaction %s: %w", id, err)
	}

	return &tx, nil
}

// DeleteAll drops every document in the collection. Used by the seeder.
func (r *TransactionRepository) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := internal.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	result, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to clear transactions: %w", err)
	}
	return result.DeletedCount, nil
}

func parseObjectID(id string) (primitive.ObjectID, *internal.AppError) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, internal.ErrInvalidTransactionID
	}
	return oid, nil
}
