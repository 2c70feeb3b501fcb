package transaction

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

// RepositoryAPI defines the data access methods for transactions. A limit of
// zero means no cap on the result set.
type RepositoryAPI interface {
	Create(ctx context.Context, tx *Transaction) error
	GetByID(ctx context.Context, id string) (*Transaction, error)
	Find(ctx context.Context, query ListQuery, limit int64) ([]Transaction, error)
	Update(ctx context.Context, id string, fields UpdateTransactionDTO) (*Transaction, error)
	Delete(ctx context.Context, id string) (*Transaction, error)
}

// ListResult is the listing payload: one page of transactions plus the
// summary computed over that same page.
type ListResult struct {
	Transactions []Response `json:"transactions"`
	Summary      Summary    `json:"summary"`
}

// StatsResult is the statistics payload over the full filtered set.
type StatsResult struct {
	Summary       Summary                 `json:"summary"`
	CategoryStats map[string]CategoryStat `json:"categoryStats"`
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List returns at most MaxListResults transactions matching the query,
// together with a summary of the returned page. Callers narrow the date
// range to page through larger sets.
func (s *Service) List(ctx context.Context, query ListQuery) (*ListResult, error) {
	transactions, err := s.repo.Find(ctx, query, MaxListResults)
	if err != nil {
		s.logger.Error("failed to list transactions", "error", err, "category", query.Category)
		return nil, err
	}

	return &ListResult{
		Transactions: ToResponseSlice(transactions),
		Summary:      Summarize(transactions),
	}, nil
}

// Stats aggregates every transaction in the optional date range. Unlike List
// this scan is not capped.
func (s *Service) Stats(ctx context.Context, startDate, endDate *time.Time) (*StatsResult, error) {
	query := ListQuery{StartDate: startDate, EndDate: endDate}

	transactions, err := s.repo.Find(ctx, query, 0)
	if err != nil {
		s.logger.Error("failed to load transactions for stats", "error", err)
		return nil, err
	}

	summary, categoryStats := Aggregate(transactions)

	return &StatsResult{
		Summary:       summary,
		CategoryStats: categoryStats,
	}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Transaction, error) {
	tx, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Warn("failed to get transaction", "error", err, "transaction_id", id)
		return nil, err
	}
	return tx, nil
}

// Create validates the payload, fills the date default and persists the
// record. The stored transaction comes back with its assigned id.
func (s *Service) Create(ctx context.Context, dto CreateTransactionDTO) (*Transaction, error) {
	dto.Title = strings.TrimSpace(dto.Title)
	dto.Description = strings.TrimSpace(dto.Description)

	if err := dto.Validate(); err != nil {
		s.logger.Warn("transaction validation failed", "error", err)
		return nil, err
	}

	date := time.Now()
	if dto.Date != nil {
		date = dto.Date.Time
	}

	tx := &Transaction{
		Title:       dto.Title,
		Amount:      *dto.Amount,
		Date:        date,
		Category:    dto.Category,
		Description: dto.Description,
	}

	if err := s.repo.Create(ctx, tx); err != nil {
		s.logger.Error("failed to create transaction", "error", err)
		return nil, err
	}

	s.logger.Info("transaction created",
		"transaction_id", tx.ID.Hex(),
		"amount", tx.Amount,
		"category", tx.Category)

	return tx, nil
}

// Update merges the supplied fields into an existing record. Fields not
// present in the payload are left untouched.
func (s *Service) Update(ctx context.Context, id string, dto UpdateTransactionDTO) (*Transaction, error) {
	if dto.Title != nil {
		trimmed := strings.TrimSpace(*dto.Title)
		dto.Title = &trimmed
	}
	if dto.Description != nil {
		trimmed := strings.TrimSpace(*dto.Description)
		dto.Description = &trimmed
	}

	if err := dto.Validate(); err != nil {
		s.logger.Warn("transaction update validation failed", "error", err, "transaction_id", id)
		return nil, err
	}

	if dto.IsEmpty() {
		return s.repo.GetByID(ctx, id)
	}

	tx, err := s.repo.Update(ctx, id, dto)
	if err != nil {
		s.logger.Warn("failed to update transaction", "error", err, "transaction_id", id)
		return nil, err
	}

	s.logger.Info("transaction updated", "transaction_id", id)
	return tx, nil
}

// Delete removes the record and returns its prior state.
func (s *Service) Delete(ctx context.Context, id string) (*Transaction, error) {
	tx, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Warn("failed to delete transaction", "error", err, "transaction_id", id)
		return nil, err
	}

	s.logger.Info("transaction deleted", "transaction_id", id, "amount", tx.Amount)
	return tx, nil
}
