package transaction_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internal "fintrack/internal"
	"fintrack/internal/transaction"
	"fintrack/internal/transport"

	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ = Describe("Transaction Handler", func() {
	var (
		repo    *mockTransactionRepository
		handler *transaction.Handler
		router  *chi.Mux
	)

	BeforeEach(func() {
		repo = newMockTransactionRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service := transaction.NewService(repo, logger)
		handler = transaction.NewHandler(transport.NewBaseHandler(logger, false), service)

		router = chi.NewRouter()
		router.Route("/transactions", func(r chi.Router) {
			r.Get("/", handler.ListTransactions)
			r.Post("/", handler.CreateTransaction)
			r.Get("/stats/summary", handler.GetStats)
			r.Get("/{id}", handler.GetTransaction)
			r.Put("/{id}", handler.UpdateTransaction)
			r.Delete("/{id}", handler.DeleteTransaction)
		})
	})

	seed := func(amount float64, categoryName string) *transaction.Transaction {
		tx := &transaction.Transaction{
			Title:    "seeded",
			Amount:   amount,
			Date:     time.Now().AddDate(0, 0, -1),
			Category: categoryName,
		}
		err := repo.Create(context.Background(), tx)
		Expect(err).NotTo(HaveOccurred())
		return tx
	}

	Describe("POST /transactions", func() {
		It("should create a transaction and respond 201 with the envelope", func() {
			body := `{"title":"Salary","amount":5000,"category":"income"}`
			req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))

			var resp struct {
				Success bool                 `json:"success"`
				Message string               `json:"message"`
				Data    transaction.Response `json:"data"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Success).To(BeTrue())
			Expect(resp.Message).To(Equal("Transaction created successfully"))
			Expect(resp.Data.ID).NotTo(BeEmpty())
			Expect(resp.Data.Type).To(Equal(transaction.TypeIncome))
		})

		It("should accept a bare calendar date in the body", func() {
			body := `{"title":"Lunch","amount":-10,"category":"food","date":"2026-01-15"}`
			req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))

			var resp struct {
				Data transaction.Response `json:"data"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Data.Date).To(BeTemporally("==", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)))
		})

		It("should respond 400 with field errors for an invalid payload", func() {
			body := `{"title":"","amount":0,"category":"bogus"}`
			req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))

			var resp struct {
				Success bool                       `json:"success"`
				Errors  []internal.ValidationError `json:"errors"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Success).To(BeFalse())
			Expect(resp.Errors).NotTo(BeEmpty())
		})

		It("should respond 400 for a body that is not JSON", func() {
			req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader("{not json"))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /transactions", func() {
		It("should return the page and its summary", func() {
			repo.findResult = []transaction.Transaction{
				{ID: primitive.NewObjectID(), Amount: 5000, Category: "income"},
				{ID: primitive.NewObjectID(), Amount: -160.50, Category: "food"},
			}

			req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp struct {
				Success bool                   `json:"success"`
				Data    transaction.ListResult `json:"data"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Success).To(BeTrue())
			Expect(resp.Data.Transactions).To(HaveLen(2))
			Expect(resp.Data.Summary.Balance).To(Equal(4839.50))
		})

		It("should respond 400 for a malformed date filter", func() {
			req := httptest.NewRequest(http.MethodGet, "/transactions?startDate=garbage", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /transactions/stats/summary", func() {
		It("should return summary and category stats", func() {
			repo.findResult = []transaction.Transaction{
				{ID: primitive.NewObjectID(), Amount: 5000, Category: "income"},
				{ID: primitive.NewObjectID(), Amount: -120.50, Category: "food"},
				{ID: primitive.NewObjectID(), Amount: -40, Category: "food"},
			}

			req := httptest.NewRequest(http.MethodGet, "/transactions/stats/summary", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp struct {
				Success bool                    `json:"success"`
				Data    transaction.StatsResult `json:"data"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Data.Summary.TotalExpenses).To(Equal(160.50))
			Expect(resp.Data.CategoryStats["food"].Count).To(Equal(2))
		})
	})

	Describe("GET /transactions/{id}", func() {
		It("should return the transaction", func() {
			tx := seed(-40, "food")

			req := httptest.NewRequest(http.MethodGet, "/transactions/"+tx.ID.Hex(), nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp struct {
				Data transaction.Response `json:"data"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Data.ID).To(Equal(tx.ID.Hex()))
			Expect(resp.Data.Type).To(Equal(transaction.TypeExpense))
		})

		It("should respond 404 for an unknown id", func() {
			req := httptest.NewRequest(http.MethodGet, "/transactions/"+primitive.NewObjectID().Hex(), nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("should respond 400 for a malformed id", func() {
			req := httptest.NewRequest(http.MethodGet, "/transactions/zzz", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("PUT /transactions/{id}", func() {
		It("should merge supplied fields and respond 200", func() {
			tx := seed(-40, "food")

			body := `{"amount":-45.5}`
			req := httptest.NewRequest(http.MethodPut, "/transactions/"+tx.ID.Hex(), strings.NewReader(body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp struct {
				Message string               `json:"message"`
				Data    transaction.Response `json:"data"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Message).To(Equal("Transaction updated successfully"))
			Expect(resp.Data.Amount).To(Equal(-45.5))
			Expect(resp.Data.Title).To(Equal("seeded"))
		})

		It("should respond 404 for an unknown id", func() {
			body := `{"title":"Lunch"}`
			req := httptest.NewRequest(http.MethodPut, "/transactions/"+primitive.NewObjectID().Hex(), strings.NewReader(body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("DELETE /transactions/{id}", func() {
		It("should respond with the deleted record", func() {
			tx := seed(-89.99, "shopping")

			req := httptest.NewRequest(http.MethodDelete, "/transactions/"+tx.ID.Hex(), nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp struct {
				Success bool                 `json:"success"`
				Data    transaction.Response `json:"data"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Success).To(BeTrue())
			Expect(resp.Data.Amount).To(Equal(-89.99))
		})

		It("should respond 404 for an unknown id", func() {
			req := httptest.NewRequest(http.MethodDelete, "/transactions/"+primitive.NewObjectID().Hex(), nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})
})
