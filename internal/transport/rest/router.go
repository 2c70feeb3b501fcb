package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"fintrack/internal"
	"fintrack/internal/category"
	"fintrack/internal/transaction"
	"fintrack/internal/transport/middleware"
	"fintrack/internal/transport/swagger"

	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/mongo"
)

const apiVersion = "1.0.0"

func RegisterAllRoutes(
	router *chi.Mux,
	cfg *internal.Config,
	client *mongo.Client,
	transactionHandler *transaction.Handler,
	categoryHandler *category.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(client, cfg.Env)

	// Apply global middleware
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recovery(logger))

	// Serve the OpenAPI document at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	router.Get("/", indexHandler)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Get("/categories", categoryHandler.GetCategories)

		r.Route("/transactions", func(tr chi.Router) {
			tr.Get("/", transactionHandler.ListTransactions)
			tr.Post("/", transactionHandler.CreateTransaction)
			tr.Get("/stats/summary", transactionHandler.GetStats)
			tr.Get("/{id}", transactionHandler.GetTransaction)
			tr.Put("/{id}", transactionHandler.UpdateTransaction)
			tr.Delete("/{id}", transactionHandler.DeleteTransaction)
		})
	})

	router.NotFound(notFoundHandler)
}

// indexHandler advertises the API surface at the root path.
func indexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Welcome to Personal Finance Tracker API",
		"version": apiVersion,
		"endpoints": map[string]string{
			"health":       "/api/health",
			"categories":   "/api/categories",
			"transactions": "/api/transactions",
			"stats":        "/api/transactions/stats/summary",
		},
	})
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": "Route not found",
		"path":    r.URL.Path,
	})
}
