package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"fintrack/internal/transaction"
	"fintrack/internal/transaction/mongodb"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample transactions for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		client, err := connectMongo(cfg.Database)
		if err != nil {
			log.Fatalf("failed to connect to MongoDB: %v", err)
		}
		ctx := context.Background()
		defer client.Disconnect(ctx)

		repo := mongodb.NewTransactionRepository(
			client.Database(cfg.Database.Name),
			cfg.Database.Collection,
			cfg.Database.QueryTimeout,
		)

		if clearData {
			deleted, err := repo.DeleteAll(ctx)
			if err != nil {
				log.Fatalf("failed to clear transactions: %v", err)
			}
			fmt.Printf("Cleared %d existing transactions\n", deleted)
		}

		now := time.Now()
		samples := []transaction.Transaction{
			{Title: "Monthly salary", Amount: 5000, Category: "income", Date: now.AddDate(0, 0, -28)},
			{Title: "Freelance project", Amount: 850, Category: "income", Date: now.AddDate(0, 0, -14), Description: "Landing page build"},
			{Title: "Rent", Amount: -1400, Category: "bills", Date: now.AddDate(0, 0, -27)},
			{Title: "Groceries", Amount: -120.50, Category: "food", Date: now.AddDate(0, 0, -20)},
			{Title: "Dinner out", Amount: -40, Category: "food", Date: now.AddDate(0, 0, -18)},
			{Title: "Monthly transit pass", Amount: -75, Category: "transportation", Date: now.AddDate(0, 0, -25)},
			{Title: "Streaming subscription", Amount: -15.99, Category: "entertainment", Date: now.AddDate(0, 0, -10)},
			{Title: "Pharmacy", Amount: -32.40, Category: "healthcare", Date: now.AddDate(0, 0, -8)},
			{Title: "Online course", Amount: -49, Category: "education", Date: now.AddDate(0, 0, -5), Description: "Go fundamentals"},
			{Title: "New headphones", Amount: -89.99, Category: "shopping", Date: now.AddDate(0, 0, -3)},
		}

		for i := range samples {
			if err := repo.Create(ctx, &samples[i]); err != nil {
				log.Fatalf("failed to seed transaction %q: %v", samples[i].Title, err)
			}
		}

		fmt.Printf("Seeded %d transactions into %s.%s\n", len(samples), cfg.Database.Name, cfg.Database.Collection)
	},
}
