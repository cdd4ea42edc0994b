package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/innovation-zone/ecosystem-api/internal/db"
	"github.com/innovation-zone/ecosystem-api/internal/stage"
)

var categorizeCmd = &cobra.Command{
	Use:   "categorize",
	Short: "Recategorize all programs into business stages",
	Long:  `Scan every program and assign a business lifecycle stage inferred from its title and description. Programs whose stored stage already matches are left untouched.`,
	RunE:  runCategorize,
}

func init() {
	rootCmd.AddCommand(categorizeCmd)
}

func runCategorize(cmd *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	result, err := stage.CategorizeAll(ctx, database, func(format string, args ...any) {
		fmt.Printf(format+"\n", args...)
	})
	if err != nil {
		return err
	}

	fmt.Println("\nCategorization complete:")
	fmt.Printf("  Total:     %d\n", result.Total)
	fmt.Printf("  Updated:   %d\n", result.Updated)
	fmt.Printf("  Unchanged: %d\n", result.Unchanged)
	fmt.Printf("  No match:  %d\n", result.NoMatch)
	return nil
}
