// Package main provides the entry point for the innovation ecosystem
// directory API server and its maintenance commands.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ecosystem_api",
	Short: "Regional innovation ecosystem directory API",
	Long:  "ecosystem_api serves the regional innovation ecosystem directory: organizations, programs, grants, mentors, events, and the pathway recommendation engine, over a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
