package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/innovation-zone/ecosystem-api/internal/config"
	"github.com/innovation-zone/ecosystem-api/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the directory and recommendation endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT and config file)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	fileDefaults := config.Config{}
	if serveConfigPath != "" {
		fileCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		fileDefaults = *fileCfg
	}

	merged := cfg.MergeWithDefaults(fileDefaults)
	if servePort != 0 {
		merged.Port = servePort
	}
	if err := merged.Validate(); err != nil {
		return err
	}

	if merged.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if merged.GeminiAPIKey == "" {
		fmt.Fprintln(os.Stderr, "Warning: GEMINI_API_KEY not set, AI recommendations disabled")
	}

	srv, err := server.New(server.Config{
		Port:          merged.Port,
		DatabaseURL:   merged.DatabaseURL,
		GeminiAPIKey:  merged.GeminiAPIKey,
		AllowedOrigin: merged.AllowedOrigin,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
