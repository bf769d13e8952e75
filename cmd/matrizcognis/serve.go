package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edivaldojuniordev/matrizcognis/internal/server"
)

var (
	servePort   int
	serveRoster string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes auth, data sync, voting, results, report and assistant endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveRoster, "roster", "", "Path to a roster JSON file (default: built-in roster)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	cfg := server.Config{
		Port:        servePort,
		DatabaseURL: databaseURL,
		GeminiKey:   os.Getenv("GEMINI_API_KEY"),
		RosterPath:  serveRoster,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
