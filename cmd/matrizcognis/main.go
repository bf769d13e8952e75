// Package main provides the entry point for the MatrizCognis decision
// matrix server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "matrizcognis",
	Short: "MatrizCognis decision matrix server",
	Long:  "MatrizCognis aggregates weighted criterion scores from a fixed evaluation team, keeps official and visitor votes separate, and exports an auditable decision dossier via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
