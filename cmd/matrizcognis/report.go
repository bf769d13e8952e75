package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/edivaldojuniordev/matrizcognis/internal/config"
	"github.com/edivaldojuniordev/matrizcognis/internal/db"
	"github.com/edivaldojuniordev/matrizcognis/internal/report"
	"github.com/edivaldojuniordev/matrizcognis/internal/voting"
)

var (
	reportRoster string
	reportDoc    bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the decision dossier from stored votes",
	Long:  `Load the persisted vote store and print the audit dossier to stdout, as plain text or as Word-compatible HTML.`,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportRoster, "roster", "", "Path to a roster JSON file (default: built-in roster)")
	reportCmd.Flags().BoolVar(&reportDoc, "doc", false, "Emit Word-compatible HTML instead of plain text")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	roster, err := config.LoadRoster(reportRoster)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	votes, err := database.LoadVotes(ctx)
	if err != nil {
		return err
	}

	meta := report.Meta{GeneratedAt: time.Now().Format("02/01/2006 15:04")}
	stats := voting.ComputeStats(votes, roster.OfficialMembers(), roster.Proposals, len(roster.Criteria))
	if winner := voting.Winner(stats); winner != nil && winner.VoteCount > 0 {
		meta.ProjectName = winner.Name
		for _, p := range roster.Proposals {
			if p.ID == winner.ProposalID {
				meta.ProjectLink = p.Link
				break
			}
		}
	}

	official := roster.OfficialMembers()
	if reportDoc {
		fragment := report.RenderHTML(votes, official, roster.Proposals, roster.Criteria, meta)
		fmt.Println(report.WordDocument(fragment))
		return nil
	}
	fmt.Println(report.RenderDocument(votes, official, roster.Proposals, roster.Criteria, meta))
	return nil
}
