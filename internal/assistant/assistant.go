package assistant

import (
	"context"
	"fmt"

	"github.com/edivaldojuniordev/matrizcognis/internal/llm"
	"github.com/edivaldojuniordev/matrizcognis/internal/prompts"
	"github.com/edivaldojuniordev/matrizcognis/internal/types"
)

const promptFile = "assistant.json"

// Assistant answers questions and produces analyses about the current
// evaluation state. It never fabricates data on failure: every provider
// error is surfaced to the caller.
type Assistant struct {
	client   llm.Client
	official []types.Member
	criteria []string
}

// New creates an assistant over the official cohort and rubric.
func New(client llm.Client, official []types.Member, criteria []string) *Assistant {
	return &Assistant{client: client, official: official, criteria: criteria}
}

// Chat answers one free-form question grounded in the current votes.
func (a *Assistant) Chat(ctx context.Context, store types.VoteStore, proposals []types.Proposal, question string) (string, error) {
	system := prompts.MustGet(promptFile, "chat_system")
	prompt := prompts.Format(prompts.MustGet(promptFile, "chat_question"), map[string]string{
		"Context":  BuildContext(store, a.official, proposals, a.criteria),
		"Question": question,
	})

	text, err := a.client.GenerateText(ctx, prompt, system)
	if err != nil {
		return "", fmt.Errorf("assistant chat failed: %w", err)
	}
	return text, nil
}

// Analyze produces the executive analysis report as free text.
func (a *Assistant) Analyze(ctx context.Context, store types.VoteStore, proposals []types.Proposal) (string, error) {
	prompt := prompts.Format(prompts.MustGet(promptFile, "analysis_task"), map[string]string{
		"Context": BuildContext(store, a.official, proposals, a.criteria),
	})

	text, err := a.client.GenerateText(ctx, prompt, "")
	if err != nil {
		return "", fmt.Errorf("assistant analysis failed: %w", err)
	}
	return text, nil
}

// Score asks the model to grade every proposal from its written
// descriptions alone, then strictly validates the JSON payload before
// returning it ranked by total score.
func (a *Assistant) Score(ctx context.Context, proposals []types.Proposal) ([]types.AIScore, error) {
	prompt := prompts.Format(prompts.MustGet(promptFile, "scoring_task"), map[string]string{
		"Data": buildScoringData(proposals, a.criteria),
	})

	raw, err := a.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("assistant scoring failed: %w", err)
	}
	return ParseScores([]byte(raw), proposals, len(a.criteria))
}
