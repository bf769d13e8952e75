// Package assistant builds prompts from live voting data and mediates
// calls to the text-generation boundary: free chat, an executive
// analysis, and machine-generated proposal scores validated against a
// strict schema before anything trusts them.
package assistant

import (
	"fmt"
	"strings"

	"github.com/edivaldojuniordev/matrizcognis/internal/types"
	"github.com/edivaldojuniordev/matrizcognis/internal/voting"
)

// BuildContext serializes the evaluation state into prompt text: the
// rubric, the current official standings and every proposal's
// per-criterion justification. Ordering follows the input slices so the
// same state always produces the same context.
func BuildContext(store types.VoteStore, official []types.Member, proposals []types.Proposal, criteria []string) string {
	var b strings.Builder

	b.WriteString("DADOS DO AMBIENTE DE AVALIAÇÃO:\n")
	b.WriteString("CRITÉRIOS DE AVALIAÇÃO:\n")
	for i, c := range criteria {
		fmt.Fprintf(&b, "%d. %s\n", i+1, c)
	}

	stats := voting.ComputeStats(store, official, proposals, len(criteria))
	b.WriteString("\nSTATUS ATUAL DA VOTAÇÃO:\n")
	if winner := voting.Winner(stats); winner != nil {
		fmt.Fprintf(&b, "Vencedor atual: %s (média %.1f/%d, %d votos).\n",
			winner.Name, winner.Average, types.MaxScorePerCriterion*len(criteria), winner.VoteCount)
	} else {
		b.WriteString("Nenhuma proposta cadastrada.\n")
	}
	for _, s := range stats {
		fmt.Fprintf(&b, "- %s: total %d, votos %d, média %.1f\n", s.Name, s.TotalPoints, s.VoteCount, s.Average)
	}

	b.WriteString("\nDETALHAMENTO DAS PROPOSTAS:\n")
	for _, p := range proposals {
		fmt.Fprintf(&b, ">>> PROPOSTA ID: %s | NOME: %s\n", p.ID, p.Name)
		for i := range criteria {
			desc := p.Description(i)
			if desc == "" {
				desc = "NÃO PREENCHIDO"
			}
			fmt.Fprintf(&b, "    - Critério %d: %s\n", i+1, desc)
		}
	}
	return b.String()
}

// buildScoringData serializes only the proposal descriptions, without
// vote totals, so machine scores are driven by the written content alone.
func buildScoringData(proposals []types.Proposal, criteria []string) string {
	var b strings.Builder
	b.WriteString("CRITÉRIOS DE 1 a 5 (1=Péssimo/Alto Risco, 5=Excelente/Baixo Risco):\n")
	for i, c := range criteria {
		fmt.Fprintf(&b, "%d. %s\n", i+1, c)
	}
	b.WriteString("\nPROPOSTAS:\n")
	for _, p := range proposals {
		fmt.Fprintf(&b, "ID: %s | Nome: %s\n", p.ID, p.Name)
		for i := range criteria {
			desc := p.Description(i)
			if desc == "" {
				desc = "Vazio/Indefinido"
			}
			fmt.Fprintf(&b, "  Critério %d: %s\n", i+1, desc)
		}
	}
	return b.String()
}
