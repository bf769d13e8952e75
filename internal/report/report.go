// Package report renders aggregated voting results into exportable
// documents: a plain Markdown text and an HTML fragment suitable for
// .doc download. Both projections are driven by the same aggregator
// output so the declared winner can never diverge between them.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/edivaldojuniordev/matrizcognis/internal/types"
	"github.com/edivaldojuniordev/matrizcognis/internal/voting"
)

// Meta carries caller-supplied document metadata. The generation date is
// injected rather than computed here, keeping rendering deterministic.
type Meta struct {
	ProjectName string
	ProjectLink string
	GeneratedAt string
}

// NoDescription is printed when a proposal has no justification for a
// criterion, so a blank entry is visually distinguishable from a missing one.
const NoDescription = "Sem descrição definida."

// notScored marks a criterion a member has not voted on yet.
const notScored = "_"

// RenderDocument renders the full decision document as Markdown text.
// Ordering always follows the proposals and members slices, never a map
// iteration, so two calls with identical inputs are byte-identical.
func RenderDocument(store types.VoteStore, members []types.Member, proposals []types.Proposal, criteria []string, meta Meta) string {
	var b strings.Builder

	b.WriteString("# Matriz de Análise Comparativa\n\n")
	if meta.ProjectName != "" {
		b.WriteString("Projeto em auditoria: " + meta.ProjectName + "\n")
	}
	if meta.ProjectLink != "" {
		b.WriteString("Link: " + meta.ProjectLink + "\n")
	}
	if meta.GeneratedAt != "" {
		b.WriteString("Gerado em: " + meta.GeneratedAt + "\n")
	}
	fmt.Fprintf(&b, "Avaliadores: %d\n\n", len(members))

	if len(proposals) == 0 {
		b.WriteString("Nenhuma proposta cadastrada para avaliação.\n")
		return b.String()
	}

	b.WriteString("## Critérios e Avaliações\n")
	for cIdx, criterion := range criteria {
		fmt.Fprintf(&b, "\n### %d. %s\n", cIdx+1, criterion)
		for _, proposal := range proposals {
			fmt.Fprintf(&b, "\n**%s**\n", proposal.Name)
			desc := proposal.Description(cIdx)
			if desc == "" {
				desc = NoDescription
			}
			b.WriteString(desc + "\n\nAvaliações da equipe:\n")
			for _, member := range members {
				display := notScored
				if score, ok := store.Get(member.ID, proposal.ID, cIdx); ok && score > 0 {
					display = strconv.Itoa(int(score))
				}
				fmt.Fprintf(&b, "- %s: [ %s ]/%d\n", member.Name, display, types.MaxScorePerCriterion)
			}
		}
	}

	b.WriteString("\n## Pontuação Total\n\n")
	writeTotalsTable(&b, store, members, proposals, len(criteria))

	stats := voting.ComputeStats(store, members, proposals, len(criteria))
	if winner := voting.Winner(stats); winner != nil {
		maxPoints := types.MaxScorePerCriterion * len(criteria)
		fmt.Fprintf(&b, "\nVencedor: %s (média %s/%d)\n", winner.Name, formatAvg(winner.Average), maxPoints)
	}
	return b.String()
}

// writeTotalsTable emits one Markdown table row per proposal: each
// member's per-proposal sum and the cohort average, using the same
// rules as the aggregator.
func writeTotalsTable(b *strings.Builder, store types.VoteStore, members []types.Member, proposals []types.Proposal, criteriaCount int) {
	maxPoints := types.MaxScorePerCriterion * criteriaCount

	b.WriteString("| Proposta |")
	for _, member := range members {
		b.WriteString(" " + firstName(member.Name) + " |")
	}
	b.WriteString(" Média |\n")

	b.WriteString("| --- |")
	for range members {
		b.WriteString(" --- |")
	}
	b.WriteString(" --- |\n")

	stats := voting.ComputeStats(store, members, proposals, criteriaCount)
	byID := make(map[string]types.ProposalStats, len(stats))
	for _, s := range stats {
		byID[s.ProposalID] = s
	}

	for _, proposal := range proposals {
		b.WriteString("| " + proposal.Name + " |")
		for _, member := range members {
			sum, voted := store.MemberSum(member.ID, proposal.ID)
			if voted {
				fmt.Fprintf(b, " %d/%d |", sum, maxPoints)
			} else {
				b.WriteString(" " + notScored + " |")
			}
		}
		b.WriteString(" " + formatAvg(byID[proposal.ID].Average) + " |\n")
	}
}

// formatAvg renders an average with one decimal place, matching the
// precision used across the UI and historical reports.
func formatAvg(avg float64) string {
	return strconv.FormatFloat(avg, 'f', 1, 64)
}

// firstName shortens a member's display name for table headers.
func firstName(name string) string {
	if i := strings.IndexByte(name, ' '); i > 0 {
		return name[:i]
	}
	return name
}
