package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edivaldojuniordev/matrizcognis/internal/types"
	"github.com/edivaldojuniordev/matrizcognis/internal/voting"
)

var (
	reportMembers = []types.Member{
		{ID: "ana", Name: "Ana Lima"},
		{ID: "bruno", Name: "Bruno Costa"},
	}
	reportProposals = []types.Proposal{
		{ID: "p1", Name: "Proposta Alfa", Descriptions: []string{"Análise do problema.", "Análise do MVP."}},
		{ID: "p2", Name: "Proposta Beta", Descriptions: []string{"Outro problema."}},
	}
	reportCriteria = []string{"Clareza do Problema", "Viabilidade do MVP"}
)

func sampleVotes() types.VoteStore {
	store := types.VoteStore{}
	store.Set("ana", "p1", 0, 5)
	store.Set("ana", "p1", 1, 4)
	store.Set("bruno", "p1", 0, 3)
	store.Set("ana", "p2", 0, 2)
	return store
}

func TestRenderDocument_Structure(t *testing.T) {
	doc := RenderDocument(sampleVotes(), reportMembers, reportProposals, reportCriteria, Meta{
		ProjectName: "Proposta Alfa",
		GeneratedAt: "01/02/2026 10:00",
	})

	assert.True(t, strings.HasPrefix(doc, "# Matriz de Análise Comparativa\n"))
	assert.Contains(t, doc, "Projeto em auditoria: Proposta Alfa\n")
	assert.Contains(t, doc, "Gerado em: 01/02/2026 10:00\n")
	assert.Contains(t, doc, "Avaliadores: 2\n")
	assert.Contains(t, doc, "### 1. Clareza do Problema\n")
	assert.Contains(t, doc, "### 2. Viabilidade do MVP\n")
	assert.Contains(t, doc, "**Proposta Alfa**\n")
	assert.Contains(t, doc, "Análise do MVP.")
	assert.Contains(t, doc, "- Ana Lima: [ 5 ]/5\n")
	assert.Contains(t, doc, "- Bruno Costa: [ 3 ]/5\n")
}

func TestRenderDocument_NotScoredPlaceholder(t *testing.T) {
	doc := RenderDocument(sampleVotes(), reportMembers, reportProposals, reportCriteria, Meta{})

	// Bruno did not score p1 on criterion 2 or p2 at all
	assert.Contains(t, doc, "- Bruno Costa: [ _ ]/5\n")
	assert.Contains(t, doc, "| Proposta Beta | 2/10 | _ | 2.0 |\n")
}

func TestRenderDocument_MissingDescription(t *testing.T) {
	doc := RenderDocument(types.VoteStore{}, reportMembers, reportProposals, reportCriteria, Meta{})

	// Proposta Beta has no text for the second criterion
	assert.Contains(t, doc, NoDescription)
}

func TestRenderDocument_TotalsTable(t *testing.T) {
	doc := RenderDocument(sampleVotes(), reportMembers, reportProposals, reportCriteria, Meta{})

	assert.Contains(t, doc, "| Proposta | Ana | Bruno | Média |\n")
	// Ana: 9/10, Bruno: 3/10, average per voter (9+3)/2 = 6.0
	assert.Contains(t, doc, "| Proposta Alfa | 9/10 | 3/10 | 6.0 |\n")
	assert.Contains(t, doc, "Vencedor: Proposta Alfa (média 6.0/10)\n")
}

func TestRenderDocument_NoProposals(t *testing.T) {
	doc := RenderDocument(types.VoteStore{}, reportMembers, nil, reportCriteria, Meta{})

	assert.Contains(t, doc, "Nenhuma proposta cadastrada para avaliação.\n")
	assert.NotContains(t, doc, "Vencedor:")
	assert.NotContains(t, doc, "## Pontuação Total")
}

func TestRenderDocument_Deterministic(t *testing.T) {
	store := sampleVotes()
	meta := Meta{ProjectName: "Proposta Alfa", GeneratedAt: "01/02/2026 10:00"}

	first := RenderDocument(store, reportMembers, reportProposals, reportCriteria, meta)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, RenderDocument(store, reportMembers, reportProposals, reportCriteria, meta))
	}
}

func TestRenderDocument_WinnerMatchesAggregator(t *testing.T) {
	configs := []types.VoteStore{}

	// p1 ahead
	a := types.VoteStore{}
	a.Set("ana", "p1", 0, 5)
	a.Set("ana", "p2", 0, 1)
	configs = append(configs, a)

	// p2 ahead on average despite fewer points than a full sweep
	b := types.VoteStore{}
	b.Set("ana", "p1", 0, 2)
	b.Set("bruno", "p1", 0, 2)
	b.Set("ana", "p2", 0, 3)
	configs = append(configs, b)

	// exact tie: stable order keeps p1 first
	c := types.VoteStore{}
	c.Set("ana", "p1", 0, 4)
	c.Set("ana", "p2", 0, 4)
	configs = append(configs, c)

	for i, store := range configs {
		stats := voting.ComputeStats(store, reportMembers, reportProposals, len(reportCriteria))
		winner := voting.Winner(stats)
		require.NotNil(t, winner, "config %d", i)

		doc := RenderDocument(store, reportMembers, reportProposals, reportCriteria, Meta{})
		assert.Contains(t, doc, "Vencedor: "+winner.Name+" (média ", "config %d", i)
	}
}
