package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edivaldojuniordev/matrizcognis/internal/types"
)

var (
	ctxMembers = []types.Member{
		{ID: "ana", Name: "Ana Lima"},
		{ID: "bruno", Name: "Bruno Costa"},
	}
	ctxProposals = []types.Proposal{
		{ID: "p1", Name: "Proposta 1", Descriptions: []string{"Problema bem definido."}},
		{ID: "p2", Name: "Proposta 2"},
	}
	ctxCriteria = []string{"Clareza do Problema", "Viabilidade do MVP"}
)

func TestBuildContext_ContainsStandingsAndDetail(t *testing.T) {
	store := types.VoteStore{}
	store.Set("ana", "p1", 0, 5)
	store.Set("ana", "p1", 1, 4)

	out := BuildContext(store, ctxMembers, ctxProposals, ctxCriteria)

	assert.Contains(t, out, "1. Clareza do Problema\n")
	assert.Contains(t, out, "Vencedor atual: Proposta 1 (média 9.0/10, 1 votos).")
	assert.Contains(t, out, "- Proposta 1: total 9, votos 1, média 9.0\n")
	assert.Contains(t, out, ">>> PROPOSTA ID: p1 | NOME: Proposta 1\n")
	assert.Contains(t, out, "Critério 1: Problema bem definido.")
}

func TestBuildContext_BlankDescriptionsMarked(t *testing.T) {
	out := BuildContext(types.VoteStore{}, ctxMembers, ctxProposals, ctxCriteria)

	// Proposta 1 has text only for the first criterion; Proposta 2 has none
	assert.Contains(t, out, "NÃO PREENCHIDO")
}

func TestBuildContext_NoProposals(t *testing.T) {
	out := BuildContext(types.VoteStore{}, ctxMembers, nil, ctxCriteria)

	assert.Contains(t, out, "Nenhuma proposta cadastrada.\n")
}

func TestBuildContext_Deterministic(t *testing.T) {
	store := types.VoteStore{}
	store.Set("ana", "p1", 0, 3)
	store.Set("bruno", "p2", 1, 4)

	first := BuildContext(store, ctxMembers, ctxProposals, ctxCriteria)
	assert.Equal(t, first, BuildContext(store, ctxMembers, ctxProposals, ctxCriteria))
}

func TestBuildScoringData_OmitsVotes(t *testing.T) {
	out := buildScoringData(ctxProposals, ctxCriteria)

	assert.Contains(t, out, "ID: p1 | Nome: Proposta 1\n")
	assert.Contains(t, out, "Vazio/Indefinido")
	assert.NotContains(t, out, "votos")
	assert.NotContains(t, out, "média")
}
