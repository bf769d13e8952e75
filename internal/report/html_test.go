package report

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edivaldojuniordev/matrizcognis/internal/types"
)

func parseHTML(t *testing.T, fragment string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	require.NoError(t, err)
	return doc
}

func TestRenderHTML_Structure(t *testing.T) {
	fragment := RenderHTML(sampleVotes(), reportMembers, reportProposals, reportCriteria, Meta{
		ProjectName: "Proposta Alfa",
		GeneratedAt: "01/02/2026 10:00",
	})
	doc := parseHTML(t, fragment)

	assert.Equal(t, "Dossiê de Decisão Técnica", doc.Find("h1").Text())
	assert.Contains(t, fragment, "Projeto em auditoria: Proposta Alfa")
	assert.Contains(t, fragment, "Data da auditoria: 01/02/2026 10:00")

	// One score bar per proposal
	assert.Equal(t, 2, doc.Find("div.bar-bg > div.bar-fill").Length())
}

func TestRenderHTML_MetricsTable(t *testing.T) {
	fragment := RenderHTML(sampleVotes(), reportMembers, reportProposals, reportCriteria, Meta{})
	doc := parseHTML(t, fragment)

	rows := doc.Find("tbody tr")
	require.Equal(t, 2, rows.Length())

	// First row is the leader and carries the winner class
	first := rows.First()
	assert.True(t, first.HasClass("winner-row"))
	cells := first.Find("td")
	require.Equal(t, 5, cells.Length())
	assert.Equal(t, "Proposta Alfa", cells.Eq(0).Text())
	assert.Equal(t, "12", cells.Eq(1).Text())
	assert.Equal(t, "2", cells.Eq(2).Text())
	assert.Equal(t, "6.0", cells.Eq(3).Text())
	assert.Equal(t, "Recomendado", cells.Eq(4).Text())

	second := rows.Eq(1)
	assert.False(t, second.HasClass("winner-row"))
	assert.Equal(t, "Alternativa 1", second.Find("td").Eq(4).Text())
}

func TestRenderHTML_DecisionLineMatchesTable(t *testing.T) {
	fragment := RenderHTML(sampleVotes(), reportMembers, reportProposals, reportCriteria, Meta{})
	doc := parseHTML(t, fragment)

	leader := doc.Find("tbody tr").First().Find("td").First().Text()
	assert.Equal(t, leader, doc.Find("p strong").Text())
}

func TestRenderHTML_NoProposals(t *testing.T) {
	fragment := RenderHTML(nil, reportMembers, nil, reportCriteria, Meta{})

	assert.Contains(t, fragment, "Nenhuma proposta cadastrada para avaliação.")
	assert.NotContains(t, fragment, "<table>")
}

func TestRenderHTML_EscapesNames(t *testing.T) {
	proposals := append([]types.Proposal(nil), reportProposals...)
	proposals[0].Name = `<script>alert("x")</script>`

	fragment := RenderHTML(sampleVotes(), reportMembers, proposals, reportCriteria, Meta{})
	assert.NotContains(t, fragment, "<script>")
	assert.Contains(t, fragment, "&lt;script&gt;")
}

func TestWordDocument_Envelope(t *testing.T) {
	out := WordDocument("<h1>Teste</h1>")

	assert.True(t, strings.HasPrefix(out, "<html xmlns:o="))
	assert.Contains(t, out, "urn:schemas-microsoft-com:office:word")
	assert.Contains(t, out, wordStyles)
	assert.Contains(t, out, "<body><h1>Teste</h1></body>")
	assert.True(t, strings.HasSuffix(out, "</html>"))
}
