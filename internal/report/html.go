package report

import (
	"fmt"
	"html"
	"strings"

	"github.com/edivaldojuniordev/matrizcognis/internal/types"
	"github.com/edivaldojuniordev/matrizcognis/internal/voting"
)

// RenderHTML renders the decision report as an HTML fragment: header,
// score bars, and a metrics table. It shares the aggregator with
// RenderDocument so both projections always declare the same winner.
func RenderHTML(store types.VoteStore, members []types.Member, proposals []types.Proposal, criteria []string, meta Meta) string {
	var b strings.Builder

	b.WriteString("<h1>Dossiê de Decisão Técnica</h1>\n")
	b.WriteString("<p>Matriz de Análise Comparativa</p>\n")
	if meta.ProjectName != "" {
		fmt.Fprintf(&b, "<p>Projeto em auditoria: %s</p>\n", html.EscapeString(meta.ProjectName))
	}
	if meta.GeneratedAt != "" {
		fmt.Fprintf(&b, "<p>Data da auditoria: %s</p>\n", html.EscapeString(meta.GeneratedAt))
	}

	if len(proposals) == 0 {
		b.WriteString("<p>Nenhuma proposta cadastrada para avaliação.</p>\n")
		return b.String()
	}

	stats := voting.ComputeStats(store, members, proposals, len(criteria))
	winner := voting.Winner(stats)
	maxPoints := types.MaxScorePerCriterion * len(criteria)

	b.WriteString("<h2>Votação da Equipe</h2>\n")
	for _, s := range stats {
		fmt.Fprintf(&b, "<p>%s — %s/%d</p>\n", html.EscapeString(s.Name), formatAvg(s.Average), maxPoints)
		fmt.Fprintf(&b, "<div class=\"bar-bg\"><div class=\"bar-fill\" style=\"width:%.0f%%\"></div></div>\n", s.PercentOfMax)
	}

	b.WriteString("<h2>Métricas Detalhadas</h2>\n<table>\n<thead>\n<tr>")
	b.WriteString("<th>Projeto</th><th>Pontuação Bruta</th><th>Votos</th><th>Média</th><th>Status</th>")
	b.WriteString("</tr>\n</thead>\n<tbody>\n")
	for idx, s := range stats {
		rowClass := ""
		name := html.EscapeString(s.Name)
		status := fmt.Sprintf("Alternativa %d", idx)
		if idx == 0 {
			rowClass = " class=\"winner-row\""
			status = "Recomendado"
		}
		fmt.Fprintf(&b, "<tr%s><td>%s</td><td>%d</td><td>%d</td><td>%s</td><td>%s</td></tr>\n",
			rowClass, name, s.TotalPoints, s.VoteCount, formatAvg(s.Average), status)
	}
	b.WriteString("</tbody>\n</table>\n")

	if winner != nil {
		fmt.Fprintf(&b, "<p>Decisão oficial: <strong>%s</strong> (média %s/%d)</p>\n",
			html.EscapeString(winner.Name), formatAvg(winner.Average), maxPoints)
	}
	return b.String()
}

// wordStyles is the inline stylesheet embedded in exported .doc files.
const wordStyles = `<style>
body { font-family: 'Calibri', 'Arial', sans-serif; color: #333; line-height: 1.5; }
h1 { color: #2E1065; font-size: 24pt; border-bottom: 2px solid #ccc; padding-bottom: 10px; }
h2 { color: #4C1D95; font-size: 16pt; margin-top: 20px; border-bottom: 1px solid #eee; }
table { width: 100%; border-collapse: collapse; margin-top: 15px; }
th { background-color: #F3F4F6; border: 1px solid #000; padding: 10px; text-align: left; }
td { border: 1px solid #000; padding: 10px; vertical-align: top; }
.bar-bg { background-color: #E5E7EB; height: 15px; width: 100%; border: 1px solid #9CA3AF; }
.bar-fill { height: 100%; background-color: #10B981; }
.winner-row { background-color: #ECFDF5; }
</style>`

// WordDocument wraps an HTML fragment in the ms-word envelope browsers
// accept as a .doc download.
func WordDocument(fragment string) string {
	var b strings.Builder
	b.WriteString("<html xmlns:o='urn:schemas-microsoft-com:office:office' xmlns:w='urn:schemas-microsoft-com:office:word' xmlns='http://www.w3.org/TR/REC-html40'>")
	b.WriteString("<head><meta charset='utf-8'><title>Relatório de Análise</title>")
	b.WriteString(wordStyles)
	b.WriteString("</head><body>")
	b.WriteString(fragment)
	b.WriteString("</body></html>")
	return b.String()
}
