package server

import (
	"net/http"
	"time"

	"github.com/edivaldojuniordev/matrizcognis/internal/report"
	"github.com/edivaldojuniordev/matrizcognis/internal/types"
	"github.com/edivaldojuniordev/matrizcognis/internal/voting"
)

// handleReport renders the audit dossier as plain text.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	doc, err := s.renderReport(r, time.Now())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Falha ao gerar o relatório.")
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

// handleReportDoc renders the dossier as a Word-compatible HTML download.
func (s *Server) handleReportDoc(w http.ResponseWriter, r *http.Request) {
	votes, err := s.store.LoadVotes(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Falha ao gerar o relatório.")
		return
	}

	meta := s.reportMeta(votes, time.Now())
	fragment := report.RenderHTML(votes, s.roster.OfficialMembers(), s.roster.Proposals, s.roster.Criteria, meta)

	w.Header().Set("Content-Type", "application/msword; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="dossie-decisao.doc"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(report.WordDocument(fragment)))
}

func (s *Server) renderReport(r *http.Request, now time.Time) (string, error) {
	votes, err := s.store.LoadVotes(r.Context())
	if err != nil {
		return "", err
	}
	meta := s.reportMeta(votes, now)
	return report.RenderDocument(votes, s.roster.OfficialMembers(), s.roster.Proposals, s.roster.Criteria, meta), nil
}

// reportMeta names the current official winner as the project under
// audit and stamps the generation time. The renderers themselves stay
// pure; the clock only enters here.
func (s *Server) reportMeta(votes types.VoteStore, now time.Time) report.Meta {
	meta := report.Meta{GeneratedAt: now.Format("02/01/2006 15:04")}
	stats := voting.ComputeStats(votes, s.roster.OfficialMembers(), s.roster.Proposals, len(s.roster.Criteria))
	if winner := voting.Winner(stats); winner != nil && winner.VoteCount > 0 {
		meta.ProjectName = winner.Name
		for _, p := range s.roster.Proposals {
			if p.ID == winner.ProposalID {
				meta.ProjectLink = p.Link
				break
			}
		}
	}
	return meta
}
