package server

import (
	"net/http"

	"github.com/edivaldojuniordev/matrizcognis/internal/types"
	"github.com/edivaldojuniordev/matrizcognis/internal/voting"
)

// handleResults returns the aggregated standings. Official and visitor
// votes are aggregated separately and never merged; the winner is always
// drawn from the official cohort.
func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	votes, err := s.store.LoadVotes(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Falha ao carregar os votos.")
		return
	}

	criteriaCount := len(s.roster.Criteria)
	official := voting.ComputeStats(votes, s.roster.OfficialMembers(), s.roster.Proposals, criteriaCount)
	visitors := voting.ComputeStats(votes, s.visitorMembers(votes), s.roster.Proposals, criteriaCount)

	writeJSON(w, http.StatusOK, types.ResultsResponse{
		Official: official,
		Visitors: visitors,
		Winner:   voting.Winner(official),
	})
}

// visitorMembers lists everyone outside the core-team allow-list who
// could have voted: roster members off the list, plus the synthesized
// visitor identity when the store carries votes under it.
func (s *Server) visitorMembers(votes types.VoteStore) []types.Member {
	_, visitors := voting.SplitCohort(s.roster.Members, s.roster.CoreTeamIDs)
	if _, ok := votes[voting.VisitorID]; ok {
		for _, m := range visitors {
			if m.ID == voting.VisitorID {
				return visitors
			}
		}
		visitors = append(visitors, types.Member{ID: voting.VisitorID, Name: "Visitante"})
	}
	return visitors
}
