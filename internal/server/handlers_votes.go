package server

import (
	"encoding/json"
	"net/http"

	"github.com/edivaldojuniordev/matrizcognis/internal/server/middleware"
	"github.com/edivaldojuniordev/matrizcognis/internal/types"
	"github.com/edivaldojuniordev/matrizcognis/internal/voting"
)

// handleSubmitVote records one score for the authenticated caller. The
// caller's display name, not a client-supplied id, determines which
// member the vote is attributed to.
func (s *Server) handleSubmitVote(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentity(r)
	if err != nil {
		jsonError(w, http.StatusUnauthorized, "Acesso negado. Token não fornecido.")
		return
	}

	var req types.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "Dados incompletos.")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		jsonError(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	if !s.proposalExists(req.ProposalID) {
		jsonError(w, http.StatusBadRequest, "Proposta desconhecida.")
		return
	}

	votes, err := s.store.LoadVotes(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Falha ao carregar os votos.")
		return
	}

	session := voting.NewSession(votes, s.roster.CoreTeamIDs, len(s.roster.Criteria), s.store)
	memberID, err := session.SubmitVote(r.Context(), identity.Name, req.ProposalID, req.Criterion, types.Score(req.Score))
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			jsonError(w, status, MsgVoteNotSaved)
			return
		}
		jsonError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"memberId": memberID,
		"votes":    session.Votes(),
	})
}

// handleClearVote removes a previously cast score for the caller.
func (s *Server) handleClearVote(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentity(r)
	if err != nil {
		jsonError(w, http.StatusUnauthorized, "Acesso negado. Token não fornecido.")
		return
	}

	var req types.ClearVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "Dados incompletos.")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		jsonError(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	if !s.proposalExists(req.ProposalID) {
		jsonError(w, http.StatusBadRequest, "Proposta desconhecida.")
		return
	}

	votes, err := s.store.LoadVotes(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Falha ao carregar os votos.")
		return
	}

	session := voting.NewSession(votes, s.roster.CoreTeamIDs, len(s.roster.Criteria), s.store)
	memberID, err := session.ClearVote(r.Context(), identity.Name, req.ProposalID, req.Criterion)
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			jsonError(w, status, MsgVoteNotSaved)
			return
		}
		jsonError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"memberId": memberID,
		"votes":    session.Votes(),
	})
}

func (s *Server) proposalExists(id string) bool {
	for _, p := range s.roster.Proposals {
		if p.ID == id {
			return true
		}
	}
	return false
}
