package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/edivaldojuniordev/matrizcognis/internal/db"
	"github.com/edivaldojuniordev/matrizcognis/internal/types"
)

// handleSnapshot serves all three collections in one response, the way
// clients hydrate on login. Collections never written fall back to the
// roster defaults.
func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.LoadSnapshot(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Falha ao carregar os dados.")
		return
	}
	if len(snap.Teams) == 0 {
		snap.Teams = s.roster.Teams
	}
	if len(snap.Profiles) == 0 {
		snap.Profiles = s.roster.Members
	}
	if snap.Votes == nil {
		snap.Votes = types.VoteStore{}
	}
	writeJSON(w, http.StatusOK, snap)
}

// handleGetData serves one persisted collection by key: teams, profiles
// or votes. Unknown keys are rejected rather than treated as empty.
func (s *Server) handleGetData(w http.ResponseWriter, r *http.Request) {
	switch r.PathValue("key") {
	case db.KeyTeams:
		teams, err := s.store.LoadTeams(r.Context())
		if err != nil {
			jsonError(w, http.StatusInternalServerError, "Falha ao carregar os dados.")
			return
		}
		if len(teams) == 0 {
			teams = s.roster.Teams
		}
		writeJSON(w, http.StatusOK, teams)
	case db.KeyProfiles:
		profiles, err := s.store.LoadProfiles(r.Context())
		if err != nil {
			jsonError(w, http.StatusInternalServerError, "Falha ao carregar os dados.")
			return
		}
		if len(profiles) == 0 {
			profiles = s.roster.Members
		}
		writeJSON(w, http.StatusOK, profiles)
	case db.KeyVotes:
		votes, err := s.store.LoadVotes(r.Context())
		if err != nil {
			jsonError(w, http.StatusInternalServerError, "Falha ao carregar os dados.")
			return
		}
		writeJSON(w, http.StatusOK, votes)
	default:
		jsonError(w, http.StatusBadRequest, "Chave de dados desconhecida.")
	}
}

// handleSetData replaces one persisted collection. Writes are whole-blob
// and last-writer-wins; votes additionally pass the decode validation so
// a malformed payload can never land in storage.
func (s *Server) handleSetData(w http.ResponseWriter, r *http.Request) {
	switch r.PathValue("key") {
	case db.KeyTeams:
		var teams []types.Team
		if err := json.NewDecoder(r.Body).Decode(&teams); err != nil {
			jsonError(w, http.StatusBadRequest, "Dados incompletos.")
			return
		}
		if err := s.store.SaveTeams(r.Context(), teams); err != nil {
			jsonError(w, http.StatusInternalServerError, "Falha ao salvar os dados.")
			return
		}
	case db.KeyProfiles:
		var profiles []types.Member
		if err := json.NewDecoder(r.Body).Decode(&profiles); err != nil {
			jsonError(w, http.StatusBadRequest, "Dados incompletos.")
			return
		}
		if err := s.store.SaveProfiles(r.Context(), profiles); err != nil {
			jsonError(w, http.StatusInternalServerError, "Falha ao salvar os dados.")
			return
		}
	case db.KeyVotes:
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "Dados incompletos.")
			return
		}
		votes, err := types.DecodeVotes(raw)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "Votos inválidos.")
			return
		}
		if err := s.store.SaveVotes(r.Context(), votes); err != nil {
			jsonError(w, http.StatusInternalServerError, "Falha ao salvar os dados.")
			return
		}
	default:
		jsonError(w, http.StatusBadRequest, "Chave de dados desconhecida.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
