package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/edivaldojuniordev/matrizcognis/internal/types"
)

const msgAssistantUnavailable = "Assistente indisponível: nenhuma chave de API configurada."

// handleAssistantChat answers a free-form question grounded in the
// current voting state.
func (s *Server) handleAssistantChat(w http.ResponseWriter, r *http.Request) {
	if s.assistant == nil {
		jsonError(w, http.StatusServiceUnavailable, msgAssistantUnavailable)
		return
	}

	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "Dados incompletos.")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		jsonError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	votes, err := s.store.LoadVotes(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Falha ao carregar os votos.")
		return
	}

	answer, err := s.assistant.Chat(r.Context(), votes, s.roster.Proposals, req.Message)
	if err != nil {
		log.Printf("assistant chat failed: %v", err)
		jsonError(w, http.StatusBadGateway, MsgAssistantFailed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
}

// handleAssistantScore asks the model to rate every proposal on every
// criterion. The payload is schema-validated before anything is returned;
// a malformed model response surfaces as an upstream failure, never as
// partial scores.
func (s *Server) handleAssistantScore(w http.ResponseWriter, r *http.Request) {
	if s.assistant == nil {
		jsonError(w, http.StatusServiceUnavailable, msgAssistantUnavailable)
		return
	}

	scores, err := s.assistant.Score(r.Context(), s.roster.Proposals)
	if err != nil {
		log.Printf("assistant scoring failed: %v", err)
		jsonError(w, http.StatusBadGateway, MsgAssistantFailed)
		return
	}
	writeJSON(w, http.StatusOK, scores)
}

// handleAssistantAnalyze produces a narrative analysis of the standings.
func (s *Server) handleAssistantAnalyze(w http.ResponseWriter, r *http.Request) {
	if s.assistant == nil {
		jsonError(w, http.StatusServiceUnavailable, msgAssistantUnavailable)
		return
	}

	votes, err := s.store.LoadVotes(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Falha ao carregar os votos.")
		return
	}

	analysis, err := s.assistant.Analyze(r.Context(), votes, s.roster.Proposals)
	if err != nil {
		log.Printf("assistant analysis failed: %v", err)
		jsonError(w, http.StatusBadGateway, MsgAssistantFailed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"analysis": analysis})
}
