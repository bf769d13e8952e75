package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/edivaldojuniordev/matrizcognis/internal/assistant"
	"github.com/edivaldojuniordev/matrizcognis/internal/voting"
)

// User-facing error messages. The login and registration strings are a
// fixed contract surfaced verbatim by clients.
const (
	MsgInvalidCredentials  = "Credenciais inválidas"
	MsgEmailAlreadyExists  = "E-mail já cadastrado"
	MsgAssistantFailed     = "O assistente não pôde responder. Tente novamente."
	MsgVoteNotSaved        = "Não foi possível salvar o voto. Tente novamente."
)

// ErrEmailAlreadyExists indicates the email is already registered.
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return MsgEmailAlreadyExists
}

// ErrInvalidCredentials indicates a failed login.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return MsgInvalidCredentials
}

// ErrValidation indicates a request that failed boundary validation.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus maps service errors to HTTP status codes.
func HTTPStatus(err error) int {
	var (
		emailExists    *ErrEmailAlreadyExists
		badCredentials *ErrInvalidCredentials
		validation     *ErrValidation
		invalidScore   *voting.ErrInvalidScore
		invalidCrit    *voting.ErrInvalidCriterion
		badScores      *assistant.ErrMalformedScores
	)
	switch {
	case errors.As(err, &emailExists):
		return http.StatusConflict
	case errors.As(err, &badCredentials):
		return http.StatusUnauthorized
	case errors.As(err, &validation), errors.As(err, &invalidScore), errors.As(err, &invalidCrit):
		return http.StatusBadRequest
	case errors.As(err, &badScores):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
