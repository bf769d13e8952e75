package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/edivaldojuniordev/matrizcognis/internal/types"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	userService *UserService
	jwtService  *JWTService
	validator   *validator.Validate
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(userService *UserService, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		validator:   validator.New(),
	}
}

// Register creates a member account and returns a session token.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, types.RoleMember, http.StatusCreated)
}

// RegisterAdmin creates an admin account. The route is admin-gated by
// middleware; this handler only differs in the role it assigns.
func (h *AuthHandler) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, types.RoleAdmin, http.StatusCreated)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request, role string, okStatus int) {
	var req types.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "Dados incompletos.")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		jsonError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	user, err := h.userService.Register(r.Context(), &req, role)
	if err != nil {
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID, user.Name, user.Role)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Falha ao gerar token.")
		return
	}

	writeJSON(w, okStatus, types.LoginResponse{User: user, Token: token})
}

// Login authenticates a user and returns a session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "Dados incompletos.")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		jsonError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	user, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID, user.Name, user.Role)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Falha ao gerar token.")
		return
	}

	writeJSON(w, http.StatusOK, types.LoginResponse{User: user, Token: token})
}

// validationMessage extracts the first field error from validator errors.
func validationMessage(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
	}
	return "validation error: invalid request"
}
