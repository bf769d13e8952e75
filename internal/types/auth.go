package types

import (
	"time"

	"github.com/google/uuid"
)

// User roles. Visitors are authenticated users whose identity does not
// resolve to a core team member; they still carry RoleMember on the account.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// User is the account record exposed by the API. The password hash never
// leaves the db package.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse carries the authenticated user and a signed token.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
