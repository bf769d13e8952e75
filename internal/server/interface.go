package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/edivaldojuniordev/matrizcognis/internal/db"
	"github.com/edivaldojuniordev/matrizcognis/internal/types"
)

// Store is the persistence surface the handlers depend on. *db.DB
// implements it; tests substitute an in-memory fake.
type Store interface {
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, name, email, passwordHash, role string) (uuid.UUID, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)

	LoadVotes(ctx context.Context) (types.VoteStore, error)
	SaveVotes(ctx context.Context, votes types.VoteStore) error
	LoadTeams(ctx context.Context) ([]types.Team, error)
	SaveTeams(ctx context.Context, teams []types.Team) error
	LoadProfiles(ctx context.Context) ([]types.Member, error)
	SaveProfiles(ctx context.Context, profiles []types.Member) error
	LoadSnapshot(ctx context.Context) (*types.Snapshot, error)
}

// AssistantService is the text-generation surface the handlers depend on.
// *assistant.Assistant implements it.
type AssistantService interface {
	Chat(ctx context.Context, store types.VoteStore, proposals []types.Proposal, question string) (string, error)
	Analyze(ctx context.Context, store types.VoteStore, proposals []types.Proposal) (string, error)
	Score(ctx context.Context, proposals []types.Proposal) ([]types.AIScore, error)
}
