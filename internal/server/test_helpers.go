package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/edivaldojuniordev/matrizcognis/internal/config"
	"github.com/edivaldojuniordev/matrizcognis/internal/db"
	"github.com/edivaldojuniordev/matrizcognis/internal/types"
)

// memStore is an in-memory Store used by handler tests.
type memStore struct {
	mu       sync.Mutex
	users    map[uuid.UUID]*db.User
	votes    types.VoteStore
	teams    []types.Team
	profiles []types.Member

	saveVotesErr error
	loadVotesErr error
}

func newMemStore() *memStore {
	return &memStore{
		users: make(map[uuid.UUID]*db.User),
		votes: types.VoteStore{},
	}
}

func (m *memStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) CreateUser(_ context.Context, name, email, passwordHash, role string) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.New()
	m.users[id] = &db.User{ID: id, Name: name, Email: email, Role: role, PasswordHash: passwordHash}
	return id, nil
}

func (m *memStore) GetUser(_ context.Context, id uuid.UUID) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[id], nil
}

func (m *memStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memStore) LoadVotes(_ context.Context) (types.VoteStore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadVotesErr != nil {
		return nil, m.loadVotesErr
	}
	return m.votes.Clone(), nil
}

func (m *memStore) SaveVotes(_ context.Context, votes types.VoteStore) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveVotesErr != nil {
		return m.saveVotesErr
	}
	m.votes = votes.Clone()
	return nil
}

func (m *memStore) LoadTeams(_ context.Context) ([]types.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.teams, nil
}

func (m *memStore) SaveTeams(_ context.Context, teams []types.Team) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teams = teams
	return nil
}

func (m *memStore) LoadProfiles(_ context.Context) ([]types.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profiles, nil
}

func (m *memStore) SaveProfiles(_ context.Context, profiles []types.Member) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles = profiles
	return nil
}

func (m *memStore) LoadSnapshot(ctx context.Context) (*types.Snapshot, error) {
	teams, _ := m.LoadTeams(ctx)
	profiles, _ := m.LoadProfiles(ctx)
	votes, err := m.LoadVotes(ctx)
	if err != nil {
		return nil, err
	}
	return &types.Snapshot{Teams: teams, Profiles: profiles, Votes: votes}, nil
}

// fakeAssistant returns canned responses, or an error when set.
type fakeAssistant struct {
	answer   string
	analysis string
	scores   []types.AIScore
	err      error
}

func (f *fakeAssistant) Chat(context.Context, types.VoteStore, []types.Proposal, string) (string, error) {
	return f.answer, f.err
}

func (f *fakeAssistant) Analyze(context.Context, types.VoteStore, []types.Proposal) (string, error) {
	return f.analysis, f.err
}

func (f *fakeAssistant) Score(context.Context, []types.Proposal) ([]types.AIScore, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.scores, nil
}

// newTestServer wires a server over in-memory fakes with the default
// roster. The returned store is the same instance the server uses.
func newTestServer(asst AssistantService) (*Server, *memStore) {
	store := newMemStore()
	jwtService := NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
	srv := newServer(store, config.DefaultRoster(), jwtService, &config.PasswordConfig{BcryptCost: 10}, asst)
	return srv, store
}

// bearerFor mints a token for the given display name and role.
func bearerFor(s *Server, name, role string) string {
	token, err := s.jwtService.GenerateToken(uuid.New(), name, role)
	if err != nil {
		panic(fmt.Sprintf("failed to mint test token: %v", err))
	}
	return "Bearer " + token
}
