package db

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/edivaldojuniordev/matrizcognis/internal/types"
)

// Persisted collection keys. One JSON blob per logical collection.
const (
	KeyTeams    = "teams"
	KeyProfiles = "profiles"
	KeyVotes    = "votes"
)

// LoadVotes reads and validates the votes blob. A never-written key
// yields an empty store, not an error.
func (db *DB) LoadVotes(ctx context.Context) (types.VoteStore, error) {
	data, err := db.GetValue(ctx, KeyVotes)
	if err != nil {
		return nil, err
	}
	return types.DecodeVotes(data)
}

// SaveVotes persists the whole vote store.
func (db *DB) SaveVotes(ctx context.Context, votes types.VoteStore) error {
	data, err := json.Marshal(votes)
	if err != nil {
		return fmt.Errorf("failed to marshal votes: %w", err)
	}
	return db.SetValue(ctx, KeyVotes, data)
}

// LoadTeams reads the teams blob; nil data yields an empty slice.
func (db *DB) LoadTeams(ctx context.Context) ([]types.Team, error) {
	data, err := db.GetValue(ctx, KeyTeams)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []types.Team{}, nil
	}
	var teams []types.Team
	if err := json.Unmarshal(data, &teams); err != nil {
		return nil, fmt.Errorf("malformed teams blob: %w", err)
	}
	return teams, nil
}

// SaveTeams persists the team list.
func (db *DB) SaveTeams(ctx context.Context, teams []types.Team) error {
	data, err := json.Marshal(teams)
	if err != nil {
		return fmt.Errorf("failed to marshal teams: %w", err)
	}
	return db.SetValue(ctx, KeyTeams, data)
}

// LoadProfiles reads the member profile overrides; nil data yields an
// empty slice.
func (db *DB) LoadProfiles(ctx context.Context) ([]types.Member, error) {
	data, err := db.GetValue(ctx, KeyProfiles)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []types.Member{}, nil
	}
	var profiles []types.Member
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("malformed profiles blob: %w", err)
	}
	return profiles, nil
}

// SaveProfiles persists the profile overrides.
func (db *DB) SaveProfiles(ctx context.Context, profiles []types.Member) error {
	data, err := json.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("failed to marshal profiles: %w", err)
	}
	return db.SetValue(ctx, KeyProfiles, data)
}

// LoadSnapshot fetches the three collections concurrently and returns one
// consistent-enough read for a render cycle. Each blob is still fetched
// atomically; cross-blob consistency follows the last-writer-wins model.
func (db *DB) LoadSnapshot(ctx context.Context) (*types.Snapshot, error) {
	var snap types.Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		teams, err := db.LoadTeams(gctx)
		if err != nil {
			return err
		}
		snap.Teams = teams
		return nil
	})
	g.Go(func() error {
		profiles, err := db.LoadProfiles(gctx)
		if err != nil {
			return err
		}
		snap.Profiles = profiles
		return nil
	})
	g.Go(func() error {
		votes, err := db.LoadVotes(gctx)
		if err != nil {
			return err
		}
		snap.Votes = votes
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}
