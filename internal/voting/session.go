package voting

import (
	"context"
	"fmt"

	"github.com/edivaldojuniordev/matrizcognis/internal/types"
)

// ErrInvalidScore indicates a score outside {1..5}. Zero in particular is
// the "not yet scored" sentinel and is rejected at this boundary so it can
// never be persisted as a vote.
type ErrInvalidScore struct {
	Score int
}

func (e *ErrInvalidScore) Error() string {
	return fmt.Sprintf("invalid score %d: must be between 1 and %d", e.Score, types.MaxScorePerCriterion)
}

// ErrInvalidCriterion indicates a criterion index outside the rubric.
type ErrInvalidCriterion struct {
	Criterion int
	Count     int
}

func (e *ErrInvalidCriterion) Error() string {
	return fmt.Sprintf("invalid criterion index %d: rubric has %d criteria", e.Criterion, e.Count)
}

// VotesWriter persists the whole votes blob. Writes are last-writer-wins
// at the storage boundary.
type VotesWriter interface {
	SaveVotes(ctx context.Context, votes types.VoteStore) error
}

// Session mediates vote submissions for one authenticated identity into
// the vote store. It is the single funnel for vote mutations in a process:
// aggregation reads snapshots, only the session writes.
type Session struct {
	votes         types.VoteStore
	coreIDs       []string
	criteriaCount int
	writer        VotesWriter
}

// NewSession wraps the current votes snapshot. The snapshot is cloned so
// the caller's copy stays immutable for any in-flight render.
func NewSession(votes types.VoteStore, coreIDs []string, criteriaCount int, writer VotesWriter) *Session {
	if votes == nil {
		votes = types.VoteStore{}
	}
	return &Session{
		votes:         votes.Clone(),
		coreIDs:       coreIDs,
		criteriaCount: criteriaCount,
		writer:        writer,
	}
}

// Votes returns the session's current store.
func (s *Session) Votes() types.VoteStore {
	return s.votes
}

// SubmitVote validates and records one score for the authenticated
// identity, then persists the updated store. The structural update is
// key-preserving: sibling criteria and proposals are never clobbered.
//
// On persistence failure the in-memory store already reflects the
// optimistic update; the error is returned so the caller can tell the
// user the vote may not be saved.
func (s *Session) SubmitVote(ctx context.Context, displayName, proposalID string, criterion int, score types.Score) (string, error) {
	if !score.Valid() {
		return "", &ErrInvalidScore{Score: int(score)}
	}
	if criterion < 0 || criterion >= s.criteriaCount {
		return "", &ErrInvalidCriterion{Criterion: criterion, Count: s.criteriaCount}
	}

	memberID := ResolveMemberID(displayName, s.coreIDs)
	s.votes.Set(memberID, proposalID, criterion, score)

	if err := s.writer.SaveVotes(ctx, s.votes); err != nil {
		return memberID, fmt.Errorf("failed to persist vote: %w", err)
	}
	return memberID, nil
}

// ClearVote removes a previously cast score. Clearing deletes the leaf
// rather than writing zero, keeping absence the only "unscored" state.
func (s *Session) ClearVote(ctx context.Context, displayName, proposalID string, criterion int) (string, error) {
	if criterion < 0 || criterion >= s.criteriaCount {
		return "", &ErrInvalidCriterion{Criterion: criterion, Count: s.criteriaCount}
	}

	memberID := ResolveMemberID(displayName, s.coreIDs)
	s.votes.Clear(memberID, proposalID, criterion)

	if err := s.writer.SaveVotes(ctx, s.votes); err != nil {
		return memberID, fmt.Errorf("failed to persist vote removal: %w", err)
	}
	return memberID, nil
}
