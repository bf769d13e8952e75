package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// VoteStore holds every cast score, keyed member id → proposal id →
// criterion index. The structure is sparse: a missing leaf means "not
// scored", and zero-valued leaves are never stored.
type VoteStore map[string]map[string]map[int]Score

// Get returns the score at (memberID, proposalID, criterion) and whether
// one was cast.
func (v VoteStore) Get(memberID, proposalID string, criterion int) (Score, bool) {
	score, ok := v[memberID][proposalID][criterion]
	return score, ok
}

// Set records a score, creating intermediate maps as needed. Sibling
// criteria and proposals of the same member are untouched.
func (v VoteStore) Set(memberID, proposalID string, criterion int, score Score) {
	byProposal, ok := v[memberID]
	if !ok {
		byProposal = make(map[string]map[int]Score)
		v[memberID] = byProposal
	}
	byCriterion, ok := byProposal[proposalID]
	if !ok {
		byCriterion = make(map[int]Score)
		byProposal[proposalID] = byCriterion
	}
	byCriterion[criterion] = score
}

// Clear removes a score and prunes any maps it leaves empty, so absence
// stays the only representation of "not scored".
func (v VoteStore) Clear(memberID, proposalID string, criterion int) {
	byProposal, ok := v[memberID]
	if !ok {
		return
	}
	byCriterion, ok := byProposal[proposalID]
	if !ok {
		return
	}
	delete(byCriterion, criterion)
	if len(byCriterion) == 0 {
		delete(byProposal, proposalID)
	}
	if len(byProposal) == 0 {
		delete(v, memberID)
	}
}

// Clone returns a deep copy. Mutating the copy never affects v.
func (v VoteStore) Clone() VoteStore {
	out := make(VoteStore, len(v))
	for memberID, byProposal := range v {
		outProposals := make(map[string]map[int]Score, len(byProposal))
		for proposalID, byCriterion := range byProposal {
			outScores := make(map[int]Score, len(byCriterion))
			for criterion, score := range byCriterion {
				outScores[criterion] = score
			}
			outProposals[proposalID] = outScores
		}
		out[memberID] = outProposals
	}
	return out
}

// MemberSum returns the member's total points for a proposal across all
// criteria, and whether the member cast at least one positive score
// there. Zero-valued leaves, if present in decoded legacy data, do not
// count as participation.
func (v VoteStore) MemberSum(memberID, proposalID string) (int, bool) {
	sum := 0
	voted := false
	for _, score := range v[memberID][proposalID] {
		if score > 0 {
			sum += int(score)
			voted = true
		}
	}
	return sum, voted
}

// DecodeVotes parses a persisted votes blob. Criterion indexes must be
// non-negative and scores within [0, MaxScorePerCriterion]; anything else
// rejects the whole blob rather than silently dropping entries. Empty
// input yields an empty store.
func DecodeVotes(data []byte) (VoteStore, error) {
	if len(data) == 0 {
		return VoteStore{}, nil
	}
	var raw map[string]map[string]map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode votes: %w", err)
	}
	store := make(VoteStore, len(raw))
	for memberID, byProposal := range raw {
		for proposalID, byCriterion := range byProposal {
			for key, value := range byCriterion {
				criterion, err := strconv.Atoi(key)
				if err != nil {
					return nil, fmt.Errorf("failed to decode votes: criterion key %q is not a number", key)
				}
				if criterion < 0 {
					return nil, fmt.Errorf("failed to decode votes: negative criterion index %d", criterion)
				}
				if value < 0 || value > MaxScorePerCriterion {
					return nil, fmt.Errorf("failed to decode votes: score %d out of range for %s/%s", value, memberID, proposalID)
				}
				if value > 0 {
					store.Set(memberID, proposalID, criterion, Score(value))
				}
			}
		}
	}
	return store, nil
}
