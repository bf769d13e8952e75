package voting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edivaldojuniordev/matrizcognis/internal/types"
)

var (
	testMembers = []types.Member{
		{ID: "ana", Name: "Ana"},
		{ID: "bruno", Name: "Bruno"},
		{ID: "carla", Name: "Carla"},
	}
	testProposals = []types.Proposal{
		{ID: "p1", Name: "Proposta 1"},
		{ID: "p2", Name: "Proposta 2"},
	}
)

func TestComputeStats_PerVoterAverage(t *testing.T) {
	store := types.VoteStore{}
	// Ana scores p1 on all four criteria: 20 points
	for c := 0; c < 4; c++ {
		store.Set("ana", "p1", c, 5)
	}
	// Bruno scores p1 on two criteria: 6 points
	store.Set("bruno", "p1", 0, 3)
	store.Set("bruno", "p1", 1, 3)

	stats := ComputeStats(store, testMembers, testProposals, 4)
	require.Len(t, stats, 2)

	p1 := stats[0]
	assert.Equal(t, "p1", p1.ProposalID)
	assert.Equal(t, 26, p1.TotalPoints)
	assert.Equal(t, 2, p1.VoteCount)
	// Average is per voter: 26/2, not divided by criteria
	assert.InDelta(t, 13.0, p1.Average, 0.001)
	assert.InDelta(t, 13.0/20.0*100, p1.PercentOfMax, 0.001)
}

func TestComputeStats_PartialVotersLiftAverage(t *testing.T) {
	// 80 points over 6 voters beats 45 over 3 on total but loses on
	// average: 13.3 vs 15.0.
	members := []types.Member{
		{ID: "m1"}, {ID: "m2"}, {ID: "m3"}, {ID: "m4"}, {ID: "m5"}, {ID: "m6"},
	}
	store := types.VoteStore{}
	fullScores := []types.Score{4, 3, 3, 3} // 13 points
	store.Set("m1", "p1", 0, 5)
	store.Set("m1", "p1", 1, 5)
	store.Set("m1", "p1", 2, 2)
	store.Set("m1", "p1", 3, 2) // 14
	for _, id := range []string{"m2", "m3", "m4", "m5"} {
		for c, s := range fullScores {
			store.Set(id, "p1", c, s)
		}
	}
	store.Set("m6", "p1", 0, 5)
	store.Set("m6", "p1", 1, 5)
	store.Set("m6", "p1", 2, 2)
	store.Set("m6", "p1", 3, 2) // 14 -> total 80

	for _, id := range []string{"m1", "m2", "m3"} {
		for c := 0; c < 3; c++ {
			store.Set(id, "p2", c, 5)
		}
	} // 45 points over 3 voters

	stats := ComputeStats(store, members, testProposals, 4)
	require.Len(t, stats, 2)

	// p2 ranks first despite the lower raw total
	assert.Equal(t, "p2", stats[0].ProposalID)
	assert.Equal(t, 45, stats[0].TotalPoints)
	assert.InDelta(t, 15.0, stats[0].Average, 0.001)
	assert.Equal(t, "p1", stats[1].ProposalID)
	assert.Equal(t, 80, stats[1].TotalPoints)
	assert.InDelta(t, 80.0/6.0, stats[1].Average, 0.001)
}

func TestComputeStats_NoVotes(t *testing.T) {
	stats := ComputeStats(types.VoteStore{}, testMembers, testProposals, 4)
	require.Len(t, stats, 2)

	for _, s := range stats {
		assert.Equal(t, 0, s.TotalPoints)
		assert.Equal(t, 0, s.VoteCount)
		assert.Zero(t, s.Average)
		assert.Zero(t, s.PercentOfMax)
	}
	// With all averages zero, input order is preserved
	assert.Equal(t, "p1", stats[0].ProposalID)
	assert.Equal(t, "p2", stats[1].ProposalID)
}

func TestComputeStats_TieKeepsInputOrder(t *testing.T) {
	store := types.VoteStore{}
	store.Set("ana", "p1", 0, 4)
	store.Set("ana", "p2", 0, 4)

	stats := ComputeStats(store, testMembers, testProposals, 4)
	require.Len(t, stats, 2)
	assert.Equal(t, "p1", stats[0].ProposalID)
	assert.Equal(t, "p2", stats[1].ProposalID)
}

func TestComputeStats_ZeroLeavesExcluded(t *testing.T) {
	// A zero leaf can enter a store via decoded legacy data; it must
	// contribute to neither points nor participation.
	store := types.VoteStore{}
	store.Set("ana", "p1", 0, 0)
	store.Set("ana", "p1", 1, 4)
	store.Set("bruno", "p1", 0, 0)

	stats := ComputeStats(store, testMembers, testProposals, 4)
	require.Len(t, stats, 2)

	p1 := stats[0]
	assert.Equal(t, "p1", p1.ProposalID)
	assert.Equal(t, 4, p1.TotalPoints)
	// Bruno's only leaf is a zero: he has not voted
	assert.Equal(t, 1, p1.VoteCount)
	assert.InDelta(t, 4.0, p1.Average, 0.001)
}

func TestComputeStats_IgnoresVotersOutsideCohort(t *testing.T) {
	store := types.VoteStore{}
	store.Set("ana", "p1", 0, 2)
	store.Set("visitor", "p1", 0, 5)

	stats := ComputeStats(store, testMembers, testProposals, 4)
	require.Len(t, stats, 2)
	assert.Equal(t, 2, stats[0].TotalPoints)
	assert.Equal(t, 1, stats[0].VoteCount)
}

func TestComputeStats_PercentOfMaxCapped(t *testing.T) {
	// A single criterion rubric: a voter sum can never exceed max, but a
	// degenerate criteriaCount smaller than the cast criteria must still
	// cap at 100.
	store := types.VoteStore{}
	store.Set("ana", "p1", 0, 5)
	store.Set("ana", "p1", 1, 5)

	stats := ComputeStats(store, testMembers, testProposals, 1)
	require.Len(t, stats, 2)
	assert.InDelta(t, 100.0, stats[0].PercentOfMax, 0.001)
}

func TestComputeStats_EmptyProposals(t *testing.T) {
	stats := ComputeStats(types.VoteStore{}, testMembers, nil, 4)
	assert.Empty(t, stats)
}

func TestWinner(t *testing.T) {
	assert.Nil(t, Winner(nil))
	assert.Nil(t, Winner([]types.ProposalStats{}))

	stats := []types.ProposalStats{
		{ProposalID: "p2", Average: 15},
		{ProposalID: "p1", Average: 13},
	}
	w := Winner(stats)
	require.NotNil(t, w)
	assert.Equal(t, "p2", w.ProposalID)
}

func TestSplitCohort(t *testing.T) {
	members := []types.Member{
		{ID: "ana"}, {ID: "lucas"}, {ID: "bruno"}, {ID: "dana"},
	}

	official, visitors := SplitCohort(members, []string{"ana", "bruno"})

	require.Len(t, official, 2)
	assert.Equal(t, "ana", official[0].ID)
	assert.Equal(t, "bruno", official[1].ID)
	require.Len(t, visitors, 2)
	assert.Equal(t, "lucas", visitors[0].ID)
	assert.Equal(t, "dana", visitors[1].ID)
}
