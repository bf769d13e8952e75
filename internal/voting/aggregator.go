// Package voting holds the aggregation core of the decision matrix: pure
// statistics over a vote store snapshot, identity resolution and the
// session controller that funnels vote writes.
package voting

import (
	"sort"

	"github.com/edivaldojuniordev/matrizcognis/internal/types"
)

// ComputeStats turns a vote store snapshot into ranked statistics for the
// given member cohort and proposal set. A member counts as one voter on a
// proposal when the sum of their cast scores on it is positive; partial
// votes contribute their raw partial sum undiluted. The average is
// "total score per voter", capped at 5*criteriaCount points.
//
// The result is sorted by average descending with a stable sort, so exact
// ties keep the order of the proposals slice. Passing an empty proposal
// list yields an empty slice; inputs are never mutated.
func ComputeStats(store types.VoteStore, members []types.Member, proposals []types.Proposal, criteriaCount int) []types.ProposalStats {
	stats := make([]types.ProposalStats, 0, len(proposals))
	maxPossible := float64(types.MaxScorePerCriterion * criteriaCount)

	for _, proposal := range proposals {
		s := types.ProposalStats{ProposalID: proposal.ID, Name: proposal.Name}
		for _, member := range members {
			sum, voted := store.MemberSum(member.ID, proposal.ID)
			if !voted {
				continue
			}
			s.TotalPoints += sum
			s.VoteCount++
		}
		if s.VoteCount > 0 {
			s.Average = float64(s.TotalPoints) / float64(s.VoteCount)
		}
		if maxPossible > 0 {
			s.PercentOfMax = s.Average / maxPossible * 100
			if s.PercentOfMax > 100 {
				s.PercentOfMax = 100
			}
		}
		stats = append(stats, s)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Average > stats[j].Average
	})
	return stats
}

// Winner returns the top-ranked entry, or nil when there are no stats.
// Callers must handle the nil case; there is no implicit default winner.
func Winner(stats []types.ProposalStats) *types.ProposalStats {
	if len(stats) == 0 {
		return nil
	}
	return &stats[0]
}

// SplitCohort partitions members into the official cohort (ids on the
// allow-list) and everyone else (visitors). Relative order is preserved
// within each partition.
func SplitCohort(members []types.Member, coreIDs []string) (official, visitors []types.Member) {
	core := make(map[string]bool, len(coreIDs))
	for _, id := range coreIDs {
		core[id] = true
	}
	for _, m := range members {
		if core[m.ID] {
			official = append(official, m)
		} else {
			visitors = append(visitors, m)
		}
	}
	return official, visitors
}
