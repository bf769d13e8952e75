// Package types defines the domain model shared by the voting core, the
// report renderers, persistence and the HTTP layer.
package types

// Criteria is the default evaluation rubric. The criterion index in a
// vote refers to a position in this slice (or in a custom roster's
// criteria slice).
var Criteria = []string{
	"Clareza do Problema e Relevância",
	"Viabilidade do MVP",
	"Potencial de Planejamento Ágil (Sprints)",
	"Fator Apresentação (Demo)",
}

// MaxScorePerCriterion is the top of the scoring scale. Scores run 1..5;
// zero means "not scored" and is never stored.
const MaxScorePerCriterion = 5

// Score is one member's rating of one proposal on one criterion.
type Score int

// Valid reports whether s is an assignable score. Zero is the unscored
// sentinel and is not assignable.
func (s Score) Valid() bool {
	return s >= 1 && s <= MaxScorePerCriterion
}

// Member is an evaluator profile.
type Member struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Role             string   `json:"role,omitempty"`
	Bio              string   `json:"bio,omitempty"`
	PhotoURL         string   `json:"photoUrl,omitempty"`
	LinkedIn         string   `json:"linkedin,omitempty"`
	GitHub           string   `json:"github,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// Proposal is one candidate under evaluation. Descriptions holds the
// per-criterion analysis text, indexed like the criteria slice; missing
// entries mean no analysis was written for that criterion.
type Proposal struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Link         string   `json:"link,omitempty"`
	Descriptions []string `json:"descriptions"`
}

// Description returns the analysis text for criterion i, or "" when none
// was written.
func (p Proposal) Description(i int) string {
	if i < 0 || i >= len(p.Descriptions) {
		return ""
	}
	return p.Descriptions[i]
}

// TeamProject is the project a team is building.
type TeamProject struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

// Team is one working group in the cohort directory.
type Team struct {
	ID         string      `json:"id"`
	TeamNumber int         `json:"teamNumber"`
	Name       string      `json:"name"`
	Members    []string    `json:"members"`
	Project    TeamProject `json:"project"`
}

// ProposalStats is the aggregated result for one proposal within one
// cohort. Average is per voter, not per criterion: a voter's points are
// summed across criteria first, then averaged over voters.
type ProposalStats struct {
	ProposalID   string  `json:"proposalId"`
	Name         string  `json:"name"`
	TotalPoints  int     `json:"totalPoints"`
	VoteCount    int     `json:"voteCount"`
	Average      float64 `json:"average"`
	PercentOfMax float64 `json:"percentOfMax"`
}

// Snapshot is the full persisted state read in one pass: the team
// directory, evaluator profiles and the vote store.
type Snapshot struct {
	Teams    []Team    `json:"teams"`
	Profiles []Member  `json:"profiles"`
	Votes    VoteStore `json:"votes"`
}
