package types

// AIScore is one proposal's machine-generated audit: a 1-5 score and a
// short justification per criterion. The payload originates from a
// generative model and must pass schema validation before it is trusted.
type AIScore struct {
	ProposalID   string   `json:"proposalId"`
	ProposalName string   `json:"proposalName"`
	Scores       []int    `json:"scores"`
	Reasoning    []string `json:"reasoning"`
	TotalScore   int      `json:"totalScore"`
}
