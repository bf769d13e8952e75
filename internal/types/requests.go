package types

// VoteRequest is the payload for casting one score on one criterion.
// Zero and out-of-range scores are rejected here, at the boundary; a vote
// is cleared through ClearVoteRequest, never by writing zero.
type VoteRequest struct {
	ProposalID string `json:"proposalId" validate:"required"`
	Criterion  int    `json:"criterion" validate:"gte=0"`
	Score      int    `json:"score" validate:"min=1,max=5"`
}

// ClearVoteRequest removes a previously cast score.
type ClearVoteRequest struct {
	ProposalID string `json:"proposalId" validate:"required"`
	Criterion  int    `json:"criterion" validate:"gte=0"`
}

// ChatRequest is one user message to the assistant.
type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1"`
}

// ResultsResponse holds the two independent stat sets. Official and
// visitor averages are never merged.
type ResultsResponse struct {
	Official []ProposalStats `json:"official"`
	Visitors []ProposalStats `json:"visitors"`
	Winner   *ProposalStats  `json:"winner,omitempty"`
}
