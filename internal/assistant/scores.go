package assistant

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/xeipuuv/gojsonschema"

	"github.com/edivaldojuniordev/matrizcognis/internal/types"
)

// ErrMalformedScores indicates the model returned a payload that does not
// satisfy the scoring schema. The payload is never partially trusted.
type ErrMalformedScores struct {
	Reason string
}

func (e *ErrMalformedScores) Error() string {
	return fmt.Sprintf("malformed assistant scores: %s", e.Reason)
}

// scoresSchema builds the JSON Schema the scoring payload must satisfy:
// an array with one entry per proposal, each carrying exactly
// criteriaCount integer scores in [1,5] and as many reasoning strings.
func scoresSchema(criteriaCount int) string {
	return fmt.Sprintf(`{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["proposalId", "proposalName", "scores", "reasoning"],
			"properties": {
				"proposalId": {"type": "string", "minLength": 1},
				"proposalName": {"type": "string", "minLength": 1},
				"scores": {
					"type": "array",
					"minItems": %d,
					"maxItems": %d,
					"items": {"type": "integer", "minimum": 1, "maximum": %d}
				},
				"reasoning": {
					"type": "array",
					"minItems": %d,
					"maxItems": %d,
					"items": {"type": "string"}
				}
			}
		}
	}`, criteriaCount, criteriaCount, types.MaxScorePerCriterion, criteriaCount, criteriaCount)
}

// ParseScores validates a raw scoring payload against the schema plus the
// proposal list, computes totals and returns the entries sorted by total
// descending (stable, so equal totals keep payload order).
func ParseScores(raw []byte, proposals []types.Proposal, criteriaCount int) ([]types.AIScore, error) {
	schemaLoader := gojsonschema.NewStringLoader(scoresSchema(criteriaCount))
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, &ErrMalformedScores{Reason: fmt.Sprintf("payload is not valid JSON: %v", err)}
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return nil, &ErrMalformedScores{Reason: fmt.Sprintf("%s: %s", first.Field(), first.Description())}
	}

	var scores []types.AIScore
	if err := json.Unmarshal(raw, &scores); err != nil {
		return nil, &ErrMalformedScores{Reason: err.Error()}
	}

	known := make(map[string]bool, len(proposals))
	for _, p := range proposals {
		known[p.ID] = true
	}
	for i := range scores {
		if !known[scores[i].ProposalID] {
			return nil, &ErrMalformedScores{Reason: fmt.Sprintf("unknown proposal id %q", scores[i].ProposalID)}
		}
		total := 0
		for _, s := range scores[i].Scores {
			total += s
		}
		scores[i].TotalScore = total
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].TotalScore > scores[j].TotalScore
	})
	return scores, nil
}
