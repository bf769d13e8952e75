package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	cases := map[string]string{
		"```json\n[{\"a\":1}]\n```": `[{"a":1}]`,
		"```\n{}\n```":              `{}`,
		"  [1,2,3]  ":               `[1,2,3]`,
		`{"plain":true}`:            `{"plain":true}`,
	}
	for in, want := range cases {
		assert.Equal(t, want, CleanJSONBlock(in))
	}
}

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiClient(t.Context(), "")
	assert.Error(t, err)
}
