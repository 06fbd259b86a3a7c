package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"label\": \"question\"}\n```"
	assert.Equal(t, `{"label": "question"}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_GenericFence(t *testing.T) {
	input := "```\n{\"a\": 1}\n```"
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_LanguageIdentifier(t *testing.T) {
	input := "```javascript\n{\"a\": 1}\n```"
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_PlainText(t *testing.T) {
	input := `  {"a": 1}  `
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}
