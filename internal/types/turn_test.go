package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidCategory(t *testing.T) {
	valid := []Category{
		CategoryQuestion,
		CategoryAnswer,
		CategoryModelAnswer,
		CategoryRerankedModelAnswer,
		CategoryEvaluation,
	}
	for _, c := range valid {
		assert.True(t, ValidCategory(c), "expected %q to be valid", c)
	}

	assert.False(t, ValidCategory("resume"))
	assert.False(t, ValidCategory(""))
}

func TestTurn_JSONShape(t *testing.T) {
	turn := Turn{
		ID:        "a1b2c3d4",
		Category:  CategoryQuestion,
		Speaker:   SpeakerAgent,
		Content:   "Tell me about a challenging project.",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		PersonaSnapshot: &Persona{
			ID:       "p1",
			RoleType: RoleDeveloper,
			Name:     "CTO",
		},
	}

	data, err := json.Marshal(turn)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "question", decoded["type"])
	assert.Equal(t, "agent", decoded["speaker"])
	assert.NotContains(t, decoded, "related_chatting_id", "empty parent id should be omitted")
	assert.Contains(t, decoded, "persona")
}

func TestTurn_ParentIDRoundTrip(t *testing.T) {
	turn := Turn{
		ID:       "child",
		Category: CategoryAnswer,
		Speaker:  SpeakerUser,
		Content:  "My answer",
		ParentID: "parent",
	}

	data, err := json.Marshal(turn)
	require.NoError(t, err)

	var back Turn
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "parent", back.ParentID)
}
