package history

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jparkk0517/NLP-team-project/internal/types"
)

func TestLog_AppendAndByID(t *testing.T) {
	log := NewLog()

	id := log.Append(types.CategoryQuestion, types.SpeakerAgent, "Why this company?", "", nil)
	require.NotEmpty(t, id)

	turn, ok := log.ByID(id)
	require.True(t, ok)
	assert.Equal(t, types.CategoryQuestion, turn.Category)
	assert.Equal(t, types.SpeakerAgent, turn.Speaker)
	assert.Equal(t, "Why this company?", turn.Content)
}

func TestLog_ByID_Missing(t *testing.T) {
	log := NewLog()
	_, ok := log.ByID("nope")
	assert.False(t, ok)
}

func TestLog_AppendOnly(t *testing.T) {
	log := NewLog()

	id := log.Append(types.CategoryQuestion, types.SpeakerAgent, "first", "", nil)
	before, ok := log.ByID(id)
	require.True(t, ok)

	// Later operations must never change an existing turn.
	log.Append(types.CategoryAnswer, types.SpeakerUser, "second", id, nil)
	log.Append(types.CategoryEvaluation, types.SpeakerAgent, "third", id, nil)

	after, ok := log.ByID(id)
	require.True(t, ok)
	assert.Equal(t, before, after)
	assert.Equal(t, 3, log.Len())
}

func TestLog_PersonaSnapshotIsCopied(t *testing.T) {
	log := NewLog()

	persona := &types.Persona{
		ID:        "p1",
		RoleType:  types.RoleDeveloper,
		Name:      "CTO",
		Interests: []string{"technical depth"},
	}
	id := log.Append(types.CategoryQuestion, types.SpeakerAgent, "q", "", persona)

	// Mutating the caller's persona must not affect the recorded snapshot.
	persona.Name = "changed"
	persona.Interests[0] = "changed"

	turn, ok := log.ByID(id)
	require.True(t, ok)
	require.NotNil(t, turn.PersonaSnapshot)
	assert.Equal(t, "CTO", turn.PersonaSnapshot.Name)
	assert.Equal(t, []string{"technical depth"}, turn.PersonaSnapshot.Interests)
}

func TestLog_Latest(t *testing.T) {
	log := NewLog()

	log.Append(types.CategoryQuestion, types.SpeakerAgent, "q1", "", nil)
	log.Append(types.CategoryAnswer, types.SpeakerUser, "a1", "", nil)
	log.Append(types.CategoryQuestion, types.SpeakerAgent, "q2", "", nil)

	latest, ok := log.Latest(types.CategoryQuestion)
	require.True(t, ok)
	assert.Equal(t, "q2", latest.Content)

	_, ok = log.Latest(types.CategoryModelAnswer)
	assert.False(t, ok)
}

func TestLog_Thread_DeepChain(t *testing.T) {
	log := NewLog()

	parent := ""
	ids := make([]string, 0, 50)
	for i := 0; i < 50; i++ {
		id := log.Append(types.CategoryQuestion, types.SpeakerAgent, fmt.Sprintf("q%d", i), parent, nil)
		ids = append(ids, id)
		parent = id
	}

	chain := log.Thread(ids[len(ids)-1])
	require.Len(t, chain, 50)

	// Traversal order is start first, walking backward to the root.
	assert.Equal(t, "q49", chain[0].Content)
	assert.Equal(t, "q0", chain[len(chain)-1].Content)
}

func TestLog_Thread_StopsAtAbsentParent(t *testing.T) {
	log := NewLog()

	id := log.Append(types.CategoryAnswer, types.SpeakerUser, "orphan", "ghost-id", nil)
	chain := log.Thread(id)

	require.Len(t, chain, 1)
	assert.Equal(t, "orphan", chain[0].Content)
}

func TestLog_Thread_MissingStart(t *testing.T) {
	log := NewLog()
	assert.Empty(t, log.Thread("missing"))
}

func TestLog_Child(t *testing.T) {
	log := NewLog()

	q := log.Append(types.CategoryQuestion, types.SpeakerAgent, "q", "", nil)
	log.Append(types.CategoryAnswer, types.SpeakerUser, "a", q, nil)
	log.Append(types.CategoryModelAnswer, types.SpeakerAgent, "model", q, nil)

	child, ok := log.Child(q, types.CategoryModelAnswer)
	require.True(t, ok)
	assert.Equal(t, "model", child.Content)

	_, ok = log.Child(q, types.CategoryEvaluation)
	assert.False(t, ok)
}

func TestLog_RenderText_Filtered(t *testing.T) {
	log := NewLog()

	q := log.Append(types.CategoryQuestion, types.SpeakerAgent, "What is Go?", "", nil)
	log.Append(types.CategoryAnswer, types.SpeakerUser, "A language.", q, nil)
	log.Append(types.CategoryEvaluation, types.SpeakerAgent, "score stuff", q, nil)

	rendered := log.RenderText(types.CategoryQuestion, types.CategoryAnswer)
	assert.Equal(t, "agent: What is Go?\nuser: A language.", rendered)

	full := log.RenderText()
	assert.Contains(t, full, "score stuff")
}

func TestLog_All_PreservesOrder(t *testing.T) {
	log := NewLog()

	for i := 0; i < 5; i++ {
		cat := types.CategoryQuestion
		if i%2 == 1 {
			cat = types.CategoryAnswer
		}
		log.Append(cat, types.SpeakerAgent, fmt.Sprintf("t%d", i), "", nil)
	}

	questions := log.All(types.CategoryQuestion)
	require.Len(t, questions, 3)
	assert.Equal(t, "t0", questions[0].Content)
	assert.Equal(t, "t2", questions[1].Content)
	assert.Equal(t, "t4", questions[2].Content)
}

func TestLog_ConcurrentAppends(t *testing.T) {
	log := NewLog()

	var wg sync.WaitGroup
	const writers = 20
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			log.Append(types.CategoryAnswer, types.SpeakerUser, fmt.Sprintf("a%d", n), "", nil)
		}(i)
	}
	wg.Wait()

	turns := log.All()
	require.Len(t, turns, writers)

	ids := make(map[string]bool, writers)
	for _, turn := range turns {
		assert.False(t, ids[turn.ID], "duplicate id %s", turn.ID)
		ids[turn.ID] = true
	}
}
