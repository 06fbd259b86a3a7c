package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jparkk0517/NLP-team-project/internal/llm"
)

// MockLLMClient implements llm.Client for testing
type MockLLMClient struct {
	GenerateContentFunc func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

func (m *MockLLMClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, prompt, tier)
	}
	return "other", nil
}

func (m *MockLLMClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return "{}", nil
}

func (m *MockLLMClient) GetModel(_ llm.ModelTier) string { return "mock-model" }

func (m *MockLLMClient) Close() error { return nil }

func TestNormalize(t *testing.T) {
	cases := map[string]Label{
		"question":       LabelQuestion,
		"  Followup\n":   LabelFollowup,
		"model_answer":   LabelModelAnswer,
		"modelAnswer":    LabelModelAnswer,
		`"answer"`:       LabelAnswer,
		"evaluate":       LabelEvaluate,
		"other":          LabelOther,
		"":               LabelOther,
		"a resume":       LabelOther,
		"I am not sure.": LabelOther,
	}

	for raw, want := range cases {
		assert.Equal(t, want, Normalize(raw), "raw=%q", raw)
	}
}

func TestLLMClassifier_Classify(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateContentFunc: func(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
			assert.Equal(t, llm.TierLite, tier)
			assert.Contains(t, prompt, "give me a question")
			return "question\n", nil
		},
	}

	classifier := NewLLMClassifier(mockClient, true)
	label, err := classifier.Classify(context.Background(), "give me a question", "")
	require.NoError(t, err)
	assert.Equal(t, LabelQuestion, label)
}

func TestLLMClassifier_Classify_CoercesGarbage(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateContentFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "The utterance appears to be a greeting of some kind.", nil
		},
	}

	classifier := NewLLMClassifier(mockClient, true)
	label, err := classifier.Classify(context.Background(), "hello there", "")
	require.NoError(t, err)
	assert.Equal(t, LabelOther, label)
}

func TestLLMClassifier_Classify_EvaluateDisabled(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateContentFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "evaluate", nil
		},
	}

	classifier := NewLLMClassifier(mockClient, false)
	label, err := classifier.Classify(context.Background(), "how did I do?", "")
	require.NoError(t, err)
	assert.Equal(t, LabelAnswer, label)
}

func TestLLMClassifier_Classify_TransportError(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateContentFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "", errors.New("rate limited")
		},
	}

	classifier := NewLLMClassifier(mockClient, true)
	label, err := classifier.Classify(context.Background(), "anything", "")
	assert.Error(t, err)
	assert.Equal(t, LabelOther, label)
}
