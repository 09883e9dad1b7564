package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prateek/career-navigator/internal/llm"
	"github.com/prateek/career-navigator/internal/types"
)

// MockLLMClient implements llm.Client for testing
type MockLLMClient struct {
	GenerateFunc func(ctx context.Context, prompt string, persona llm.Persona) (string, error)
	CloseFunc    func() error
}

func (m *MockLLMClient) Generate(ctx context.Context, prompt string, persona llm.Persona) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt, persona)
	}
	return "", nil
}

func (m *MockLLMClient) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

const validProfileJSON = `{
	"currentSkills": ["JavaScript", "React"],
	"experienceLevel": "mid",
	"domain": "software engineering",
	"hoursPerWeek": 40,
	"location": "Remote"
}`

func profileVars() map[string]string {
	return map[string]string{
		"CurrentRole": "Frontend Developer",
		"TargetRole":  "Product Manager",
		"Context":     "5 years building dashboards",
	}
}

func TestExtract_Success(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateFunc: func(_ context.Context, prompt string, persona llm.Persona) (string, error) {
			assert.Contains(t, prompt, "Frontend Developer", "vars should be rendered into the prompt")
			assert.Equal(t, llm.PersonaFactual, persona)
			return validProfileJSON, nil
		},
	}
	extractor := New(mockClient, nil)

	var profile types.UserProfile
	err := extractor.Extract(context.Background(), "extract-profile", profileVars(), llm.PersonaFactual, &profile)
	require.NoError(t, err)

	assert.Equal(t, []string{"JavaScript", "React"}, profile.CurrentSkills)
	assert.Equal(t, types.ExperienceMid, profile.ExperienceLevel)
	assert.Equal(t, "software engineering", profile.Domain)
}

func TestExtract_StripsMarkdownFences(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateFunc: func(_ context.Context, _ string, _ llm.Persona) (string, error) {
			return "```json\n" + validProfileJSON + "\n```", nil
		},
	}
	extractor := New(mockClient, nil)

	var profile types.UserProfile
	err := extractor.Extract(context.Background(), "extract-profile", profileVars(), llm.PersonaFactual, &profile)
	require.NoError(t, err)
	assert.Equal(t, "software engineering", profile.Domain)
}

func TestExtract_GenerationError(t *testing.T) {
	cause := errors.New("quota exceeded")
	mockClient := &MockLLMClient{
		GenerateFunc: func(_ context.Context, _ string, _ llm.Persona) (string, error) {
			return "", cause
		},
	}
	extractor := New(mockClient, nil)

	var profile types.UserProfile
	err := extractor.Extract(context.Background(), "extract-profile", profileVars(), llm.PersonaFactual, &profile)
	require.Error(t, err)

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, "extract-profile", genErr.Template)
	assert.ErrorIs(t, err, cause)
}

func TestExtract_MalformedOutputCarriesRawText(t *testing.T) {
	raw := "I'm sorry, I cannot produce JSON for that."
	mockClient := &MockLLMClient{
		GenerateFunc: func(_ context.Context, _ string, _ llm.Persona) (string, error) {
			return raw, nil
		},
	}
	extractor := New(mockClient, nil)

	var profile types.UserProfile
	err := extractor.Extract(context.Background(), "extract-profile", profileVars(), llm.PersonaFactual, &profile)
	require.Error(t, err)

	var malErr *MalformedOutputError
	require.True(t, errors.As(err, &malErr))
	assert.Equal(t, "extract-profile", malErr.Template)
	assert.Equal(t, raw, malErr.RawOutput)
}

func TestExtract_SchemaViolationIsMalformedOutput(t *testing.T) {
	// Valid JSON, wrong shape: missing required domain.
	mockClient := &MockLLMClient{
		GenerateFunc: func(_ context.Context, _ string, _ llm.Persona) (string, error) {
			return `{"currentSkills": [], "experienceLevel": "mid"}`, nil
		},
	}
	extractor := New(mockClient, nil)

	var profile types.UserProfile
	err := extractor.Extract(context.Background(), "extract-profile", profileVars(), llm.PersonaFactual, &profile)

	var malErr *MalformedOutputError
	require.True(t, errors.As(err, &malErr))
	assert.Contains(t, malErr.Cause.Error(), "domain")
}

func TestExtract_DecodesOnlyOnce(t *testing.T) {
	calls := 0
	mockClient := &MockLLMClient{
		GenerateFunc: func(_ context.Context, _ string, _ llm.Persona) (string, error) {
			calls++
			return "not json", nil
		},
	}
	extractor := New(mockClient, nil)

	var profile types.UserProfile
	err := extractor.Extract(context.Background(), "extract-profile", profileVars(), llm.PersonaFactual, &profile)
	require.Error(t, err)
	assert.Equal(t, 1, calls, "a malformed response must not be retried")
}

func TestExtract_UnknownTemplate(t *testing.T) {
	extractor := New(&MockLLMClient{}, nil)

	var out map[string]any
	err := extractor.Extract(context.Background(), "no-such-template", nil, llm.PersonaFactual, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-template")
}
