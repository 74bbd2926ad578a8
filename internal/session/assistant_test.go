package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFence(t *testing.T) {
	cases := map[string]string{
		`{"intent":"question"}`:                            `{"intent":"question"}`,
		"```json\n{\"intent\":\"question\"}\n```":          `{"intent":"question"}`,
		"```\n{\"intent\":\"question\"}\n```":              `{"intent":"question"}`,
		"  ```json\n{\"intent\":\"question\"}\n```   ":     `{"intent":"question"}`,
		"```JSON\n{\"a\":1}\n```":                          `{"a":1}`,
	}
	for input, want := range cases {
		assert.Equal(t, want, stripCodeFence(input))
	}
}

func TestParseAssistantReplyQuestion(t *testing.T) {
	reply, err := parseAssistantReply(`{"intent":"question","message":"Try a smaller grid for the rondo."}`)
	require.NoError(t, err)
	assert.Equal(t, IntentQuestion, reply.Intent)
	assert.Equal(t, "Try a smaller grid for the rondo.", reply.Message)
	assert.Empty(t, reply.UpdatedSession)
}

func TestParseAssistantReplyChange(t *testing.T) {
	raw := "```json\n" +
		`{"intent":"change","message":"Shortened the warm-up.","updated_session":{"title":"Pressing triggers","duration_minutes":75}}` +
		"\n```"
	reply, err := parseAssistantReply(raw)
	require.NoError(t, err)
	assert.Equal(t, IntentChange, reply.Intent)
	assert.JSONEq(t, `{"title":"Pressing triggers","duration_minutes":75}`, string(reply.UpdatedSession))
}

func TestParseAssistantReplyRejectsMalformed(t *testing.T) {
	cases := []string{
		"I think you should add more passing drills.",
		`{"intent":"question"}`,
		`{"intent":"change","message":"done"}`,
		`{"intent":"replan","message":"done"}`,
		`{"intent":`,
		"",
	}
	for _, raw := range cases {
		_, err := parseAssistantReply(raw)
		assert.Error(t, err, "input %q should be rejected", raw)
	}
}

func TestBuildAssistantPromptIncludesSessionAndMessage(t *testing.T) {
	s := &TrainingSession{Title: "Counter-pressing", DurationMinutes: 90}
	prompt, err := buildAssistantPrompt(s, "make the last block shorter", nil)
	require.NoError(t, err)
	assert.Contains(t, prompt, `"Counter-pressing"`)
	assert.Contains(t, prompt, "make the last block shorter")
	assert.Contains(t, prompt, `"intent"`)
	assert.NotContains(t, prompt, "Conversation so far")
}

func TestBuildAssistantPromptIncludesHistory(t *testing.T) {
	s := &TrainingSession{Title: "Rondos"}
	history := []AssistantTurn{
		{Role: "coach", Content: "what should the warm-up be?"},
		{Role: "assistant", Content: "A 5v2 rondo suits this theme."},
	}
	prompt, err := buildAssistantPrompt(s, "make it 6v2 instead", history)
	require.NoError(t, err)
	assert.Contains(t, prompt, "Conversation so far")
	assert.Contains(t, prompt, "coach: what should the warm-up be?")
	assert.Contains(t, prompt, "assistant: A 5v2 rondo suits this theme.")
}
