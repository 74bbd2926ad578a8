package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Assistant intents.
const (
	IntentQuestion = "question"
	IntentChange   = "change"
)

// AssistantReply is the structured result of an assistant exchange. Intent
// "question" carries only a message back to the coach; intent "change"
// additionally carries the full updated session document.
type AssistantReply struct {
	Intent         string          `json:"intent"`
	Message        string          `json:"message"`
	UpdatedSession json.RawMessage `json:"updated_session,omitempty"`
}

// Assistant turns a coach's free-text request about a planned session into a
// structured reply. history carries prior turns of the same exchange so the
// coach can follow up; it is client-held, nothing is stored server-side.
type Assistant interface {
	Ask(ctx context.Context, session *TrainingSession, message string, history []AssistantTurn) (*AssistantReply, error)
}

// GeminiAssistant implements Assistant on Google's Gemini API.
type GeminiAssistant struct {
	client *genai.Client
	model  string
}

// NewGeminiAssistant creates an assistant backed by the Gemini API.
func NewGeminiAssistant(apiKey, model string) (*GeminiAssistant, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiAssistant{client: client, model: model}, nil
}

const assistantInstructions = `You are a football coaching assistant embedded in a session planner.
You receive the current training session as JSON and a message from the coach.

Respond with a single JSON object and nothing else, in one of two shapes:
  {"intent": "question", "message": "<your answer to the coach>"}
  {"intent": "change", "updated_session": <the full session JSON with your edits applied>, "message": "<a short summary of what you changed>"}

Use "change" only when the coach asks you to modify the session. When you
return "change", updated_session must be the complete session document, not a
diff. Never invent fields that are not present in the input session.`

func buildAssistantPrompt(session *TrainingSession, message string, history []AssistantTurn) (string, error) {
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return "", fmt.Errorf("failed to encode session: %w", err)
	}
	var b strings.Builder
	b.WriteString(assistantInstructions)
	b.WriteString("\n\nCurrent session:\n")
	b.Write(sessionJSON)
	if len(history) > 0 {
		b.WriteString("\n\nConversation so far:\n")
		for _, turn := range history {
			b.WriteString(turn.Role)
			b.WriteString(": ")
			b.WriteString(turn.Content)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n\nCoach's message:\n")
	b.WriteString(message)
	return b.String(), nil
}

// stripCodeFence removes a surrounding markdown code fence, with or without a
// language tag, if the model wrapped its JSON in one.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx != -1 {
		// Drop the language tag line ("json", "JSON", or empty).
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// parseAssistantReply enforces the reply contract strictly. Anything outside
// it is an error; callers decide how to surface that.
func parseAssistantReply(raw string) (*AssistantReply, error) {
	var reply AssistantReply
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &reply); err != nil {
		return nil, fmt.Errorf("assistant reply is not valid JSON: %w", err)
	}
	switch reply.Intent {
	case IntentQuestion:
		if reply.Message == "" {
			return nil, fmt.Errorf("assistant question reply has no message")
		}
	case IntentChange:
		if len(reply.UpdatedSession) == 0 {
			return nil, fmt.Errorf("assistant change reply has no updated_session")
		}
		if !json.Valid(reply.UpdatedSession) {
			return nil, fmt.Errorf("assistant updated_session is not valid JSON")
		}
	default:
		return nil, fmt.Errorf("assistant reply has unknown intent %q", reply.Intent)
	}
	return &reply, nil
}

func (a *GeminiAssistant) Ask(ctx context.Context, session *TrainingSession, message string, history []AssistantTurn) (*AssistantReply, error) {
	prompt, err := buildAssistantPrompt(session, message, history)
	if err != nil {
		return nil, err
	}

	result, err := a.client.Models.GenerateContent(ctx,
		a.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("Gemini request failed: %w", err)
	}

	return parseAssistantReply(result.Text())
}
