package summarization

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const maxNoteLength = 15000 // Rough character limit for prompt

const apiKeyEnv = "OPENAI_API_KEY"

// Summarizer produces extractive-style summaries of clinical notes through
// the OpenAI chat completion API.
type Summarizer struct {
	client *openai.Client
}

// NewSummarizer builds a Summarizer from the environment. An error means no
// API key is configured; callers fall back to the local ranking heuristic.
func NewSummarizer() (*Summarizer, error) {
	apiKey := os.Getenv(apiKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("%s not set", apiKeyEnv)
	}
	return &Summarizer{client: openai.NewClient(apiKey)}, nil
}

// Summarize sends the note text to OpenAI and requests a summary of at most
// maxSentences sentences.
func (s *Summarizer) Summarize(ctx context.Context, text string, maxSentences int) (string, error) {
	note := text
	if len(note) > maxNoteLength {
		note = note[:maxNoteLength]
	}

	prompt := fmt.Sprintf("Summarize the following clinical note in at most %d sentences. Keep only the clinically relevant findings and plan; do not add information that is not in the note:\n\n---\n%s\n---\n\nSummary:", maxSentences, note)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant that summarizes clinical notes concisely and factually.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   150,
			N:           1,
			Temperature: 0.2, // Lower temperature for more focused summary
		},
	)

	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
