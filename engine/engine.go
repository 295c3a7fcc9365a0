package engine

import (
	"context"
	"log"
	"strings"

	"go-clinitext/redaction"
	"go-clinitext/types"
)

// Collaborator is a cloud NLP service consulted before the local heuristics.
// Entity and sentiment detection fail independently; the engine degrades each
// sub-result on its own rather than surfacing the error.
type Collaborator interface {
	DetectEntities(ctx context.Context, text string) ([]types.Entity, error)
	DetectSentiment(ctx context.Context, text string) (types.Sentiment, error)
}

// Summarizer is an optional cloud summarization service. Any failure falls
// back to the local sentence-ranking heuristic.
type Summarizer interface {
	Summarize(ctx context.Context, text string, maxSentences int) (string, error)
}

// Engine analyzes, summarizes, and redacts clinical text. It holds no per-call
// state, so one instance may be shared across goroutines. Both collaborator
// handles may be nil, in which case every operation runs fully offline.
type Engine struct {
	nlp        Collaborator
	summarizer Summarizer
}

func New(nlp Collaborator, summarizer Summarizer) *Engine {
	return &Engine{nlp: nlp, summarizer: summarizer}
}

// CloudNLPEnabled reports whether a cloud NLP collaborator is configured.
func (e *Engine) CloudNLPEnabled() bool {
	return e.nlp != nil
}

// SummarizerEnabled reports whether a cloud summarizer is configured.
func (e *Engine) SummarizerEnabled() bool {
	return e.summarizer != nil
}

// AnalyzeText returns entities, document sentiment, and a token count for a
// piece of clinical text. Empty text always yields the zero result with an
// empty entity list. The call never fails: cloud errors degrade the affected
// sub-result and everything else still comes back.
func (e *Engine) AnalyzeText(ctx context.Context, text string) types.AnalysisResult {
	if text == "" {
		return types.AnalysisResult{Entities: []types.Entity{}}
	}

	tokens := len(strings.Fields(text))
	if e.nlp != nil {
		return e.analyzeWithCloud(ctx, text, tokens)
	}
	return analyzeOffline(text, tokens)
}

func (e *Engine) analyzeWithCloud(ctx context.Context, text string, tokens int) types.AnalysisResult {
	result := types.AnalysisResult{
		Entities:   []types.Entity{},
		TokenCount: tokens,
	}

	entities, err := e.nlp.DetectEntities(ctx, text)
	if err != nil {
		log.Printf("Cloud entity detection failed, returning empty entity list: %v", err)
	} else {
		result.Entities = entities
	}

	sentiment, err := e.nlp.DetectSentiment(ctx, text)
	if err != nil {
		log.Printf("Cloud sentiment detection failed, returning neutral sentiment: %v", err)
	} else {
		result.Sentiment = sentiment
	}

	return result
}

// RedactPHI rewrites simple PHI patterns (dates, identifiers, names) in text
// with bracketed placeholder tokens. This is a heuristic demo-grade redactor,
// not a validated de-identification system.
func (e *Engine) RedactPHI(text string, opts types.RedactionOptions) string {
	return redaction.Redact(text, opts)
}
