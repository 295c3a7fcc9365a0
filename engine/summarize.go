package engine

import (
	"context"
	"log"
	"regexp"
	"sort"
	"strings"
)

// DefaultMaxSentences is used when a caller passes a non-positive budget.
const DefaultMaxSentences = 3

// A sentence ends at '.', '!' or '?' followed by whitespace.
var sentenceBoundaryRe = regexp.MustCompile(`([.!?])\s+`)

// Summarize returns an extractive summary of at most maxSentences sentences.
// A configured cloud summarizer is tried first; on any error the local
// longest-sentence ranking takes over. Empty text returns an empty string.
func (e *Engine) Summarize(ctx context.Context, text string, maxSentences int) string {
	if text == "" {
		return ""
	}
	if maxSentences <= 0 {
		maxSentences = DefaultMaxSentences
	}

	if e.summarizer != nil {
		summary, err := e.summarizer.Summarize(ctx, text, maxSentences)
		if err != nil {
			log.Printf("Cloud summarization failed, using local ranking: %v", err)
		} else if summary != "" {
			return summary
		}
	}

	return summarizeLocal(text, maxSentences)
}

// summarizeLocal ranks sentences by length as a proxy for importance, keeps
// the maxSentences longest (earlier sentences win ties), and emits the kept
// sentences in their original order. Selection is by sentence text, so a
// duplicated sentence is kept in all of its positions once any copy ranks.
func summarizeLocal(text string, maxSentences int) string {
	sentences := splitSentences(text)
	if len(sentences) <= maxSentences {
		return strings.Join(sentences, " ")
	}

	ranked := make([]string, len(sentences))
	copy(ranked, sentences)
	sort.SliceStable(ranked, func(i, j int) bool {
		return len(ranked[i]) > len(ranked[j])
	})

	chosen := make(map[string]bool, maxSentences)
	for _, s := range ranked[:maxSentences] {
		chosen[s] = true
	}

	var kept []string
	for _, s := range sentences {
		if chosen[s] {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, " ")
}

// splitSentences cuts text at terminator+whitespace boundaries, trims each
// piece, and drops empty results. The trailing text after the last boundary
// counts as a sentence even without its own terminator.
func splitSentences(text string) []string {
	var sentences []string
	start := 0

	for _, loc := range sentenceBoundaryRe.FindAllStringSubmatchIndex(text, -1) {
		// loc[3] is the end of the terminator group; keep the terminator
		// with its sentence and resume after the whitespace.
		piece := strings.TrimSpace(text[start:loc[3]])
		if piece != "" {
			sentences = append(sentences, piece)
		}
		start = loc[1]
	}

	if tail := strings.TrimSpace(text[start:]); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}
