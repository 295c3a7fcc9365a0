package engine

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go-clinitext/types"
)

const properNounType = "PROPER_NOUN"

const (
	fallbackSalience  float32 = 0.5
	positiveCueWeight float32 = 0.6
	declineCueWeight  float32 = -0.6
	symptomCueWeight  float32 = -0.2
	maxMagnitude      float32 = 5.0
)

// Cue lists for the keyword sentiment heuristic. Each list contributes its
// weight at most once per text, and the lists fire independently.
var (
	positiveCues = []string{"improved", "better", "stable"}
	declineCues  = []string{"worse", "worsening", "decline", "deterior"}
	symptomCues  = []string{"pain", "fever", "cough", "shortness"}
)

// analyzeOffline is the deterministic fallback used when no cloud collaborator
// is configured. It is intentionally simple so tests and demos behave the same
// on every machine.
func analyzeOffline(text string, tokens int) types.AnalysisResult {
	return types.AnalysisResult{
		Entities:   offlineEntities(text),
		Sentiment:  offlineSentiment(text, tokens),
		TokenCount: tokens,
	}
}

// offlineEntities treats every capitalized word longer than two characters as
// a PROPER_NOUN with a fixed salience. Repeated words produce repeated
// entities; nothing is deduplicated.
func offlineEntities(text string) []types.Entity {
	cleaned := strings.NewReplacer(".", " ", ",", " ").Replace(text)

	entities := []types.Entity{}
	for _, word := range strings.Fields(cleaned) {
		first, _ := utf8.DecodeRuneInString(word)
		if unicode.IsUpper(first) && utf8.RuneCountInString(word) > 2 {
			entities = append(entities, types.Entity{
				Name:     word,
				Type:     properNounType,
				Salience: fallbackSalience,
			})
		}
	}
	return entities
}

// offlineSentiment scores the whole text by case-insensitive cue words and
// derives magnitude from the token count, capped at maxMagnitude.
func offlineSentiment(text string, tokens int) types.Sentiment {
	var score float32
	lowered := strings.ToLower(text)

	if containsAny(lowered, positiveCues) {
		score += positiveCueWeight
	}
	if containsAny(lowered, declineCues) {
		score += declineCueWeight
	}
	if containsAny(lowered, symptomCues) {
		score += symptomCueWeight
	}

	magnitude := float32(tokens) / 10.0
	if magnitude > maxMagnitude {
		magnitude = maxMagnitude
	}

	return types.Sentiment{Score: score, Magnitude: magnitude}
}

func containsAny(lowered string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(lowered, cue) {
			return true
		}
	}
	return false
}
