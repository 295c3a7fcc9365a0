package types

type Sentiment struct {
	Magnitude float32 `json:"magnitude"`
	Score     float32 `json:"score"`
}

// Entity represents a named entity detected in the text.
type Entity struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Salience float32 `json:"salience"`
}

// AnalysisResult bundles everything AnalyzeText reports for one note.
type AnalysisResult struct {
	Entities   []Entity  `json:"entities"`
	Sentiment  Sentiment `json:"sentiment"`
	TokenCount int       `json:"tokens"`
}
