package types

// RedactionOptions toggles the individual PHI rule groups. All rules are on
// unless explicitly disabled.
type RedactionOptions struct {
	RedactNames bool `json:"redact_names"`
	RedactDates bool `json:"redact_dates"`
	RedactIds   bool `json:"redact_ids"`
}

// DefaultRedactionOptions returns options with every rule group enabled.
func DefaultRedactionOptions() RedactionOptions {
	return RedactionOptions{
		RedactNames: true,
		RedactDates: true,
		RedactIds:   true,
	}
}
