package redaction

import (
	"regexp"

	"go-clinitext/types"
)

var (
	isoDateRe     = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
	slashedDateRe = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)
	ssnRe         = regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)
	longIDRe      = regexp.MustCompile(`\b\d{6,}\b`)

	// 2-3 consecutive Title-case words, e.g. "John Doe", "Mary Ann Lee".
	nameSeqRe = regexp.MustCompile(`\b[A-Z][a-z]{2,}(?:\s+[A-Z][a-z]{2,}){1,2}\b`)
	// Honorific or label followed by a single Title-case word, e.g. "Dr. John".
	// The honorific itself is kept.
	honorificRe = regexp.MustCompile(`\b(Dr\.|Mr\.|Mrs\.|Ms\.|Patient)\s+[A-Z][a-z]{2,}\b`)
)

const (
	dateToken = "[REDACTED_DATE]"
	idToken   = "[REDACTED_ID]"
	nameToken = "[REDACTED_NAME]"
)

// Redact rewrites simple PHI patterns in text with bracketed placeholder
// tokens. Rule groups run in a fixed order (dates, then ids, then names)
// because each group scans the text the previous one already rewrote; the
// placeholder tokens themselves never match a later rule.
func Redact(text string, opts types.RedactionOptions) string {
	out := text

	if opts.RedactDates {
		out = isoDateRe.ReplaceAllString(out, dateToken)
		out = slashedDateRe.ReplaceAllString(out, dateToken)
	}

	if opts.RedactIds {
		out = ssnRe.ReplaceAllString(out, idToken)
		out = longIDRe.ReplaceAllString(out, idToken)
	}

	if opts.RedactNames {
		out = nameSeqRe.ReplaceAllString(out, nameToken)
		out = honorificRe.ReplaceAllString(out, "${1} "+nameToken)
	}

	return out
}
