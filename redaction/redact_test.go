package redaction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-clinitext/types"
)

func TestRedactDatesAndIDs(t *testing.T) {
	text := "Patient DOB: 1980-05-12; MRN: 123456789; SSN: 123-45-6789"

	got := Redact(text, types.DefaultRedactionOptions())

	assert.Contains(t, got, "[REDACTED_DATE]")
	assert.GreaterOrEqual(t, strings.Count(got, "[REDACTED_ID]"), 2)
	assert.Equal(t, "Patient DOB: [REDACTED_DATE]; MRN: [REDACTED_ID]; SSN: [REDACTED_ID]", got)
}

func TestRedactNames(t *testing.T) {
	text := "Dr. John Doe reported that Patient Jane Smith was stable."

	got := Redact(text, types.DefaultRedactionOptions())

	assert.GreaterOrEqual(t, strings.Count(got, "[REDACTED_NAME]"), 2)
	assert.Equal(t, "Dr. [REDACTED_NAME] reported that [REDACTED_NAME] was stable.", got)
}

func TestRedactRules(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			"iso date",
			"Admitted 2021-11-03 for observation",
			"Admitted [REDACTED_DATE] for observation",
		},
		{
			"slashed and dashed dates",
			"Seen 12/05/1980 and again 1-2-99",
			"Seen [REDACTED_DATE] and again [REDACTED_DATE]",
		},
		{
			"ssn",
			"SSN 123-45-6789 on file",
			"SSN [REDACTED_ID] on file",
		},
		{
			"long numeric id",
			"account 9988776655",
			"account [REDACTED_ID]",
		},
		{
			"five digits kept",
			"zip 90210 unchanged",
			"zip 90210 unchanged",
		},
		{
			"two word name",
			"John Doe arrived early",
			"[REDACTED_NAME] arrived early",
		},
		{
			"three word name collapses to one token",
			"Mary Ann Lee arrived",
			"[REDACTED_NAME] arrived",
		},
		{
			"honorific keeps title",
			"Ms. Chen waited outside.",
			"Ms. [REDACTED_NAME] waited outside.",
		},
		{
			"patient label absorbed by sequence rule",
			"Patient Rodriguez denies fever.",
			"[REDACTED_NAME] denies fever.",
		},
		{
			"no pii",
			"The patient improved. Follow-up in 2 weeks.",
			"The patient improved. Follow-up in 2 weeks.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Redact(tt.input, types.DefaultRedactionOptions()))
		})
	}
}

func TestRedactNoFalsePositives(t *testing.T) {
	got := Redact("The patient improved. Follow-up in 2 weeks.", types.DefaultRedactionOptions())
	assert.NotContains(t, got, "[REDACTED")
}

func TestRedactIdempotent(t *testing.T) {
	text := "Dr. John Doe, DOB 1980-05-12, MRN 123456789, SSN 123-45-6789."

	once := Redact(text, types.DefaultRedactionOptions())
	twice := Redact(once, types.DefaultRedactionOptions())

	assert.Equal(t, once, twice)
}

func TestRedactOptionToggles(t *testing.T) {
	text := "John Doe, seen 2020-01-02, MRN 123456789"

	tests := []struct {
		name string
		opts types.RedactionOptions
		want string
	}{
		{
			"dates only",
			types.RedactionOptions{RedactDates: true},
			"John Doe, seen [REDACTED_DATE], MRN 123456789",
		},
		{
			"ids only",
			types.RedactionOptions{RedactIds: true},
			"John Doe, seen 2020-01-02, MRN [REDACTED_ID]",
		},
		{
			"names only",
			types.RedactionOptions{RedactNames: true},
			"[REDACTED_NAME], seen 2020-01-02, MRN 123456789",
		},
		{
			"everything off",
			types.RedactionOptions{},
			text,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Redact(text, tt.opts))
		})
	}
}
