package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownToTelegramHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty input", input: "", expected: ""},
		{name: "plain text", input: "Hallo wereld", expected: "Hallo wereld\n"},
		{name: "bold text", input: "**vet**", expected: "<strong>vet</strong>\n"},
		{name: "italic text", input: "*schuin*", expected: "<em>schuin</em>\n"},
		{name: "strikethrough", input: "~~fout~~", expected: "<del>fout</del>\n"},
		{name: "inline code", input: "`/dictate N`", expected: "<code>/dictate N</code>\n"},
		{name: "header tags stripped", input: "# Score", expected: "Score\n"},
		{name: "script tags sanitized", input: "<script>alert('xss')</script>", expected: "\n"},
		{
			name:     "translation feedback",
			input:    "**Correct Dutch translation:** Ik ga naar school.",
			expected: "<strong>Correct Dutch translation:</strong> Ik ga naar school.\n",
		},
		{
			name:     "link keeps href only",
			input:    "[link](https://example.com)",
			expected: "<a href=\"https://example.com\">link</a>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MarkdownToTelegramHTML([]byte(tt.input)))
		})
	}
}

func TestMarkdownToPlainText(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		contains    []string
		notContains []string
	}{
		{
			name:     "plain sentence untouched",
			input:    "Ik ga morgen naar de markt.",
			contains: []string{"Ik ga morgen naar de markt."},
		},
		{
			name:        "emphasis removed",
			input:       "Het is **heel** *mooi* weer.",
			contains:    []string{"heel", "mooi"},
			notContains: []string{"*", "<strong>"},
		},
		{
			name:        "heading text kept",
			input:       "# De Gouden Eeuw\n\nIn 1650 was Amsterdam rijk.",
			contains:    []string{"De Gouden Eeuw", "In 1650 was Amsterdam rijk."},
			notContains: []string{"#", "****"},
		},
		{
			name:        "links dropped",
			input:       "Lees [meer](https://example.com) hier.",
			contains:    []string{"meer"},
			notContains: []string{"https://example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarkdownToPlainText([]byte(tt.input))
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestMarkdownToPlainText_Empty(t *testing.T) {
	got, err := MarkdownToPlainText(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
