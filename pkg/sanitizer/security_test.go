package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/firstengineering/website/pkg/sanitizer"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		maxLength int
		expected  string
	}{
		{"strips angle brackets and trims", " <script> ", 100, "script"},
		{"empty input", "", 100, ""},
		{"keeps other characters", `Tom & "Jerry"`, 100, `Tom & "Jerry"`},
		{"truncates after stripping", "<b>abcdef</b>", 4, "babc"},
		{"truncates by runes", "\u00e9\u00e9\u00e9\u00e9\u00e9", 3, "\u00e9\u00e9\u00e9"},
		{"whitespace only", "   ", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.String(tt.input, tt.maxLength))
		})
	}
}

func TestHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		maxLength int
		expected  string
	}{
		{
			name:      "escapes all five characters",
			input:     "<b>hi & 'you'</b>",
			maxLength: 5000,
			expected:  "&lt;b&gt;hi &amp; &#x27;you&#x27;&lt;/b&gt;",
		},
		{
			name:      "does not double escape existing entities",
			input:     "&lt;",
			maxLength: 5000,
			expected:  "&amp;lt;",
		},
		{
			name:      "escapes double quotes",
			input:     `say "hi"`,
			maxLength: 5000,
			expected:  "say &quot;hi&quot;",
		},
		{
			name:      "trims before escaping",
			input:     "  hello\n",
			maxLength: 5000,
			expected:  "hello",
		},
		{
			name:      "truncates the escaped text",
			input:     "a&b",
			maxLength: 4,
			expected:  "a&am",
		},
		{
			name:      "empty input",
			input:     "",
			maxLength: 5000,
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.HTML(tt.input, tt.maxLength))
		})
	}
}

func TestHTML_NoTagsSurvive(t *testing.T) {
	t.Parallel()

	out := sanitizer.HTML(`<img src=x onerror="alert(1)">`, 5000)
	assert.False(t, strings.ContainsAny(out, `<>"'`))
}

func TestPreventHeaderInjection(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a@b.coBcc: x@y.z", sanitizer.PreventHeaderInjection("a@b.co\r\nBcc: x@y.z"))
	assert.Equal(t, "clean", sanitizer.PreventHeaderInjection("clean"))
}
