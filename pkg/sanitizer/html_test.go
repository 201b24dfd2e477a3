package sanitizer_test

import (
	"testing"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"

	"github.com/notifika/mailroom/pkg/sanitizer"
)

func TestPlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips all HTML tags",
			input:    `<p>Hello <strong>world</strong></p>`,
			expected: "Hello world",
		},
		{
			name:     "strips script injection",
			input:    `<p>Hello</p><script>alert('xss')</script>`,
			expected: "Hello",
		},
		{
			name:     "unescapes entities",
			input:    `<p>Fish &amp; chips</p>`,
			expected: "Fish & chips",
		},
		{
			name:     "strips event handlers",
			input:    `<img src="x" onerror="alert('xss')">`,
			expected: "",
		},
		{
			name:     "keeps link text",
			input:    `<a href="https://example.com">Open report</a>`,
			expected: "Open report",
		},
		{
			name:     "trims surrounding whitespace",
			input:    "  <div>centered</div>  ",
			expected: "centered",
		},
		{
			name:     "plain text passes through",
			input:    "no markup here",
			expected: "no markup here",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, sanitizer.PlainText(tt.input))
		})
	}
}

func TestSanitizeHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "keeps basic formatting",
			input:    `<p>Hello <strong>world</strong></p>`,
			expected: `<p>Hello <strong>world</strong></p>`,
		},
		{
			name:     "strips script tags",
			input:    `<p>ok</p><script>alert('xss')</script>`,
			expected: `<p>ok</p>`,
		},
		{
			name:     "strips javascript URLs",
			input:    `<a href="javascript:alert('xss')">click</a>`,
			expected: `click`,
		},
		{
			name:     "keeps lists",
			input:    `<ul><li>one</li><li>two</li></ul>`,
			expected: `<ul><li>one</li><li>two</li></ul>`,
		},
		{
			name:     "strips event handlers",
			input:    `<p onclick="steal()">text</p>`,
			expected: `<p>text</p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, sanitizer.SanitizeHTML(tt.input))
		})
	}
}

func TestSanitizeHTMLCustom(t *testing.T) {
	t.Parallel()

	t.Run("nil policy returns input", func(t *testing.T) {
		t.Parallel()

		input := `<p>unchanged</p>`
		assert.Equal(t, input, sanitizer.SanitizeHTMLCustom(input, nil))
	})

	t.Run("custom policy applied", func(t *testing.T) {
		t.Parallel()

		policy := bluemonday.NewPolicy()
		policy.AllowElements("b")

		assert.Equal(t, `<b>bold</b> plain`, sanitizer.SanitizeHTMLCustom(`<b>bold</b> <i>plain</i>`, policy))
	})
}
