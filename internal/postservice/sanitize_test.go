package postservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeContent(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "plain content",
			content:  "# Heading\n\nSome **markdown** text.",
			expected: "# Heading\n\nSome **markdown** text.",
		},
		{
			name:     "script tag removed",
			content:  `before <script>alert("xss")</script> after`,
			expected: "before  after",
		},
		{
			name:     "script tag with attributes",
			content:  `<script type="text/javascript">alert("xss")</script>text`,
			expected: "text",
		},
		{
			name:     "mixed case tag",
			content:  `<SCRIPT>alert("xss")</SCRIPT>text`,
			expected: "text",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, sanitizeContent(tc.content))
		})
	}
}
