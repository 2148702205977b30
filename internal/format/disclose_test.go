package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	lim := Limits{MaxLines: 2, MaxChars: 300}

	t.Run("short content stays whole", func(t *testing.T) {
		preview, remainder, truncated := Split("hello\nworld", lim)
		assert.Equal(t, "hello\nworld", preview)
		assert.Empty(t, remainder)
		assert.False(t, truncated)
	})

	t.Run("multi-line content splits after the line limit", func(t *testing.T) {
		preview, remainder, truncated := Split("one\ntwo\nthree\nfour", lim)
		assert.Equal(t, "one\ntwo", preview)
		assert.Equal(t, "three\nfour", remainder)
		assert.False(t, truncated)

		// Nothing is lost across the split point.
		assert.Equal(t, "one\ntwo\nthree\nfour", preview+"\n"+remainder)
	})

	t.Run("single long line splits at the character limit", func(t *testing.T) {
		s := strings.Repeat("x", 500)
		preview, remainder, truncated := Split(s, lim)
		assert.Len(t, preview, 300)
		assert.Len(t, remainder, 200)
		assert.True(t, truncated)
		assert.Equal(t, s, preview+remainder)
	})

	t.Run("two lines over the character limit split by characters", func(t *testing.T) {
		s := strings.Repeat("a", 250) + "\n" + strings.Repeat("b", 250)
		preview, remainder, _ := Split(s, lim)
		assert.Equal(t, s, preview+remainder)
	})
}

func TestDisclose(t *testing.T) {
	lim := Limits{MaxLines: 2, MaxChars: 300}

	t.Run("short content has no disclosure wrapper", func(t *testing.T) {
		out := Disclose("just a line", "Show more...", "", lim)
		assert.Equal(t, "just a line", out)
		assert.NotContains(t, out, "<details>")
	})

	t.Run("long content gains a collapsible remainder", func(t *testing.T) {
		s := strings.Repeat("x", 500)
		out := Disclose(s, "Show more...", "", lim)
		assert.Contains(t, out, strings.Repeat("x", 300)+"...")
		assert.Contains(t, out, "<details>")
		assert.Contains(t, out, "<summary>Show more...</summary>")
		assert.Contains(t, out, strings.Repeat("x", 200))
	})

	t.Run("fence language is honored", func(t *testing.T) {
		out := Disclose("a\nb\nc", "Show more input...", "json", lim)
		assert.Contains(t, out, "```json\n")
	})
}

func TestPrettyJSON(t *testing.T) {
	t.Run("valid JSON is re-indented", func(t *testing.T) {
		out := PrettyJSON(`{"a":1}`)
		assert.Equal(t, "{\n  \"a\": 1\n}", out)
	})

	t.Run("non-JSON passes through unchanged", func(t *testing.T) {
		assert.Equal(t, "plain text", PrettyJSON("plain text"))
	})
}
