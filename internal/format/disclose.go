package format

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Limits controls when content is split into a preview plus a collapsible
// remainder. Content within both limits is shown whole.
type Limits struct {
	MaxLines int
	MaxChars int
}

var (
	// ToolInputLimits applies to serialized tool_use inputs.
	ToolInputLimits = Limits{MaxLines: 2, MaxChars: 300}

	// ToolResultLimits applies to tool_result content.
	ToolResultLimits = Limits{MaxLines: 2, MaxChars: 400}
)

// Split divides s into an inline preview and a remainder. The remainder is
// empty when s fits within the limits. Every character of s appears in exactly
// one of the two parts; the preview's trailing "..." marker is decoration, not
// content.
func Split(s string, lim Limits) (preview, remainder string, truncated bool) {
	lines := strings.Split(s, "\n")
	if len(lines) <= lim.MaxLines && len(s) <= lim.MaxChars {
		return s, "", false
	}

	if len(lines) > lim.MaxLines {
		preview = strings.Join(lines[:lim.MaxLines], "\n")
		remainder = strings.Join(lines[lim.MaxLines:], "\n")
		return preview, remainder, false
	}

	// Single (or doubled) very long line: cut at the character limit.
	if len(s) > lim.MaxChars {
		return s[:lim.MaxChars], s[lim.MaxChars:], true
	}
	return s, "", false
}

// Disclose renders s with progressive disclosure: the preview inline, the
// remainder (if any) inside an HTML details block. lang names the fence
// language for the collapsed code block; summary labels the fold.
func Disclose(s, summary, lang string, lim Limits) string {
	preview, remainder, truncated := Split(s, lim)
	if truncated {
		preview += "..."
	}
	if remainder == "" {
		return preview
	}
	return fmt.Sprintf("%s\n\n<details>\n<summary>%s</summary>\n\n```%s\n%s\n```\n\n</details>",
		preview, summary, lang, remainder)
}

// PrettyJSON re-indents raw JSON text. Returns the input unchanged when it is
// not valid JSON or cannot be re-encoded.
func PrettyJSON(s string) string {
	if !json.Valid([]byte(s)) {
		return s
	}
	var obj interface{}
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return s
	}
	pretty, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return s
	}
	return string(pretty)
}

// PrettyValue serializes an arbitrary decoded JSON value with indentation.
func PrettyValue(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}
