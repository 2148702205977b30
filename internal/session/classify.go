package session

import (
	"encoding/json"
	"fmt"
	"strings"

	"scribe/internal/format"
)

// unknownContent is the placeholder shown for events whose kind is not
// recognized. Routing decisions key off Entry.Unknown, never off this text.
const unknownContent = "Unknown message type"

// Options carries the disclosure limits applied while classifying. The
// transcript and the annotation surface use different instances.
type Options struct {
	ToolInput  format.Limits
	ToolResult format.Limits
}

// DefaultOptions returns the limits used for the primary transcript.
func DefaultOptions() Options {
	return Options{
		ToolInput:  format.ToolInputLimits,
		ToolResult: format.ToolResultLimits,
	}
}

// Classify turns one trimmed, non-empty input line into an Entry. It is pure:
// the same line always produces the same result. Line number and elapsed time
// are assigned by the caller. An Entry with empty Content should be dropped.
func Classify(raw string, opts Options) Entry {
	entry := Entry{RawLine: raw}

	if strings.HasPrefix(raw, "{") {
		var ev rawEvent
		if err := json.Unmarshal([]byte(raw), &ev); err == nil {
			entry.WasJSON = true
			classifyEvent(&entry, ev, opts)
			return entry
		}
	}

	// Not valid JSON: surface diagnostic output as-is rather than dropping it.
	entry.Speaker = SpeakerSystem
	entry.Label = SpeakerSystem.String()
	entry.Content = raw
	return entry
}

func classifyEvent(entry *Entry, ev rawEvent, opts Options) {
	switch ev.Type {
	case "system":
		entry.Speaker = SpeakerSystem
		entry.Label = SpeakerSystem.String()
		if ev.Subtype == "init" {
			entry.Content = fmt.Sprintf("Session initialized (ID: %s, Model: %s)", ev.SessionID, ev.Model)
		} else {
			entry.Content = "System message"
		}

	case "assistant":
		entry.Speaker = SpeakerAssistant
		entry.Label = SpeakerAssistant.String()
		entry.Content = assistantContent(ev, opts)

	case "user":
		entry.Speaker = SpeakerUser
		entry.Label = SpeakerUser.String()
		entry.Content, entry.HasError = userContent(ev, opts)

	default:
		entry.Speaker = SpeakerOther
		entry.Label = strings.ToUpper(ev.Type)
		entry.Content = unknownContent
		entry.Unknown = true
	}
}

func assistantContent(ev rawEvent, opts Options) string {
	if ev.Message == nil {
		return ""
	}

	var parts []string
	for _, block := range ev.Message.Content {
		switch block.Type {
		case "text":
			if block.Text != "" {
				parts = append(parts, block.Text)
			}
		case "tool_use":
			parts = append(parts, toolUseLine(block, opts))
		}
	}
	return strings.Join(parts, "\n\n")
}

func toolUseLine(block rawContent, opts Options) string {
	desc := "🔧 Using tool: " + block.Name

	input := ""
	if block.Input != nil {
		input = format.PrettyValue(block.Input)
	}
	if input != "" && input != "{}" && input != "null" {
		desc += " with " + format.Disclose(input, "Show more input...", "json", opts.ToolInput)
	}
	return desc
}

func userContent(ev rawEvent, opts Options) (string, bool) {
	if ev.Message == nil {
		return "", false
	}

	hasError := false
	var parts []string
	for _, block := range ev.Message.Content {
		if block.Type != "tool_result" {
			if block.Text != "" {
				parts = append(parts, block.Text)
			}
			continue
		}

		if block.IsError {
			hasError = true
		}
		parts = append(parts, toolResultBlock(block, opts))
	}
	return strings.Join(parts, "\n\n"), hasError
}

func toolResultBlock(block rawContent, opts Options) string {
	var result string
	switch {
	case block.Text != "":
		result = format.PrettyJSON(block.Text)
	case block.Content != nil:
		result = resultText(block.Content)
	}

	if result == "" {
		return "✅ Tool result received"
	}

	indicator := "✅ Tool result:"
	if block.IsError {
		indicator = "❌ Tool error:"
	}
	return indicator + "\n" + format.Disclose(result, "Show more...", "", opts.ToolResult)
}

// resultText flattens a tool_result content value. The runtime emits either a
// plain string or an array of text blocks; anything else is serialized.
func resultText(content interface{}) string {
	switch c := content.(type) {
	case string:
		return format.PrettyJSON(c)
	case []interface{}:
		var sb strings.Builder
		for _, item := range c {
			m, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			if text, ok := m["text"].(string); ok {
				sb.WriteString(text)
			}
		}
		if sb.Len() > 0 {
			return sb.String()
		}
		return format.PrettyValue(content)
	default:
		return format.PrettyValue(content)
	}
}
