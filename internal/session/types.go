package session

import (
	"fmt"
	"time"
)

// Speaker classifies who produced an entry.
type Speaker int

const (
	SpeakerSystem Speaker = iota
	SpeakerAssistant
	SpeakerUser
	SpeakerOther
)

func (s Speaker) String() string {
	switch s {
	case SpeakerSystem:
		return "SYSTEM"
	case SpeakerAssistant:
		return "ASSISTANT"
	case SpeakerUser:
		return "USER"
	default:
		return "OTHER"
	}
}

// Entry is the rendering-ready unit derived from one input line.
type Entry struct {
	LineNumber int
	Speaker    Speaker
	Label      string // display name; uppercased raw kind for SpeakerOther
	Content    string
	Elapsed    time.Duration
	HasError   bool
	RawLine    string
	WasJSON    bool

	// Unknown marks events whose kind is not system/assistant/user. The
	// annotation emitter skips these; the transcript still shows them.
	Unknown bool
}

// Clock formats the entry's elapsed time as MM:SS, switching to HH:MM:SS once
// the stream has run for an hour.
func (e Entry) Clock() string {
	return FormatElapsed(e.Elapsed)
}

// FormatElapsed renders a duration since stream start as MM:SS or HH:MM:SS.
func FormatElapsed(d time.Duration) string {
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// rawEvent represents a single line of stream-json output.
type rawEvent struct {
	Type      string      `json:"type"`
	Subtype   string      `json:"subtype,omitempty"`
	SessionID string      `json:"session_id,omitempty"`
	Model     string      `json:"model,omitempty"`
	Tools     []string    `json:"tools,omitempty"`
	Message   *rawMessage `json:"message,omitempty"`
}

type rawMessage struct {
	ID      string       `json:"id"`
	Role    string       `json:"role"`
	Model   string       `json:"model,omitempty"`
	Content []rawContent `json:"content"`
}

// rawContent is one content block: free text, a tool invocation, or a tool
// result. Fields overlap across block types; Type discriminates.
type rawContent struct {
	Type      string      `json:"type"`
	Text      string      `json:"text,omitempty"`
	Name      string      `json:"name,omitempty"`
	Input     interface{} `json:"input,omitempty"`
	ToolUseID string      `json:"tool_use_id,omitempty"`
	Content   interface{} `json:"content,omitempty"`
	IsError   bool        `json:"is_error,omitempty"`
}
