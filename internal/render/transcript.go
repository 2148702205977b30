package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"scribe/internal/session"
)

// prefixColumn is the minimum width of the line-number/clock/speaker gutter.
// Content starts here so consecutive entries line up.
const prefixColumn = 28

// Transcript writes the human-readable transcript for a stream of entries.
// A write failure is fatal for the run: the transcript is the primary output.
type Transcript struct {
	out io.Writer
}

func New(out io.Writer) *Transcript {
	return &Transcript{out: out}
}

// Header prints the transcript banner once at the start of a run.
func (t *Transcript) Header(title string) error {
	if _, err := fmt.Fprintf(t.out, "%s\n\n", titleStyle.Render("=== "+title+" ===")); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}

// Print renders one entry: a gutter with the zero-padded line number, elapsed
// clock and speaker, then the content with continuation lines indented to the
// content column. Entries with empty content are not printed.
func (t *Transcript) Print(e session.Entry) error {
	if e.Content == "" {
		return nil
	}

	plain := fmt.Sprintf("[%03d] [%s] %s:", e.LineNumber, e.Clock(), e.Label)
	styled := lineNumStyle.Render(fmt.Sprintf("[%03d]", e.LineNumber)) +
		" " + clockStyle.Render("["+e.Clock()+"]") +
		" " + speakerStyle(e.Speaker).Render(e.Label+":")

	pad := prefixColumn - lipgloss.Width(plain)
	if pad < 1 {
		pad = 1
	}
	indent := strings.Repeat(" ", lipgloss.Width(plain)+pad)

	body := bodyStyle(e)
	for i, line := range strings.Split(e.Content, "\n") {
		var err error
		if i == 0 {
			_, err = fmt.Fprintf(t.out, "%s%s%s\n", styled, strings.Repeat(" ", pad), body.Render(line))
		} else {
			_, err = fmt.Fprintf(t.out, "%s%s\n", indent, body.Render(line))
		}
		if err != nil {
			return fmt.Errorf("write transcript: %w", err)
		}
	}

	// Blank line between structured messages keeps the transcript scannable.
	if e.WasJSON {
		if _, err := fmt.Fprintln(t.out); err != nil {
			return fmt.Errorf("write transcript: %w", err)
		}
	}
	return nil
}

func speakerStyle(s session.Speaker) lipgloss.Style {
	switch s {
	case session.SpeakerAssistant:
		return assistantStyle
	case session.SpeakerUser:
		return userStyle
	case session.SpeakerSystem:
		return systemStyle
	default:
		return otherStyle
	}
}

func bodyStyle(e session.Entry) lipgloss.Style {
	if e.HasError {
		return errorBodyStyle
	}
	switch e.Speaker {
	case session.SpeakerAssistant:
		return assistantBodyStyle
	case session.SpeakerUser:
		return userBodyStyle
	case session.SpeakerSystem:
		return systemBodyStyle
	default:
		return otherBodyStyle
	}
}
