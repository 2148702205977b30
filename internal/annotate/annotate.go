// Package annotate reports each transcript entry to the Buildkite annotation
// surface. Delivery is advisory: a failed send is logged and the run continues.
package annotate

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"scribe/internal/format"
	"scribe/internal/session"
)

// Annotation is one status report for the external sink.
type Annotation struct {
	Style    string // info, success, warning, error
	Context  string // stable per-line identifier; repeated runs update in place
	Priority int
	Body     string // markdown
}

// Sink delivers annotations. Implementations must not retain the annotation.
type Sink interface {
	Send(ctx context.Context, a Annotation) error
}

// AgentSink shells out to the buildkite-agent binary, the way annotations are
// created from within a Buildkite job.
type AgentSink struct {
	path string
}

// NewAgentSink resolves the agent binary. BUILDKITE_AGENT_PATH overrides the
// PATH lookup; when neither resolves, the bare name is kept and each send
// fails with a loggable error rather than aborting the run.
func NewAgentSink() *AgentSink {
	path := os.Getenv("BUILDKITE_AGENT_PATH")
	if path == "" {
		path = "buildkite-agent"
		if resolved, err := exec.LookPath(path); err == nil {
			path = resolved
		}
	}
	return &AgentSink{path: path}
}

func (s *AgentSink) Send(ctx context.Context, a Annotation) error {
	cmd := exec.CommandContext(ctx, s.path, "annotate",
		"--style", a.Style,
		"--context", a.Context,
		"--priority", strconv.Itoa(a.Priority))
	cmd.Stdin = strings.NewReader(a.Body)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("buildkite-agent annotate: %w", err)
	}
	return nil
}

// annotationOptions are the disclosure limits for the annotation surface,
// configured separately from the transcript's so the two can diverge.
var annotationOptions = session.Options{
	ToolInput:  format.Limits{MaxLines: 2, MaxChars: 300},
	ToolResult: format.Limits{MaxLines: 2, MaxChars: 400},
}

// Emitter builds and sends one annotation per qualifying entry.
type Emitter struct {
	sink Sink
	log  zerolog.Logger
}

func NewEmitter(sink Sink, log zerolog.Logger) *Emitter {
	return &Emitter{sink: sink, log: log}
}

// Emit sends the report for one entry. Unknown-kind entries are skipped
// entirely. A delivery failure is logged as a warning and swallowed.
func (e *Emitter) Emit(ctx context.Context, entry session.Entry) {
	if entry.Unknown {
		return
	}

	a := Build(entry)
	if err := e.sink.Send(ctx, a); err != nil {
		e.log.Warn().Err(err).Int("line", entry.LineNumber).Msg("failed to deliver annotation")
	}
}

// Build assembles the annotation for an entry: a title block, a speaker-coded
// header, the content re-disclosed for the annotation surface, and the
// pretty-printed raw line behind a fold.
func Build(entry session.Entry) Annotation {
	// Re-derive content with the annotation surface's own limits.
	// Classification is pure, so this cannot disagree on speaker or error.
	re := session.Classify(entry.RawLine, annotationOptions)

	var body strings.Builder
	fmt.Fprintf(&body, "**Message %d** - `%s`\n\n", entry.LineNumber, entry.Clock())

	style := "info"
	switch entry.Speaker {
	case session.SpeakerAssistant:
		body.WriteString("🤖 **ASSISTANT**:\n\n")
	case session.SpeakerUser:
		body.WriteString("👤 **USER**:\n\n")
		if entry.HasError {
			style = "error"
		} else {
			style = "success"
		}
	case session.SpeakerSystem:
		body.WriteString("⚙️ **SYSTEM**:\n\n")
		style = "warning"
	default:
		fmt.Fprintf(&body, "**%s**:\n\n", entry.Label)
	}

	if re.Content != "" {
		body.WriteString(re.Content)
	}

	raw := entry.RawLine
	if entry.WasJSON {
		raw = format.PrettyJSON(raw)
	}
	fmt.Fprintf(&body, "\n\n<details>\n<summary>Show JSON</summary>\n\n```json\n%s\n```\n\n</details>", raw)

	return Annotation{
		Style:    style,
		Context:  fmt.Sprintf("chat-message-%d", entry.LineNumber),
		Priority: 5,
		Body:     body.String(),
	}
}
