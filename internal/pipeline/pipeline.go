// Package pipeline drives one session stream end to end: read a line, tee it
// to the capture file, classify it, render it, annotate it, then move on.
// Processing is strictly sequential so line numbers and elapsed timestamps
// reflect true arrival order.
package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"scribe/internal/annotate"
	"scribe/internal/render"
	"scribe/internal/session"
)

// Processor owns the per-run state: the line counter and the stream clock.
// Construct one per invocation; it is not reusable across streams.
type Processor struct {
	transcript *render.Transcript
	emitter    *annotate.Emitter
	capture    io.Writer
	opts       session.Options
	log        zerolog.Logger

	start   time.Time
	lineNum int
}

// Config wires a Processor. Emitter and Capture may be nil to disable
// annotation and the raw tee respectively.
type Config struct {
	Out     io.Writer
	Emitter *annotate.Emitter
	Capture io.Writer
	Log     zerolog.Logger
}

func New(cfg Config) *Processor {
	return &Processor{
		transcript: render.New(cfg.Out),
		emitter:    cfg.Emitter,
		capture:    cfg.Capture,
		opts:       session.DefaultOptions(),
		log:        cfg.Log,
		start:      time.Now(),
	}
}

// Run consumes the stream until EOF. Read and transcript-write failures are
// fatal and returned; annotation failures are handled inside the emitter.
func (p *Processor) Run(ctx context.Context, r io.Reader) error {
	if err := p.transcript.Header("Agent Session Transcript"); err != nil {
		return err
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 10*1024*1024) // 10MB max line

	for scanner.Scan() {
		raw := scanner.Text()

		// Tee before any filtering: the capture file is a byte-for-byte
		// replica of the input, blank lines included.
		if p.capture != nil {
			if _, err := fmt.Fprintln(p.capture, raw); err != nil {
				return fmt.Errorf("write capture file: %w", err)
			}
		}

		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}

		p.lineNum++
		entry := session.Classify(trimmed, p.opts)
		entry.LineNumber = p.lineNum
		entry.Elapsed = time.Since(p.start)

		if entry.Content == "" {
			p.log.Debug().Int("line", p.lineNum).Msg("no printable content, skipping")
			continue
		}

		if err := p.transcript.Print(entry); err != nil {
			return err
		}
		if p.emitter != nil {
			p.emitter.Emit(ctx, entry)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
