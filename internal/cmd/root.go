package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"scribe/internal/annotate"
	"scribe/internal/pipeline"
)

var (
	captureFile string
	followMode  bool
	noColor     bool
	debugMode   bool
)

var rootCmd = &cobra.Command{
	Use:   "scribe <file|->",
	Short: "Render an agent session stream as a live transcript",
	Long: `scribe reads newline-delimited agent session events (stream-json) from a
file or standard input and renders a color-coded transcript as lines arrive.
Each entry is also reported to Buildkite as an annotation, best-effort.`,
	Example: `  scribe session.jsonl
  claude -p "fix the tests" --output-format stream-json | scribe -
  claude -p "fix the tests" --output-format stream-json | scribe - -o session.jsonl
  scribe --follow ~/.claude/projects/myproj/session.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := args[0]

		if captureFile != "" && source != "-" {
			return errors.New("-o/--capture is only valid when reading from standard input (-)")
		}
		if captureFile != "" && followMode {
			return errors.New("-o/--capture cannot be combined with --follow")
		}
		if followMode && source == "-" {
			return errors.New("--follow requires a file path, not standard input")
		}

		// Past argument validation: runtime failures should not dump usage.
		cmd.SilenceUsage = true

		if noColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
		return run(source)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&captureFile, "capture", "o", "", "tee every raw input line to this file (stdin only)")
	rootCmd.Flags().BoolVarP(&followMode, "follow", "f", false, "keep reading as the file grows")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "enable debug logging")
}

// Execute runs the root command. Cobra prints the error; we only set the exit
// status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(source string) error {
	log := newLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var src io.Reader
	switch {
	case source == "-":
		src = os.Stdin
	case followMode:
		follower, err := pipeline.Follow(ctx, source)
		if err != nil {
			return fmt.Errorf("follow input file: %w", err)
		}
		defer follower.Close()
		src = follower
	default:
		f, err := os.Open(source)
		if err != nil {
			return fmt.Errorf("open input file: %w", err)
		}
		defer f.Close()
		src = f
	}

	// The capture file must exist before the first line is read; failing to
	// open it is fatal rather than silently skipping the tee.
	var capture io.Writer
	if captureFile != "" {
		f, err := os.Create(captureFile)
		if err != nil {
			return fmt.Errorf("create capture file: %w", err)
		}
		defer f.Close()
		capture = f
	}

	p := pipeline.New(pipeline.Config{
		Out:     os.Stdout,
		Emitter: annotate.NewEmitter(annotate.NewAgentSink(), log),
		Capture: capture,
		Log:     log,
	})
	return p.Run(ctx, src)
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if debugMode {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
