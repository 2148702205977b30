package annotate

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scribe/internal/session"
)

type recordSink struct {
	sent []Annotation
	err  error
}

func (s *recordSink) Send(_ context.Context, a Annotation) error {
	s.sent = append(s.sent, a)
	return s.err
}

func classify(t *testing.T, line string, n int) session.Entry {
	t.Helper()
	e := session.Classify(line, session.DefaultOptions())
	e.LineNumber = n
	return e
}

func TestBuildStyleMapping(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		style string
	}{
		{"assistant is informational", `{"type":"assistant","message":{"content":[{"type":"text","text":"hi"}]}}`, "info"},
		{"user without error is success", `{"type":"user","message":{"content":[{"type":"tool_result","text":"ok"}]}}`, "success"},
		{"user with error is error", `{"type":"user","message":{"content":[{"type":"tool_result","is_error":true,"text":"boom"}]}}`, "error"},
		{"system is warning", `{"type":"system","subtype":"init","session_id":"s","model":"m"}`, "warning"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := Build(classify(t, tc.line, 1))
			assert.Equal(t, tc.style, a.Style)
		})
	}
}

func TestBuildBody(t *testing.T) {
	a := Build(classify(t, `{"type":"user","message":{"content":[{"type":"tool_result","is_error":true,"text":"boom"}]}}`, 7))

	assert.Contains(t, a.Body, "**Message 7**")
	assert.Contains(t, a.Body, "👤 **USER**:")
	assert.Contains(t, a.Body, "boom")
	assert.Contains(t, a.Body, "<summary>Show JSON</summary>")
	// Raw line is pretty-printed inside the fold.
	assert.Contains(t, a.Body, `"is_error": true`)
	assert.Equal(t, 5, a.Priority)
}

func TestBuildNonJSONBody(t *testing.T) {
	a := Build(classify(t, "not json at all", 2))
	assert.Equal(t, "warning", a.Style)
	assert.Contains(t, a.Body, "⚙️ **SYSTEM**:")
	assert.Contains(t, a.Body, "not json at all")
}

func TestBuildContextIsStablePerLine(t *testing.T) {
	line := `{"type":"assistant","message":{"content":[{"type":"text","text":"hi"}]}}`
	first := Build(classify(t, line, 12))
	second := Build(classify(t, line, 12))
	assert.Equal(t, "chat-message-12", first.Context)
	assert.Equal(t, first.Context, second.Context)
}

func TestEmitSkipsUnknownKinds(t *testing.T) {
	sink := &recordSink{}
	em := NewEmitter(sink, zerolog.Nop())

	em.Emit(context.Background(), classify(t, `{"type":"result","subtype":"success"}`, 1))
	assert.Empty(t, sink.sent)
}

func TestEmitDoesNotSkipPlaceholderLookalikes(t *testing.T) {
	sink := &recordSink{}
	em := NewEmitter(sink, zerolog.Nop())

	// Content happens to equal the unknown-kind placeholder; routing must key
	// off the classifier's flag, not the text.
	em.Emit(context.Background(), classify(t, `{"type":"assistant","message":{"content":[{"type":"text","text":"Unknown message type"}]}}`, 1))
	require.Len(t, sink.sent, 1)
}

func TestEmitSwallowsDeliveryFailure(t *testing.T) {
	sink := &recordSink{err: errors.New("agent not reachable")}
	em := NewEmitter(sink, zerolog.Nop())

	em.Emit(context.Background(), classify(t, `{"type":"system"}`, 1))
	em.Emit(context.Background(), classify(t, `{"type":"system"}`, 2))

	// Both sends were attempted; the failure never propagated.
	assert.Len(t, sink.sent, 2)
}
