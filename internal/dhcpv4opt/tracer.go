package dhcpv4opt

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wk0115/dhcpv4opt/internal/dhcpdict"
)

// SlogTracer implements [Tracer] on top of [log/slog], the structured
// re-expression of the original's FR_PROTO_TRACE family of macros. Debug
// level carries all events, matching the verbosity the C build gated behind
// `WITH_VERIFY_PTR`/talloc debugging.
type SlogTracer struct {
	// Logger receives trace events. Must not be nil.
	Logger *slog.Logger

	// Ctx is passed to the logger's *Context methods. Defaults to
	// [context.Background] if nil.
	Ctx context.Context
}

// type check
var _ Tracer = (*SlogTracer)(nil)

func (t *SlogTracer) ctx() context.Context {
	if t.Ctx == nil {
		return context.Background()
	}

	return t.Ctx
}

// TraceStack implements the [Tracer] interface for *SlogTracer.
func (t *SlogTracer) TraceStack(stack []*dhcpdict.Attribute) {
	names := make([]string, 0, len(stack))
	for _, a := range stack {
		names = append(names, a.Name)
	}

	t.Logger.DebugContext(t.ctx(), "tlv stack", "path", strings.Join(names, "."))
}

// TraceHex implements the [Tracer] interface for *SlogTracer.
func (t *SlogTracer) TraceHex(label string, b []byte) {
	t.Logger.DebugContext(t.ctx(), label, "hex", hex.EncodeToString(b), "len", len(b))
}

// TraceFmt implements the [Tracer] interface for *SlogTracer.
func (t *SlogTracer) TraceFmt(format string, args ...any) {
	t.Logger.DebugContext(t.ctx(), fmt.Sprintf(format, args...))
}
