// Package dhcpv4opt implements the DHCPv4 option encoder: serializing a
// sequence of dictionary-described attribute-value pairs into the option
// area of a DHCPv4 packet, per RFC 2131 / RFC 2132 and the Relay Agent
// Information nesting of RFC 3046.
//
// It is a direct Go port of FreeRADIUS's protocols/dhcpv4/encode.c (see
// DESIGN.md); the dictionary and cursor it consumes live in
// [github.com/wk0115/dhcpv4opt/internal/dhcpdict] and
// [github.com/wk0115/dhcpv4opt/internal/dhcpattr] respectively.
package dhcpv4opt

import (
	"fmt"

	"github.com/wk0115/dhcpv4opt/internal/dhcpdict"
)

// Tracer receives diagnostic events from the encoder. It is the structured
// re-expression of the original's FR_PROTO_STACK_PRINT/FR_PROTO_HEX_DUMP/
// FR_PROTO_TRACE macros (spec.md §9, Design Note "Macro-based logging for
// protocol tracing"). Production code should use [NoopTracer]; tools that
// want visibility into the encoding process use [SlogTracer].
type Tracer interface {
	// TraceStack is called whenever the TLV stack changes, with the
	// currently valid prefix of the stack (root-level attribute first).
	TraceStack(stack []*dhcpdict.Attribute)

	// TraceHex is called with a label and the bytes just written for some
	// sub-step of the encoding.
	TraceHex(label string, b []byte)

	// TraceFmt is called with a free-form diagnostic message.
	TraceFmt(format string, args ...any)
}

// NoopTracer discards all trace events. It is the zero-cost default.
type NoopTracer struct{}

// type check
var _ Tracer = NoopTracer{}

// TraceStack implements the [Tracer] interface for NoopTracer.
func (NoopTracer) TraceStack([]*dhcpdict.Attribute) {}

// TraceHex implements the [Tracer] interface for NoopTracer.
func (NoopTracer) TraceHex(string, []byte) {}

// TraceFmt implements the [Tracer] interface for NoopTracer.
func (NoopTracer) TraceFmt(string, ...any) {}

// Context is the per-call encoder context (spec.md §6's `EncoderCtx`). It
// carries the dictionary the encoder validates attributes against and an
// optional [Tracer]. A Context may be reused across sequential calls to
// [EncodeOption] as long as they are not concurrent (spec.md §5).
type Context struct {
	// Dictionary supplies the root used to filter attributes that don't
	// belong to the DHCPv4 option space. Must not be nil.
	Dictionary *dhcpdict.Dictionary

	// Tracer receives diagnostic events. Defaults to [NoopTracer] when
	// constructed via [NewContext].
	Tracer Tracer

	// LastSkipReason records why the most recent call to [EncodeOption]
	// returned (0, nil), distinguishing [ErrMessageTypeReserved] from
	// [ErrNotDHCPOption] without changing the wire-compatible return value
	// (DESIGN.md Open Question 1). It is nil after any call that encoded,
	// exhausted the input, or errored.
	LastSkipReason error
}

// NewContext returns a Context wired to dict with a [NoopTracer].
func NewContext(dict *dhcpdict.Dictionary) *Context {
	return &Context{
		Dictionary: dict,
		Tracer:     NoopTracer{},
	}
}

// root returns the dictionary root attribute, panicking with a descriptive
// message if ctx is misconfigured; a nil Dictionary is a caller bug, not a
// runtime condition to recover from.
func (ctx *Context) root() *dhcpdict.Attribute {
	if ctx.Dictionary == nil {
		panic(fmt.Sprintf("dhcpv4opt: %T.Dictionary is nil", ctx))
	}

	return ctx.Dictionary.Root()
}

func (ctx *Context) tracer() Tracer {
	if ctx.Tracer == nil {
		return NoopTracer{}
	}

	return ctx.Tracer
}
