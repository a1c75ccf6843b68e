package dhcpv4opt

import (
	"fmt"

	"github.com/AdguardTeam/golibs/errors"

	"github.com/wk0115/dhcpv4opt/internal/dhcpattr"
	"github.com/wk0115/dhcpv4opt/internal/dhcpdict"
)

// encodeValue writes the current AV's value into out, per the semantic-type
// table in spec.md §4.2. Ports `encode_value`.
//
// On success it advances cursor to the next encodable AV and rebuilds
// *stack from it (or clears *stack if none remains), as the original does
// via fr_cursor_next + fr_proto_tlv_stack_build.
func encodeValue(
	out []byte,
	stack *tlvStack,
	depth int,
	cursor dhcpattr.Cursor,
	ctx *Context,
) (n int, err error) {
	av, ok := cursor.Current()
	if !ok {
		return 0, ErrExhaustedInput
	}

	def := stack[depth]
	val := av.Value.Bytes()

	ctx.tracer().TraceStack(stack[:depth+1])
	ctx.tracer().TraceFmt("%d byte(s) available for value", len(out))

	if len(out) < len(val) {
		return 0, ErrBufferTooSmall
	}

	switch def.Type {
	case dhcpdict.TypeUint8,
		dhcpdict.TypeUint16,
		dhcpdict.TypeUint32,
		dhcpdict.TypeIPv4Addr,
		dhcpdict.TypeIPv6Addr,
		dhcpdict.TypeEthernet,
		dhcpdict.TypeString,
		dhcpdict.TypeOctets:
		n = copy(out, val)
	default:
		_, _ = nextEncodable(ctx.root(), cursor)

		return 0, fmt.Errorf("%s: %w", def, ErrUnsupportedType)
	}

	ctx.tracer().TraceHex("value", out[:n])

	next, _ := nextEncodable(ctx.root(), cursor)

	newDepth, rerr := rebuildStack(stack, next)
	if rerr != nil {
		return 0, errors.Annotate(rerr, "rebuilding tlv stack: %w")
	}

	ctx.tracer().TraceStack(stack[:max(newDepth+1, 0)])

	return n, nil
}
