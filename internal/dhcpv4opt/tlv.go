package dhcpv4opt

import (
	"github.com/wk0115/dhcpv4opt/internal/dhcpattr"
	"github.com/wk0115/dhcpv4opt/internal/dhcpdict"
)

// encodeTLVHeader writes one `[tag, len, inner...]` record whose inner
// bytes are produced by recursively invoking the RFC or TLV encoder for the
// attributes at depth+1 (spec.md §4.4). Ports `encode_tlv_hdr`.
func encodeTLVHeader(
	out []byte,
	stack *tlvStack,
	depth int,
	cursor dhcpattr.Cursor,
	ctx *Context,
) (n int, err error) {
	if len(out) < 5 {
		return 0, nil
	}

	if depth+1 >= len(stack) {
		return 0, ErrStackOverflow
	}

	da := stack[depth]

	prevAV, ok := cursor.Current()
	if !ok {
		return 0, ErrExhaustedInput
	}

	ctx.tracer().TraceStack(stack[:depth+1])

	out[0] = byte(da.Number & 0xff)
	out[1] = 0

	limit := len(out) - 2
	if limit > 255 {
		limit = 255
	}

	written := 2
	for limit-int(out[1]) >= 3 {
		budget := out[written : written+(limit-int(out[1]))]

		var vn int
		var verr error
		if stack[depth+1].Type == dhcpdict.TypeTLV {
			vn, verr = encodeTLVHeader(budget, stack, depth+1, cursor, ctx)
		} else {
			vn, verr = encodeRFCHeader(budget, stack, depth+1, cursor, ctx)
		}

		if verr != nil {
			out[0], out[1] = 0, 0

			return 0, verr
		}

		if vn == 0 {
			// Insufficient space.
			break
		}

		written += vn
		out[1] += byte(vn)

		ctx.tracer().TraceHex("tlv header and sub-options so far", out[:written])

		curAV, ok := cursor.Current()
		if !ok || curAV == prevAV {
			// Nothing updated the attribute: stop.
			break
		}

		if stack[depth] != da {
			// The rebuilt stack's top no longer matches the TLV we
			// started: the next AV belongs to a different option.
			break
		}

		prevAV = curAV
	}

	return written, nil
}
