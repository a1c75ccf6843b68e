package dhcpv4opt

import (
	"github.com/AdguardTeam/golibs/errors"

	"github.com/wk0115/dhcpv4opt/internal/dhcpattr"
)

// encodeRFCHeader writes one `[tag, len, value...]` record at the given
// depth, coalescing consecutive AVs that share a fixed-width,
// array-flagged definition into the same record (spec.md §4.3). Ports
// `encode_rfc_hdr`.
//
// Returns (>0, nil) for bytes written, (0, nil) if there was no space to
// begin (the caller's two rewound header bytes, if any, are never visible:
// encodeRFCHeader zeroes them itself), or (0, err) on a propagated error
// from the leaf encoder.
func encodeRFCHeader(
	out []byte,
	stack *tlvStack,
	depth int,
	cursor dhcpattr.Cursor,
	ctx *Context,
) (n int, err error) {
	if len(out) < 3 {
		return 0, nil
	}

	def := stack[depth]

	av, ok := cursor.Current()
	if !ok {
		return 0, ErrExhaustedInput
	}
	prevDef := av.Def

	ctx.tracer().TraceStack(stack[:depth+1])

	out[0] = byte(def.Number & 0xff)
	out[1] = 0

	// Check here so we get the full 255 bytes, same comment as the C.
	limit := len(out) - 2
	if limit > 255 {
		limit = 255
	}

	written := 2
	for {
		avail := limit - int(out[1])

		vn, verr := encodeValue(out[written:written+avail], stack, depth, cursor, ctx)
		if verr != nil {
			if errors.Is(verr, ErrBufferTooSmall) {
				ctx.tracer().TraceFmt("no more space in option %d", def.Number)

				if out[1] == 0 {
					// Couldn't encode anything: don't leave these two
					// octets behind.
					out[0], out[1] = 0, 0

					return 0, nil
				}

				// Packed as much as we can (spec.md §8 scenario 7).
				return written, nil
			}

			// Unsupported type (or a deeper stack-overflow): rewind so no
			// partial, malformed option is ever left in out (DESIGN.md
			// Open Question 2).
			out[0], out[1] = 0, 0

			return 0, verr
		}

		written += vn
		out[1] += byte(vn)

		ctx.tracer().TraceHex("rfc option so far", out[:written])

		next, ok := cursor.Current()
		if !ok || next.Def != prevDef || !prevDef.Flags.Array {
			break
		}
	}

	return written, nil
}
