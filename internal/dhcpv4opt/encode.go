package dhcpv4opt

import (
	"github.com/google/gopacket/layers"

	"github.com/wk0115/dhcpv4opt/internal/dhcpattr"
	"github.com/wk0115/dhcpv4opt/internal/dhcpdict"
)

// EncodeOption encodes one DHCP option (and any nested sub-options) from
// cursor's current attribute into out, advancing cursor past whatever it
// consumed. Ports `fr_dhcpv4_encode_option`, the package's entry point
// (spec.md §6).
//
// It returns:
//   - n > 0 and err == nil: n bytes were written.
//   - n == 0 and err == nil: nothing was written. Either the current
//     attribute was skipped because it is not a DHCP option, and the cursor
//     moved past it; check [Context.LastSkipReason] to tell Message-Type
//     rejection from a general not-a-DHCP-option rejection (DESIGN.md Open
//     Question 1). Or out had no room for the first value, in which case
//     LastSkipReason is nil and the cursor is not advanced.
//   - err != nil: [ErrExhaustedInput] once the cursor holds no more
//     encodable attributes, or a genuine encoding error (unsupported type,
//     or a dictionary/stack inconsistency).
func EncodeOption(out []byte, cursor dhcpattr.Cursor, ctx *Context) (n int, err error) {
	ctx.LastSkipReason = nil

	root := ctx.root()

	av, ok := firstEncodable(root, cursor)
	if !ok {
		return 0, ErrExhaustedInput
	}

	// Only the dictionary's own DHCP-Message-Type attribute is reserved; an
	// attribute that merely shares its number under another name is encoded
	// like any other option.
	messageType, hasMessageType := ctx.Dictionary.ByNumber(uint32(layers.DHCPOptMessageType))
	hasMessageType = hasMessageType && messageType.Name == "DHCP-Message-Type"

	switch {
	case hasMessageType && av.Def == messageType:
		// Already handled elsewhere in the packet assembly path.
		ctx.LastSkipReason = ErrMessageTypeReserved
		_, _ = nextEncodable(root, cursor)
		ctx.tracer().TraceFmt("skipping %s: %s", av.Def, ctx.LastSkipReason)

		return 0, nil
	case av.Def.Number > 255 && av.Def.Number != dhcpdict.OptRelayAgentInfo:
		ctx.LastSkipReason = ErrNotDHCPOption
		_, _ = nextEncodable(root, cursor)
		ctx.tracer().TraceFmt("skipping %s: %s", av.Def, ctx.LastSkipReason)

		return 0, nil
	}

	stack, _, serr := buildTLVStack(av.Def)
	if serr != nil {
		return 0, serr
	}

	ctx.tracer().TraceStack(stack[:1])

	if stack[0].Type == dhcpdict.TypeTLV {
		n, err = encodeTLVHeader(out, &stack, 0, cursor, ctx)
	} else {
		n, err = encodeRFCHeader(out, &stack, 0, cursor, ctx)
	}
	if err != nil {
		return 0, err
	}

	ctx.tracer().TraceFmt("complete option is %d byte(s)", n)
	ctx.tracer().TraceHex("option", out[:n])

	return n, nil
}
