package dhcpv4opt

import "github.com/AdguardTeam/golibs/errors"

// Error kinds returned by the encoder, matching the table in spec.md §7.
// They are plain sentinel values (mirrors AdGuardHome's own
// internal/dhcpsvc/errors.go idiom), rather than the thread-scoped
// `fr_strerror_printf` channel the original C used — see SPEC_FULL.md,
// Ambient Stack, "Error handling".
const (
	// ErrExhaustedInput is returned by [EncodeOption] when the cursor has no
	// more encodable attributes.
	ErrExhaustedInput errors.Error = "no more attributes to encode"

	// ErrMessageTypeReserved is recorded on [Context.LastSkipReason] when
	// the current attribute is the DHCP Message Type, which the packet
	// assembly path emits itself. [EncodeOption] still returns (0, nil) for
	// this case; see DESIGN.md Open Question 1.
	ErrMessageTypeReserved errors.Error = "dhcp message type is emitted elsewhere in the packet"

	// ErrNotDHCPOption is recorded on [Context.LastSkipReason] when the
	// current attribute's number is greater than 255 and it is not Relay
	// Agent Information (82). [EncodeOption] still returns (0, nil).
	ErrNotDHCPOption errors.Error = "attribute is not a dhcpv4 option"

	// ErrBufferTooSmall is returned by the leaf value encoder when the
	// current attribute's value does not fit in the remaining output span.
	ErrBufferTooSmall errors.Error = "value does not fit in the remaining output buffer"

	// ErrUnsupportedType is returned when an attribute's semantic type is
	// not one of the leaf types spec.md §4.2 lists.
	ErrUnsupportedType errors.Error = "unsupported attribute semantic type"

	// ErrStackOverflow is returned when an attribute's ancestor chain is
	// deeper than [github.com/wk0115/dhcpv4opt/internal/dhcpdict.MaxTLVStack],
	// or when it has no root-level ancestor at all.
	ErrStackOverflow errors.Error = "tlv stack exceeds maximum depth"
)
