// Package dhcpattr models attribute-value pairs and the cursor that yields
// them to the encoder in
// [github.com/wk0115/dhcpv4opt/internal/dhcpv4opt].
package dhcpattr

import (
	"encoding/binary"
	"net"
	"net/netip"

	"github.com/wk0115/dhcpv4opt/internal/dhcpdict"
)

// Value is an attribute's payload, already laid out the way it will appear
// on the wire. Construct one with the typed helpers below, which know the
// byte width and byte order for each [dhcpdict.SemanticType]; the encoder
// itself only ever sees bytes plus a length, matching
// [dhcpdict.Attribute.Type] from the dictionary.
type Value struct {
	raw []byte
}

// Bytes returns v's wire bytes. The returned slice must not be modified.
func (v Value) Bytes() []byte {
	return v.raw
}

// Len returns the number of wire bytes in v.
func (v Value) Len() int {
	return len(v.raw)
}

// Uint8Value constructs a one-byte [TypeUint8] value.
func Uint8Value(n uint8) Value {
	return Value{raw: []byte{n}}
}

// Uint16Value constructs a big-endian [TypeUint16] value.
func Uint16Value(n uint16) Value {
	raw := make([]byte, 2)
	binary.BigEndian.PutUint16(raw, n)

	return Value{raw: raw}
}

// Uint32Value constructs a big-endian [TypeUint32] value.
func Uint32Value(n uint32) Value {
	raw := make([]byte, 4)
	binary.BigEndian.PutUint32(raw, n)

	return Value{raw: raw}
}

// IPv4Value constructs a [TypeIPv4Addr] value. addr must be a 4-in-4
// address; IPv4Value panics otherwise, since that is a caller bug.
func IPv4Value(addr netip.Addr) Value {
	if !addr.Is4() {
		panic("dhcpattr: IPv4Value: addr is not an IPv4 address")
	}

	a4 := addr.As4()

	return Value{raw: a4[:]}
}

// IPv6Value constructs a [TypeIPv6Addr] value. addr must be an IPv6
// address; IPv6Value panics otherwise.
func IPv6Value(addr netip.Addr) Value {
	if !addr.Is6() {
		panic("dhcpattr: IPv6Value: addr is not an IPv6 address")
	}

	a16 := addr.As16()

	return Value{raw: a16[:]}
}

// EthernetValue constructs a [TypeEthernet] value from a 6-byte hardware
// address.
func EthernetValue(hw net.HardwareAddr) Value {
	raw := make([]byte, len(hw))
	copy(raw, hw)

	return Value{raw: raw}
}

// StringValue constructs a [TypeString] value. No NUL terminator is added;
// the length is taken from len(s), matching spec.md §4.2's string row.
func StringValue(s string) Value {
	return Value{raw: []byte(s)}
}

// OctetsValue constructs a [TypeOctets] value, copying b so later mutation
// of the caller's slice cannot affect the attribute.
func OctetsValue(b []byte) Value {
	raw := make([]byte, len(b))
	copy(raw, b)

	return Value{raw: raw}
}

// AV is an attribute-value pair as yielded by a [Cursor]: a reference to its
// dictionary definition plus its wire-ready value.
type AV struct {
	// Def is the attribute's dictionary definition. It must be non-nil and
	// must belong to the dictionary the encoder was configured with.
	Def *dhcpdict.Attribute

	// Value is the attribute's payload.
	Value Value
}
