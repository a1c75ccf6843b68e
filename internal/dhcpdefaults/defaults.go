// Package dhcpdefaults builds the default DHCPv4 option set a conforming
// server offers a host per RFC 2131 Appendix A ("Host Configuration
// Parameters"), encoding every value through
// [github.com/wk0115/dhcpv4opt/internal/dhcpv4opt]. It is adapted from
// AdGuardHome's internal/dhcpsvc/options4.go: the same RFC-mandated default
// values, the same option grouping, but built as a standalone, dictionary-
// driven table instead of a lease-service method, since the surrounding
// lease-storage/request-handling state machine that package owned is out of
// this module's scope (see DESIGN.md).
package dhcpdefaults

import (
	"fmt"
	"net"
	"net/netip"
	"slices"
	"time"

	"github.com/AdguardTeam/golibs/netutil"
	"github.com/google/gopacket/layers"

	"github.com/wk0115/dhcpv4opt/internal/dhcpattr"
	"github.com/wk0115/dhcpv4opt/internal/dhcpdict"
	"github.com/wk0115/dhcpv4opt/internal/dhcpv4opt"
)

// Option is one encoded DHCPv4 option, ready to attach to a packet: the
// option number plus its already-serialized value area (no tag/length
// bytes).
type Option struct {
	Number uint8
	Data   []byte
}

// encode runs one or more values sharing a dictionary option number through
// [dhcpv4opt.EncodeOption], producing a single Option. When number names an
// array attribute (see [dhcpdict.Flags.Array]), multiple vals coalesce into
// one option's value area; a non-array attribute must be called with
// exactly one value.
//
// number must name a root-level attribute already registered in dict; encode
// panics otherwise, since every call site in this package is static, making
// a lookup miss a programming error, not a runtime condition.
func encode(dict *dhcpdict.Dictionary, number uint32, vals ...dhcpattr.Value) Option {
	def, ok := dict.ByNumber(number)
	if !ok {
		panic(fmt.Sprintf("dhcpdefaults: no dictionary attribute registered for option %d", number))
	}

	avs := make([]*dhcpattr.AV, 0, len(vals))
	for _, v := range vals {
		avs = append(avs, &dhcpattr.AV{Def: def, Value: v})
	}

	cursor := dhcpattr.NewSliceCursor(avs)
	ctx := dhcpv4opt.NewContext(dict)

	out := make([]byte, 512)
	n, err := dhcpv4opt.EncodeOption(out, cursor, ctx)
	if err != nil {
		panic(fmt.Sprintf("dhcpdefaults: encoding option %d (%s): %s", number, def.Name, err))
	}

	return Option{Number: out[0], Data: append([]byte(nil), out[2:n]...)}
}

// mustAddr converts a 4- or 4-in-6 net.IP into a canonical 4-byte
// [netip.Addr], panicking if ip isn't a valid address — the well-known
// constants this package calls it with never fail.
func mustAddr(ip net.IP) netip.Addr {
	addr, ok := netip.AddrFromSlice(ip)
	if !ok {
		panic(fmt.Sprintf("dhcpdefaults: %v is not a valid IP address", ip))
	}

	return addr.Unmap()
}

// HostRequirements returns the RFC 2131 Appendix A default option set for a
// host configured with subnetMask and gatewayIP, sorted by option number.
// subnetMask and gatewayIP must be valid IPv4 addresses.
func HostRequirements(dict *dhcpdict.Dictionary, subnetMask, gatewayIP netip.Addr) []Option {
	opts := make([]Option, 0, 20)

	opts = append(opts,
		encode(dict, uint32(layers.DHCPOptSubnetMask), dhcpattr.IPv4Value(subnetMask)),
		encode(dict, uint32(layers.DHCPOptRouter), dhcpattr.IPv4Value(gatewayIP)),
	)
	opts = appendIPPerHost(dict, opts)
	opts = appendIPPerInterface(dict, opts)
	opts = appendLinkPerInterface(dict, opts)
	opts = appendTCPPerHost(dict, opts)

	slices.SortFunc(opts, compareOptionNumbers)

	return opts
}

// compareOptionNumbers compares option numbers of a and b.
func compareOptionNumbers(a, b Option) (res int) {
	return int(a.Number) - int(b.Number)
}

// appendIPPerHost appends the IP-layer per host DHCPv4 options to orig.
func appendIPPerHost(dict *dhcpdict.Dictionary, orig []Option) (res []Option) {
	return append(
		orig,
		// An Internet host that includes embedded gateway code MUST have a
		// configuration switch to disable the gateway function, and this switch
		// MUST default to the non-gateway mode.
		//
		// See https://datatracker.ietf.org/doc/html/rfc1122#section-3.3.5.
		encode(dict, uint32(layers.DHCPOptIPForwarding), dhcpattr.Uint8Value(0)),

		// A host that supports non-local source-routing MUST have a
		// configurable switch to disable forwarding, and this switch MUST
		// default to disabled.
		//
		// See https://datatracker.ietf.org/doc/html/rfc1122#section-3.3.5.
		encode(dict, uint32(layers.DHCPOptSourceRouting), dhcpattr.Uint8Value(0)),

		// Do not set the Policy Filter Option since it only makes sense when
		// the non-local source routing is enabled.

		// The minimum legal value is 576.
		//
		// See https://datatracker.ietf.org/doc/html/rfc2132#section-4.4.
		encode(dict, uint32(layers.DHCPOptDatagramMTU), dhcpattr.Uint16Value(576)),

		// Set the current recommended default time to live for the Internet
		// Protocol which is 64.
		//
		// See https://www.iana.org/assignments/ip-parameters/ip-parameters.xhtml#ip-parameters-2.
		encode(dict, uint32(layers.DHCPOptDefaultTTL), dhcpattr.Uint8Value(64)),

		// For example, after the PTMU estimate is decreased, the timeout should
		// be set to 10 minutes; once this timer expires and a larger MTU is
		// attempted, the timeout can be set to a much smaller value.
		//
		// See https://datatracker.ietf.org/doc/html/rfc1191#section-6.6.
		encode(dict, uint32(layers.DHCPOptPathMTUAgingTimeout), dhcpattr.Uint32Value(600)),

		// There is a table describing the MTU values representing all major
		// data-link technologies in use in the Internet so that each set of
		// similar MTUs is associated with a plateau value equal to the lowest
		// MTU in the group. Path-MTU-Plateau-Table is an array attribute, so
		// the nine plateau values below coalesce into one option.
		//
		// See https://datatracker.ietf.org/doc/html/rfc1191#section-7.
		encode(
			dict,
			uint32(layers.DHCPOptPathPlateuTableOption),
			dhcpattr.Uint16Value(68),
			dhcpattr.Uint16Value(296),
			dhcpattr.Uint16Value(508),
			dhcpattr.Uint16Value(1006),
			dhcpattr.Uint16Value(1492),
			dhcpattr.Uint16Value(2002),
			dhcpattr.Uint16Value(4352),
			dhcpattr.Uint16Value(8166),
			dhcpattr.Uint16Value(17914),
		),
	)
}

// appendIPPerInterface appends the IP-layer per interface DHCPv4 options to
// orig.
func appendIPPerInterface(dict *dhcpdict.Dictionary, orig []Option) (res []Option) {
	return append(
		orig,

		// Don't set the Interface MTU because client may choose the value on
		// their own since it's listed in the [Host Requirements RFC].  It also
		// seems the values listed there sometimes appear obsolete.
		//
		// [Host Requirements RFC]: https://datatracker.ietf.org/doc/html/rfc1122#section-3.3.3.

		// Set the All Subnets Are Local Option to false since commonly the
		// connected hosts aren't expected to be multihomed.
		//
		// See https://datatracker.ietf.org/doc/html/rfc1122#section-3.3.3.
		encode(dict, uint32(layers.DHCPOptAllSubsLocal), dhcpattr.Uint8Value(0)),

		// Set the Perform Mask Discovery Option to false to provide the subnet
		// mask by options only.
		//
		// See https://datatracker.ietf.org/doc/html/rfc1122#section-3.2.2.9.
		encode(dict, uint32(layers.DHCPOptMaskDiscovery), dhcpattr.Uint8Value(0)),

		// A system MUST NOT send an Address Mask Reply unless it is an
		// authoritative agent for address masks.  An authoritative agent may be
		// a host or a gateway, but it MUST be explicitly configured as a
		// address mask agent.
		//
		// See https://datatracker.ietf.org/doc/html/rfc1122#section-3.2.2.9.
		encode(dict, uint32(layers.DHCPOptMaskSupplier), dhcpattr.Uint8Value(0)),

		// Set the Perform Router Discovery Option to true as per Router
		// Discovery Document.
		//
		// See https://datatracker.ietf.org/doc/html/rfc1256#section-5.1.
		encode(dict, uint32(layers.DHCPOptRouterDiscovery), dhcpattr.Uint8Value(1)),

		// The all-routers address is preferred wherever possible.
		//
		// See https://datatracker.ietf.org/doc/html/rfc1256#section-5.1.
		encode(dict, uint32(layers.DHCPOptSolicitAddr), dhcpattr.IPv4Value(mustAddr(netutil.IPv4allrouter()))),

		// Don't set the Static Routes Option since it should be set up by
		// system administrator.
		//
		// See https://datatracker.ietf.org/doc/html/rfc1122#section-3.3.1.2.

		// A datagram with the destination address of limited broadcast will be
		// received by every host on the connected physical network but will not
		// be forwarded outside that network.
		//
		// See https://datatracker.ietf.org/doc/html/rfc1122#section-3.2.1.3.
		encode(dict, uint32(layers.DHCPOptBroadcastAddr), dhcpattr.IPv4Value(mustAddr(netutil.IPv4bcast()))),
	)
}

// appendLinkPerInterface appends the link-layer per interface DHCPv4 options
// to orig.
func appendLinkPerInterface(dict *dhcpdict.Dictionary, orig []Option) (res []Option) {
	return append(
		orig,

		// If the system does not dynamically negotiate use of the trailer
		// protocol on a per-destination basis, the default configuration MUST
		// disable the protocol.
		//
		// See https://datatracker.ietf.org/doc/html/rfc1122#section-2.3.1.
		encode(dict, uint32(layers.DHCPOptARPTrailers), dhcpattr.Uint8Value(0)),

		// For proxy ARP situations, the timeout needs to be on the order of a
		// minute.
		//
		// See https://datatracker.ietf.org/doc/html/rfc1122#section-2.3.2.1.
		encode(dict, uint32(layers.DHCPOptARPTimeout), dhcpattr.Uint32Value(60)),

		// An Internet host that implements sending both the RFC-894 and the
		// RFC-1042 encapsulations MUST provide a configuration switch to select
		// which is sent, and this switch MUST default to RFC-894.
		//
		// See https://datatracker.ietf.org/doc/html/rfc1122#section-2.3.3.
		encode(dict, uint32(layers.DHCPOptEthernetEncap), dhcpattr.Uint8Value(0)),
	)
}

// appendTCPPerHost appends the TCP per host DHCPv4 options to orig.
func appendTCPPerHost(dict *dhcpdict.Dictionary, orig []Option) (res []Option) {
	return append(
		orig,

		// A fixed value must be at least big enough for the Internet diameter,
		// i.e., the longest possible path.  A reasonable value is about twice
		// the diameter, to allow for continued Internet growth.
		//
		// See https://datatracker.ietf.org/doc/html/rfc1122#section-3.2.1.7.
		encode(dict, uint32(layers.DHCPOptTCPTTL), dhcpattr.Uint8Value(60)),

		// The interval MUST be configurable and MUST default to no less than
		// two hours.
		//
		// See https://datatracker.ietf.org/doc/html/rfc1122#section-4.2.3.6.
		encode(dict, uint32(layers.DHCPOptTCPKeepAliveInt), dhcpattr.Uint32Value(7200)),

		// Unfortunately, some misbehaved TCP implementations fail to respond to
		// a probe segment unless it contains data.
		//
		// See https://datatracker.ietf.org/doc/html/rfc1122#section-4.2.3.6.
		encode(dict, uint32(layers.DHCPOptTCPKeepAliveGarbage), dhcpattr.Uint8Value(1)),
	)
}

// LeaseTime encodes the IP-Address-Lease-Time option (51) for the given
// lease duration.
func LeaseTime(dict *dhcpdict.Dictionary, dur time.Duration) Option {
	return encode(dict, uint32(layers.DHCPOptLeaseTime), dhcpattr.Uint32Value(uint32(dur.Seconds())))
}
