package dhcpdict

import "github.com/google/gopacket/layers"

// Option 82 (Relay Agent Information, RFC 3046) sub-option numbers.
// gopacket/layers stops short of defining these, since it never needs to
// look inside option 82's value; the dictionary does.
const (
	SubOptAgentCircuitID uint32 = 1
	SubOptAgentRemoteID  uint32 = 2
)

// Root-level option numbers gopacket/layers doesn't define (it models only
// the options AdGuardHome's own DHCP server emits or parses). Numbered per
// RFC 2132 (66, 67, 77) and RFC 3046/3011 (81, 82, 118).
const (
	optTFTPServerName  uint32 = 66
	optBootfileName    uint32 = 67
	optUserClass       uint32 = 77
	optClientFQDN      uint32 = 81
	optSubnetSelection uint32 = 118
)

// OptRelayAgentInfo is the DHCPv4 Relay Agent Information option number
// (RFC 3046). It is the one attribute number above 255's sibling range that
// the dispatcher in
// [github.com/wk0115/dhcpv4opt/internal/dhcpv4opt.EncodeOption] must
// recognize by number, per spec.md §4.6 step 2, rather than by pointer
// identity to a single dictionary attribute (unlike Message-Type).
const OptRelayAgentInfo uint32 = 82

// Builtin returns the standard RFC 2132 DHCPv4 option dictionary, plus
// option 82 (Relay Agent Information, RFC 3046) with its two well-known
// sub-options. It is built fresh on every call; callers that only need to
// read it should share one instance rather than calling Builtin repeatedly.
func Builtin() *Dictionary {
	d := NewDictionary()

	array := Flags{Array: true}
	plain := Flags{}

	d.Add(uint32(layers.DHCPOptSubnetMask), "Subnet-Mask", TypeIPv4Addr, plain)
	d.Add(uint32(layers.DHCPOptTimeOffset), "Time-Offset", TypeUint32, plain)
	d.Add(uint32(layers.DHCPOptRouter), "Router", TypeIPv4Addr, array)
	d.Add(uint32(layers.DHCPOptTimeServer), "Time-Server", TypeIPv4Addr, array)
	d.Add(uint32(layers.DHCPOptNameServer), "Name-Server", TypeIPv4Addr, array)
	d.Add(uint32(layers.DHCPOptDNS), "Domain-Name-Server", TypeIPv4Addr, array)
	d.Add(uint32(layers.DHCPOptLogServer), "Log-Server", TypeIPv4Addr, array)
	d.Add(uint32(layers.DHCPOptCookieServer), "Cookie-Server", TypeIPv4Addr, array)
	d.Add(uint32(layers.DHCPOptLPRServer), "LPR-Server", TypeIPv4Addr, array)
	d.Add(uint32(layers.DHCPOptImpressServer), "Impress-Server", TypeIPv4Addr, array)
	d.Add(uint32(layers.DHCPOptResLocServer), "Resource-Location-Server", TypeIPv4Addr, array)
	d.Add(uint32(layers.DHCPOptHostname), "Host-Name", TypeString, plain)
	d.Add(uint32(layers.DHCPOptBootfileSize), "Boot-File-Size", TypeUint16, plain)
	d.Add(uint32(layers.DHCPOptMeritDumpFile), "Merit-Dump-File", TypeString, plain)
	d.Add(uint32(layers.DHCPOptDomainName), "Domain-Name", TypeString, plain)
	d.Add(uint32(layers.DHCPOptSwapServer), "Swap-Server", TypeIPv4Addr, plain)
	d.Add(uint32(layers.DHCPOptRootPath), "Root-Path", TypeString, plain)
	d.Add(uint32(layers.DHCPOptExtensionsPath), "Extensions-Path", TypeString, plain)
	d.Add(uint32(layers.DHCPOptIPForwarding), "IP-Forwarding", TypeUint8, plain)
	d.Add(uint32(layers.DHCPOptSourceRouting), "Non-Local-Source-Routing", TypeUint8, plain)
	d.Add(uint32(layers.DHCPOptPolicyFilter), "Policy-Filter", TypeOctets, plain)
	d.Add(uint32(layers.DHCPOptDatagramMTU), "Max-Datagram-Reassembly-Size", TypeUint16, plain)
	d.Add(uint32(layers.DHCPOptDefaultTTL), "Default-IP-TTL", TypeUint8, plain)
	d.Add(uint32(layers.DHCPOptPathMTUAgingTimeout), "Path-MTU-Aging-Timeout", TypeUint32, plain)
	d.Add(uint32(layers.DHCPOptPathPlateuTableOption), "Path-MTU-Plateau-Table", TypeUint16, array)
	d.Add(uint32(layers.DHCPOptInterfaceMTU), "Interface-MTU", TypeUint16, plain)
	d.Add(uint32(layers.DHCPOptAllSubsLocal), "All-Subnets-Local", TypeUint8, plain)
	d.Add(uint32(layers.DHCPOptBroadcastAddr), "Broadcast-Address", TypeIPv4Addr, plain)
	d.Add(uint32(layers.DHCPOptMaskDiscovery), "Perform-Mask-Discovery", TypeUint8, plain)
	d.Add(uint32(layers.DHCPOptMaskSupplier), "Mask-Supplier", TypeUint8, plain)
	d.Add(uint32(layers.DHCPOptRouterDiscovery), "Perform-Router-Discovery", TypeUint8, plain)
	d.Add(uint32(layers.DHCPOptSolicitAddr), "Router-Solicitation-Address", TypeIPv4Addr, plain)
	d.Add(uint32(layers.DHCPOptStaticRoute), "Static-Route", TypeOctets, plain)
	d.Add(uint32(layers.DHCPOptARPTrailers), "Trailer-Encapsulation", TypeUint8, plain)
	d.Add(uint32(layers.DHCPOptARPTimeout), "ARP-Cache-Timeout", TypeUint32, plain)
	d.Add(uint32(layers.DHCPOptEthernetEncap), "Ethernet-Encapsulation", TypeUint8, plain)
	d.Add(uint32(layers.DHCPOptTCPTTL), "TCP-Default-TTL", TypeUint8, plain)
	d.Add(uint32(layers.DHCPOptTCPKeepAliveInt), "TCP-Keepalive-Interval", TypeUint32, plain)
	d.Add(uint32(layers.DHCPOptTCPKeepAliveGarbage), "TCP-Keepalive-Garbage", TypeUint8, plain)
	d.Add(uint32(layers.DHCPOptNISDomain), "NIS-Domain", TypeString, plain)
	d.Add(uint32(layers.DHCPOptNISServers), "NIS-Servers", TypeIPv4Addr, array)
	d.Add(uint32(layers.DHCPOptNTPServers), "NTP-Servers", TypeIPv4Addr, array)
	d.Add(uint32(layers.DHCPOptVendorOption), "Vendor-Specific-Information", TypeOctets, plain)
	d.Add(uint32(layers.DHCPOptNetBIOSTCPNS), "NetBIOS-Name-Server", TypeIPv4Addr, array)
	d.Add(uint32(layers.DHCPOptNetBIOSTCPDDS), "NetBIOS-Datagram-Distribution-Server", TypeIPv4Addr, array)
	d.Add(uint32(layers.DHCPOptNETBIOSTCPNodeType), "NetBIOS-Node-Type", TypeUint8, plain)
	d.Add(uint32(layers.DHCPOptNetBIOSTCPScope), "NetBIOS-Scope", TypeString, plain)
	d.Add(uint32(layers.DHCPOptXFontServer), "X-Window-Font-Server", TypeIPv4Addr, array)
	d.Add(uint32(layers.DHCPOptXDisplayManager), "X-Window-Display-Manager", TypeIPv4Addr, array)
	d.Add(uint32(layers.DHCPOptRequestIP), "Requested-IP-Address", TypeIPv4Addr, plain)
	d.Add(uint32(layers.DHCPOptLeaseTime), "IP-Address-Lease-Time", TypeUint32, plain)
	d.Add(uint32(layers.DHCPOptExtOptions), "Option-Overload", TypeUint8, plain)

	// Message-Type is an ordinary, non-internal dictionary attribute: the
	// dispatcher is the one that recognizes and rejects it explicitly
	// (spec.md §4.6 step 2), not the internal flag. See DESIGN.md Open
	// Question 1 for why that rejection is kept distinct from the general
	// "not a DHCP option" one.
	d.Add(uint32(layers.DHCPOptMessageType), "DHCP-Message-Type", TypeUint8, plain)

	d.Add(uint32(layers.DHCPOptServerID), "Server-Identifier", TypeIPv4Addr, plain)
	d.Add(uint32(layers.DHCPOptParamsRequest), "Parameter-Request-List", TypeOctets, plain)
	d.Add(uint32(layers.DHCPOptMessage), "Message", TypeString, plain)
	d.Add(uint32(layers.DHCPOptMaxMessageSize), "Maximum-DHCP-Message-Size", TypeUint16, plain)
	d.Add(uint32(layers.DHCPOptT1), "Renewal-Time-Value", TypeUint32, plain)
	d.Add(uint32(layers.DHCPOptT2), "Rebinding-Time-Value", TypeUint32, plain)
	d.Add(uint32(layers.DHCPOptClassID), "Vendor-Class-Identifier", TypeOctets, plain)
	d.Add(uint32(layers.DHCPOptClientID), "Client-Identifier", TypeOctets, plain)

	d.Add(optTFTPServerName, "TFTP-Server-Name", TypeString, plain)
	d.Add(optBootfileName, "Bootfile-Name", TypeString, plain)
	d.Add(optUserClass, "User-Class", TypeOctets, plain)
	d.Add(optClientFQDN, "Client-FQDN", TypeOctets, plain)

	relayInfo := d.Add(OptRelayAgentInfo, "Relay-Agent-Information", TypeTLV, plain)
	d.AddChild(relayInfo, SubOptAgentCircuitID, "Agent-Circuit-ID", TypeOctets, plain)
	d.AddChild(relayInfo, SubOptAgentRemoteID, "Agent-Remote-ID", TypeOctets, plain)

	d.Add(optSubnetSelection, "Subnet-Selection", TypeIPv4Addr, plain)
	d.Add(uint32(layers.DHCPOptClasslessStaticRoute), "Classless-Static-Route", TypeOctets, plain)

	return d
}
