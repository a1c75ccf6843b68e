package dhcpattr_test

import (
	"net"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wk0115/dhcpv4opt/internal/dhcpattr"
)

func TestValueConstructors(t *testing.T) {
	assert.Equal(t, []byte{0x2a}, dhcpattr.Uint8Value(42).Bytes())
	assert.Equal(t, []byte{0x01, 0x02}, dhcpattr.Uint16Value(0x0102).Bytes())
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, dhcpattr.Uint32Value(0x01020304).Bytes())

	ipv4 := netip.MustParseAddr("192.0.2.1")
	assert.Equal(t, []byte{192, 0, 2, 1}, dhcpattr.IPv4Value(ipv4).Bytes())

	ipv6 := netip.MustParseAddr("2001:db8::1")
	assert.Len(t, dhcpattr.IPv6Value(ipv6).Bytes(), 16)

	mac := net.HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}
	assert.Equal(t, []byte(mac), dhcpattr.EthernetValue(mac).Bytes())

	assert.Equal(t, []byte("example.com"), dhcpattr.StringValue("example.com").Bytes())

	b := []byte{1, 2, 3}
	v := dhcpattr.OctetsValue(b)
	b[0] = 0xff
	assert.Equal(t, []byte{1, 2, 3}, v.Bytes(), "OctetsValue must copy its input")

	assert.Equal(t, 4, dhcpattr.Uint32Value(1).Len())
}

func TestIPv4Value_PanicsOnIPv6(t *testing.T) {
	assert.Panics(t, func() {
		dhcpattr.IPv4Value(netip.MustParseAddr("2001:db8::1"))
	})
}

func TestIPv6Value_PanicsOnIPv4(t *testing.T) {
	assert.Panics(t, func() {
		dhcpattr.IPv6Value(netip.MustParseAddr("192.0.2.1"))
	})
}
