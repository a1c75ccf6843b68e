package dhcpdefaults_test

import (
	"net/netip"
	"testing"
	"time"

	"github.com/google/gopacket/layers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wk0115/dhcpv4opt/internal/dhcpdefaults"
	"github.com/wk0115/dhcpv4opt/internal/dhcpdict"
)

func TestHostRequirements_SortedAndPresent(t *testing.T) {
	dict := dhcpdict.Builtin()

	opts := dhcpdefaults.HostRequirements(
		dict,
		netip.MustParseAddr("255.255.255.0"),
		netip.MustParseAddr("192.0.2.1"),
	)
	require.NotEmpty(t, opts)

	for i := 1; i < len(opts); i++ {
		assert.LessOrEqual(t, opts[i-1].Number, opts[i].Number, "options must be sorted by number")
	}

	byNumber := make(map[uint8][]byte, len(opts))
	for _, o := range opts {
		byNumber[o.Number] = o.Data
	}

	assert.Equal(t, []byte{255, 255, 255, 0}, byNumber[uint8(layers.DHCPOptSubnetMask)])
	assert.Equal(t, []byte{192, 0, 2, 1}, byNumber[uint8(layers.DHCPOptRouter)])
	assert.Equal(t, []byte{0}, byNumber[uint8(layers.DHCPOptIPForwarding)])
	assert.Equal(t, []byte{1}, byNumber[uint8(layers.DHCPOptRouterDiscovery)])
}

func TestHostRequirements_PlateauTableCoalesces(t *testing.T) {
	dict := dhcpdict.Builtin()

	opts := dhcpdefaults.HostRequirements(
		dict,
		netip.MustParseAddr("255.255.255.0"),
		netip.MustParseAddr("192.0.2.1"),
	)

	var plateau []byte
	for _, o := range opts {
		if o.Number == uint8(layers.DHCPOptPathPlateuTableOption) {
			plateau = o.Data
		}
	}

	require.NotNil(t, plateau)
	assert.Len(t, plateau, 18, "nine uint16 plateau values coalesced into one option")
	assert.Equal(t, []byte{0x00, 0x44}, plateau[:2])
	assert.Equal(t, []byte{0x45, 0xFA}, plateau[16:])
}

func TestLeaseTime(t *testing.T) {
	dict := dhcpdict.Builtin()

	opt := dhcpdefaults.LeaseTime(dict, time.Hour)

	assert.Equal(t, uint8(layers.DHCPOptLeaseTime), opt.Number)
	assert.Equal(t, []byte{0x00, 0x00, 0x0E, 0x10}, opt.Data)
}
