package dhcpv4opt_test

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wk0115/dhcpv4opt/internal/dhcpattr"
	"github.com/wk0115/dhcpv4opt/internal/dhcpdict"
	"github.com/wk0115/dhcpv4opt/internal/dhcpv4opt"
)

// newAV is a test helper constructing an [dhcpattr.AV] for a given attribute
// definition.
func newAV(def *dhcpdict.Attribute, v dhcpattr.Value) *dhcpattr.AV {
	return &dhcpattr.AV{Def: def, Value: v}
}

func TestEncodeOption_Scenarios(t *testing.T) {
	d := dhcpdict.Builtin()

	// #53 in the builtin dictionary is DHCP-Message-Type, which the
	// dispatcher skips; scenario 1 needs a plain uint8 attribute that carries
	// number 53 without being the Message-Type, so a private dictionary
	// attribute under another name is used instead of the builtin one.
	priv := dhcpdict.NewDictionary()
	uint8Attr := priv.Add(53, "Message-Type-Like", dhcpdict.TypeUint8, dhcpdict.Flags{})

	t.Run("uint8_value", func(t *testing.T) {
		cursor := dhcpattr.NewSliceCursor([]*dhcpattr.AV{
			newAV(uint8Attr, dhcpattr.Uint8Value(0x01)),
		})
		ctx := dhcpv4opt.NewContext(priv)

		out := make([]byte, 16)
		n, err := dhcpv4opt.EncodeOption(out, cursor, ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, []byte{0x35, 0x01, 0x01}, out[:n])
	})

	leaseTime, ok := d.ByNumber(51)
	require.True(t, ok)

	t.Run("uint32_value", func(t *testing.T) {
		cursor := dhcpattr.NewSliceCursor([]*dhcpattr.AV{
			newAV(leaseTime, dhcpattr.Uint32Value(3600)),
		})
		ctx := dhcpv4opt.NewContext(d)

		out := make([]byte, 16)
		n, err := dhcpv4opt.EncodeOption(out, cursor, ctx)
		require.NoError(t, err)
		assert.Equal(t, 6, n)
		assert.Equal(t, []byte{0x33, 0x04, 0x00, 0x00, 0x0E, 0x10}, out[:n])
	})

	subnetMask, ok := d.ByNumber(1)
	require.True(t, ok)

	t.Run("ipv4_value", func(t *testing.T) {
		cursor := dhcpattr.NewSliceCursor([]*dhcpattr.AV{
			newAV(subnetMask, dhcpattr.IPv4Value(netip.MustParseAddr("255.255.255.0"))),
		})
		ctx := dhcpv4opt.NewContext(d)

		out := make([]byte, 16)
		n, err := dhcpv4opt.EncodeOption(out, cursor, ctx)
		require.NoError(t, err)
		assert.Equal(t, 6, n)
		assert.Equal(t, []byte{0x01, 0x04, 0xFF, 0xFF, 0xFF, 0x00}, out[:n])
	})

	dns, ok := d.ByNumber(6)
	require.True(t, ok)

	t.Run("array_coalescing", func(t *testing.T) {
		cursor := dhcpattr.NewSliceCursor([]*dhcpattr.AV{
			newAV(dns, dhcpattr.IPv4Value(netip.MustParseAddr("8.8.8.8"))),
			newAV(dns, dhcpattr.IPv4Value(netip.MustParseAddr("1.1.1.1"))),
		})
		ctx := dhcpv4opt.NewContext(d)

		out := make([]byte, 16)
		n, err := dhcpv4opt.EncodeOption(out, cursor, ctx)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x06, 0x08, 8, 8, 8, 8, 1, 1, 1, 1}, out[:n])

		_, ok = cursor.Current()
		assert.False(t, ok, "cursor should be past both AVs")
	})

	relay, ok := d.ByNumber(dhcpdict.OptRelayAgentInfo)
	require.True(t, ok)
	circuitID := relay.Children()[0]

	t.Run("tlv_relay_agent", func(t *testing.T) {
		cursor := dhcpattr.NewSliceCursor([]*dhcpattr.AV{
			newAV(circuitID, dhcpattr.OctetsValue([]byte{0xAB, 0xCD})),
		})
		ctx := dhcpv4opt.NewContext(d)

		out := make([]byte, 16)
		n, err := dhcpv4opt.EncodeOption(out, cursor, ctx)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x52, 0x04, 0x01, 0x02, 0xAB, 0xCD}, out[:n])
	})

	t.Run("skip_non_dhcp_attribute", func(t *testing.T) {
		overRange := priv.Add(300, "Vendor-Private", dhcpdict.TypeOctets, dhcpdict.Flags{})
		cursor := dhcpattr.NewSliceCursor([]*dhcpattr.AV{
			newAV(overRange, dhcpattr.OctetsValue([]byte{1})),
		})
		ctx := dhcpv4opt.NewContext(priv)

		out := make([]byte, 16)
		n, err := dhcpv4opt.EncodeOption(out, cursor, ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		assert.ErrorIs(t, ctx.LastSkipReason, dhcpv4opt.ErrNotDHCPOption)

		_, ok = cursor.Current()
		assert.False(t, ok, "cursor should have advanced past the offender")
	})

	t.Run("buffer_exhaustion_mid_array", func(t *testing.T) {
		cursor := dhcpattr.NewSliceCursor([]*dhcpattr.AV{
			newAV(dns, dhcpattr.IPv4Value(netip.MustParseAddr("8.8.8.8"))),
			newAV(dns, dhcpattr.IPv4Value(netip.MustParseAddr("1.1.1.1"))),
		})
		ctx := dhcpv4opt.NewContext(d)

		out := make([]byte, 6)
		n, err := dhcpv4opt.EncodeOption(out, cursor, ctx)
		require.NoError(t, err)
		assert.Equal(t, 6, n)
		assert.Equal(t, []byte{0x06, 0x04, 8, 8, 8, 8}, out[:n])

		next, ok := cursor.Current()
		require.True(t, ok)
		assert.Same(t, dns, next.Def, "second AV must remain for a follow-up call")
	})

	t.Run("unsupported_type", func(t *testing.T) {
		weird := priv.Add(200, "Weird", dhcpdict.SemanticType(99), dhcpdict.Flags{})
		cursor := dhcpattr.NewSliceCursor([]*dhcpattr.AV{
			newAV(weird, dhcpattr.OctetsValue([]byte{1})),
		})
		ctx := dhcpv4opt.NewContext(priv)

		out := make([]byte, 16)
		n, err := dhcpv4opt.EncodeOption(out, cursor, ctx)
		assert.Equal(t, 0, n)
		assert.ErrorIs(t, err, dhcpv4opt.ErrUnsupportedType)

		_, ok = cursor.Current()
		assert.False(t, ok, "cursor should have advanced past the offender")
	})
}

func TestEncodeOption_MessageTypeSkipped(t *testing.T) {
	d := dhcpdict.Builtin()
	msgType, ok := d.ByNumber(53)
	require.True(t, ok)

	cursor := dhcpattr.NewSliceCursor([]*dhcpattr.AV{
		newAV(msgType, dhcpattr.Uint8Value(1)),
	})
	ctx := dhcpv4opt.NewContext(d)

	out := make([]byte, 16)
	n, err := dhcpv4opt.EncodeOption(out, cursor, ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, ctx.LastSkipReason, dhcpv4opt.ErrMessageTypeReserved)

	_, ok = cursor.Current()
	assert.False(t, ok)
}

func TestEncodeOption_ExhaustedInput(t *testing.T) {
	d := dhcpdict.Builtin()
	cursor := dhcpattr.NewSliceCursor(nil)
	ctx := dhcpv4opt.NewContext(d)

	out := make([]byte, 16)
	_, err := dhcpv4opt.EncodeOption(out, cursor, ctx)
	assert.ErrorIs(t, err, dhcpv4opt.ErrExhaustedInput)
}

// TestEncodeOption_LengthHonesty checks invariant 2: the byte at offset +1
// equals the number of value bytes that follow it.
func TestEncodeOption_LengthHonesty(t *testing.T) {
	d := dhcpdict.Builtin()
	relay, ok := d.ByNumber(dhcpdict.OptRelayAgentInfo)
	require.True(t, ok)
	circuitID := relay.Children()[0]

	cursor := dhcpattr.NewSliceCursor([]*dhcpattr.AV{
		newAV(circuitID, dhcpattr.OctetsValue([]byte{0xAB, 0xCD})),
	})
	ctx := dhcpv4opt.NewContext(d)

	out := make([]byte, 16)
	n, err := dhcpv4opt.EncodeOption(out, cursor, ctx)
	require.NoError(t, err)

	require.GreaterOrEqual(t, n, 2)
	assert.Equal(t, n-2, int(out[1]))
}

func TestEncodeOption_NoOverrun(t *testing.T) {
	d := dhcpdict.Builtin()
	dns, ok := d.ByNumber(6)
	require.True(t, ok)

	cursor := dhcpattr.NewSliceCursor([]*dhcpattr.AV{
		newAV(dns, dhcpattr.IPv4Value(netip.MustParseAddr("8.8.8.8"))),
	})
	ctx := dhcpv4opt.NewContext(d)

	out := make([]byte, 4)
	n, err := dhcpv4opt.EncodeOption(out, cursor, ctx)
	require.NoError(t, err)
	assert.LessOrEqual(t, n, len(out))
	assert.Equal(t, 0, n, "too little room for the value, must write nothing")
}
