package dhcpdict_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wk0115/dhcpv4opt/internal/dhcpdict"
)

func TestDictionary_AddByNumber(t *testing.T) {
	d := dhcpdict.NewDictionary()
	subnet := d.Add(1, "Subnet-Mask", dhcpdict.TypeIPv4Addr, dhcpdict.Flags{})

	got, ok := d.ByNumber(1)
	require.True(t, ok)
	assert.Same(t, subnet, got)

	_, ok = d.ByNumber(2)
	assert.False(t, ok)
}

func TestDictionary_AddDuplicatePanics(t *testing.T) {
	d := dhcpdict.NewDictionary()
	d.Add(1, "Subnet-Mask", dhcpdict.TypeIPv4Addr, dhcpdict.Flags{})

	assert.Panics(t, func() {
		d.Add(1, "Subnet-Mask-Again", dhcpdict.TypeIPv4Addr, dhcpdict.Flags{})
	})
}

func TestDictionary_AddChild(t *testing.T) {
	d := dhcpdict.NewDictionary()
	relay := d.Add(82, "Relay-Agent-Information", dhcpdict.TypeTLV, dhcpdict.Flags{})
	circuit := d.AddChild(relay, 1, "Agent-Circuit-ID", dhcpdict.TypeOctets, dhcpdict.Flags{})

	assert.Same(t, relay, circuit.Parent())
	assert.Contains(t, relay.Children(), circuit)
	assert.Equal(t, 1, circuit.Depth())
	assert.Equal(t, 0, relay.Depth())
}

func TestDictionary_AddChildDuplicatePanics(t *testing.T) {
	d := dhcpdict.NewDictionary()
	relay := d.Add(82, "Relay-Agent-Information", dhcpdict.TypeTLV, dhcpdict.Flags{})
	d.AddChild(relay, 1, "Agent-Circuit-ID", dhcpdict.TypeOctets, dhcpdict.Flags{})

	assert.Panics(t, func() {
		d.AddChild(relay, 1, "Agent-Circuit-ID-Again", dhcpdict.TypeOctets, dhcpdict.Flags{})
	})
}

func TestCommonAncestor(t *testing.T) {
	d := dhcpdict.NewDictionary()
	relay := d.Add(82, "Relay-Agent-Information", dhcpdict.TypeTLV, dhcpdict.Flags{})
	circuit := d.AddChild(relay, 1, "Agent-Circuit-ID", dhcpdict.TypeOctets, dhcpdict.Flags{})
	other := d.Add(1, "Subnet-Mask", dhcpdict.TypeIPv4Addr, dhcpdict.Flags{})

	testCases := []struct {
		name      string
		root      *dhcpdict.Attribute
		da        *dhcpdict.Attribute
		inclusive bool
		want      bool
	}{{
		name:      "self_inclusive",
		root:      relay,
		da:        relay,
		inclusive: true,
		want:      true,
	}, {
		name:      "self_exclusive",
		root:      relay,
		da:        relay,
		inclusive: false,
		want:      false,
	}, {
		name:      "descendant",
		root:      relay,
		da:        circuit,
		inclusive: false,
		want:      true,
	}, {
		name:      "unrelated",
		root:      relay,
		da:        other,
		inclusive: true,
		want:      false,
	}, {
		name:      "dictionary_root",
		root:      d.Root(),
		da:        circuit,
		inclusive: true,
		want:      true,
	}, {
		name: "nil_da",
		root: relay,
		da:   nil,
		want: false,
	}}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := dhcpdict.CommonAncestor(tc.root, tc.da, tc.inclusive)
			assert.Equal(t, tc.want, got)
		})
	}
}
