package dhcpattr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wk0115/dhcpv4opt/internal/dhcpattr"
	"github.com/wk0115/dhcpv4opt/internal/dhcpdict"
)

func TestSliceCursor(t *testing.T) {
	def := &dhcpdict.Attribute{}
	first := &dhcpattr.AV{Def: def, Value: dhcpattr.Uint8Value(1)}
	second := &dhcpattr.AV{Def: def, Value: dhcpattr.Uint8Value(2)}

	c := dhcpattr.NewSliceCursor([]*dhcpattr.AV{first, second})

	av, ok := c.Current()
	require.True(t, ok)
	assert.Same(t, first, av)

	// Current must not advance.
	av, ok = c.Current()
	require.True(t, ok)
	assert.Same(t, first, av)

	av, ok = c.Advance()
	require.True(t, ok)
	assert.Same(t, second, av)

	_, ok = c.Advance()
	assert.False(t, ok)

	_, ok = c.Current()
	assert.False(t, ok)
}

func TestSliceCursor_Empty(t *testing.T) {
	c := dhcpattr.NewSliceCursor(nil)

	_, ok := c.Current()
	assert.False(t, ok)

	_, ok = c.Advance()
	assert.False(t, ok)
}
