package dhcpattr

// Cursor is a lazy, finite, forward-only sequence of [AV]s, per spec.md §6.
// Implementations must support peeking the current AV without advancing and
// advancing to the next one, returning the new current AV (or false once
// exhausted).
//
// The encoder is the only expected caller of Advance; a Cursor must not be
// shared between two concurrent encode calls (spec.md §5).
type Cursor interface {
	// Current returns the AV the cursor is positioned on, without
	// advancing. ok is false once the cursor is exhausted.
	Current() (av *AV, ok bool)

	// Advance moves the cursor forward by one AV and returns the new
	// current AV, or ok == false if that moves the cursor past the end.
	Advance() (av *AV, ok bool)
}

// SliceCursor is a [Cursor] backed by an in-memory slice of AVs, the
// reference implementation used by tests and by the CLI's profile loader.
type SliceCursor struct {
	avs []*AV
	pos int
}

// type check
var _ Cursor = (*SliceCursor)(nil)

// NewSliceCursor returns a Cursor that yields avs in order. avs is not
// copied; the caller must not mutate it while the cursor is in use.
func NewSliceCursor(avs []*AV) *SliceCursor {
	return &SliceCursor{avs: avs}
}

// Current implements the [Cursor] interface for *SliceCursor.
func (c *SliceCursor) Current() (av *AV, ok bool) {
	if c.pos >= len(c.avs) {
		return nil, false
	}

	return c.avs[c.pos], true
}

// Advance implements the [Cursor] interface for *SliceCursor.
func (c *SliceCursor) Advance() (av *AV, ok bool) {
	if c.pos < len(c.avs) {
		c.pos++
	}

	return c.Current()
}
