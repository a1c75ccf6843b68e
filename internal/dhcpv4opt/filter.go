package dhcpv4opt

import (
	"github.com/wk0115/dhcpv4opt/internal/dhcpattr"
	"github.com/wk0115/dhcpv4opt/internal/dhcpdict"
)

// isEncodable reports whether av can be encoded against root: it must be
// present, not internal, and a descendant (inclusive) of root. Ports
// `is_encodable` from encode.c.
func isEncodable(root *dhcpdict.Attribute, av *dhcpattr.AV) (ok bool) {
	if av == nil {
		return false
	}

	if av.Def.Flags.Internal {
		return false
	}

	return dhcpdict.CommonAncestor(root, av.Def, true)
}

// nextEncodable advances cursor at least one step, then continues
// advancing until an encodable AV is current or the cursor is exhausted.
// Ports `next_encodable`.
func nextEncodable(root *dhcpdict.Attribute, cursor dhcpattr.Cursor) (av *dhcpattr.AV, ok bool) {
	for {
		av, ok = cursor.Advance()
		if !ok {
			return nil, false
		}

		if isEncodable(root, av) {
			return av, true
		}
	}
}

// firstEncodable returns the cursor's current AV if it is encodable,
// otherwise advances until one is, or reports ok == false if the cursor is
// exhausted. Ports `first_encodable`.
func firstEncodable(root *dhcpdict.Attribute, cursor dhcpattr.Cursor) (av *dhcpattr.AV, ok bool) {
	av, ok = cursor.Current()
	if ok && isEncodable(root, av) {
		return av, true
	}

	return nextEncodable(root, cursor)
}
