// Package dhcpprofile loads a user-authored YAML profile describing the
// attribute-value pairs to encode and turns it into a [dhcpattr.Cursor] the
// encoder can consume. It is the CLI's external-input boundary: unlike the
// dictionary and cursor contracts the encoder itself trusts, a profile comes
// from outside the process and is validated before use.
package dhcpprofile

import (
	"fmt"
	"net"
	"net/netip"

	"github.com/AdguardTeam/golibs/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/wk0115/dhcpv4opt/internal/dhcpattr"
	"github.com/wk0115/dhcpv4opt/internal/dhcpdict"
)

const (
	// errEmptyProfile is returned when a profile has no attributes at all.
	errEmptyProfile errors.Error = "profile has no attributes"

	// errUnknownOption is returned when a profile entry names an option
	// number not present in the dictionary it is resolved against.
	errUnknownOption errors.Error = "unknown option number"
)

// Entry is one attribute-value pair as authored in a profile file.
type Entry struct {
	// Option is the number of the top-level DHCPv4 option this entry targets
	// (for a sub-option, the number of its parent TLV option).
	Option uint32 `yaml:"option" validate:"required"`

	// SubOption is the sub-option number within Option, for TLV options such
	// as Relay Agent Information (82). Zero means Option is a top-level,
	// non-TLV option.
	SubOption uint32 `yaml:"sub_option,omitempty"`

	// Value is the entry's value, in a textual form appropriate to the
	// option's semantic type: a decimal integer, a dotted IPv4 address, a
	// colon-separated MAC address, a literal string, or a hex-encoded octet
	// string (prefixed "hex:"), matching how operators already write DHCP
	// option values.
	Value string `yaml:"value" validate:"required"`
}

// Profile is the top-level shape of a profile file.
type Profile struct {
	// Attributes is the ordered list of attribute-value pairs to encode,
	// emitted in the order given (array coalescing still depends on
	// adjacency, exactly as the encoder itself requires).
	Attributes []Entry `yaml:"attributes" validate:"required,min=1,dive"`
}

// Load parses and validates a profile document against dict, resolving each
// entry's Option/SubOption into the dictionary definition the encoder needs
// and returning a ready-to-use [dhcpattr.SliceCursor].
func Load(body []byte, dict *dhcpdict.Dictionary) (cursor *dhcpattr.SliceCursor, err error) {
	var p Profile
	if err = yaml.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}

	if err = validator.New().Struct(&p); err != nil {
		return nil, fmt.Errorf("validating profile: %w", err)
	}

	if len(p.Attributes) == 0 {
		return nil, errEmptyProfile
	}

	avs := make([]*dhcpattr.AV, 0, len(p.Attributes))
	for i, e := range p.Attributes {
		av, resErr := resolve(e, dict)
		if resErr != nil {
			return nil, fmt.Errorf("attribute %d (option %d): %w", i, e.Option, resErr)
		}

		avs = append(avs, av)
	}

	return dhcpattr.NewSliceCursor(avs), nil
}

// resolve turns one profile entry into an [dhcpattr.AV], looking up its
// dictionary definition and parsing its textual value according to the
// definition's semantic type.
func resolve(e Entry, dict *dhcpdict.Dictionary) (av *dhcpattr.AV, err error) {
	def, ok := dict.ByNumber(e.Option)
	if !ok {
		return nil, errUnknownOption
	}

	if e.SubOption != 0 {
		def, ok = childByNumber(def, e.SubOption)
		if !ok {
			return nil, fmt.Errorf("%w: sub-option %d", errUnknownOption, e.SubOption)
		}
	}

	val, err := parseValue(def, e.Value)
	if err != nil {
		return nil, err
	}

	return &dhcpattr.AV{Def: def, Value: val}, nil
}

// childByNumber finds parent's sub-option by number.
func childByNumber(parent *dhcpdict.Attribute, number uint32) (child *dhcpdict.Attribute, ok bool) {
	for _, c := range parent.Children() {
		if c.Number == number {
			return c, true
		}
	}

	return nil, false
}

// parseValue parses s into a [dhcpattr.Value] according to def's semantic
// type.
func parseValue(def *dhcpdict.Attribute, s string) (v dhcpattr.Value, err error) {
	switch def.Type {
	case dhcpdict.TypeUint8:
		var n uint8
		if _, err = fmt.Sscanf(s, "%d", &n); err != nil {
			return v, fmt.Errorf("parsing uint8: %w", err)
		}

		return dhcpattr.Uint8Value(n), nil
	case dhcpdict.TypeUint16:
		var n uint16
		if _, err = fmt.Sscanf(s, "%d", &n); err != nil {
			return v, fmt.Errorf("parsing uint16: %w", err)
		}

		return dhcpattr.Uint16Value(n), nil
	case dhcpdict.TypeUint32:
		var n uint32
		if _, err = fmt.Sscanf(s, "%d", &n); err != nil {
			return v, fmt.Errorf("parsing uint32: %w", err)
		}

		return dhcpattr.Uint32Value(n), nil
	case dhcpdict.TypeIPv4Addr:
		addr, perr := netip.ParseAddr(s)
		if perr != nil || !addr.Is4() {
			return v, fmt.Errorf("parsing ipv4 address %q", s)
		}

		return dhcpattr.IPv4Value(addr), nil
	case dhcpdict.TypeIPv6Addr:
		addr, perr := netip.ParseAddr(s)
		if perr != nil || !addr.Is6() {
			return v, fmt.Errorf("parsing ipv6 address %q", s)
		}

		return dhcpattr.IPv6Value(addr), nil
	case dhcpdict.TypeEthernet:
		hw, perr := net.ParseMAC(s)
		if perr != nil {
			return v, fmt.Errorf("parsing ethernet address: %w", perr)
		}

		return dhcpattr.EthernetValue(hw), nil
	case dhcpdict.TypeString:
		return dhcpattr.StringValue(s), nil
	case dhcpdict.TypeOctets:
		return parseOctets(s)
	default:
		return v, fmt.Errorf("option %s: %w", def, errUnknownOption)
	}
}

// parseOctets parses a hex-encoded octet string of the form "hex:ABCD".
func parseOctets(s string) (v dhcpattr.Value, err error) {
	const prefix = "hex:"

	if len(s) < len(prefix) || s[:len(prefix)] != prefix {
		return v, fmt.Errorf("octet value %q must start with %q", s, prefix)
	}

	b := make([]byte, (len(s)-len(prefix))/2)
	if _, err = fmt.Sscanf(s[len(prefix):], "%x", &b); err != nil {
		return v, fmt.Errorf("parsing hex octets: %w", err)
	}

	return dhcpattr.OctetsValue(b), nil
}
