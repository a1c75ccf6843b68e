// Package dhcpdict models the read-only dictionary of DHCPv4 attribute
// definitions consumed by the encoder in [github.com/wk0115/dhcpv4opt/internal/dhcpv4opt].
//
// A [Dictionary] is a tree of [Attribute] definitions rooted at a single
// DHCPv4 subtree root. Definitions are compared by pointer identity, which
// is safe here because a Dictionary is built once, during
// [NewDictionary] or [Builtin], and never copies an Attribute by value
// afterwards (see SPEC_FULL.md, "Pointer-identity comparison").
package dhcpdict

import "fmt"

// SemanticType is the wire encoding of an [Attribute]'s value, matching the
// leaf types understood by the encoder's value table.
type SemanticType int

// The semantic types the encoder knows how to serialize, plus TLV for
// attributes whose value is itself a sequence of sub-options.
const (
	TypeUint8 SemanticType = iota
	TypeUint16
	TypeUint32
	TypeIPv4Addr
	TypeIPv6Addr
	TypeEthernet
	TypeString
	TypeOctets
	TypeTLV
)

// String implements [fmt.Stringer] for SemanticType.
func (t SemanticType) String() (s string) {
	switch t {
	case TypeUint8:
		return "uint8"
	case TypeUint16:
		return "uint16"
	case TypeUint32:
		return "uint32"
	case TypeIPv4Addr:
		return "ipv4_addr"
	case TypeIPv6Addr:
		return "ipv6_addr"
	case TypeEthernet:
		return "ethernet"
	case TypeString:
		return "string"
	case TypeOctets:
		return "octets"
	case TypeTLV:
		return "tlv"
	default:
		return fmt.Sprintf("SemanticType(%d)", int(t))
	}
}

// Flags describes the dictionary-level behavior modifiers of an Attribute.
type Flags struct {
	// Internal, if set, means the attribute is never emitted on the wire.
	Internal bool

	// Array, if set, means consecutive AVs sharing this definition may be
	// coalesced into a single option's value area.
	Array bool
}

// MaxTLVStack is the fixed capacity of a TLV stack, i.e. the maximum nesting
// depth (root inclusive) the dictionary supports. DHCPv4's only TLV-bearing
// option, Relay Agent Information (82), nests one level deep; the extra
// headroom accommodates vendor-defined sub-TLVs without a rebuild.
const MaxTLVStack = 4

// Attribute is a single node in the dictionary tree: either a top-level
// DHCPv4 option or, for [TypeTLV] parents, one of its sub-options.
//
// Attribute values are never copied; only pointers are passed around, so
// that two AVs can be compared "same definition" via `==`.
type Attribute struct {
	parent   *Attribute
	children []*Attribute

	// Name is the human-readable attribute name, used in error messages and
	// CLI output. Its only role in encoding is that the dispatcher treats a
	// number-53 attribute as the DHCP Message Type only when it is named
	// "DHCP-Message-Type".
	Name string

	// Number is the DHCPv4 option (or sub-option) number. Only the low 8
	// bits are significant on the wire; values above 255 are used by the
	// dispatcher to recognize attributes that cannot be DHCPv4 options at
	// all (see [spec.md] §4.6 step 2).
	Number uint32

	// Type determines how [Attribute] values are serialized.
	Type SemanticType

	// Flags holds the Internal/Array modifiers.
	Flags Flags
}

// Parent returns the attribute's parent in the dictionary tree, or nil if da
// is a root-level DHCPv4 option.
func (da *Attribute) Parent() *Attribute {
	if da == nil {
		return nil
	}

	return da.parent
}

// Children returns da's sub-options in registration order. Only [TypeTLV]
// attributes have children in this dictionary.
func (da *Attribute) Children() []*Attribute {
	if da == nil {
		return nil
	}

	return da.children
}

// Depth returns the number of ancestors between da and the dictionary root,
// excluding both da and the root; a root-level option has depth 0.
func (da *Attribute) Depth() (depth int) {
	for a := da.Parent(); a.Parent() != nil; a = a.Parent() {
		depth++
	}

	return depth
}

// String implements [fmt.Stringer] for Attribute, used in error messages.
func (da *Attribute) String() (s string) {
	if da == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%s (%d, %s)", da.Name, da.Number, da.Type)
}

// Dictionary is a read-only tree of attribute definitions. The zero value is
// not usable; build one with [NewDictionary] or use [Builtin].
type Dictionary struct {
	root *Attribute
	// byNumber indexes root-level (depth 0) attributes by their Number, for
	// dispatcher lookups that don't already hold a pointer.
	byNumber map[uint32]*Attribute
}

// rootName is the synthetic name of every Dictionary's root node. The root
// itself is never a valid encode target; it exists only so that
// [CommonAncestor] has something to compare against.
const rootName = "root"

// NewDictionary creates an empty Dictionary ready to have root-level
// attributes registered into it with [Dictionary.Add].
func NewDictionary() *Dictionary {
	return &Dictionary{
		root:     &Attribute{Name: rootName, Type: TypeTLV},
		byNumber: map[uint32]*Attribute{},
	}
}

// Root returns the dictionary's root attribute. It is never nil for a
// Dictionary constructed via [NewDictionary].
func (d *Dictionary) Root() *Attribute {
	return d.root
}

// Add registers a new root-level (top-level DHCPv4 option) attribute and
// returns it. number must be unique among root-level attributes in d; Add
// panics otherwise, since a duplicate option number is a dictionary
// construction bug, not a runtime condition callers should handle.
func (d *Dictionary) Add(number uint32, name string, typ SemanticType, flags Flags) (da *Attribute) {
	if _, ok := d.byNumber[number]; ok {
		panic(fmt.Sprintf("dhcpdict: duplicate root attribute number %d (%s)", number, name))
	}

	da = &Attribute{
		parent: d.root,
		Name:   name,
		Number: number,
		Type:   typ,
		Flags:  flags,
	}
	d.root.children = append(d.root.children, da)
	d.byNumber[number] = da

	return da
}

// AddChild registers a sub-option of a [TypeTLV] parent attribute and
// returns it. parent must belong to d. number need only be unique among
// parent's existing children.
func (d *Dictionary) AddChild(
	parent *Attribute,
	number uint32,
	name string,
	typ SemanticType,
	flags Flags,
) (da *Attribute) {
	for _, sibling := range parent.children {
		if sibling.Number == number {
			panic(fmt.Sprintf(
				"dhcpdict: duplicate child attribute number %d under %s", number, parent.Name,
			))
		}
	}

	da = &Attribute{
		parent: parent,
		Name:   name,
		Number: number,
		Type:   typ,
		Flags:  flags,
	}
	parent.children = append(parent.children, da)

	return da
}

// ByNumber looks up a root-level attribute by its option number. ok is false
// if no such attribute is registered.
func (d *Dictionary) ByNumber(number uint32) (da *Attribute, ok bool) {
	da, ok = d.byNumber[number]

	return da, ok
}

// CommonAncestor reports whether root is an ancestor of da, inclusive of da
// itself when inclusive is true. It implements the Dictionary interface's
// `common_ancestor` predicate from spec.md §6.
func CommonAncestor(root, da *Attribute, inclusive bool) (ok bool) {
	if da == nil || root == nil {
		return false
	}

	a := da
	if !inclusive {
		a = a.parent
	}

	for ; a != nil; a = a.parent {
		if a == root {
			return true
		}
	}

	return false
}
