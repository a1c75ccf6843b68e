package dhcpv4opt

import (
	"github.com/wk0115/dhcpv4opt/internal/dhcpattr"
	"github.com/wk0115/dhcpv4opt/internal/dhcpdict"
)

// tlvStack is the fixed-capacity ancestor chain materialized for one
// attribute being encoded, `tlv_stack` in encode.c. stack[0] is the
// outermost DHCPv4 option ancestor (spec.md §4.5); stack[i+1].Parent() ==
// stack[i] for every valid i.
type tlvStack [dhcpdict.MaxTLVStack]*dhcpdict.Attribute

// buildTLVStack materializes the ancestor chain from leaf up to (but
// excluding) the synthetic dictionary root, writing it root-first into
// stack[0..depth]. Ports `fr_proto_tlv_stack_build`.
//
// If leaf is nil, the stack is cleared and depth is -1, matching "the stack
// is cleared to an empty state" in spec.md §4.5.
func buildTLVStack(leaf *dhcpdict.Attribute) (stack tlvStack, depth int, err error) {
	if leaf == nil {
		return stack, -1, nil
	}

	var chain []*dhcpdict.Attribute
	for a := leaf; a != nil && a.Parent() != nil; a = a.Parent() {
		chain = append(chain, a)
	}

	if len(chain) == 0 || len(chain) > len(stack) {
		return stack, 0, ErrStackOverflow
	}

	for i, a := range chain {
		stack[len(chain)-1-i] = a
	}

	return stack, len(chain) - 1, nil
}

// rebuildStack re-materializes *stack from cursor's current AV, or clears it
// if the cursor is exhausted. It is the side effect `encode_value` performs
// on the tlv_stack after advancing the cursor (spec.md §4.2 "Post-state").
func rebuildStack(stack *tlvStack, av *dhcpattr.AV) (depth int, err error) {
	if av == nil {
		*stack = tlvStack{}

		return -1, nil
	}

	newStack, newDepth, err := buildTLVStack(av.Def)
	if err != nil {
		return 0, err
	}

	*stack = newStack

	return newDepth, nil
}
