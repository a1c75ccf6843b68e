// Package dhcpv4opttest provides test-point helpers for tests that exercise
// internal/dhcpv4opt, the Go
// re-expression of encode.c's encode_test_ctx/_encode_test_ctx lifecycle:
// installing a dictionary and handing back a ready-to-use
// [dhcpv4opt.Context].
package dhcpv4opttest

import (
	"testing"

	"github.com/AdguardTeam/golibs/logutil/slogutil"

	"github.com/wk0115/dhcpv4opt/internal/dhcpdict"
	"github.com/wk0115/dhcpv4opt/internal/dhcpv4opt"
)

// NewContext returns a [dhcpv4opt.Context] wired to the built-in dictionary
// and a [dhcpv4opt.SlogTracer] backed by a discard logger, the standard
// fixture for table-driven tests in this module. tb is only used to mark
// NewContext as a test helper; the context itself is not registered for
// cleanup.
func NewContext(tb testing.TB) *dhcpv4opt.Context {
	tb.Helper()

	return &dhcpv4opt.Context{
		Dictionary: dhcpdict.Builtin(),
		Tracer: &dhcpv4opt.SlogTracer{
			Logger: slogutil.NewDiscardLogger(),
		},
	}
}
