// Command dhcpv4opt loads an attribute profile and drives the DHCPv4 option
// encoder over it, either printing the raw encoded option bytes, the
// built-in dictionary, or a full DHCPv4 packet preview.
package main

import (
	"fmt"
	"os"

	"github.com/wk0115/dhcpv4opt/cmd/dhcpv4opt/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
