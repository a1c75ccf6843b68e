package commands

import (
	"encoding/hex"
	"fmt"
	"net/netip"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/wk0115/dhcpv4opt/internal/dhcpdefaults"
	"github.com/wk0115/dhcpv4opt/internal/dhcpdict"
)

var (
	defaultsSubnetMask string
	defaultsGatewayIP  string
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the RFC 2131 Appendix A default DHCPv4 option set",
	Long: `defaults encodes the Host Requirements default option set — the values a
conforming server offers absent any explicit per-network configuration —
through the same encoder as the other subcommands.`,
	RunE: runDefaults,
}

func init() {
	defaultsCmd.Flags().StringVar(&defaultsSubnetMask, "subnet-mask", "255.255.255.0", "subnet mask to encode into option 1")
	defaultsCmd.Flags().StringVar(&defaultsGatewayIP, "gateway-ip", "192.0.2.1", "gateway IP to encode into option 3")
}

func runDefaults(cmd *cobra.Command, args []string) error {
	subnetMask, err := netip.ParseAddr(defaultsSubnetMask)
	if err != nil {
		return fmt.Errorf("parsing subnet mask: %w", err)
	}

	gatewayIP, err := netip.ParseAddr(defaultsGatewayIP)
	if err != nil {
		return fmt.Errorf("parsing gateway IP: %w", err)
	}

	dict := dhcpdict.Builtin()
	opts := dhcpdefaults.HostRequirements(dict, subnetMask, gatewayIP)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Number", "Hex"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, opt := range opts {
		table.Append([]string{strconv.FormatUint(uint64(opt.Number), 10), hex.EncodeToString(opt.Data)})
	}

	table.Render()

	return nil
}
