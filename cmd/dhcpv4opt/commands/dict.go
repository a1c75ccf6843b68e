package commands

import (
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/wk0115/dhcpv4opt/internal/dhcpdict"
)

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Print the built-in DHCPv4 option dictionary",
	RunE:  runDict,
}

func runDict(cmd *cobra.Command, args []string) error {
	d := dhcpdict.Builtin()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Number", "Name", "Type", "Array"})
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

	appendRows(table, d.Root())

	table.Render()

	return nil
}

// appendRows walks da's children and appends one table row per attribute,
// recursing into TLV sub-options.
func appendRows(table *tablewriter.Table, da *dhcpdict.Attribute) {
	for _, child := range da.Children() {
		array := ""
		if child.Flags.Array {
			array = "yes"
		}

		table.Append([]string{
			strconv.FormatUint(uint64(child.Number), 10),
			child.Name,
			child.Type.String(),
			array,
		})

		if child.Type == dhcpdict.TypeTLV {
			appendRows(table, child)
		}
	}
}
