// Package commands implements the dhcpv4opt CLI's command tree.
package commands

import (
	"github.com/spf13/cobra"
)

// rootCmd is the base command when dhcpv4opt is called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "dhcpv4opt",
	Short: "Encode DHCPv4 options from an attribute profile",
	Long: `dhcpv4opt loads a YAML attribute profile and drives the DHCPv4 option
encoder over it.

Use "dhcpv4opt [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. It is called once from main.main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(dictCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(defaultsCmd)
}
