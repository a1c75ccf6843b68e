package commands

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wk0115/dhcpv4opt/internal/dhcpdict"
	"github.com/wk0115/dhcpv4opt/internal/dhcpprofile"
	"github.com/wk0115/dhcpv4opt/internal/dhcpv4opt"
)

var encodeProfilePath string

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode every option in a profile and print the wire bytes",
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeProfilePath, "profile", "p", "", "path to the attribute profile YAML file")
	_ = encodeCmd.MarkFlagRequired("profile")
}

func runEncode(cmd *cobra.Command, args []string) error {
	body, err := os.ReadFile(encodeProfilePath)
	if err != nil {
		return fmt.Errorf("reading profile: %w", err)
	}

	dict := dhcpdict.Builtin()

	cursor, err := dhcpprofile.Load(body, dict)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	ctx := dhcpv4opt.NewContext(dict)

	out := make([]byte, 512)
	for {
		n, encErr := dhcpv4opt.EncodeOption(out, cursor, ctx)
		if encErr != nil {
			if errors.Is(encErr, dhcpv4opt.ErrExhaustedInput) {
				return nil
			}

			return fmt.Errorf("encoding option: %w", encErr)
		}

		if n == 0 {
			if ctx.LastSkipReason != nil {
				cmd.PrintErrf("skipped: %s\n", ctx.LastSkipReason)
			}

			continue
		}

		cmd.Println(hex.EncodeToString(out[:n]))
	}
}
