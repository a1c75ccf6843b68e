package commands

import (
	"errors"
	"fmt"
	"net"
	"os"

	"github.com/insomniacslk/dhcp/dhcpv4"
	"github.com/mdlayher/ethernet"
	"github.com/spf13/cobra"

	"github.com/wk0115/dhcpv4opt/internal/dhcpattr"
	"github.com/wk0115/dhcpv4opt/internal/dhcpdict"
	"github.com/wk0115/dhcpv4opt/internal/dhcpprofile"
	"github.com/wk0115/dhcpv4opt/internal/dhcpv4opt"
)

var (
	previewProfilePath string
	previewClientMAC   string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Assemble a full DHCPOFFER packet around a profile's encoded options",
	Long: `preview encodes every option in a profile and hands the resulting bytes to
github.com/insomniacslk/dhcp to assemble a complete DHCPOFFER, then wraps that
packet in an Ethernet frame the way a server's wire write would, purely for
inspection — no socket is opened.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewProfilePath, "profile", "p", "", "path to the attribute profile YAML file")
	previewCmd.Flags().StringVar(&previewClientMAC, "client-mac", "00:11:22:33:44:55", "client hardware address for the offer")
	_ = previewCmd.MarkFlagRequired("profile")
}

func runPreview(cmd *cobra.Command, args []string) error {
	body, err := os.ReadFile(previewProfilePath)
	if err != nil {
		return fmt.Errorf("reading profile: %w", err)
	}

	mac, err := net.ParseMAC(previewClientMAC)
	if err != nil {
		return fmt.Errorf("parsing client MAC: %w", err)
	}

	dict := dhcpdict.Builtin()

	cursor, err := dhcpprofile.Load(body, dict)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	opts, err := encodeAllOptions(cursor, dict)
	if err != nil {
		return err
	}

	packet, err := dhcpv4.NewDiscovery(mac)
	if err != nil {
		return fmt.Errorf("assembling dhcpv4 packet: %w", err)
	}

	packet.UpdateOption(dhcpv4.OptMessageType(dhcpv4.MessageTypeOffer))
	for _, opt := range opts {
		packet.UpdateOption(opt)
	}

	frame := &ethernet.Frame{
		Destination: mac,
		Source:      net.HardwareAddr{0, 0, 0, 0, 0, 0},
		EtherType:   ethernet.EtherTypeIPv4,
		Payload:     packet.ToBytes(),
	}

	framed, err := frame.MarshalBinary()
	if err != nil {
		return fmt.Errorf("wrapping ethernet frame: %w", err)
	}

	cmd.Printf("DHCPv4 packet: %d byte(s)\n%s\n", len(packet.ToBytes()), packet.Summary())
	cmd.Printf("Ethernet frame: %d byte(s)\n", len(framed))

	return nil
}

// encodeAllOptions drains cursor through the encoder, collecting every
// emitted option as an [dhcpv4.Option] ready to attach to a packet.
func encodeAllOptions(
	cursor dhcpattr.Cursor,
	dict *dhcpdict.Dictionary,
) (opts []dhcpv4.Option, err error) {
	ctx := dhcpv4opt.NewContext(dict)

	out := make([]byte, 512)
	for {
		n, encErr := dhcpv4opt.EncodeOption(out, cursor, ctx)
		if encErr != nil {
			if errors.Is(encErr, dhcpv4opt.ErrExhaustedInput) {
				return opts, nil
			}

			return nil, fmt.Errorf("encoding option: %w", encErr)
		}

		if n == 0 {
			continue
		}

		opts = append(opts, dhcpv4.Option{
			Code:  dhcpv4.GenericOptionCode(out[0]),
			Value: dhcpv4.OptionGeneric{Data: append([]byte(nil), out[2:n]...)},
		})
	}
}
