package address

import (
	addr "github.com/Bridgeless-Project/tvm-bridge/pkg/address"
	"github.com/spf13/cobra"
)

const (
	urlSafeFlag    = "url-safe"
	testnetFlag    = "testnet"
	bounceableFlag = "bounceable"
)

func init() {
	base64Cmd.Flags().Bool(urlSafeFlag, true, "Use the url-safe base64 alphabet")
	base64Cmd.Flags().Bool(testnetFlag, false, "Mark the address as testnet only")
	base64Cmd.Flags().Bool(bounceableFlag, true, "Mark the address as bounceable")
}

var accountIDCmd = &cobra.Command{
	Use:   "account-id [address...]",
	Short: "Print the bare hex account id of the addresses",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConversion(cmd, args, addr.ToAccountID)
	},
}

var hexCmd = &cobra.Command{
	Use:   "hex [address...]",
	Short: "Print the addresses in the raw <workchain>:<hex> form",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConversion(cmd, args, addr.ToHexForm)
	},
}

var base64Cmd = &cobra.Command{
	Use:   "base64 [address...]",
	Short: "Print the addresses in the user-friendly tagged base64 form",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := addressConfig(cmd)
		if err != nil {
			return err
		}

		flags := cfg.Flags()
		if cmd.Flags().Changed(urlSafeFlag) {
			flags.URLSafe, _ = cmd.Flags().GetBool(urlSafeFlag)
		}
		if cmd.Flags().Changed(testnetFlag) {
			flags.Testnet, _ = cmd.Flags().GetBool(testnetFlag)
		}
		if cmd.Flags().Changed(bounceableFlag) {
			flags.Bounceable, _ = cmd.Flags().GetBool(bounceableFlag)
		}

		return runConversion(cmd, args, func(address string) (string, error) {
			return addr.ToTaggedBase64(address, flags.URLSafe, flags.Testnet, flags.Bounceable)
		})
	},
}
