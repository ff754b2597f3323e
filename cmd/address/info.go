package address

import (
	"fmt"
	"io"

	addr "github.com/Bridgeless-Project/tvm-bridge/pkg/address"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [address...]",
	Short: "Print every form of the addresses",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := addressConfig(cmd)
		if err != nil {
			return err
		}

		addresses, err := inputs(cfg, args)
		if err != nil {
			return err
		}

		for i, input := range addresses {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			if err = printInfo(cmd.OutOrStdout(), input); err != nil {
				return errors.Wrapf(err, "failed to describe %q", input)
			}
		}

		return nil
	},
}

func printInfo(w io.Writer, input string) error {
	address, err := addr.Parse(input)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%-24s %s\n", "raw:", address.Raw())
	fmt.Fprintf(w, "%-24s %s\n", "account id:", address.AccountIDHex())

	if _, flags, err := addr.ParseTagged(input); err == nil {
		fmt.Fprintf(w, "%-24s bounceable=%t testnet=%t url-safe=%t\n", "input flags:", flags.Bounceable, flags.Testnet, flags.URLSafe)
	}

	forms := []struct {
		name  string
		flags addr.Flags
	}{
		{"bounceable:", addr.Flags{URLSafe: true, Bounceable: true}},
		{"non-bounceable:", addr.Flags{URLSafe: true}},
		{"testnet bounceable:", addr.Flags{URLSafe: true, Testnet: true, Bounceable: true}},
		{"testnet non-bounceable:", addr.Flags{URLSafe: true, Testnet: true}},
	}
	for _, form := range forms {
		tagged, err := address.Tagged(form.flags)
		if err != nil {
			return err
		}

		// tonutils renders the same form on its own, a mismatch means a codec bug
		ton, err := address.ToTonutils(form.flags)
		if err != nil {
			return err
		}
		if ton.String() != tagged {
			return errors.Errorf("tonutils renders %s, codec renders %s", ton.String(), tagged)
		}

		fmt.Fprintf(w, "%-24s %s\n", form.name, tagged)
	}

	return nil
}
