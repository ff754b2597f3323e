package address

import (
	"fmt"
	"runtime"

	"github.com/Bridgeless-Project/tvm-bridge/cmd/utils"
	"github.com/Bridgeless-Project/tvm-bridge/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func init() {
	registerAddressCommands(Cmd)
	utils.RegisterConfigFlag(Cmd)
}

var Cmd = &cobra.Command{
	Use:   "address",
	Short: "Command for converting TON addresses",
}

func registerAddressCommands(cmd *cobra.Command) {
	cmd.AddCommand(accountIDCmd, hexCmd, base64Cmd, infoCmd)
}

// addressConfig reads the address section only when a config is given
// explicitly, the conversions work without any config.
func addressConfig(cmd *cobra.Command) (config.AddressConfig, error) {
	if !utils.ConfigSet(cmd) {
		return config.AddressConfig{URLSafe: true, Bounceable: true}, nil
	}

	cfg, err := utils.ConfigFromFlags(cmd)
	if err != nil {
		return config.AddressConfig{}, errors.Wrap(err, "failed to get config from flags")
	}

	return cfg.AddressConfig(), nil
}

func inputs(cfg config.AddressConfig, args []string) ([]string, error) {
	if len(args) != 0 {
		return args, nil
	}
	if cfg.Default == nil {
		return nil, errors.New("no address given and no default address configured")
	}

	return []string{cfg.Default.Raw()}, nil
}

// convertAll applies convert to every input concurrently, keeping the input order.
func convertAll(inputs []string, convert func(string) (string, error)) ([]string, error) {
	results := make([]string, len(inputs))

	group := new(errgroup.Group)
	group.SetLimit(runtime.NumCPU())
	for i, input := range inputs {
		group.Go(func() error {
			res, err := convert(input)
			if err != nil {
				return errors.Wrapf(err, "failed to convert %q", input)
			}

			results[i] = res
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func runConversion(cmd *cobra.Command, args []string, convert func(string) (string, error)) error {
	cfg, err := addressConfig(cmd)
	if err != nil {
		return err
	}

	addresses, err := inputs(cfg, args)
	if err != nil {
		return err
	}

	results, err := convertAll(addresses, convert)
	if err != nil {
		return err
	}

	for _, res := range results {
		fmt.Fprintln(cmd.OutOrStdout(), res)
	}

	return nil
}
