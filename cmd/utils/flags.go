package utils

import (
	"github.com/Bridgeless-Project/tvm-bridge/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gitlab.com/distributed_lab/kit/kv"
)

const (
	configFlag = "config"
)

func RegisterConfigFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(configFlag, "c", "config.yaml", "Path to the config file")
}

// ConfigSet reports whether the config path was given explicitly.
func ConfigSet(cmd *cobra.Command) bool {
	return cmd.Flags().Changed(configFlag)
}

func ConfigFromFlags(cmd *cobra.Command) (config.Config, error) {
	configPath, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get config flag")
	}

	// ensure that the viper is loaded
	viper := kv.NewViperFile(configPath)
	if _, err = viper.GetStringMap("ping"); err != nil {
		return nil, errors.Wrap(err, "failed to ping viper")
	}

	return config.New(viper), nil
}
