package utils

import (
	"context"

	"github.com/Bridgeless-Project/tvm-bridge/internal/config"
	"github.com/spf13/cobra"
)

type ctxKey int

const (
	cfgKey ctxKey = iota
)

func WithConfig(cmd *cobra.Command, cfg config.Config) *cobra.Command {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, cfgKey, cfg))

	return cmd
}

func Config(cmd *cobra.Command) config.Config {
	return cmd.Context().Value(cfgKey).(config.Config)
}

// LoadConfig is a PersistentPreRunE that puts the config into the command context.
func LoadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := ConfigFromFlags(cmd)
	if err != nil {
		return err
	}

	WithConfig(cmd, cfg)

	return nil
}
