package cmd

import (
	"os"

	"github.com/Bridgeless-Project/tvm-bridge/cmd/address"
	"github.com/Bridgeless-Project/tvm-bridge/cmd/tvm"
	"github.com/spf13/cobra"
)

func Execute() {
	root := &cobra.Command{
		Use:   "tvm-bridge",
		Short: "TON address conversion and local TVM execution through the engine",
	}

	root.AddCommand(address.Cmd, tvm.Cmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
