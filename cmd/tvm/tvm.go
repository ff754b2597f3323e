package tvm

import (
	"bytes"
	"fmt"

	"github.com/Bridgeless-Project/tvm-bridge/cmd/utils"
	"github.com/Bridgeless-Project/tvm-bridge/pkg/bridge"
	vm "github.com/Bridgeless-Project/tvm-bridge/pkg/tvm"
	json "github.com/nspcc-dev/go-ordered-json"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	optionsFlag = "options"
	abiFlag     = "abi"
)

func init() {
	registerTvmCommands(Cmd)
	utils.RegisterConfigFlag(Cmd)
	Cmd.PersistentFlags().String(optionsFlag, "", "Execution options as a JSON object")
}

var Cmd = &cobra.Command{
	Use:               "tvm",
	Short:             "Command for running local TVM emulations on the engine",
	PersistentPreRunE: utils.LoadConfig,
}

func registerTvmCommands(cmd *cobra.Command) {
	cmd.AddCommand(runExecutorCmd, runTvmCmd, runGetCmd)
}

// run executes fn against the engine from the config and prints the raw result.
func run(cmd *cobra.Command, fn func(*vm.Tvm) (bridge.Object, error)) error {
	cfg := utils.Config(cmd)

	transport := &lazyTransport{engine: cfg}
	defer transport.Close()

	result, err := fn(vm.New(bridge.New(transport, cfg.Log().WithField("component", "bridge"))))
	if err != nil {
		if bridgeErr, ok := bridge.AsBridgeError(err); ok {
			cfg.Log().WithField("code", bridgeErr.Code).Error(bridgeErr.Message)
		}
		return err
	}

	raw, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal result")
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(raw))

	return nil
}

func executionOptions(cmd *cobra.Command) (vm.Optional[vm.ExecutionOptions], error) {
	raw, err := cmd.Flags().GetString(optionsFlag)
	if err != nil || raw == "" {
		return vm.None[vm.ExecutionOptions](), err
	}

	var options vm.ExecutionOptions
	if err = json.Unmarshal([]byte(raw), &options); err != nil {
		return vm.None[vm.ExecutionOptions](), errors.Wrap(err, "failed to parse execution options")
	}

	return vm.Some(options), nil
}

func abi(cmd *cobra.Command) (vm.Optional[vm.Abi], error) {
	raw, err := cmd.Flags().GetString(abiFlag)
	if err != nil || raw == "" {
		return vm.None[vm.Abi](), err
	}

	return vm.Some(vm.AbiJSON(raw)), nil
}

// decodeValue parses a JSON value keeping the key order of objects.
func decodeValue(raw string) (interface{}, error) {
	d := json.NewDecoder(bytes.NewReader([]byte(raw)))
	d.UseOrderedObject()
	d.UseNumber()

	var v interface{}
	if err := d.Decode(&v); err != nil {
		return nil, err
	}

	return v, nil
}
