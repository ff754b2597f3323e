package tvm

import (
	"github.com/Bridgeless-Project/tvm-bridge/pkg/bridge"
	vm "github.com/Bridgeless-Project/tvm-bridge/pkg/tvm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	messageFlag          = "message"
	accountFlag          = "account"
	accountTypeFlag      = "account-type"
	unlimitedBalanceFlag = "unlimited-balance"
	skipCheckFlag        = "skip-transaction-check"
	functionFlag         = "function"
	inputFlag            = "input"
)

func init() {
	runExecutorCmd.Flags().String(messageFlag, "", "Input message BOC, base64")
	runExecutorCmd.Flags().String(accountFlag, "", "Account BOC, base64")
	runExecutorCmd.Flags().String(accountTypeFlag, string(vm.AccountTypeAccount), "Account kind: Account, Uninit or None")
	runExecutorCmd.Flags().Bool(unlimitedBalanceFlag, false, "Emulate an unlimited account balance")
	runExecutorCmd.Flags().Bool(skipCheckFlag, false, "Skip the transaction validity checks")
	runExecutorCmd.Flags().String(abiFlag, "", "Contract ABI JSON used to decode the output messages")

	runTvmCmd.Flags().String(messageFlag, "", "Input message BOC, base64")
	runTvmCmd.Flags().String(accountFlag, "", "Account BOC, base64")
	runTvmCmd.Flags().String(abiFlag, "", "Contract ABI JSON used to decode the output messages")

	runGetCmd.Flags().String(accountFlag, "", "Account BOC, base64")
	runGetCmd.Flags().String(functionFlag, "", "Get method name")
	runGetCmd.Flags().String(inputFlag, "", "Get method arguments as a JSON value")
}

var runExecutorCmd = &cobra.Command{
	Use:   "run-executor",
	Short: "Emulate a transaction processing the message",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			params vm.RunExecutorParams
			err    error
		)

		params.Message, _ = cmd.Flags().GetString(messageFlag)
		if params.Account, err = executorAccount(cmd); err != nil {
			return err
		}
		if params.ExecutionOptions, err = executionOptions(cmd); err != nil {
			return err
		}
		if params.Abi, err = abi(cmd); err != nil {
			return err
		}
		if cmd.Flags().Changed(skipCheckFlag) {
			skip, _ := cmd.Flags().GetBool(skipCheckFlag)
			params.SkipTransactionCheck = vm.Some(skip)
		}

		return run(cmd, func(t *vm.Tvm) (bridge.Object, error) {
			res, err := t.RunExecutor(params)
			return res.Raw(), err
		})
	},
}

var runTvmCmd = &cobra.Command{
	Use:   "run-tvm",
	Short: "Run the message on the bare TVM without a transaction",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			params vm.RunTvmParams
			err    error
		)

		params.Message, _ = cmd.Flags().GetString(messageFlag)
		params.Account, _ = cmd.Flags().GetString(accountFlag)
		if params.ExecutionOptions, err = executionOptions(cmd); err != nil {
			return err
		}
		if params.Abi, err = abi(cmd); err != nil {
			return err
		}

		return run(cmd, func(t *vm.Tvm) (bridge.Object, error) {
			res, err := t.RunTvm(params)
			return res.Raw(), err
		})
	},
}

var runGetCmd = &cobra.Command{
	Use:   "run-get",
	Short: "Call a get method of the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			params vm.RunGetParams
			err    error
		)

		params.Account, _ = cmd.Flags().GetString(accountFlag)
		params.FunctionName, _ = cmd.Flags().GetString(functionFlag)
		if params.ExecutionOptions, err = executionOptions(cmd); err != nil {
			return err
		}
		if raw, _ := cmd.Flags().GetString(inputFlag); raw != "" {
			input, err := decodeValue(raw)
			if err != nil {
				return errors.Wrap(err, "failed to parse get method input")
			}
			params.Input = vm.Some(input)
		}

		return run(cmd, func(t *vm.Tvm) (bridge.Object, error) {
			res, err := t.RunGet(params)
			return res.Raw(), err
		})
	},
}

func executorAccount(cmd *cobra.Command) (vm.AccountForExecutor, error) {
	kind, _ := cmd.Flags().GetString(accountTypeFlag)
	boc, _ := cmd.Flags().GetString(accountFlag)

	switch vm.AccountType(kind) {
	case vm.AccountTypeNone:
		return vm.AccountNone(), nil
	case vm.AccountTypeUninit:
		return vm.AccountUninit(), nil
	case vm.AccountTypeAccount:
		unlimited := vm.None[bool]()
		if cmd.Flags().Changed(unlimitedBalanceFlag) {
			value, _ := cmd.Flags().GetBool(unlimitedBalanceFlag)
			unlimited = vm.Some(value)
		}

		return vm.AccountBoc(boc, unlimited), nil
	default:
		return vm.AccountForExecutor{}, errors.Wrapf(vm.ErrUnsupportedAccountType, "%q", kind)
	}
}
