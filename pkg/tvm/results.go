package tvm

import (
	"github.com/Bridgeless-Project/tvm-bridge/pkg/bridge"
)

const (
	keyTransaction = "transaction"
	keyOutMessages = "out_messages"
	keyFees        = "fees"
	keyDecoded     = "decoded"
	keyOutput      = "output"
)

// RunExecutorResult is the outcome of an emulated transaction.
type RunExecutorResult struct {
	raw         bridge.Object
	transaction bridge.Object
	outMessages []string
	account     string
	fees        bridge.Object
	decoded     bridge.Object
	hasDecoded  bool
}

func NewRunExecutorResult(obj bridge.Object) (RunExecutorResult, error) {
	var (
		res = RunExecutorResult{raw: obj}
		err error
	)

	if res.transaction, err = obj.GetObject(keyTransaction); err != nil {
		return RunExecutorResult{}, err
	}
	if res.outMessages, err = obj.GetStringSlice(keyOutMessages); err != nil {
		return RunExecutorResult{}, err
	}
	if res.account, err = obj.GetString(keyAccount); err != nil {
		return RunExecutorResult{}, err
	}
	if res.fees, err = obj.GetObject(keyFees); err != nil {
		return RunExecutorResult{}, err
	}
	if res.decoded, res.hasDecoded, err = obj.GetOptionalObject(keyDecoded); err != nil {
		return RunExecutorResult{}, err
	}

	return res, nil
}

func (r RunExecutorResult) Transaction() bridge.Object { return r.transaction }

// OutMessages are base64 encoded BOCs of the produced messages.
func (r RunExecutorResult) OutMessages() []string { return clone(r.outMessages) }

// Account is the base64 encoded BOC of the account state after the transaction.
func (r RunExecutorResult) Account() string { return r.account }

func (r RunExecutorResult) Fees() bridge.Object { return r.fees }

// Decoded is present only when the request carried an abi.
func (r RunExecutorResult) Decoded() (bridge.Object, bool) { return r.decoded, r.hasDecoded }

func (r RunExecutorResult) Raw() bridge.Object { return r.raw }

// RunTvmResult is the outcome of a bare TVM run.
type RunTvmResult struct {
	raw         bridge.Object
	outMessages []string
	account     string
	decoded     bridge.Object
	hasDecoded  bool
}

func NewRunTvmResult(obj bridge.Object) (RunTvmResult, error) {
	var (
		res = RunTvmResult{raw: obj}
		err error
	)

	if res.outMessages, err = obj.GetStringSlice(keyOutMessages); err != nil {
		return RunTvmResult{}, err
	}
	if res.account, err = obj.GetString(keyAccount); err != nil {
		return RunTvmResult{}, err
	}
	if res.decoded, res.hasDecoded, err = obj.GetOptionalObject(keyDecoded); err != nil {
		return RunTvmResult{}, err
	}

	return res, nil
}

func (r RunTvmResult) OutMessages() []string { return clone(r.outMessages) }

func (r RunTvmResult) Account() string { return r.account }

func (r RunTvmResult) Decoded() (bridge.Object, bool) { return r.decoded, r.hasDecoded }

func (r RunTvmResult) Raw() bridge.Object { return r.raw }

// RunGetResult holds the values left on the stack by a get method.
type RunGetResult struct {
	raw bridge.Object
}

func NewRunGetResult(obj bridge.Object) (RunGetResult, error) {
	if _, err := obj.Require(keyOutput); err != nil {
		return RunGetResult{}, err
	}

	return RunGetResult{raw: obj}, nil
}

// Output is a copy of the decoded stack: nested objects are json.OrderedObject
// and numbers json.Number.
func (r RunGetResult) Output() interface{} {
	output, _ := r.raw.Get(keyOutput)
	return output
}

func (r RunGetResult) Raw() bridge.Object { return r.raw }

func clone(s []string) []string {
	return append([]string(nil), s...)
}
