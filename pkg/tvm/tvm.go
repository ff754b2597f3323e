package tvm

import (
	"github.com/Bridgeless-Project/tvm-bridge/pkg/bridge"
)

// Tvm runs local emulations on the engine behind the caller.
type Tvm struct {
	caller bridge.Caller
}

func New(caller bridge.Caller) *Tvm {
	return &Tvm{caller: caller}
}

func (t *Tvm) RunExecutor(params RunExecutorParams) (RunExecutorResult, error) {
	payload, err := BuildRunExecutorRequest(params)
	if err != nil {
		return RunExecutorResult{}, err
	}

	return bridge.Invoke(t.caller, MethodRunExecutor, payload, NewRunExecutorResult)
}

func (t *Tvm) RunTvm(params RunTvmParams) (RunTvmResult, error) {
	payload, err := BuildRunTvmRequest(params)
	if err != nil {
		return RunTvmResult{}, err
	}

	return bridge.Invoke(t.caller, MethodRunTvm, payload, NewRunTvmResult)
}

func (t *Tvm) RunGet(params RunGetParams) (RunGetResult, error) {
	payload, err := BuildRunGetRequest(params)
	if err != nil {
		return RunGetResult{}, err
	}

	return bridge.Invoke(t.caller, MethodRunGet, payload, NewRunGetResult)
}
