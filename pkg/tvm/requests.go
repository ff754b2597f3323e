package tvm

import (
	"github.com/Bridgeless-Project/tvm-bridge/pkg/bridge"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
)

var (
	ErrEmptyRequiredField     = errors.New("empty required field")
	ErrUnsupportedAccountType = errors.New("unsupported account type")
)

// RunExecutorParams emulates a full transaction: the message is processed
// against the account with all the executor checks applied.
type RunExecutorParams struct {
	// Message is the base64 encoded input message BOC.
	Message              string
	Account              AccountForExecutor
	ExecutionOptions     Optional[ExecutionOptions]
	Abi                  Optional[Abi]
	SkipTransactionCheck Optional[bool]
}

// RunTvmParams runs the message against the account on the bare TVM, with no
// transaction and no fees.
type RunTvmParams struct {
	// Message is the base64 encoded input message BOC.
	Message string
	// Account is the base64 encoded account BOC.
	Account          string
	ExecutionOptions Optional[ExecutionOptions]
	Abi              Optional[Abi]
}

// RunGetParams calls a get method of the account.
type RunGetParams struct {
	// Account is the base64 encoded account BOC.
	Account          string
	FunctionName     string
	ExecutionOptions Optional[ExecutionOptions]
	Input            Optional[interface{}]
}

func BuildRunExecutorRequest(params RunExecutorParams) (*bridge.Payload, error) {
	if err := validateAccountType(params.Account.Type); err != nil {
		return nil, err
	}

	bocRule := validation.When(params.Account.Type == AccountTypeAccount, validation.Required)

	err := requireFields(validation.Errors{
		keyMessage:    validation.Validate(params.Message, validation.Required),
		keyAccount:    validation.Validate(string(params.Account.Type), validation.Required),
		"account.boc": validation.Validate(params.Account.Boc, bocRule),
	})
	if err != nil {
		return nil, err
	}

	payload := bridge.NewPayload().
		Set(keyMessage, params.Message).
		Set(keyAccount, params.Account)
	setOptional(payload, keyExecutionOptions, params.ExecutionOptions)
	setOptional(payload, keyAbi, params.Abi)
	setOptional(payload, keySkipTransactionCheck, params.SkipTransactionCheck)

	return payload, nil
}

func BuildRunTvmRequest(params RunTvmParams) (*bridge.Payload, error) {
	err := requireFields(validation.Errors{
		keyMessage: validation.Validate(params.Message, validation.Required),
		keyAccount: validation.Validate(params.Account, validation.Required),
	})
	if err != nil {
		return nil, err
	}

	payload := bridge.NewPayload().
		Set(keyMessage, params.Message).
		Set(keyAccount, params.Account)
	setOptional(payload, keyExecutionOptions, params.ExecutionOptions)
	setOptional(payload, keyAbi, params.Abi)

	return payload, nil
}

func BuildRunGetRequest(params RunGetParams) (*bridge.Payload, error) {
	err := requireFields(validation.Errors{
		keyAccount:      validation.Validate(params.Account, validation.Required),
		keyFunctionName: validation.Validate(params.FunctionName, validation.Required),
	})
	if err != nil {
		return nil, err
	}

	payload := bridge.NewPayload().
		Set(keyAccount, params.Account).
		Set(keyFunctionName, params.FunctionName)
	setOptional(payload, keyExecutionOptions, params.ExecutionOptions)
	setOptional(payload, keyInput, params.Input)

	return payload, nil
}

func requireFields(fields validation.Errors) error {
	if err := fields.Filter(); err != nil {
		return errors.Wrap(ErrEmptyRequiredField, err.Error())
	}

	return nil
}

func validateAccountType(t AccountType) error {
	switch t {
	case "", AccountTypeNone, AccountTypeUninit, AccountTypeAccount:
		return nil
	default:
		return errors.Wrapf(ErrUnsupportedAccountType, "%q", t)
	}
}

func setOptional[T any](payload *bridge.Payload, key string, value Optional[T]) {
	if v, ok := value.Get(); ok {
		payload.Set(key, v)
	}
}
