package tvm

import (
	json "github.com/nspcc-dev/go-ordered-json"
)

const (
	MethodRunExecutor = "tvm.run_executor"
	MethodRunTvm      = "tvm.run_tvm"
	MethodRunGet      = "tvm.run_get"
)

const (
	keyMessage              = "message"
	keyAccount              = "account"
	keyExecutionOptions     = "execution_options"
	keyAbi                  = "abi"
	keySkipTransactionCheck = "skip_transaction_check"
	keyFunctionName         = "function_name"
	keyInput                = "input"
)

// ExecutionOptions overrides the engine's execution environment. Unset
// fields are left to the engine defaults.
type ExecutionOptions struct {
	// BlockchainConfig is a base64 config params BOC.
	BlockchainConfig    *string `json:"blockchain_config,omitempty"`
	BlockTime           *uint32 `json:"block_time,omitempty"`
	BlockLt             *uint64 `json:"block_lt,omitempty"`
	TransactionLt       *uint64 `json:"transaction_lt,omitempty"`
	ChksigAlwaysSucceed *bool   `json:"chksig_always_succeed,omitempty"`
	SignatureID         *int32  `json:"signature_id,omitempty"`
}

type AbiType string

const (
	AbiTypeContract   AbiType = "Contract"
	AbiTypeJSON       AbiType = "Json"
	AbiTypeHandle     AbiType = "Handle"
	AbiTypeSerialized AbiType = "Serialized"
)

// Abi is the contract interface used by the engine to decode output messages.
type Abi struct {
	Type  AbiType     `json:"type"`
	Value interface{} `json:"value"`
}

func AbiContract(contract json.RawMessage) Abi {
	return Abi{Type: AbiTypeContract, Value: contract}
}

func AbiJSON(abi string) Abi {
	return Abi{Type: AbiTypeJSON, Value: abi}
}

func AbiHandle(handle uint32) Abi {
	return Abi{Type: AbiTypeHandle, Value: handle}
}

func AbiSerialized(contract json.RawMessage) Abi {
	return Abi{Type: AbiTypeSerialized, Value: contract}
}

type AccountType string

const (
	// AccountTypeNone runs against a non-existing account.
	AccountTypeNone AccountType = "None"
	// AccountTypeUninit emulates an uninitialized account with the balance
	// taken from the message.
	AccountTypeUninit  AccountType = "Uninit"
	AccountTypeAccount AccountType = "Account"
)

// AccountForExecutor is the account state the executor runs against.
type AccountForExecutor struct {
	Type             AccountType
	Boc              string
	UnlimitedBalance Optional[bool]
}

func AccountNone() AccountForExecutor {
	return AccountForExecutor{Type: AccountTypeNone}
}

func AccountUninit() AccountForExecutor {
	return AccountForExecutor{Type: AccountTypeUninit}
}

func AccountBoc(boc string, unlimitedBalance Optional[bool]) AccountForExecutor {
	return AccountForExecutor{Type: AccountTypeAccount, Boc: boc, UnlimitedBalance: unlimitedBalance}
}

func (a AccountForExecutor) MarshalJSON() ([]byte, error) {
	type account struct {
		Type             AccountType `json:"type"`
		Boc              string      `json:"boc,omitempty"`
		UnlimitedBalance *bool       `json:"unlimited_balance,omitempty"`
	}

	res := account{Type: a.Type}
	if a.Type == AccountTypeAccount {
		res.Boc = a.Boc
		if unlimited, ok := a.UnlimitedBalance.Get(); ok {
			res.UnlimitedBalance = &unlimited
		}
	}

	return json.Marshal(res)
}
