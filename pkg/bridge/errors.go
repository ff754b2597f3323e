package bridge

import (
	"fmt"

	"github.com/pkg/errors"
)

// CodeUnknown is reported for transport failures that carry no code.
const CodeUnknown = -1

// TransportError is the failure shape transports are expected to return.
type TransportError struct {
	Code    int
	Message string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error %d: %s", e.Code, e.Message)
}

// BridgeError is a failed engine call. Code and Message are the transport's,
// passed through untouched.
type BridgeError struct {
	Code    int
	Message string
}

func (e *BridgeError) Error() string {
	return fmt.Sprintf("engine call failed with code %d: %s", e.Code, e.Message)
}

func newBridgeError(err error) *BridgeError {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return &BridgeError{Code: transportErr.Code, Message: transportErr.Message}
	}

	return &BridgeError{Code: CodeUnknown, Message: err.Error()}
}

// DecodeError means the engine answered successfully but the answer does not
// have the expected shape.
type DecodeError struct {
	Field  string
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("failed to decode result: %s", e.Reason)
	}

	return fmt.Sprintf("failed to decode result field %q: %s", e.Field, e.Reason)
}

func NewDecodeError(field, reason string) *DecodeError {
	return &DecodeError{Field: field, Reason: reason}
}

// AsBridgeError checks whether an error is a BridgeError and returns it.
func AsBridgeError(err error) (*BridgeError, bool) {
	var b *BridgeError
	if errors.As(err, &b) {
		return b, true
	}
	return nil, false
}

// AsDecodeError checks whether an error is a DecodeError and returns it.
func AsDecodeError(err error) (*DecodeError, bool) {
	var d *DecodeError
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}
