package bridge

import (
	"time"

	"gitlab.com/distributed_lab/logan/v3"
	"go.uber.org/atomic"
)

// Caller performs a blocking engine call and returns the decoded response.
type Caller interface {
	Call(method string, payload *Payload) (Object, error)
}

// Decoder builds a typed result from a decoded response.
type Decoder[T any] func(Object) (T, error)

// Bridge turns the asynchronous transport into blocking calls. It holds no
// per-call state, so concurrent calls are independent and complete in any order.
type Bridge struct {
	transport Transport
	logger    *logan.Entry
	calls     *atomic.Uint64
}

// New creates a bridge over the transport. A nil logger is replaced with a default one.
func New(transport Transport, logger *logan.Entry) *Bridge {
	if logger == nil {
		logger = logan.New()
	}

	return &Bridge{
		transport: transport,
		logger:    logger,
		calls:     atomic.NewUint64(0),
	}
}

// Call submits the request and waits for it. A transport failure is returned
// as *BridgeError, a malformed success as *DecodeError. There is no retry and
// no way to abort a submitted call.
func (b *Bridge) Call(method string, payload *Payload) (Object, error) {
	if payload == nil {
		payload = NewPayload()
	}

	logger := b.logger.WithFields(logan.F{
		"method":  method,
		"call_id": b.calls.Inc(),
	})
	start := time.Now()

	pending := b.transport.Submit(method, payload)
	if pending == nil {
		return Object{}, &BridgeError{Code: CodeUnknown, Message: "transport returned no pending operation"}
	}

	raw, err := pending.Resolve()
	if err != nil {
		logger.WithError(err).Debug("engine call failed")
		return Object{}, newBridgeError(err)
	}

	obj, err := DecodeObject(raw)
	if err != nil {
		logger.WithError(err).Debug("failed to decode engine response")
		return Object{}, err
	}

	logger.WithField("duration", time.Since(start).String()).Debug("engine call completed")

	return obj, nil
}

// Invoke performs the call and decodes the response with decode. Decoder
// failures are reported as *DecodeError.
func Invoke[T any](caller Caller, method string, payload *Payload, decode Decoder[T]) (T, error) {
	var empty T

	obj, err := caller.Call(method, payload)
	if err != nil {
		return empty, err
	}

	res, err := decode(obj)
	if err != nil {
		if _, ok := AsDecodeError(err); ok {
			return empty, err
		}

		return empty, NewDecodeError("", err.Error())
	}

	return res, nil
}
