package bridge

import (
	"sync"

	json "github.com/nspcc-dev/go-ordered-json"
)

// Transport moves requests to the execution engine. Submit must not block:
// the response is delivered through the returned PendingOperation.
type Transport interface {
	Submit(method string, payload *Payload) PendingOperation
}

// PendingOperation is a submitted request. Resolve blocks until the engine
// answers or the transport gives up, and may be called more than once.
type PendingOperation interface {
	Resolve() (json.RawMessage, error)
}

// Future is a channel-backed PendingOperation completed exactly once.
type Future struct {
	done   chan struct{}
	once   sync.Once
	result json.RawMessage
	err    error
}

func NewFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Complete stores the outcome and wakes up all waiters. Calls after the
// first one are ignored.
func (f *Future) Complete(result json.RawMessage, err error) {
	f.once.Do(func() {
		f.result, f.err = result, err
		close(f.done)
	})
}

func (f *Future) Resolve() (json.RawMessage, error) {
	<-f.done
	return f.result, f.err
}

// Resolved returns an already completed Future.
func Resolved(result json.RawMessage, err error) *Future {
	f := NewFuture()
	f.Complete(result, err)

	return f
}
