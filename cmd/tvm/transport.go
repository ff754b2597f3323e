package tvm

import (
	"github.com/Bridgeless-Project/tvm-bridge/internal/config"
	"github.com/Bridgeless-Project/tvm-bridge/pkg/bridge"
	"github.com/Bridgeless-Project/tvm-bridge/pkg/bridge/jsonrpc"
)

// lazyTransport dials the engine on the first submitted call, so requests
// rejected by the builders never touch the engine config.
type lazyTransport struct {
	engine    config.EngineConfigurator
	transport *jsonrpc.Transport
}

func (l *lazyTransport) Submit(method string, payload *bridge.Payload) bridge.PendingOperation {
	if l.transport == nil {
		l.transport = l.engine.EngineTransport()
	}

	return l.transport.Submit(method, payload)
}

func (l *lazyTransport) Close() {
	if l.transport != nil {
		l.transport.Close()
	}
}
