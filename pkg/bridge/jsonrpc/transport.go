package jsonrpc

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Bridgeless-Project/tvm-bridge/pkg/bridge"
	"github.com/Bridgeless-Project/tvm-bridge/pkg/encoding"
	"github.com/ethereum/go-ethereum/rpc"
	json "github.com/nspcc-dev/go-ordered-json"
	"github.com/pkg/errors"
)

// TimeoutCode is reported when a call outlives the configured timeout.
const TimeoutCode = http.StatusGatewayTimeout

type Settings struct {
	// Endpoint accepts http(s):// and ws(s):// urls, http is assumed without a scheme.
	Endpoint string
	Timeout  time.Duration
	User     string
	Password string
	Headers  map[string]string
}

// Transport delivers engine calls over JSON-RPC 2.0. The request payload is
// sent as the only positional parameter.
type Transport struct {
	c       *rpc.Client
	timeout time.Duration
}

func NewTransport(settings Settings) (*Transport, error) {
	var opts []rpc.ClientOption
	if settings.User != "" {
		opts = append(opts, rpc.WithHTTPAuth(func(h http.Header) error {
			auth := encoding.GetCodec(encoding.TypeBase64).Encode([]byte(settings.User + ":" + settings.Password))
			h.Set("Authorization", fmt.Sprintf("Basic %s", auth))
			return nil
		}))
	}
	for key, value := range settings.Headers {
		opts = append(opts, rpc.WithHeader(key, value))
	}

	// default to http if no scheme is specified
	if !strings.Contains(settings.Endpoint, "://") {
		settings.Endpoint = "http://" + settings.Endpoint
	}

	c, err := rpc.DialOptions(context.Background(), settings.Endpoint, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to engine")
	}

	return &Transport{c: c, timeout: settings.Timeout}, nil
}

func (t *Transport) Submit(method string, payload *bridge.Payload) bridge.PendingOperation {
	future := bridge.NewFuture()

	go func() {
		ctx, cancel := t.callContext()
		defer cancel()

		var result json.RawMessage
		if err := t.c.CallContext(ctx, &result, method, payload); err != nil {
			future.Complete(nil, toTransportError(err))
			return
		}

		future.Complete(result, nil)
	}()

	return future
}

func (t *Transport) Close() {
	t.c.Close()
}

func (t *Transport) callContext() (context.Context, context.CancelFunc) {
	if t.timeout <= 0 {
		return context.WithCancel(context.Background())
	}

	return context.WithTimeout(context.Background(), t.timeout)
}

func toTransportError(err error) *bridge.TransportError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &bridge.TransportError{Code: TimeoutCode, Message: "timeout"}
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return &bridge.TransportError{Code: rpcErr.ErrorCode(), Message: rpcErr.Error()}
	}

	var httpErr rpc.HTTPError
	if errors.As(err, &httpErr) {
		return fromHTTPError(httpErr)
	}

	return &bridge.TransportError{Code: bridge.CodeUnknown, Message: err.Error()}
}

// Some engine gateways answer JSON-RPC errors with a non-2xx status and the
// error envelope in the body, like:
// 400 Bad Request: {"error":{"code":-32601,"message":"Method not found"},"id":1}
func fromHTTPError(httpErr rpc.HTTPError) *bridge.TransportError {
	var response struct {
		Error *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(httpErr.Body, &response); err == nil && response.Error != nil {
		return &bridge.TransportError{Code: response.Error.Code, Message: response.Error.Message}
	}

	message := strings.TrimSpace(string(httpErr.Body))
	if message == "" {
		message = httpErr.Status
	}

	return &bridge.TransportError{Code: httpErr.StatusCode, Message: message}
}
