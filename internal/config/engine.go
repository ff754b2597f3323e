package config

import (
	"fmt"
	"reflect"
	"time"

	"github.com/Bridgeless-Project/tvm-bridge/pkg/bridge/jsonrpc"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
	"gitlab.com/distributed_lab/figure/v3"
	"gitlab.com/distributed_lab/kit/comfig"
	"gitlab.com/distributed_lab/kit/kv"
)

const (
	engineConfigKey = "engine"
)

type Headers map[string]string

type EngineConfig struct {
	Endpoint string        `fig:"endpoint,required"`
	Timeout  time.Duration `fig:"timeout"`
	User     string        `fig:"user"`
	Password string        `fig:"password"`
	Headers  Headers       `fig:"headers"`
}

// validate is called after decoding. It is not named Validate: figure returns
// the result of Validate in place of its own decoding error.
func (c EngineConfig) validate() error {
	return validation.Errors{
		"endpoint": validation.Validate(c.Endpoint, validation.Required),
		"timeout":  validation.Validate(c.Timeout, validation.Min(time.Duration(0))),
		"user":     validation.Validate(c.User, validation.When(c.Password != "", validation.Required)),
	}.Filter()
}

func (c EngineConfig) Settings() jsonrpc.Settings {
	return jsonrpc.Settings{
		Endpoint: c.Endpoint,
		Timeout:  c.Timeout,
		User:     c.User,
		Password: c.Password,
		Headers:  c.Headers,
	}
}

type EngineConfigurator interface {
	EngineConfig() EngineConfig
	// EngineTransport dials the engine once and shares the connection.
	EngineTransport() *jsonrpc.Transport
}

type engineConfigurator struct {
	getter        kv.Getter
	configOnce    comfig.Once
	transportOnce comfig.Once
}

func NewEngineConfigurator(getter kv.Getter) EngineConfigurator {
	return &engineConfigurator{getter: getter}
}

func (e *engineConfigurator) EngineConfig() EngineConfig {
	return e.configOnce.Do(func() interface{} {
		var cfg EngineConfig

		err := figure.Out(&cfg).
			From(kv.MustGetStringMap(e.getter, engineConfigKey)).
			With(figure.BaseHooks, headersHook).
			Please()
		if err != nil {
			panic(errors.Wrap(err, "failed to load engine config"))
		}

		if err = cfg.validate(); err != nil {
			panic(errors.Wrap(err, "invalid engine config"))
		}

		return cfg
	}).(EngineConfig)
}

func (e *engineConfigurator) EngineTransport() *jsonrpc.Transport {
	return e.transportOnce.Do(func() interface{} {
		transport, err := jsonrpc.NewTransport(e.EngineConfig().Settings())
		if err != nil {
			panic(errors.Wrap(err, "failed to create engine transport"))
		}

		return transport
	}).(*jsonrpc.Transport)
}

var headersHook = figure.Hooks{
	"config.Headers": func(value interface{}) (reflect.Value, error) {
		switch v := value.(type) {
		case map[string]interface{}:
			headers := make(Headers, len(v))
			for key, raw := range v {
				header, ok := raw.(string)
				if !ok {
					return reflect.Value{}, fmt.Errorf("unexpected type %T for header %s", raw, key)
				}
				headers[key] = header
			}

			return reflect.ValueOf(headers), nil
		default:
			return reflect.Value{}, fmt.Errorf("unexpected type %T for config.Headers", value)
		}
	},
}
