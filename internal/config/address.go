package config

import (
	"github.com/Bridgeless-Project/tvm-bridge/pkg/address"
	"github.com/pkg/errors"
	"gitlab.com/distributed_lab/figure/v3"
	"gitlab.com/distributed_lab/kit/comfig"
	"gitlab.com/distributed_lab/kit/kv"
)

const (
	addressConfigKey = "address"
)

// AddressConfig holds the defaults of the address commands. Every field is optional.
type AddressConfig struct {
	URLSafe    bool
	Testnet    bool
	Bounceable bool
	// Default is converted when a command gets no address argument.
	Default *address.Address
}

func (c AddressConfig) Flags() address.Flags {
	return address.Flags{URLSafe: c.URLSafe, Testnet: c.Testnet, Bounceable: c.Bounceable}
}

// addressSection is the layout of the address config section.
type addressSection struct {
	URLSafe    bool            `fig:"url_safe"`
	Testnet    bool            `fig:"testnet"`
	Bounceable bool            `fig:"bounceable"`
	Default    address.Address `fig:"default"`
}

type AddressConfigurator interface {
	AddressConfig() AddressConfig
}

type addressConfigurator struct {
	getter kv.Getter
	once   comfig.Once
}

func NewAddressConfigurator(getter kv.Getter) AddressConfigurator {
	return &addressConfigurator{getter: getter}
}

func (a *addressConfigurator) AddressConfig() AddressConfig {
	return a.once.Do(func() interface{} {
		cfg := addressSection{
			URLSafe:    true,
			Bounceable: true,
		}

		raw, err := a.getter.GetStringMap(addressConfigKey)
		if err != nil {
			panic(errors.Wrap(err, "failed to get address config"))
		}
		if raw == nil {
			return AddressConfig{URLSafe: cfg.URLSafe, Bounceable: cfg.Bounceable}
		}

		err = figure.Out(&cfg).
			From(raw).
			With(figure.BaseHooks, address.Hook).
			Please()
		if err != nil {
			panic(errors.Wrap(err, "failed to load address config"))
		}

		res := AddressConfig{URLSafe: cfg.URLSafe, Testnet: cfg.Testnet, Bounceable: cfg.Bounceable}
		if _, ok := raw["default"]; ok {
			res.Default = &cfg.Default
		}

		return res
	}).(AddressConfig)
}
