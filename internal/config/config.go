package config

import (
	"gitlab.com/distributed_lab/kit/comfig"
	"gitlab.com/distributed_lab/kit/kv"
)

type Config interface {
	comfig.Logger
	EngineConfigurator
	AddressConfigurator
}

type config struct {
	getter kv.Getter

	comfig.Logger
	EngineConfigurator
	AddressConfigurator
}

func New(getter kv.Getter) Config {
	return &config{
		getter: getter,

		Logger:              comfig.NewLogger(getter, comfig.LoggerOpts{}),
		EngineConfigurator:  NewEngineConfigurator(getter),
		AddressConfigurator: NewAddressConfigurator(getter),
	}
}
