//go:build wireinject

package ioc

import (
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		initModules,
		InitSession,
		initGinxServer)
	return new(App), nil
}
