package user

import (
	mq "github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/econf"
	"github.com/quotemart/quotemart/internal/user/internal/event"
	"github.com/quotemart/quotemart/internal/user/internal/service"
)

func initWechatMiniService() service.OAuth2Service {
	type Config struct {
		AppSecretID  string `yaml:"appSecretID"`
		AppSecretKey string `yaml:"appSecretKey"`
	}
	var cfg Config
	err := econf.UnmarshalKey("wechat.mini", &cfg)
	if err != nil {
		panic(err)
	}
	return service.NewWechatMiniService(cfg.AppSecretID, cfg.AppSecretKey)
}

func initRegistrationEventProducer(q mq.MQ) (*event.RegistrationEventProducer, error) {
	return event.NewRegistrationEventProducer(q)
}
