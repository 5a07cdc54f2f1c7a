// Copyright 2024 quotemart
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package payment

import (
	mq "github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/quotemart/quotemart/internal/payment/internal/event"
	"github.com/quotemart/quotemart/internal/payment/internal/repository"
	"github.com/quotemart/quotemart/internal/payment/internal/service/wechat"
	"github.com/quotemart/quotemart/internal/payment/internal/web"
	"github.com/quotemart/quotemart/internal/payment/ioc"
	"github.com/quotemart/quotemart/internal/quote"
	"github.com/quotemart/quotemart/internal/user"
	"github.com/wechatpay-apiv3/wechatpay-go/core/notify"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/jsapi"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	quoteModule *quote.Module,
	userModule *user.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewRepository,
		event.NewPaymentEventProducer,
		ioc.InitWechatConfig,
		ioc.InitWechatClient,
		ioc.InitJSApiService,
		ioc.InitWechatGateway,
		ioc.InitWechatNotifyHandler,
		ioc.InitSigner,
		ioc.InitOpenIDResolver,
		ioc.InitQuoteUnlocker,
		ioc.InitService,
		web.NewHandler,
		wire.Bind(new(wechat.JSAPIService), new(*jsapi.JsapiApiService)),
		wire.Bind(new(wechat.NotifyHandler), new(*notify.Handler)),
		wire.FieldsOf(new(*quote.Module), "Svc"),
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.Struct(new(Module), "*"))
	return new(Module), nil
}
