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

package ioc

import (
	"context"

	"github.com/gotomicro/ego/core/econf"
	"github.com/quotemart/quotemart/internal/payment/internal/event"
	"github.com/quotemart/quotemart/internal/payment/internal/repository"
	"github.com/quotemart/quotemart/internal/payment/internal/service"
	"github.com/quotemart/quotemart/internal/payment/internal/service/wechat"
	"github.com/quotemart/quotemart/internal/payment/internal/sign"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/core/auth/verifiers"
	"github.com/wechatpay-apiv3/wechatpay-go/core/downloader"
	"github.com/wechatpay-apiv3/wechatpay-go/core/notify"
	"github.com/wechatpay-apiv3/wechatpay-go/core/option"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/jsapi"
	"github.com/wechatpay-apiv3/wechatpay-go/utils"
)

func InitWechatClient(cfg WechatConfig) *core.Client {
	// 商户私钥用于生成 v3 请求签名
	mchPrivateKey, err := utils.LoadPrivateKeyWithPath(cfg.KeyPath)
	if err != nil {
		panic(err)
	}

	client, err := core.NewClient(
		context.Background(),
		option.WithWechatPayAutoAuthCipher(
			cfg.MchID, cfg.MchSerialNum,
			mchPrivateKey, cfg.MchKey),
	)
	if err != nil {
		panic(err)
	}
	return client
}

func InitJSApiService(cli *core.Client) *jsapi.JsapiApiService {
	return &jsapi.JsapiApiService{
		Client: cli,
	}
}

func InitWechatGateway(js wechat.JSAPIService, cfg WechatConfig) *wechat.JSAPIGateway {
	return wechat.NewJSAPIGateway(js, cfg.AppID, cfg.MchID, cfg.PaymentNotifyURL)
}

func InitWechatNotifyHandler(cfg WechatConfig) *notify.Handler {
	certificateVisitor := downloader.MgrInstance().GetCertificateVisitor(cfg.MchID)
	handler, err := notify.NewRSANotifyHandler(cfg.MchKey,
		verifiers.NewSHA256WithRSAVerifier(certificateVisitor))
	if err != nil {
		panic(err)
	}
	return handler
}

func InitSigner(cfg WechatConfig) *sign.Signer {
	return sign.NewSigner(cfg.ApiKey)
}

func InitService(repo repository.PaymentRepository,
	gw *wechat.JSAPIGateway,
	signer *sign.Signer,
	cfg WechatConfig,
	resolver service.OpenIDResolver,
	unlocker service.QuoteUnlocker,
	producer event.Producer) service.Service {
	return service.NewService(repo, gw, signer, cfg.AppID, resolver, unlocker, producer)
}

func InitWechatConfig() WechatConfig {
	var cfg WechatConfig
	err := econf.UnmarshalKey("wechat.payment", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

type WechatConfig struct {
	AppID        string
	MchID        string
	MchKey       string
	MchSerialNum string

	// v2 签名密钥,小程序调起支付的 paySign 用它
	ApiKey string

	// 证书
	CertPath string
	KeyPath  string

	PaymentNotifyURL string
}
