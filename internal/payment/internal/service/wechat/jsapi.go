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

package wechat

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/quotemart/quotemart/internal/payment/internal/domain"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/core/notify"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/jsapi"
)

//go:generate mockgen -source=./jsapi.go -package=wechatmocks -destination=./mocks/jsapi.mock.go -typed JSAPIService
type JSAPIService interface {
	Prepay(ctx context.Context, req jsapi.PrepayRequest) (resp *jsapi.PrepayResponse, result *core.APIResult, err error)
	QueryOrderByOutTradeNo(ctx context.Context, req jsapi.QueryOrderByOutTradeNoRequest) (resp *payments.Transaction, result *core.APIResult, err error)
}

// NotifyHandler 抽象 wechatpay-go 的 notify.Handler,测试时可替换
type NotifyHandler interface {
	ParseNotifyRequest(ctx context.Context, request *http.Request, content interface{}) (*notify.Request, error)
}

// JSAPIGateway 封装微信统一下单,只向上暴露 prepay_id。
// 小程序调起支付的参数由上层用 v2 签名自行拼装
type JSAPIGateway struct {
	svc       JSAPIService
	l         *elog.Component
	appID     string
	mchID     string
	notifyURL string
}

func NewJSAPIGateway(svc JSAPIService, appID, mchID, notifyURL string) *JSAPIGateway {
	return &JSAPIGateway{
		svc:       svc,
		l:         elog.DefaultLogger,
		appID:     appID,
		mchID:     mchID,
		notifyURL: notifyURL,
	}
}

func (g *JSAPIGateway) Prepay(ctx context.Context, p domain.Payment, openID string) (string, error) {
	resp, _, err := g.svc.Prepay(ctx, jsapi.PrepayRequest{
		Appid:       core.String(g.appID),
		Mchid:       core.String(g.mchID),
		Description: core.String(p.Description),
		OutTradeNo:  core.String(p.OrderNo),
		TimeExpire:  core.Time(time.Now().Add(time.Minute * 30)),
		NotifyUrl:   core.String(g.notifyURL),
		Amount: &jsapi.Amount{
			Currency: core.String("CNY"),
			Total:    core.Int64(p.Amount),
		},
		Payer: &jsapi.Payer{Openid: core.String(openID)},
	})
	if err != nil {
		return "", fmt.Errorf("微信预支付失败: %w", err)
	}
	return *resp.PrepayId, nil
}

// QueryOrderByOutTradeNo 向微信侧查询权威支付状态
func (g *JSAPIGateway) QueryOrderByOutTradeNo(ctx context.Context, orderNo string) (*payments.Transaction, error) {
	txn, _, err := g.svc.QueryOrderByOutTradeNo(ctx, jsapi.QueryOrderByOutTradeNoRequest{
		OutTradeNo: core.String(orderNo),
		Mchid:      core.String(g.mchID),
	})
	if err != nil {
		return nil, fmt.Errorf("微信订单查询失败: %w", err)
	}
	return txn, nil
}
