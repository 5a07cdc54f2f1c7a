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

package wechat_test

import (
	"context"
	"errors"
	"testing"

	"github.com/quotemart/quotemart/internal/payment/internal/domain"
	"github.com/quotemart/quotemart/internal/payment/internal/service/wechat"
	wechatmocks "github.com/quotemart/quotemart/internal/payment/internal/service/wechat/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/jsapi"
	"go.uber.org/mock/gomock"
)

func TestJSAPIGateway_Prepay(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name       string
		mock       func(ctrl *gomock.Controller) wechat.JSAPIService
		payment    domain.Payment
		openID     string
		wantPrepay string
		wantErr    bool
	}{
		{
			name: "下单成功",
			mock: func(ctrl *gomock.Controller) wechat.JSAPIService {
				svc := wechatmocks.NewMockJSAPIService(ctrl)
				svc.EXPECT().Prepay(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req jsapi.PrepayRequest) (*jsapi.PrepayResponse, *core.APIResult, error) {
						assert.Equal(t, "wx_app_id", *req.Appid)
						assert.Equal(t, "1900000001", *req.Mchid)
						assert.Equal(t, "order-no-1", *req.OutTradeNo)
						assert.Equal(t, int64(9900), *req.Amount.Total)
						assert.Equal(t, "CNY", *req.Amount.Currency)
						assert.Equal(t, "mini-openid", *req.Payer.Openid)
						assert.Equal(t, "https://example.com/notify", *req.NotifyUrl)
						return &jsapi.PrepayResponse{PrepayId: core.String("prepay-id-1")}, nil, nil
					})
				return svc
			},
			payment: domain.Payment{
				OrderNo:     "order-no-1",
				Amount:      9900,
				Description: "解锁报价单",
			},
			openID:     "mini-openid",
			wantPrepay: "prepay-id-1",
		},
		{
			name: "微信侧返回错误",
			mock: func(ctrl *gomock.Controller) wechat.JSAPIService {
				svc := wechatmocks.NewMockJSAPIService(ctrl)
				svc.EXPECT().Prepay(gomock.Any(), gomock.Any()).
					Return(nil, nil, errors.New("mock: 下单失败"))
				return svc
			},
			payment: domain.Payment{
				OrderNo:     "order-no-2",
				Amount:      100,
				Description: "解锁报价单",
			},
			openID:  "mini-openid",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			g := wechat.NewJSAPIGateway(tc.mock(ctrl), "wx_app_id", "1900000001", "https://example.com/notify")
			prepayID, err := g.Prepay(context.Background(), tc.payment, tc.openID)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantPrepay, prepayID)
		})
	}
}

func TestJSAPIGateway_QueryOrderByOutTradeNo(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := wechatmocks.NewMockJSAPIService(ctrl)
	svc.EXPECT().QueryOrderByOutTradeNo(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req jsapi.QueryOrderByOutTradeNoRequest) (*payments.Transaction, *core.APIResult, error) {
			assert.Equal(t, "order-no-3", *req.OutTradeNo)
			assert.Equal(t, "1900000001", *req.Mchid)
			return &payments.Transaction{
				OutTradeNo: core.String("order-no-3"),
				TradeState: core.String("SUCCESS"),
			}, nil, nil
		})

	g := wechat.NewJSAPIGateway(svc, "wx_app_id", "1900000001", "https://example.com/notify")
	txn, err := g.QueryOrderByOutTradeNo(context.Background(), "order-no-3")
	require.NoError(t, err)
	assert.Equal(t, "SUCCESS", *txn.TradeState)
}
