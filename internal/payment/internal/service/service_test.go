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

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/quotemart/quotemart/internal/payment/internal/domain"
	"github.com/quotemart/quotemart/internal/payment/internal/event"
	"github.com/quotemart/quotemart/internal/payment/internal/repository/dao"
	"github.com/quotemart/quotemart/internal/payment/internal/sign"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
)

type fakePaymentRepo struct {
	payments map[string]domain.Payment
	nextID   int64
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]domain.Payment)}
}

func (f *fakePaymentRepo) Create(_ context.Context, p domain.Payment) (int64, error) {
	if _, ok := f.payments[p.OrderNo]; ok {
		return 0, dao.ErrDuplicateOrderNo
	}
	f.nextID++
	p.ID = f.nextID
	p.Ctime = time.Now().UnixMilli()
	f.payments[p.OrderNo] = p
	return p.ID, nil
}

func (f *fakePaymentRepo) FindByOrderNo(_ context.Context, orderNo string, uid int64) (domain.Payment, error) {
	p, ok := f.payments[orderNo]
	if !ok || p.UID != uid {
		return domain.Payment{}, dao.ErrDataNotFound
	}
	return p, nil
}

func (f *fakePaymentRepo) MarkPaid(_ context.Context, orderNo string, txnID string) (bool, domain.Payment, error) {
	p, ok := f.payments[orderNo]
	if !ok {
		return false, domain.Payment{}, dao.ErrDataNotFound
	}
	if p.Status == domain.PaymentStatusPaid {
		return true, p, nil
	}
	p.Status = domain.PaymentStatusPaid
	p.TxnID = txnID
	p.PaidAt = time.Now().UnixMilli()
	f.payments[orderNo] = p
	return false, p, nil
}

type fakeGateway struct {
	prepayID string
	err      error
	calls    int

	// 微信侧查单的返回,不设置时视为未支付
	txn        *payments.Transaction
	queryErr   error
	queryCalls int
}

func (f *fakeGateway) Prepay(_ context.Context, _ domain.Payment, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.prepayID, nil
}

func (f *fakeGateway) QueryOrderByOutTradeNo(_ context.Context, orderNo string) (*payments.Transaction, error) {
	f.queryCalls++
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	if f.txn != nil {
		return f.txn, nil
	}
	return &payments.Transaction{
		OutTradeNo: core.String(orderNo),
		TradeState: core.String("NOTPAY"),
	}, nil
}

type fakeResolver struct {
	openIDs map[int64]string
}

func (f *fakeResolver) MiniOpenID(_ context.Context, uid int64) (string, error) {
	openID, ok := f.openIDs[uid]
	if !ok {
		return "", errors.New("用户不存在")
	}
	return openID, nil
}

type fakeUnlocker struct {
	unlocked map[int64]int
}

func (f *fakeUnlocker) UnlockByPayment(_ context.Context, _ int64, quoteID int64) error {
	f.unlocked[quoteID]++
	return nil
}

type fakeProducer struct {
	events []event.PaymentEvent
}

func (f *fakeProducer) ProducePaymentEvent(_ context.Context, evt event.PaymentEvent) error {
	f.events = append(f.events, evt)
	return nil
}

type testDeps struct {
	repo     *fakePaymentRepo
	gateway  *fakeGateway
	unlocker *fakeUnlocker
	producer *fakeProducer
	signer   *sign.Signer
}

func newTestService() (Service, *testDeps) {
	deps := &testDeps{
		repo:     newFakePaymentRepo(),
		gateway:  &fakeGateway{prepayID: "wx20260828_prepay_001"},
		unlocker: &fakeUnlocker{unlocked: make(map[int64]int)},
		producer: &fakeProducer{},
		signer:   sign.NewSigner("test-api-key"),
	}
	resolver := &fakeResolver{openIDs: map[int64]string{200: "mini-openid-200"}}
	svc := NewService(deps.repo, deps.gateway, deps.signer, "wx_app_id",
		resolver, deps.unlocker, deps.producer)
	return svc, deps
}

func validPayment() domain.Payment {
	return domain.Payment{
		OrderNo:     "PAY20260828001",
		UID:         200,
		Amount:      9900,
		Description: "解锁报价单联系方式",
		Type:        domain.PaymentTypeUnlockQuote,
		RelatedID:   1,
	}
}

func TestService_Prepay(t *testing.T) {
	t.Parallel()

	t.Run("成功返回小程序调起参数", func(t *testing.T) {
		t.Parallel()
		svc, deps := newTestService()
		params, err := svc.Prepay(context.Background(), validPayment())
		require.NoError(t, err)
		assert.Equal(t, "wx_app_id", params.AppID)
		assert.Equal(t, "prepay_id=wx20260828_prepay_001", params.Package)
		assert.Equal(t, "MD5", params.SignType)
		assert.Len(t, params.NonceStr, 32)
		assert.NotEmpty(t, params.TimeStamp)

		expected := deps.signer.Sign(map[string]string{
			"appId":     params.AppID,
			"timeStamp": params.TimeStamp,
			"nonceStr":  params.NonceStr,
			"package":   params.Package,
			"signType":  params.SignType,
		})
		assert.Equal(t, expected, params.PaySign)

		p, ok := deps.repo.payments["PAY20260828001"]
		require.True(t, ok)
		assert.Equal(t, domain.PaymentStatusPending, p.Status)
		assert.Equal(t, "wx20260828_prepay_001", p.PrepayID)
	})

	t.Run("金额边界", func(t *testing.T) {
		t.Parallel()
		testCases := []struct {
			name    string
			amount  int64
			wantErr error
		}{
			{name: "零金额", amount: 0, wantErr: ErrInvalidAmount},
			{name: "负数金额", amount: -100, wantErr: ErrInvalidAmount},
			{name: "下限一分", amount: 1},
			{name: "上限一百万元", amount: 100_000_000},
			{name: "超出上限", amount: 100_000_001, wantErr: ErrInvalidAmount},
		}
		for i, tc := range testCases {
			tc := tc
			idx := i
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()
				svc, _ := newTestService()
				p := validPayment()
				p.Amount = tc.amount
				p.OrderNo = p.OrderNo + string(rune('A'+idx))
				_, err := svc.Prepay(context.Background(), p)
				if tc.wantErr != nil {
					assert.ErrorIs(t, err, tc.wantErr)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("参数不完整被拒绝", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService()
		testCases := []struct {
			name   string
			modify func(p *domain.Payment)
		}{
			{name: "缺支付单号", modify: func(p *domain.Payment) { p.OrderNo = "" }},
			{name: "缺商品描述", modify: func(p *domain.Payment) { p.Description = "" }},
			{name: "非法支付类型", modify: func(p *domain.Payment) { p.Type = 99 }},
			{name: "缺业务关联ID", modify: func(p *domain.Payment) { p.RelatedID = 0 }},
		}
		for _, tc := range testCases {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()
				p := validPayment()
				tc.modify(&p)
				_, err := svc.Prepay(context.Background(), p)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})

	t.Run("微信下单失败不落库", func(t *testing.T) {
		t.Parallel()
		svc, deps := newTestService()
		deps.gateway.err = errors.New("微信不可用")
		_, err := svc.Prepay(context.Background(), validPayment())
		require.Error(t, err)
		assert.Empty(t, deps.repo.payments)
	})

	t.Run("支付单号重复", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService()
		_, err := svc.Prepay(context.Background(), validPayment())
		require.NoError(t, err)
		_, err = svc.Prepay(context.Background(), validPayment())
		assert.ErrorIs(t, err, ErrDuplicateOrderNo)
	})
}

func successTxn(orderNo string) *payments.Transaction {
	return &payments.Transaction{
		OutTradeNo:    core.String(orderNo),
		TransactionId: core.String("4200001234202608280001"),
		TradeState:    core.String("SUCCESS"),
	}
}

func TestService_HandleWechatCallback(t *testing.T) {
	t.Parallel()

	t.Run("首次通知翻转状态并解锁报价单", func(t *testing.T) {
		t.Parallel()
		svc, deps := newTestService()
		_, err := svc.Prepay(context.Background(), validPayment())
		require.NoError(t, err)

		err = svc.HandleWechatCallback(context.Background(), successTxn("PAY20260828001"))
		require.NoError(t, err)

		p := deps.repo.payments["PAY20260828001"]
		assert.Equal(t, domain.PaymentStatusPaid, p.Status)
		assert.Equal(t, "4200001234202608280001", p.TxnID)
		assert.NotZero(t, p.PaidAt)
		assert.Equal(t, 1, deps.unlocker.unlocked[1])
		require.Len(t, deps.producer.events, 1)
		assert.Equal(t, "PAY20260828001", deps.producer.events[0].OrderNo)
	})

	t.Run("重复通知幂等", func(t *testing.T) {
		t.Parallel()
		svc, deps := newTestService()
		_, err := svc.Prepay(context.Background(), validPayment())
		require.NoError(t, err)

		require.NoError(t, svc.HandleWechatCallback(context.Background(), successTxn("PAY20260828001")))
		paidAt := deps.repo.payments["PAY20260828001"].PaidAt
		require.NoError(t, svc.HandleWechatCallback(context.Background(), successTxn("PAY20260828001")))

		assert.Equal(t, paidAt, deps.repo.payments["PAY20260828001"].PaidAt)
		assert.Equal(t, 1, deps.unlocker.unlocked[1])
		assert.Len(t, deps.producer.events, 1)
	})

	t.Run("非成功状态被忽略", func(t *testing.T) {
		t.Parallel()
		svc, deps := newTestService()
		_, err := svc.Prepay(context.Background(), validPayment())
		require.NoError(t, err)

		txn := successTxn("PAY20260828001")
		txn.TradeState = core.String("USERPAYING")
		require.NoError(t, svc.HandleWechatCallback(context.Background(), txn))
		assert.Equal(t, domain.PaymentStatusPending, deps.repo.payments["PAY20260828001"].Status)
		assert.Empty(t, deps.unlocker.unlocked)
	})

	t.Run("未知支付单号报错", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService()
		err := svc.HandleWechatCallback(context.Background(), successTxn("NO-SUCH-ORDER"))
		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})

	t.Run("合同类支付不触发解锁", func(t *testing.T) {
		t.Parallel()
		svc, deps := newTestService()
		p := validPayment()
		p.Type = domain.PaymentTypeGenerateContract
		_, err := svc.Prepay(context.Background(), p)
		require.NoError(t, err)

		require.NoError(t, svc.HandleWechatCallback(context.Background(), successTxn(p.OrderNo)))
		assert.Empty(t, deps.unlocker.unlocked)
		assert.Equal(t, domain.PaymentStatusPaid, deps.repo.payments[p.OrderNo].Status)
	})

	t.Run("未知存量支付类型只记日志不阻断", func(t *testing.T) {
		t.Parallel()
		svc, deps := newTestService()
		// 直接造一条类型越界的存量记录,Prepay 的校验拦不到它
		p := validPayment()
		p.Type = 99
		p.Status = domain.PaymentStatusPending
		_, err := deps.repo.Create(context.Background(), p)
		require.NoError(t, err)

		require.NoError(t, svc.HandleWechatCallback(context.Background(), successTxn(p.OrderNo)))
		assert.Empty(t, deps.unlocker.unlocked)
		assert.Equal(t, domain.PaymentStatusPaid, deps.repo.payments[p.OrderNo].Status)
		assert.Len(t, deps.producer.events, 1)
	})
}

func TestService_Confirm(t *testing.T) {
	t.Parallel()

	t.Run("已支付时补偿执行解锁", func(t *testing.T) {
		t.Parallel()
		svc, deps := newTestService()
		_, err := svc.Prepay(context.Background(), validPayment())
		require.NoError(t, err)
		require.NoError(t, svc.HandleWechatCallback(context.Background(), successTxn("PAY20260828001")))

		p, err := svc.Confirm(context.Background(), 200, "PAY20260828001")
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPaid, p.Status)
		// 解锁动作幂等,补偿重放无害
		assert.Equal(t, 2, deps.unlocker.unlocked[1])
		// 本地已是终态,不再向微信查单
		assert.Zero(t, deps.gateway.queryCalls)
	})

	t.Run("回调丢失时向微信对账补齐", func(t *testing.T) {
		t.Parallel()
		svc, deps := newTestService()
		_, err := svc.Prepay(context.Background(), validPayment())
		require.NoError(t, err)
		// 回调一直没到,但微信侧已支付成功
		deps.gateway.txn = successTxn("PAY20260828001")

		p, err := svc.Confirm(context.Background(), 200, "PAY20260828001")
		require.NoError(t, err)
		assert.Equal(t, 1, deps.gateway.queryCalls)
		assert.Equal(t, domain.PaymentStatusPaid, p.Status)
		assert.Equal(t, "4200001234202608280001", p.TxnID)
		assert.Equal(t, 1, deps.unlocker.unlocked[1])
		require.Len(t, deps.producer.events, 1)
		assert.Equal(t, "PAY20260828001", deps.producer.events[0].OrderNo)
	})

	t.Run("微信侧也未支付时不触发业务动作", func(t *testing.T) {
		t.Parallel()
		svc, deps := newTestService()
		_, err := svc.Prepay(context.Background(), validPayment())
		require.NoError(t, err)

		p, err := svc.Confirm(context.Background(), 200, "PAY20260828001")
		require.NoError(t, err)
		assert.Equal(t, 1, deps.gateway.queryCalls)
		assert.Equal(t, domain.PaymentStatusPending, p.Status)
		assert.Empty(t, deps.unlocker.unlocked)
	})

	t.Run("微信查单失败返回本地状态", func(t *testing.T) {
		t.Parallel()
		svc, deps := newTestService()
		_, err := svc.Prepay(context.Background(), validPayment())
		require.NoError(t, err)
		deps.gateway.queryErr = errors.New("微信不可用")

		p, err := svc.Confirm(context.Background(), 200, "PAY20260828001")
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPending, p.Status)
		assert.Empty(t, deps.unlocker.unlocked)
	})

	t.Run("查不到支付单", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService()
		_, err := svc.Confirm(context.Background(), 200, "NO-SUCH-ORDER")
		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})
}

func TestService_Query(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	_, err := svc.Prepay(context.Background(), validPayment())
	require.NoError(t, err)

	t.Run("本人可查", func(t *testing.T) {
		t.Parallel()
		p, err := svc.Query(context.Background(), 200, "PAY20260828001")
		require.NoError(t, err)
		assert.Equal(t, int64(9900), p.Amount)
	})

	t.Run("他人查不到", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Query(context.Background(), 999, "PAY20260828001")
		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})
}
