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
	"fmt"
	"strconv"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/quotemart/quotemart/internal/payment/internal/domain"
	"github.com/quotemart/quotemart/internal/payment/internal/event"
	"github.com/quotemart/quotemart/internal/payment/internal/repository"
	"github.com/quotemart/quotemart/internal/payment/internal/repository/dao"
	"github.com/quotemart/quotemart/internal/payment/internal/sign"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
)

var (
	ErrInvalidInput     = errors.New("支付参数不完整")
	ErrInvalidAmount    = errors.New("支付金额无效")
	ErrPaymentNotFound  = errors.New("支付订单不存在")
	ErrDuplicateOrderNo = dao.ErrDuplicateOrderNo
)

const gatewayTimeout = 10 * time.Second

// PaymentGateway 微信统一下单与订单查询
type PaymentGateway interface {
	Prepay(ctx context.Context, p domain.Payment, openID string) (string, error)
	// QueryOrderByOutTradeNo 查微信侧的权威支付状态
	QueryOrderByOutTradeNo(ctx context.Context, orderNo string) (*payments.Transaction, error)
}

// OpenIDResolver 按用户ID查小程序 openid,由用户模块适配
type OpenIDResolver interface {
	MiniOpenID(ctx context.Context, uid int64) (string, error)
}

// QuoteUnlocker 支付成功后解锁报价单,实现方保证幂等
type QuoteUnlocker interface {
	UnlockByPayment(ctx context.Context, uid int64, quoteID int64) error
}

type Service interface {
	// Prepay 先向微信下单拿 prepay_id,成功后才落 pending 记录,
	// 避免库里出现从未到达微信的支付单
	Prepay(ctx context.Context, p domain.Payment) (domain.PrepayParams, error)
	// HandleWechatCallback 处理已验签的回调事务,幂等
	HandleWechatCallback(ctx context.Context, txn *payments.Transaction) error
	// Confirm 前端主动确认。已支付时补偿执行业务动作;
	// 本地仍是待支付则向微信查单,回调丢了也能把状态补齐
	Confirm(ctx context.Context, uid int64, orderNo string) (domain.Payment, error)
	Query(ctx context.Context, uid int64, orderNo string) (domain.Payment, error)
}

func NewService(repo repository.PaymentRepository,
	gateway PaymentGateway,
	signer *sign.Signer,
	appID string,
	resolver OpenIDResolver,
	unlocker QuoteUnlocker,
	producer event.Producer) Service {
	return &service{
		repo:     repo,
		gateway:  gateway,
		signer:   signer,
		appID:    appID,
		resolver: resolver,
		unlocker: unlocker,
		producer: producer,
		l:        elog.DefaultLogger,
	}
}

type service struct {
	repo     repository.PaymentRepository
	gateway  PaymentGateway
	signer   *sign.Signer
	appID    string
	resolver OpenIDResolver
	unlocker QuoteUnlocker
	producer event.Producer
	l        *elog.Component
}

func (s *service) Prepay(ctx context.Context, p domain.Payment) (domain.PrepayParams, error) {
	if p.OrderNo == "" || p.Description == "" || !p.Type.Valid() || p.RelatedID <= 0 {
		return domain.PrepayParams{}, ErrInvalidInput
	}
	if p.Amount < domain.AmountMin || p.Amount > domain.AmountMax {
		return domain.PrepayParams{}, fmt.Errorf("%w: %d", ErrInvalidAmount, p.Amount)
	}

	openID, err := s.resolver.MiniOpenID(ctx, p.UID)
	if err != nil {
		return domain.PrepayParams{}, fmt.Errorf("查找用户的小程序 openid 失败: %w", err)
	}

	gctx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()
	prepayID, err := s.gateway.Prepay(gctx, p, openID)
	if err != nil {
		return domain.PrepayParams{}, err
	}

	p.PrepayID = prepayID
	p.Status = domain.PaymentStatusPending
	if _, err = s.repo.Create(ctx, p); err != nil {
		return domain.PrepayParams{}, err
	}

	params := domain.PrepayParams{
		AppID:     s.appID,
		TimeStamp: strconv.FormatInt(time.Now().Unix(), 10),
		NonceStr:  sign.NonceStr(),
		Package:   "prepay_id=" + prepayID,
		SignType:  "MD5",
		OrderNo:   p.OrderNo,
	}
	params.PaySign = s.signer.Sign(map[string]string{
		"appId":     params.AppID,
		"timeStamp": params.TimeStamp,
		"nonceStr":  params.NonceStr,
		"package":   params.Package,
		"signType":  params.SignType,
	})
	return params, nil
}

func (s *service) HandleWechatCallback(ctx context.Context, txn *payments.Transaction) error {
	if txn.TradeState == nil || *txn.TradeState != "SUCCESS" {
		s.l.Warn("忽略非成功状态的支付通知",
			elog.Any("tradeState", txn.TradeState))
		return nil
	}
	alreadyPaid, p, err := s.repo.MarkPaid(ctx, *txn.OutTradeNo, *txn.TransactionId)
	if errors.Is(err, dao.ErrDataNotFound) {
		return fmt.Errorf("%w: orderNo=%s", ErrPaymentNotFound, *txn.OutTradeNo)
	}
	if err != nil {
		return err
	}
	// 重复通知:状态早已翻转,不再触发任何副作用
	if alreadyPaid {
		return nil
	}
	s.dispatch(ctx, p)
	evt := event.PaymentEvent{
		OrderNo:   p.OrderNo,
		UID:       p.UID,
		Type:      p.Type.ToUint8(),
		RelatedID: p.RelatedID,
		PaidAt:    p.PaidAt,
	}
	if err = s.producer.ProducePaymentEvent(ctx, evt); err != nil {
		// 消息发送失败不影响支付结果
		s.l.Error("发送支付完成事件失败",
			elog.FieldErr(err),
			elog.String("orderNo", p.OrderNo))
	}
	return nil
}

func (s *service) Confirm(ctx context.Context, uid int64, orderNo string) (domain.Payment, error) {
	p, err := s.Query(ctx, uid, orderNo)
	if err != nil {
		return domain.Payment{}, err
	}
	if p.Status == domain.PaymentStatusPaid {
		// 回调可能丢失,这里补偿一次,业务动作本身幂等
		s.dispatch(ctx, p)
		return p, nil
	}
	// 本地还是待支付,以微信侧查询结果为准
	gctx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()
	txn, err := s.gateway.QueryOrderByOutTradeNo(gctx, orderNo)
	if err != nil {
		// 查单失败不算确认失败,返回本地状态让客户端稍后重试
		s.l.Warn("微信订单查询失败",
			elog.FieldErr(err),
			elog.String("orderNo", orderNo))
		return p, nil
	}
	if err = s.HandleWechatCallback(ctx, txn); err != nil {
		return domain.Payment{}, err
	}
	return s.Query(ctx, uid, orderNo)
}

func (s *service) Query(ctx context.Context, uid int64, orderNo string) (domain.Payment, error) {
	p, err := s.repo.FindByOrderNo(ctx, orderNo, uid)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.Payment{}, fmt.Errorf("%w: orderNo=%s", ErrPaymentNotFound, orderNo)
	}
	return p, err
}

// dispatch 按支付类型执行业务动作。
// 动作失败只记日志,支付状态不回滚
func (s *service) dispatch(ctx context.Context, p domain.Payment) {
	switch p.Type {
	case domain.PaymentTypeUnlockQuote:
		if err := s.unlocker.UnlockByPayment(ctx, p.UID, p.RelatedID); err != nil {
			s.l.Error("解锁报价单失败",
				elog.FieldErr(err),
				elog.String("orderNo", p.OrderNo),
				elog.Int64("quoteID", p.RelatedID))
		}
	case domain.PaymentTypeGenerateContract:
		// 合同生成权限在合同模块按需校验,这里只记录
		s.l.Info("合同生成权限已授予",
			elog.String("orderNo", p.OrderNo),
			elog.Int64("relatedID", p.RelatedID))
	default:
		s.l.Warn("未知支付类型",
			elog.String("orderNo", p.OrderNo),
			elog.Any("type", p.Type))
	}
}
