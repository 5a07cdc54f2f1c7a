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

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/quotemart/quotemart/internal/payment/internal/domain"
	"github.com/quotemart/quotemart/internal/payment/internal/service"
	"github.com/quotemart/quotemart/internal/payment/internal/service/wechat"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
)

var _ ginx.Handler = (*Handler)(nil)

type Handler struct {
	svc     service.Service
	handler wechat.NotifyHandler
	l       *elog.Component
}

func NewHandler(svc service.Service, handler wechat.NotifyHandler) *Handler {
	return &Handler{
		svc:     svc,
		handler: handler,
		l:       elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/payment")
	g.POST("/prepay", ginx.BS[PrepayReq](h.Prepay))
	g.POST("/confirm", ginx.BS[OrderNoReq](h.Confirm))
	g.POST("/query", ginx.BS[OrderNoReq](h.Query))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	// 微信回调,验签由 NotifyHandler 完成
	server.Any("/payment/notify", ginx.W(h.HandleWechatCallback))
}

func (h *Handler) Prepay(ctx *ginx.Context, req PrepayReq, sess session.Session) (ginx.Result, error) {
	params, err := h.svc.Prepay(ctx, domain.Payment{
		OrderNo:     req.OrderNo,
		UID:         sess.Claims().Uid,
		Amount:      req.Amount,
		Description: req.Description,
		Type:        domain.PaymentType(req.Type),
		RelatedID:   req.RelatedID,
	})
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult, nil
	case errors.Is(err, service.ErrInvalidAmount):
		return invalidAmountResult, nil
	case errors.Is(err, service.ErrDuplicateOrderNo):
		return duplicateOrderNoResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: PrepayResp{
			AppID:     params.AppID,
			TimeStamp: params.TimeStamp,
			NonceStr:  params.NonceStr,
			Package:   params.Package,
			SignType:  params.SignType,
			PaySign:   params.PaySign,
			OrderNo:   params.OrderNo,
		},
	}, nil
}

func (h *Handler) HandleWechatCallback(ctx *ginx.Context) (ginx.Result, error) {
	txn := &payments.Transaction{}
	_, err := h.handler.ParseNotifyRequest(ctx, ctx.Request, txn)
	if err != nil {
		return ginx.Result{}, err
	}
	err = h.svc.HandleWechatCallback(ctx, txn)
	return ginx.Result{}, err
}

func (h *Handler) Confirm(ctx *ginx.Context, req OrderNoReq, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.Confirm(ctx, sess.Claims().Uid, req.OrderNo)
	switch {
	case errors.Is(err, service.ErrPaymentNotFound):
		return paymentNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	if p.Status != domain.PaymentStatusPaid {
		// 对账之后仍未支付,带上当前状态让前端继续轮询
		res := notPaidResult
		res.Data = newPayment(p)
		return res, nil
	}
	return ginx.Result{Data: newPayment(p)}, nil
}

func (h *Handler) Query(ctx *ginx.Context, req OrderNoReq, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.Query(ctx, sess.Claims().Uid, req.OrderNo)
	switch {
	case errors.Is(err, service.ErrPaymentNotFound):
		return paymentNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newPayment(p)}, nil
}
