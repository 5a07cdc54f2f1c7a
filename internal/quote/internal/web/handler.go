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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/quotemart/quotemart/internal/quote/internal/domain"
	"github.com/quotemart/quotemart/internal/quote/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/quotes")
	g.POST("/create", ginx.BS[SaveQuoteReq](h.Create))
	g.POST("/update", ginx.BS[SaveQuoteReq](h.Update))
	g.POST("/delete", ginx.BS[DeleteQuoteReq](h.Delete))
	g.POST("/list", ginx.BS[ListQuotesReq](h.List))
	g.POST("/mine", ginx.BS[ListMineReq](h.ListMine))
	g.POST("/detail", ginx.BS[DetailReq](h.Detail))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Create(ctx *ginx.Context, req SaveQuoteReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Create(ctx.Request.Context(), h.toDomain(req, sess.Claims().Uid))
	if errors.Is(err, service.ErrInvalidInput) {
		return invalidInputResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: SaveQuoteResp{ID: id}}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req SaveQuoteReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Update(ctx.Request.Context(), h.toDomain(req, sess.Claims().Uid))
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult, nil
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req DeleteQuoteReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.ID, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrQuoteReferenced):
		return referencedResult, nil
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListQuotesReq, _ session.Session) (ginx.Result, error) {
	qs, total, err := h.svc.ListApproved(ctx.Request.Context(), req.Keyword, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListQuotesResp{
			Total: total,
			Quotes: slice.Map(qs, func(idx int, src domain.Quote) Quote {
				// 列表页不展示联系方式,不逐条查解锁状态
				return h.toVO(src, false)
			}),
		},
	}, nil
}

func (h *Handler) ListMine(ctx *ginx.Context, req ListMineReq, sess session.Session) (ginx.Result, error) {
	qs, total, err := h.svc.ListMine(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListQuotesResp{
			Total: total,
			Quotes: slice.Map(qs, func(idx int, src domain.Quote) Quote {
				return h.toVO(src, true)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	q, err := h.svc.Detail(ctx.Request.Context(), req.ID)
	if errors.Is(err, service.ErrQuoteNotFound) {
		return notFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	visible := q.UID == uid
	if !visible {
		visible, err = h.svc.IsUnlocked(ctx.Request.Context(), uid, q.ID)
		if err != nil {
			return systemErrorResult, err
		}
	}
	return ginx.Result{Data: DetailResp{Quote: h.toVO(q, visible)}}, nil
}

func (h *Handler) toDomain(req SaveQuoteReq, uid int64) domain.Quote {
	return domain.Quote{
		ID:            req.ID,
		UID:           uid,
		FactoryName:   req.FactoryName,
		ContactName:   req.ContactName,
		ContactPhone:  req.ContactPhone,
		ContactEmail:  req.ContactEmail,
		BusinessScope: req.BusinessScope,
		CustomNotice:  req.CustomNotice,
		Products: slice.Map(req.Products, func(idx int, src QuoteProduct) domain.QuoteProduct {
			return domain.QuoteProduct{
				Name:          src.Name,
				BrandModel:    src.BrandModel,
				FactoryPrice:  src.FactoryPrice,
				DeliveryPrice: src.DeliveryPrice,
				MinOrder:      src.MinOrder,
				Unit:          src.Unit,
			}
		}),
	}
}

func (h *Handler) toVO(q domain.Quote, contactVisible bool) Quote {
	res := Quote{
		ID:            q.ID,
		FactoryName:   q.FactoryName,
		BusinessScope: q.BusinessScope,
		CustomNotice:  q.CustomNotice,
		Status:        q.Status.ToUint8(),
		ViewCnt:       q.ViewCnt,
		Unlocked:      contactVisible,
		Products: slice.Map(q.Products, func(idx int, src domain.QuoteProduct) QuoteProduct {
			return QuoteProduct{
				Name:          src.Name,
				BrandModel:    src.BrandModel,
				FactoryPrice:  src.FactoryPrice,
				DeliveryPrice: src.DeliveryPrice,
				MinOrder:      src.MinOrder,
				Unit:          src.Unit,
			}
		}),
		Ctime: q.Ctime,
		Utime: q.Utime,
	}
	if contactVisible {
		res.ContactName = q.ContactName
		res.ContactPhone = q.ContactPhone
		res.ContactEmail = q.ContactEmail
	}
	return res
}
