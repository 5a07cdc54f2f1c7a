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
	"github.com/quotemart/quotemart/internal/quote"
	"github.com/quotemart/quotemart/internal/sample/internal/domain"
	"github.com/quotemart/quotemart/internal/sample/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/samples")
	g.POST("/create", ginx.BS[SaveSampleReq](h.Create))
	g.POST("/update", ginx.BS[SaveSampleReq](h.Update))
	g.POST("/delivery", ginx.BS[UpdateDeliveryReq](h.UpdateDelivery))
	g.POST("/delete", ginx.BS[DeleteSampleReq](h.Delete))
	g.POST("/mine", ginx.BS[ListSamplesReq](h.ListMine))
	g.POST("/received", ginx.BS[ListSamplesReq](h.ListReceived))
	g.POST("/detail", ginx.BS[DetailReq](h.Detail))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Create(ctx *ginx.Context, req SaveSampleReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Create(ctx.Request.Context(), h.toDomain(req, sess.Claims().Uid))
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult, nil
	case errors.Is(err, quote.ErrQuoteNotFound):
		return invalidInputResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: SaveSampleResp{ID: id}}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req SaveSampleReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Update(ctx.Request.Context(), h.toDomain(req, sess.Claims().Uid))
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult, nil
	case errors.Is(err, service.ErrSampleNotEditable):
		return notEditableResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) UpdateDelivery(ctx *ginx.Context, req UpdateDeliveryReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateDeliveryStatus(ctx.Request.Context(), sess.Claims().Uid,
		req.ID, domain.DeliveryStatus(req.DeliveryStatus), req.TrackingNumber)
	switch {
	case errors.Is(err, service.ErrSampleNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, nil
	case errors.Is(err, service.ErrInvalidStatusTransition):
		return invalidTransitionResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req DeleteSampleReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.ID, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ListMine(ctx *ginx.Context, req ListSamplesReq, sess session.Session) (ginx.Result, error) {
	ss, total, err := h.svc.ListMine(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListSamplesResp{
			Total: total,
			Samples: slice.Map(ss, func(idx int, src domain.Sample) Sample {
				return h.toVO(src)
			}),
		},
	}, nil
}

func (h *Handler) ListReceived(ctx *ginx.Context, req ListSamplesReq, sess session.Session) (ginx.Result, error) {
	ss, total, err := h.svc.ListReceived(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListSamplesResp{
			Total: total,
			Samples: slice.Map(ss, func(idx int, src domain.Sample) Sample {
				return h.toVO(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailReq, sess session.Session) (ginx.Result, error) {
	s, err := h.svc.Detail(ctx.Request.Context(), req.ID, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrSampleNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: DetailResp{Sample: h.toVO(s)}}, nil
}

func (h *Handler) toDomain(req SaveSampleReq, uid int64) domain.Sample {
	return domain.Sample{
		ID:              req.ID,
		QuoteID:         req.QuoteID,
		UID:             uid,
		CompanyName:     req.CompanyName,
		ContactName:     req.ContactName,
		ContactPhone:    req.ContactPhone,
		RecipientName:   req.RecipientName,
		DeliveryAddress: req.DeliveryAddress,
		Remark:          req.Remark,
		Products: slice.Map(req.Products, func(idx int, src SampleProduct) domain.SampleProduct {
			return domain.SampleProduct{
				Name:         src.Name,
				BrandModel:   src.BrandModel,
				FactoryPrice: src.FactoryPrice,
				Quantity:     src.Quantity,
				Unit:         src.Unit,
				Purpose:      src.Purpose,
			}
		}),
	}
}

func (h *Handler) toVO(s domain.Sample) Sample {
	return Sample{
		ID:              s.ID,
		QuoteID:         s.QuoteID,
		FactoryName:     s.FactoryName,
		CompanyName:     s.CompanyName,
		ContactName:     s.ContactName,
		ContactPhone:    s.ContactPhone,
		RecipientName:   s.RecipientName,
		DeliveryAddress: s.DeliveryAddress,
		Remark:          s.Remark,
		DeliveryStatus:  s.DeliveryStatus.ToUint8(),
		TrackingNumber:  s.TrackingNumber,
		Products: slice.Map(s.Products, func(idx int, src domain.SampleProduct) SampleProduct {
			return SampleProduct{
				Name:         src.Name,
				BrandModel:   src.BrandModel,
				FactoryPrice: src.FactoryPrice,
				Quantity:     src.Quantity,
				Unit:         src.Unit,
				Purpose:      src.Purpose,
			}
		}),
		Ctime: s.Ctime,
		Utime: s.Utime,
	}
}
