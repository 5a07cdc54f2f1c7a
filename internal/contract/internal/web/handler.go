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
	"github.com/quotemart/quotemart/internal/contract/internal/domain"
	"github.com/quotemart/quotemart/internal/contract/internal/service"
	"github.com/quotemart/quotemart/internal/order"
	"github.com/quotemart/quotemart/internal/sample"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/contracts")
	g.POST("/purchase", ginx.BS[GeneratePurchaseReq](h.GeneratePurchase))
	g.POST("/sample", ginx.BS[GenerateSampleReq](h.GenerateSample))
	g.POST("/mine", ginx.BS[ListContractsReq](h.ListMine))
	g.POST("/detail", ginx.BS[DetailReq](h.Detail))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) GeneratePurchase(ctx *ginx.Context, req GeneratePurchaseReq, sess session.Session) (ginx.Result, error) {
	if req.OrderID <= 0 {
		return invalidInputResult, nil
	}
	detail, err := h.svc.GeneratePurchase(ctx.Request.Context(), sess.Claims().Uid, req.OrderID)
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		return invalidInputResult, nil
	case errors.Is(err, order.ErrPermissionDenied):
		return permissionDeniedResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toDetailVO(detail)}, nil
}

func (h *Handler) GenerateSample(ctx *ginx.Context, req GenerateSampleReq, sess session.Session) (ginx.Result, error) {
	if req.SampleID <= 0 {
		return invalidInputResult, nil
	}
	detail, err := h.svc.GenerateSample(ctx.Request.Context(), sess.Claims().Uid, req.SampleID)
	switch {
	case errors.Is(err, sample.ErrSampleNotFound):
		return invalidInputResult, nil
	case errors.Is(err, sample.ErrPermissionDenied):
		return permissionDeniedResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toDetailVO(detail)}, nil
}

func (h *Handler) ListMine(ctx *ginx.Context, req ListContractsReq, sess session.Session) (ginx.Result, error) {
	cs, total, err := h.svc.ListMine(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListContractsResp{
			Total: total,
			Contracts: slice.Map(cs, func(idx int, src domain.Contract) Contract {
				return h.toVO(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailReq, sess session.Session) (ginx.Result, error) {
	detail, err := h.svc.Detail(ctx.Request.Context(), req.ID, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrContractNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toDetailVO(detail)}, nil
}

func (h *Handler) toVO(c domain.Contract) Contract {
	return Contract{
		ID:       c.ID,
		SN:       c.SN,
		Type:     c.Type.ToUint8(),
		OrderID:  c.OrderID,
		SampleID: c.SampleID,
		Ctime:    c.Ctime,
	}
}

func (h *Handler) toDetailVO(d service.Detail) ContractDetail {
	res := ContractDetail{Contract: h.toVO(d.Contract)}
	if d.Order != nil {
		res.Order = h.toOrderVO(*d.Order)
	}
	if d.Sample != nil {
		res.Sample = h.toSampleVO(*d.Sample)
	}
	return res
}

func (h *Handler) toOrderVO(o order.Order) *OrderDetail {
	return &OrderDetail{
		ID:              o.ID,
		FactoryName:     o.FactoryName,
		CompanyName:     o.CompanyName,
		ContactName:     o.ContactName,
		ContactPhone:    o.ContactPhone,
		RecipientName:   o.RecipientName,
		DeliveryAddress: o.DeliveryAddress,
		Remark:          o.Remark,
		Products: slice.Map(o.Products, func(idx int, src order.OrderProduct) OrderProduct {
			return OrderProduct{
				Name:          src.Name,
				BrandModel:    src.BrandModel,
				FactoryPrice:  src.FactoryPrice,
				DeliveryPrice: src.DeliveryPrice,
				Quantity:      src.Quantity,
				Unit:          src.Unit,
			}
		}),
	}
}

func (h *Handler) toSampleVO(s sample.Sample) *SampleDetail {
	return &SampleDetail{
		ID:              s.ID,
		FactoryName:     s.FactoryName,
		CompanyName:     s.CompanyName,
		ContactName:     s.ContactName,
		ContactPhone:    s.ContactPhone,
		RecipientName:   s.RecipientName,
		DeliveryAddress: s.DeliveryAddress,
		Remark:          s.Remark,
		Products: slice.Map(s.Products, func(idx int, src sample.SampleProduct) SampleProduct {
			return SampleProduct{
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
