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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/quotemart/quotemart/internal/order/internal/domain"
	"github.com/quotemart/quotemart/internal/order/internal/repository/dao"
)

type OrderRepository interface {
	Create(ctx context.Context, o domain.Order) (int64, error)
	Update(ctx context.Context, o domain.Order) error
	UpdateDeliveryStatus(ctx context.Context, id int64, from domain.DeliveryStatus, to domain.DeliveryStatus, trackingNumber string) error
	Delete(ctx context.Context, id int64, uid int64) error
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	ListByUID(ctx context.Context, uid int64, offset int, limit int) ([]domain.Order, error)
	TotalByUID(ctx context.Context, uid int64) (int64, error)
	ListByQuoteIDs(ctx context.Context, qids []int64, offset int, limit int) ([]domain.Order, error)
	TotalByQuoteIDs(ctx context.Context, qids []int64) (int64, error)
	CountByQuoteID(ctx context.Context, qid int64) (int64, error)
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{dao: d}
}

type orderRepository struct {
	dao dao.OrderDAO
}

func (r *orderRepository) Create(ctx context.Context, o domain.Order) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(o), r.toProductEntities(o.Products))
}

func (r *orderRepository) Update(ctx context.Context, o domain.Order) error {
	return r.dao.Update(ctx, r.toEntity(o), r.toProductEntities(o.Products))
}

func (r *orderRepository) UpdateDeliveryStatus(ctx context.Context, id int64, from domain.DeliveryStatus, to domain.DeliveryStatus, trackingNumber string) error {
	return r.dao.UpdateDeliveryStatus(ctx, id, from.ToUint8(), to.ToUint8(), trackingNumber)
}

func (r *orderRepository) Delete(ctx context.Context, id int64, uid int64) error {
	return r.dao.Delete(ctx, id, uid)
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	o, products, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	res := r.toDomain(o)
	res.Products = slice.Map(products, func(_ int, src dao.OrderProduct) domain.OrderProduct {
		return r.toProductDomain(src)
	})
	return res, nil
}

func (r *orderRepository) ListByUID(ctx context.Context, uid int64, offset int, limit int) ([]domain.Order, error) {
	os, err := r.dao.ListByUID(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.fillProducts(ctx, os)
}

func (r *orderRepository) TotalByUID(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountByUID(ctx, uid)
}

func (r *orderRepository) ListByQuoteIDs(ctx context.Context, qids []int64, offset int, limit int) ([]domain.Order, error) {
	os, err := r.dao.ListByQuoteIDs(ctx, qids, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.fillProducts(ctx, os)
}

func (r *orderRepository) TotalByQuoteIDs(ctx context.Context, qids []int64) (int64, error) {
	return r.dao.CountByQuoteIDs(ctx, qids)
}

func (r *orderRepository) CountByQuoteID(ctx context.Context, qid int64) (int64, error) {
	return r.dao.CountByQuoteID(ctx, qid)
}

// fillProducts 批量回填产品行,避免逐单查询
func (r *orderRepository) fillProducts(ctx context.Context, os []dao.Order) ([]domain.Order, error) {
	if len(os) == 0 {
		return []domain.Order{}, nil
	}
	oids := slice.Map(os, func(_ int, src dao.Order) int64 {
		return src.Id
	})
	productMap, err := r.dao.FindProductsByOrderIDs(ctx, oids)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(_ int, src dao.Order) domain.Order {
		res := r.toDomain(src)
		res.Products = slice.Map(productMap[src.Id], func(_ int, p dao.OrderProduct) domain.OrderProduct {
			return r.toProductDomain(p)
		})
		return res
	}), nil
}

func (r *orderRepository) toEntity(o domain.Order) dao.Order {
	return dao.Order{
		Id:              o.ID,
		QuoteID:         o.QuoteID,
		Uid:             o.UID,
		CompanyName:     o.CompanyName,
		ContactName:     o.ContactName,
		ContactPhone:    o.ContactPhone,
		RecipientName:   o.RecipientName,
		DeliveryAddress: o.DeliveryAddress,
		Remark:          o.Remark,
		DeliveryStatus:  o.DeliveryStatus.ToUint8(),
		TrackingNumber:  o.TrackingNumber,
	}
}

func (r *orderRepository) toProductEntities(products []domain.OrderProduct) []dao.OrderProduct {
	return slice.Map(products, func(_ int, src domain.OrderProduct) dao.OrderProduct {
		return dao.OrderProduct{
			Name:          src.Name,
			BrandModel:    src.BrandModel,
			FactoryPrice:  src.FactoryPrice,
			DeliveryPrice: src.DeliveryPrice,
			Quantity:      src.Quantity,
			Unit:          src.Unit,
		}
	})
}

func (r *orderRepository) toDomain(o dao.Order) domain.Order {
	return domain.Order{
		ID:              o.Id,
		QuoteID:         o.QuoteID,
		UID:             o.Uid,
		CompanyName:     o.CompanyName,
		ContactName:     o.ContactName,
		ContactPhone:    o.ContactPhone,
		RecipientName:   o.RecipientName,
		DeliveryAddress: o.DeliveryAddress,
		Remark:          o.Remark,
		DeliveryStatus:  domain.DeliveryStatus(o.DeliveryStatus),
		TrackingNumber:  o.TrackingNumber,
		Ctime:           o.Ctime,
		Utime:           o.Utime,
	}
}

func (r *orderRepository) toProductDomain(p dao.OrderProduct) domain.OrderProduct {
	return domain.OrderProduct{
		Name:          p.Name,
		BrandModel:    p.BrandModel,
		FactoryPrice:  p.FactoryPrice,
		DeliveryPrice: p.DeliveryPrice,
		Quantity:      p.Quantity,
		Unit:          p.Unit,
	}
}
