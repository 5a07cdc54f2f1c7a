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
	"github.com/quotemart/quotemart/internal/sample/internal/domain"
	"github.com/quotemart/quotemart/internal/sample/internal/repository/dao"
)

type SampleRepository interface {
	Create(ctx context.Context, s domain.Sample) (int64, error)
	Update(ctx context.Context, s domain.Sample) error
	UpdateDeliveryStatus(ctx context.Context, id int64, from domain.DeliveryStatus, to domain.DeliveryStatus, trackingNumber string) error
	Delete(ctx context.Context, id int64, uid int64) error
	FindByID(ctx context.Context, id int64) (domain.Sample, error)
	ListByUID(ctx context.Context, uid int64, offset int, limit int) ([]domain.Sample, error)
	TotalByUID(ctx context.Context, uid int64) (int64, error)
	ListByQuoteIDs(ctx context.Context, qids []int64, offset int, limit int) ([]domain.Sample, error)
	TotalByQuoteIDs(ctx context.Context, qids []int64) (int64, error)
	CountByQuoteID(ctx context.Context, qid int64) (int64, error)
}

func NewRepository(d dao.SampleDAO) SampleRepository {
	return &sampleRepository{dao: d}
}

type sampleRepository struct {
	dao dao.SampleDAO
}

func (r *sampleRepository) Create(ctx context.Context, s domain.Sample) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(s), r.toProductEntities(s.Products))
}

func (r *sampleRepository) Update(ctx context.Context, s domain.Sample) error {
	return r.dao.Update(ctx, r.toEntity(s), r.toProductEntities(s.Products))
}

func (r *sampleRepository) UpdateDeliveryStatus(ctx context.Context, id int64, from domain.DeliveryStatus, to domain.DeliveryStatus, trackingNumber string) error {
	return r.dao.UpdateDeliveryStatus(ctx, id, from.ToUint8(), to.ToUint8(), trackingNumber)
}

func (r *sampleRepository) Delete(ctx context.Context, id int64, uid int64) error {
	return r.dao.Delete(ctx, id, uid)
}

func (r *sampleRepository) FindByID(ctx context.Context, id int64) (domain.Sample, error) {
	s, products, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Sample{}, err
	}
	res := r.toDomain(s)
	res.Products = slice.Map(products, func(_ int, src dao.SampleProduct) domain.SampleProduct {
		return r.toProductDomain(src)
	})
	return res, nil
}

func (r *sampleRepository) ListByUID(ctx context.Context, uid int64, offset int, limit int) ([]domain.Sample, error) {
	ss, err := r.dao.ListByUID(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.fillProducts(ctx, ss)
}

func (r *sampleRepository) TotalByUID(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountByUID(ctx, uid)
}

func (r *sampleRepository) ListByQuoteIDs(ctx context.Context, qids []int64, offset int, limit int) ([]domain.Sample, error) {
	ss, err := r.dao.ListByQuoteIDs(ctx, qids, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.fillProducts(ctx, ss)
}

func (r *sampleRepository) TotalByQuoteIDs(ctx context.Context, qids []int64) (int64, error) {
	return r.dao.CountByQuoteIDs(ctx, qids)
}

func (r *sampleRepository) CountByQuoteID(ctx context.Context, qid int64) (int64, error) {
	return r.dao.CountByQuoteID(ctx, qid)
}

func (r *sampleRepository) fillProducts(ctx context.Context, ss []dao.Sample) ([]domain.Sample, error) {
	if len(ss) == 0 {
		return []domain.Sample{}, nil
	}
	sids := slice.Map(ss, func(_ int, src dao.Sample) int64 {
		return src.Id
	})
	productMap, err := r.dao.FindProductsBySampleIDs(ctx, sids)
	if err != nil {
		return nil, err
	}
	return slice.Map(ss, func(_ int, src dao.Sample) domain.Sample {
		res := r.toDomain(src)
		res.Products = slice.Map(productMap[src.Id], func(_ int, p dao.SampleProduct) domain.SampleProduct {
			return r.toProductDomain(p)
		})
		return res
	}), nil
}

func (r *sampleRepository) toEntity(s domain.Sample) dao.Sample {
	return dao.Sample{
		Id:              s.ID,
		QuoteID:         s.QuoteID,
		Uid:             s.UID,
		CompanyName:     s.CompanyName,
		ContactName:     s.ContactName,
		ContactPhone:    s.ContactPhone,
		RecipientName:   s.RecipientName,
		DeliveryAddress: s.DeliveryAddress,
		Remark:          s.Remark,
		DeliveryStatus:  s.DeliveryStatus.ToUint8(),
		TrackingNumber:  s.TrackingNumber,
	}
}

func (r *sampleRepository) toProductEntities(products []domain.SampleProduct) []dao.SampleProduct {
	return slice.Map(products, func(_ int, src domain.SampleProduct) dao.SampleProduct {
		return dao.SampleProduct{
			Name:         src.Name,
			BrandModel:   src.BrandModel,
			FactoryPrice: src.FactoryPrice,
			Quantity:     src.Quantity,
			Unit:         src.Unit,
			Purpose:      src.Purpose,
		}
	})
}

func (r *sampleRepository) toDomain(s dao.Sample) domain.Sample {
	return domain.Sample{
		ID:              s.Id,
		QuoteID:         s.QuoteID,
		UID:             s.Uid,
		CompanyName:     s.CompanyName,
		ContactName:     s.ContactName,
		ContactPhone:    s.ContactPhone,
		RecipientName:   s.RecipientName,
		DeliveryAddress: s.DeliveryAddress,
		Remark:          s.Remark,
		DeliveryStatus:  domain.DeliveryStatus(s.DeliveryStatus),
		TrackingNumber:  s.TrackingNumber,
		Ctime:           s.Ctime,
		Utime:           s.Utime,
	}
}

func (r *sampleRepository) toProductDomain(p dao.SampleProduct) domain.SampleProduct {
	return domain.SampleProduct{
		Name:         p.Name,
		BrandModel:   p.BrandModel,
		FactoryPrice: p.FactoryPrice,
		Quantity:     p.Quantity,
		Unit:         p.Unit,
		Purpose:      p.Purpose,
	}
}
