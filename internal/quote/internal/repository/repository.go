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
	"github.com/quotemart/quotemart/internal/quote/internal/domain"
	"github.com/quotemart/quotemart/internal/quote/internal/repository/cache"
	"github.com/quotemart/quotemart/internal/quote/internal/repository/dao"
)

type QuoteRepository interface {
	Create(ctx context.Context, q domain.Quote) (int64, error)
	Update(ctx context.Context, q domain.Quote) error
	Delete(ctx context.Context, id int64, uid int64) error
	FindByID(ctx context.Context, id int64) (domain.Quote, error)
	ListByUID(ctx context.Context, uid int64, offset int, limit int) ([]domain.Quote, error)
	TotalByUID(ctx context.Context, uid int64) (int64, error)
	ListApproved(ctx context.Context, keyword string, offset int, limit int) ([]domain.Quote, error)
	TotalApproved(ctx context.Context, keyword string) (int64, error)
	IDsByUID(ctx context.Context, uid int64) ([]int64, error)
	IncrViewCnt(ctx context.Context, id int64) error

	CreateUnlockRecord(ctx context.Context, r domain.UnlockRecord) error
	IsUnlocked(ctx context.Context, uid int64, qid int64) (bool, error)
}

func NewRepository(d dao.QuoteDAO, c cache.QuoteCache) QuoteRepository {
	return &quoteRepository{d: d, cache: c}
}

type quoteRepository struct {
	d     dao.QuoteDAO
	cache cache.QuoteCache
}

func (r *quoteRepository) Create(ctx context.Context, q domain.Quote) (int64, error) {
	return r.d.Create(ctx, r.toEntity(q), r.toProductEntities(q.Products))
}

func (r *quoteRepository) Update(ctx context.Context, q domain.Quote) error {
	err := r.d.Update(ctx, r.toEntity(q), r.toProductEntities(q.Products))
	if err != nil {
		return err
	}
	return r.cache.Delete(ctx, q.ID)
}

func (r *quoteRepository) Delete(ctx context.Context, id int64, uid int64) error {
	err := r.d.Delete(ctx, id, uid)
	if err != nil {
		return err
	}
	return r.cache.Delete(ctx, id)
}

func (r *quoteRepository) FindByID(ctx context.Context, id int64) (domain.Quote, error) {
	res, err := r.cache.Get(ctx, id)
	if err == nil {
		return res, nil
	}
	q, products, err := r.d.FindByID(ctx, id)
	if err != nil {
		return domain.Quote{}, err
	}
	res = r.toDomain(q)
	res.Products = r.toProductDomains(products)
	// 忽略掉这里的错误
	_ = r.cache.Set(ctx, res)
	return res, nil
}

func (r *quoteRepository) ListByUID(ctx context.Context, uid int64, offset int, limit int) ([]domain.Quote, error) {
	qs, err := r.d.ListByUID(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.fillProducts(ctx, qs)
}

func (r *quoteRepository) TotalByUID(ctx context.Context, uid int64) (int64, error) {
	return r.d.CountByUID(ctx, uid)
}

func (r *quoteRepository) ListApproved(ctx context.Context, keyword string, offset int, limit int) ([]domain.Quote, error) {
	qs, err := r.d.ListApproved(ctx, keyword, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.fillProducts(ctx, qs)
}

func (r *quoteRepository) TotalApproved(ctx context.Context, keyword string) (int64, error) {
	return r.d.CountApproved(ctx, keyword)
}

func (r *quoteRepository) IDsByUID(ctx context.Context, uid int64) ([]int64, error) {
	return r.d.IDsByUID(ctx, uid)
}

func (r *quoteRepository) IncrViewCnt(ctx context.Context, id int64) error {
	return r.d.IncrViewCnt(ctx, id)
}

func (r *quoteRepository) CreateUnlockRecord(ctx context.Context, rec domain.UnlockRecord) error {
	return r.d.InsertUnlockRecord(ctx, dao.UnlockRecord{
		Uid:     rec.UID,
		QuoteID: rec.QuoteID,
		Method:  rec.Method.ToUint8(),
	})
}

func (r *quoteRepository) IsUnlocked(ctx context.Context, uid int64, qid int64) (bool, error) {
	count, err := r.d.CountUnlockRecords(ctx, uid, qid)
	return count > 0, err
}

func (r *quoteRepository) fillProducts(ctx context.Context, qs []dao.Quote) ([]domain.Quote, error) {
	if len(qs) == 0 {
		return []domain.Quote{}, nil
	}
	qids := slice.Map(qs, func(idx int, src dao.Quote) int64 {
		return src.Id
	})
	productMap, err := r.d.FindProductsByQuoteIDs(ctx, qids)
	if err != nil {
		return nil, err
	}
	return slice.Map(qs, func(idx int, src dao.Quote) domain.Quote {
		res := r.toDomain(src)
		res.Products = r.toProductDomains(productMap[src.Id])
		return res
	}), nil
}

func (r *quoteRepository) toEntity(q domain.Quote) dao.Quote {
	return dao.Quote{
		Id:            q.ID,
		Uid:           q.UID,
		FactoryName:   q.FactoryName,
		ContactName:   q.ContactName,
		ContactPhone:  q.ContactPhone,
		ContactEmail:  q.ContactEmail,
		BusinessScope: q.BusinessScope,
		CustomNotice:  q.CustomNotice,
		Status:        q.Status.ToUint8(),
	}
}

func (r *quoteRepository) toProductEntities(products []domain.QuoteProduct) []dao.QuoteProduct {
	return slice.Map(products, func(idx int, src domain.QuoteProduct) dao.QuoteProduct {
		return dao.QuoteProduct{
			Name:          src.Name,
			BrandModel:    src.BrandModel,
			FactoryPrice:  src.FactoryPrice,
			DeliveryPrice: src.DeliveryPrice,
			MinOrder:      src.MinOrder,
			Unit:          src.Unit,
		}
	})
}

func (r *quoteRepository) toDomain(q dao.Quote) domain.Quote {
	return domain.Quote{
		ID:            q.Id,
		UID:           q.Uid,
		FactoryName:   q.FactoryName,
		ContactName:   q.ContactName,
		ContactPhone:  q.ContactPhone,
		ContactEmail:  q.ContactEmail,
		BusinessScope: q.BusinessScope,
		CustomNotice:  q.CustomNotice,
		Status:        domain.QuoteStatus(q.Status),
		ViewCnt:       q.ViewCnt,
		Ctime:         q.Ctime,
		Utime:         q.Utime,
	}
}

func (r *quoteRepository) toProductDomains(products []dao.QuoteProduct) []domain.QuoteProduct {
	return slice.Map(products, func(idx int, src dao.QuoteProduct) domain.QuoteProduct {
		return domain.QuoteProduct{
			Name:          src.Name,
			BrandModel:    src.BrandModel,
			FactoryPrice:  src.FactoryPrice,
			DeliveryPrice: src.DeliveryPrice,
			MinOrder:      src.MinOrder,
			Unit:          src.Unit,
		}
	})
}
