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

	"github.com/quotemart/quotemart/internal/quote/internal/domain"
	"github.com/quotemart/quotemart/internal/quote/internal/repository"
	"github.com/quotemart/quotemart/internal/quote/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidInput     = errors.New("报价信息不完整")
	ErrQuoteNotFound    = errors.New("报价单不存在")
	ErrPermissionDenied = errors.New("无权操作此报价单")
	// ErrQuoteReferenced 报价单已被订单或样品申请引用,禁止删除
	ErrQuoteReferenced = errors.New("报价单已被引用")
)

// ReferenceCounter 统计引用某报价单的下游实体数量。
// 由订单/样品模块在装配时适配,避免 quote 反向依赖它们
type ReferenceCounter interface {
	CountByQuoteID(ctx context.Context, quoteID int64) (int64, error)
}

type Service interface {
	Create(ctx context.Context, q domain.Quote) (int64, error)
	Update(ctx context.Context, q domain.Quote) error
	Delete(ctx context.Context, id int64, uid int64) error
	// Detail 返回报价单详情并累加浏览量
	Detail(ctx context.Context, id int64) (domain.Quote, error)
	FindByID(ctx context.Context, id int64) (domain.Quote, error)
	ListMine(ctx context.Context, uid int64, offset int, limit int) ([]domain.Quote, int64, error)
	ListApproved(ctx context.Context, keyword string, offset int, limit int) ([]domain.Quote, int64, error)
	IDsByOwner(ctx context.Context, uid int64) ([]int64, error)

	// Unlock 幂等:同一买家重复解锁同一报价单不报错也不产生第二条记录
	Unlock(ctx context.Context, uid int64, quoteID int64, method domain.UnlockMethod) error
	IsUnlocked(ctx context.Context, uid int64, quoteID int64) (bool, error)
}

func NewService(repo repository.QuoteRepository, refCounters []ReferenceCounter) Service {
	return &service{repo: repo, refCounters: refCounters}
}

type service struct {
	repo        repository.QuoteRepository
	refCounters []ReferenceCounter
}

func (s *service) Create(ctx context.Context, q domain.Quote) (int64, error) {
	if err := s.validate(q); err != nil {
		return 0, err
	}
	q.Status = domain.QuoteStatusApproved
	return s.repo.Create(ctx, q)
}

func (s *service) Update(ctx context.Context, q domain.Quote) error {
	if err := s.validate(q); err != nil {
		return err
	}
	err := s.repo.Update(ctx, q)
	if errors.Is(err, dao.ErrRowsNotAffected) {
		return fmt.Errorf("%w: id=%d", ErrPermissionDenied, q.ID)
	}
	return err
}

func (s *service) Delete(ctx context.Context, id int64, uid int64) error {
	for _, counter := range s.refCounters {
		count, err := counter.CountByQuoteID(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: id=%d", ErrQuoteReferenced, id)
		}
	}
	err := s.repo.Delete(ctx, id, uid)
	if errors.Is(err, dao.ErrRowsNotAffected) {
		return fmt.Errorf("%w: id=%d", ErrPermissionDenied, id)
	}
	return err
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Quote, error) {
	q, err := s.FindByID(ctx, id)
	if err != nil {
		return domain.Quote{}, err
	}
	// 浏览量非核心数据,失败不影响详情返回
	_ = s.repo.IncrViewCnt(ctx, id)
	return q, nil
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Quote, error) {
	q, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.Quote{}, fmt.Errorf("%w: id=%d", ErrQuoteNotFound, id)
	}
	return q, err
}

func (s *service) ListMine(ctx context.Context, uid int64, offset int, limit int) ([]domain.Quote, int64, error) {
	var (
		eg    errgroup.Group
		qs    []domain.Quote
		total int64
	)
	eg.Go(func() error {
		var err error
		qs, err = s.repo.ListByUID(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalByUID(ctx, uid)
		return err
	})
	return qs, total, eg.Wait()
}

func (s *service) ListApproved(ctx context.Context, keyword string, offset int, limit int) ([]domain.Quote, int64, error) {
	var (
		eg    errgroup.Group
		qs    []domain.Quote
		total int64
	)
	eg.Go(func() error {
		var err error
		qs, err = s.repo.ListApproved(ctx, keyword, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalApproved(ctx, keyword)
		return err
	})
	return qs, total, eg.Wait()
}

func (s *service) IDsByOwner(ctx context.Context, uid int64) ([]int64, error) {
	return s.repo.IDsByUID(ctx, uid)
}

func (s *service) Unlock(ctx context.Context, uid int64, quoteID int64, method domain.UnlockMethod) error {
	return s.repo.CreateUnlockRecord(ctx, domain.UnlockRecord{
		UID:     uid,
		QuoteID: quoteID,
		Method:  method,
	})
}

func (s *service) IsUnlocked(ctx context.Context, uid int64, quoteID int64) (bool, error) {
	return s.repo.IsUnlocked(ctx, uid, quoteID)
}

func (s *service) validate(q domain.Quote) error {
	if q.FactoryName == "" || q.ContactName == "" ||
		q.ContactPhone == "" || q.BusinessScope == "" || len(q.Products) == 0 {
		return ErrInvalidInput
	}
	return nil
}
