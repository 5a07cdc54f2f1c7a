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

	"github.com/quotemart/quotemart/internal/quote"
	"github.com/quotemart/quotemart/internal/sample/internal/domain"
	"github.com/quotemart/quotemart/internal/sample/internal/repository"
	"github.com/quotemart/quotemart/internal/sample/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidInput     = errors.New("试样信息不完整")
	ErrSampleNotFound   = errors.New("试样申请不存在")
	ErrPermissionDenied = errors.New("无权操作此试样申请")
	// ErrSampleNotEditable 申请不存在、非本人或已进入配送流程
	ErrSampleNotEditable       = errors.New("试样申请不可修改")
	ErrInvalidStatusTransition = errors.New("配送状态迁移非法")
)

type Service interface {
	Create(ctx context.Context, s domain.Sample) (int64, error)
	// Update 申请方只能修改自己名下仍处于待发货状态的申请
	Update(ctx context.Context, s domain.Sample) error
	// UpdateDeliveryStatus 只有报价单发布方可以推进配送状态
	UpdateDeliveryStatus(ctx context.Context, actorUID int64, sampleID int64,
		target domain.DeliveryStatus, trackingNumber string) error
	Delete(ctx context.Context, id int64, uid int64) error
	// Detail 申请方和报价单发布方可见
	Detail(ctx context.Context, id int64, uid int64) (domain.Sample, error)
	FindByID(ctx context.Context, id int64) (domain.Sample, error)
	ListMine(ctx context.Context, uid int64, offset int, limit int) ([]domain.Sample, int64, error)
	// ListReceived 工厂侧视角:落在我发布的报价单上的所有试样申请
	ListReceived(ctx context.Context, uid int64, offset int, limit int) ([]domain.Sample, int64, error)
	CountByQuoteID(ctx context.Context, quoteID int64) (int64, error)
}

func NewService(repo repository.SampleRepository, quoteSvc quote.Service) Service {
	return &service{repo: repo, quoteSvc: quoteSvc}
}

type service struct {
	repo     repository.SampleRepository
	quoteSvc quote.Service
}

func (s *service) Create(ctx context.Context, sp domain.Sample) (int64, error) {
	if err := s.validate(sp); err != nil {
		return 0, err
	}
	_, err := s.quoteSvc.FindByID(ctx, sp.QuoteID)
	if err != nil {
		return 0, err
	}
	sp.DeliveryStatus = domain.DeliveryStatusPending
	return s.repo.Create(ctx, sp)
}

func (s *service) Update(ctx context.Context, sp domain.Sample) error {
	if err := s.validate(sp); err != nil {
		return err
	}
	err := s.repo.Update(ctx, sp)
	if errors.Is(err, dao.ErrRowsNotAffected) {
		return fmt.Errorf("%w: id=%d", ErrSampleNotEditable, sp.ID)
	}
	return err
}

func (s *service) UpdateDeliveryStatus(ctx context.Context, actorUID int64, sampleID int64,
	target domain.DeliveryStatus, trackingNumber string) error {
	sp, err := s.FindByID(ctx, sampleID)
	if err != nil {
		return err
	}
	q, err := s.quoteSvc.FindByID(ctx, sp.QuoteID)
	if err != nil {
		return err
	}
	if q.UID != actorUID {
		return fmt.Errorf("%w: uid=%d, sample=%d", ErrPermissionDenied, actorUID, sampleID)
	}
	if !sp.DeliveryStatus.CanTransitionTo(target) {
		return fmt.Errorf("%w: %d -> %d", ErrInvalidStatusTransition, sp.DeliveryStatus, target)
	}
	err = s.repo.UpdateDeliveryStatus(ctx, sampleID, sp.DeliveryStatus, target, trackingNumber)
	if errors.Is(err, dao.ErrRowsNotAffected) {
		// 读取和更新之间状态被并发请求推进了
		return fmt.Errorf("%w: %d -> %d", ErrInvalidStatusTransition, sp.DeliveryStatus, target)
	}
	return err
}

func (s *service) Delete(ctx context.Context, id int64, uid int64) error {
	err := s.repo.Delete(ctx, id, uid)
	if errors.Is(err, dao.ErrRowsNotAffected) {
		return fmt.Errorf("%w: id=%d", ErrPermissionDenied, id)
	}
	return err
}

func (s *service) Detail(ctx context.Context, id int64, uid int64) (domain.Sample, error) {
	sp, err := s.FindByID(ctx, id)
	if err != nil {
		return domain.Sample{}, err
	}
	q, err := s.quoteSvc.FindByID(ctx, sp.QuoteID)
	if err != nil {
		return domain.Sample{}, err
	}
	if sp.UID != uid && q.UID != uid {
		return domain.Sample{}, fmt.Errorf("%w: uid=%d, sample=%d", ErrPermissionDenied, uid, id)
	}
	sp.FactoryName = q.FactoryName
	return sp, nil
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Sample, error) {
	sp, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.Sample{}, fmt.Errorf("%w: id=%d", ErrSampleNotFound, id)
	}
	return sp, err
}

func (s *service) ListMine(ctx context.Context, uid int64, offset int, limit int) ([]domain.Sample, int64, error) {
	var (
		eg    errgroup.Group
		ss    []domain.Sample
		total int64
	)
	eg.Go(func() error {
		var err error
		ss, err = s.repo.ListByUID(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalByUID(ctx, uid)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return s.fillFactoryNames(ctx, ss), total, nil
}

func (s *service) ListReceived(ctx context.Context, uid int64, offset int, limit int) ([]domain.Sample, int64, error) {
	qids, err := s.quoteSvc.IDsByOwner(ctx, uid)
	if err != nil {
		return nil, 0, err
	}
	if len(qids) == 0 {
		return []domain.Sample{}, 0, nil
	}
	var (
		eg    errgroup.Group
		ss    []domain.Sample
		total int64
	)
	eg.Go(func() error {
		var err error
		ss, err = s.repo.ListByQuoteIDs(ctx, qids, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalByQuoteIDs(ctx, qids)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return s.fillFactoryNames(ctx, ss), total, nil
}

func (s *service) CountByQuoteID(ctx context.Context, quoteID int64) (int64, error) {
	return s.repo.CountByQuoteID(ctx, quoteID)
}

// fillFactoryNames 回填厂名,单个报价单查询失败只留空不阻断列表
func (s *service) fillFactoryNames(ctx context.Context, ss []domain.Sample) []domain.Sample {
	names := make(map[int64]string, len(ss))
	for i, sp := range ss {
		name, ok := names[sp.QuoteID]
		if !ok {
			q, err := s.quoteSvc.FindByID(ctx, sp.QuoteID)
			if err == nil {
				name = q.FactoryName
			}
			names[sp.QuoteID] = name
		}
		ss[i].FactoryName = name
	}
	return ss
}

func (s *service) validate(sp domain.Sample) error {
	if sp.QuoteID <= 0 || sp.CompanyName == "" || sp.ContactName == "" ||
		sp.ContactPhone == "" || sp.RecipientName == "" ||
		sp.DeliveryAddress == "" || len(sp.Products) == 0 {
		return ErrInvalidInput
	}
	return nil
}
