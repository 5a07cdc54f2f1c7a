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

	"github.com/quotemart/quotemart/internal/order/internal/domain"
	"github.com/quotemart/quotemart/internal/order/internal/repository"
	"github.com/quotemart/quotemart/internal/order/internal/repository/dao"
	"github.com/quotemart/quotemart/internal/quote"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidInput     = errors.New("订单信息不完整")
	ErrOrderNotFound    = errors.New("订单不存在")
	ErrPermissionDenied = errors.New("无权操作此订单")
	// ErrOrderNotEditable 订单不存在、非本人或已进入配送流程
	ErrOrderNotEditable = errors.New("订单不可修改")
	// ErrInvalidStatusTransition 配送状态不允许这样迁移
	ErrInvalidStatusTransition = errors.New("配送状态迁移非法")
)

type Service interface {
	// Create 校验所引用的报价单存在后落库,初始状态为待发货
	Create(ctx context.Context, o domain.Order) (int64, error)
	// Update 买家只能修改自己名下仍处于待发货状态的订单
	Update(ctx context.Context, o domain.Order) error
	// UpdateDeliveryStatus 只有报价单发布方可以推进配送状态,
	// 且迁移必须符合状态机
	UpdateDeliveryStatus(ctx context.Context, actorUID int64, orderID int64,
		target domain.DeliveryStatus, trackingNumber string) error
	Delete(ctx context.Context, id int64, uid int64) error
	// Detail 买家和报价单发布方可见,其余人拒绝
	Detail(ctx context.Context, id int64, uid int64) (domain.Order, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	ListMine(ctx context.Context, uid int64, offset int, limit int) ([]domain.Order, int64, error)
	// ListReceived 工厂侧视角:落在我发布的报价单上的所有订单
	ListReceived(ctx context.Context, uid int64, offset int, limit int) ([]domain.Order, int64, error)
	CountByQuoteID(ctx context.Context, quoteID int64) (int64, error)
}

func NewService(repo repository.OrderRepository, quoteSvc quote.Service) Service {
	return &service{repo: repo, quoteSvc: quoteSvc}
}

type service struct {
	repo     repository.OrderRepository
	quoteSvc quote.Service
}

func (s *service) Create(ctx context.Context, o domain.Order) (int64, error) {
	if err := s.validate(o); err != nil {
		return 0, err
	}
	// 报价单必须存在,错误原样向上抛
	_, err := s.quoteSvc.FindByID(ctx, o.QuoteID)
	if err != nil {
		return 0, err
	}
	o.DeliveryStatus = domain.DeliveryStatusPending
	return s.repo.Create(ctx, o)
}

func (s *service) Update(ctx context.Context, o domain.Order) error {
	if err := s.validate(o); err != nil {
		return err
	}
	err := s.repo.Update(ctx, o)
	if errors.Is(err, dao.ErrRowsNotAffected) {
		return fmt.Errorf("%w: id=%d", ErrOrderNotEditable, o.ID)
	}
	return err
}

func (s *service) UpdateDeliveryStatus(ctx context.Context, actorUID int64, orderID int64,
	target domain.DeliveryStatus, trackingNumber string) error {
	o, err := s.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	q, err := s.quoteSvc.FindByID(ctx, o.QuoteID)
	if err != nil {
		return err
	}
	if q.UID != actorUID {
		return fmt.Errorf("%w: uid=%d, order=%d", ErrPermissionDenied, actorUID, orderID)
	}
	if !o.DeliveryStatus.CanTransitionTo(target) {
		return fmt.Errorf("%w: %d -> %d", ErrInvalidStatusTransition, o.DeliveryStatus, target)
	}
	err = s.repo.UpdateDeliveryStatus(ctx, orderID, o.DeliveryStatus, target, trackingNumber)
	if errors.Is(err, dao.ErrRowsNotAffected) {
		// 读取和更新之间状态被并发请求推进了
		return fmt.Errorf("%w: %d -> %d", ErrInvalidStatusTransition, o.DeliveryStatus, target)
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

func (s *service) Detail(ctx context.Context, id int64, uid int64) (domain.Order, error) {
	o, err := s.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	q, err := s.quoteSvc.FindByID(ctx, o.QuoteID)
	if err != nil {
		return domain.Order{}, err
	}
	if o.UID != uid && q.UID != uid {
		return domain.Order{}, fmt.Errorf("%w: uid=%d, order=%d", ErrPermissionDenied, uid, id)
	}
	o.FactoryName = q.FactoryName
	return o, nil
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	o, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.Order{}, fmt.Errorf("%w: id=%d", ErrOrderNotFound, id)
	}
	return o, err
}

func (s *service) ListMine(ctx context.Context, uid int64, offset int, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListByUID(ctx, uid, offset, limit)
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
	return s.fillFactoryNames(ctx, os), total, nil
}

func (s *service) ListReceived(ctx context.Context, uid int64, offset int, limit int) ([]domain.Order, int64, error) {
	qids, err := s.quoteSvc.IDsByOwner(ctx, uid)
	if err != nil {
		return nil, 0, err
	}
	// 没发布过报价单就不可能收到订单
	if len(qids) == 0 {
		return []domain.Order{}, 0, nil
	}
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListByQuoteIDs(ctx, qids, offset, limit)
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
	return s.fillFactoryNames(ctx, os), total, nil
}

func (s *service) CountByQuoteID(ctx context.Context, quoteID int64) (int64, error) {
	return s.repo.CountByQuoteID(ctx, quoteID)
}

// fillFactoryNames 回填厂名,单个报价单查询失败只留空不阻断列表
func (s *service) fillFactoryNames(ctx context.Context, os []domain.Order) []domain.Order {
	names := make(map[int64]string, len(os))
	for i, o := range os {
		name, ok := names[o.QuoteID]
		if !ok {
			q, err := s.quoteSvc.FindByID(ctx, o.QuoteID)
			if err == nil {
				name = q.FactoryName
			}
			names[o.QuoteID] = name
		}
		os[i].FactoryName = name
	}
	return os
}

func (s *service) validate(o domain.Order) error {
	if o.QuoteID <= 0 || o.CompanyName == "" || o.ContactName == "" ||
		o.ContactPhone == "" || o.RecipientName == "" ||
		o.DeliveryAddress == "" || len(o.Products) == 0 {
		return ErrInvalidInput
	}
	return nil
}
