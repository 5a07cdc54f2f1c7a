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

	"github.com/quotemart/quotemart/internal/contract/internal/domain"
	"github.com/quotemart/quotemart/internal/contract/internal/repository"
	"github.com/quotemart/quotemart/internal/contract/internal/repository/dao"
	"github.com/quotemart/quotemart/internal/order"
	"github.com/quotemart/quotemart/internal/pkg/sequencenumber"
	"github.com/quotemart/quotemart/internal/sample"
	"golang.org/x/sync/errgroup"
)

var (
	ErrContractNotFound = errors.New("合同不存在")
	ErrPermissionDenied = errors.New("无权查看此合同")
)

// Detail 合同本体加上按类型实时关联出来的订单或试样。
// 合同只冻结关联关系,价格等明细跟随源单据变化
type Detail struct {
	Contract domain.Contract
	Order    *order.Order
	Sample   *sample.Sample
}

type Service interface {
	// GeneratePurchase 基于订单生成采购合同,
	// 申请人必须对订单有查看权(买家或工厂任一方)
	GeneratePurchase(ctx context.Context, uid int64, orderID int64) (Detail, error)
	// GenerateSample 基于试样申请生成试样协议
	GenerateSample(ctx context.Context, uid int64, sampleID int64) (Detail, error)
	// Detail 只有合同持有人可见
	Detail(ctx context.Context, id int64, uid int64) (Detail, error)
	ListMine(ctx context.Context, uid int64, offset int, limit int) ([]domain.Contract, int64, error)
}

func NewService(repo repository.ContractRepository,
	orderSvc order.Service, sampleSvc sample.Service,
	snGenerator *sequencenumber.Generator) Service {
	return &service{
		repo:        repo,
		orderSvc:    orderSvc,
		sampleSvc:   sampleSvc,
		snGenerator: snGenerator,
	}
}

type service struct {
	repo        repository.ContractRepository
	orderSvc    order.Service
	sampleSvc   sample.Service
	snGenerator *sequencenumber.Generator
}

func (s *service) GeneratePurchase(ctx context.Context, uid int64, orderID int64) (Detail, error) {
	// Detail 自带双方权限校验,订单不存在或无权都会在这里拦下
	o, err := s.orderSvc.Detail(ctx, orderID, uid)
	if err != nil {
		return Detail{}, err
	}
	sn, err := s.snGenerator.Generate(uid)
	if err != nil {
		return Detail{}, err
	}
	c := domain.Contract{
		SN:      sn,
		Type:    domain.ContractTypePurchase,
		UID:     uid,
		OrderID: orderID,
	}
	c.ID, err = s.repo.Create(ctx, c)
	if err != nil {
		return Detail{}, err
	}
	return Detail{Contract: c, Order: &o}, nil
}

func (s *service) GenerateSample(ctx context.Context, uid int64, sampleID int64) (Detail, error) {
	sp, err := s.sampleSvc.Detail(ctx, sampleID, uid)
	if err != nil {
		return Detail{}, err
	}
	sn, err := s.snGenerator.Generate(uid)
	if err != nil {
		return Detail{}, err
	}
	c := domain.Contract{
		SN:       sn,
		Type:     domain.ContractTypeSample,
		UID:      uid,
		SampleID: sampleID,
	}
	c.ID, err = s.repo.Create(ctx, c)
	if err != nil {
		return Detail{}, err
	}
	return Detail{Contract: c, Sample: &sp}, nil
}

func (s *service) Detail(ctx context.Context, id int64, uid int64) (Detail, error) {
	c, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, dao.ErrDataNotFound) {
		return Detail{}, fmt.Errorf("%w: id=%d", ErrContractNotFound, id)
	}
	if err != nil {
		return Detail{}, err
	}
	if c.UID != uid {
		return Detail{}, fmt.Errorf("%w: uid=%d, contract=%d", ErrPermissionDenied, uid, id)
	}
	res := Detail{Contract: c}
	switch c.Type {
	case domain.ContractTypePurchase:
		// 源订单可能已被删除,合同本体仍然可见
		o, err := s.orderSvc.Detail(ctx, c.OrderID, uid)
		if err == nil {
			res.Order = &o
		}
	case domain.ContractTypeSample:
		sp, err := s.sampleSvc.Detail(ctx, c.SampleID, uid)
		if err == nil {
			res.Sample = &sp
		}
	}
	return res, nil
}

func (s *service) ListMine(ctx context.Context, uid int64, offset int, limit int) ([]domain.Contract, int64, error) {
	var (
		eg    errgroup.Group
		cs    []domain.Contract
		total int64
	)
	eg.Go(func() error {
		var err error
		cs, err = s.repo.ListByUID(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalByUID(ctx, uid)
		return err
	})
	return cs, total, eg.Wait()
}
