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
	"fmt"
	"testing"

	"github.com/quotemart/quotemart/internal/contract/internal/domain"
	"github.com/quotemart/quotemart/internal/contract/internal/repository"
	"github.com/quotemart/quotemart/internal/order"
	"github.com/quotemart/quotemart/internal/pkg/sequencenumber"
	"github.com/quotemart/quotemart/internal/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContractRepo struct {
	repository.ContractRepository
	contracts map[int64]domain.Contract
}

func (f *fakeContractRepo) Create(_ context.Context, c domain.Contract) (int64, error) {
	id := int64(len(f.contracts) + 1)
	c.ID = id
	f.contracts[id] = c
	return id, nil
}

func (f *fakeContractRepo) FindByID(_ context.Context, id int64) (domain.Contract, error) {
	c, ok := f.contracts[id]
	if !ok {
		return domain.Contract{}, ErrContractNotFound
	}
	return c, nil
}

type fakeOrderService struct {
	order.Service
	orders map[int64]order.Order
}

func (f *fakeOrderService) Detail(_ context.Context, id int64, uid int64) (order.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return order.Order{}, fmt.Errorf("%w: id=%d", order.ErrOrderNotFound, id)
	}
	if o.UID != uid {
		return order.Order{}, fmt.Errorf("%w: uid=%d", order.ErrPermissionDenied, uid)
	}
	return o, nil
}

type fakeSampleService struct {
	sample.Service
	samples map[int64]sample.Sample
}

func (f *fakeSampleService) Detail(_ context.Context, id int64, uid int64) (sample.Sample, error) {
	s, ok := f.samples[id]
	if !ok {
		return sample.Sample{}, fmt.Errorf("%w: id=%d", sample.ErrSampleNotFound, id)
	}
	if s.UID != uid {
		return sample.Sample{}, fmt.Errorf("%w: uid=%d", sample.ErrPermissionDenied, uid)
	}
	return s, nil
}

func newTestService() (*fakeContractRepo, Service) {
	repo := &fakeContractRepo{contracts: map[int64]domain.Contract{}}
	orderSvc := &fakeOrderService{orders: map[int64]order.Order{
		10: {ID: 10, UID: 200, FactoryName: "华东轴承厂"},
	}}
	sampleSvc := &fakeSampleService{samples: map[int64]sample.Sample{
		20: {ID: 20, UID: 200, FactoryName: "华东轴承厂"},
	}}
	return repo, NewService(repo, orderSvc, sampleSvc, sequencenumber.NewGenerator())
}

func TestService_GeneratePurchase(t *testing.T) {
	t.Parallel()
	t.Run("生成采购合同", func(t *testing.T) {
		t.Parallel()
		repo, svc := newTestService()
		detail, err := svc.GeneratePurchase(context.Background(), 200, 10)
		require.NoError(t, err)
		assert.Equal(t, domain.ContractTypePurchase, detail.Contract.Type)
		assert.Len(t, detail.Contract.SN, 32)
		assert.Equal(t, int64(10), detail.Contract.OrderID)
		assert.Zero(t, detail.Contract.SampleID)
		require.NotNil(t, detail.Order)
		assert.Equal(t, "华东轴承厂", detail.Order.FactoryName)
		assert.Len(t, repo.contracts, 1)
	})

	t.Run("订单不存在", func(t *testing.T) {
		t.Parallel()
		repo, svc := newTestService()
		_, err := svc.GeneratePurchase(context.Background(), 200, 999)
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
		assert.Empty(t, repo.contracts)
	})

	t.Run("无关用户拒绝", func(t *testing.T) {
		t.Parallel()
		_, svc := newTestService()
		_, err := svc.GeneratePurchase(context.Background(), 300, 10)
		assert.ErrorIs(t, err, order.ErrPermissionDenied)
	})
}

func TestService_GenerateSample(t *testing.T) {
	t.Parallel()
	_, svc := newTestService()
	detail, err := svc.GenerateSample(context.Background(), 200, 20)
	require.NoError(t, err)
	assert.Equal(t, domain.ContractTypeSample, detail.Contract.Type)
	assert.Equal(t, int64(20), detail.Contract.SampleID)
	assert.Zero(t, detail.Contract.OrderID)
	require.NotNil(t, detail.Sample)
}

func TestService_Detail(t *testing.T) {
	t.Parallel()
	_, svc := newTestService()
	generated, err := svc.GeneratePurchase(context.Background(), 200, 10)
	require.NoError(t, err)

	t.Run("持有人可见并带订单明细", func(t *testing.T) {
		detail, err := svc.Detail(context.Background(), generated.Contract.ID, 200)
		require.NoError(t, err)
		require.NotNil(t, detail.Order)
		assert.Equal(t, int64(10), detail.Order.ID)
	})

	t.Run("非持有人拒绝", func(t *testing.T) {
		_, err := svc.Detail(context.Background(), generated.Contract.ID, 300)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("合同不存在", func(t *testing.T) {
		_, err := svc.Detail(context.Background(), 999, 200)
		assert.ErrorIs(t, err, ErrContractNotFound)
	})
}
