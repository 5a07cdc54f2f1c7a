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
	"testing"

	"github.com/quotemart/quotemart/internal/quote"
	"github.com/quotemart/quotemart/internal/sample/internal/domain"
	"github.com/quotemart/quotemart/internal/sample/internal/repository"
	"github.com/quotemart/quotemart/internal/sample/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuoteService struct {
	quote.Service
	quotes map[int64]quote.Quote
	ids    map[int64][]int64
}

func (f *fakeQuoteService) FindByID(_ context.Context, id int64) (quote.Quote, error) {
	q, ok := f.quotes[id]
	if !ok {
		return quote.Quote{}, quote.ErrQuoteNotFound
	}
	return q, nil
}

func (f *fakeQuoteService) IDsByOwner(_ context.Context, uid int64) ([]int64, error) {
	return f.ids[uid], nil
}

type fakeSampleRepo struct {
	repository.SampleRepository
	samples map[int64]domain.Sample

	// afterFind 在 FindByID 返回前执行,用来模拟读取后的并发写
	afterFind func()
}

func (f *fakeSampleRepo) Create(_ context.Context, s domain.Sample) (int64, error) {
	id := int64(len(f.samples) + 1)
	s.ID = id
	f.samples[id] = s
	return id, nil
}

func (f *fakeSampleRepo) Update(_ context.Context, s domain.Sample) error {
	cur, ok := f.samples[s.ID]
	if !ok || cur.UID != s.UID || cur.DeliveryStatus != domain.DeliveryStatusPending {
		return dao.ErrRowsNotAffected
	}
	s.QuoteID = cur.QuoteID
	s.DeliveryStatus = cur.DeliveryStatus
	f.samples[s.ID] = s
	return nil
}

func (f *fakeSampleRepo) UpdateDeliveryStatus(_ context.Context, id int64, from domain.DeliveryStatus, to domain.DeliveryStatus, trackingNumber string) error {
	s, ok := f.samples[id]
	if !ok || s.DeliveryStatus != from {
		return dao.ErrRowsNotAffected
	}
	s.DeliveryStatus = to
	s.TrackingNumber = trackingNumber
	f.samples[id] = s
	return nil
}

func (f *fakeSampleRepo) FindByID(_ context.Context, id int64) (domain.Sample, error) {
	s, ok := f.samples[id]
	if !ok {
		return domain.Sample{}, dao.ErrDataNotFound
	}
	if f.afterFind != nil {
		f.afterFind()
	}
	return s, nil
}

func newTestService() (*fakeSampleRepo, Service) {
	repo := &fakeSampleRepo{samples: map[int64]domain.Sample{}}
	quoteSvc := &fakeQuoteService{
		quotes: map[int64]quote.Quote{
			1: {ID: 1, UID: 100, FactoryName: "华东轴承厂"},
		},
		ids: map[int64][]int64{100: {1}},
	}
	return repo, NewService(repo, quoteSvc)
}

func validSample() domain.Sample {
	return domain.Sample{
		QuoteID:         1,
		UID:             200,
		CompanyName:     "采购方公司",
		ContactName:     "张三",
		ContactPhone:    "13800000000",
		RecipientName:   "李四",
		DeliveryAddress: "上海市浦东新区",
		Products: []domain.SampleProduct{
			{Name: "深沟球轴承", BrandModel: "6204", FactoryPrice: 350, Quantity: 5, Unit: "个", Purpose: "装机验证"},
		},
	}
}

func TestService_Create(t *testing.T) {
	t.Parallel()
	t.Run("创建成功并保留试样用途", func(t *testing.T) {
		t.Parallel()
		repo, svc := newTestService()
		id, err := svc.Create(context.Background(), validSample())
		require.NoError(t, err)
		assert.Equal(t, domain.DeliveryStatusPending, repo.samples[id].DeliveryStatus)
		assert.Equal(t, "装机验证", repo.samples[id].Products[0].Purpose)
	})

	t.Run("信息不完整", func(t *testing.T) {
		t.Parallel()
		_, svc := newTestService()
		s := validSample()
		s.RecipientName = ""
		_, err := svc.Create(context.Background(), s)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("报价单不存在", func(t *testing.T) {
		t.Parallel()
		_, svc := newTestService()
		s := validSample()
		s.QuoteID = 999
		_, err := svc.Create(context.Background(), s)
		assert.ErrorIs(t, err, quote.ErrQuoteNotFound)
	})
}

func TestService_Update(t *testing.T) {
	t.Parallel()
	repo, svc := newTestService()
	id, err := svc.Create(context.Background(), validSample())
	require.NoError(t, err)

	t.Run("待发货可以修改", func(t *testing.T) {
		s := validSample()
		s.ID = id
		s.Remark = "加急"
		require.NoError(t, svc.Update(context.Background(), s))
		assert.Equal(t, "加急", repo.samples[id].Remark)
	})

	t.Run("已发货拒绝修改", func(t *testing.T) {
		cur := repo.samples[id]
		cur.DeliveryStatus = domain.DeliveryStatusShipped
		repo.samples[id] = cur

		s := validSample()
		s.ID = id
		assert.ErrorIs(t, svc.Update(context.Background(), s), ErrSampleNotEditable)
	})
}

func TestService_UpdateDeliveryStatus(t *testing.T) {
	t.Parallel()
	t.Run("工厂发货", func(t *testing.T) {
		t.Parallel()
		repo, svc := newTestService()
		id, err := svc.Create(context.Background(), validSample())
		require.NoError(t, err)

		require.NoError(t, svc.UpdateDeliveryStatus(context.Background(), 100, id,
			domain.DeliveryStatusShipped, "YT888"))
		assert.Equal(t, domain.DeliveryStatusShipped, repo.samples[id].DeliveryStatus)
		assert.Equal(t, "YT888", repo.samples[id].TrackingNumber)
	})

	t.Run("申请方无权改配送状态", func(t *testing.T) {
		t.Parallel()
		_, svc := newTestService()
		id, err := svc.Create(context.Background(), validSample())
		require.NoError(t, err)

		err = svc.UpdateDeliveryStatus(context.Background(), 200, id,
			domain.DeliveryStatusShipped, "")
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("非法迁移", func(t *testing.T) {
		t.Parallel()
		_, svc := newTestService()
		id, err := svc.Create(context.Background(), validSample())
		require.NoError(t, err)

		err = svc.UpdateDeliveryStatus(context.Background(), 100, id,
			domain.DeliveryStatusDelivered, "")
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	})

	t.Run("并发推进只有先写的一方生效", func(t *testing.T) {
		t.Parallel()
		repo, svc := newTestService()
		id, err := svc.Create(context.Background(), validSample())
		require.NoError(t, err)

		// 本请求读到 pending 之后,另一个请求抢先取消了申请
		repo.afterFind = func() {
			repo.afterFind = nil
			cur := repo.samples[id]
			cur.DeliveryStatus = domain.DeliveryStatusCancelled
			repo.samples[id] = cur
		}
		err = svc.UpdateDeliveryStatus(context.Background(), 100, id,
			domain.DeliveryStatusShipped, "YT888")
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
		assert.Equal(t, domain.DeliveryStatusCancelled, repo.samples[id].DeliveryStatus)
	})
}

func TestService_Detail(t *testing.T) {
	t.Parallel()
	_, svc := newTestService()
	id, err := svc.Create(context.Background(), validSample())
	require.NoError(t, err)

	s, err := svc.Detail(context.Background(), id, 200)
	require.NoError(t, err)
	assert.Equal(t, "华东轴承厂", s.FactoryName)

	_, err = svc.Detail(context.Background(), id, 300)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}
