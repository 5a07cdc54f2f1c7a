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

	"github.com/quotemart/quotemart/internal/quote/internal/domain"
	"github.com/quotemart/quotemart/internal/quote/internal/repository"
	"github.com/quotemart/quotemart/internal/quote/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuoteRepo struct {
	repository.QuoteRepository
	quotes  map[int64]domain.Quote
	unlocks map[[2]int64]bool
	viewCnt map[int64]int64
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{
		quotes:  map[int64]domain.Quote{},
		unlocks: map[[2]int64]bool{},
		viewCnt: map[int64]int64{},
	}
}

func (f *fakeQuoteRepo) Create(_ context.Context, q domain.Quote) (int64, error) {
	id := int64(len(f.quotes) + 1)
	q.ID = id
	f.quotes[id] = q
	return id, nil
}

func (f *fakeQuoteRepo) Update(_ context.Context, q domain.Quote) error {
	cur, ok := f.quotes[q.ID]
	if !ok || cur.UID != q.UID {
		return dao.ErrRowsNotAffected
	}
	q.Status = cur.Status
	f.quotes[q.ID] = q
	return nil
}

func (f *fakeQuoteRepo) Delete(_ context.Context, id int64, uid int64) error {
	q, ok := f.quotes[id]
	if !ok || q.UID != uid {
		return dao.ErrRowsNotAffected
	}
	delete(f.quotes, id)
	return nil
}

func (f *fakeQuoteRepo) FindByID(_ context.Context, id int64) (domain.Quote, error) {
	q, ok := f.quotes[id]
	if !ok {
		return domain.Quote{}, dao.ErrDataNotFound
	}
	return q, nil
}

func (f *fakeQuoteRepo) IncrViewCnt(_ context.Context, id int64) error {
	f.viewCnt[id]++
	return nil
}

func (f *fakeQuoteRepo) CreateUnlockRecord(_ context.Context, r domain.UnlockRecord) error {
	// 唯一索引语义:重复插入静默成功
	f.unlocks[[2]int64{r.UID, r.QuoteID}] = true
	return nil
}

func (f *fakeQuoteRepo) IsUnlocked(_ context.Context, uid int64, qid int64) (bool, error) {
	return f.unlocks[[2]int64{uid, qid}], nil
}

type fixedCounter int64

func (c fixedCounter) CountByQuoteID(context.Context, int64) (int64, error) {
	return int64(c), nil
}

func validQuote() domain.Quote {
	return domain.Quote{
		UID:           100,
		FactoryName:   "华东轴承厂",
		ContactName:   "王经理",
		ContactPhone:  "13900000000",
		BusinessScope: "深沟球轴承、圆锥滚子轴承",
		Products: []domain.QuoteProduct{
			{Name: "深沟球轴承", BrandModel: "6204", FactoryPrice: 350, DeliveryPrice: 400, MinOrder: 100, Unit: "个"},
		},
	}
}

func TestService_Create(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		quote   func() domain.Quote
		wantErr error
	}{
		{
			name:  "创建即发布",
			quote: validQuote,
		},
		{
			name: "缺少厂名",
			quote: func() domain.Quote {
				q := validQuote()
				q.FactoryName = ""
				return q
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "没有产品行",
			quote: func() domain.Quote {
				q := validQuote()
				q.Products = nil
				return q
			},
			wantErr: ErrInvalidInput,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			repo := newFakeQuoteRepo()
			svc := NewService(repo, nil)
			id, err := svc.Create(context.Background(), tc.quote())
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.QuoteStatusApproved, repo.quotes[id].Status)
		})
	}
}

func TestService_Update(t *testing.T) {
	t.Parallel()
	repo := newFakeQuoteRepo()
	svc := NewService(repo, nil)
	id, err := svc.Create(context.Background(), validQuote())
	require.NoError(t, err)

	t.Run("本人可以修改", func(t *testing.T) {
		q := validQuote()
		q.ID = id
		q.CustomNotice = "最小起订量可谈"
		require.NoError(t, svc.Update(context.Background(), q))
		assert.Equal(t, "最小起订量可谈", repo.quotes[id].CustomNotice)
	})

	t.Run("非本人拒绝", func(t *testing.T) {
		q := validQuote()
		q.ID = id
		q.UID = 999
		assert.ErrorIs(t, svc.Update(context.Background(), q), ErrPermissionDenied)
	})
}

func TestService_Delete(t *testing.T) {
	t.Parallel()
	t.Run("被引用禁止删除", func(t *testing.T) {
		t.Parallel()
		repo := newFakeQuoteRepo()
		svc := NewService(repo, []ReferenceCounter{fixedCounter(0), fixedCounter(2)})
		id, err := svc.Create(context.Background(), validQuote())
		require.NoError(t, err)
		assert.ErrorIs(t, svc.Delete(context.Background(), id, 100), ErrQuoteReferenced)
	})

	t.Run("无引用可以删除", func(t *testing.T) {
		t.Parallel()
		repo := newFakeQuoteRepo()
		svc := NewService(repo, []ReferenceCounter{fixedCounter(0)})
		id, err := svc.Create(context.Background(), validQuote())
		require.NoError(t, err)
		require.NoError(t, svc.Delete(context.Background(), id, 100))
		assert.Empty(t, repo.quotes)
	})

	t.Run("非本人拒绝", func(t *testing.T) {
		t.Parallel()
		repo := newFakeQuoteRepo()
		svc := NewService(repo, nil)
		id, err := svc.Create(context.Background(), validQuote())
		require.NoError(t, err)
		assert.ErrorIs(t, svc.Delete(context.Background(), id, 999), ErrPermissionDenied)
	})
}

func TestService_Detail(t *testing.T) {
	t.Parallel()
	repo := newFakeQuoteRepo()
	svc := NewService(repo, nil)
	id, err := svc.Create(context.Background(), validQuote())
	require.NoError(t, err)

	_, err = svc.Detail(context.Background(), id)
	require.NoError(t, err)
	_, err = svc.Detail(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), repo.viewCnt[id])

	_, err = svc.Detail(context.Background(), 999)
	assert.ErrorIs(t, err, ErrQuoteNotFound)
}

func TestService_Unlock(t *testing.T) {
	t.Parallel()
	repo := newFakeQuoteRepo()
	svc := NewService(repo, nil)
	id, err := svc.Create(context.Background(), validQuote())
	require.NoError(t, err)

	unlocked, err := svc.IsUnlocked(context.Background(), 200, id)
	require.NoError(t, err)
	assert.False(t, unlocked)

	require.NoError(t, svc.Unlock(context.Background(), 200, id, domain.UnlockMethodPayment))
	// 重复解锁幂等
	require.NoError(t, svc.Unlock(context.Background(), 200, id, domain.UnlockMethodPayment))

	unlocked, err = svc.IsUnlocked(context.Background(), 200, id)
	require.NoError(t, err)
	assert.True(t, unlocked)
}
