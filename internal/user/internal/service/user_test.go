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

	"github.com/ecodeclub/mq-api/memory"
	"github.com/quotemart/quotemart/internal/user/internal/domain"
	"github.com/quotemart/quotemart/internal/user/internal/event"
	"github.com/quotemart/quotemart/internal/user/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	repository.UserRepository
	users  map[int64]domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u domain.User) (int64, error) {
	f.nextID++
	u.Id = f.nextID
	f.users[u.Id] = u
	return u.Id, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u domain.User) error {
	old, ok := f.users[u.Id]
	if !ok {
		return repository.ErrUserNotFound
	}
	if u.Nickname != "" {
		old.Nickname = u.Nickname
	}
	if u.Avatar != "" {
		old.Avatar = u.Avatar
	}
	if u.Phone != "" {
		old.Phone = u.Phone
	}
	if u.SN != "" {
		old.SN = u.SN
	}
	f.users[u.Id] = old
	return nil
}

func (f *fakeUserRepo) SetCertified(_ context.Context, id int64) error {
	u, ok := f.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.IsCertified = true
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) FindByWechat(_ context.Context, miniOpenId string) (domain.User, error) {
	for _, u := range f.users {
		if u.WechatInfo.MiniOpenId == miniOpenId {
			return u, nil
		}
	}
	return domain.User{}, repository.ErrUserNotFound
}

func (f *fakeUserRepo) FindById(_ context.Context, id int64) (domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func newTestUserService(t *testing.T, repo repository.UserRepository) UserService {
	t.Helper()
	producer, err := event.NewRegistrationEventProducer(memory.NewMQ())
	require.NoError(t, err)
	return NewUserService(repo, producer)
}

func TestUserService_FindOrCreateByWechat(t *testing.T) {
	t.Parallel()

	t.Run("新用户初始化", func(t *testing.T) {
		t.Parallel()
		repo := newFakeUserRepo()
		svc := newTestUserService(t, repo)
		u, err := svc.FindOrCreateByWechat(context.Background(),
			domain.WechatInfo{MiniOpenId: "mini-001", UnionId: "union-001"})
		require.NoError(t, err)
		assert.NotZero(t, u.Id)

		created := repo.users[u.Id]
		assert.NotEmpty(t, created.SN)
		assert.Contains(t, created.Nickname, "微信用户")
		assert.Equal(t, "mini-001", created.WechatInfo.MiniOpenId)
	})

	t.Run("老用户直接返回", func(t *testing.T) {
		t.Parallel()
		repo := newFakeUserRepo()
		svc := newTestUserService(t, repo)
		first, err := svc.FindOrCreateByWechat(context.Background(),
			domain.WechatInfo{MiniOpenId: "mini-002"})
		require.NoError(t, err)
		second, err := svc.FindOrCreateByWechat(context.Background(),
			domain.WechatInfo{MiniOpenId: "mini-002"})
		require.NoError(t, err)
		assert.Equal(t, first.Id, second.Id)
		assert.Len(t, repo.users, 1)
	})
}

func TestUserService_UpdateNonSensitiveInfo(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	svc := newTestUserService(t, repo)
	u, err := svc.FindOrCreateByWechat(context.Background(),
		domain.WechatInfo{MiniOpenId: "mini-003"})
	require.NoError(t, err)
	sn := repo.users[u.Id].SN

	err = svc.UpdateNonSensitiveInfo(context.Background(), domain.User{
		Id:       u.Id,
		Nickname: "华东轴承采购部",
		Phone:    "13800138000",
		// 序列号不允许被改写
		SN: "hacked",
	})
	require.NoError(t, err)

	got := repo.users[u.Id]
	assert.Equal(t, "华东轴承采购部", got.Nickname)
	assert.Equal(t, "13800138000", got.Phone)
	assert.Equal(t, sn, got.SN)
}
