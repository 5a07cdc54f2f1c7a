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
	"testing"

	"github.com/quotemart/quotemart/internal/user/internal/domain"
	"github.com/quotemart/quotemart/internal/user/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCertRepo struct {
	certs  map[int64]domain.Certification
	nextID int64
}

func newFakeCertRepo() *fakeCertRepo {
	return &fakeCertRepo{certs: make(map[int64]domain.Certification)}
}

func (f *fakeCertRepo) Create(_ context.Context, c domain.Certification) (int64, error) {
	f.nextID++
	c.Id = f.nextID
	f.certs[c.Id] = c
	return c.Id, nil
}

func (f *fakeCertRepo) FindActiveByUid(_ context.Context, uid int64) (domain.Certification, error) {
	for _, c := range f.certs {
		if c.Uid == uid {
			return c, nil
		}
	}
	return domain.Certification{}, repository.ErrCertificationNotFound
}

func (f *fakeCertRepo) FindLatestByUid(ctx context.Context, uid int64) (domain.Certification, error) {
	return f.FindActiveByUid(ctx, uid)
}

type fixedVerifier struct {
	passed bool
	err    error
}

func (f fixedVerifier) Verify(_ context.Context, _ domain.Certification) (bool, error) {
	return f.passed, f.err
}

func validCertification(uid int64) domain.Certification {
	return domain.Certification{
		Uid:               uid,
		CompanyName:       "华东轴承制造有限公司",
		LegalPerson:       "王建国",
		RegisteredAddress: "江苏省无锡市滨湖区机械路88号",
		BusinessLicense:   "https://cdn.example.com/license.jpg",
		LegalIdFront:      "https://cdn.example.com/id-front.jpg",
		LegalIdBack:       "https://cdn.example.com/id-back.jpg",
	}
}

func TestCertificationService_Submit(t *testing.T) {
	t.Parallel()

	t.Run("自动审核通过直接认证", func(t *testing.T) {
		t.Parallel()
		userRepo := newFakeUserRepo()
		uid, err := userRepo.Create(context.Background(), domain.User{Nickname: "买家"})
		require.NoError(t, err)
		svc := NewCertificationService(newFakeCertRepo(), userRepo, fixedVerifier{passed: true})

		c, err := svc.Submit(context.Background(), validCertification(uid))
		require.NoError(t, err)
		assert.Equal(t, domain.CertificationStatusApproved, c.Status)
		assert.True(t, userRepo.users[uid].IsCertified)
	})

	t.Run("自动审核未通过转人工", func(t *testing.T) {
		t.Parallel()
		userRepo := newFakeUserRepo()
		uid, err := userRepo.Create(context.Background(), domain.User{Nickname: "买家"})
		require.NoError(t, err)
		svc := NewCertificationService(newFakeCertRepo(), userRepo, fixedVerifier{passed: false})

		c, err := svc.Submit(context.Background(), validCertification(uid))
		require.NoError(t, err)
		assert.Equal(t, domain.CertificationStatusPending, c.Status)
		assert.False(t, userRepo.users[uid].IsCertified)
	})

	t.Run("校验服务不可用时仍可提交", func(t *testing.T) {
		t.Parallel()
		userRepo := newFakeUserRepo()
		uid, err := userRepo.Create(context.Background(), domain.User{Nickname: "买家"})
		require.NoError(t, err)
		svc := NewCertificationService(newFakeCertRepo(), userRepo,
			fixedVerifier{err: errors.New("工商接口超时")})

		c, err := svc.Submit(context.Background(), validCertification(uid))
		require.NoError(t, err)
		assert.Equal(t, domain.CertificationStatusPending, c.Status)
	})

	t.Run("重复提交被拒绝", func(t *testing.T) {
		t.Parallel()
		userRepo := newFakeUserRepo()
		uid, err := userRepo.Create(context.Background(), domain.User{Nickname: "买家"})
		require.NoError(t, err)

		certRepo := newFakeCertRepo()
		svc := NewCertificationService(certRepo, userRepo, fixedVerifier{passed: true})
		_, err = svc.Submit(context.Background(), validCertification(uid))
		require.NoError(t, err)
		_, err = svc.Submit(context.Background(), validCertification(uid))
		assert.ErrorIs(t, err, ErrAlreadyCertified)

		pendingRepo := newFakeCertRepo()
		pendingSvc := NewCertificationService(pendingRepo, userRepo, fixedVerifier{passed: false})
		uid2, err := userRepo.Create(context.Background(), domain.User{Nickname: "另一买家"})
		require.NoError(t, err)
		_, err = pendingSvc.Submit(context.Background(), validCertification(uid2))
		require.NoError(t, err)
		_, err = pendingSvc.Submit(context.Background(), validCertification(uid2))
		assert.ErrorIs(t, err, ErrCertificationPending)
	})

	t.Run("信息不完整被拒绝", func(t *testing.T) {
		t.Parallel()
		userRepo := newFakeUserRepo()
		svc := NewCertificationService(newFakeCertRepo(), userRepo, fixedVerifier{passed: true})
		c := validCertification(1)
		c.BusinessLicense = ""
		_, err := svc.Submit(context.Background(), c)
		assert.ErrorIs(t, err, ErrInvalidCertification)
	})
}
