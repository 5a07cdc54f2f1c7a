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

	"github.com/gotomicro/ego/core/elog"
	"github.com/quotemart/quotemart/internal/user/internal/domain"
	"github.com/quotemart/quotemart/internal/user/internal/repository"
)

var (
	ErrInvalidCertification = errors.New("认证信息不完整")
	ErrAlreadyCertified     = errors.New("已完成认证")
	ErrCertificationPending = errors.New("认证正在审核中")
)

// CompanyVerifier 企业真实性校验,对接 OCR 和工商查询,当黑盒用
type CompanyVerifier interface {
	Verify(ctx context.Context, c domain.Certification) (bool, error)
}

type CertificationService interface {
	// Submit 提交企业认证,校验通过直接置为已认证,否则转人工审核
	Submit(ctx context.Context, c domain.Certification) (domain.Certification, error)
	// Status 最近一次认证申请,没有申请过返回 ErrCertificationNotFound
	Status(ctx context.Context, uid int64) (domain.Certification, error)
}

type certificationService struct {
	repo     repository.CertificationRepository
	userRepo repository.UserRepository
	verifier CompanyVerifier
	logger   *elog.Component
}

func NewCertificationService(repo repository.CertificationRepository,
	userRepo repository.UserRepository,
	verifier CompanyVerifier) CertificationService {
	return &certificationService{
		repo:     repo,
		userRepo: userRepo,
		verifier: verifier,
		logger:   elog.DefaultLogger,
	}
}

func (svc *certificationService) Submit(ctx context.Context, c domain.Certification) (domain.Certification, error) {
	if c.CompanyName == "" || c.LegalPerson == "" || c.RegisteredAddress == "" ||
		c.BusinessLicense == "" || c.LegalIdFront == "" || c.LegalIdBack == "" {
		return domain.Certification{}, ErrInvalidCertification
	}

	existing, err := svc.repo.FindActiveByUid(ctx, c.Uid)
	switch {
	case err == nil:
		if existing.Status == domain.CertificationStatusApproved {
			return domain.Certification{}, ErrAlreadyCertified
		}
		return domain.Certification{}, ErrCertificationPending
	case !errors.Is(err, repository.ErrCertificationNotFound):
		return domain.Certification{}, err
	}

	passed, err := svc.verifier.Verify(ctx, c)
	if err != nil {
		// 校验服务不可用时不拦截提交,转人工审核
		svc.logger.Error("企业自动审核失败",
			elog.FieldErr(err),
			elog.Int64("uid", c.Uid))
		passed = false
	}
	if passed {
		c.Status = domain.CertificationStatusApproved
	} else {
		c.Status = domain.CertificationStatusPending
	}

	id, err := svc.repo.Create(ctx, c)
	if err != nil {
		return domain.Certification{}, err
	}
	c.Id = id

	if c.Status == domain.CertificationStatusApproved {
		if err = svc.userRepo.SetCertified(ctx, c.Uid); err != nil {
			return domain.Certification{}, err
		}
	}
	return c, nil
}

func (svc *certificationService) Status(ctx context.Context, uid int64) (domain.Certification, error) {
	return svc.repo.FindLatestByUid(ctx, uid)
}
