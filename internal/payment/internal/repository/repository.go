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

package repository

import (
	"context"

	"github.com/quotemart/quotemart/internal/payment/internal/domain"
	"github.com/quotemart/quotemart/internal/payment/internal/repository/dao"
)

type PaymentRepository interface {
	Create(ctx context.Context, p domain.Payment) (int64, error)
	FindByOrderNo(ctx context.Context, orderNo string, uid int64) (domain.Payment, error)
	// MarkPaid 幂等翻转,重复通知返回 alreadyPaid=true
	MarkPaid(ctx context.Context, orderNo string, txnID string) (alreadyPaid bool, p domain.Payment, err error)
}

func NewRepository(d dao.PaymentDAO) PaymentRepository {
	return &paymentRepository{dao: d}
}

type paymentRepository struct {
	dao dao.PaymentDAO
}

func (r *paymentRepository) Create(ctx context.Context, p domain.Payment) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(p))
}

func (r *paymentRepository) FindByOrderNo(ctx context.Context, orderNo string, uid int64) (domain.Payment, error) {
	p, err := r.dao.FindByOrderNo(ctx, orderNo, uid)
	if err != nil {
		return domain.Payment{}, err
	}
	return r.toDomain(p), nil
}

func (r *paymentRepository) MarkPaid(ctx context.Context, orderNo string, txnID string) (bool, domain.Payment, error) {
	alreadyPaid, p, err := r.dao.MarkPaid(ctx, orderNo, txnID)
	if err != nil {
		return false, domain.Payment{}, err
	}
	return alreadyPaid, r.toDomain(p), nil
}

func (r *paymentRepository) toEntity(p domain.Payment) dao.Payment {
	return dao.Payment{
		Id:          p.ID,
		OrderNo:     p.OrderNo,
		Uid:         p.UID,
		Amount:      p.Amount,
		Description: p.Description,
		Type:        p.Type.ToUint8(),
		RelatedID:   p.RelatedID,
		Status:      p.Status.ToUint8(),
		PrepayID:    p.PrepayID,
		TxnID:       p.TxnID,
		PaidAt:      p.PaidAt,
	}
}

func (r *paymentRepository) toDomain(p dao.Payment) domain.Payment {
	return domain.Payment{
		ID:          p.Id,
		OrderNo:     p.OrderNo,
		UID:         p.Uid,
		Amount:      p.Amount,
		Description: p.Description,
		Type:        domain.PaymentType(p.Type),
		RelatedID:   p.RelatedID,
		Status:      domain.PaymentStatus(p.Status),
		PrepayID:    p.PrepayID,
		TxnID:       p.TxnID,
		Ctime:       p.Ctime,
		PaidAt:      p.PaidAt,
	}
}
