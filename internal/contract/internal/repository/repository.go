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
	"database/sql"

	"github.com/ecodeclub/ekit/slice"
	"github.com/quotemart/quotemart/internal/contract/internal/domain"
	"github.com/quotemart/quotemart/internal/contract/internal/repository/dao"
)

type ContractRepository interface {
	Create(ctx context.Context, c domain.Contract) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Contract, error)
	ListByUID(ctx context.Context, uid int64, offset int, limit int) ([]domain.Contract, error)
	TotalByUID(ctx context.Context, uid int64) (int64, error)
}

func NewRepository(d dao.ContractDAO) ContractRepository {
	return &contractRepository{dao: d}
}

type contractRepository struct {
	dao dao.ContractDAO
}

func (r *contractRepository) Create(ctx context.Context, c domain.Contract) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(c))
}

func (r *contractRepository) FindByID(ctx context.Context, id int64) (domain.Contract, error) {
	c, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Contract{}, err
	}
	return r.toDomain(c), nil
}

func (r *contractRepository) ListByUID(ctx context.Context, uid int64, offset int, limit int) ([]domain.Contract, error) {
	cs, err := r.dao.ListByUID(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(_ int, src dao.Contract) domain.Contract {
		return r.toDomain(src)
	}), nil
}

func (r *contractRepository) TotalByUID(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountByUID(ctx, uid)
}

func (r *contractRepository) toEntity(c domain.Contract) dao.Contract {
	return dao.Contract{
		Id:       c.ID,
		SN:       c.SN,
		Type:     c.Type.ToUint8(),
		Uid:      c.UID,
		OrderID:  sql.NullInt64{Int64: c.OrderID, Valid: c.OrderID > 0},
		SampleID: sql.NullInt64{Int64: c.SampleID, Valid: c.SampleID > 0},
	}
}

func (r *contractRepository) toDomain(c dao.Contract) domain.Contract {
	return domain.Contract{
		ID:       c.Id,
		SN:       c.SN,
		Type:     domain.ContractType(c.Type),
		UID:      c.Uid,
		OrderID:  c.OrderID.Int64,
		SampleID: c.SampleID.Int64,
		Ctime:    c.Ctime,
	}
}
