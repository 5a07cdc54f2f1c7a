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

package dao

import (
	"context"
	"database/sql"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

type ContractDAO interface {
	Insert(ctx context.Context, c Contract) (int64, error)
	FindByID(ctx context.Context, id int64) (Contract, error)
	ListByUID(ctx context.Context, uid int64, offset int, limit int) ([]Contract, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
}

type ContractGORMDAO struct {
	db *egorm.Component
}

func NewContractGORMDAO(db *egorm.Component) ContractDAO {
	return &ContractGORMDAO{db: db}
}

func (g *ContractGORMDAO) Insert(ctx context.Context, c Contract) (int64, error) {
	c.Ctime = time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Create(&c).Error
	return c.Id, err
}

func (g *ContractGORMDAO) FindByID(ctx context.Context, id int64) (Contract, error) {
	var c Contract
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (g *ContractGORMDAO) ListByUID(ctx context.Context, uid int64, offset int, limit int) ([]Contract, error) {
	var res []Contract
	err := g.db.WithContext(ctx).Where("uid = ?", uid).
		Order("ctime desc").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *ContractGORMDAO) CountByUID(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Contract{}).Where("uid = ?", uid).Count(&count).Error
	return count, err
}

// Contract 合同创建后不再更新,没有 utime
type Contract struct {
	Id   int64  `gorm:"primaryKey;autoIncrement;comment:合同自增ID"`
	SN   string `gorm:"column:sn;type:varchar(255);not null;uniqueIndex:uniq_contract_sn;comment:合同编号"`
	Type uint8  `gorm:"type:tinyint unsigned;not null;comment:类型 1=采购合同 2=试样协议"`
	Uid  int64  `gorm:"not null;index:idx_contract_uid;comment:持有人ID"`
	// OrderID 和 SampleID 恰好一个非空
	OrderID  sql.NullInt64 `gorm:"column:order_id;comment:订单自增ID"`
	SampleID sql.NullInt64 `gorm:"column:sample_id;comment:试样申请自增ID"`
	Ctime    int64
}
