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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrDataNotFound = gorm.ErrRecordNotFound
	// ErrDuplicateOrderNo 支付单号撞了唯一索引
	ErrDuplicateOrderNo = errors.New("支付单号已存在")
)

const uniqueIndexErrNo uint16 = 1062

type PaymentDAO interface {
	Insert(ctx context.Context, p Payment) (int64, error)
	FindByOrderNo(ctx context.Context, orderNo string, uid int64) (Payment, error)
	// MarkPaid 行锁下检查再翻转,pending→paid 只发生一次。
	// 已经是 paid 时返回 alreadyPaid=true 且不改动任何字段
	MarkPaid(ctx context.Context, orderNo string, txnID string) (alreadyPaid bool, p Payment, err error)
}

type PaymentGORMDAO struct {
	db *egorm.Component
}

func NewPaymentGORMDAO(db *egorm.Component) PaymentDAO {
	return &PaymentGORMDAO{db: db}
}

func (g *PaymentGORMDAO) Insert(ctx context.Context, p Payment) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	p.Status = PaymentStatusPending
	err := g.db.WithContext(ctx).Create(&p).Error
	if me, ok := err.(*mysql.MySQLError); ok && me.Number == uniqueIndexErrNo {
		return 0, ErrDuplicateOrderNo
	}
	return p.Id, err
}

func (g *PaymentGORMDAO) FindByOrderNo(ctx context.Context, orderNo string, uid int64) (Payment, error) {
	var p Payment
	err := g.db.WithContext(ctx).
		Where("order_no = ? AND uid = ?", orderNo, uid).First(&p).Error
	return p, err
}

func (g *PaymentGORMDAO) MarkPaid(ctx context.Context, orderNo string, txnID string) (bool, Payment, error) {
	var (
		p           Payment
		alreadyPaid bool
	)
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("order_no = ?", orderNo).First(&p).Error
		if err != nil {
			return err
		}
		if p.Status == PaymentStatusPaid {
			alreadyPaid = true
			return nil
		}
		now := time.Now().UnixMilli()
		err = tx.Model(&Payment{}).Where("id = ?", p.Id).
			Updates(map[string]any{
				"status":         PaymentStatusPaid,
				"transaction_id": txnID,
				"paid_at":        now,
				"utime":          now,
			}).Error
		if err != nil {
			return err
		}
		p.Status = PaymentStatusPaid
		p.TxnID = txnID
		p.PaidAt = now
		p.Utime = now
		return nil
	})
	return alreadyPaid, p, err
}

const (
	PaymentStatusPending uint8 = 1
	PaymentStatusPaid    uint8 = 2
)

type Payment struct {
	Id      int64  `gorm:"primaryKey;autoIncrement;comment:支付记录自增ID"`
	OrderNo string `gorm:"column:order_no;type:varchar(64);not null;uniqueIndex:uniq_payment_order_no;comment:支付单号,调用方生成"`
	Uid     int64  `gorm:"not null;index:idx_payment_uid;comment:付款人ID"`
	Amount  int64  `gorm:"not null;comment:金额;单位为分"`

	Description string `gorm:"type:varchar(255);not null;comment:商品描述"`
	Type        uint8  `gorm:"type:tinyint unsigned;not null;comment:支付类型 1=解锁报价单 2=生成合同"`
	RelatedID   int64  `gorm:"column:related_id;not null;comment:业务关联ID,含义由 type 决定"`
	Status      uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=待支付 2=已支付"`
	PrepayID    string `gorm:"column:prepay_id;type:varchar(128);not null;default:'';comment:微信预支付ID"`
	TxnID       string `gorm:"column:transaction_id;type:varchar(128);not null;default:'';comment:微信交易号"`
	Ctime       int64
	Utime       int64
	PaidAt      int64 `gorm:"column:paid_at;not null;default:0;comment:支付完成时间"`
}
