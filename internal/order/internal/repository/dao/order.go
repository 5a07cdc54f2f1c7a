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
	"gorm.io/gorm"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrRowsNotAffected 过滤条件没有命中任何行。
// 对 Update 来说意味着订单不存在、非本人或已离开 pending,不作区分
var ErrRowsNotAffected = errors.New("没有更新任何行")

type OrderDAO interface {
	Create(ctx context.Context, o Order, products []OrderProduct) (int64, error)
	// Update 只更新 uid 名下且仍为 pending 的订单,产品整单替换
	Update(ctx context.Context, o Order, products []OrderProduct) error
	// UpdateDeliveryStatus 带上读取时的状态做条件,并发推进时后写的一方落空
	UpdateDeliveryStatus(ctx context.Context, id int64, from uint8, to uint8, trackingNumber string) error
	Delete(ctx context.Context, id int64, uid int64) error
	FindByID(ctx context.Context, id int64) (Order, []OrderProduct, error)
	ListByUID(ctx context.Context, uid int64, offset int, limit int) ([]Order, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
	ListByQuoteIDs(ctx context.Context, qids []int64, offset int, limit int) ([]Order, error)
	CountByQuoteIDs(ctx context.Context, qids []int64) (int64, error)
	CountByQuoteID(ctx context.Context, qid int64) (int64, error)
	FindProductsByOrderIDs(ctx context.Context, oids []int64) (map[int64][]OrderProduct, error)
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

// Create 主记录和产品行在同一事务插入,任一失败整体回滚
func (g *OrderGORMDAO) Create(ctx context.Context, o Order, products []OrderProduct) (int64, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		o.Ctime, o.Utime = now, now
		o.DeliveryStatus = DeliveryStatusPending
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		for i := range products {
			products[i].OrderID = o.Id
			products[i].Ctime = now
		}
		return tx.Create(&products).Error
	})
	return o.Id, err
}

func (g *OrderGORMDAO) Update(ctx context.Context, o Order, products []OrderProduct) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		res := tx.Model(&Order{}).
			Where("id = ? AND uid = ? AND delivery_status = ?",
				o.Id, o.Uid, DeliveryStatusPending).
			Updates(map[string]any{
				"company_name":     o.CompanyName,
				"contact_name":     o.ContactName,
				"contact_phone":    o.ContactPhone,
				"recipient_name":   o.RecipientName,
				"delivery_address": o.DeliveryAddress,
				"remark":           o.Remark,
				"utime":            now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRowsNotAffected
		}
		if err := tx.Where("order_id = ?", o.Id).Delete(&OrderProduct{}).Error; err != nil {
			return err
		}
		for i := range products {
			products[i].OrderID = o.Id
			products[i].Ctime = now
		}
		return tx.Create(&products).Error
	})
}

func (g *OrderGORMDAO) UpdateDeliveryStatus(ctx context.Context, id int64, from uint8, to uint8, trackingNumber string) error {
	res := g.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND delivery_status = ?", id, from).
		Updates(map[string]any{
			"delivery_status": to,
			"tracking_number": trackingNumber,
			"utime":           time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRowsNotAffected
	}
	return nil
}

func (g *OrderGORMDAO) Delete(ctx context.Context, id int64, uid int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND uid = ?", id, uid).Delete(&Order{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRowsNotAffected
		}
		return tx.Where("order_id = ?", id).Delete(&OrderProduct{}).Error
	})
}

func (g *OrderGORMDAO) FindByID(ctx context.Context, id int64) (Order, []OrderProduct, error) {
	var (
		o        Order
		products []OrderProduct
	)
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	if err != nil {
		return Order{}, nil, err
	}
	err = g.db.WithContext(ctx).Where("order_id = ?", id).Order("id asc").Find(&products).Error
	return o, products, err
}

func (g *OrderGORMDAO) ListByUID(ctx context.Context, uid int64, offset int, limit int) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).Where("uid = ?", uid).
		Order("ctime desc").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *OrderGORMDAO) CountByUID(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Order{}).Where("uid = ?", uid).Count(&count).Error
	return count, err
}

func (g *OrderGORMDAO) ListByQuoteIDs(ctx context.Context, qids []int64, offset int, limit int) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).Where("quote_id IN ?", qids).
		Order("ctime desc").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *OrderGORMDAO) CountByQuoteIDs(ctx context.Context, qids []int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Order{}).Where("quote_id IN ?", qids).Count(&count).Error
	return count, err
}

func (g *OrderGORMDAO) CountByQuoteID(ctx context.Context, qid int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Order{}).Where("quote_id = ?", qid).Count(&count).Error
	return count, err
}

func (g *OrderGORMDAO) FindProductsByOrderIDs(ctx context.Context, oids []int64) (map[int64][]OrderProduct, error) {
	var products []OrderProduct
	err := g.db.WithContext(ctx).Where("order_id IN ?", oids).Order("id asc").Find(&products).Error
	if err != nil {
		return nil, err
	}
	res := make(map[int64][]OrderProduct, len(oids))
	for _, p := range products {
		res[p.OrderID] = append(res[p.OrderID], p)
	}
	return res, nil
}

const (
	DeliveryStatusPending   uint8 = 1
	DeliveryStatusShipped   uint8 = 2
	DeliveryStatusDelivered uint8 = 3
	DeliveryStatusCancelled uint8 = 4
)

type Order struct {
	Id              int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	QuoteID         int64  `gorm:"column:quote_id;not null;index:idx_order_quote_id;comment:报价单自增ID"`
	Uid             int64  `gorm:"not null;index:idx_order_uid;comment:买家ID"`
	CompanyName     string `gorm:"type:varchar(255);not null;comment:公司名称"`
	ContactName     string `gorm:"type:varchar(255);not null;comment:联系人"`
	ContactPhone    string `gorm:"type:varchar(64);not null;comment:联系电话"`
	RecipientName   string `gorm:"type:varchar(255);not null;comment:收件人"`
	DeliveryAddress string `gorm:"type:varchar(1024);not null;comment:收货地址"`
	Remark          string `gorm:"type:varchar(1024);not null;default:'';comment:备注"`
	DeliveryStatus  uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:配送状态 1=待发货 2=已发货 3=已签收 4=已取消"`
	TrackingNumber  string `gorm:"type:varchar(128);not null;default:'';comment:物流单号"`
	Ctime           int64
	Utime           int64
}

type OrderProduct struct {
	Id            int64  `gorm:"primaryKey;autoIncrement;comment:订单产品自增ID"`
	OrderID       int64  `gorm:"column:order_id;not null;index:idx_order_product_order_id;comment:订单自增ID"`
	Name          string `gorm:"type:varchar(255);not null;comment:产品名称"`
	BrandModel    string `gorm:"type:varchar(255);not null;comment:品牌型号"`
	FactoryPrice  int64  `gorm:"not null;comment:出厂价;单位为分"`
	DeliveryPrice int64  `gorm:"not null;comment:到岸价;单位为分"`
	Quantity      int64  `gorm:"not null;comment:数量"`
	Unit          string `gorm:"type:varchar(32);not null;comment:单位"`
	Ctime         int64
}
