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

var ErrRowsNotAffected = errors.New("没有更新任何行")

type SampleDAO interface {
	Create(ctx context.Context, s Sample, products []SampleProduct) (int64, error)
	// Update 只更新 uid 名下且仍为 pending 的申请,产品整单替换
	Update(ctx context.Context, s Sample, products []SampleProduct) error
	// UpdateDeliveryStatus 带上读取时的状态做条件,并发推进时后写的一方落空
	UpdateDeliveryStatus(ctx context.Context, id int64, from uint8, to uint8, trackingNumber string) error
	Delete(ctx context.Context, id int64, uid int64) error
	FindByID(ctx context.Context, id int64) (Sample, []SampleProduct, error)
	ListByUID(ctx context.Context, uid int64, offset int, limit int) ([]Sample, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
	ListByQuoteIDs(ctx context.Context, qids []int64, offset int, limit int) ([]Sample, error)
	CountByQuoteIDs(ctx context.Context, qids []int64) (int64, error)
	CountByQuoteID(ctx context.Context, qid int64) (int64, error)
	FindProductsBySampleIDs(ctx context.Context, sids []int64) (map[int64][]SampleProduct, error)
}

type SampleGORMDAO struct {
	db *egorm.Component
}

func NewSampleGORMDAO(db *egorm.Component) SampleDAO {
	return &SampleGORMDAO{db: db}
}

func (g *SampleGORMDAO) Create(ctx context.Context, s Sample, products []SampleProduct) (int64, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		s.Ctime, s.Utime = now, now
		s.DeliveryStatus = DeliveryStatusPending
		if err := tx.Create(&s).Error; err != nil {
			return err
		}
		for i := range products {
			products[i].SampleID = s.Id
			products[i].Ctime = now
		}
		return tx.Create(&products).Error
	})
	return s.Id, err
}

func (g *SampleGORMDAO) Update(ctx context.Context, s Sample, products []SampleProduct) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		res := tx.Model(&Sample{}).
			Where("id = ? AND uid = ? AND delivery_status = ?",
				s.Id, s.Uid, DeliveryStatusPending).
			Updates(map[string]any{
				"company_name":     s.CompanyName,
				"contact_name":     s.ContactName,
				"contact_phone":    s.ContactPhone,
				"recipient_name":   s.RecipientName,
				"delivery_address": s.DeliveryAddress,
				"remark":           s.Remark,
				"utime":            now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRowsNotAffected
		}
		if err := tx.Where("sample_id = ?", s.Id).Delete(&SampleProduct{}).Error; err != nil {
			return err
		}
		for i := range products {
			products[i].SampleID = s.Id
			products[i].Ctime = now
		}
		return tx.Create(&products).Error
	})
}

func (g *SampleGORMDAO) UpdateDeliveryStatus(ctx context.Context, id int64, from uint8, to uint8, trackingNumber string) error {
	res := g.db.WithContext(ctx).Model(&Sample{}).
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

func (g *SampleGORMDAO) Delete(ctx context.Context, id int64, uid int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND uid = ?", id, uid).Delete(&Sample{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRowsNotAffected
		}
		return tx.Where("sample_id = ?", id).Delete(&SampleProduct{}).Error
	})
}

func (g *SampleGORMDAO) FindByID(ctx context.Context, id int64) (Sample, []SampleProduct, error) {
	var (
		s        Sample
		products []SampleProduct
	)
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if err != nil {
		return Sample{}, nil, err
	}
	err = g.db.WithContext(ctx).Where("sample_id = ?", id).Order("id asc").Find(&products).Error
	return s, products, err
}

func (g *SampleGORMDAO) ListByUID(ctx context.Context, uid int64, offset int, limit int) ([]Sample, error) {
	var res []Sample
	err := g.db.WithContext(ctx).Where("uid = ?", uid).
		Order("ctime desc").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *SampleGORMDAO) CountByUID(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Sample{}).Where("uid = ?", uid).Count(&count).Error
	return count, err
}

func (g *SampleGORMDAO) ListByQuoteIDs(ctx context.Context, qids []int64, offset int, limit int) ([]Sample, error) {
	var res []Sample
	err := g.db.WithContext(ctx).Where("quote_id IN ?", qids).
		Order("ctime desc").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *SampleGORMDAO) CountByQuoteIDs(ctx context.Context, qids []int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Sample{}).Where("quote_id IN ?", qids).Count(&count).Error
	return count, err
}

func (g *SampleGORMDAO) CountByQuoteID(ctx context.Context, qid int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Sample{}).Where("quote_id = ?", qid).Count(&count).Error
	return count, err
}

func (g *SampleGORMDAO) FindProductsBySampleIDs(ctx context.Context, sids []int64) (map[int64][]SampleProduct, error) {
	var products []SampleProduct
	err := g.db.WithContext(ctx).Where("sample_id IN ?", sids).Order("id asc").Find(&products).Error
	if err != nil {
		return nil, err
	}
	res := make(map[int64][]SampleProduct, len(sids))
	for _, p := range products {
		res[p.SampleID] = append(res[p.SampleID], p)
	}
	return res, nil
}

const (
	DeliveryStatusPending   uint8 = 1
	DeliveryStatusShipped   uint8 = 2
	DeliveryStatusDelivered uint8 = 3
	DeliveryStatusCancelled uint8 = 4
)

type Sample struct {
	Id              int64  `gorm:"primaryKey;autoIncrement;comment:试样申请自增ID"`
	QuoteID         int64  `gorm:"column:quote_id;not null;index:idx_sample_quote_id;comment:报价单自增ID"`
	Uid             int64  `gorm:"not null;index:idx_sample_uid;comment:申请方ID"`
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

type SampleProduct struct {
	Id           int64  `gorm:"primaryKey;autoIncrement;comment:试样产品自增ID"`
	SampleID     int64  `gorm:"column:sample_id;not null;index:idx_sample_product_sample_id;comment:试样申请自增ID"`
	Name         string `gorm:"type:varchar(255);not null;comment:产品名称"`
	BrandModel   string `gorm:"type:varchar(255);not null;comment:品牌型号"`
	FactoryPrice int64  `gorm:"not null;comment:出厂价;单位为分"`
	Quantity     int64  `gorm:"not null;comment:数量"`
	Unit         string `gorm:"type:varchar(32);not null;comment:单位"`
	Purpose      string `gorm:"type:varchar(512);not null;default:'';comment:试样用途"`
	Ctime        int64
}
