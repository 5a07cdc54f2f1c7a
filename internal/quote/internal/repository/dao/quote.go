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
)

// ErrDataNotFound 通用的数据没找到
var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrRowsNotAffected 过滤条件没有命中任何行,调用方据此判定权限/存在性
var ErrRowsNotAffected = errors.New("没有更新任何行")

const uniqueIndexErrNo uint16 = 1062

type QuoteDAO interface {
	Create(ctx context.Context, q Quote, products []QuoteProduct) (int64, error)
	Update(ctx context.Context, q Quote, products []QuoteProduct) error
	Delete(ctx context.Context, id int64, uid int64) error
	FindByID(ctx context.Context, id int64) (Quote, []QuoteProduct, error)
	ListByUID(ctx context.Context, uid int64, offset int, limit int) ([]Quote, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
	ListApproved(ctx context.Context, keyword string, offset int, limit int) ([]Quote, error)
	CountApproved(ctx context.Context, keyword string) (int64, error)
	FindProductsByQuoteIDs(ctx context.Context, qids []int64) (map[int64][]QuoteProduct, error)
	IDsByUID(ctx context.Context, uid int64) ([]int64, error)
	IncrViewCnt(ctx context.Context, id int64) error

	InsertUnlockRecord(ctx context.Context, r UnlockRecord) error
	FindUnlockRecord(ctx context.Context, uid int64, qid int64) (UnlockRecord, error)
	CountUnlockRecords(ctx context.Context, uid int64, qid int64) (int64, error)
}

type QuoteGORMDAO struct {
	db *egorm.Component
}

func NewQuoteGORMDAO(db *egorm.Component) QuoteDAO {
	return &QuoteGORMDAO{db: db}
}

func (g *QuoteGORMDAO) Create(ctx context.Context, q Quote, products []QuoteProduct) (int64, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		q.Ctime, q.Utime = now, now
		if err := tx.Create(&q).Error; err != nil {
			return err
		}
		for i := range products {
			products[i].QuoteID = q.Id
			products[i].Ctime = now
		}
		return tx.Create(&products).Error
	})
	return q.Id, err
}

// Update 整单替换:主记录和产品列表在同一事务里删旧插新
func (g *QuoteGORMDAO) Update(ctx context.Context, q Quote, products []QuoteProduct) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		res := tx.Model(&Quote{}).
			Where("id = ? AND uid = ?", q.Id, q.Uid).
			Updates(map[string]any{
				"factory_name":   q.FactoryName,
				"contact_name":   q.ContactName,
				"contact_phone":  q.ContactPhone,
				"contact_email":  q.ContactEmail,
				"business_scope": q.BusinessScope,
				"custom_notice":  q.CustomNotice,
				"utime":          now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRowsNotAffected
		}
		if err := tx.Where("quote_id = ?", q.Id).Delete(&QuoteProduct{}).Error; err != nil {
			return err
		}
		for i := range products {
			products[i].QuoteID = q.Id
			products[i].Ctime = now
		}
		return tx.Create(&products).Error
	})
}

func (g *QuoteGORMDAO) Delete(ctx context.Context, id int64, uid int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND uid = ?", id, uid).Delete(&Quote{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRowsNotAffected
		}
		return tx.Where("quote_id = ?", id).Delete(&QuoteProduct{}).Error
	})
}

func (g *QuoteGORMDAO) FindByID(ctx context.Context, id int64) (Quote, []QuoteProduct, error) {
	var (
		q        Quote
		products []QuoteProduct
	)
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&q).Error
	if err != nil {
		return Quote{}, nil, err
	}
	err = g.db.WithContext(ctx).Where("quote_id = ?", id).Order("id asc").Find(&products).Error
	return q, products, err
}

func (g *QuoteGORMDAO) ListByUID(ctx context.Context, uid int64, offset int, limit int) ([]Quote, error) {
	var res []Quote
	err := g.db.WithContext(ctx).Where("uid = ?", uid).
		Order("ctime desc").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *QuoteGORMDAO) CountByUID(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Quote{}).Where("uid = ?", uid).Count(&count).Error
	return count, err
}

func (g *QuoteGORMDAO) ListApproved(ctx context.Context, keyword string, offset int, limit int) ([]Quote, error) {
	var res []Quote
	query := g.db.WithContext(ctx).Where("status = ?", QuoteStatusApproved)
	if keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("factory_name LIKE ? OR business_scope LIKE ?", like, like)
	}
	err := query.Order("ctime desc").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *QuoteGORMDAO) CountApproved(ctx context.Context, keyword string) (int64, error) {
	var count int64
	query := g.db.WithContext(ctx).Model(&Quote{}).Where("status = ?", QuoteStatusApproved)
	if keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("factory_name LIKE ? OR business_scope LIKE ?", like, like)
	}
	err := query.Count(&count).Error
	return count, err
}

func (g *QuoteGORMDAO) FindProductsByQuoteIDs(ctx context.Context, qids []int64) (map[int64][]QuoteProduct, error) {
	var products []QuoteProduct
	err := g.db.WithContext(ctx).Where("quote_id IN ?", qids).Order("id asc").Find(&products).Error
	if err != nil {
		return nil, err
	}
	res := make(map[int64][]QuoteProduct, len(qids))
	for _, p := range products {
		res[p.QuoteID] = append(res[p.QuoteID], p)
	}
	return res, nil
}

func (g *QuoteGORMDAO) IDsByUID(ctx context.Context, uid int64) ([]int64, error) {
	var ids []int64
	err := g.db.WithContext(ctx).Model(&Quote{}).Where("uid = ?", uid).Pluck("id", &ids).Error
	return ids, err
}

func (g *QuoteGORMDAO) IncrViewCnt(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Model(&Quote{}).Where("id = ?", id).
		Updates(map[string]any{
			"view_cnt": gorm.Expr("view_cnt + 1"),
			"utime":    time.Now().UnixMilli(),
		}).Error
}

// InsertUnlockRecord 幂等插入,唯一索引冲突视为成功
func (g *QuoteGORMDAO) InsertUnlockRecord(ctx context.Context, r UnlockRecord) error {
	r.Ctime = time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Create(&r).Error
	if me, ok := err.(*mysql.MySQLError); ok && me.Number == uniqueIndexErrNo {
		return nil
	}
	return err
}

func (g *QuoteGORMDAO) FindUnlockRecord(ctx context.Context, uid int64, qid int64) (UnlockRecord, error) {
	var r UnlockRecord
	err := g.db.WithContext(ctx).Where("uid = ? AND quote_id = ?", uid, qid).First(&r).Error
	return r, err
}

func (g *QuoteGORMDAO) CountUnlockRecords(ctx context.Context, uid int64, qid int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&UnlockRecord{}).
		Where("uid = ? AND quote_id = ?", uid, qid).Count(&count).Error
	return count, err
}

const (
	QuoteStatusDraft    uint8 = 1
	QuoteStatusApproved uint8 = 2
)

type Quote struct {
	Id            int64  `gorm:"primaryKey;autoIncrement;comment:报价单自增ID"`
	Uid           int64  `gorm:"not null;index:idx_quote_uid;comment:发布者ID"`
	FactoryName   string `gorm:"type:varchar(255);not null;comment:工厂名称"`
	ContactName   string `gorm:"type:varchar(255);not null;comment:联系人"`
	ContactPhone  string `gorm:"type:varchar(64);not null;comment:联系电话"`
	ContactEmail  string `gorm:"type:varchar(255);not null;default:'';comment:联系邮箱"`
	BusinessScope string `gorm:"type:varchar(1024);not null;comment:经营范围"`
	CustomNotice  string `gorm:"type:varchar(1024);not null;default:'';comment:定制须知"`
	Status        uint8  `gorm:"type:tinyint unsigned;not null;default:2;comment:状态 1=草稿 2=已发布"`
	ViewCnt       int64  `gorm:"not null;default:0;comment:浏览量"`
	Ctime         int64
	Utime         int64
}

type QuoteProduct struct {
	Id            int64  `gorm:"primaryKey;autoIncrement;comment:报价产品自增ID"`
	QuoteID       int64  `gorm:"column:quote_id;not null;index:idx_quote_product_quote_id;comment:报价单自增ID"`
	Name          string `gorm:"type:varchar(255);not null;comment:产品名称"`
	BrandModel    string `gorm:"type:varchar(255);not null;comment:品牌型号"`
	FactoryPrice  int64  `gorm:"not null;comment:出厂价;单位为分"`
	DeliveryPrice int64  `gorm:"not null;comment:到岸价;单位为分"`
	MinOrder      int64  `gorm:"not null;comment:最小起订量"`
	Unit          string `gorm:"type:varchar(32);not null;comment:单位"`
	Ctime         int64
}

type UnlockRecord struct {
	Id      int64 `gorm:"primaryKey;autoIncrement;comment:解锁记录自增ID"`
	Uid     int64 `gorm:"not null;uniqueIndex:uniq_unlock_uid_quote_id;comment:买家ID"`
	QuoteID int64 `gorm:"column:quote_id;not null;uniqueIndex:uniq_unlock_uid_quote_id;comment:报价单自增ID"`
	Method  uint8 `gorm:"type:tinyint unsigned;not null;default:1;comment:解锁方式 1=支付"`
	Ctime   int64
}
