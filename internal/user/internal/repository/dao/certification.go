package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
)

type CertificationDAO interface {
	Insert(ctx context.Context, c Certification) (int64, error)
	// FindActiveByUid 查审核中或已通过的记录,没有返回 ErrDataNotFound
	FindActiveByUid(ctx context.Context, uid int64) (Certification, error)
	FindLatestByUid(ctx context.Context, uid int64) (Certification, error)
}

type GORMCertificationDAO struct {
	db *egorm.Component
}

func NewGORMCertificationDAO(db *egorm.Component) CertificationDAO {
	return &GORMCertificationDAO{db: db}
}

func (cd *GORMCertificationDAO) Insert(ctx context.Context, c Certification) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := cd.db.WithContext(ctx).Create(&c).Error
	return c.Id, err
}

func (cd *GORMCertificationDAO) FindActiveByUid(ctx context.Context, uid int64) (Certification, error) {
	var c Certification
	err := cd.db.WithContext(ctx).
		Where("uid = ? AND status IN ?", uid,
			[]uint8{CertificationStatusPending, CertificationStatusApproved}).
		First(&c).Error
	return c, err
}

func (cd *GORMCertificationDAO) FindLatestByUid(ctx context.Context, uid int64) (Certification, error) {
	var c Certification
	err := cd.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("ctime DESC").First(&c).Error
	return c, err
}

const (
	CertificationStatusPending  uint8 = 1
	CertificationStatusApproved uint8 = 2
)

type Certification struct {
	Id  int64 `gorm:"primaryKey;autoIncrement"`
	Uid int64 `gorm:"not null;index:idx_certification_uid;comment:申请人ID"`

	CompanyName       string `gorm:"type:varchar(255);not null;comment:企业名称"`
	LegalPerson       string `gorm:"type:varchar(64);not null;comment:法人姓名"`
	RegisteredAddress string `gorm:"type:varchar(512);not null;comment:注册地址"`
	BusinessLicense   string `gorm:"type:varchar(512);not null;comment:营业执照图片"`
	LegalIdFront      string `gorm:"type:varchar(512);not null;comment:法人身份证人像面"`
	LegalIdBack       string `gorm:"type:varchar(512);not null;comment:法人身份证国徽面"`
	Status            uint8  `gorm:"type:tinyint unsigned;not null;comment:状态 1=审核中 2=已通过"`

	Ctime int64
	Utime int64
}
