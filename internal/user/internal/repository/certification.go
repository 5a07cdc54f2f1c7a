package repository

import (
	"context"

	"github.com/quotemart/quotemart/internal/user/internal/domain"
	"github.com/quotemart/quotemart/internal/user/internal/repository/dao"
)

var ErrCertificationNotFound = dao.ErrDataNotFound

type CertificationRepository interface {
	Create(ctx context.Context, c domain.Certification) (int64, error)
	FindActiveByUid(ctx context.Context, uid int64) (domain.Certification, error)
	FindLatestByUid(ctx context.Context, uid int64) (domain.Certification, error)
}

type certificationRepository struct {
	dao dao.CertificationDAO
}

func NewCertificationRepository(d dao.CertificationDAO) CertificationRepository {
	return &certificationRepository{dao: d}
}

func (cr *certificationRepository) Create(ctx context.Context, c domain.Certification) (int64, error) {
	return cr.dao.Insert(ctx, cr.toEntity(c))
}

func (cr *certificationRepository) FindActiveByUid(ctx context.Context, uid int64) (domain.Certification, error) {
	c, err := cr.dao.FindActiveByUid(ctx, uid)
	if err != nil {
		return domain.Certification{}, err
	}
	return cr.toDomain(c), nil
}

func (cr *certificationRepository) FindLatestByUid(ctx context.Context, uid int64) (domain.Certification, error) {
	c, err := cr.dao.FindLatestByUid(ctx, uid)
	if err != nil {
		return domain.Certification{}, err
	}
	return cr.toDomain(c), nil
}

func (cr *certificationRepository) toEntity(c domain.Certification) dao.Certification {
	return dao.Certification{
		Id:                c.Id,
		Uid:               c.Uid,
		CompanyName:       c.CompanyName,
		LegalPerson:       c.LegalPerson,
		RegisteredAddress: c.RegisteredAddress,
		BusinessLicense:   c.BusinessLicense,
		LegalIdFront:      c.LegalIdFront,
		LegalIdBack:       c.LegalIdBack,
		Status:            c.Status.ToUint8(),
	}
}

func (cr *certificationRepository) toDomain(c dao.Certification) domain.Certification {
	return domain.Certification{
		Id:                c.Id,
		Uid:               c.Uid,
		CompanyName:       c.CompanyName,
		LegalPerson:       c.LegalPerson,
		RegisteredAddress: c.RegisteredAddress,
		BusinessLicense:   c.BusinessLicense,
		LegalIdFront:      c.LegalIdFront,
		LegalIdBack:       c.LegalIdBack,
		Status:            domain.CertificationStatus(c.Status),
		Ctime:             c.Ctime,
		Utime:             c.Utime,
	}
}
