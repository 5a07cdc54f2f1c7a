package repository

import (
	"context"
	"database/sql"

	"github.com/ecodeclub/ekit/slice"
	"github.com/quotemart/quotemart/internal/user/internal/domain"
	"github.com/quotemart/quotemart/internal/user/internal/repository/cache"
	"github.com/quotemart/quotemart/internal/user/internal/repository/dao"
)

var ErrUserNotFound = dao.ErrDataNotFound

//go:generate mockgen -source=./user.go -package=repomocks -destination=mocks/user.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	// Update 更新数据,只有非 0 值才会更新
	Update(ctx context.Context, u domain.User) error
	// SetCertified 认证通过后置位
	SetCertified(ctx context.Context, id int64) error
	FindByWechat(ctx context.Context, miniOpenId string) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
}

// CachedUserRepository 使用了缓存的 repository 实现
type CachedUserRepository struct {
	dao   dao.UserDAO
	cache cache.UserCache
}

func NewCachedUserRepository(d dao.UserDAO,
	c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:   d,
		cache: c,
	}
}

func (ur *CachedUserRepository) Update(ctx context.Context, u domain.User) error {
	err := ur.dao.UpdateNonZeroFields(ctx, ur.domainToEntity(u))
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, u.Id)
}

func (ur *CachedUserRepository) SetCertified(ctx context.Context, id int64) error {
	err := ur.dao.SetCertified(ctx, id)
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, id)
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, dao.User{
		SN:       u.SN,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
		WechatUnionId: sql.NullString{
			String: u.WechatInfo.UnionId,
			Valid:  u.WechatInfo.UnionId != "",
		},
		WechatOpenId: sql.NullString{
			String: u.WechatInfo.OpenId,
			Valid:  u.WechatInfo.OpenId != "",
		},
		WechatMiniOpenId: sql.NullString{
			String: u.WechatInfo.MiniOpenId,
			Valid:  u.WechatInfo.MiniOpenId != "",
		},
	})
}

func (ur *CachedUserRepository) FindByWechat(ctx context.Context,
	miniOpenId string) (domain.User, error) {
	u, err := ur.dao.FindByMiniOpenId(ctx, miniOpenId)
	return ur.entityToDomain(u), err
}

func (ur *CachedUserRepository) FindById(ctx context.Context,
	id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, err
	}
	ue, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = ur.entityToDomain(ue)
	// 忽略掉这里的错误
	_ = ur.cache.Set(ctx, u)
	return u, nil
}

func (ur *CachedUserRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	us, err := ur.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return ur.entityToDomain(src)
	}), nil
}

func (ur *CachedUserRepository) domainToEntity(u domain.User) dao.User {
	return dao.User{
		Id:       u.Id,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
		Phone: sql.NullString{
			String: u.Phone,
			Valid:  u.Phone != "",
		},
	}
}

func (ur *CachedUserRepository) entityToDomain(ue dao.User) domain.User {
	return domain.User{
		Id:          ue.Id,
		Nickname:    ue.Nickname,
		SN:          ue.SN,
		Avatar:      ue.Avatar,
		Phone:       ue.Phone.String,
		IsCertified: ue.IsCertified,
		WechatInfo: domain.WechatInfo{
			OpenId:     ue.WechatOpenId.String,
			UnionId:    ue.WechatUnionId.String,
			MiniOpenId: ue.WechatMiniOpenId.String,
		},
		Ctime: ue.Ctime,
	}
}
