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

package web

import (
	"errors"
	"strconv"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/quotemart/quotemart/internal/user/internal/domain"
	"github.com/quotemart/quotemart/internal/user/internal/repository"
	"github.com/quotemart/quotemart/internal/user/internal/service"
)

var _ ginx.Handler = (*Handler)(nil)

type Handler struct {
	weSvc   service.OAuth2Service
	userSvc service.UserService
	certSvc service.CertificationService
}

func NewHandler(weSvc service.OAuth2Service,
	userSvc service.UserService,
	certSvc service.CertificationService) *Handler {
	return &Handler{
		weSvc:   weSvc,
		userSvc: userSvc,
		certSvc: certSvc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
	users.POST("/certification", ginx.BS[CertificationReq](h.SubmitCertification))
	users.GET("/certification", ginx.S(h.CertificationStatus))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	oauth2 := server.Group("/oauth2")
	oauth2.Any("/wechat/mini/login", ginx.B[WechatCallback](h.MiniLogin))
	oauth2.Any("/wechat/token/refresh", ginx.W(h.RefreshAccessToken))
}

// MiniLogin 小程序登录,code 换 openid 再查找或初始化用户
func (h *Handler) MiniLogin(ctx *ginx.Context, req WechatCallback) (ginx.Result, error) {
	info, err := h.weSvc.VerifyCode(ctx, req.Code)
	if err != nil {
		return systemErrorResult, err
	}
	user, err := h.userSvc.FindOrCreateByWechat(ctx, info)
	if err != nil {
		return systemErrorResult, err
	}
	_, err = session.NewSessionBuilder(ctx, user.Id).
		SetJwtData(map[string]string{
			"certified": strconv.FormatBool(user.IsCertified),
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Profile{
			Id:          user.Id,
			Nickname:    user.Nickname,
			Avatar:      user.Avatar,
			IsCertified: user.IsCertified,
		},
	}, nil
}

func (h *Handler) RefreshAccessToken(ctx *ginx.Context) (ginx.Result, error) {
	err := session.RenewAccessToken(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return ginx.Result{}, err
	}
	return ginx.Result{
		Data: Profile{
			Id:          u.Id,
			Nickname:    u.Nickname,
			Avatar:      u.Avatar,
			Phone:       u.Phone,
			IsCertified: u.IsCertified,
		},
	}, nil
}

func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	err := h.userSvc.UpdateNonSensitiveInfo(ctx, domain.User{
		Id:       uid,
		Nickname: req.Nickname,
		Avatar:   req.Avatar,
		Phone:    req.Phone,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) SubmitCertification(ctx *ginx.Context, req CertificationReq, sess session.Session) (ginx.Result, error) {
	c, err := h.certSvc.Submit(ctx, domain.Certification{
		Uid:               sess.Claims().Uid,
		CompanyName:       req.CompanyName,
		LegalPerson:       req.LegalPerson,
		RegisteredAddress: req.RegisteredAddress,
		BusinessLicense:   req.BusinessLicense,
		LegalIdFront:      req.LegalIdFront,
		LegalIdBack:       req.LegalIdBack,
	})
	switch {
	case errors.Is(err, service.ErrInvalidCertification):
		return invalidInputResult, nil
	case errors.Is(err, service.ErrAlreadyCertified):
		return alreadyCertifiedResult, nil
	case errors.Is(err, service.ErrCertificationPending):
		return certificationPendingResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CertificationResp{
			Id:     c.Id,
			Status: c.Status.ToUint8(),
		},
	}, nil
}

func (h *Handler) CertificationStatus(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	c, err := h.certSvc.Status(ctx, sess.Claims().Uid)
	if errors.Is(err, repository.ErrCertificationNotFound) {
		// 没申请过不是错误
		return ginx.Result{Data: CertificationResp{}}, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CertificationResp{
			Id:          c.Id,
			CompanyName: c.CompanyName,
			LegalPerson: c.LegalPerson,
			Status:      c.Status.ToUint8(),
			Ctime:       c.Ctime,
		},
	}, nil
}
