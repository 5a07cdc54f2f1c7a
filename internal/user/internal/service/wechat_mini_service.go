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

package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ecodeclub/ekit/net/httpx"
	"github.com/gotomicro/ego/core/elog"
	"github.com/quotemart/quotemart/internal/user/internal/domain"
)

// OAuth2Service 把授权码换成稳定的微信身份
type OAuth2Service interface {
	VerifyCode(ctx context.Context, code string) (domain.WechatInfo, error)
}

type WechatMiniService struct {
	appId     string
	appSecret string
	logger    *elog.Component
	client    *http.Client
}

func NewWechatMiniService(appId string, appSecret string) OAuth2Service {
	return &WechatMiniService{
		appId:     appId,
		appSecret: appSecret,
		logger:    elog.DefaultLogger,
		client:    http.DefaultClient,
	}
}

func (s *WechatMiniService) VerifyCode(ctx context.Context, code string) (domain.WechatInfo, error) {
	const baseURL = "https://api.weixin.qq.com/sns/jscode2session"
	var res Result
	err := httpx.NewRequest(ctx, http.MethodGet, baseURL).
		Client(s.client).
		AddParam("appid", s.appId).
		AddParam("secret", s.appSecret).AddParam("js_code", code).
		AddParam("grant_type", "authorization_code").Do().
		JSONScan(&res)
	if err != nil {
		return domain.WechatInfo{}, err
	}
	if res.ErrCode != 0 {
		return domain.WechatInfo{},
			fmt.Errorf("小程序登录失败 %d, %s", res.ErrCode, res.ErrMsg)
	}
	return domain.WechatInfo{
		MiniOpenId: res.OpenId,
		UnionId:    res.UnionId,
	}, nil
}

type Result struct {
	ErrCode int64  `json:"errcode"`
	ErrMsg  string `json:"errmsg"`

	SessionKey string `json:"session_key"`

	OpenId  string `json:"openid"`
	UnionId string `json:"unionid"`
}
