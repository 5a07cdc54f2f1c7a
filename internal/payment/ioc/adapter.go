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

package ioc

import (
	"context"
	"fmt"

	"github.com/quotemart/quotemart/internal/payment/internal/service"
	"github.com/quotemart/quotemart/internal/quote"
	"github.com/quotemart/quotemart/internal/user"
)

func InitOpenIDResolver(svc user.UserService) service.OpenIDResolver {
	return &openIDResolver{svc: svc}
}

type openIDResolver struct {
	svc user.UserService
}

func (r *openIDResolver) MiniOpenID(ctx context.Context, uid int64) (string, error) {
	u, err := r.svc.Profile(ctx, uid)
	if err != nil {
		return "", err
	}
	if u.WechatInfo.MiniOpenId == "" {
		return "", fmt.Errorf("用户 %d 没有绑定小程序", uid)
	}
	return u.WechatInfo.MiniOpenId, nil
}

func InitQuoteUnlocker(svc quote.Service) service.QuoteUnlocker {
	return &quoteUnlocker{svc: svc}
}

type quoteUnlocker struct {
	svc quote.Service
}

func (q *quoteUnlocker) UnlockByPayment(ctx context.Context, uid int64, quoteID int64) error {
	return q.svc.Unlock(ctx, uid, quoteID, quote.UnlockMethodPayment)
}
