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

package user

import (
	"github.com/quotemart/quotemart/internal/user/internal/domain"
	"github.com/quotemart/quotemart/internal/user/internal/service"
	"github.com/quotemart/quotemart/internal/user/internal/web"
)

type (
	Handler       = web.Handler
	User          = domain.User
	WechatInfo    = domain.WechatInfo
	Certification = domain.Certification

	// UserService 方便测试
	UserService          = service.UserService
	CertificationService = service.CertificationService
)

type Module struct {
	Hdl     *Handler
	Svc     UserService
	CertSvc CertificationService
}
