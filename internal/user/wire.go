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

//go:build wireinject

package user

import (
	"github.com/ecodeclub/ecache"
	mq "github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/quotemart/quotemart/internal/user/internal/repository"
	"github.com/quotemart/quotemart/internal/user/internal/repository/cache"
	"github.com/quotemart/quotemart/internal/user/internal/service"
	"github.com/quotemart/quotemart/internal/user/internal/web"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ) (*Module, error) {
	wire.Build(
		InitUserDAO,
		InitCertificationDAO,
		cache.NewUserECache,
		repository.NewCachedUserRepository,
		repository.NewCertificationRepository,
		initRegistrationEventProducer,
		initWechatMiniService,
		service.NewUserService,
		service.NewAutoCompanyVerifier,
		service.NewCertificationService,
		web.NewHandler,
		wire.Struct(new(Module), "*"))
	return new(Module), nil
}
