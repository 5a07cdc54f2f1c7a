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

package sample

import (
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/quotemart/quotemart/internal/quote"
	"github.com/quotemart/quotemart/internal/sample/internal/repository"
	"github.com/quotemart/quotemart/internal/sample/internal/service"
	"github.com/quotemart/quotemart/internal/sample/internal/web"
)

func InitModule(db *egorm.Component, quoteModule *quote.Module) *Module {
	wire.Build(
		InitTablesOnce,
		repository.NewRepository,
		service.NewService,
		web.NewHandler,
		wire.FieldsOf(new(*quote.Module), "Svc"),
		wire.Struct(new(Module), "*"))
	return new(Module)
}
