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

	"github.com/ecodeclub/ecache"
	mq "github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/quotemart/quotemart/internal/contract"
	"github.com/quotemart/quotemart/internal/order"
	"github.com/quotemart/quotemart/internal/payment"
	"github.com/quotemart/quotemart/internal/quote"
	"github.com/quotemart/quotemart/internal/sample"
	"github.com/quotemart/quotemart/internal/user"
)

type Modules struct {
	User     *user.Module
	Quote    *quote.Module
	Order    *order.Module
	Sample   *sample.Module
	Contract *contract.Module
	Payment  *payment.Module
}

// initModules 模块初始化有明确的先后顺序:
// 报价单先占位引用计数器,订单/试样就绪后回填
func initModules(db *egorm.Component, ec ecache.Cache, q mq.MQ) (*Modules, error) {
	userModule, err := user.InitModule(db, ec, q)
	if err != nil {
		return nil, err
	}
	quoteModule, orderCounter, sampleCounter := InitQuoteModule(db, ec)
	orderModule := order.InitModule(db, quoteModule)
	orderCounter.bind(orderModule.Svc.CountByQuoteID)
	sampleModule := sample.InitModule(db, quoteModule)
	sampleCounter.bind(sampleModule.Svc.CountByQuoteID)
	contractModule := contract.InitModule(db, orderModule, sampleModule)
	paymentModule, err := payment.InitModule(db, q, quoteModule, userModule)
	if err != nil {
		return nil, err
	}
	return &Modules{
		User:     userModule,
		Quote:    quoteModule,
		Order:    orderModule,
		Sample:   sampleModule,
		Contract: contractModule,
		Payment:  paymentModule,
	}, nil
}

// deferredCounter 延迟绑定的引用计数器。
// 报价单模块要先于订单/试样模块初始化,但删除校验又依赖后两者,
// 这里先占位,订单/试样模块就绪后再绑定真正的实现
type deferredCounter struct {
	name string
	fn   func(ctx context.Context, quoteID int64) (int64, error)
}

func (c *deferredCounter) CountByQuoteID(ctx context.Context, quoteID int64) (int64, error) {
	if c.fn == nil {
		return 0, fmt.Errorf("%s 引用计数器尚未就绪", c.name)
	}
	return c.fn(ctx, quoteID)
}

func (c *deferredCounter) bind(fn func(ctx context.Context, quoteID int64) (int64, error)) {
	c.fn = fn
}

func InitQuoteModule(db *egorm.Component, ec ecache.Cache) (*quote.Module, *deferredCounter, *deferredCounter) {
	orderCounter := &deferredCounter{name: "order"}
	sampleCounter := &deferredCounter{name: "sample"}
	m := quote.InitModule(db, ec, []quote.ReferenceCounter{orderCounter, sampleCounter})
	return m, orderCounter, sampleCounter
}
