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

//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/quotemart/quotemart/internal/quote"
	"github.com/quotemart/quotemart/internal/quote/internal/errs"
	"github.com/quotemart/quotemart/internal/quote/internal/web"
	"github.com/quotemart/quotemart/internal/test"
	testioc "github.com/quotemart/quotemart/internal/test/ioc"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	factoryUID = int64(100)
	buyerUID   = int64(200)
)

// stubCounter 可控的引用计数,模拟订单/样品对报价单的引用
type stubCounter struct {
	count int64
}

func (c *stubCounter) CountByQuoteID(_ context.Context, _ int64) (int64, error) {
	return c.count, nil
}

func TestQuoteHandler(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

type QuoteHandlerTestSuite struct {
	suite.Suite
	server  *egin.Component
	db      *egorm.Component
	module  *quote.Module
	counter *stubCounter
	// 当前请求以谁的身份发起
	uid int64
}

func (s *QuoteHandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.counter = &stubCounter{}
	s.module = quote.InitModule(s.db, testioc.InitCache(), []quote.ReferenceCounter{s.counter})

	econf.Set("web", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("web").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: s.uid,
		}))
	})
	s.module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	s.uid = factoryUID
	s.counter.count = 0
}

func (s *QuoteHandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `quotes`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `quote_products`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `unlock_records`").Error
	require.NoError(s.T(), err)
}

func (s *QuoteHandlerTestSuite) createQuote() int64 {
	t := s.T()
	var res test.Result[web.SaveQuoteResp]
	code := s.post("/quotes/create", web.SaveQuoteReq{
		FactoryName:   "华东轴承厂",
		ContactName:   "王芳",
		ContactPhone:  "13800001111",
		BusinessScope: "深沟球轴承",
		Products: []web.QuoteProduct{
			{Name: "深沟球轴承", BrandModel: "6204-2RS", FactoryPrice: 350, DeliveryPrice: 420, MinOrder: 100, Unit: "套"},
		},
	}, &res)
	require.Equal(t, http.StatusOK, code)
	require.Greater(t, res.Data.ID, int64(0))
	return res.Data.ID
}

func (s *QuoteHandlerTestSuite) post(path string, reqBody any, res any) int {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(reqBody))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := httptest.NewRecorder()
	s.server.ServeHTTP(recorder, req)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), res))
	return recorder.Code
}

// TestDetailContactVisibility 联系方式只对发布者和已解锁买家可见
func (s *QuoteHandlerTestSuite) TestDetailContactVisibility() {
	t := s.T()
	id := s.createQuote()

	// 发布者本人可见
	var res test.Result[web.DetailResp]
	code := s.post("/quotes/detail", web.DetailReq{ID: id}, &res)
	require.Equal(t, http.StatusOK, code)
	require.True(t, res.Data.Quote.Unlocked)
	require.Equal(t, "13800001111", res.Data.Quote.ContactPhone)

	// 未解锁买家不可见
	s.uid = buyerUID
	res = test.Result[web.DetailResp]{}
	code = s.post("/quotes/detail", web.DetailReq{ID: id}, &res)
	require.Equal(t, http.StatusOK, code)
	require.False(t, res.Data.Quote.Unlocked)
	require.Empty(t, res.Data.Quote.ContactPhone)
	require.Len(t, res.Data.Quote.Products, 1)

	// 解锁后可见
	err := s.module.Svc.Unlock(context.Background(), buyerUID, id, quote.UnlockMethodPayment)
	require.NoError(t, err)
	res = test.Result[web.DetailResp]{}
	code = s.post("/quotes/detail", web.DetailReq{ID: id}, &res)
	require.Equal(t, http.StatusOK, code)
	require.True(t, res.Data.Quote.Unlocked)
	require.Equal(t, "13800001111", res.Data.Quote.ContactPhone)
}

// TestDeleteReferenced 被订单/样品引用的报价单禁止删除
func (s *QuoteHandlerTestSuite) TestDeleteReferenced() {
	t := s.T()
	id := s.createQuote()

	s.counter.count = 2
	var res test.Result[any]
	code := s.post("/quotes/delete", web.DeleteQuoteReq{ID: id}, &res)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, errs.QuoteReferenced.Code, res.Code)

	// 引用清零后可删
	s.counter.count = 0
	res = test.Result[any]{}
	code = s.post("/quotes/delete", web.DeleteQuoteReq{ID: id}, &res)
	require.Equal(t, http.StatusOK, code)
}

func (s *QuoteHandlerTestSuite) TestDeleteOtherUID() {
	t := s.T()
	id := s.createQuote()

	s.uid = buyerUID
	var res test.Result[any]
	code := s.post("/quotes/delete", web.DeleteQuoteReq{ID: id}, &res)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, errs.PermissionDenied.Code, res.Code)
}
