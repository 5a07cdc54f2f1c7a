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
	"testing"

	"github.com/ego-component/egorm"
	"github.com/quotemart/quotemart/internal/quote/internal/repository/dao"
	testioc "github.com/quotemart/quotemart/internal/test/ioc"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestQuoteDAO(t *testing.T) {
	suite.Run(t, new(QuoteDAOTestSuite))
}

type QuoteDAOTestSuite struct {
	suite.Suite
	db  *egorm.Component
	dao dao.QuoteDAO
}

func (s *QuoteDAOTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	s.dao = dao.NewQuoteGORMDAO(s.db)
}

func (s *QuoteDAOTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `quotes`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `quote_products`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `unlock_records`").Error
	require.NoError(s.T(), err)
}

func (s *QuoteDAOTestSuite) newQuote(uid int64) (dao.Quote, []dao.QuoteProduct) {
	return dao.Quote{
			Uid:           uid,
			FactoryName:   "华东轴承厂",
			ContactName:   "王芳",
			ContactPhone:  "13800001111",
			BusinessScope: "深沟球轴承",
			Status:        dao.QuoteStatusApproved,
		}, []dao.QuoteProduct{
			{Name: "深沟球轴承", BrandModel: "6204-2RS", FactoryPrice: 350, DeliveryPrice: 420, MinOrder: 100, Unit: "套"},
			{Name: "角接触轴承", BrandModel: "7204C", FactoryPrice: 900, DeliveryPrice: 1050, MinOrder: 50, Unit: "套"},
		}
}

func (s *QuoteDAOTestSuite) TestCreateAndFind() {
	t := s.T()
	q, products := s.newQuote(100)
	id, err := s.dao.Create(context.Background(), q, products)
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	got, gotProducts, err := s.dao.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "华东轴承厂", got.FactoryName)
	require.Len(t, gotProducts, 2)
	for _, p := range gotProducts {
		require.Equal(t, id, p.QuoteID)
		require.NotZero(t, p.Ctime)
	}
}

// TestUpdateFullReplace 整单替换:产品行删旧插新,行数跟随新列表
func (s *QuoteDAOTestSuite) TestUpdateFullReplace() {
	t := s.T()
	q, products := s.newQuote(100)
	id, err := s.dao.Create(context.Background(), q, products)
	require.NoError(t, err)

	q.Id = id
	q.FactoryName = "华东轴承厂（更名）"
	err = s.dao.Update(context.Background(), q, []dao.QuoteProduct{
		{Name: "圆锥滚子轴承", BrandModel: "30204", FactoryPrice: 1200, DeliveryPrice: 1400, MinOrder: 20, Unit: "套"},
	})
	require.NoError(t, err)

	got, gotProducts, err := s.dao.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "华东轴承厂（更名）", got.FactoryName)
	require.Len(t, gotProducts, 1)
	require.Equal(t, "30204", gotProducts[0].BrandModel)
}

func (s *QuoteDAOTestSuite) TestUpdateOtherUID() {
	t := s.T()
	q, products := s.newQuote(100)
	id, err := s.dao.Create(context.Background(), q, products)
	require.NoError(t, err)

	q.Id = id
	q.Uid = 999
	err = s.dao.Update(context.Background(), q, products)
	require.ErrorIs(t, err, dao.ErrRowsNotAffected)

	// 产品行保持原样
	_, gotProducts, err := s.dao.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, gotProducts, 2)
}

func (s *QuoteDAOTestSuite) TestDeleteCascadesProducts() {
	t := s.T()
	q, products := s.newQuote(100)
	id, err := s.dao.Create(context.Background(), q, products)
	require.NoError(t, err)

	require.NoError(t, s.dao.Delete(context.Background(), id, 100))

	_, _, err = s.dao.FindByID(context.Background(), id)
	require.ErrorIs(t, err, dao.ErrDataNotFound)
	var cnt int64
	err = s.db.Model(&dao.QuoteProduct{}).Where("quote_id = ?", id).Count(&cnt).Error
	require.NoError(t, err)
	require.Zero(t, cnt)
}

// TestInsertUnlockRecordIdempotent 同一买家对同一报价单重复解锁,
// 唯一索引兜底,只留一条记录且不报错
func (s *QuoteDAOTestSuite) TestInsertUnlockRecordIdempotent() {
	t := s.T()
	r := dao.UnlockRecord{Uid: 100, QuoteID: 1, Method: 1}
	require.NoError(t, s.dao.InsertUnlockRecord(context.Background(), r))
	require.NoError(t, s.dao.InsertUnlockRecord(context.Background(), r))

	cnt, err := s.dao.CountUnlockRecords(context.Background(), 100, 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), cnt)
}
