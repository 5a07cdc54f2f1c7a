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

package domain

type QuoteStatus uint8

func (s QuoteStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	QuoteStatusDraft    QuoteStatus = 1
	QuoteStatusApproved QuoteStatus = 2
)

// Quote 工厂发布的报价单，订单和样品申请都以它为根引用
type Quote struct {
	ID            int64
	UID           int64
	FactoryName   string
	ContactName   string
	ContactPhone  string
	ContactEmail  string
	BusinessScope string
	CustomNotice  string
	Status        QuoteStatus
	ViewCnt       int64
	Products      []QuoteProduct
	Ctime         int64
	Utime         int64
}

type QuoteProduct struct {
	Name string
	// 品牌型号
	BrandModel string
	// 出厂价, 单位为分
	FactoryPrice int64
	// 到岸价, 单位为分
	DeliveryPrice int64
	// 最小起订量
	MinOrder int64
	Unit     string
}

type UnlockMethod uint8

func (m UnlockMethod) ToUint8() uint8 {
	return uint8(m)
}

const (
	// UnlockMethodPayment 付费解锁
	UnlockMethodPayment UnlockMethod = 1
)

// UnlockRecord 买家解锁报价单联系方式的记录,同一买家对同一报价单至多一条
type UnlockRecord struct {
	ID      int64
	UID     int64
	QuoteID int64
	Method  UnlockMethod
	Ctime   int64
}
