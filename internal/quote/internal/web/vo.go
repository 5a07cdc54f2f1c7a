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

// SaveQuoteReq 创建/更新报价单,更新时带 ID
type SaveQuoteReq struct {
	ID            int64          `json:"id,omitempty"`
	FactoryName   string         `json:"factoryName"`
	ContactName   string         `json:"contactName"`
	ContactPhone  string         `json:"contactPhone"`
	ContactEmail  string         `json:"contactEmail,omitempty"`
	BusinessScope string         `json:"businessScope"`
	CustomNotice  string         `json:"customNotice,omitempty"`
	Products      []QuoteProduct `json:"products"`
}

type SaveQuoteResp struct {
	ID int64 `json:"id"`
}

type QuoteProduct struct {
	Name          string `json:"name"`
	BrandModel    string `json:"brandModel"`
	FactoryPrice  int64  `json:"factoryPrice"`
	DeliveryPrice int64  `json:"deliveryPrice"`
	MinOrder      int64  `json:"minOrder"`
	Unit          string `json:"unit"`
}

type DeleteQuoteReq struct {
	ID int64 `json:"id"`
}

// ListQuotesReq 浏览已发布报价单,keyword 为空表示不过滤
type ListQuotesReq struct {
	Keyword string `json:"keyword,omitempty"`
	Offset  int    `json:"offset,omitempty"`
	Limit   int    `json:"limit,omitempty"`
}

type ListQuotesResp struct {
	Total  int64   `json:"total,omitempty"`
	Quotes []Quote `json:"quotes,omitempty"`
}

type ListMineReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type DetailReq struct {
	ID int64 `json:"id"`
}

type DetailResp struct {
	Quote Quote `json:"quote"`
}

type Quote struct {
	ID          int64  `json:"id"`
	FactoryName string `json:"factoryName"`
	// 联系方式只对发布者本人和已解锁买家可见
	ContactName   string         `json:"contactName,omitempty"`
	ContactPhone  string         `json:"contactPhone,omitempty"`
	ContactEmail  string         `json:"contactEmail,omitempty"`
	BusinessScope string         `json:"businessScope"`
	CustomNotice  string         `json:"customNotice,omitempty"`
	Status        uint8          `json:"status"`
	ViewCnt       int64          `json:"viewCnt"`
	Unlocked      bool           `json:"unlocked"`
	Products      []QuoteProduct `json:"products"`
	Ctime         int64          `json:"ctime"`
	Utime         int64          `json:"utime"`
}
