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

// SaveSampleReq 创建/更新试样申请,更新时带 ID
type SaveSampleReq struct {
	ID              int64           `json:"id,omitempty"`
	QuoteID         int64           `json:"quoteId"`
	CompanyName     string          `json:"companyName"`
	ContactName     string          `json:"contactName"`
	ContactPhone    string          `json:"contactPhone"`
	RecipientName   string          `json:"recipientName"`
	DeliveryAddress string          `json:"deliveryAddress"`
	Remark          string          `json:"remark,omitempty"`
	Products        []SampleProduct `json:"products"`
}

type SaveSampleResp struct {
	ID int64 `json:"id"`
}

type SampleProduct struct {
	Name         string `json:"name"`
	BrandModel   string `json:"brandModel"`
	FactoryPrice int64  `json:"factoryPrice"`
	Quantity     int64  `json:"quantity"`
	Unit         string `json:"unit"`
	Purpose      string `json:"purpose,omitempty"`
}

// UpdateDeliveryReq 工厂侧推进配送状态,发货时带物流单号
type UpdateDeliveryReq struct {
	ID             int64  `json:"id"`
	DeliveryStatus uint8  `json:"deliveryStatus"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
}

type DeleteSampleReq struct {
	ID int64 `json:"id"`
}

type ListSamplesReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListSamplesResp struct {
	Total   int64    `json:"total,omitempty"`
	Samples []Sample `json:"samples,omitempty"`
}

type DetailReq struct {
	ID int64 `json:"id"`
}

type DetailResp struct {
	Sample Sample `json:"sample"`
}

type Sample struct {
	ID              int64           `json:"id"`
	QuoteID         int64           `json:"quoteId"`
	FactoryName     string          `json:"factoryName,omitempty"`
	CompanyName     string          `json:"companyName"`
	ContactName     string          `json:"contactName"`
	ContactPhone    string          `json:"contactPhone"`
	RecipientName   string          `json:"recipientName"`
	DeliveryAddress string          `json:"deliveryAddress"`
	Remark          string          `json:"remark,omitempty"`
	DeliveryStatus  uint8           `json:"deliveryStatus"`
	TrackingNumber  string          `json:"trackingNumber,omitempty"`
	Products        []SampleProduct `json:"products"`
	Ctime           int64           `json:"ctime"`
	Utime           int64           `json:"utime"`
}
