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

// SaveOrderReq 创建/更新订单,更新时带 ID
type SaveOrderReq struct {
	ID              int64          `json:"id,omitempty"`
	QuoteID         int64          `json:"quoteId"`
	CompanyName     string         `json:"companyName"`
	ContactName     string         `json:"contactName"`
	ContactPhone    string         `json:"contactPhone"`
	RecipientName   string         `json:"recipientName"`
	DeliveryAddress string         `json:"deliveryAddress"`
	Remark          string         `json:"remark,omitempty"`
	Products        []OrderProduct `json:"products"`
}

type SaveOrderResp struct {
	ID int64 `json:"id"`
}

type OrderProduct struct {
	Name          string `json:"name"`
	BrandModel    string `json:"brandModel"`
	FactoryPrice  int64  `json:"factoryPrice"`
	DeliveryPrice int64  `json:"deliveryPrice"`
	Quantity      int64  `json:"quantity"`
	Unit          string `json:"unit"`
}

// UpdateDeliveryReq 工厂侧推进配送状态,发货时带物流单号
type UpdateDeliveryReq struct {
	ID             int64  `json:"id"`
	DeliveryStatus uint8  `json:"deliveryStatus"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
}

type DeleteOrderReq struct {
	ID int64 `json:"id"`
}

type ListOrdersReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total,omitempty"`
	Orders []Order `json:"orders,omitempty"`
}

type DetailReq struct {
	ID int64 `json:"id"`
}

type DetailResp struct {
	Order Order `json:"order"`
}

type Order struct {
	ID              int64          `json:"id"`
	QuoteID         int64          `json:"quoteId"`
	FactoryName     string         `json:"factoryName,omitempty"`
	CompanyName     string         `json:"companyName"`
	ContactName     string         `json:"contactName"`
	ContactPhone    string         `json:"contactPhone"`
	RecipientName   string         `json:"recipientName"`
	DeliveryAddress string         `json:"deliveryAddress"`
	Remark          string         `json:"remark,omitempty"`
	DeliveryStatus  uint8          `json:"deliveryStatus"`
	TrackingNumber  string         `json:"trackingNumber,omitempty"`
	Products        []OrderProduct `json:"products"`
	Ctime           int64          `json:"ctime"`
	Utime           int64          `json:"utime"`
}
