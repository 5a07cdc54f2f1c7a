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

type GeneratePurchaseReq struct {
	OrderID int64 `json:"orderId"`
}

type GenerateSampleReq struct {
	SampleID int64 `json:"sampleId"`
}

type ListContractsReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListContractsResp struct {
	Total     int64      `json:"total,omitempty"`
	Contracts []Contract `json:"contracts,omitempty"`
}

type DetailReq struct {
	ID int64 `json:"id"`
}

type Contract struct {
	ID       int64  `json:"id"`
	SN       string `json:"sn"`
	Type     uint8  `json:"type"`
	OrderID  int64  `json:"orderId,omitempty"`
	SampleID int64  `json:"sampleId,omitempty"`
	Ctime    int64  `json:"ctime"`
}

// ContractDetail 按类型实时关联出订单或试样明细
type ContractDetail struct {
	Contract Contract      `json:"contract"`
	Order    *OrderDetail  `json:"order,omitempty"`
	Sample   *SampleDetail `json:"sample,omitempty"`
}

type OrderDetail struct {
	ID              int64          `json:"id"`
	FactoryName     string         `json:"factoryName,omitempty"`
	CompanyName     string         `json:"companyName"`
	ContactName     string         `json:"contactName"`
	ContactPhone    string         `json:"contactPhone"`
	RecipientName   string         `json:"recipientName"`
	DeliveryAddress string         `json:"deliveryAddress"`
	Remark          string         `json:"remark,omitempty"`
	Products        []OrderProduct `json:"products"`
}

type OrderProduct struct {
	Name          string `json:"name"`
	BrandModel    string `json:"brandModel"`
	FactoryPrice  int64  `json:"factoryPrice"`
	DeliveryPrice int64  `json:"deliveryPrice"`
	Quantity      int64  `json:"quantity"`
	Unit          string `json:"unit"`
}

type SampleDetail struct {
	ID              int64           `json:"id"`
	FactoryName     string          `json:"factoryName,omitempty"`
	CompanyName     string          `json:"companyName"`
	ContactName     string          `json:"contactName"`
	ContactPhone    string          `json:"contactPhone"`
	RecipientName   string          `json:"recipientName"`
	DeliveryAddress string          `json:"deliveryAddress"`
	Remark          string          `json:"remark,omitempty"`
	Products        []SampleProduct `json:"products"`
}

type SampleProduct struct {
	Name         string `json:"name"`
	BrandModel   string `json:"brandModel"`
	FactoryPrice int64  `json:"factoryPrice"`
	Quantity     int64  `json:"quantity"`
	Unit         string `json:"unit"`
	Purpose      string `json:"purpose,omitempty"`
}
