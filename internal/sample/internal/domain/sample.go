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

type DeliveryStatus uint8

func (s DeliveryStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	DeliveryStatusPending   DeliveryStatus = 1
	DeliveryStatusShipped   DeliveryStatus = 2
	DeliveryStatusDelivered DeliveryStatus = 3
	DeliveryStatusCancelled DeliveryStatus = 4
)

var deliveryTransitions = map[DeliveryStatus][]DeliveryStatus{
	DeliveryStatusPending: {DeliveryStatusShipped, DeliveryStatusCancelled},
	DeliveryStatusShipped: {DeliveryStatusDelivered},
}

func (s DeliveryStatus) CanTransitionTo(target DeliveryStatus) bool {
	for _, t := range deliveryTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Sample 买家针对某报价单的试样申请,生命周期与订单一致
type Sample struct {
	ID      int64
	QuoteID int64
	// 申请方ID
	UID             int64
	CompanyName     string
	ContactName     string
	ContactPhone    string
	RecipientName   string
	DeliveryAddress string
	Remark          string
	DeliveryStatus  DeliveryStatus
	TrackingNumber  string
	// 冗余展示字段,来自所引用的报价单
	FactoryName string
	Products    []SampleProduct
	Ctime       int64
	Utime       int64
}

// SampleProduct 试样产品没有到岸价,多一个试样用途
type SampleProduct struct {
	Name         string
	BrandModel   string
	FactoryPrice int64
	Quantity     int64
	Unit         string
	Purpose      string
}
