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

// PaymentType 决定支付成功后执行哪种业务动作,
// dispatch 按它做封闭匹配
type PaymentType uint8

func (t PaymentType) ToUint8() uint8 {
	return uint8(t)
}

const (
	// PaymentTypeUnlockQuote 解锁报价单联系方式,RelatedID 为报价单ID
	PaymentTypeUnlockQuote PaymentType = 1
	// PaymentTypeGenerateContract 购买合同生成权限,RelatedID 为订单或试样ID
	PaymentTypeGenerateContract PaymentType = 2
)

func (t PaymentType) Valid() bool {
	return t == PaymentTypeUnlockQuote || t == PaymentTypeGenerateContract
}

type PaymentStatus uint8

func (s PaymentStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	PaymentStatusPending PaymentStatus = 1
	PaymentStatusPaid    PaymentStatus = 2
)

const (
	// AmountMin 金额下限,单位为分
	AmountMin int64 = 1
	// AmountMax 金额上限,一百万元
	AmountMax int64 = 100_000_000
)

// Payment 一次预支付到支付完成的完整记录。
// OrderNo 由调用方提供,全局唯一;pending→paid 单向且只发生一次
type Payment struct {
	ID      int64
	OrderNo string
	UID     int64
	// 金额,单位为分
	Amount      int64
	Description string
	Type        PaymentType
	RelatedID   int64
	Status      PaymentStatus
	PrepayID    string
	// 微信侧交易号,支付成功后才有值
	TxnID  string
	Ctime  int64
	PaidAt int64
}

// PrepayParams 小程序调起支付所需的参数,paySign 为 v2 MD5 签名
type PrepayParams struct {
	AppID     string
	TimeStamp string
	NonceStr  string
	Package   string
	SignType  string
	PaySign   string
	OrderNo   string
}
