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

type ContractType uint8

func (t ContractType) ToUint8() uint8 {
	return uint8(t)
}

const (
	// ContractTypePurchase 采购合同,关联订单
	ContractTypePurchase ContractType = 1
	// ContractTypeSample 试样协议,关联试样申请
	ContractTypeSample ContractType = 2
)

// Contract 合同只记录关联关系,创建后不可变。
// OrderID 和 SampleID 恰好一个非零,由 Type 决定
type Contract struct {
	ID int64
	// SN 对外展示的合同编号
	SN       string
	Type     ContractType
	UID      int64
	OrderID  int64
	SampleID int64
	Ctime    int64
}
