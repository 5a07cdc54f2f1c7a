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

package payment

import (
	"github.com/quotemart/quotemart/internal/payment/internal/domain"
	"github.com/quotemart/quotemart/internal/payment/internal/service"
	"github.com/quotemart/quotemart/internal/payment/internal/web"
)

type (
	Handler      = web.Handler
	Payment      = domain.Payment
	PrepayParams = domain.PrepayParams
	PaymentType  = domain.PaymentType
	Service      = service.Service
)

const (
	TypeUnlockQuote      = domain.PaymentTypeUnlockQuote
	TypeGenerateContract = domain.PaymentTypeGenerateContract

	StatusPending = domain.PaymentStatusPending
	StatusPaid    = domain.PaymentStatusPaid
)

var (
	ErrPaymentNotFound  = service.ErrPaymentNotFound
	ErrDuplicateOrderNo = service.ErrDuplicateOrderNo
)

type Module struct {
	Hdl *Handler
	Svc Service
}
