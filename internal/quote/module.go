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

package quote

import (
	"github.com/quotemart/quotemart/internal/quote/internal/domain"
	"github.com/quotemart/quotemart/internal/quote/internal/service"
	"github.com/quotemart/quotemart/internal/quote/internal/web"
)

type (
	Handler          = web.Handler
	Quote            = domain.Quote
	QuoteProduct     = domain.QuoteProduct
	UnlockRecord     = domain.UnlockRecord
	UnlockMethod     = domain.UnlockMethod
	Service          = service.Service
	ReferenceCounter = service.ReferenceCounter
)

const (
	StatusDraft    = domain.QuoteStatusDraft
	StatusApproved = domain.QuoteStatusApproved

	UnlockMethodPayment = domain.UnlockMethodPayment
)

var (
	ErrQuoteNotFound    = service.ErrQuoteNotFound
	ErrPermissionDenied = service.ErrPermissionDenied
	ErrQuoteReferenced  = service.ErrQuoteReferenced
)

type Module struct {
	Hdl *Handler
	Svc Service
}
