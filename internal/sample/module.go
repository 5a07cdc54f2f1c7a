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

package sample

import (
	"github.com/quotemart/quotemart/internal/sample/internal/domain"
	"github.com/quotemart/quotemart/internal/sample/internal/service"
	"github.com/quotemart/quotemart/internal/sample/internal/web"
)

type (
	Handler        = web.Handler
	Sample         = domain.Sample
	SampleProduct  = domain.SampleProduct
	DeliveryStatus = domain.DeliveryStatus
	Service        = service.Service
)

const (
	DeliveryStatusPending   = domain.DeliveryStatusPending
	DeliveryStatusShipped   = domain.DeliveryStatusShipped
	DeliveryStatusDelivered = domain.DeliveryStatusDelivered
	DeliveryStatusCancelled = domain.DeliveryStatusCancelled
)

var (
	ErrSampleNotFound          = service.ErrSampleNotFound
	ErrPermissionDenied        = service.ErrPermissionDenied
	ErrInvalidStatusTransition = service.ErrInvalidStatusTransition
)

type Module struct {
	Hdl *Handler
	Svc Service
}
