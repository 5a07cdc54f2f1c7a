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

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		from DeliveryStatus
		to   DeliveryStatus
		want bool
	}{
		{from: DeliveryStatusPending, to: DeliveryStatusShipped, want: true},
		{from: DeliveryStatusPending, to: DeliveryStatusCancelled, want: true},
		{from: DeliveryStatusPending, to: DeliveryStatusDelivered, want: false},
		{from: DeliveryStatusPending, to: DeliveryStatusPending, want: false},
		{from: DeliveryStatusShipped, to: DeliveryStatusDelivered, want: true},
		{from: DeliveryStatusShipped, to: DeliveryStatusCancelled, want: false},
		{from: DeliveryStatusShipped, to: DeliveryStatusPending, want: false},
		// 终态不再迁移
		{from: DeliveryStatusDelivered, to: DeliveryStatusShipped, want: false},
		{from: DeliveryStatusDelivered, to: DeliveryStatusCancelled, want: false},
		{from: DeliveryStatusCancelled, to: DeliveryStatusShipped, want: false},
		{from: DeliveryStatusCancelled, to: DeliveryStatusDelivered, want: false},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(fmt.Sprintf("%d->%d", tc.from, tc.to), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}
