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

package sequencenumber

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		id   int64
		want string
	}{
		{
			name: "末四位不足补零",
			id:   42,
			want: "17000000000000042",
		},
		{
			name: "超过四位取模",
			id:   123456,
			want: "17000000000003456",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGeneratorWith(
				func(t time.Time) int64 { return 1700000000000 },
				func() string { return "AAAAAAAAAAAAAAAAAAAAAA" })
			sn, err := g.Generate(tc.id)
			require.NoError(t, err)
			assert.Len(t, sn, 32)
			assert.True(t, strings.HasPrefix(sn, tc.want))
		})
	}
}

func TestGenerator_Generate_Unique(t *testing.T) {
	t.Parallel()
	g := NewGenerator()
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		sn, err := g.Generate(int64(i))
		require.NoError(t, err)
		require.Len(t, sn, 32)
		_, ok := seen[sn]
		require.False(t, ok)
		seen[sn] = struct{}{}
	}
}
