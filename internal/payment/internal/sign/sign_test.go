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

package sign

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigner_Sign(t *testing.T) {
	t.Parallel()
	s := NewSigner("secret")

	t.Run("与键序无关", func(t *testing.T) {
		t.Parallel()
		sig1 := s.Sign(map[string]string{"b": "2", "a": "1"})
		sig2 := s.Sign(map[string]string{"a": "1", "b": "2"})
		assert.Equal(t, sig1, sig2)
	})

	t.Run("值不同签名不同", func(t *testing.T) {
		t.Parallel()
		sig1 := s.Sign(map[string]string{"a": "1", "b": "2"})
		sig2 := s.Sign(map[string]string{"a": "1", "b": "3"})
		assert.NotEqual(t, sig1, sig2)
	})

	t.Run("密钥不同签名不同", func(t *testing.T) {
		t.Parallel()
		other := NewSigner("another")
		params := map[string]string{"a": "1", "b": "2"}
		assert.NotEqual(t, s.Sign(params), other.Sign(params))
	})

	t.Run("空值和sign键被剔除", func(t *testing.T) {
		t.Parallel()
		base := s.Sign(map[string]string{"a": "1", "b": "2"})
		withNoise := s.Sign(map[string]string{
			"a":    "1",
			"b":    "2",
			"c":    "",
			"sign": "DEADBEEF",
		})
		assert.Equal(t, base, withNoise)
	})

	t.Run("逐位对照固定算法", func(t *testing.T) {
		t.Parallel()
		// a=1&b=2&key=secret 的 MD5 大写十六进制
		sum := md5.Sum([]byte("a=1&b=2&key=secret"))
		expected := strings.ToUpper(hex.EncodeToString(sum[:]))
		assert.Equal(t, expected, s.Sign(map[string]string{"a": "1", "b": "2"}))
	})
}

func TestSigner_Verify(t *testing.T) {
	t.Parallel()
	s := NewSigner("secret")
	params := map[string]string{"a": "1", "b": "2"}
	params["sign"] = s.Sign(params)
	assert.True(t, s.Verify(params))

	params["b"] = "3"
	assert.False(t, s.Verify(params))

	assert.False(t, s.Verify(map[string]string{"a": "1"}))
}

func TestNonceStr(t *testing.T) {
	t.Parallel()
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		n := NonceStr()
		require.Len(t, n, 32)
		for _, c := range n {
			assert.Contains(t, nonceChars, string(c))
		}
		seen[n] = struct{}{}
	}
	assert.Len(t, seen, 100)
}
