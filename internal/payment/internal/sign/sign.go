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

// Package sign 实现微信支付 v2 的 MD5 签名。
// 算法固定:空值和 sign 键剔除,键按 ASCII 升序拼 k=v,
// 末尾追加 &key=密钥,MD5 后转大写十六进制。
// 微信侧按同一算法校验,这里不能有任何偏差。
package sign

import (
	"crypto/md5"
	"crypto/rand"
	"encoding/hex"
	"sort"
	"strings"
)

type Signer struct {
	apiKey string
}

func NewSigner(apiKey string) *Signer {
	return &Signer{apiKey: apiKey}
}

func (s *Signer) Sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" || k == "sign" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	b.WriteString("&key=")
	b.WriteString(s.apiKey)

	sum := md5.Sum([]byte(b.String()))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// Verify 对带 sign 键的参数重算签名并比对
func (s *Signer) Verify(params map[string]string) bool {
	expected, ok := params["sign"]
	if !ok || expected == "" {
		return false
	}
	return s.Sign(params) == expected
}

const nonceChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// NonceStr 生成 32 位随机字符串
func NonceStr() string {
	buf := make([]byte, 32)
	_, _ = rand.Read(buf)
	for i := range buf {
		buf[i] = nonceChars[int(buf[i])%len(nonceChars)]
	}
	return string(buf)
}
