// Copyright USDFG Project 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"encoding/hex"
	"errors"
	"strings"
)

// ErrHexLength invalid hex string length
var ErrHexLength = errors.New("ErrHexLength")

// ToHex returns the hex representation of b, prefixed with '0x'.
func ToHex(b []byte) string {
	hexstr := hex.EncodeToString(b)
	if len(hexstr) == 0 {
		return ""
	}
	return "0x" + hexstr
}

// FromHex returns the bytes represented by the hexadecimal string s.
// s may be prefixed with "0x".
func FromHex(s string) ([]byte, error) {
	if len(s) > 1 {
		if s[0:2] == "0x" || s[0:2] == "0X" {
			s = s[2:]
		}
		if len(s)%2 == 1 {
			s = "0" + s
		}
		return hex.DecodeString(s)
	}
	return []byte{}, ErrHexLength
}

// HexToLower 将hex字符串统一转换为小写，方便前端比较
func HexToLower(s string) string {
	return strings.ToLower(s)
}
