// Copyright USDFG Project 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/golang/protobuf/proto"
	log "github.com/inconshreveable/log15"
)

var tlog = log.New("module", "types")

// Message 注册的消息类型，统一走protobuf编码
type Message proto.Message

// Encode encode msg to []byte
func Encode(data proto.Message) []byte {
	b, err := proto.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

// Decode decode []byte to msg
func Decode(data []byte, msg proto.Message) error {
	return proto.Unmarshal(data, msg)
}

// Size size of proto msg
func Size(data proto.Message) int {
	return proto.Size(data)
}

// CheckAmount 金额允许的范围 (0, MaxCoin)
func CheckAmount(amount int64) bool {
	if amount <= 0 || amount >= MaxCoin {
		return false
	}
	return true
}
