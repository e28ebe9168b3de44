// Copyright USDFG Project 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/usdfg/challenge/common"
	"github.com/usdfg/challenge/common/address"
	"github.com/usdfg/challenge/common/crypto"
)

// Hash 交易hash，不包含签名
func (tx *Transaction) Hash() []byte {
	copytx := *tx
	copytx.Signature = nil
	data := Encode(&copytx)
	return common.Sha256(data)
}

// Sign 对交易签名
func (tx *Transaction) Sign(ty int32, priv crypto.PrivKey) {
	tx.Signature = nil
	data := Encode(tx)
	pub := priv.PubKey()
	sign := priv.Sign(data)
	tx.Signature = &Signature{
		Ty:        ty,
		Pubkey:    pub.Bytes(),
		Signature: sign.Bytes(),
	}
}

// CheckSign 检测交易签名
func (tx *Transaction) CheckSign() bool {
	copytx := *tx
	copytx.Signature = nil
	data := Encode(&copytx)
	if tx.GetSignature().GetTy() != SECP256K1 {
		return false
	}
	pub, err := crypto.PubKeyFromBytes(tx.GetSignature().GetPubkey())
	if err != nil {
		tlog.Error("CheckSign", "invalid pubkey", err)
		return false
	}
	sign, err := crypto.SignatureFromBytes(tx.GetSignature().GetSignature())
	if err != nil {
		tlog.Error("CheckSign", "invalid signature", err)
		return false
	}
	return pub.VerifyBytes(data, sign)
}

// From 签名者地址
func (tx *Transaction) From() string {
	if tx.GetSignature().GetPubkey() == nil {
		return ""
	}
	return address.PubKeyToAddress(tx.GetSignature().GetPubkey()).String()
}
