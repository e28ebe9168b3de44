// Copyright USDFG Project 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crypto secp256k1 签名算法实现
package crypto

import (
	"errors"
	"fmt"

	secp256k1 "github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/usdfg/challenge/common"
)

// ErrInvalidKey key格式非法
var ErrInvalidKey = errors.New("ErrInvalidKey")

// PrivKey 私钥接口
type PrivKey interface {
	Bytes() []byte
	Sign(msg []byte) Signature
	PubKey() PubKey
}

// PubKey 公钥接口
type PubKey interface {
	Bytes() []byte
	KeyString() string
	VerifyBytes(msg []byte, sig Signature) bool
}

// Signature 签名接口
type Signature interface {
	Bytes() []byte
	IsZero() bool
	String() string
}

// GenKey 随机生成一个私钥
func GenKey() (PrivKey, error) {
	key, err := secp256k1.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	return PrivKeySecp256k1{key: key}, nil
}

// PrivKeyFromBytes 私钥反序列化
func PrivKeyFromBytes(b []byte) (PrivKey, error) {
	if len(b) != 32 {
		return nil, ErrInvalidKey
	}
	key, _ := secp256k1.PrivKeyFromBytes(b)
	return PrivKeySecp256k1{key: key}, nil
}

// PubKeyFromBytes 公钥反序列化，只允许压缩格式
func PubKeyFromBytes(b []byte) (PubKey, error) {
	key, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, err
	}
	return PubKeySecp256k1{key: key}, nil
}

// SignatureFromBytes 签名反序列化
func SignatureFromBytes(b []byte) (Signature, error) {
	sig, err := btcecdsa.ParseDERSignature(b)
	if err != nil {
		return nil, err
	}
	return SignatureSecp256k1{sig: sig, raw: append([]byte(nil), b...)}, nil
}

// PrivKeySecp256k1 私钥
type PrivKeySecp256k1 struct {
	key *secp256k1.PrivateKey
}

// Bytes 私钥字节格式
func (privKey PrivKeySecp256k1) Bytes() []byte {
	return privKey.key.Serialize()
}

// Sign 签名，内部先做sha256
func (privKey PrivKeySecp256k1) Sign(msg []byte) Signature {
	sig := btcecdsa.Sign(privKey.key, common.Sha256(msg))
	return SignatureSecp256k1{sig: sig, raw: sig.Serialize()}
}

// PubKey 导出对应的公钥
func (privKey PrivKeySecp256k1) PubKey() PubKey {
	return PubKeySecp256k1{key: privKey.key.PubKey()}
}

// PubKeySecp256k1 公钥
type PubKeySecp256k1 struct {
	key *secp256k1.PublicKey
}

// Bytes 压缩格式公钥(33字节)
func (pubKey PubKeySecp256k1) Bytes() []byte {
	return pubKey.key.SerializeCompressed()
}

// KeyString hex编码
func (pubKey PubKeySecp256k1) KeyString() string {
	return fmt.Sprintf("%x", pubKey.Bytes())
}

// VerifyBytes 校验签名
func (pubKey PubKeySecp256k1) VerifyBytes(msg []byte, sig Signature) bool {
	s, ok := sig.(SignatureSecp256k1)
	if !ok {
		parsed, err := SignatureFromBytes(sig.Bytes())
		if err != nil {
			return false
		}
		s = parsed.(SignatureSecp256k1)
	}
	return s.sig.Verify(common.Sha256(msg), pubKey.key)
}

// SignatureSecp256k1 DER编码签名
type SignatureSecp256k1 struct {
	sig *btcecdsa.Signature
	raw []byte
}

// Bytes DER字节
func (s SignatureSecp256k1) Bytes() []byte {
	return append([]byte(nil), s.raw...)
}

// IsZero 是否为空签名
func (s SignatureSecp256k1) IsZero() bool {
	return len(s.raw) == 0
}

func (s SignatureSecp256k1) String() string {
	fingerprint := make([]byte, len(s.raw))
	copy(fingerprint, s.raw)
	return fmt.Sprintf("/%X.../", fingerprint)
}
