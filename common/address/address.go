// Copyright USDFG Project 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"bytes"
	"errors"

	"github.com/decred/base58"
	lru "github.com/hashicorp/golang-lru"

	"github.com/usdfg/challenge/common"
)

var addrSeed = []byte("address seed bytes for public key")
var addressCache *lru.Cache
var checkAddressCache *lru.Cache

// MaxExecNameLength 执行器名最大长度
const MaxExecNameLength = 100

// NormalVer 普通地址的版本号
const NormalVer byte = 0

// ErrCheckVersion : 地址版本号错误
var ErrCheckVersion = errors.New("check version error")

// ErrCheckChecksum : 地址校验和错误
var ErrCheckChecksum = errors.New("Address checksum error")

// ErrAddressChecksum 地址长度非法
var ErrAddressChecksum = errors.New("address checksum error")

func init() {
	var err error
	addressCache, err = lru.New(10240)
	if err != nil {
		panic(err)
	}
	checkAddressCache, err = lru.New(10240)
	if err != nil {
		panic(err)
	}
}

// Address 地址信息
type Address struct {
	Version  byte
	Hash160  [20]byte
	Checksum []byte //!!! Unused checksum
	Pubkey   []byte
	Enc58str string
}

// ExecPubKey 通过执行器名称拼接一个虚拟的公钥，没有对应的私钥
func ExecPubKey(name string) []byte {
	if len(name) > MaxExecNameLength {
		panic("name too long")
	}
	var bname [200]byte
	buf := append(bname[:0], addrSeed...)
	buf = append(buf, []byte(name)...)
	return common.Sha2Sum(buf)
}

// ExecAddress 获取执行器对应的地址，计算量有点大，做一次cache
func ExecAddress(name string) string {
	if value, ok := addressCache.Get(name); ok {
		return value.(string)
	}
	addr := PubKeyToAddress(ExecPubKey(name))
	addrstr := addr.String()
	addressCache.Add(name, addrstr)
	return addrstr
}

// PubKeyToAddress 公钥转为地址
func PubKeyToAddress(in []byte) *Address {
	a := new(Address)
	a.Pubkey = make([]byte, len(in))
	copy(a.Pubkey[:], in[:])
	a.Version = NormalVer
	copy(a.Hash160[:], common.Rimp160AfterSha256(in))
	return a
}

func checksum(input []byte) (cksum [4]byte) {
	h := common.Sha2Sum(input)
	copy(cksum[:], h[:4])
	return
}

// String 地址的base58check编码
func (a *Address) String() string {
	if a.Enc58str == "" {
		var ad [25]byte
		ad[0] = a.Version
		copy(ad[1:21], a.Hash160[:])
		cksum := checksum(ad[:21])
		copy(ad[21:25], cksum[:])
		a.Enc58str = base58.Encode(ad[:])
	}
	return a.Enc58str
}

// FromString 解析base58check地址
func FromString(addr string) (*Address, error) {
	dec := base58.Decode(addr)
	if dec == nil {
		return nil, errors.New("Cannot decode b58 string '" + addr + "'")
	}
	if len(dec) < 25 {
		return nil, errors.New("Address too short '" + addr + "'")
	}
	a := new(Address)
	a.Version = dec[0]
	copy(a.Hash160[:], dec[1:21])
	cksum := checksum(dec[:21])
	if !bytes.Equal(cksum[:], dec[21:25]) {
		return nil, ErrAddressChecksum
	}
	return a, nil
}

// CheckAddress 校验地址合法性
func CheckAddress(addr string) (e error) {
	if value, ok := checkAddressCache.Get(addr); ok {
		if value == nil {
			return nil
		}
		return value.(error)
	}
	addrInfo, e := FromString(addr)
	if e == nil && addrInfo.Version != NormalVer {
		e = ErrCheckVersion
	}
	checkAddressCache.Add(addr, e)
	return e
}
