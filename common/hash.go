// Copyright USDFG Project 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// Sha256 加密
func Sha256(b []byte) []byte {
	data := sha256.Sum256(b)
	return data[:]
}

// Sha2Sum Returns hash: SHA256( SHA256( data ) )
func Sha2Sum(b []byte) []byte {
	tmp := sha256.Sum256(b)
	tmp = sha256.Sum256(tmp[:])
	return tmp[:]
}

func rimpHash(in []byte, out []byte) {
	h := sha256.New()
	h.Write(in)
	intermediateHash := h.Sum(nil)
	rip := ripemd160.New()
	rip.Write(intermediateHash)
	copy(out, rip.Sum(nil))
}

// Rimp160AfterSha256 Returns hash: RIMP160( SHA256( data ) )
func Rimp160AfterSha256(b []byte) []byte {
	out := make([]byte, 20)
	rimpHash(b, out)
	return out
}
