// Copyright USDFG Project 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "bytes"

// coin precision and transaction limits
const (
	Coin            int64 = 1e8
	MaxCoin         int64 = 1e17
	MaxTxsPerBlock  int64 = 100000
	CoinSymbol            = "usdfg"
	InputPrecision        = 1e4
	Multiple1E4     int64 = 1e4
)

// signature types
const (
	SECP256K1 = 1
)

// Receipt execution results
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

// account log types
const (
	TyLogErr             = 1
	TyLogFee             = 2
	TyLogTransfer        = 3
	TyLogDeposit         = 5
	TyLogExecTransfer    = 6
	TyLogExecWithdraw    = 7
	TyLogExecDeposit     = 8
	TyLogExecFrozen      = 9
	TyLogExecActive      = 10
	TyLogGenesisTransfer = 11
	TyLogGenesisDeposit  = 12
)

// AllowUserExec registered executor names allowed in tx Execer
var AllowUserExec [][]byte

// IsAllowUserExec 执行器名是否在注册白名单中
func IsAllowUserExec(execer []byte) bool {
	for _, exec := range AllowUserExec {
		if bytes.Equal(exec, execer) {
			return true
		}
	}
	return false
}
