// Copyright USDFG Project 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// challenge action ty
const (
	ChallengeActionAdminInit = iota + 1
	ChallengeActionAdminUpdate
	ChallengeActionAdminRevoke
	ChallengeActionOracleInit
	ChallengeActionPriceUpdate
	ChallengeActionCreate
	ChallengeActionAccept
	ChallengeActionResolve
	ChallengeActionRefund
)

// challenge status
const (
	ChallengeStatusCreated = iota + 1
	ChallengeStatusAccepted
	ChallengeStatusCompleted
	ChallengeStatusCancelled
)

// log ty
const (
	TyLogChallengeCreate  = 711
	TyLogChallengeAccept  = 712
	TyLogChallengeResolve = 713
	TyLogChallengeRefund  = 714
	TyLogAdminInit        = 715
	TyLogAdminUpdate      = 716
	TyLogAdminRevoke      = 717
	TyLogOracleInit       = 718
	TyLogPriceUpdate      = 719
)

// query func names
const (
	FuncNameQueryChallengeByID         = "QueryChallengeById"
	FuncNameQueryChallengeListByStatus = "QueryChallengeListByStatus"
	FuncNameQueryChallengeListByAddr   = "QueryChallengeListByAddr"
	FuncNameQueryAdminState            = "QueryAdminState"
	FuncNameQueryPriceOracle           = "QueryPriceOracle"
)

var (
	// ChallengeX 执行器名称
	ChallengeX = "challenge"
	// ExecerChallenge 执行器名称的字节表示
	ExecerChallenge = []byte(ChallengeX)
)
