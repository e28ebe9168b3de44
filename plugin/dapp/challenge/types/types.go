// Copyright USDFG Project 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types challenge执行器的数据类型定义
package types

import (
	log "github.com/inconshreveable/log15"
)

var tlog = log.New("module", ChallengeX+".types")

// ActionName 返回action对应的名称
func ActionName(action *ChallengeAction) string {
	switch action.GetTy() {
	case ChallengeActionAdminInit:
		return "adminInit"
	case ChallengeActionAdminUpdate:
		return "adminUpdate"
	case ChallengeActionAdminRevoke:
		return "adminRevoke"
	case ChallengeActionOracleInit:
		return "oracleInit"
	case ChallengeActionPriceUpdate:
		return "priceUpdate"
	case ChallengeActionCreate:
		return "createChallenge"
	case ChallengeActionAccept:
		return "acceptChallenge"
	case ChallengeActionResolve:
		return "resolveChallenge"
	case ChallengeActionRefund:
		return "claimRefund"
	}
	return "unknown"
}

// StatusName 返回状态名称
func StatusName(status int32) string {
	switch status {
	case ChallengeStatusCreated:
		return "created"
	case ChallengeStatusAccepted:
		return "accepted"
	case ChallengeStatusCompleted:
		return "completed"
	case ChallengeStatusCancelled:
		return "cancelled"
	}
	tlog.Error("StatusName", "unknown status", status)
	return "unknown"
}
