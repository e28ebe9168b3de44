// Copyright USDFG Project 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

// challenge执行器的错误类型
var (
	// ErrAdminExists 管理员已经初始化过, 重复初始化视为无害错误
	ErrAdminExists = errors.New("ErrAdminAlreadyInitialized")
	// ErrOracleExists 预言机已经初始化过
	ErrOracleExists = errors.New("ErrOracleAlreadyInitialized")
	// ErrUnauthorized 非管理员或非授权地址操作
	ErrUnauthorized = errors.New("ErrUnauthorized")
	// ErrAdminInactive 管理员已被撤销
	ErrAdminInactive = errors.New("ErrAdminInactive")
	// ErrEntryFeeTooLow 报名费低于法币下限
	ErrEntryFeeTooLow = errors.New("ErrEntryFeeTooLow")
	// ErrEntryFeeTooHigh 报名费高于法币上限
	ErrEntryFeeTooHigh = errors.New("ErrEntryFeeTooHigh")
	// ErrChallengeNotOpen 对战不在等待应战状态
	ErrChallengeNotOpen = errors.New("ErrChallengeNotOpen")
	// ErrChallengeNotInProgress 对战不在进行中状态
	ErrChallengeNotInProgress = errors.New("ErrChallengeNotInProgress")
	// ErrSelfChallenge 不能应战自己创建的对战
	ErrSelfChallenge = errors.New("ErrSelfChallenge")
	// ErrInvalidWinner 胜者必须是对战双方之一
	ErrInvalidWinner = errors.New("ErrInvalidWinner")
	// ErrReentrancyDetected 对战已进入结算流程
	ErrReentrancyDetected = errors.New("ErrReentrancyDetected")
	// ErrChallengeNotExpired 退款窗口未到
	ErrChallengeNotExpired = errors.New("ErrChallengeNotExpired")
	// ErrChallengeExpired 对战已超过应战窗口
	ErrChallengeExpired = errors.New("ErrChallengeExpired")
	// ErrChallengeExists 相同创建者和种子的对战已存在
	ErrChallengeExists = errors.New("ErrChallengeExists")
	// ErrOracleNotInit 预言机未初始化时才允许默认价格, 查询时报错
	ErrOracleNotInit = errors.New("ErrOracleNotInit")
	// ErrAdminNotInit 管理员未初始化
	ErrAdminNotInit = errors.New("ErrAdminNotInit")
	// ErrInvalidPrice 价格必须为正数
	ErrInvalidPrice = errors.New("ErrInvalidPrice")
)
