// Copyright USDFG Project 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

const (
	// MinFeeCents 报名费法币下限, 单位: 分 (10美元)
	MinFeeCents int64 = 1000
	// MaxFeeCents 报名费法币上限, 单位: 分 (10000美元)
	MaxFeeCents int64 = 1000000
	// DefaultOraclePrice 预言机未初始化时的默认价格, 单位: 分/币
	DefaultOraclePrice int64 = 1000
	// RefundWindow 创建后可退款的等待窗口, 单位: 秒
	RefundWindow int64 = 900
)

const (
	// DefaultCount 默认一次取多少条记录
	DefaultCount = int32(20)
)
