// Copyright USDFG Project 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plugin 通过引入触发各dapp插件注册
package plugin

import (
	_ "github.com/usdfg/challenge/plugin/dapp/challenge" //auto gen
)
