// Copyright USDFG Project 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"github.com/usdfg/challenge/types"
)

// DriverCreate 执行器创建函数
type DriverCreate func() Driver

var (
	registedExecDriver = make(map[string]DriverCreate)
)

// Register 注册执行器
func Register(name string, create DriverCreate) {
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	if _, dup := registedExecDriver[name]; dup {
		panic("Execute: Register called twice for driver " + name)
	}
	registedExecDriver[name] = create
	types.AllowUserExec = append(types.AllowUserExec, []byte(name))
}

// LoadDriver 根据名字加载执行器
func LoadDriver(name string) (Driver, error) {
	if create, ok := registedExecDriver[name]; ok {
		return create(), nil
	}
	return nil, types.ErrUnRegistedDriver
}

// IsDriverAddress 判断地址是否为注册过的执行器合约地址
func IsDriverAddress(addr string) bool {
	for name := range registedExecDriver {
		if ExecAddress(name) == addr {
			return true
		}
	}
	return false
}
