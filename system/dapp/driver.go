// Copyright USDFG Project 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp 执行器基础类
package dapp

import (
	log "github.com/inconshreveable/log15"

	"github.com/usdfg/challenge/account"
	"github.com/usdfg/challenge/common/address"
	dbm "github.com/usdfg/challenge/common/db"
	"github.com/usdfg/challenge/types"
)

var blog = log.New("module", "execs.base")

// Driver 执行器接口
type Driver interface {
	SetStateDB(dbm.KV)
	GetCoinsAccount() *account.DB
	SetLocalDB(dbm.KVDB)
	GetName() string
	GetDriverName() string
	SetEnv(height, blocktime int64)
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	ExecDelLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	Query(funcName string, params []byte) (types.Message, error)
	SetChild(Driver)
}

// DriverBase 执行器基础实现
type DriverBase struct {
	statedb      dbm.KV
	localdb      dbm.KVDB
	coinsAccount *account.DB
	height       int64
	blocktime    int64
	name         string
	child        Driver
}

// SetEnv 设置当前区块环境
func (d *DriverBase) SetEnv(height, blocktime int64) {
	d.height = height
	d.blocktime = blocktime
}

// SetChild 需要在初始化时设置child, 否则会使用基类的空实现
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
}

// GetAddr 获取执行器的合约地址
func (d *DriverBase) GetAddr() string {
	return ExecAddress(d.child.GetName())
}

// Exec 基类实现只做检查
func (d *DriverBase) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	return nil, nil
}

// ExecLocal 基类实现为空
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// ExecDelLocal 基类实现为空
func (d *DriverBase) ExecDelLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// CheckTx 基类做执行器白名单, 签名和基本字段检查
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	if tx == nil {
		return types.ErrInvalidParam
	}
	if !types.IsAllowUserExec(tx.Execer) {
		blog.Error("CheckTx", "execer", string(tx.Execer), "err", types.ErrExecNameNotAllow)
		return types.ErrExecNameNotAllow
	}
	if !tx.CheckSign() {
		blog.Error("CheckTx", "err", types.ErrSign)
		return types.ErrSign
	}
	return nil
}

// Query 基类实现为不支持
func (d *DriverBase) Query(funcName string, params []byte) (types.Message, error) {
	return nil, types.ErrActionNotSupport
}

// SetStateDB set state db
func (d *DriverBase) SetStateDB(db dbm.KV) {
	if d.coinsAccount == nil {
		d.coinsAccount = account.NewCoinsAccount()
	}
	d.statedb = db
	d.coinsAccount.SetDB(db)
}

// GetStateDB get state db
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

// SetLocalDB set local db
func (d *DriverBase) SetLocalDB(db dbm.KVDB) {
	d.localdb = db
}

// GetLocalDB get local db
func (d *DriverBase) GetLocalDB() dbm.KVDB {
	return d.localdb
}

// GetHeight 当前区块高度
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

// GetBlockTime 当前区块时间
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

// GetName get name
func (d *DriverBase) GetName() string {
	if d.name == "" {
		return d.child.GetDriverName()
	}
	return d.name
}

// SetName set name
func (d *DriverBase) SetName(name string) {
	d.name = name
}

// GetDriverName 基类不知道自己的名字
func (d *DriverBase) GetDriverName() string {
	return "driver"
}

// GetCoinsAccount 获取本币账户对象
func (d *DriverBase) GetCoinsAccount() *account.DB {
	if d.coinsAccount == nil {
		d.coinsAccount = account.NewCoinsAccount()
		d.coinsAccount.SetDB(d.statedb)
	}
	return d.coinsAccount
}

// GetIndex 返回当前交易在链上的全局索引
func (d *DriverBase) GetIndex(index int) int64 {
	return d.height*types.MaxTxsPerBlock + int64(index)
}

// ExecAddress 执行器名称对应的合约地址
func ExecAddress(name string) string {
	return address.ExecAddress(name)
}
