// Copyright USDFG Project 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 数据库操作底层接口定义以及实现包括：leveldb、memdb
package db

import (
	log "github.com/inconshreveable/log15"

	"github.com/usdfg/challenge/types"
)

var dlog = log.New("module", "db")

// 迭代方向
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

// KV kv store order interface
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) (err error)
}

// KVDB kv db
type KVDB interface {
	KV
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
}

// Lister 列表接口
type Lister interface {
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
}

// Batch batch
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
}

// DB 数据库操作接口
type DB interface {
	KVDB
	SetSync([]byte, []byte) error
	Delete([]byte) error
	DeleteSync([]byte) error
	NewBatch(sync bool) Batch
	Close()
}

// 数据库类型
const (
	levelDBBackendStr = "leveldb"
	memDBBackendStr   = "memdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

// NewDB new db by backend
func NewDB(name string, backend string, dir string, cache int32) DB {
	dbCreator, ok := backends[backend]
	if !ok {
		dlog.Error("NewDB: not registered db backend", "backend", backend)
		panic("initializing DB error: unsupported backend")
	}
	db, err := dbCreator(name, dir, int(cache))
	if err != nil {
		dlog.Error("NewDB: initializing DB", "error", err)
		panic("initializing DB error: " + err.Error())
	}
	return db
}

// ErrNotFoundInDb 与链级别的ErrNotFound保持一致，方便执行器判断
var ErrNotFoundInDb = types.ErrNotFound
