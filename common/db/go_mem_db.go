// Copyright USDFG Project 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"sort"
	"sync"

	log "github.com/inconshreveable/log15"
)

var mlog = log.New("module", "db.memdb")

// memdb 应该无需区分同步与异步操作

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(memDBBackendStr, dbCreator, false)
}

// GoMemDB 基于map的内存数据库，测试和本地索引使用
type GoMemDB struct {
	db   map[string][]byte
	lock sync.RWMutex
}

// NewGoMemDB new
func NewGoMemDB(name string, dir string, cache int) (*GoMemDB, error) {
	// memdb 不需要创建文件，后续考虑增加缓存数目
	return &GoMemDB{
		db: make(map[string][]byte),
	}, nil
}

// CopyBytes 复制字节切片
func CopyBytes(b []byte) (copiedBytes []byte) {
	if b == nil {
		return nil
	}
	copiedBytes = make([]byte, len(b))
	copy(copiedBytes, b)
	return copiedBytes
}

// Get 获取键值
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if entry, ok := db.db[string(key)]; ok {
		return CopyBytes(entry), nil
	}
	return nil, ErrNotFoundInDb
}

// Set 设置键值
func (db *GoMemDB) Set(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	if value == nil {
		delete(db.db, string(key))
		return nil
	}
	db.db[string(key)] = CopyBytes(value)
	return nil
}

// SetSync 设置键值
func (db *GoMemDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

// Delete 删除键值
func (db *GoMemDB) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	delete(db.db, string(key))
	return nil
}

// DeleteSync 删除键值
func (db *GoMemDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

// Close 关闭
func (db *GoMemDB) Close() {
}

// List 列出前缀下的value，key为遍历的起点(不包含)，count为0时不限制数量
func (db *GoMemDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	var keys []string
	for k := range db.db {
		if bytes.HasPrefix([]byte(k), prefix) {
			keys = append(keys, k)
		}
	}
	if direction == ListASC {
		sort.Strings(keys)
	} else {
		sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	}
	var values [][]byte
	for _, k := range keys {
		if len(key) > 0 {
			// 从key的下一个开始
			if direction == ListASC && k <= string(key) {
				continue
			}
			if direction == ListDESC && k >= string(key) {
				continue
			}
		}
		values = append(values, CopyBytes(db.db[k]))
		if count > 0 && int32(len(values)) >= count {
			break
		}
	}
	if len(values) == 0 {
		return nil, ErrNotFoundInDb
	}
	return values, nil
}

// Print 打印数据库内容，调试用
func (db *GoMemDB) Print() {
	db.lock.RLock()
	defer db.lock.RUnlock()

	for key, value := range db.db {
		mlog.Info("Print", "key", key, "value", string(value))
	}
}

// NewBatch new batch
func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

type memBatch struct {
	db     *GoMemDB
	writes []kvPair
}

type kvPair struct {
	key, value []byte
	deleted    bool
}

func (b *memBatch) Set(key, value []byte) {
	b.writes = append(b.writes, kvPair{CopyBytes(key), CopyBytes(value), false})
}

func (b *memBatch) Delete(key []byte) {
	b.writes = append(b.writes, kvPair{CopyBytes(key), nil, true})
}

func (b *memBatch) Write() error {
	b.db.lock.Lock()
	defer b.db.lock.Unlock()

	for _, kv := range b.writes {
		if kv.deleted {
			delete(b.db.db, string(kv.key))
		} else {
			b.db.db[string(kv.key)] = kv.value
		}
	}
	b.writes = b.writes[:0]
	return nil
}
