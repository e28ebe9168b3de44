// Copyright USDFG Project 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	log "github.com/inconshreveable/log15"

	ct "github.com/usdfg/challenge/plugin/dapp/challenge/types"
	drivers "github.com/usdfg/challenge/system/dapp"
	"github.com/usdfg/challenge/types"
)

var clog = log.New("module", "execs.challenge")

// Init 注册执行器
func Init(name string) {
	drivers.Register(GetName(), newChallenge)
}

// Challenge 对战执行器
type Challenge struct {
	drivers.DriverBase
}

func newChallenge() drivers.Driver {
	c := &Challenge{}
	c.SetChild(c)
	return c
}

// GetName 执行器名称
func GetName() string {
	return newChallenge().GetName()
}

// GetDriverName get driver name
func (c *Challenge) GetDriverName() string {
	return ct.ChallengeX
}

// Exec 执行对战交易
func (c *Challenge) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action ct.ChallengeAction
	err := types.Decode(tx.Payload, &action)
	if err != nil {
		return nil, err
	}
	clog.Debug("exec challenge tx", "action", ct.ActionName(&action))
	actiondb := NewAction(c, tx, index)
	switch {
	case action.Ty == ct.ChallengeActionAdminInit && action.GetAdminInit() != nil:
		return actiondb.AdminInit(action.GetAdminInit())
	case action.Ty == ct.ChallengeActionAdminUpdate && action.GetAdminUpdate() != nil:
		return actiondb.AdminUpdate(action.GetAdminUpdate())
	case action.Ty == ct.ChallengeActionAdminRevoke && action.GetAdminRevoke() != nil:
		return actiondb.AdminRevoke(action.GetAdminRevoke())
	case action.Ty == ct.ChallengeActionOracleInit && action.GetOracleInit() != nil:
		return actiondb.OracleInit(action.GetOracleInit())
	case action.Ty == ct.ChallengeActionPriceUpdate && action.GetPriceUpdate() != nil:
		return actiondb.PriceUpdate(action.GetPriceUpdate())
	case action.Ty == ct.ChallengeActionCreate && action.GetCreate() != nil:
		return actiondb.ChallengeCreate(action.GetCreate())
	case action.Ty == ct.ChallengeActionAccept && action.GetAccept() != nil:
		return actiondb.ChallengeAccept(action.GetAccept())
	case action.Ty == ct.ChallengeActionResolve && action.GetResolve() != nil:
		return actiondb.ChallengeResolve(action.GetResolve())
	case action.Ty == ct.ChallengeActionRefund && action.GetRefund() != nil:
		return actiondb.ChallengeRefund(action.GetRefund())
	}
	return nil, types.ErrActionNotSupport
}

// ExecLocal 维护localDB中的状态和地址索引
func (c *Challenge) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set, err := c.DriverBase.ExecLocal(tx, receipt, index)
	if err != nil {
		return nil, err
	}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	for i := 0; i < len(receipt.Logs); i++ {
		item := receipt.Logs[i]
		if isChallengeLog(item.Ty) {
			var clg ct.ReceiptChallenge
			err := types.Decode(item.Log, &clg)
			if err != nil {
				panic(err) //数据错误了，已经被修改了
			}
			set.KV = append(set.KV, c.updateIndex(&clg)...)
		}
	}
	return set, nil
}

// ExecDelLocal 区块回滚时撤销索引
func (c *Challenge) ExecDelLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set, err := c.DriverBase.ExecDelLocal(tx, receipt, index)
	if err != nil {
		return nil, err
	}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	for i := 0; i < len(receipt.Logs); i++ {
		item := receipt.Logs[i]
		if isChallengeLog(item.Ty) {
			var clg ct.ReceiptChallenge
			err := types.Decode(item.Log, &clg)
			if err != nil {
				panic(err)
			}
			//状态数据库由于默克尔树特性不需要回滚，只回滚localDB
			set.KV = append(set.KV, c.rollbackIndex(&clg)...)
		}
	}
	return set, nil
}

func isChallengeLog(ty int32) bool {
	return ty == ct.TyLogChallengeCreate || ty == ct.TyLogChallengeAccept ||
		ty == ct.TyLogChallengeResolve || ty == ct.TyLogChallengeRefund
}

//更新索引
func (c *Challenge) updateIndex(log *ct.ReceiptChallenge) (kvs []*types.KeyValue) {
	kvs = append(kvs, addChallengeStatusIndex(log.Status, log.ChallengeId, log.Index))
	kvs = append(kvs, addChallengeAddrIndex(log.Status, log.ChallengeId, log.Addr, log.Index))
	if log.PrevStatus > 0 {
		kvs = append(kvs, delChallengeStatusIndex(log.PrevStatus, log.PrevIndex))
		kvs = append(kvs, delChallengeAddrIndex(log.PrevStatus, log.Addr, log.PrevIndex))
	}
	return kvs
}

//回滚索引
func (c *Challenge) rollbackIndex(log *ct.ReceiptChallenge) (kvs []*types.KeyValue) {
	kvs = append(kvs, delChallengeStatusIndex(log.Status, log.Index))
	kvs = append(kvs, delChallengeAddrIndex(log.Status, log.Addr, log.Index))
	if log.PrevStatus > 0 {
		kvs = append(kvs, addChallengeStatusIndex(log.PrevStatus, log.ChallengeId, log.PrevIndex))
		kvs = append(kvs, addChallengeAddrIndex(log.PrevStatus, log.ChallengeId, log.Addr, log.PrevIndex))
	}
	return kvs
}

func calcChallengeStatusIndexKey(status int32, index int64) []byte {
	key := fmt.Sprintf("challenge-status:%d:%018d", status, index)
	return []byte(key)
}

func calcChallengeStatusIndexPrefix(status int32) []byte {
	key := fmt.Sprintf("challenge-status:%d:", status)
	return []byte(key)
}

func calcChallengeAddrIndexKey(status int32, addr string, index int64) []byte {
	key := fmt.Sprintf("challenge-addr:%d:%s:%018d", status, addr, index)
	return []byte(key)
}

func calcChallengeAddrIndexPrefix(status int32, addr string) []byte {
	key := fmt.Sprintf("challenge-addr:%d:%s:", status, addr)
	return []byte(key)
}

func addChallengeStatusIndex(status int32, challengeID string, index int64) *types.KeyValue {
	kv := &types.KeyValue{}
	kv.Key = calcChallengeStatusIndexKey(status, index)
	record := &ct.ChallengeRecord{
		ChallengeId: challengeID,
		Index:       index,
	}
	kv.Value = types.Encode(record)
	return kv
}

func addChallengeAddrIndex(status int32, challengeID, addr string, index int64) *types.KeyValue {
	kv := &types.KeyValue{}
	kv.Key = calcChallengeAddrIndexKey(status, addr, index)
	record := &ct.ChallengeRecord{
		ChallengeId: challengeID,
		Index:       index,
	}
	kv.Value = types.Encode(record)
	return kv
}

func delChallengeStatusIndex(status int32, index int64) *types.KeyValue {
	kv := &types.KeyValue{}
	kv.Key = calcChallengeStatusIndexKey(status, index)
	kv.Value = nil
	return kv
}

func delChallengeAddrIndex(status int32, addr string, index int64) *types.KeyValue {
	kv := &types.KeyValue{}
	kv.Key = calcChallengeAddrIndexKey(status, addr, index)
	//value置nil,提交时会自动执行删除操作
	kv.Value = nil
	return kv
}

// GetTypeMap action名称到ty的映射
func (c *Challenge) GetTypeMap() map[string]int32 {
	return map[string]int32{
		"AdminInit":   ct.ChallengeActionAdminInit,
		"AdminUpdate": ct.ChallengeActionAdminUpdate,
		"AdminRevoke": ct.ChallengeActionAdminRevoke,
		"OracleInit":  ct.ChallengeActionOracleInit,
		"PriceUpdate": ct.ChallengeActionPriceUpdate,
		"Create":      ct.ChallengeActionCreate,
		"Accept":      ct.ChallengeActionAccept,
		"Resolve":     ct.ChallengeActionResolve,
		"Refund":      ct.ChallengeActionRefund,
	}
}
