// Copyright USDFG Project 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	ct "github.com/usdfg/challenge/plugin/dapp/challenge/types"
	"github.com/usdfg/challenge/types"
)

// Query 本地查询入口
func (c *Challenge) Query(funcName string, params []byte) (types.Message, error) {
	switch funcName {
	case ct.FuncNameQueryChallengeByID:
		var in ct.QueryChallengeInfo
		if err := types.Decode(params, &in); err != nil {
			return nil, err
		}
		return c.queryChallengeByID(in.GetChallengeId())
	case ct.FuncNameQueryChallengeListByStatus:
		var in ct.QueryChallengeListByStatus
		if err := types.Decode(params, &in); err != nil {
			return nil, err
		}
		return c.queryChallengeListByStatus(&in)
	case ct.FuncNameQueryChallengeListByAddr:
		var in ct.QueryChallengeListByAddr
		if err := types.Decode(params, &in); err != nil {
			return nil, err
		}
		return c.queryChallengeListByAddr(&in)
	case ct.FuncNameQueryAdminState:
		admin, err := readAdmin(c.GetStateDB())
		if err != nil {
			return nil, ct.ErrAdminNotInit
		}
		return &ct.ReplyAdminState{Admin: admin}, nil
	case ct.FuncNameQueryPriceOracle:
		oracle, err := readOracle(c.GetStateDB())
		if err != nil {
			return nil, ct.ErrOracleNotInit
		}
		return &ct.ReplyPriceOracle{Oracle: oracle}, nil
	}
	return nil, types.ErrActionNotSupport
}

func (c *Challenge) queryChallengeByID(id string) (types.Message, error) {
	ch, err := readChallenge(c.GetStateDB(), id)
	if err != nil {
		return nil, err
	}
	return &ct.ReplyChallenge{Challenge: ch}, nil
}

func (c *Challenge) queryChallengeListByStatus(in *ct.QueryChallengeListByStatus) (types.Message, error) {
	count := in.GetCount()
	if count <= 0 {
		count = DefaultCount
	}
	var key []byte
	if in.GetIndex() > 0 {
		key = calcChallengeStatusIndexKey(in.GetStatus(), in.GetIndex())
	}
	values, err := c.GetLocalDB().List(calcChallengeStatusIndexPrefix(in.GetStatus()), key, count, in.GetDirection())
	if err != nil {
		return nil, err
	}
	return c.loadChallenges(values)
}

func (c *Challenge) queryChallengeListByAddr(in *ct.QueryChallengeListByAddr) (types.Message, error) {
	count := in.GetCount()
	if count <= 0 {
		count = DefaultCount
	}
	//地址索引按状态分前缀存储, 逐个状态累加
	var reply ct.ReplyChallengeList
	for status := int32(ct.ChallengeStatusCreated); status <= int32(ct.ChallengeStatusCancelled); status++ {
		var key []byte
		if in.GetIndex() > 0 {
			key = calcChallengeAddrIndexKey(status, in.GetAddr(), in.GetIndex())
		}
		values, err := c.GetLocalDB().List(calcChallengeAddrIndexPrefix(status, in.GetAddr()), key, count, in.GetDirection())
		if err != nil {
			continue
		}
		list, err := c.loadChallenges(values)
		if err != nil {
			return nil, err
		}
		reply.Challenges = append(reply.Challenges, list.(*ct.ReplyChallengeList).Challenges...)
	}
	if len(reply.Challenges) == 0 {
		return nil, types.ErrNotFound
	}
	return &reply, nil
}

func (c *Challenge) loadChallenges(values [][]byte) (types.Message, error) {
	var reply ct.ReplyChallengeList
	for _, value := range values {
		var record ct.ChallengeRecord
		if err := types.Decode(value, &record); err != nil {
			continue
		}
		ch, err := readChallenge(c.GetStateDB(), record.ChallengeId)
		if err != nil {
			clog.Error("loadChallenges", "id", record.ChallengeId, "err", err)
			continue
		}
		reply.Challenges = append(reply.Challenges, ch)
	}
	return &reply, nil
}
