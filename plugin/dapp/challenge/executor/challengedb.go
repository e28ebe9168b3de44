// Copyright USDFG Project 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"math"

	"github.com/usdfg/challenge/account"
	"github.com/usdfg/challenge/common/address"
	dbm "github.com/usdfg/challenge/common/db"
	ct "github.com/usdfg/challenge/plugin/dapp/challenge/types"
	"github.com/usdfg/challenge/types"
)

// Action 打包一次交易执行需要的环境
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
	localDB      dbm.KVDB
	index        int
}

// NewAction 创建Action
func NewAction(c *Challenge, tx *types.Transaction, index int) *Action {
	hash := tx.Hash()
	fromaddr := tx.From()
	return &Action{c.GetCoinsAccount(), c.GetStateDB(), hash, fromaddr,
		c.GetBlockTime(), c.GetHeight(), c.GetAddr(), c.GetLocalDB(), index}
}

// GetIndex 交易在链上的全局索引
func (action *Action) GetIndex() int64 {
	return action.height*types.MaxTxsPerBlock + int64(action.index)
}

func calcChallengeKey(id string) []byte {
	return []byte("mavl-challenge-" + id)
}

func calcAdminKey() []byte {
	return []byte("mavl-challenge-admin")
}

func calcOracleKey() []byte {
	return []byte("mavl-challenge-price-oracle")
}

// calcChallengeID 由创建者地址和种子确定性导出对战ID, 本身也是一个合法地址
func calcChallengeID(creator, seed string) string {
	return address.ExecAddress("challenge:" + creator + ":" + seed)
}

// calcEscrowAddr 每个对战有独立的托管账户地址
func calcEscrowAddr(challengeID string) string {
	return address.ExecAddress("escrow_wallet:" + challengeID + ":" + types.CoinSymbol)
}

func readChallenge(db dbm.KV, id string) (*ct.Challenge, error) {
	data, err := db.Get(calcChallengeKey(id))
	if err != nil {
		return nil, err
	}
	var ch ct.Challenge
	err = types.Decode(data, &ch)
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

func readAdmin(db dbm.KV) (*ct.AdminState, error) {
	data, err := db.Get(calcAdminKey())
	if err != nil {
		return nil, err
	}
	var admin ct.AdminState
	err = types.Decode(data, &admin)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func readOracle(db dbm.KV) (*ct.PriceOracle, error) {
	data, err := db.Get(calcOracleKey())
	if err != nil {
		return nil, err
	}
	var oracle ct.PriceOracle
	err = types.Decode(data, &oracle)
	if err != nil {
		return nil, err
	}
	return &oracle, nil
}

// getOraclePrice 预言机未初始化时使用默认价格
func (action *Action) getOraclePrice() int64 {
	oracle, err := readOracle(action.db)
	if err != nil || oracle.GetPrice() <= 0 {
		return DefaultOraclePrice
	}
	return oracle.Price
}

// checkFeeBounds 把报名费换算成法币分值并检查上下限, 边界值合法
func checkFeeBounds(entryFee, price int64) error {
	//零值报名费走下限校验, 负值是非法金额
	if entryFee < 0 {
		return types.ErrAmount
	}
	whole := entryFee / types.Coin
	frac := entryFee % types.Coin
	if price > 0 && whole > math.MaxInt64/price {
		return ct.ErrEntryFeeTooHigh
	}
	cents := whole*price + frac*price/types.Coin
	if cents < MinFeeCents {
		return ct.ErrEntryFeeTooLow
	}
	if cents > MaxFeeCents {
		return ct.ErrEntryFeeTooHigh
	}
	return nil
}

func (action *Action) saveStateKV(key []byte, msg types.Message) *types.KeyValue {
	value := types.Encode(msg)
	if err := action.db.Set(key, value); err != nil {
		panic(err)
	}
	return &types.KeyValue{Key: key, Value: value}
}

// AdminInit 初始化管理员注册表, 重复初始化返回无害错误
func (action *Action) AdminInit(init *ct.ChallengeAdminInit) (*types.Receipt, error) {
	if _, err := readAdmin(action.db); err == nil {
		clog.Info("AdminInit", "err", ct.ErrAdminExists)
		return nil, ct.ErrAdminExists
	}
	adminAddr := init.GetAdminAddr()
	if adminAddr == "" {
		adminAddr = action.fromaddr
	}
	if err := address.CheckAddress(adminAddr); err != nil {
		return nil, types.ErrInvalidParam
	}
	admin := &ct.AdminState{
		AdminAddr:   adminAddr,
		IsActive:    true,
		CreatedAt:   action.blocktime,
		LastUpdated: action.blocktime,
	}
	kv := action.saveStateKV(calcAdminKey(), admin)
	receiptLog := &types.ReceiptLog{
		Ty:  ct.TyLogAdminInit,
		Log: types.Encode(&ct.ReceiptAdmin{Prev: nil, Current: admin}),
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{receiptLog},
	}, nil
}

// AdminUpdate 更换管理员地址, 只有当前有效管理员可以操作
func (action *Action) AdminUpdate(update *ct.ChallengeAdminUpdate) (*types.Receipt, error) {
	admin, err := readAdmin(action.db)
	if err != nil {
		return nil, ct.ErrAdminNotInit
	}
	if action.fromaddr != admin.AdminAddr {
		return nil, ct.ErrUnauthorized
	}
	if !admin.IsActive {
		return nil, ct.ErrAdminInactive
	}
	if err := address.CheckAddress(update.GetNewAdminAddr()); err != nil {
		return nil, types.ErrInvalidParam
	}
	prev := *admin
	admin.AdminAddr = update.NewAdminAddr
	admin.LastUpdated = action.blocktime
	kv := action.saveStateKV(calcAdminKey(), admin)
	receiptLog := &types.ReceiptLog{
		Ty:  ct.TyLogAdminUpdate,
		Log: types.Encode(&ct.ReceiptAdmin{Prev: &prev, Current: admin}),
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{receiptLog},
	}, nil
}

// AdminRevoke 撤销管理员, 撤销后不可恢复
func (action *Action) AdminRevoke(revoke *ct.ChallengeAdminRevoke) (*types.Receipt, error) {
	admin, err := readAdmin(action.db)
	if err != nil {
		return nil, ct.ErrAdminNotInit
	}
	if action.fromaddr != admin.AdminAddr {
		return nil, ct.ErrUnauthorized
	}
	if !admin.IsActive {
		return nil, ct.ErrAdminInactive
	}
	prev := *admin
	admin.IsActive = false
	admin.LastUpdated = action.blocktime
	kv := action.saveStateKV(calcAdminKey(), admin)
	receiptLog := &types.ReceiptLog{
		Ty:  ct.TyLogAdminRevoke,
		Log: types.Encode(&ct.ReceiptAdmin{Prev: &prev, Current: admin}),
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{receiptLog},
	}, nil
}

// checkAdminAuth 预言机操作必须由当前有效管理员发起
func (action *Action) checkAdminAuth() error {
	admin, err := readAdmin(action.db)
	if err != nil {
		return ct.ErrAdminNotInit
	}
	if action.fromaddr != admin.AdminAddr {
		return ct.ErrUnauthorized
	}
	if !admin.IsActive {
		return ct.ErrAdminInactive
	}
	return nil
}

// OracleInit 初始化价格预言机, 只有当前有效管理员可以操作
func (action *Action) OracleInit(init *ct.ChallengeOracleInit) (*types.Receipt, error) {
	if err := action.checkAdminAuth(); err != nil {
		clog.Error("OracleInit", "addr", action.fromaddr, "err", err)
		return nil, err
	}
	if _, err := readOracle(action.db); err == nil {
		clog.Info("OracleInit", "err", ct.ErrOracleExists)
		return nil, ct.ErrOracleExists
	}
	price := init.GetPrice()
	if price < 0 {
		return nil, ct.ErrInvalidPrice
	}
	if price == 0 {
		price = DefaultOraclePrice
	}
	oracle := &ct.PriceOracle{
		Authority:   action.fromaddr,
		Price:       price,
		LastUpdated: action.blocktime,
	}
	kv := action.saveStateKV(calcOracleKey(), oracle)
	receiptLog := &types.ReceiptLog{
		Ty:  ct.TyLogOracleInit,
		Log: types.Encode(&ct.ReceiptPriceOracle{Prev: nil, Current: oracle}),
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{receiptLog},
	}, nil
}

// PriceUpdate 更新价格, 只有当前有效管理员可以操作, 管理员变更后权限随之转移
func (action *Action) PriceUpdate(update *ct.ChallengePriceUpdate) (*types.Receipt, error) {
	if err := action.checkAdminAuth(); err != nil {
		clog.Error("PriceUpdate", "addr", action.fromaddr, "err", err)
		return nil, err
	}
	oracle, err := readOracle(action.db)
	if err != nil {
		return nil, ct.ErrOracleNotInit
	}
	if update.GetPrice() <= 0 {
		return nil, ct.ErrInvalidPrice
	}
	prev := *oracle
	oracle.Authority = action.fromaddr
	oracle.Price = update.Price
	oracle.LastUpdated = action.blocktime
	kv := action.saveStateKV(calcOracleKey(), oracle)
	receiptLog := &types.ReceiptLog{
		Ty:  ct.TyLogPriceUpdate,
		Log: types.Encode(&ct.ReceiptPriceOracle{Prev: &prev, Current: oracle}),
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{receiptLog},
	}, nil
}

// ChallengeCreate 创建对战并托管创建者的报名费
func (action *Action) ChallengeCreate(create *ct.ChallengeCreate) (*types.Receipt, error) {
	//种子参与地址派生, 长度受派生输入上限约束
	if create.GetSeed() == "" || len(create.GetSeed()) > 48 {
		return nil, types.ErrInvalidParam
	}
	if err := checkFeeBounds(create.GetEntryFee(), action.getOraclePrice()); err != nil {
		clog.Error("ChallengeCreate", "addr", action.fromaddr, "entryFee", create.GetEntryFee(), "err", err)
		return nil, err
	}
	challengeID := calcChallengeID(action.fromaddr, create.Seed)
	if _, err := readChallenge(action.db, challengeID); err == nil {
		return nil, ct.ErrChallengeExists
	}
	escrowAddr := calcEscrowAddr(challengeID)

	//所有检查通过后才发生唯一一次转账
	receipt, err := action.coinsAccount.ExecTransfer(action.fromaddr, escrowAddr, action.execaddr, create.EntryFee)
	if err != nil {
		clog.Error("ChallengeCreate.ExecTransfer", "addr", action.fromaddr, "execaddr", action.execaddr, "err", err)
		return nil, err
	}

	ch := &ct.Challenge{
		ChallengeId: challengeID,
		Creator:     action.fromaddr,
		EntryFee:    create.EntryFee,
		Status:      ct.ChallengeStatusCreated,
		CreatedAt:   action.blocktime,
		LastUpdated: action.blocktime,
		ExpireTime:  action.blocktime + RefundWindow,
		Seed:        create.Seed,
		Index:       action.GetIndex(),
		EscrowAddr:  escrowAddr,
	}
	kv := action.saveStateKV(calcChallengeKey(challengeID), ch)
	receiptLog := action.challengeLog(ct.TyLogChallengeCreate, ch, 0, 0)
	receipt.KV = append(receipt.KV, kv)
	receipt.Logs = append(receipt.Logs, receiptLog)
	return receipt, nil
}

// ChallengeAccept 应战, 托管应战者的同额报名费
func (action *Action) ChallengeAccept(accept *ct.ChallengeAccept) (*types.Receipt, error) {
	ch, err := readChallenge(action.db, accept.GetChallengeId())
	if err != nil {
		clog.Error("ChallengeAccept", "id", accept.GetChallengeId(), "err", err)
		return nil, err
	}
	admin, err := readAdmin(action.db)
	if err != nil {
		return nil, ct.ErrAdminNotInit
	}
	if !admin.IsActive {
		return nil, ct.ErrAdminInactive
	}
	if ch.Status != ct.ChallengeStatusCreated {
		return nil, ct.ErrChallengeNotOpen
	}
	if action.fromaddr == ch.Creator {
		return nil, ct.ErrSelfChallenge
	}
	if action.blocktime >= ch.ExpireTime {
		return nil, ct.ErrChallengeExpired
	}

	receipt, err := action.coinsAccount.ExecTransfer(action.fromaddr, ch.EscrowAddr, action.execaddr, ch.EntryFee)
	if err != nil {
		clog.Error("ChallengeAccept.ExecTransfer", "addr", action.fromaddr, "execaddr", action.execaddr, "err", err)
		return nil, err
	}

	prevStatus := ch.Status
	prevIndex := ch.Index
	ch.Challenger = action.fromaddr
	ch.Status = ct.ChallengeStatusAccepted
	ch.LastUpdated = action.blocktime
	ch.PrevIndex = prevIndex
	ch.Index = action.GetIndex()
	kv := action.saveStateKV(calcChallengeKey(ch.ChallengeId), ch)
	receiptLog := action.challengeLog(ct.TyLogChallengeAccept, ch, prevStatus, prevIndex)
	receipt.KV = append(receipt.KV, kv)
	receipt.Logs = append(receipt.Logs, receiptLog)
	return receipt, nil
}

// ChallengeResolve 管理员裁定胜者, 全部奖池一次性付给胜者
func (action *Action) ChallengeResolve(resolve *ct.ChallengeResolve) (*types.Receipt, error) {
	ch, err := readChallenge(action.db, resolve.GetChallengeId())
	if err != nil {
		clog.Error("ChallengeResolve", "id", resolve.GetChallengeId(), "err", err)
		return nil, err
	}
	admin, err := readAdmin(action.db)
	if err != nil {
		return nil, ct.ErrAdminNotInit
	}
	if action.fromaddr != admin.AdminAddr {
		return nil, ct.ErrUnauthorized
	}
	if !admin.IsActive {
		return nil, ct.ErrAdminInactive
	}
	//结算标志在状态检查之前判断, 已结算的对战重复裁定报重入而不是状态错误
	if ch.Processing {
		return nil, ct.ErrReentrancyDetected
	}
	if ch.Status != ct.ChallengeStatusAccepted {
		return nil, ct.ErrChallengeNotInProgress
	}
	if resolve.GetWinner() != ch.Creator && resolve.GetWinner() != ch.Challenger {
		return nil, ct.ErrInvalidWinner
	}

	pot := 2 * ch.EntryFee
	receipt, err := action.coinsAccount.ExecTransfer(ch.EscrowAddr, resolve.Winner, action.execaddr, pot)
	if err != nil {
		clog.Error("ChallengeResolve.ExecTransfer", "escrow", ch.EscrowAddr, "winner", resolve.Winner, "err", err)
		return nil, err
	}

	prevStatus := ch.Status
	prevIndex := ch.Index
	ch.Processing = true
	ch.Winner = resolve.Winner
	ch.Status = ct.ChallengeStatusCompleted
	ch.LastUpdated = action.blocktime
	ch.PrevIndex = prevIndex
	ch.Index = action.GetIndex()
	kv := action.saveStateKV(calcChallengeKey(ch.ChallengeId), ch)
	receiptLog := action.challengeLog(ct.TyLogChallengeResolve, ch, prevStatus, prevIndex)
	receipt.KV = append(receipt.KV, kv)
	receipt.Logs = append(receipt.Logs, receiptLog)
	return receipt, nil
}

// ChallengeRefund 无人应战超过退款窗口后, 创建者取回报名费
func (action *Action) ChallengeRefund(refund *ct.ChallengeRefund) (*types.Receipt, error) {
	ch, err := readChallenge(action.db, refund.GetChallengeId())
	if err != nil {
		clog.Error("ChallengeRefund", "id", refund.GetChallengeId(), "err", err)
		return nil, err
	}
	if action.fromaddr != ch.Creator {
		return nil, ct.ErrUnauthorized
	}
	if ch.Processing {
		return nil, ct.ErrReentrancyDetected
	}
	if ch.Status != ct.ChallengeStatusCreated {
		return nil, ct.ErrChallengeNotOpen
	}
	if action.blocktime < ch.ExpireTime {
		return nil, ct.ErrChallengeNotExpired
	}

	receipt, err := action.coinsAccount.ExecTransfer(ch.EscrowAddr, ch.Creator, action.execaddr, ch.EntryFee)
	if err != nil {
		clog.Error("ChallengeRefund.ExecTransfer", "escrow", ch.EscrowAddr, "creator", ch.Creator, "err", err)
		return nil, err
	}

	prevStatus := ch.Status
	prevIndex := ch.Index
	ch.Processing = true
	ch.Status = ct.ChallengeStatusCancelled
	ch.LastUpdated = action.blocktime
	ch.PrevIndex = prevIndex
	ch.Index = action.GetIndex()
	kv := action.saveStateKV(calcChallengeKey(ch.ChallengeId), ch)
	receiptLog := action.challengeLog(ct.TyLogChallengeRefund, ch, prevStatus, prevIndex)
	receipt.KV = append(receipt.KV, kv)
	receipt.Logs = append(receipt.Logs, receiptLog)
	return receipt, nil
}

func (action *Action) challengeLog(ty int32, ch *ct.Challenge, prevStatus int32, prevIndex int64) *types.ReceiptLog {
	log := &ct.ReceiptChallenge{
		ChallengeId: ch.ChallengeId,
		Status:      ch.Status,
		PrevStatus:  prevStatus,
		Addr:        ch.Creator,
		Index:       ch.Index,
		PrevIndex:   prevIndex,
	}
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(log)}
}
