package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usdfg/challenge/common"
	"github.com/usdfg/challenge/common/crypto"
	dbm "github.com/usdfg/challenge/common/db"
	ct "github.com/usdfg/challenge/plugin/dapp/challenge/types"
	drivers "github.com/usdfg/challenge/system/dapp"
	"github.com/usdfg/challenge/types"
)

type execEnv struct {
	driver    *Challenge
	statedb   dbm.DB
	localdb   dbm.DB
	execaddr  string
	blocktime int64
	height    int64
	index     int
}

type testAccount struct {
	priv crypto.PrivKey
	addr string
}

func newTestAccount(t *testing.T, name string) *testAccount {
	priv, err := crypto.PrivKeyFromBytes(common.Sha256([]byte(name)))
	require.NoError(t, err)
	tx := &types.Transaction{}
	tx.Sign(types.SECP256K1, priv)
	return &testAccount{priv: priv, addr: tx.From()}
}

func newExecEnv(t *testing.T) *execEnv {
	statedb, err := dbm.NewGoMemDB("state", "", 128)
	require.NoError(t, err)
	localdb, err := dbm.NewGoMemDB("local", "", 128)
	require.NoError(t, err)
	c := newChallenge().(*Challenge)
	c.SetStateDB(statedb)
	c.SetLocalDB(localdb)
	env := &execEnv{
		driver:    c,
		statedb:   statedb,
		localdb:   localdb,
		execaddr:  drivers.ExecAddress(ct.ChallengeX),
		blocktime: 1600000000,
		height:    100,
	}
	c.SetEnv(env.height, env.blocktime)
	return env
}

func (env *execEnv) fund(acct *testAccount, amount int64) {
	env.driver.GetCoinsAccount().SaveExecAccount(env.execaddr, &types.Account{
		Balance: amount,
		Addr:    acct.addr,
	})
}

func (env *execEnv) execBalance(acct *testAccount) int64 {
	a := env.driver.GetCoinsAccount().LoadExecAccount(acct.addr, env.execaddr)
	return a.Balance + a.Frozen
}

func (env *execEnv) escrowBalance(challengeID string) int64 {
	a := env.driver.GetCoinsAccount().LoadExecAccount(calcEscrowAddr(challengeID), env.execaddr)
	return a.Balance + a.Frozen
}

func (env *execEnv) signTx(action *ct.ChallengeAction, acct *testAccount) *types.Transaction {
	tx := &types.Transaction{
		Execer:  []byte(ct.ChallengeX),
		Payload: types.Encode(action),
		Fee:     types.Coin / 100,
		Nonce:   int64(env.index),
		To:      env.execaddr,
	}
	tx.Sign(types.SECP256K1, acct.priv)
	return tx
}

// exec 执行一笔交易, 每笔交易递增index
func (env *execEnv) exec(action *ct.ChallengeAction, acct *testAccount) (*types.Receipt, error) {
	tx := env.signTx(action, acct)
	env.driver.SetEnv(env.height, env.blocktime)
	receipt, err := env.driver.Exec(tx, env.index)
	env.index++
	return receipt, err
}

// execLocal 把ExecLocal产生的KV落到localdb, 模拟区块提交
func (env *execEnv) execLocal(t *testing.T, action *ct.ChallengeAction, acct *testAccount, receipt *types.Receipt) {
	tx := env.signTx(action, acct)
	set, err := env.driver.ExecLocal(tx, &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}, env.index-1)
	require.NoError(t, err)
	for _, kv := range set.KV {
		require.NoError(t, env.localdb.Set(kv.Key, kv.Value))
	}
}

func adminInitAction(addr string) *ct.ChallengeAction {
	return &ct.ChallengeAction{
		Ty:    ct.ChallengeActionAdminInit,
		Value: &ct.ChallengeAction_AdminInit{AdminInit: &ct.ChallengeAdminInit{AdminAddr: addr}},
	}
}

func oracleInitAction(price int64) *ct.ChallengeAction {
	return &ct.ChallengeAction{
		Ty:    ct.ChallengeActionOracleInit,
		Value: &ct.ChallengeAction_OracleInit{OracleInit: &ct.ChallengeOracleInit{Price: price}},
	}
}

func priceUpdateAction(price int64) *ct.ChallengeAction {
	return &ct.ChallengeAction{
		Ty:    ct.ChallengeActionPriceUpdate,
		Value: &ct.ChallengeAction_PriceUpdate{PriceUpdate: &ct.ChallengePriceUpdate{Price: price}},
	}
}

func createAction(entryFee int64, seed string) *ct.ChallengeAction {
	return &ct.ChallengeAction{
		Ty:    ct.ChallengeActionCreate,
		Value: &ct.ChallengeAction_Create{Create: &ct.ChallengeCreate{EntryFee: entryFee, Seed: seed}},
	}
}

func acceptAction(id string) *ct.ChallengeAction {
	return &ct.ChallengeAction{
		Ty:    ct.ChallengeActionAccept,
		Value: &ct.ChallengeAction_Accept{Accept: &ct.ChallengeAccept{ChallengeId: id}},
	}
}

func resolveAction(id, winner string) *ct.ChallengeAction {
	return &ct.ChallengeAction{
		Ty:    ct.ChallengeActionResolve,
		Value: &ct.ChallengeAction_Resolve{Resolve: &ct.ChallengeResolve{ChallengeId: id, Winner: winner}},
	}
}

func refundAction(id string) *ct.ChallengeAction {
	return &ct.ChallengeAction{
		Ty:    ct.ChallengeActionRefund,
		Value: &ct.ChallengeAction_Refund{Refund: &ct.ChallengeRefund{ChallengeId: id}},
	}
}

func TestAdminLifecycle(t *testing.T) {
	env := newExecEnv(t)
	admin := newTestAccount(t, "admin")
	other := newTestAccount(t, "other")

	_, err := env.exec(adminInitAction(""), admin)
	require.NoError(t, err)

	//重复初始化是无害错误
	_, err = env.exec(adminInitAction(""), other)
	assert.Equal(t, ct.ErrAdminExists, err)

	//非管理员不能更换
	update := &ct.ChallengeAction{
		Ty:    ct.ChallengeActionAdminUpdate,
		Value: &ct.ChallengeAction_AdminUpdate{AdminUpdate: &ct.ChallengeAdminUpdate{NewAdminAddr: other.addr}},
	}
	_, err = env.exec(update, other)
	assert.Equal(t, ct.ErrUnauthorized, err)

	_, err = env.exec(update, admin)
	require.NoError(t, err)
	adminState, err := readAdmin(env.statedb)
	require.NoError(t, err)
	assert.Equal(t, other.addr, adminState.AdminAddr)
	assert.True(t, adminState.IsActive)

	//新管理员撤销自己
	revoke := &ct.ChallengeAction{
		Ty:    ct.ChallengeActionAdminRevoke,
		Value: &ct.ChallengeAction_AdminRevoke{AdminRevoke: &ct.ChallengeAdminRevoke{}},
	}
	_, err = env.exec(revoke, other)
	require.NoError(t, err)
	adminState, err = readAdmin(env.statedb)
	require.NoError(t, err)
	assert.False(t, adminState.IsActive)

	//撤销后不可再操作
	_, err = env.exec(update, other)
	assert.Equal(t, ct.ErrAdminInactive, err)
}

func TestOracle(t *testing.T) {
	env := newExecEnv(t)
	admin := newTestAccount(t, "admin")
	other := newTestAccount(t, "other")

	_, err := env.exec(adminInitAction(""), admin)
	require.NoError(t, err)

	_, err = env.exec(oracleInitAction(2000), admin)
	require.NoError(t, err)

	_, err = env.exec(oracleInitAction(2000), admin)
	assert.Equal(t, ct.ErrOracleExists, err)

	//非管理员不能更新价格
	_, err = env.exec(priceUpdateAction(3000), other)
	assert.Equal(t, ct.ErrUnauthorized, err)

	_, err = env.exec(priceUpdateAction(3000), admin)
	require.NoError(t, err)
	oracle, err := readOracle(env.statedb)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), oracle.Price)

	_, err = env.exec(priceUpdateAction(0), admin)
	assert.Equal(t, ct.ErrInvalidPrice, err)
}

func TestOracleRequiresAdmin(t *testing.T) {
	env := newExecEnv(t)
	admin := newTestAccount(t, "admin")
	attacker := newTestAccount(t, "attacker")

	//管理员未初始化时预言机不可用
	_, err := env.exec(oracleInitAction(2000), attacker)
	assert.Equal(t, ct.ErrAdminNotInit, err)

	_, err = env.exec(adminInitAction(""), admin)
	require.NoError(t, err)

	//非管理员初始化被拒绝, 状态不落库
	_, err = env.exec(oracleInitAction(2000), attacker)
	assert.Equal(t, ct.ErrUnauthorized, err)
	_, err = readOracle(env.statedb)
	assert.Equal(t, types.ErrNotFound, err)

	_, err = env.exec(oracleInitAction(2000), admin)
	require.NoError(t, err)

	_, err = env.exec(priceUpdateAction(9999), attacker)
	assert.Equal(t, ct.ErrUnauthorized, err)
	oracle, err := readOracle(env.statedb)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), oracle.Price)

	//管理员变更后价格权限随之转移
	newAdmin := newTestAccount(t, "newadmin")
	update := &ct.ChallengeAction{
		Ty:    ct.ChallengeActionAdminUpdate,
		Value: &ct.ChallengeAction_AdminUpdate{AdminUpdate: &ct.ChallengeAdminUpdate{NewAdminAddr: newAdmin.addr}},
	}
	_, err = env.exec(update, admin)
	require.NoError(t, err)
	_, err = env.exec(priceUpdateAction(2500), admin)
	assert.Equal(t, ct.ErrUnauthorized, err)
	_, err = env.exec(priceUpdateAction(2500), newAdmin)
	require.NoError(t, err)

	//撤销后管理员也不能再更新
	revoke := &ct.ChallengeAction{
		Ty:    ct.ChallengeActionAdminRevoke,
		Value: &ct.ChallengeAction_AdminRevoke{AdminRevoke: &ct.ChallengeAdminRevoke{}},
	}
	_, err = env.exec(revoke, newAdmin)
	require.NoError(t, err)
	_, err = env.exec(priceUpdateAction(2600), newAdmin)
	assert.Equal(t, ct.ErrAdminInactive, err)
}

func TestOracleInitDefaultPrice(t *testing.T) {
	env := newExecEnv(t)
	admin := newTestAccount(t, "admin")

	_, err := env.exec(adminInitAction(""), admin)
	require.NoError(t, err)

	//price为0时落默认价格
	_, err = env.exec(oracleInitAction(0), admin)
	require.NoError(t, err)
	oracle, err := readOracle(env.statedb)
	require.NoError(t, err)
	assert.Equal(t, DefaultOraclePrice, oracle.Price)
	assert.Equal(t, admin.addr, oracle.Authority)
}

func TestCheckFeeBounds(t *testing.T) {
	//默认价格1000分/币时, 下限正好是1个币
	assert.NoError(t, checkFeeBounds(types.Coin, DefaultOraclePrice))
	assert.Equal(t, ct.ErrEntryFeeTooLow, checkFeeBounds(types.Coin-1, DefaultOraclePrice))
	//上限正好是1000个币
	assert.NoError(t, checkFeeBounds(1000*types.Coin, DefaultOraclePrice))
	assert.Equal(t, ct.ErrEntryFeeTooHigh, checkFeeBounds(1001*types.Coin, DefaultOraclePrice))
	//零值落下限校验, 负值才是非法金额
	assert.Equal(t, ct.ErrEntryFeeTooLow, checkFeeBounds(0, DefaultOraclePrice))
	assert.Equal(t, types.ErrAmount, checkFeeBounds(-types.Coin, DefaultOraclePrice))
	//极端大额直接超出上限
	assert.Equal(t, ct.ErrEntryFeeTooHigh, checkFeeBounds(int64(9e18), DefaultOraclePrice))
	//价格极大时乘法溢出也按上限处理
	assert.Equal(t, ct.ErrEntryFeeTooHigh, checkFeeBounds(1000*types.Coin, int64(1e17)))
}

func TestCreateFeeBoundsWithOracle(t *testing.T) {
	env := newExecEnv(t)
	admin := newTestAccount(t, "admin")
	creator := newTestAccount(t, "creator")
	env.fund(creator, 10000*types.Coin)

	_, err := env.exec(adminInitAction(""), admin)
	require.NoError(t, err)

	//价格2000分/币, 下限变成0.5个币
	_, err = env.exec(oracleInitAction(2000), admin)
	require.NoError(t, err)

	_, err = env.exec(createAction(types.Coin/2, "s1"), creator)
	require.NoError(t, err)
	_, err = env.exec(createAction(types.Coin/2-1, "s2"), creator)
	assert.Equal(t, ct.ErrEntryFeeTooLow, err)
	_, err = env.exec(createAction(501*types.Coin, "s3"), creator)
	assert.Equal(t, ct.ErrEntryFeeTooHigh, err)
}

func TestChallengeLifecycleConservation(t *testing.T) {
	env := newExecEnv(t)
	admin := newTestAccount(t, "admin")
	creator := newTestAccount(t, "creator")
	challenger := newTestAccount(t, "challenger")
	env.fund(creator, 100*types.Coin)
	env.fund(challenger, 100*types.Coin)

	_, err := env.exec(adminInitAction(""), admin)
	require.NoError(t, err)

	entryFee := int64(2 * types.Coin)
	_, err = env.exec(createAction(entryFee, "seed-1"), creator)
	require.NoError(t, err)
	challengeID := calcChallengeID(creator.addr, "seed-1")

	ch, err := readChallenge(env.statedb, challengeID)
	require.NoError(t, err)
	assert.Equal(t, int32(ct.ChallengeStatusCreated), ch.Status)
	assert.Equal(t, env.blocktime+RefundWindow, ch.ExpireTime)
	assert.False(t, ch.Processing)
	assert.Equal(t, entryFee, env.escrowBalance(challengeID))
	assert.Equal(t, int64(98*types.Coin), env.execBalance(creator))

	_, err = env.exec(acceptAction(challengeID), challenger)
	require.NoError(t, err)
	ch, err = readChallenge(env.statedb, challengeID)
	require.NoError(t, err)
	assert.Equal(t, int32(ct.ChallengeStatusAccepted), ch.Status)
	assert.Equal(t, challenger.addr, ch.Challenger)
	assert.Equal(t, 2*entryFee, env.escrowBalance(challengeID))

	_, err = env.exec(resolveAction(challengeID, challenger.addr), admin)
	require.NoError(t, err)
	ch, err = readChallenge(env.statedb, challengeID)
	require.NoError(t, err)
	assert.Equal(t, int32(ct.ChallengeStatusCompleted), ch.Status)
	assert.Equal(t, challenger.addr, ch.Winner)
	assert.True(t, ch.Processing)

	//价值守恒: 胜者拿走全部奖池, 托管清零
	assert.Equal(t, int64(0), env.escrowBalance(challengeID))
	assert.Equal(t, int64(98*types.Coin), env.execBalance(creator))
	assert.Equal(t, int64(102*types.Coin), env.execBalance(challenger))
	total := env.execBalance(creator) + env.execBalance(challenger) + env.escrowBalance(challengeID)
	assert.Equal(t, int64(200*types.Coin), total)
}

func TestResolveReentrancy(t *testing.T) {
	env := newExecEnv(t)
	admin := newTestAccount(t, "admin")
	creator := newTestAccount(t, "creator")
	challenger := newTestAccount(t, "challenger")
	env.fund(creator, 100*types.Coin)
	env.fund(challenger, 100*types.Coin)

	_, err := env.exec(adminInitAction(""), admin)
	require.NoError(t, err)
	_, err = env.exec(createAction(2*types.Coin, "seed-r"), creator)
	require.NoError(t, err)
	challengeID := calcChallengeID(creator.addr, "seed-r")
	_, err = env.exec(acceptAction(challengeID), challenger)
	require.NoError(t, err)

	_, err = env.exec(resolveAction(challengeID, challenger.addr), admin)
	require.NoError(t, err)
	winnerBalance := env.execBalance(challenger)

	//第二次裁定被结算标志拦截, 不产生第二次支付
	_, err = env.exec(resolveAction(challengeID, challenger.addr), admin)
	assert.Equal(t, ct.ErrReentrancyDetected, err)
	assert.Equal(t, winnerBalance, env.execBalance(challenger))
	assert.Equal(t, int64(0), env.escrowBalance(challengeID))

	//改个胜者也一样被拦截
	_, err = env.exec(resolveAction(challengeID, creator.addr), admin)
	assert.Equal(t, ct.ErrReentrancyDetected, err)
}

func TestAcceptErrors(t *testing.T) {
	env := newExecEnv(t)
	admin := newTestAccount(t, "admin")
	creator := newTestAccount(t, "creator")
	challenger := newTestAccount(t, "challenger")
	poor := newTestAccount(t, "poor")
	env.fund(creator, 100*types.Coin)
	env.fund(challenger, 100*types.Coin)

	_, err := env.exec(adminInitAction(""), admin)
	require.NoError(t, err)
	_, err = env.exec(createAction(2*types.Coin, "seed-a"), creator)
	require.NoError(t, err)
	challengeID := calcChallengeID(creator.addr, "seed-a")

	//不能应战自己
	_, err = env.exec(acceptAction(challengeID), creator)
	assert.Equal(t, ct.ErrSelfChallenge, err)

	//余额不足
	_, err = env.exec(acceptAction(challengeID), poor)
	assert.Equal(t, types.ErrNoBalance, err)

	//超过应战窗口
	env.blocktime += RefundWindow
	_, err = env.exec(acceptAction(challengeID), challenger)
	assert.Equal(t, ct.ErrChallengeExpired, err)
	env.blocktime -= RefundWindow

	//正常应战后不能重复应战
	_, err = env.exec(acceptAction(challengeID), challenger)
	require.NoError(t, err)
	other := newTestAccount(t, "other")
	env.fund(other, 100*types.Coin)
	_, err = env.exec(acceptAction(challengeID), other)
	assert.Equal(t, ct.ErrChallengeNotOpen, err)

	//管理员撤销后不能应战
	_, err = env.exec(createAction(2*types.Coin, "seed-b"), creator)
	require.NoError(t, err)
	revoke := &ct.ChallengeAction{
		Ty:    ct.ChallengeActionAdminRevoke,
		Value: &ct.ChallengeAction_AdminRevoke{AdminRevoke: &ct.ChallengeAdminRevoke{}},
	}
	_, err = env.exec(revoke, admin)
	require.NoError(t, err)
	_, err = env.exec(acceptAction(calcChallengeID(creator.addr, "seed-b")), challenger)
	assert.Equal(t, ct.ErrAdminInactive, err)
}

func TestResolveErrors(t *testing.T) {
	env := newExecEnv(t)
	admin := newTestAccount(t, "admin")
	creator := newTestAccount(t, "creator")
	challenger := newTestAccount(t, "challenger")
	outsider := newTestAccount(t, "outsider")
	env.fund(creator, 100*types.Coin)
	env.fund(challenger, 100*types.Coin)

	_, err := env.exec(adminInitAction(""), admin)
	require.NoError(t, err)
	_, err = env.exec(createAction(2*types.Coin, "seed-e"), creator)
	require.NoError(t, err)
	challengeID := calcChallengeID(creator.addr, "seed-e")

	//未应战不能裁定
	_, err = env.exec(resolveAction(challengeID, creator.addr), admin)
	assert.Equal(t, ct.ErrChallengeNotInProgress, err)

	_, err = env.exec(acceptAction(challengeID), challenger)
	require.NoError(t, err)

	//非管理员不能裁定
	_, err = env.exec(resolveAction(challengeID, creator.addr), outsider)
	assert.Equal(t, ct.ErrUnauthorized, err)

	//胜者必须是对战双方之一
	_, err = env.exec(resolveAction(challengeID, outsider.addr), admin)
	assert.Equal(t, ct.ErrInvalidWinner, err)
}

func TestRefund(t *testing.T) {
	env := newExecEnv(t)
	admin := newTestAccount(t, "admin")
	creator := newTestAccount(t, "creator")
	outsider := newTestAccount(t, "outsider")
	env.fund(creator, 100*types.Coin)

	_, err := env.exec(adminInitAction(""), admin)
	require.NoError(t, err)
	_, err = env.exec(createAction(2*types.Coin, "seed-f"), creator)
	require.NoError(t, err)
	challengeID := calcChallengeID(creator.addr, "seed-f")

	//退款窗口未到
	_, err = env.exec(refundAction(challengeID), creator)
	assert.Equal(t, ct.ErrChallengeNotExpired, err)

	//只有创建者能退款
	env.blocktime += RefundWindow
	_, err = env.exec(refundAction(challengeID), outsider)
	assert.Equal(t, ct.ErrUnauthorized, err)

	_, err = env.exec(refundAction(challengeID), creator)
	require.NoError(t, err)
	ch, err := readChallenge(env.statedb, challengeID)
	require.NoError(t, err)
	assert.Equal(t, int32(ct.ChallengeStatusCancelled), ch.Status)
	assert.True(t, ch.Processing)
	assert.Equal(t, int64(0), env.escrowBalance(challengeID))
	assert.Equal(t, int64(100*types.Coin), env.execBalance(creator))

	//重复退款被结算标志拦截
	_, err = env.exec(refundAction(challengeID), creator)
	assert.Equal(t, ct.ErrReentrancyDetected, err)
}

func TestDuplicateCreate(t *testing.T) {
	env := newExecEnv(t)
	creator := newTestAccount(t, "creator")
	env.fund(creator, 100*types.Coin)

	_, err := env.exec(createAction(2*types.Coin, "seed-d"), creator)
	require.NoError(t, err)
	_, err = env.exec(createAction(2*types.Coin, "seed-d"), creator)
	assert.Equal(t, ct.ErrChallengeExists, err)

	//ID由创建者地址和种子确定性导出
	assert.Equal(t, calcChallengeID(creator.addr, "seed-d"), calcChallengeID(creator.addr, "seed-d"))
	assert.NotEqual(t, calcChallengeID(creator.addr, "seed-d"), calcChallengeID(creator.addr, "seed-x"))
}

func TestExecLocalIndexAndQuery(t *testing.T) {
	env := newExecEnv(t)
	admin := newTestAccount(t, "admin")
	creator := newTestAccount(t, "creator")
	challenger := newTestAccount(t, "challenger")
	env.fund(creator, 100*types.Coin)
	env.fund(challenger, 100*types.Coin)

	_, err := env.exec(adminInitAction(""), admin)
	require.NoError(t, err)

	create := createAction(2*types.Coin, "seed-q")
	receipt, err := env.exec(create, creator)
	require.NoError(t, err)
	env.execLocal(t, create, creator, receipt)
	challengeID := calcChallengeID(creator.addr, "seed-q")

	msg, err := env.driver.Query(ct.FuncNameQueryChallengeListByStatus,
		types.Encode(&ct.QueryChallengeListByStatus{Status: ct.ChallengeStatusCreated}))
	require.NoError(t, err)
	list := msg.(*ct.ReplyChallengeList)
	require.Len(t, list.Challenges, 1)
	assert.Equal(t, challengeID, list.Challenges[0].ChallengeId)

	msg, err = env.driver.Query(ct.FuncNameQueryChallengeByID,
		types.Encode(&ct.QueryChallengeInfo{ChallengeId: challengeID}))
	require.NoError(t, err)
	assert.Equal(t, challengeID, msg.(*ct.ReplyChallenge).Challenge.ChallengeId)

	//应战后created索引被清掉, accepted索引建立
	accept := acceptAction(challengeID)
	receipt, err = env.exec(accept, challenger)
	require.NoError(t, err)
	env.execLocal(t, accept, challenger, receipt)

	_, err = env.driver.Query(ct.FuncNameQueryChallengeListByStatus,
		types.Encode(&ct.QueryChallengeListByStatus{Status: ct.ChallengeStatusCreated}))
	assert.Equal(t, types.ErrNotFound, err)

	msg, err = env.driver.Query(ct.FuncNameQueryChallengeListByStatus,
		types.Encode(&ct.QueryChallengeListByStatus{Status: ct.ChallengeStatusAccepted}))
	require.NoError(t, err)
	list = msg.(*ct.ReplyChallengeList)
	require.Len(t, list.Challenges, 1)

	//按创建者地址查询
	msg, err = env.driver.Query(ct.FuncNameQueryChallengeListByAddr,
		types.Encode(&ct.QueryChallengeListByAddr{Addr: creator.addr}))
	require.NoError(t, err)
	list = msg.(*ct.ReplyChallengeList)
	require.Len(t, list.Challenges, 1)

	//回滚后accepted索引消失, created索引恢复
	set, err := env.driver.ExecDelLocal(env.signTx(accept, challenger),
		&types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}, env.index-1)
	require.NoError(t, err)
	for _, kv := range set.KV {
		require.NoError(t, env.localdb.Set(kv.Key, kv.Value))
	}
	_, err = env.driver.Query(ct.FuncNameQueryChallengeListByStatus,
		types.Encode(&ct.QueryChallengeListByStatus{Status: ct.ChallengeStatusAccepted}))
	assert.Equal(t, types.ErrNotFound, err)
	msg, err = env.driver.Query(ct.FuncNameQueryChallengeListByStatus,
		types.Encode(&ct.QueryChallengeListByStatus{Status: ct.ChallengeStatusCreated}))
	require.NoError(t, err)
	require.Len(t, msg.(*ct.ReplyChallengeList).Challenges, 1)
}

func TestAdminAndOracleQuery(t *testing.T) {
	env := newExecEnv(t)
	admin := newTestAccount(t, "admin")

	_, err := env.driver.Query(ct.FuncNameQueryAdminState, nil)
	assert.Equal(t, ct.ErrAdminNotInit, err)

	_, err = env.exec(adminInitAction(""), admin)
	require.NoError(t, err)
	msg, err := env.driver.Query(ct.FuncNameQueryAdminState, nil)
	require.NoError(t, err)
	assert.Equal(t, admin.addr, msg.(*ct.ReplyAdminState).Admin.AdminAddr)

	_, err = env.driver.Query(ct.FuncNameQueryPriceOracle, nil)
	assert.Equal(t, ct.ErrOracleNotInit, err)
}
