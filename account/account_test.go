package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "github.com/usdfg/challenge/common/db"
	"github.com/usdfg/challenge/types"
)

var (
	addr1 = "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"
	addr2 = "1MCftFynyvG2F4ED5mdHYgziDxx6vDrScs"
	addr3 = "1PUiGcbsccfxW3zuvHXZBJfznziph5miAo"
)

func newTestCoins(t *testing.T) *DB {
	memDB, err := dbm.NewGoMemDB("gomemdb", "", 128)
	require.NoError(t, err)
	acc := NewCoinsAccount()
	acc.SetDB(memDB)
	return acc
}

func saveAccount(acc *DB, addr string, balance, frozen int64) {
	acc.SaveAccount(&types.Account{
		Balance: balance,
		Frozen:  frozen,
		Addr:    addr,
	})
}

func TestLoadAccountEmpty(t *testing.T) {
	acc := newTestCoins(t)
	account := acc.LoadAccount(addr1)
	assert.Equal(t, addr1, account.Addr)
	assert.Equal(t, int64(0), account.Balance)
}

func TestTransfer(t *testing.T) {
	acc := newTestCoins(t)
	saveAccount(acc, addr1, 1000*types.Coin, 0)

	_, err := acc.Transfer(addr1, addr2, 200*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, int64(800*types.Coin), acc.LoadAccount(addr1).Balance)
	assert.Equal(t, int64(200*types.Coin), acc.LoadAccount(addr2).Balance)

	//余额不足
	_, err = acc.Transfer(addr2, addr1, 500*types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)

	//自己转给自己
	_, err = acc.Transfer(addr1, addr1, 1*types.Coin)
	assert.Equal(t, types.ErrSendSameToRecv, err)

	//非法金额
	_, err = acc.Transfer(addr1, addr2, -1)
	assert.Equal(t, types.ErrAmount, err)
}

func TestTransferReceipt(t *testing.T) {
	acc := newTestCoins(t)
	saveAccount(acc, addr1, 100*types.Coin, 0)
	receipt, err := acc.Transfer(addr1, addr2, 10*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	require.Len(t, receipt.Logs, 2)
	assert.Equal(t, int32(types.TyLogTransfer), receipt.Logs[0].Ty)

	var l types.ReceiptAccountTransfer
	err = types.Decode(receipt.Logs[0].Log, &l)
	require.NoError(t, err)
	assert.Equal(t, int64(100*types.Coin), l.Prev.Balance)
	assert.Equal(t, int64(90*types.Coin), l.Current.Balance)
}

func TestExecFrozenActive(t *testing.T) {
	acc := newTestCoins(t)
	execaddr := addr3
	acc.SaveExecAccount(execaddr, &types.Account{Balance: 100 * types.Coin, Addr: addr1})

	_, err := acc.ExecFrozen(addr1, execaddr, 40*types.Coin)
	require.NoError(t, err)
	a := acc.LoadExecAccount(addr1, execaddr)
	assert.Equal(t, int64(60*types.Coin), a.Balance)
	assert.Equal(t, int64(40*types.Coin), a.Frozen)

	//冻结超过余额
	_, err = acc.ExecFrozen(addr1, execaddr, 100*types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)

	_, err = acc.ExecActive(addr1, execaddr, 40*types.Coin)
	require.NoError(t, err)
	a = acc.LoadExecAccount(addr1, execaddr)
	assert.Equal(t, int64(100*types.Coin), a.Balance)
	assert.Equal(t, int64(0), a.Frozen)
}

func TestExecTransfer(t *testing.T) {
	acc := newTestCoins(t)
	execaddr := addr3
	acc.SaveExecAccount(execaddr, &types.Account{Balance: 100 * types.Coin, Addr: addr1})

	receipt, err := acc.ExecTransfer(addr1, addr2, execaddr, 30*types.Coin)
	require.NoError(t, err)
	assert.Len(t, receipt.Logs, 2)
	assert.Equal(t, int64(70*types.Coin), acc.LoadExecAccount(addr1, execaddr).Balance)
	assert.Equal(t, int64(30*types.Coin), acc.LoadExecAccount(addr2, execaddr).Balance)

	_, err = acc.ExecTransfer(addr1, addr2, execaddr, 1000*types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)
}

func TestExecTransferFrozen(t *testing.T) {
	acc := newTestCoins(t)
	execaddr := addr3
	acc.SaveExecAccount(execaddr, &types.Account{Balance: 0, Frozen: 50 * types.Coin, Addr: addr1})

	_, err := acc.ExecTransferFrozen(addr1, addr2, execaddr, 50*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, int64(0), acc.LoadExecAccount(addr1, execaddr).Frozen)
	assert.Equal(t, int64(50*types.Coin), acc.LoadExecAccount(addr2, execaddr).Balance)

	_, err = acc.ExecTransferFrozen(addr1, addr2, execaddr, 1)
	assert.Equal(t, types.ErrNoBalance, err)
}

func TestExecDepositWithdraw(t *testing.T) {
	acc := newTestCoins(t)
	execaddr := addr3
	_, err := acc.ExecDeposit(addr1, execaddr, 25*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, int64(25*types.Coin), acc.LoadExecAccount(addr1, execaddr).Balance)

	_, err = acc.ExecWithdraw(addr1, execaddr, 10*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, int64(15*types.Coin), acc.LoadExecAccount(addr1, execaddr).Balance)

	_, err = acc.ExecWithdraw(addr1, execaddr, 100*types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)
}

func TestTransferToExec(t *testing.T) {
	acc := newTestCoins(t)
	saveAccount(acc, addr1, 100*types.Coin, 0)

	_, err := acc.TransferToExec(addr1, addr3, 60*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, int64(40*types.Coin), acc.LoadAccount(addr1).Balance)
	assert.Equal(t, int64(60*types.Coin), acc.LoadAccount(addr3).Balance)
	assert.Equal(t, int64(60*types.Coin), acc.LoadExecAccount(addr1, addr3).Balance)

	_, err = acc.TransferWithdraw(addr3, addr1, 20*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, int64(60*types.Coin), acc.LoadAccount(addr1).Balance)
	assert.Equal(t, int64(40*types.Coin), acc.LoadExecAccount(addr1, addr3).Balance)
}

func TestNewAccountDB(t *testing.T) {
	db, err := dbm.NewGoMemDB("gomemdb", "", 128)
	require.NoError(t, err)
	_, err = NewAccountDB("token-x", "TEST", db)
	assert.Equal(t, types.ErrExecNameNotAllow, err)
	_, err = NewAccountDB("token", "TE-ST", db)
	assert.Equal(t, types.ErrSymbolNameNotAllow, err)
	acc, err := NewAccountDB("token", "TEST", db)
	require.NoError(t, err)
	assert.Equal(t, "TEST", acc.GetSymbol())
}
