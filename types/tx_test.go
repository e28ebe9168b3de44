package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usdfg/challenge/common"
	"github.com/usdfg/challenge/common/crypto"
)

func TestTxSignAndVerify(t *testing.T) {
	priv, err := crypto.PrivKeyFromBytes(common.Sha256([]byte("tx test key")))
	require.NoError(t, err)

	tx := &Transaction{
		Execer:  []byte("challenge"),
		Payload: []byte("payload"),
		Fee:     Coin / 100,
		Nonce:   1,
		To:      "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt",
	}
	tx.Sign(SECP256K1, priv)
	require.NotNil(t, tx.Signature)
	assert.True(t, tx.CheckSign())
	assert.NotEmpty(t, tx.From())

	//篡改payload后签名失效
	tx.Payload = []byte("tampered")
	assert.False(t, tx.CheckSign())
}

func TestTxHashExcludesSignature(t *testing.T) {
	priv, err := crypto.PrivKeyFromBytes(common.Sha256([]byte("tx test key")))
	require.NoError(t, err)

	tx := &Transaction{Execer: []byte("challenge"), Payload: []byte("p"), Nonce: 7}
	before := tx.Hash()
	tx.Sign(SECP256K1, priv)
	assert.Equal(t, before, tx.Hash())
}

func TestCheckAmount(t *testing.T) {
	assert.True(t, CheckAmount(1))
	assert.True(t, CheckAmount(MaxCoin-1))
	assert.False(t, CheckAmount(0))
	assert.False(t, CheckAmount(-1))
	assert.False(t, CheckAmount(MaxCoin))
}

func TestEncodeDecode(t *testing.T) {
	acc := &Account{Balance: 100, Frozen: 5, Addr: "addr"}
	data := Encode(acc)
	var acc2 Account
	require.NoError(t, Decode(data, &acc2))
	assert.Equal(t, acc.Balance, acc2.Balance)
	assert.Equal(t, acc.Frozen, acc2.Frozen)
	assert.Equal(t, acc.Addr, acc2.Addr)
}
