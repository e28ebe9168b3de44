package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usdfg/challenge/common"
)

func TestExecAddressDeterministic(t *testing.T) {
	addr1 := ExecAddress("challenge")
	addr2 := ExecAddress("challenge")
	assert.Equal(t, addr1, addr2)
	assert.NotEqual(t, addr1, ExecAddress("escrow_wallet"))
	assert.NoError(t, CheckAddress(addr1))
}

func TestPubKeyToAddress(t *testing.T) {
	pub := common.Sha2Sum([]byte("test pubkey"))
	addr := PubKeyToAddress(pub)
	require.NotNil(t, addr)
	str := addr.String()
	assert.NoError(t, CheckAddress(str))

	//base58编码可以无损还原
	decoded, err := FromString(str)
	require.NoError(t, err)
	assert.Equal(t, addr.Hash160, decoded.Hash160)
	assert.Equal(t, str, decoded.String())
}

func TestCheckAddress(t *testing.T) {
	assert.Error(t, CheckAddress("notanaddress"))
	assert.Error(t, CheckAddress(""))
	//篡改一个字符导致校验和不匹配
	addr := ExecAddress("challenge")
	flip := "x"
	if addr[len(addr)-1] == 'x' {
		flip = "y"
	}
	assert.Error(t, CheckAddress(addr[:len(addr)-1]+flip))
}
