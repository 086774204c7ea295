package types_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/softmax-labs/softswap/x/lmsr/types"
)

func TestStoreKeys(t *testing.T) {
	require.Equal(t, byte(0x01), types.GetPoolKey(7)[0])
	require.Len(t, types.GetPoolKey(7), 9)

	// Pool keys are big-endian so iteration order matches id order.
	require.True(t, bytes.Compare(types.GetPoolKey(1), types.GetPoolKey(2)) < 0)
	require.True(t, bytes.Compare(types.GetPoolKey(255), types.GetPoolKey(256)) < 0)

	shares := types.GetSharesKey(7, addr)
	require.True(t, bytes.HasPrefix(shares, types.GetPoolSharesPrefix(7)))
	require.Equal(t, addr, string(shares[len(types.GetPoolSharesPrefix(7)):]))

	fees := types.GetProtocolFeesKey("uatom")
	require.Equal(t, byte(0x05), fees[0])
	require.Equal(t, "uatom", string(fees[1:]))
}
