package registry

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/require"
)

func TestTagToNumber(t *testing.T) {
	number, err := tagToNumber("finalized")
	require.NoError(t, err)
	require.Equal(t, rpc.FinalizedBlockNumber.Int64(), number.Int64())

	number, err = tagToNumber("latest")
	require.NoError(t, err)
	require.Equal(t, rpc.LatestBlockNumber.Int64(), number.Int64())

	number, err = tagToNumber("")
	require.NoError(t, err)
	require.Equal(t, rpc.LatestBlockNumber.Int64(), number.Int64())

	_, err = tagToNumber("pending")
	require.Error(t, err)
}

func TestBlockRefString(t *testing.T) {
	require.Equal(t, "finalized", FinalizedBlock().String())
	require.Equal(t, "latest", LatestBlock().String())
	require.Equal(t, "100", BlockByNumber(100).String())

	hash := common.HexToHash("0xaa")
	require.Equal(t, hash.Hex(), BlockByHash(hash).String())
}
