package registry

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestCompareMeta(t *testing.T) {
	base := Meta{
		ModuleAddress: common.HexToAddress("0x01"),
		BlockNumber:   100,
		BlockHash:     common.HexToHash("0xaa"),
		Timestamp:     1700,
		KeysOpIndex:   7,
	}

	tests := []struct {
		name   string
		prev   *Meta
		curr   Meta
		expect bool
	}{
		{name: "nil prev", prev: nil, curr: base, expect: false},
		{name: "identical", prev: &base, curr: base, expect: true},
		{name: "fresher block same counter and hash", prev: &base,
			curr: Meta{BlockNumber: 101, BlockHash: common.HexToHash("0xaa"), KeysOpIndex: 7}, expect: true},
		{name: "counter advanced", prev: &base,
			curr: Meta{BlockNumber: 101, BlockHash: common.HexToHash("0xaa"), KeysOpIndex: 8}, expect: false},
		{name: "reorg at same counter", prev: &base,
			curr: Meta{BlockNumber: 100, BlockHash: common.HexToHash("0xbb"), KeysOpIndex: 7}, expect: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, compareMeta(tc.prev, tc.curr))
		})
	}
}

func TestCompareOperator(t *testing.T) {
	base := Operator{
		Index:            0,
		Active:           true,
		Name:             "operator",
		RewardAddress:    common.HexToAddress("0x02"),
		StakingLimit:     10,
		TotalSigningKeys: 3,
		UsedSigningKeys:  1,
	}

	require.False(t, compareOperator(nil, base))
	require.True(t, compareOperator(&base, base))

	changed := base
	changed.TotalSigningKeys = 4
	require.False(t, compareOperator(&base, changed))

	changed = base
	changed.UsedSigningKeys = 2
	require.False(t, compareOperator(&base, changed))

	changed = base
	changed.Name = "renamed"
	require.False(t, compareOperator(&base, changed))
}

func TestGetToIndex(t *testing.T) {
	op := Operator{TotalSigningKeys: 5, UsedSigningKeys: 2}
	require.Equal(t, uint64(5), getToIndex(KeyMirror, op))
	require.Equal(t, uint64(2), getToIndex(ValidatorMirror, op))
}

func TestGetFromIndex(t *testing.T) {
	base := Operator{Index: 0, Active: true, TotalSigningKeys: 4, UsedSigningKeys: 2}

	// new operator starts from scratch
	require.Equal(t, uint64(0), getFromIndex(nil, base, 4))

	// unchanged operator skips the immutable prefix
	require.Equal(t, uint64(2), getFromIndex(&base, base, 4))

	// any operator change falls back to a full refetch
	changed := base
	changed.TotalSigningKeys = 5
	require.Equal(t, uint64(0), getFromIndex(&base, changed, 5))

	// a deleted used-key prefix would invert the range; clamp to zero
	require.Equal(t, uint64(0), getFromIndex(&base, base, 1))
}
