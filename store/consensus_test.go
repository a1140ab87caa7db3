package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stakemirror/registry-indexer/beacon"
)

func testValidator(index uint64) beacon.Validator {
	return beacon.Validator{
		Index:  index,
		Pubkey: []byte(fmt.Sprintf("validator-%d", index)),
		Status: "active_ongoing",
	}
}

func TestConsensusRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	meta, err := db.GetConsensusMeta(ctx)
	require.NoError(t, err)
	require.Nil(t, meta)

	want := beacon.Meta{Slot: 123456, BlockRoot: "0xabc"}
	require.NoError(t, db.ReplaceValidators(ctx, want, []beacon.Validator{
		testValidator(10), testValidator(11),
	}))

	meta, err = db.GetConsensusMeta(ctx)
	require.NoError(t, err)
	require.Equal(t, want, *meta)

	validators, err := db.FindAllValidators(ctx)
	require.NoError(t, err)
	require.Len(t, validators, 2)
	require.Equal(t, testValidator(10), validators[0])

	// a replace swaps the whole set
	next := beacon.Meta{Slot: 123488, BlockRoot: "0xdef"}
	require.NoError(t, db.ReplaceValidators(ctx, next, []beacon.Validator{testValidator(12)}))

	meta, err = db.GetConsensusMeta(ctx)
	require.NoError(t, err)
	require.Equal(t, next, *meta)

	validators, err = db.FindAllValidators(ctx)
	require.NoError(t, err)
	require.Len(t, validators, 1)
	require.Equal(t, testValidator(12), validators[0])
}
