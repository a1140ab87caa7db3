package beacon

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

type fakeHeaderClient struct {
	header         Header
	validators     []Validator
	validatorCalls int
}

func (c *fakeHeaderClient) FinalizedHeader(ctx context.Context) (Header, error) {
	return c.header, nil
}

func (c *fakeHeaderClient) Validators(ctx context.Context, stateID string, pubkeys [][]byte) ([]Validator, error) {
	c.validatorCalls++
	return c.validators, nil
}

type fakeMirrorStore struct {
	meta       *Meta
	validators []Validator
	pubkeys    [][]byte
}

func (s *fakeMirrorStore) GetConsensusMeta(ctx context.Context) (*Meta, error) {
	return s.meta, nil
}

func (s *fakeMirrorStore) ReplaceValidators(ctx context.Context, meta Meta, validators []Validator) error {
	s.meta = &meta
	s.validators = validators
	return nil
}

func (s *fakeMirrorStore) UsedKeyPubkeys(ctx context.Context, module common.Address) ([][]byte, error) {
	return s.pubkeys, nil
}

func TestMirrorBootstrap(t *testing.T) {
	client := &fakeHeaderClient{
		header:     Header{Slot: 100, Root: "0xaa"},
		validators: []Validator{{Index: 7, Pubkey: []byte("pk"), Status: "active_ongoing"}},
	}
	store := &fakeMirrorStore{pubkeys: [][]byte{[]byte("pk")}}
	mirror := NewMirror(common.HexToAddress("0x55"), client, store)

	slot, err := mirror.RunOnce(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(100), slot)
	require.Equal(t, Meta{Slot: 100, BlockRoot: "0xaa"}, *store.meta)
	require.Len(t, store.validators, 1)
}

func TestMirrorSkipsUnchangedState(t *testing.T) {
	client := &fakeHeaderClient{header: Header{Slot: 100, Root: "0xaa"}}
	store := &fakeMirrorStore{meta: &Meta{Slot: 100, BlockRoot: "0xaa"}}
	mirror := NewMirror(common.HexToAddress("0x55"), client, store)

	slot, err := mirror.RunOnce(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(100), slot)
	require.Zero(t, client.validatorCalls)
}

func TestMirrorSkipsOlderHeader(t *testing.T) {
	client := &fakeHeaderClient{header: Header{Slot: 90, Root: "0x90"}}
	store := &fakeMirrorStore{meta: &Meta{Slot: 100, BlockRoot: "0xaa"}}
	mirror := NewMirror(common.HexToAddress("0x55"), client, store)

	slot, err := mirror.RunOnce(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(100), slot)
	require.Zero(t, client.validatorCalls)
	require.Equal(t, uint64(100), store.meta.Slot)
}
