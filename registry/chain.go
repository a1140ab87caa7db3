package registry

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

// ChainClient resolves block references through an execution layer client.
type ChainClient struct {
	client *ethclient.Client
}

func NewChainClient(client *ethclient.Client) *ChainClient {
	return &ChainClient{client: client}
}

func (c *ChainClient) ResolveBlock(ctx context.Context, ref BlockRef) (BlockSnapshot, error) {
	var header *types.Header
	var err error
	switch {
	case ref.Hash != nil:
		header, err = c.client.HeaderByHash(ctx, *ref.Hash)
	case ref.Number != nil:
		header, err = c.client.HeaderByNumber(ctx, ref.Number)
	default:
		number, tagErr := tagToNumber(ref.Tag)
		if tagErr != nil {
			return BlockSnapshot{}, tagErr
		}
		header, err = c.client.HeaderByNumber(ctx, number)
	}
	if errors.Is(err, ethereum.NotFound) {
		return BlockSnapshot{}, fmt.Errorf("%w: %v", ErrUnknownBlock, ref)
	}
	if err != nil {
		return BlockSnapshot{}, fmt.Errorf("%w: %v", ErrChainUnavailable, err)
	}
	if header == nil {
		return BlockSnapshot{}, fmt.Errorf("%w: %v", ErrUnknownBlock, ref)
	}
	return BlockSnapshot{
		Number:    header.Number.Uint64(),
		Hash:      header.Hash(),
		Timestamp: header.Time,
	}, nil
}

func tagToNumber(tag string) (*big.Int, error) {
	switch tag {
	case "finalized":
		return big.NewInt(rpc.FinalizedBlockNumber.Int64()), nil
	case "latest", "":
		return big.NewInt(rpc.LatestBlockNumber.Int64()), nil
	default:
		return nil, fmt.Errorf("unsupported block tag %q", tag)
	}
}
