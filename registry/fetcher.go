package registry

import (
	"context"
	"fmt"
	"math/big"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/stakemirror/registry-indexer/bindings"
)

const (
	// DefaultOperatorsBatchSize bounds getNodeOperator calls per RPC batch.
	DefaultOperatorsBatchSize = 100
	// DefaultKeysBatchSize bounds getSigningKey calls per RPC batch.
	DefaultKeysBatchSize = 200

	fetchMaxRetries = 3
)

// RegistryFetcher reads the node operators registry contract. Every read is
// pinned to an explicit block hash.
type RegistryFetcher struct {
	address  common.Address
	rpc      *rpc.Client
	contract *bindings.NodeOperatorsRegistryCaller
	abi      *abi.ABI

	operatorsBatchSize int
	keysBatchSize      int
}

func NewRegistryFetcher(client *rpc.Client, address common.Address) (*RegistryFetcher, error) {
	contract, err := bindings.NewNodeOperatorsRegistryCaller(address, ethclient.NewClient(client))
	if err != nil {
		return nil, err
	}
	parsed, err := bindings.NodeOperatorsRegistryMetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	return &RegistryFetcher{
		address:            address,
		rpc:                client,
		contract:           contract,
		abi:                parsed,
		operatorsBatchSize: DefaultOperatorsBatchSize,
		keysBatchSize:      DefaultKeysBatchSize,
	}, nil
}

func (f *RegistryFetcher) FetchKeysOpIndex(ctx context.Context, blockHash common.Hash) (uint64, error) {
	index, err := f.contract.GetKeysOpIndex(&bind.CallOpts{
		Context:   ctx,
		BlockHash: blockHash,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: getKeysOpIndex: %v", ErrChainUnavailable, err)
	}
	return index.Uint64(), nil
}

func (f *RegistryFetcher) FetchOperators(ctx context.Context, blockHash common.Hash) ([]Operator, error) {
	count, err := f.contract.GetNodeOperatorsCount(&bind.CallOpts{
		Context:   ctx,
		BlockHash: blockHash,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: getNodeOperatorsCount: %v", ErrChainUnavailable, err)
	}

	total := count.Uint64()
	operators := make([]Operator, 0, total)
	for from := uint64(0); from < total; from += uint64(f.operatorsBatchSize) {
		to := from + uint64(f.operatorsBatchSize)
		if to > total {
			to = total
		}
		batch := make([]rpc.BatchElem, 0, to-from)
		for i := from; i < to; i++ {
			input, err := f.abi.Pack("getNodeOperator", new(big.Int).SetUint64(i), true)
			if err != nil {
				return nil, err
			}
			batch = append(batch, f.callElem(input, blockHash))
		}
		if err := f.batchCall(ctx, batch); err != nil {
			return nil, err
		}
		for j, elem := range batch {
			op, err := f.unpackOperator(*elem.Result.(*hexutil.Bytes))
			if err != nil {
				return nil, fmt.Errorf("unpack operator %d: %w", from+uint64(j), err)
			}
			op.Index = uint32(from + uint64(j))
			operators = append(operators, op)
		}
	}
	return operators, nil
}

func (f *RegistryFetcher) FetchKeys(ctx context.Context, operatorIndex uint32, from, to uint64, blockHash common.Hash) ([]Key, error) {
	if to <= from {
		return nil, nil
	}
	keys := make([]Key, 0, to-from)
	for start := from; start < to; start += uint64(f.keysBatchSize) {
		end := start + uint64(f.keysBatchSize)
		if end > to {
			end = to
		}
		batch := make([]rpc.BatchElem, 0, end-start)
		for i := start; i < end; i++ {
			input, err := f.abi.Pack("getSigningKey",
				new(big.Int).SetUint64(uint64(operatorIndex)), new(big.Int).SetUint64(i))
			if err != nil {
				return nil, err
			}
			batch = append(batch, f.callElem(input, blockHash))
		}
		if err := f.batchCall(ctx, batch); err != nil {
			return nil, err
		}
		for j, elem := range batch {
			key, err := f.unpackKey(*elem.Result.(*hexutil.Bytes))
			if err != nil {
				return nil, fmt.Errorf("unpack key %d of operator %d: %w", start+uint64(j), operatorIndex, err)
			}
			key.OperatorIndex = operatorIndex
			key.Index = uint32(start + uint64(j))
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (f *RegistryFetcher) callElem(input []byte, blockHash common.Hash) rpc.BatchElem {
	return rpc.BatchElem{
		Method: "eth_call",
		Args: []interface{}{
			map[string]interface{}{
				"to":   f.address,
				"data": hexutil.Bytes(input),
			},
			rpc.BlockNumberOrHashWithHash(blockHash, false),
		},
		Result: new(hexutil.Bytes),
	}
}

// batchCall submits one JSON-RPC batch, retrying transport failures with
// exponential backoff. Per-element errors are not retried: a failing eth_call
// at a pinned hash will fail the same way on the next cycle.
func (f *RegistryFetcher) batchCall(ctx context.Context, batch []rpc.BatchElem) error {
	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), fetchMaxRetries), ctx)
	err := backoff.Retry(func() error {
		return f.rpc.BatchCallContext(ctx, batch)
	}, bo)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrChainUnavailable, err)
	}
	for _, elem := range batch {
		if elem.Error != nil {
			return fmt.Errorf("%w: %v", ErrChainUnavailable, elem.Error)
		}
	}
	return nil
}

func (f *RegistryFetcher) unpackOperator(data []byte) (Operator, error) {
	out, err := f.abi.Unpack("getNodeOperator", data)
	if err != nil {
		return Operator{}, err
	}
	return Operator{
		ModuleAddress:     f.address,
		Active:            *abi.ConvertType(out[0], new(bool)).(*bool),
		Name:              *abi.ConvertType(out[1], new(string)).(*string),
		RewardAddress:     *abi.ConvertType(out[2], new(common.Address)).(*common.Address),
		StakingLimit:      *abi.ConvertType(out[3], new(uint64)).(*uint64),
		StoppedValidators: *abi.ConvertType(out[4], new(uint64)).(*uint64),
		TotalSigningKeys:  *abi.ConvertType(out[5], new(uint64)).(*uint64),
		UsedSigningKeys:   *abi.ConvertType(out[6], new(uint64)).(*uint64),
	}, nil
}

func (f *RegistryFetcher) unpackKey(data []byte) (Key, error) {
	out, err := f.abi.Unpack("getSigningKey", data)
	if err != nil {
		return Key{}, err
	}
	return Key{
		ModuleAddress:    f.address,
		Pubkey:           *abi.ConvertType(out[0], new([]byte)).(*[]byte),
		DepositSignature: *abi.ConvertType(out[1], new([]byte)).(*[]byte),
		Used:             *abi.ConvertType(out[2], new(bool)).(*bool),
	}, nil
}
