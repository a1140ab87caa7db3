package registry

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Meta pins the mirrored state of one module to a chain state. There is at
// most one row per module address.
type Meta struct {
	ModuleAddress common.Address
	BlockNumber   uint64
	BlockHash     common.Hash
	Timestamp     uint64
	KeysOpIndex   uint64
}

// Operator is a node operator registered in the on-chain registry.
type Operator struct {
	ModuleAddress     common.Address
	Index             uint32
	Active            bool
	Name              string
	RewardAddress     common.Address
	StakingLimit      uint64
	StoppedValidators uint64
	TotalSigningKeys  uint64
	UsedSigningKeys   uint64
}

// Key is a signing key owned by an operator. Once the contract marks a key
// used it never mutates it again, so rows below UsedSigningKeys are immutable.
type Key struct {
	ModuleAddress    common.Address
	OperatorIndex    uint32
	Index            uint32
	Pubkey           []byte
	DepositSignature []byte
	Used             bool
}

// BlockRef names a block by number, by hash, or by a symbolic tag.
type BlockRef struct {
	Number *big.Int
	Hash   *common.Hash
	Tag    string
}

func FinalizedBlock() BlockRef { return BlockRef{Tag: "finalized"} }

func LatestBlock() BlockRef { return BlockRef{Tag: "latest"} }

func BlockByNumber(number uint64) BlockRef {
	return BlockRef{Number: new(big.Int).SetUint64(number)}
}

func BlockByHash(hash common.Hash) BlockRef { return BlockRef{Hash: &hash} }

func (r BlockRef) String() string {
	switch {
	case r.Hash != nil:
		return r.Hash.Hex()
	case r.Number != nil:
		return r.Number.String()
	default:
		return r.Tag
	}
}

// BlockSnapshot is a resolved block reference. All contract reads of one
// update cycle pin on Hash so a reorg mid-cycle cannot splice in an
// inconsistent view.
type BlockSnapshot struct {
	Number    uint64
	Hash      common.Hash
	Timestamp uint64
}

// ChainReader resolves block references against the execution layer.
type ChainReader interface {
	ResolveBlock(ctx context.Context, ref BlockRef) (BlockSnapshot, error)
}

// Fetcher reads registry state from the contract at a pinned block hash.
type Fetcher interface {
	FetchKeysOpIndex(ctx context.Context, blockHash common.Hash) (uint64, error)
	FetchOperators(ctx context.Context, blockHash common.Hash) ([]Operator, error)
	// FetchKeys reads the half-open signing key range [from, to) of one
	// operator. An empty range returns no keys and performs no calls.
	FetchKeys(ctx context.Context, operatorIndex uint32, from, to uint64, blockHash common.Hash) ([]Key, error)
}

// Store is the transactional persistence the reconciler writes through.
// Every method either commits all of its writes or none of them.
type Store interface {
	GetMeta(ctx context.Context, module common.Address) (*Meta, error)
	FindAllOperators(ctx context.Context, module common.Address) ([]Operator, error)
	// ReplaceMeta swaps the module's meta row for the given one.
	ReplaceMeta(ctx context.Context, meta Meta) error
	// ApplyOperators deletes each operator's keys at indices beyond its new
	// TotalSigningKeys, upserts the operator rows and replaces the meta row,
	// all in one transaction.
	ApplyOperators(ctx context.Context, meta Meta, operators []Operator) error
	// ApplyKeys upserts key rows, conflict-merging on the composite key.
	ApplyKeys(ctx context.Context, keys []Key) error
}
