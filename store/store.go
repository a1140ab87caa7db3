package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	_ "github.com/mattn/go-sqlite3"

	"github.com/stakemirror/registry-indexer/registry"
)

// insertChunkSize bounds multi-row statements so they stay under the
// backend's bound-parameter limit.
const insertChunkSize = 499

const schema = `
CREATE TABLE IF NOT EXISTS registry_meta (
	module_address TEXT NOT NULL PRIMARY KEY,
	block_number INTEGER NOT NULL,
	block_hash TEXT NOT NULL,
	timestamp INTEGER NOT NULL,
	keys_op_index INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS registry_operator (
	module_address TEXT NOT NULL,
	op_index INTEGER NOT NULL,
	active INTEGER NOT NULL,
	name TEXT NOT NULL,
	reward_address TEXT NOT NULL,
	staking_limit INTEGER NOT NULL,
	stopped_validators INTEGER NOT NULL,
	total_signing_keys INTEGER NOT NULL,
	used_signing_keys INTEGER NOT NULL,
	PRIMARY KEY (module_address, op_index)
);
CREATE TABLE IF NOT EXISTS registry_key (
	module_address TEXT NOT NULL,
	op_index INTEGER NOT NULL,
	key_index INTEGER NOT NULL,
	pubkey BLOB NOT NULL,
	deposit_signature BLOB NOT NULL,
	used INTEGER NOT NULL,
	PRIMARY KEY (module_address, op_index, key_index)
);
CREATE INDEX IF NOT EXISTS registry_key_pubkey ON registry_key (pubkey);
CREATE TABLE IF NOT EXISTS consensus_meta (
	id INTEGER NOT NULL PRIMARY KEY CHECK (id = 0),
	slot INTEGER NOT NULL,
	block_root TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS consensus_validator (
	pubkey BLOB NOT NULL PRIMARY KEY,
	validator_index INTEGER NOT NULL,
	status TEXT NOT NULL
);
`

// DB is the sqlite-backed persistence layer. Writers go through
// transactions; readers observe committed state only.
type DB struct {
	db *sql.DB
}

// Open opens (and if needed creates) the database at path.
func Open(path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) GetMeta(ctx context.Context, module common.Address) (*registry.Meta, error) {
	var meta registry.Meta
	var blockHash string
	err := d.db.QueryRowContext(ctx,
		"SELECT block_number, block_hash, timestamp, keys_op_index FROM registry_meta WHERE module_address = ?",
		addressKey(module)).
		Scan(&meta.BlockNumber, &blockHash, &meta.Timestamp, &meta.KeysOpIndex)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve meta: %w", err)
	}
	meta.ModuleAddress = module
	meta.BlockHash = common.HexToHash(blockHash)
	return &meta, nil
}

func (d *DB) FindAllOperators(ctx context.Context, module common.Address) ([]registry.Operator, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT op_index, active, name, reward_address, staking_limit, stopped_validators,
			total_signing_keys, used_signing_keys
		FROM registry_operator WHERE module_address = ? ORDER BY op_index`,
		addressKey(module))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve operators: %w", err)
	}
	defer rows.Close()

	var operators []registry.Operator
	for rows.Next() {
		var op registry.Operator
		var rewardAddress string
		if err := rows.Scan(&op.Index, &op.Active, &op.Name, &rewardAddress,
			&op.StakingLimit, &op.StoppedValidators, &op.TotalSigningKeys, &op.UsedSigningKeys); err != nil {
			return nil, err
		}
		op.ModuleAddress = module
		op.RewardAddress = common.HexToAddress(rewardAddress)
		operators = append(operators, op)
	}
	return operators, rows.Err()
}

func (d *DB) ReplaceMeta(ctx context.Context, meta registry.Meta) error {
	return d.inTx(ctx, func(tx *sql.Tx) error {
		return replaceMeta(ctx, tx, meta)
	})
}

func (d *DB) ApplyOperators(ctx context.Context, meta registry.Meta, operators []registry.Operator) error {
	return d.inTx(ctx, func(tx *sql.Tx) error {
		// Tail deletes first: a shrunken total invalidates trailing keys.
		// Used-key indices are always below total_signing_keys, so the
		// immutable prefix is never touched.
		for _, op := range operators {
			if _, err := tx.ExecContext(ctx,
				"DELETE FROM registry_key WHERE module_address = ? AND op_index = ? AND key_index >= ?",
				addressKey(op.ModuleAddress), op.Index, op.TotalSigningKeys); err != nil {
				return fmt.Errorf("delete key tail of operator %d: %w", op.Index, err)
			}
		}
		if err := upsertOperators(ctx, tx, operators); err != nil {
			return err
		}
		return replaceMeta(ctx, tx, meta)
	})
}

func (d *DB) ApplyKeys(ctx context.Context, keys []registry.Key) error {
	return d.inTx(ctx, func(tx *sql.Tx) error {
		return upsertKeys(ctx, tx, keys)
	})
}

func (d *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func replaceMeta(ctx context.Context, tx *sql.Tx, meta registry.Meta) error {
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM registry_meta WHERE module_address = ?", addressKey(meta.ModuleAddress)); err != nil {
		return fmt.Errorf("delete meta: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO registry_meta (module_address, block_number, block_hash, timestamp, keys_op_index) VALUES (?, ?, ?, ?, ?)",
		addressKey(meta.ModuleAddress), meta.BlockNumber, meta.BlockHash.Hex(), meta.Timestamp, meta.KeysOpIndex); err != nil {
		return fmt.Errorf("insert meta: %w", err)
	}
	return nil
}

func upsertOperators(ctx context.Context, tx *sql.Tx, operators []registry.Operator) error {
	for start := 0; start < len(operators); start += insertChunkSize {
		end := start + insertChunkSize
		if end > len(operators) {
			end = len(operators)
		}
		chunk := operators[start:end]
		placeholders := make([]string, 0, len(chunk))
		args := make([]interface{}, 0, len(chunk)*9)
		for _, op := range chunk {
			placeholders = append(placeholders, "(?, ?, ?, ?, ?, ?, ?, ?, ?)")
			args = append(args, addressKey(op.ModuleAddress), op.Index, op.Active, op.Name,
				addressKey(op.RewardAddress), op.StakingLimit, op.StoppedValidators,
				op.TotalSigningKeys, op.UsedSigningKeys)
		}
		query := `INSERT INTO registry_operator
			(module_address, op_index, active, name, reward_address, staking_limit,
			stopped_validators, total_signing_keys, used_signing_keys)
			VALUES ` + strings.Join(placeholders, ", ") + `
			ON CONFLICT (module_address, op_index) DO UPDATE SET
			active = excluded.active, name = excluded.name,
			reward_address = excluded.reward_address, staking_limit = excluded.staking_limit,
			stopped_validators = excluded.stopped_validators,
			total_signing_keys = excluded.total_signing_keys,
			used_signing_keys = excluded.used_signing_keys`
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert operators: %w", err)
		}
	}
	return nil
}

func upsertKeys(ctx context.Context, tx *sql.Tx, keys []registry.Key) error {
	for start := 0; start < len(keys); start += insertChunkSize {
		end := start + insertChunkSize
		if end > len(keys) {
			end = len(keys)
		}
		chunk := keys[start:end]
		placeholders := make([]string, 0, len(chunk))
		args := make([]interface{}, 0, len(chunk)*6)
		for _, key := range chunk {
			placeholders = append(placeholders, "(?, ?, ?, ?, ?, ?)")
			args = append(args, addressKey(key.ModuleAddress), key.OperatorIndex, key.Index,
				key.Pubkey, key.DepositSignature, key.Used)
		}
		query := `INSERT INTO registry_key
			(module_address, op_index, key_index, pubkey, deposit_signature, used)
			VALUES ` + strings.Join(placeholders, ", ") + `
			ON CONFLICT (module_address, op_index, key_index) DO UPDATE SET
			pubkey = excluded.pubkey, deposit_signature = excluded.deposit_signature,
			used = excluded.used`
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert keys: %w", err)
		}
	}
	return nil
}

// addressKey is the canonical storage form of an address.
func addressKey(addr common.Address) string {
	return strings.ToLower(addr.Hex())
}
