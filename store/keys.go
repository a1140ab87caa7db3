package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/stakemirror/registry-indexer/registry"
)

const selectKeyColumns = "op_index, key_index, pubkey, deposit_signature, used"

// KeyIterator walks a key result set without buffering it. Close must be
// called when done.
type KeyIterator struct {
	module common.Address
	rows   *sql.Rows
	key    registry.Key
	err    error
}

func (it *KeyIterator) Next() bool {
	if !it.rows.Next() {
		return false
	}
	it.key = registry.Key{ModuleAddress: it.module}
	it.err = it.rows.Scan(&it.key.OperatorIndex, &it.key.Index,
		&it.key.Pubkey, &it.key.DepositSignature, &it.key.Used)
	return it.err == nil
}

func (it *KeyIterator) Key() registry.Key { return it.key }

func (it *KeyIterator) Err() error {
	if it.err != nil {
		return it.err
	}
	return it.rows.Err()
}

func (it *KeyIterator) Close() error { return it.rows.Close() }

// StreamKeys returns a lazy cursor over the module's keys, ordered by
// (op_index, key_index). A non-nil used filters on the used flag.
func (d *DB) StreamKeys(ctx context.Context, module common.Address, used *bool) (*KeyIterator, error) {
	query := "SELECT " + selectKeyColumns + " FROM registry_key WHERE module_address = ?"
	args := []interface{}{addressKey(module)}
	if used != nil {
		query += " AND used = ?"
		args = append(args, *used)
	}
	query += " ORDER BY op_index, key_index"
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve keys: %w", err)
	}
	return &KeyIterator{module: module, rows: rows}, nil
}

func (d *DB) FindKeysByOperator(ctx context.Context, module common.Address, operatorIndex uint32) ([]registry.Key, error) {
	rows, err := d.db.QueryContext(ctx,
		"SELECT "+selectKeyColumns+" FROM registry_key WHERE module_address = ? AND op_index = ? ORDER BY key_index",
		addressKey(module), operatorIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve operator keys: %w", err)
	}
	return collectKeys(module, rows)
}

func (d *DB) FindKeysByPubkeys(ctx context.Context, module common.Address, pubkeys [][]byte) ([]registry.Key, error) {
	var keys []registry.Key
	// IN lists are chunked for the same parameter limit as bulk inserts.
	for start := 0; start < len(pubkeys); start += insertChunkSize {
		end := start + insertChunkSize
		if end > len(pubkeys) {
			end = len(pubkeys)
		}
		chunk := pubkeys[start:end]
		args := make([]interface{}, 0, len(chunk)+1)
		args = append(args, addressKey(module))
		for _, pk := range chunk {
			args = append(args, pk)
		}
		query := "SELECT " + selectKeyColumns + " FROM registry_key WHERE module_address = ? AND pubkey IN (?" +
			strings.Repeat(", ?", len(chunk)-1) + ") ORDER BY op_index, key_index"
		rows, err := d.db.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve keys by pubkey: %w", err)
		}
		found, err := collectKeys(module, rows)
		if err != nil {
			return nil, err
		}
		keys = append(keys, found...)
	}
	return keys, nil
}

// UsedKeyPubkeys lists the pubkeys of every used key of the module.
func (d *DB) UsedKeyPubkeys(ctx context.Context, module common.Address) ([][]byte, error) {
	rows, err := d.db.QueryContext(ctx,
		"SELECT pubkey FROM registry_key WHERE module_address = ? AND used = 1 ORDER BY op_index, key_index",
		addressKey(module))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve used pubkeys: %w", err)
	}
	defer rows.Close()

	var pubkeys [][]byte
	for rows.Next() {
		var pk []byte
		if err := rows.Scan(&pk); err != nil {
			return nil, err
		}
		pubkeys = append(pubkeys, pk)
	}
	return pubkeys, rows.Err()
}

func collectKeys(module common.Address, rows *sql.Rows) ([]registry.Key, error) {
	defer rows.Close()
	var keys []registry.Key
	for rows.Next() {
		key := registry.Key{ModuleAddress: module}
		if err := rows.Scan(&key.OperatorIndex, &key.Index,
			&key.Pubkey, &key.DepositSignature, &key.Used); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
