package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/stakemirror/registry-indexer/beacon"
)

func (d *DB) GetConsensusMeta(ctx context.Context) (*beacon.Meta, error) {
	var meta beacon.Meta
	err := d.db.QueryRowContext(ctx,
		"SELECT slot, block_root FROM consensus_meta WHERE id = 0").
		Scan(&meta.Slot, &meta.BlockRoot)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve consensus meta: %w", err)
	}
	return &meta, nil
}

func (d *DB) ReplaceValidators(ctx context.Context, meta beacon.Meta, validators []beacon.Validator) error {
	return d.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM consensus_validator"); err != nil {
			return fmt.Errorf("delete validators: %w", err)
		}
		for start := 0; start < len(validators); start += insertChunkSize {
			end := start + insertChunkSize
			if end > len(validators) {
				end = len(validators)
			}
			chunk := validators[start:end]
			placeholders := make([]string, 0, len(chunk))
			args := make([]interface{}, 0, len(chunk)*3)
			for _, v := range chunk {
				placeholders = append(placeholders, "(?, ?, ?)")
				args = append(args, v.Pubkey, v.Index, v.Status)
			}
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO consensus_validator (pubkey, validator_index, status) VALUES "+
					strings.Join(placeholders, ", "), args...); err != nil {
				return fmt.Errorf("insert validators: %w", err)
			}
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM consensus_meta"); err != nil {
			return fmt.Errorf("delete consensus meta: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO consensus_meta (id, slot, block_root) VALUES (0, ?, ?)",
			meta.Slot, meta.BlockRoot); err != nil {
			return fmt.Errorf("insert consensus meta: %w", err)
		}
		return nil
	})
}

func (d *DB) FindAllValidators(ctx context.Context) ([]beacon.Validator, error) {
	rows, err := d.db.QueryContext(ctx,
		"SELECT pubkey, validator_index, status FROM consensus_validator ORDER BY validator_index")
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve validators: %w", err)
	}
	defer rows.Close()

	var validators []beacon.Validator
	for rows.Next() {
		var v beacon.Validator
		if err := rows.Scan(&v.Pubkey, &v.Index, &v.Status); err != nil {
			return nil, err
		}
		validators = append(validators, v)
	}
	return validators, rows.Err()
}
