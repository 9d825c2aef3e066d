package sqlite

import (
	"database/sql"
	"fmt"
)

// storeTx groups writes that must land together
type storeTx struct {
	tx    *sql.Tx
	store *Store
}

// Set replaces a value inside the transaction
func (t *storeTx) Set(key, value string) error {
	return setKV(t.tx, key, value)
}

// SetMeta replaces a metadata entry inside the transaction
func (t *storeTx) SetMeta(key, value string) error {
	return t.store.setMeta(t.tx, key, value)
}

// Update runs fn in a transaction, committing when it returns nil
func (s *Store) Update(fn func(tx *storeTx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(&storeTx{tx: tx, store: s}); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
