package db

import (
	"context"
	"database/sql"

	"github.com/fr0stylo/pfsync/internal/db/queries"
)

// ListRecordFields returns the mapped field values of one record keyed by name.
func (c *Database) ListRecordFields(ctx context.Context, recordID int64) (map[string]string, error) {
	rows, err := c.Queries.ListRecordFields(ctx, recordID)
	if err != nil {
		return nil, err
	}
	fields := make(map[string]string, len(rows))
	for _, row := range rows {
		fields[row.Name] = row.Value
	}
	return fields, nil
}

// HasRecordImage reports whether an image blob is attached to the record.
func (c *Database) HasRecordImage(ctx context.Context, recordID int64) (bool, error) {
	count, err := c.Queries.CountRecordImages(ctx, recordID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// WithTx runs a function within a transaction.
func (c *Database) WithTx(ctx context.Context, fn func(*queries.Queries) error) error {
	tx, err := c.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	if err := fn(c.Queries.WithTx(tx)); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}
	return tx.Commit()
}
