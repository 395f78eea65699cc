package db

import (
	"database/sql"

	"gorm.io/gorm"
)

type TransactionFunc = func(db *gorm.DB) error

// WithTransaction runs p inside a transaction, rolling back on error or
// panic.
func WithTransaction(db *gorm.DB, p TransactionFunc, opts ...*sql.TxOptions) error {
	tx := db.Begin(opts...)
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()
	if err := p(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}
