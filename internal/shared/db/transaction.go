// Package db carries a transaction through context so that repository calls
// made inside TransactionManager.RunInTransaction join the same database
// transaction. The account linker relies on this: the profile upsert and the
// token consumption must commit together or not at all.
package db

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction runs fn inside one transaction. fn receives a context
// holding the transaction handle; any repository call that goes through
// GetTxFromContext with that context participates in it. A non-nil error
// from fn rolls everything back.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}

// GetTxFromContext returns the in-flight transaction when ctx carries one,
// otherwise defaultDB. Repositories call this on every query so they work
// identically inside and outside a transaction.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
