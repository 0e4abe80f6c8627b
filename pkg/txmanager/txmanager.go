// Package txmanager runs functions inside database transactions over the
// instrumented dbmetrics.DB. The transaction travels through context, so
// repositories join it via dbmetrics.GetExecutor without knowing about it.
package txmanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/salonora/booking-service/pkg/dbmetrics"
)

// TransactionManager manages transactions over an instrumented DB.
type TransactionManager struct {
	db *dbmetrics.DB
}

// NewTransactionManager creates a TransactionManager.
func NewTransactionManager(db *dbmetrics.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable runs fn inside a SERIALIZABLE transaction. Used by the
// booking-creation path so the availability check and the insert see a
// consistent snapshot of the day.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("txmanager: begin: %w", err)
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("txmanager: rollback after %v: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit: %w", err)
	}
	return nil
}
