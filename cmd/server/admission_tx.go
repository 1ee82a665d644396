package main

import (
	"context"
	"database/sql"
	"time"

	"touchline/internal/admission/ports"
	"touchline/internal/admission/store"
	dErrors "touchline/pkg/domain-errors"
)

const defaultAdmissionTxTimeout = 5 * time.Second

// admissionPostgresTx runs a function against transaction-scoped stores.
// The saga's final commit step and the guardian persist step both go
// through here.
type admissionPostgresTx struct {
	db      *sql.DB
	timeout time.Duration
}

func newAdmissionPostgresTx(db *sql.DB) *admissionPostgresTx {
	return &admissionPostgresTx{db: db}
}

func (t *admissionPostgresTx) RunInTx(ctx context.Context, fn func(txCtx context.Context, stores ports.TxStores) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	timeout := t.timeout
	if timeout == 0 {
		timeout = defaultAdmissionTxTimeout
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(ctx, store.NewPostgresTxStores(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	return nil
}
