// Package store wires the per-entity Postgres and in-memory stores behind
// the ports interfaces. Each entity store lives in its own subpackage; this
// package holds the shared database handle abstraction and the bundles used
// by the transactional runner.
package store

import (
	"context"
	"database/sql"

	"touchline/internal/admission/ports"
	"touchline/internal/admission/store/accountlink"
	"touchline/internal/admission/store/agegroup"
	"touchline/internal/admission/store/applicant"
	"touchline/internal/admission/store/guardian"
	"touchline/internal/admission/store/member"
)

// NewPostgresTxStores builds the transaction-scoped store bundle over a
// transactional handle. The same constructors work over *sql.DB for the
// non-transactional paths.
func NewPostgresTxStores(tx *sql.Tx) ports.TxStores {
	return ports.TxStores{
		Applicants:   applicant.NewPostgres(tx),
		Guardians:    guardian.NewPostgres(tx),
		Members:      member.NewPostgres(tx),
		AccountLinks: accountlink.NewPostgres(tx),
	}
}

// NewMemoryStores builds the in-memory store set plus a pass-through tx
// runner, for development mode and handler tests. Concrete types are
// returned so tests can reach store-specific helpers such as Put.
func NewMemoryStores() (*applicant.MemoryStore, *guardian.MemoryStore, *member.MemoryStore, *agegroup.MemoryStore, *accountlink.MemoryStore, ports.StoreTx) {
	applicants := applicant.NewMemory()
	guardians := guardian.NewMemory()
	members := member.NewMemory()
	ageGroups := agegroup.NewMemory()
	links := accountlink.NewMemory()
	tx := &memoryTx{stores: ports.TxStores{
		Applicants:   applicants,
		Guardians:    guardians,
		Members:      members,
		AccountLinks: links,
	}}
	return applicants, guardians, members, ageGroups, links, tx
}

// memoryTx satisfies ports.StoreTx by running fn directly against the
// shared stores. It cannot roll partial writes back; unit tests that
// exercise rollback behavior use mocks, and production uses the Postgres
// runner.
type memoryTx struct {
	stores ports.TxStores
}

func (t *memoryTx) RunInTx(ctx context.Context, fn func(txCtx context.Context, stores ports.TxStores) error) error {
	return fn(ctx, t.stores)
}
