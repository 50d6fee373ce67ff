package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/store"
)

type txStore struct {
	tx  *sql.Tx
	now func() time.Time
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // the outer DB stays open

// Ping is a no-op: the transaction already holds a live connection.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Identities() store.Identities { return &identitiesRepo{q: t.tx, now: t.now} }
func (t *txStore) Products() store.Products     { return &productsRepo{q: t.tx, now: t.now} }
func (t *txStore) Cart() store.Cart             { return &cartRepo{q: t.tx, now: t.now} }
func (t *txStore) Favorites() store.Favorites   { return &favoritesRepo{q: t.tx, now: t.now} }
func (t *txStore) Orders() store.Orders         { return &ordersRepo{q: t.tx, now: t.now} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx
