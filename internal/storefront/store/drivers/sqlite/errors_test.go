package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
	"github.com/aussiebroadwan/storefront/internal/storefront/store/drivers/sqlite"
)

func newMockStore(t *testing.T) (*sqlite.Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return sqlite.NewFromDB(db), mock
}

func TestErrorMapping(t *testing.T) {
	ctx := context.Background()

	t.Run("unique violation becomes ErrAlreadyExists", func(t *testing.T) {
		st, mock := newMockStore(t)
		mock.ExpectExec("INSERT INTO identities").
			WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: identities.email (2067)"))

		_, err := st.Identities().Create(ctx, passwordIdentity("dup@example.com"))
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("other driver errors pass through", func(t *testing.T) {
		st, mock := newMockStore(t)
		boom := errors.New("disk I/O error")
		mock.ExpectExec("INSERT INTO favorites").WillReturnError(boom)

		_, err := st.Favorites().Add(ctx, 1, 2)
		require.ErrorIs(t, err, boom)
		require.NotErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("no rows becomes ErrNotFound", func(t *testing.T) {
		st, mock := newMockStore(t)
		mock.ExpectQuery("FROM identities WHERE id").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := st.Identities().GetByID(ctx, 7)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("zero affected rows becomes ErrNotFound", func(t *testing.T) {
		st, mock := newMockStore(t)
		mock.ExpectExec("DELETE FROM products").
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.ErrorIs(t, st.Products().Delete(ctx, 3), store.ErrNotFound)
	})

	t.Run("failed transaction rolls back", func(t *testing.T) {
		st, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO orders").WillReturnError(errors.New("boom"))
		mock.ExpectRollback()

		err := st.WithTx(ctx, func(tx store.Tx) error {
			_, err := tx.Orders().Create(ctx, domain.Order{IdentityID: 1, Total: 100})
			return err
		})
		require.Error(t, err)
	})

	t.Run("ping", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectPing().WillReturnError(errors.New("gone"))
		require.Error(t, sqlite.NewFromDB(db).Ping(ctx))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
