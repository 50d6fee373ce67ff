package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it and
// expose sub-repositories; a Tx hands out the same repositories bound to one
// transaction, which keeps transactions from nesting.
type Store interface {
	Identities() Identities
	Products() Products
	Cart() Cart
	Favorites() Favorites
	Orders() Orders

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Identities interface {
	GetByID(ctx context.Context, id int64) (domain.Identity, error)

	// GetPasswordIdentityByID only matches non-federated identities.
	GetPasswordIdentityByID(ctx context.Context, id int64) (domain.Identity, error)

	// GetPasswordIdentityByEmail only matches non-federated identities.
	GetPasswordIdentityByEmail(ctx context.Context, email string) (domain.Identity, error)

	GetByEmail(ctx context.Context, email string) (domain.Identity, error)
	GetByExternalID(ctx context.Context, externalID string) (domain.Identity, error)

	// Create inserts i and returns it with ID and timestamps set. A duplicate
	// email or external id yields ErrAlreadyExists.
	Create(ctx context.Context, i domain.Identity) (domain.Identity, error)

	// UpdateProfile sets first/last name and avatar.
	UpdateProfile(ctx context.Context, id int64, firstName, lastName, avatar string) error

	// UpdateSecretHash replaces the bcrypt hash of a password identity.
	UpdateSecretHash(ctx context.Context, id int64, hash string) error

	IsEmpty(ctx context.Context) (bool, error)
}

type Products interface {
	Get(ctx context.Context, id int64) (domain.Product, error)

	// List returns one page, newest first, plus the total match count.
	List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, int, error)

	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Update(ctx context.Context, p domain.Product) (domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

type Cart interface {
	// List returns the identity's cart with products attached.
	List(ctx context.Context, identityID int64) ([]domain.CartItem, error)

	Get(ctx context.Context, identityID, productID int64) (domain.CartItem, error)

	// Add inserts a new line; ErrAlreadyExists if the product is already in
	// the cart.
	Add(ctx context.Context, identityID, productID int64, quantity int) (domain.CartItem, error)

	SetQuantity(ctx context.Context, identityID, productID int64, quantity int) (domain.CartItem, error)
	Remove(ctx context.Context, identityID, productID int64) error
	Clear(ctx context.Context, identityID int64) error
}

type Favorites interface {
	List(ctx context.Context, identityID int64) ([]domain.Favorite, error)

	// Add returns ErrAlreadyExists for a duplicate.
	Add(ctx context.Context, identityID, productID int64) (domain.Favorite, error)

	Remove(ctx context.Context, identityID, productID int64) error
}

type Orders interface {
	// Create inserts the order and its items.
	Create(ctx context.Context, o domain.Order) (domain.Order, error)

	// ListByIdentity returns the identity's orders, newest first, with items
	// and their products.
	ListByIdentity(ctx context.Context, identityID int64) ([]domain.Order, error)

	// List returns a page of all orders, newest first, with items and the
	// ordering customer, plus the total count.
	List(ctx context.Context, limit, offset int) ([]domain.Order, int, error)
}
