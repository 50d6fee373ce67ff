package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
)

type identitiesRepo struct {
	q   querier
	now func() time.Time
}

const identityColumns = `id, external_id, first_name, last_name, email, secret_hash,
	role, avatar, is_federated, created_at, updated_at`

func (r *identitiesRepo) getOne(ctx context.Context, where string, args ...any) (domain.Identity, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+identityColumns+` FROM identities WHERE `+where, args...)
	i, err := scanIdentity(row)
	if err != nil {
		return domain.Identity{}, mapNotFound(err)
	}
	return i, nil
}

func (r *identitiesRepo) GetByID(ctx context.Context, id int64) (domain.Identity, error) {
	return r.getOne(ctx, `id = ?`, id)
}

func (r *identitiesRepo) GetPasswordIdentityByID(ctx context.Context, id int64) (domain.Identity, error) {
	return r.getOne(ctx, `id = ? AND is_federated = 0`, id)
}

func (r *identitiesRepo) GetPasswordIdentityByEmail(ctx context.Context, email string) (domain.Identity, error) {
	return r.getOne(ctx, `email = ? AND is_federated = 0`, email)
}

func (r *identitiesRepo) GetByEmail(ctx context.Context, email string) (domain.Identity, error) {
	return r.getOne(ctx, `email = ?`, email)
}

func (r *identitiesRepo) GetByExternalID(ctx context.Context, externalID string) (domain.Identity, error) {
	return r.getOne(ctx, `external_id = ?`, externalID)
}

func (r *identitiesRepo) Create(ctx context.Context, i domain.Identity) (domain.Identity, error) {
	now := r.now()
	if i.Role == "" {
		i.Role = domain.RoleUser
	}
	if i.Avatar == "" {
		i.Avatar = domain.DefaultAvatar
	}

	res, err := r.q.ExecContext(ctx, `
		INSERT INTO identities (external_id, first_name, last_name, email, secret_hash,
			role, avatar, is_federated, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		mapStringNull(i.ExternalID), i.FirstName, i.LastName, i.Email, mapStringNull(i.SecretHash),
		string(i.Role), i.Avatar, i.Federated, now, now,
	)
	if err != nil {
		return domain.Identity{}, mapConstraint(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Identity{}, err
	}
	i.ID = id
	i.CreatedAt = now
	i.UpdatedAt = now
	return i, nil
}

func (r *identitiesRepo) UpdateProfile(ctx context.Context, id int64, firstName, lastName, avatar string) error {
	return requireAffected(r.q.ExecContext(ctx, `
		UPDATE identities SET first_name = ?, last_name = ?, avatar = ?, updated_at = ?
		WHERE id = ?`,
		firstName, lastName, avatar, r.now(), id,
	))
}

func (r *identitiesRepo) UpdateSecretHash(ctx context.Context, id int64, hash string) error {
	return requireAffected(r.q.ExecContext(ctx, `
		UPDATE identities SET secret_hash = ?, updated_at = ?
		WHERE id = ? AND is_federated = 0`,
		hash, r.now(), id,
	))
}

func (r *identitiesRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM identities`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIdentity(row rowScanner) (domain.Identity, error) {
	var (
		i          domain.Identity
		externalID sql.NullString
		secretHash sql.NullString
		role       string
	)
	err := row.Scan(&i.ID, &externalID, &i.FirstName, &i.LastName, &i.Email, &secretHash,
		&role, &i.Avatar, &i.Federated, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return domain.Identity{}, err
	}
	i.ExternalID = mapNullString(externalID)
	i.SecretHash = mapNullString(secretHash)
	i.Role = domain.Role(role)
	return i, nil
}
