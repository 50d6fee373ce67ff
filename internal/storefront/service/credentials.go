package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
	"github.com/aussiebroadwan/storefront/pkg/cryptox"
	"github.com/aussiebroadwan/storefront/pkg/firebasex"
)

// FederatedVerifier checks ID tokens from the external identity provider.
// *firebasex.Verifier implements it.
type FederatedVerifier interface {
	Issuer() string
	Verify(ctx context.Context, raw string) (firebasex.Claims, error)
}

// CredentialVerifier checks passwords and federated ID tokens. It never says
// which part of a credential was wrong.
type CredentialVerifier struct {
	Store store.Store

	// Federated is nil when federated login is not configured; every
	// federated token is then rejected.
	Federated FederatedVerifier

	// Timeout bounds a single federated verification, key fetches included.
	Timeout time.Duration
}

// VerifyPassword returns the password identity for email if candidate
// matches its hash.
func (v *CredentialVerifier) VerifyPassword(ctx context.Context, email, candidate string) (domain.Identity, error) {
	identity, err := v.Store.Identities().GetPasswordIdentityByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			cryptox.BurnPasswordCheck(candidate)
			return domain.Identity{}, ErrInvalidCredentials
		}
		return domain.Identity{}, fmt.Errorf("lookup identity: %w", err)
	}

	if err := cryptox.VerifyPassword(candidate, identity.SecretHash); err != nil {
		return domain.Identity{}, ErrInvalidCredentials
	}
	return identity, nil
}

// VerifyFederatedToken validates a provider ID token. Every failure, a
// disabled provider included, is ErrInvalidToken.
func (v *CredentialVerifier) VerifyFederatedToken(ctx context.Context, token string) (firebasex.Claims, error) {
	if v.Federated == nil {
		return firebasex.Claims{}, fmt.Errorf("%w: federated login disabled", ErrInvalidToken)
	}

	if v.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.Timeout)
		defer cancel()
	}

	claims, err := v.Federated.Verify(ctx, token)
	if err != nil {
		return firebasex.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}

// FederatedIssuer is the issuer of federated tokens, or "" when disabled.
func (v *CredentialVerifier) FederatedIssuer() string {
	if v.Federated == nil {
		return ""
	}
	return v.Federated.Issuer()
}
