package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
	"github.com/aussiebroadwan/storefront/pkg/jwtx"
	"github.com/aussiebroadwan/storefront/pkg/slogx"
)

// AccessGuard turns a presented token into the Principal of a request.
type AccessGuard struct {
	Credentials *CredentialVerifier
	Sessions    *SessionIssuer
	Store       store.Store
}

// Classify decides, from the unverified header and issuer, which verifier a
// token belongs to. The result says nothing about validity.
func (g *AccessGuard) Classify(raw string) (domain.Credential, error) {
	info, err := jwtx.Inspect(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if fed := g.Credentials.FederatedIssuer(); fed != "" && info.Issuer == fed {
		return domain.CredentialFederated{Token: raw}, nil
	}

	if info.Alg == jwt.SigningMethodHS256.Alg() && (info.Issuer == "" || info.Issuer == g.Sessions.Issuer) {
		return domain.CredentialLocal{Token: raw}, nil
	}

	return nil, fmt.Errorf("%w: unrecognised token (alg %q, iss %q)", ErrInvalidToken, info.Alg, info.Issuer)
}

// Resolve verifies raw and returns the caller. Federated callers must already
// have an identity; local callers are trusted from their signed claims.
func (g *AccessGuard) Resolve(ctx context.Context, raw string) (domain.Principal, error) {
	cred, err := g.Classify(raw)
	if err != nil {
		return domain.Principal{}, err
	}

	switch c := cred.(type) {
	case domain.CredentialFederated:
		claims, err := g.Credentials.VerifyFederatedToken(ctx, c.Token)
		if err != nil {
			return domain.Principal{}, err
		}
		identity, err := g.Store.Identities().GetByExternalID(ctx, claims.Subject)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Principal{}, ErrIdentityNotFound
			}
			return domain.Principal{}, fmt.Errorf("lookup federated identity: %w", err)
		}
		return identity.Principal(), nil

	case domain.CredentialLocal:
		claims, err := g.Sessions.VerifyBearerToken(c.Token)
		if err != nil {
			return domain.Principal{}, err
		}
		return domain.Principal{
			IdentityID: claims.UserID,
			Email:      claims.Email,
			Role:       domain.Role(claims.Role),
		}, nil
	}

	return domain.Principal{}, ErrInvalidToken
}

// Authenticate resolves raw and returns ctx carrying the Principal and a
// logger tagged with it.
func (g *AccessGuard) Authenticate(ctx context.Context, raw string) (context.Context, error) {
	p, err := g.Resolve(ctx, raw)
	if err != nil {
		return ctx, err
	}
	ctx = domain.WithPrincipal(ctx, p)
	return slogx.WithIdentity(ctx, p.IdentityID, string(p.Role)), nil
}
