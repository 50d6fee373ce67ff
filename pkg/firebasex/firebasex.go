// Package firebasex verifies Firebase Authentication ID tokens.
//
// Firebase ID tokens are OIDC-style RS256 JWTs issued by
// https://securetoken.google.com/<project-id> with the project id as
// audience. Verification uses go-oidc against Google's published key set, so
// no Firebase SDK and no process-wide app state is required: construct one
// Verifier at startup and pass it to whoever needs it.
package firebasex

import (
	"context"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
)

// DefaultKeysURL is the JWKS document for Firebase ID token signing keys.
const DefaultKeysURL = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"

const issuerPrefix = "https://securetoken.google.com/"

var (
	ErrNotConfigured     = errors.New("firebasex: project id not configured")
	ErrInvalidCredential = errors.New("firebasex: invalid service account credential")
	ErrInvalidToken      = errors.New("firebasex: invalid id token")
)

// ServiceAccount is the credential triple handed out by the Firebase console.
// Only ProjectID is needed to verify tokens; the key pair is validated so a
// broken deployment fails at startup rather than on first use.
type ServiceAccount struct {
	ProjectID   string
	ClientEmail string
	PrivateKey  string // PEM; literal "\n" sequences are accepted
}

// Validate checks the credential is usable.
func (sa ServiceAccount) Validate() error {
	if strings.TrimSpace(sa.ProjectID) == "" {
		return ErrNotConfigured
	}
	if sa.PrivateKey == "" && sa.ClientEmail == "" {
		return nil
	}
	if sa.ClientEmail == "" {
		return fmt.Errorf("%w: client email missing", ErrInvalidCredential)
	}

	block, _ := pem.Decode([]byte(NormalizePrivateKey(sa.PrivateKey)))
	if block == nil {
		return fmt.Errorf("%w: private key is not PEM", ErrInvalidCredential)
	}
	if _, err := x509.ParsePKCS8PrivateKey(block.Bytes); err != nil {
		if _, err1 := x509.ParsePKCS1PrivateKey(block.Bytes); err1 != nil {
			return fmt.Errorf("%w: %v", ErrInvalidCredential, err)
		}
	}
	return nil
}

// NormalizePrivateKey expands escaped newlines, which is how the key usually
// arrives through an environment variable.
func NormalizePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}

// Issuer returns the expected "iss" claim for a project.
func Issuer(projectID string) string {
	return issuerPrefix + projectID
}

// Claims are the verified fields the storefront cares about.
type Claims struct {
	Subject       string
	Name          string
	Email         string
	EmailVerified bool
	Picture       string
	Expiry        time.Time
}

// Verifier checks ID tokens for one Firebase project.
type Verifier struct {
	projectID string
	verifier  *oidc.IDTokenVerifier
}

type options struct {
	keysURL    string
	httpClient *http.Client
	keySet     oidc.KeySet
	now        func() time.Time
}

// Option configures New.
type Option func(*options)

// WithKeysURL overrides the JWKS location.
func WithKeysURL(url string) Option {
	return func(o *options) { o.keysURL = url }
}

// WithHTTPClient sets the client used to fetch signing keys.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithKeySet replaces remote key fetching entirely, mostly for tests.
func WithKeySet(ks oidc.KeySet) Option {
	return func(o *options) { o.keySet = ks }
}

// WithClock overrides the verifier's notion of now.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New builds a Verifier. ctx must outlive the Verifier because the remote key
// set uses it for background key refreshes.
func New(ctx context.Context, sa ServiceAccount, opts ...Option) (*Verifier, error) {
	if err := sa.Validate(); err != nil {
		return nil, err
	}

	o := options{
		keysURL:    DefaultKeysURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
	for _, opt := range opts {
		opt(&o)
	}

	keySet := o.keySet
	if keySet == nil {
		keySet = oidc.NewRemoteKeySet(oidc.ClientContext(ctx, o.httpClient), o.keysURL)
	}

	cfg := &oidc.Config{
		ClientID:             sa.ProjectID,
		SupportedSigningAlgs: []string{oidc.RS256},
		Now:                  o.now,
	}

	return &Verifier{
		projectID: sa.ProjectID,
		verifier:  oidc.NewVerifier(Issuer(sa.ProjectID), keySet, cfg),
	}, nil
}

// Issuer is the "iss" value tokens from this project carry.
func (v *Verifier) Issuer() string { return Issuer(v.projectID) }

// Verify checks signature, issuer, audience and expiry of raw. Every failure
// is reported as ErrInvalidToken.
func (v *Verifier) Verify(ctx context.Context, raw string) (Claims, error) {
	idToken, err := v.verifier.Verify(ctx, raw)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	// Firebase requires a non-empty uid.
	if idToken.Subject == "" {
		return Claims{}, fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}

	var extra struct {
		Name          string `json:"name"`
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
		Picture       string `json:"picture"`
	}
	if err := idToken.Claims(&extra); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return Claims{
		Subject:       idToken.Subject,
		Name:          extra.Name,
		Email:         extra.Email,
		EmailVerified: extra.EmailVerified,
		Picture:       extra.Picture,
		Expiry:        idToken.Expiry,
	}, nil
}
