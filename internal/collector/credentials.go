package collector

//go:generate go run go.uber.org/mock/mockgen -destination credentials_mock.gen.go -package collector . CredentialResolver

import (
	"context"

	"github.com/ghstats/ghstats/internal/github"
	"github.com/ghstats/ghstats/internal/store"
)

// CredentialResolver resolves the traffic API credential for a tenant.
// The collector never reads tokens inline; a vault-backed resolver can be
// injected without touching the run loop.
type CredentialResolver interface {
	Resolve(ctx context.Context, tenantID int64) (github.Credential, error)
}

// StoreCredentials resolves credentials from the tenant records.
type StoreCredentials struct {
	store store.Store
}

// NewStoreCredentials returns the default, store-backed resolver.
func NewStoreCredentials(s store.Store) *StoreCredentials {
	return &StoreCredentials{store: s}
}

// Resolve reads the tenant's GitHub user and access token.
func (r *StoreCredentials) Resolve(ctx context.Context, tenantID int64) (github.Credential, error) {
	user, token, err := r.store.TenantCredentials(ctx, tenantID)
	if err != nil {
		return github.Credential{}, err
	}
	return github.Credential{Username: user, Token: token}, nil
}
