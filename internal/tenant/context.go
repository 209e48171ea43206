// Package tenant binds the resolved tenant to a request's context and resolves
// it from inbound HTTP requests.
package tenant

import (
	"context"

	"github.com/kingrain94/catalog-api/internal/domain"
)

// contextKey is unexported so no other package can read or overwrite the binding.
type contextKey struct{}

// WithTenant returns a copy of ctx bound to t.
func WithTenant(ctx context.Context, t *domain.Tenant) context.Context {
	return context.WithValue(ctx, contextKey{}, t)
}

// FromContext returns the tenant bound to ctx, if any.
func FromContext(ctx context.Context) (*domain.Tenant, bool) {
	t, ok := ctx.Value(contextKey{}).(*domain.Tenant)
	if !ok || t == nil {
		return nil, false
	}
	return t, true
}

// IDFromContext returns the bound tenant's id or ErrNoTenantInContext.
func IDFromContext(ctx context.Context) (string, error) {
	t, ok := FromContext(ctx)
	if !ok || t.ID == "" {
		return "", ErrNoTenantInContext
	}
	return t.ID, nil
}

// MustFromContext panics when no tenant is bound.
func MustFromContext(ctx context.Context) *domain.Tenant {
	t, ok := FromContext(ctx)
	if !ok {
		panic(ErrNoTenantInContext)
	}
	return t
}

// Clear returns a context derived from ctx with the binding removed.
func Clear(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, (*domain.Tenant)(nil))
}
